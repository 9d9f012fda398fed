// Package main is the entry point for the migrate-plugin CLI.
package main

import (
	"os"

	"github.com/thoreinstein/ocmigrate/cmd/commands"
)

func main() {
	os.Exit(commands.Execute(commands.NewPluginCommand()))
}
