package frontmatter

import (
	"maps"
	"strings"
)

// Palette maps lower-case color names to "#rrggbb" values.
type Palette map[string]string

// DefaultPalette holds the named colors Claude agents commonly use.
var DefaultPalette = Palette{
	"red":    "#ff0000",
	"green":  "#00ff00",
	"blue":   "#0000ff",
	"yellow": "#ffff00",
	"orange": "#ff8800",
	"purple": "#8800ff",
	"pink":   "#ff0088",
	"cyan":   "#00ffff",
	"white":  "#ffffff",
	"black":  "#000000",
	"gray":   "#808080",
	"grey":   "#808080",
}

// ColorToHex resolves name against DefaultPalette.
func ColorToHex(name string) string {
	return DefaultPalette.Resolve(name)
}

// Resolve returns the hex value for name, matched case-insensitively.
// Hex values and unknown names are returned unchanged.
func (p Palette) Resolve(name string) string {
	if hex, ok := p[strings.ToLower(name)]; ok {
		return hex
	}
	return name
}

// With returns a copy of p extended by extra. Keys in extra are lower-cased
// and override entries already in p.
func (p Palette) With(extra map[string]string) Palette {
	merged := make(Palette, len(p)+len(extra))
	maps.Copy(merged, p)
	for name, hex := range extra {
		merged[strings.ToLower(name)] = hex
	}
	return merged
}
