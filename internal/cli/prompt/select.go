// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/ocmigrate/internal/errors"
)

// Sentinel errors for selection.
var (
	ErrNoChoices          = errors.New("nothing to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Choice is one selectable entry.
type Choice struct {
	Name string

	// Detail is shown next to the name, or in the preview pane of the
	// fuzzy finder.
	Detail string
}

// findMultiFunc matches the signature of fuzzyfinder.FindMulti for the
// options this package uses.
type findMultiFunc func(choices []Choice) ([]int, error)

// Selector handles interactive multi-selection prompts.
type Selector struct {
	reader io.Reader
	writer io.Writer

	// find is set for terminal sessions and replaces the numbered prompt.
	find findMultiFunc
}

// NewSelector creates a Selector that uses a full-screen fuzzy finder.
func NewSelector() *Selector {
	return &Selector{
		reader: os.Stdin,
		writer: os.Stdout,
		find:   fuzzyFindMulti,
	}
}

// NewSelectorWithIO creates a Selector that prints a numbered list to w and
// reads the answer from r. It is used when stdin is not a terminal and in
// tests.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: r,
		writer: w,
	}
}

// SelectMany asks the user which choices to keep and returns their names in
// the order given.
//
// Returns:
//   - ErrNoChoices if the list is empty
//   - ErrSelectionCancelled if the finder is aborted or input hits EOF
//   - ErrInvalidSelection if the numbered answer cannot be parsed
func (s *Selector) SelectMany(label string, choices []Choice) ([]string, error) {
	if len(choices) == 0 {
		return nil, ErrNoChoices
	}

	var (
		picked []int
		err    error
	)
	if s.find != nil {
		picked, err = s.find(choices)
	} else {
		picked, err = s.prompt(label, choices)
	}
	if err != nil {
		return nil, err
	}

	// Keep source order regardless of the order items were marked in.
	keep := make([]bool, len(choices))
	for _, i := range picked {
		keep[i] = true
	}
	names := make([]string, 0, len(picked))
	for i, c := range choices {
		if keep[i] {
			names = append(names, c.Name)
		}
	}
	return names, nil
}

func (s *Selector) prompt(label string, choices []Choice) ([]int, error) {
	fmt.Fprintf(s.writer, "%s:\n", label)
	for i, c := range choices {
		if c.Detail != "" {
			fmt.Fprintf(s.writer, "  [%d] %s (%s)\n", i+1, c.Name, c.Detail)
		} else {
			fmt.Fprintf(s.writer, "  [%d] %s\n", i+1, c.Name)
		}
	}
	fmt.Fprintf(s.writer, "Select (e.g. 1,3 or none) [all]: ")

	reader := bufio.NewReader(s.reader)
	input, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		if errors.Is(err, io.EOF) {
			return nil, ErrSelectionCancelled
		}
		return nil, errors.Wrap(err, "reading selection")
	}

	return parseSelection(strings.TrimSpace(input), len(choices))
}

// parseSelection turns "1, 3" into zero-based indexes. An empty answer or
// "all" selects everything and "none" selects nothing.
func parseSelection(input string, n int) ([]int, error) {
	switch strings.ToLower(input) {
	case "", "all":
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return all, nil
	case "none":
		return []int{}, nil
	}

	var picked []int
	for field := range strings.SplitSeq(input, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		selection, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidSelection, "%q is not a number", field)
		}
		if selection < 1 || selection > n {
			return nil, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", selection, n)
		}
		picked = append(picked, selection-1)
	}
	return picked, nil
}

func fuzzyFindMulti(choices []Choice) ([]int, error) {
	idx, err := fuzzyfinder.FindMulti(
		choices,
		func(i int) string {
			return choices[i].Name
		},
		fuzzyfinder.WithHeader("Tab to mark servers, Enter to confirm"),
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return fmt.Sprintf("Name: %s\n\n%s", choices[i].Name, choices[i].Detail)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, ErrSelectionCancelled
		}
		return nil, errors.Wrap(err, "interactive selection failed")
	}
	return idx, nil
}
