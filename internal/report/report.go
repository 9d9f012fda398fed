// Package report records what a migration run did to each artifact and
// renders the result for humans or as a structured file.
package report

import "slices"

// Kind identifies the artifact family an item belongs to.
type Kind string

const (
	KindAgent   Kind = "agent"
	KindCommand Kind = "command"
	KindSkill   Kind = "skill"
	KindMCP     Kind = "mcp"
)

// kindOrder fixes the order kinds are printed in.
var kindOrder = []Kind{KindAgent, KindCommand, KindSkill, KindMCP}

// Action is what happened to an item.
type Action string

const (
	// ActionConverted means the item was rewritten into OpenCode form.
	ActionConverted Action = "converted"
	// ActionCopied means the item was copied byte-for-byte.
	ActionCopied Action = "copied"
	// ActionSkipped means the item was not written.
	ActionSkipped Action = "skipped"
)

// Item is a single migrated, copied or skipped artifact.
type Item struct {
	Kind   Kind   `json:"kind" yaml:"kind" toml:"kind"`
	Name   string `json:"name" yaml:"name" toml:"name"`
	Source string `json:"source,omitempty" yaml:"source,omitempty" toml:"source,omitempty"`
	Target string `json:"target,omitempty" yaml:"target,omitempty" toml:"target,omitempty"`
	Action Action `json:"action" yaml:"action" toml:"action"`

	// Reason explains a skip.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty" toml:"reason,omitempty"`

	// Warning flags a written item that needs attention, such as a header
	// that does not decode as YAML.
	Warning string `json:"warning,omitempty" yaml:"warning,omitempty" toml:"warning,omitempty"`
}

// Report collects the items of one run.
type Report struct {
	Command string `json:"command" yaml:"command" toml:"command"`
	Source  string `json:"source" yaml:"source" toml:"source"`
	Target  string `json:"target" yaml:"target" toml:"target"`
	DryRun  bool   `json:"dry_run" yaml:"dry_run" toml:"dry_run"`
	Items   []Item `json:"items" yaml:"items" toml:"items"`
}

// New creates an empty report for a run of command from source to target.
func New(command, source, target string, dryRun bool) *Report {
	return &Report{
		Command: command,
		Source:  source,
		Target:  target,
		DryRun:  dryRun,
		Items:   []Item{},
	}
}

// Add records an item. A nil Report ignores it.
func (r *Report) Add(item Item) {
	if r == nil {
		return
	}
	r.Items = append(r.Items, item)
}

// Warn attaches a warning to the most recent item for target.
// It reports whether such an item was found.
func (r *Report) Warn(target, warning string) bool {
	if r == nil {
		return false
	}
	for i := len(r.Items) - 1; i >= 0; i-- {
		if r.Items[i].Target == target {
			r.Items[i].Warning = warning
			return true
		}
	}
	return false
}

// Counts returns the number of items per action.
func (r *Report) Counts() map[Action]int {
	counts := make(map[Action]int)
	if r == nil {
		return counts
	}
	for _, item := range r.Items {
		counts[item.Action]++
	}
	return counts
}

// Filter returns the items matching pred, in insertion order.
func (r *Report) Filter(pred func(Item) bool) []Item {
	if r == nil {
		return nil
	}
	var out []Item
	for _, item := range r.Items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// kinds returns the kinds present in the report, known kinds first.
func (r *Report) kinds() []Kind {
	seen := make(map[Kind]bool)
	for _, item := range r.Items {
		seen[item.Kind] = true
	}

	var kinds []Kind
	for _, k := range kindOrder {
		if seen[k] {
			kinds = append(kinds, k)
			delete(seen, k)
		}
	}
	var rest []Kind
	for k := range seen {
		rest = append(rest, k)
	}
	slices.Sort(rest)
	return append(kinds, rest...)
}
