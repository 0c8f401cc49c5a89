package query

import (
	"github.com/KaramelBytes/strokelens-cli/internal/dataset"
	"github.com/KaramelBytes/strokelens-cli/internal/stats"
)

// Kind tags the shape of a Result so renderers and exporters can dispatch
// without inspecting its contents.
type Kind uint8

const (
	// KindUnknown is the zero Kind; it cannot be exported.
	KindUnknown Kind = iota
	// KindFlat holds ordered key/value Entries.
	KindFlat
	// KindGroups holds one Summary per Group.
	KindGroups
	// KindNested holds outer groups, each with its own Groups.
	KindNested
	// KindList holds a sequence of Items.
	KindList
	// KindError holds a query-parameter failure in Err.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindFlat:
		return "flat"
	case KindGroups:
		return "groups"
	case KindNested:
		return "nested"
	case KindList:
		return "list"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Entry is one named value of a flat result. When IsList is set the entry
// holds List instead of Value.
type Entry struct {
	Key    string
	Value  dataset.Value
	List   []string
	IsList bool
}

// Scalar builds a single-value entry.
func Scalar(key string, v dataset.Value) Entry {
	return Entry{Key: key, Value: v}
}

// ListEntry builds a list-valued entry.
func ListEntry(key string, items []string) Entry {
	if items == nil {
		items = []string{}
	}
	return Entry{Key: key, List: items, IsList: true}
}

// Summary is the mean/mode/median triple reported for a cohort.
type Summary struct {
	// Measure names the summarized field in entry keys, e.g. "age".
	Measure string
	Mean    dataset.Value
	Mode    []float64
	Median  dataset.Value
}

// Summarize computes the mean, mode and median of vals.
func Summarize(measure string, vals []dataset.Value) Summary {
	return Summary{
		Measure: measure,
		Mean:    dataset.OptionalFloat(stats.Mean(vals)),
		Mode:    stats.Mode(vals),
		Median:  dataset.OptionalFloat(stats.Median(vals)),
	}
}

// ModeStrings formats the mode values for display.
func (s Summary) ModeStrings() []string {
	out := make([]string, len(s.Mode))
	for i, m := range s.Mode {
		out[i] = dataset.FormatFloat(m)
	}
	return out
}

// Entries lays the summary out as mean_<measure>, modal_<measure>,
// median_<measure>.
func (s Summary) Entries() []Entry {
	return []Entry{
		Scalar("mean_"+s.Measure, s.Mean),
		ListEntry("modal_"+s.Measure, s.ModeStrings()),
		Scalar("median_"+s.Measure, s.Median),
	}
}

// Group is a named cohort summary.
type Group struct {
	Name    string
	Summary Summary
}

// Nested is an outer group holding inner cohort summaries.
type Nested struct {
	Name   string
	Groups []Group
}

// Result is the transient output of one catalogue query.
type Result struct {
	// RunID uniquely identifies one execution; set by Run.
	RunID string
	Query string
	Title string
	Kind  Kind
	// GroupLabel names the outermost grouping column for export headers.
	GroupLabel string

	Entries []Entry
	Groups  []Group
	Nested  []Nested
	Items   []string
	Err     string
}

func flatResult(entries ...Entry) *Result {
	return &Result{Kind: KindFlat, Entries: entries}
}

func errorResult(msg string) *Result {
	return &Result{Kind: KindError, Err: msg}
}
