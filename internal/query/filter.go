package query

import (
	"sort"

	"github.com/KaramelBytes/strokelens-cli/internal/dataset"
)

// Predicate selects records. A record whose key field is missing never
// matches.
type Predicate func(*dataset.Record) bool

// Flag matches binary (or integer) fields equal to want.
func Flag(field string, want int64) Predicate {
	return func(r *dataset.Record) bool {
		v, ok := r.Get(field).AsInt64()
		return ok && v == want
	}
}

// NotIn matches present text fields whose value is outside excluded.
func NotIn(field string, excluded ...string) Predicate {
	return func(r *dataset.Record) bool {
		s, ok := r.Get(field).AsString()
		if !ok {
			return false
		}
		for _, e := range excluded {
			if s == e {
				return false
			}
		}
		return true
	}
}

// Present matches records where field holds any value.
func Present(field string) Predicate {
	return func(r *dataset.Record) bool {
		return !r.Get(field).IsMissing()
	}
}

// All matches when every predicate matches.
func All(ps ...Predicate) Predicate {
	return func(r *dataset.Record) bool {
		for _, p := range ps {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

var (
	smoker   = NotIn(dataset.ColSmokingStatus, "Never smoked", "Unknown")
	stroke   = Flag(dataset.ColStrokeOccurrence, 1)
	noStroke = Flag(dataset.ColStrokeOccurrence, 0)
	hyper    = Flag(dataset.ColHypertension, 1)
	heart    = Flag(dataset.ColHeartDisease, 1)
)

// Filter returns the records of recs matching p, in order.
func Filter(recs []*dataset.Record, p Predicate) []*dataset.Record {
	out := make([]*dataset.Record, 0)
	for _, r := range recs {
		if p(r) {
			out = append(out, r)
		}
	}
	return out
}

// Column collects field from each record.
func Column(recs []*dataset.Record, field string) []dataset.Value {
	out := make([]dataset.Value, len(recs))
	for i, r := range recs {
		out[i] = r.Get(field)
	}
	return out
}

// IDs collects the patient identifier of each record.
func IDs(recs []*dataset.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID()
	}
	return out
}

// Cohort is the set of records sharing one observed value of a field.
type Cohort struct {
	Name    string
	Records []*dataset.Record
}

// GroupBy discovers the distinct present values of field across the whole
// store, then returns, per value, the records that also match p. Groups are
// sorted by name; a value with no matching records still yields a group.
func GroupBy(s *dataset.Store, field string, p Predicate) []Cohort {
	recs := s.Records()
	byName := map[string][]*dataset.Record{}
	for _, r := range recs {
		v := r.Get(field)
		if v.IsMissing() {
			continue
		}
		name := v.String()
		if _, ok := byName[name]; !ok {
			byName[name] = []*dataset.Record{}
		}
		if p == nil || p(r) {
			byName[name] = append(byName[name], r)
		}
	}
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]Cohort, 0, len(names))
	for _, n := range names {
		out = append(out, Cohort{Name: n, Records: byName[n]})
	}
	return out
}

// splitByStroke summarizes measure for the stroke and no_stroke subsets of
// recs.
func splitByStroke(recs []*dataset.Record, field, measure string) []Group {
	return []Group{
		{Name: "stroke", Summary: Summarize(measure, Column(Filter(recs, stroke), field))},
		{Name: "no_stroke", Summary: Summarize(measure, Column(Filter(recs, noStroke), field))},
	}
}

func distinctSorted(vals []dataset.Value) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, v := range vals {
		if v.IsMissing() {
			continue
		}
		s := v.String()
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
