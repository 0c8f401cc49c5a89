package query

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/KaramelBytes/strokelens-cli/internal/dataset"
)

// DefaultPercentiles are the ranks reported by descriptive-stats.
var DefaultPercentiles = []float64{25, 50, 75}

// Params carries the optional inputs of a query.
type Params struct {
	// Feature is the column analysed by descriptive-stats.
	Feature string
	// Percentiles overrides DefaultPercentiles.
	Percentiles []float64
}

// Query is one entry of the fixed catalogue.
type Query struct {
	Number       int
	Name         string
	Title        string
	NeedsFeature bool
	exec         func(*dataset.Store, Params) *Result
}

func simple(fn func(*dataset.Store) *Result) func(*dataset.Store, Params) *Result {
	return func(s *dataset.Store, _ Params) *Result { return fn(s) }
}

var catalogue = []Query{
	{1, "smokers-hypertension-stroke", "Average, modal, and median age of smokers with hypertension and stroke", false, simple(SmokersHypertensionStroke)},
	{2, "heart-disease-stroke", "Age and glucose stats for heart disease and stroke patients", false, simple(HeartDiseaseStroke)},
	{3, "hypertension-by-gender", "Age stats by gender for hypertension patients", false, simple(HypertensionByGender)},
	{4, "smoking-stroke-comparison", "Age stats for smokers with vs. without stroke", false, simple(SmokingStrokeComparison)},
	{5, "residence-stroke", "Age stats for stroke patients by residence type", false, simple(ResidenceStroke)},
	{6, "dietary-habits", "Dietary habits with and without stroke", false, simple(DietaryHabits)},
	{7, "hypertension-stroke-ids", "Patients with hypertension and stroke", false, simple(HypertensionStrokeIDs)},
	{8, "hypertension-stroke-split-ids", "Patients with hypertension, split by stroke", false, simple(HypertensionStrokeSplitIDs)},
	{9, "heart-disease-stroke-ids", "Patients with heart disease and stroke", false, simple(HeartDiseaseStrokeIDs)},
	{10, "descriptive-stats", "Descriptive statistics for a specified feature", true, func(s *dataset.Store, p Params) *Result {
		return DescriptiveStats(s, p.Feature, p.Percentiles)
	}},
	{11, "sleep-hours", "Average sleep hours with and without stroke", false, simple(SleepHours)},
}

// Catalogue returns the queries in catalogue order.
func Catalogue() []Query {
	out := make([]Query, len(catalogue))
	copy(out, catalogue)
	return out
}

// Lookup finds a query by number ("7") or name (case-insensitive).
func Lookup(s string) (Query, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		for _, q := range catalogue {
			if q.Number == n {
				return q, true
			}
		}
		return Query{}, false
	}
	for _, q := range catalogue {
		if strings.EqualFold(q.Name, s) {
			return q, true
		}
	}
	return Query{}, false
}

// Run executes q against s and stamps the result with the query identity and
// a fresh run id.
func Run(s *dataset.Store, q Query, p Params) *Result {
	if q.exec == nil {
		return &Result{}
	}
	res := q.exec(s, p)
	res.Query = q.Name
	res.Title = q.Title
	res.RunID = uuid.NewString()
	return res
}
