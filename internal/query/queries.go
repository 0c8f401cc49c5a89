package query

import (
	"fmt"
	"math"

	"github.com/KaramelBytes/strokelens-cli/internal/dataset"
	"github.com/KaramelBytes/strokelens-cli/internal/stats"
)

const measureAge = "age"

// SmokersHypertensionStroke summarizes the age of smokers with hypertension
// and a stroke.
func SmokersHypertensionStroke(s *dataset.Store) *Result {
	recs := Filter(s.Records(), All(smoker, hyper, stroke))
	return flatResult(Summarize(measureAge, Column(recs, dataset.ColAge)).Entries()...)
}

// HeartDiseaseStroke summarizes age and mean glucose of heart disease
// patients with a stroke.
func HeartDiseaseStroke(s *dataset.Store) *Result {
	recs := Filter(s.Records(), All(heart, stroke))
	entries := Summarize(measureAge, Column(recs, dataset.ColAge)).Entries()
	glucose := dataset.OptionalFloat(stats.Mean(Column(recs, dataset.ColGlucose)))
	return flatResult(append(entries, Scalar("mean_glucose", glucose))...)
}

// HypertensionByGender summarizes the age of hypertension patients per
// observed gender, split by stroke occurrence.
func HypertensionByGender(s *dataset.Store) *Result {
	res := &Result{Kind: KindNested, GroupLabel: dataset.ColGender}
	for _, c := range GroupBy(s, dataset.ColGender, hyper) {
		res.Nested = append(res.Nested, Nested{
			Name:   c.Name,
			Groups: splitByStroke(c.Records, dataset.ColAge, measureAge),
		})
	}
	return res
}

// SmokingStrokeComparison summarizes the age of smokers with and without a
// stroke.
func SmokingStrokeComparison(s *dataset.Store) *Result {
	recs := Filter(s.Records(), smoker)
	return &Result{
		Kind:       KindGroups,
		GroupLabel: "Group",
		Groups:     splitByStroke(recs, dataset.ColAge, measureAge),
	}
}

// ResidenceStroke summarizes the age of stroke patients per observed
// residence type.
func ResidenceStroke(s *dataset.Store) *Result {
	res := &Result{Kind: KindGroups, GroupLabel: dataset.ColResidenceType}
	for _, c := range GroupBy(s, dataset.ColResidenceType, stroke) {
		res.Groups = append(res.Groups, Group{
			Name:    c.Name,
			Summary: Summarize(measureAge, Column(c.Records, dataset.ColAge)),
		})
	}
	return res
}

// DietaryHabits lists the distinct dietary habits with and without a stroke.
func DietaryHabits(s *dataset.Store) *Result {
	recs := Filter(s.Records(), Present(dataset.ColDietaryHabits))
	return flatResult(
		ListEntry("stroke", distinctSorted(Column(Filter(recs, stroke), dataset.ColDietaryHabits))),
		ListEntry("no_stroke", distinctSorted(Column(Filter(recs, noStroke), dataset.ColDietaryHabits))),
	)
}

// HypertensionStrokeIDs lists patients with hypertension and a stroke.
func HypertensionStrokeIDs(s *dataset.Store) *Result {
	return &Result{Kind: KindList, Items: IDs(Filter(s.Records(), All(hyper, stroke)))}
}

// HypertensionStrokeSplitIDs lists hypertension patients split by stroke
// occurrence.
func HypertensionStrokeSplitIDs(s *dataset.Store) *Result {
	recs := Filter(s.Records(), hyper)
	return flatResult(
		ListEntry("stroke", IDs(Filter(recs, stroke))),
		ListEntry("no_stroke", IDs(Filter(recs, noStroke))),
	)
}

// HeartDiseaseStrokeIDs lists patients with heart disease and a stroke.
func HeartDiseaseStrokeIDs(s *dataset.Store) *Result {
	return &Result{Kind: KindList, Items: IDs(Filter(s.Records(), All(heart, stroke)))}
}

// DescriptiveStats reports mean, population standard deviation, bounds and
// percentiles of a numeric feature. Unknown features, an empty store, a
// feature without numeric values or a non-finite rank yield a KindError
// result.
func DescriptiveStats(s *dataset.Store, feature string, ranks []float64) *Result {
	if s.Len() == 0 || !s.HasField(feature) {
		return errorResult(fmt.Sprintf("Feature '%s' not found or dataset is empty.", feature))
	}
	vals := s.Column(feature)
	lo, hi, ok := stats.Bounds(vals)
	if !ok {
		return errorResult("No valid numerical values found for the feature.")
	}
	if len(ranks) == 0 {
		ranks = DefaultPercentiles
	}
	for _, p := range ranks {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return errorResult(fmt.Sprintf("Invalid percentile rank: %v.", p))
		}
	}
	res := flatResult(
		Scalar("mean", dataset.OptionalFloat(stats.Mean(vals))),
		Scalar("std_dev", dataset.OptionalFloat(stats.StdDev(vals))),
		Scalar("min", dataset.Float(lo)),
		Scalar("max", dataset.Float(hi)),
	)
	pct := stats.Percentiles(vals, ranks)
	for _, p := range ranks {
		res.Entries = append(res.Entries, Scalar("p"+dataset.FormatFloat(p), pct[p]))
	}
	return res
}

// SleepHours reports the mean sleep hours with and without a stroke.
func SleepHours(s *dataset.Store) *Result {
	recs := s.Records()
	mean := func(p Predicate) dataset.Value {
		return dataset.OptionalFloat(stats.Mean(Column(Filter(recs, p), dataset.ColSleepHours)))
	}
	return flatResult(
		Scalar("stroke", mean(stroke)),
		Scalar("no_stroke", mean(noStroke)),
	)
}
