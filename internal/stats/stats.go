// Package stats computes descriptive statistics over optional dataset values.
// Missing and non-numeric values are excluded, never imputed.
package stats

import (
	"math"
	"sort"

	moremath "github.com/aclements/go-moremath/stats"

	"github.com/KaramelBytes/strokelens-cli/internal/dataset"
)

// Present returns the numeric values of vals in order, skipping missing, text
// and NaN entries.
func Present(vals []dataset.Value) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if x, ok := v.AsFloat64(); ok && !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}

// Mean returns the arithmetic mean of the present values.
func Mean(vals []dataset.Value) (float64, bool) {
	xs := Present(vals)
	if len(xs) == 0 {
		return 0, false
	}
	return moremath.Mean(xs), true
}

// Median returns the midpoint of the sorted present values; an even count
// averages the two central values.
func Median(vals []dataset.Value) (float64, bool) {
	xs := sorted(vals)
	n := len(xs)
	if n == 0 {
		return 0, false
	}
	mid := n / 2
	if n%2 == 0 {
		return (xs[mid-1] + xs[mid]) / 2, true
	}
	return xs[mid], true
}

// Mode returns every value sharing the highest occurrence count, in order of
// first occurrence. It is empty when nothing is present.
func Mode(vals []dataset.Value) []float64 {
	xs := Present(vals)
	if len(xs) == 0 {
		return []float64{}
	}
	counts := make(map[float64]int, len(xs))
	order := make([]float64, 0, len(xs))
	best := 0
	for _, x := range xs {
		if counts[x] == 0 {
			order = append(order, x)
		}
		counts[x]++
		if counts[x] > best {
			best = counts[x]
		}
	}
	out := make([]float64, 0, 1)
	for _, x := range order {
		if counts[x] == best {
			out = append(out, x)
		}
	}
	return out
}

// StdDev returns the population standard deviation (sum of squared
// deviations divided by N). It is undefined for fewer than 2 values.
func StdDev(vals []dataset.Value) (float64, bool) {
	xs := Present(vals)
	n := len(xs)
	if n < 2 {
		return 0, false
	}
	// moremath.Variance divides by N-1.
	variance := moremath.Variance(xs) * float64(n-1) / float64(n)
	return math.Sqrt(variance), true
}

// Bounds returns the smallest and largest present values.
func Bounds(vals []dataset.Value) (lo, hi float64, ok bool) {
	xs := Present(vals)
	if len(xs) == 0 {
		return 0, 0, false
	}
	lo, hi = moremath.Bounds(xs)
	return lo, hi, true
}

// Percentiles estimates each rank in [0,100] by linear interpolation at
// k = (n-1)*p/100 over the sorted present values. Ranks outside [0,100] are
// clamped; a NaN rank maps to missing. With no present values every rank maps
// to missing.
func Percentiles(vals []dataset.Value, ranks []float64) map[float64]dataset.Value {
	out := make(map[float64]dataset.Value, len(ranks))
	xs := sorted(vals)
	n := len(xs)
	for _, p := range ranks {
		if n == 0 || math.IsNaN(p) {
			out[p] = dataset.Missing()
			continue
		}
		q := math.Min(math.Max(p, 0), 100)
		k := float64(n-1) * q / 100
		i := int(math.Floor(k))
		frac := k - float64(i)
		if i+1 < n {
			out[p] = dataset.Float(xs[i] + frac*(xs[i+1]-xs[i]))
		} else {
			out[p] = dataset.Float(xs[i])
		}
	}
	return out
}

func sorted(vals []dataset.Value) []float64 {
	xs := Present(vals)
	sort.Float64s(xs)
	return xs
}
