package reporting

import "sort"

// Observation is one period-stamped value of a single metric for one asset.
type Observation struct {
	Year  int
	Month int
	Value float64
}

// Stats summarizes a consumption series. Percentages are already scaled
// (5.0 means 5%). Fields that cannot be computed (empty series, single
// point, zero denominator) come back 0, never NaN.
type Stats struct {
	Average    float64 `json:"average"`
	Peak       float64 `json:"peak"`
	MoMPercent float64 `json:"mom_percent"`
	YoYPercent float64 `json:"yoy_percent"`
}

// Compute derives average, peak, month-over-month % and year-over-year % from
// an unordered series. Sorting is internal, so the result is invariant to
// input order.
//
// MoM treats consecutive sorted entries as consecutive periods even when the
// calendar has gaps between them. That matches how the numbers have always
// been produced; do not quietly add adjacency checks here.
func Compute(series []Observation) Stats {
	if len(series) == 0 {
		return Stats{}
	}

	sorted := make([]Observation, len(series))
	copy(sorted, series)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Year != sorted[j].Year {
			return sorted[i].Year < sorted[j].Year
		}
		return sorted[i].Month < sorted[j].Month
	})

	var sum, peak float64
	for _, obs := range sorted {
		sum += obs.Value
		if obs.Value > peak {
			peak = obs.Value
		}
	}

	var momDeltas []float64
	for i := 1; i < len(sorted); i++ {
		prev := sorted[i-1].Value
		if prev > 0 {
			momDeltas = append(momDeltas, (sorted[i].Value-prev)/prev)
		}
	}

	return Stats{
		Average:    sum / float64(len(sorted)),
		Peak:       peak,
		MoMPercent: meanPercent(momDeltas),
		YoYPercent: yoyPercent(sorted),
	}
}

// yoyPercent groups observations into calendar-year sums, then averages the
// year-over-year growth across chronological year pairs.
func yoyPercent(sorted []Observation) float64 {
	yearTotals := make(map[int]float64)
	for _, obs := range sorted {
		yearTotals[obs.Year] += obs.Value
	}
	years := make([]int, 0, len(yearTotals))
	for y := range yearTotals {
		years = append(years, y)
	}
	sort.Ints(years)

	var deltas []float64
	for i := 1; i < len(years); i++ {
		prev := yearTotals[years[i-1]]
		if prev > 0 {
			deltas = append(deltas, (yearTotals[years[i]]-prev)/prev)
		}
	}
	return meanPercent(deltas)
}

func meanPercent(deltas []float64) float64 {
	if len(deltas) == 0 {
		return 0
	}
	var sum float64
	for _, d := range deltas {
		sum += d
	}
	return sum / float64(len(deltas)) * 100
}
