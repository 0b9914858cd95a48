package reporting

import (
	"fmt"
	"sort"
)

// GroupTotals is a key -> summed value mapping that remembers first-seen key
// order. Chart label order depends on it.
type GroupTotals struct {
	keys   []string
	totals map[string]float64
}

// Add accumulates v under key, registering the key on first sight.
func (g *GroupTotals) Add(key string, v float64) {
	if g.totals == nil {
		g.totals = make(map[string]float64)
	}
	if _, seen := g.totals[key]; !seen {
		g.keys = append(g.keys, key)
	}
	g.totals[key] += v
}

// Keys returns group keys in first-seen order.
func (g *GroupTotals) Keys() []string {
	return g.keys
}

// Total returns the summed value for key (0 for an unseen key).
func (g *GroupTotals) Total(key string) float64 {
	return g.totals[key]
}

// SumBy groups records by keyFn and sums valueFn per group.
func SumBy[T any](records []T, keyFn func(T) string, valueFn func(T) float64) *GroupTotals {
	g := &GroupTotals{}
	for _, r := range records {
		g.Add(keyFn(r), valueFn(r))
	}
	return g
}

// PeriodKey formats a reporting period as "YYYY-MM". The zero-padded month is
// what makes lexicographic period sorting chronological; change the format
// and every period axis sorts wrong.
func PeriodKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// RankedEntry is one row of a top-N ranking.
type RankedEntry struct {
	Key   string  `json:"key"`
	Total float64 `json:"total"`
}

// TopN returns the n largest groups in descending order. Ties keep first-seen
// order so repeated calls rank identically.
func TopN(g *GroupTotals, n int) []RankedEntry {
	ranked := make([]RankedEntry, 0, len(g.keys))
	for _, k := range g.keys {
		ranked = append(ranked, RankedEntry{Key: k, Total: g.totals[k]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// SeriesSet is a set of per-asset series aligned to one shared period axis.
// Every series has exactly len(Periods) points; an asset with no record for a
// period carries 0 there, so stacked chart datasets line up index-by-index.
type SeriesSet struct {
	Periods []string             `json:"periods"`
	Order   []string             `json:"order"`
	Values  map[string][]float64 `json:"values"`
}

// AlignSeries buckets records into (asset, period) cells, sums each cell, and
// zero-fills the gaps. The period axis is the lexicographically sorted set of
// distinct period keys; asset order is first-seen.
func AlignSeries[T any](records []T, assetFn func(T) string, periodFn func(T) string, valueFn func(T) float64) SeriesSet {
	periodSeen := make(map[string]bool)
	var periods []string
	var order []string
	cells := make(map[string]map[string]float64)

	for _, r := range records {
		period := periodFn(r)
		if !periodSeen[period] {
			periodSeen[period] = true
			periods = append(periods, period)
		}
		asset := assetFn(r)
		if _, ok := cells[asset]; !ok {
			order = append(order, asset)
			cells[asset] = make(map[string]float64)
		}
		cells[asset][period] += valueFn(r)
	}
	sort.Strings(periods)

	values := make(map[string][]float64, len(order))
	for _, asset := range order {
		row := make([]float64, len(periods))
		for i, p := range periods {
			row[i] = cells[asset][p]
		}
		values[asset] = row
	}
	return SeriesSet{Periods: periods, Order: order, Values: values}
}
