package analysis

import (
	"sort"

	"capsim-round/internal/model"
)

type RankedResult struct {
	Rank int
	model.RoundResult
}

// RankByNetProfit sorts descending by NetProfit. Ties keep input order.
func RankByNetProfit(results []model.RoundResult) []RankedResult {
	out := make([]RankedResult, 0, len(results))
	for _, r := range results {
		out = append(out, RankedResult{RoundResult: r})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NetProfit > out[j].NetProfit
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// Best returns the top-ranked result, or false when there are none.
func Best(results []model.RoundResult) (RankedResult, bool) {
	ranked := RankByNetProfit(results)
	if len(ranked) == 0 {
		return RankedResult{}, false
	}
	return ranked[0], true
}
