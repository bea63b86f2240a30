package analysis

import "sort"

// RankByOutput sorts comparisons by equilibrium income, highest first.
// Failed comparisons sink to the end in their original order.
func RankByOutput(cs []Comparison) []Comparison {
	out := make([]Comparison, len(cs))
	copy(out, cs)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Result == nil || b.Result == nil {
			return a.Result != nil && b.Result == nil
		}
		return a.Result.Solution.Equilibrium.YStar > b.Result.Solution.Equilibrium.YStar
	})
	return out
}
