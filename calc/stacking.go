// Copyright (C) 2026 The EVE Eye
// SPDX-License-Identifier: GPL-3.0-or-later

package calc

import (
	"math"
	"sort"
)

// stackingPenaltyBase is the divisor in the penalty exponent,
// exp(-(k/2.67)^2), matching spec.md §4.6.1.
const stackingPenaltyBase = 2.67

// combineMultiplicative folds a group of multiplicative operand
// multipliers (already converted from pre_mul/pre_div or
// post_mul/post_div/post_percent into plain "acc *= x" form) into a
// single multiplier to apply to the accumulator. Stackable attributes
// combine with no penalty; non-stackable attributes go through the
// stacking-penalty procedure.
func combineMultiplicative(multipliers []float64, highIsGood, stackable bool) float64 {
	if len(multipliers) == 0 {
		return 1
	}
	if stackable {
		product := 1.0
		for _, m := range multipliers {
			product *= m
		}
		return product
	}
	return stackingPenalty(multipliers, highIsGood)
}

// stackingPenalty implements spec.md §4.6.1's penalty procedure: sort
// operands by the strength of their additive-in-log contribution
// (distance of ln(operand) from 0, i.e. of operand from 1.0)
// descending, then multiply the k-th strongest's log-contribution by
// exp(-(k/2.67)^2) before summing and exponentiating back — penalizing
// the weakest contributions most.
func stackingPenalty(multipliers []float64, highIsGood bool) float64 {
	logs := make([]float64, len(multipliers))
	for i, m := range multipliers {
		logs[i] = math.Log(m)
	}
	sort.Slice(logs, func(i, j int) bool {
		si, sj := math.Abs(logs[i]), math.Abs(logs[j])
		if si != sj {
			return si > sj
		}
		// Equal strength: the sign rule decides which counts as
		// "weaker" for a high_is_good attribute a larger log (bigger
		// boost) outranks a smaller one; the rule flips for
		// high_is_good == false.
		if highIsGood {
			return logs[i] > logs[j]
		}
		return logs[i] < logs[j]
	})

	sum := 0.0
	for k, logv := range logs {
		factor := math.Exp(-math.Pow(float64(k)/stackingPenaltyBase, 2))
		sum += logv * factor
	}
	return math.Exp(sum)
}

// resolveAssign implements the pre_assign/post_assign tie-break rule:
// sort operands ascending, then the last wins when high_is_good, else
// the first wins.
func resolveAssign(operands []float64, highIsGood bool) float64 {
	sorted := append([]float64(nil), operands...)
	sort.Float64s(sorted)
	if highIsGood {
		return sorted[len(sorted)-1]
	}
	return sorted[0]
}
