// Package tariff implements the per-category fee calculators.
//
// Every calculator is a pure function of vessel/voyage attributes, the rate
// card and option flags, returning a fee in the category's native currency
// rounded to two decimals. Surcharges stack multiplicatively on the running
// total in a fixed order; they are never additive.
package tariff

import (
	"math"

	"port-proforma/core/rates"
)

// RoundUp1000 rounds a tonnage metric up to the nearest 1000.
// Zero or negative inputs clip to 0.
func RoundUp1000(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Ceil(v/1000) * 1000
}

// tierFee prices a metric against a base + per-1000 tier: the base covers
// the first 1000 tons, each additional 1000 adds the increment linearly.
func tierFee(metric float64, r rates.TierRate) float64 {
	rounded := RoundUp1000(metric)
	if rounded <= 1000 {
		return r.Base
	}
	return r.Base + (rounded-1000)/1000*r.Per1000
}

// extraThousands is the number of 1000-ton steps beyond the first tier,
// zero when the metric fits inside it.
func extraThousands(metric float64) float64 {
	rounded := RoundUp1000(metric)
	if rounded <= 1000 {
		return 0
	}
	return (rounded - 1000) / 1000
}
