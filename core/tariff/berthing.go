// Package tariff - daily berthing / wharfage (USD, GT driven)
package tariff

import (
	"port-proforma/core/rates"
	"port-proforma/core/types"
)

// Berthing computes the wharfage/quay dues in USD for a stay alongside.
//
// Vessels of 500 GT or less pay a small flat daily rate. Above that the
// daily rate is ceil(GT/1000) times the per-1000 rate; past the 81 000 GT
// breakpoint the rate continues linearly from the breakpoint baseline
// rather than restarting. Cabotage vessels get 50% off the total; a
// domestic flag alone gets 25%. The two discounts are mutually exclusive
// and cabotage takes precedence.
func Berthing(v types.VesselProfile, card rates.Card) float64 {
	var daily float64
	if v.GT <= 500 {
		daily = card.BerthingBaseUSD
	} else {
		rounded := RoundUp1000(v.GT)
		if rounded <= card.BerthingBreakpointGT {
			daily = rounded / 1000 * card.BerthingPer1000USD
		} else {
			baseline := card.BerthingBreakpointGT / 1000 * card.BerthingPer1000USD
			daily = baseline + (rounded-card.BerthingBreakpointGT)/1000*card.BerthingPer1000USD
		}
	}

	total := daily * float64(v.BerthDays)

	switch {
	case v.IsCabotage():
		total *= 0.50
	case v.Flag.IsDomestic():
		total *= 0.75
	}

	return types.Round2(total)
}
