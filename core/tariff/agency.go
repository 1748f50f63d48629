// Package tariff - agency services (tariff 1 and 2, EUR, NRT driven)
package tariff

import (
	"math"

	"port-proforma/core/bracket"
	"port-proforma/core/rates"
	"port-proforma/core/types"
)

// Agency computes the agency fee in EUR.
//
// The NRT bracket base covers calls of up to 7 berth days. Above 10 000 NRT
// each started 1000 NRT adds the tiered per-1000 rate. Each started 5-day
// period beyond day 7 adds 20% of the running base. Special services add
// 30%. Of the passenger and container discounts only the larger applies.
func Agency(v types.VesselProfile, opts types.Options, card rates.Card) float64 {
	return agencyFee(v.NRT, v.BerthDays, opts, card.AgencyBase, card.AgencyExtraOver10K)
}

// ProtectiveAgency computes the protective-agency fee in EUR using the
// half-rate table pair with the same structure as Agency.
func ProtectiveAgency(v types.VesselProfile, opts types.Options, card rates.Card) float64 {
	return agencyFee(v.NRT, v.BerthDays, opts, card.ProtectiveAgencyBase, card.ProtectiveAgencyExtraOver10K)
}

func agencyFee(nrt float64, berthDays int, opts types.Options, base, extra []bracket.Row) float64 {
	fee := bracket.Resolve(nrt, base)

	if nrt > 10000 {
		per1000 := bracket.Resolve(nrt, extra)
		fee += math.Ceil((nrt-10000)/1000) * per1000
	}

	if berthDays > 7 {
		periods := math.Ceil(float64(berthDays-7) / 5)
		fee += fee * 0.20 * periods
	}

	if opts.SpecialServices {
		fee *= 1.30
	}

	// Only the larger of the two discounts applies, never their sum
	discount := math.Max(opts.PassengerDiscountPct, opts.ContainerDiscountPct)
	fee *= 1 - discount/100

	return types.Round2(fee)
}
