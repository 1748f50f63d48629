// Package tariff - towage services (T.1.2, USD)
package tariff

import (
	"port-proforma/core/rates"
	"port-proforma/core/types"
)

// Towage computes the tugboat fee in USD, tiered by GRT and vessel
// category. A four-tug operation on a vessel of 5000 GRT or more adds 30%;
// the overtime percentage applies after that.
func Towage(v types.VesselProfile, opts types.Options, card rates.Card) float64 {
	fee := tierFee(v.GRT, card.TowageRate(v.Category))

	if opts.FourTugboats && RoundUp1000(v.GRT) >= 5000 {
		fee *= 1.30
	}

	if pct := opts.OvertimePct(); pct > 0 {
		fee *= 1 + pct/100
	}

	return types.Round2(fee)
}
