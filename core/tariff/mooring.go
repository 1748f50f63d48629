// Package tariff - mooring boat services (T.1.3, USD)
package tariff

import (
	"port-proforma/core/rates"
	"port-proforma/core/types"
)

// Mooring computes the mooring boat fee in USD. The tariff distinguishes
// only cabotage vessels from all others. Double mooring boats double the
// fee; the overtime percentage applies after that.
func Mooring(v types.VesselProfile, opts types.Options, card rates.Card) float64 {
	fee := tierFee(v.GRT, card.MooringRate(v.IsCabotage()))

	if opts.DoubleMooringBoats {
		fee *= 2
	}

	if pct := opts.OvertimePct(); pct > 0 {
		fee *= 1 + pct/100
	}

	return types.Round2(fee)
}
