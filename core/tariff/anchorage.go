// Package tariff - anchorage dues (USD)
package tariff

import (
	"port-proforma/core/rates"
	"port-proforma/core/types"
)

// Anchorage computes the anchorage dues in USD: GRT times the per-day rate
// times the anchored days. The domestic rate is half the foreign rate.
func Anchorage(v types.VesselProfile, card rates.Card) float64 {
	rate := card.AnchorageForeignRate
	if v.Flag.IsDomestic() {
		rate = card.AnchorageDomesticRate
	}
	return types.Round2(v.GRT * rate * float64(v.AnchorageDays))
}
