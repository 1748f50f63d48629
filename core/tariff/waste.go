// Package tariff - waste handling (EUR, GRT driven)
package tariff

import (
	"math"

	"port-proforma/core/bracket"
	"port-proforma/core/rates"
	"port-proforma/core/types"
)

// WasteVolumes are the delivered waste volumes in cubic metres
type WasteVolumes struct {
	// Marpol1Slop is MARPOL Annex I slop water; it has no included volume
	// and any delivery is charged in full
	Marpol1Slop float64 `json:"marpol1_slop"`

	// Marpol1Bilge is MARPOL Annex I bilge water
	Marpol1Bilge float64 `json:"marpol1_bilge"`

	// Marpol4 is MARPOL Annex IV sewage
	Marpol4 float64 `json:"marpol4"`

	// Marpol5 is MARPOL Annex V garbage
	Marpol5 float64 `json:"marpol5"`
}

// WasteFixedEUR computes the fixed waste fee in EUR from the GRT bracket.
func WasteFixedEUR(grt float64, card rates.Card) float64 {
	row, ok := bracket.ResolveIn(grt, card.Waste, wasteBound)
	if !ok {
		return 0
	}
	return row.FeeEUR
}

// GarbageCompulsoryEUR returns the compulsory garbage charge in EUR.
// The charge is the flat card constant regardless of GRT or the fixed
// flag; both parameters are accepted and ignored, matching the tariff
// practice this implements.
func GarbageCompulsoryEUR(grt float64, useFixed bool, card rates.Card) float64 {
	_ = grt
	_ = useFixed
	return card.GarbageFixedEUR
}

// WasteExcessEUR computes the charge in EUR for waste delivered beyond the
// volumes included in the vessel's GRT bracket, at weekday or weekend
// per-m3 rates. Slop water has no inclusion, so any nonzero volume is
// charged in full.
func WasteExcessEUR(vol WasteVolumes, grt float64, weekend bool, card rates.Card) float64 {
	excessRates := card.WasteExcessWeekday
	if weekend {
		excessRates = card.WasteExcessWeekend
	}

	row, ok := bracket.ResolveIn(grt, card.Waste, wasteBound)
	if !ok {
		return 0
	}

	extra := math.Max(0, vol.Marpol1Slop) * excessRates.Marpol1Slop
	extra += math.Max(0, vol.Marpol1Bilge-row.IncludedMarpol1) * excessRates.Marpol1Bilge
	extra += math.Max(0, vol.Marpol4-row.IncludedMarpol4) * excessRates.Marpol4
	extra += math.Max(0, vol.Marpol5-row.IncludedMarpol5) * excessRates.Marpol5

	return types.Round2(extra)
}

func wasteBound(r rates.WasteRow) float64 {
	return r.GRTMax
}
