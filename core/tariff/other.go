// Package tariff - miscellaneous and tariff 8 incidental services
package tariff

import (
	"math"

	"port-proforma/core/rates"
	"port-proforma/core/types"
)

// MotorboatUSD returns the motorboat expense for a port. Izmir uses its
// own lower constant.
func MotorboatUSD(port types.Port, card rates.Card) float64 {
	if port == types.PortIzmir {
		return card.MotorboatIzmirUSD
	}
	return card.MotorboatUSD
}

// SupervisionUSD computes the supervision fee in USD: cargo tonnage times
// the fixed percentage times the tariff multiplier. Vessels that are both
// domestic-flagged and cabotage-classified are exempt.
func SupervisionUSD(v types.VesselProfile, card rates.Card) float64 {
	if v.Flag.IsDomestic() && v.IsCabotage() {
		return 0
	}
	return types.Round2(v.CargoMT * card.SupervisionCargoPct * card.SupervisionMultiplier)
}

// VOAEUR returns the vessel-owner-account fee in EUR by the card threshold.
func VOAEUR(value float64, card rates.Card) float64 {
	if value <= card.VOAThreshold {
		return card.VOAUnderEUR
	}
	return card.VOAOverEUR
}

// SparePartsEUR computes the spare-parts clearance fee in EUR: per-kg rate
// clamped between the tariff minimum and maximum.
func SparePartsEUR(kg float64, card rates.Card) float64 {
	fee := math.Max(0, kg) * card.SparePartsPerKgEUR
	if fee < card.SparePartsMinEUR {
		fee = card.SparePartsMinEUR
	}
	if fee > card.SparePartsMaxEUR {
		fee = card.SparePartsMaxEUR
	}
	return types.Round2(fee)
}

// CrewChangeEUR computes the crew join/leave attendance fee in EUR: a base
// fee covers the first two persons, each additional person adds the extra
// rate.
func CrewChangeEUR(persons int, card rates.Card) float64 {
	if persons <= 0 {
		return 0
	}
	fee := card.CrewChangeBaseEUR
	if persons > 2 {
		fee += float64(persons-2) * card.CrewChangeExtraEUR
	}
	return types.Round2(fee)
}

// MedicalEUR computes the medical attendance fee in EUR per patient.
func MedicalEUR(patients int, card rates.Card) float64 {
	if patients <= 0 {
		return 0
	}
	return types.Round2(float64(patients) * card.MedicalPerPatientEUR)
}

// CaptainAdvanceEUR computes the commission in EUR on a cash advance to
// the master, with the tariff minimum.
func CaptainAdvanceEUR(amount float64, card rates.Card) float64 {
	fee := math.Max(0, amount) * card.CaptainAdvancePct
	if fee < card.CaptainAdvanceMinEUR {
		fee = card.CaptainAdvanceMinEUR
	}
	return types.Round2(fee)
}
