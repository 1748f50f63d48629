// Package rates holds the tariff rate card: every bracket table and scalar
// constant of one tariff revision.
//
// A Card is an explicitly constructed, immutable value passed into every
// calculator call. It is loaded once at process start and never mutated at
// runtime; a new tariff revision is a new Card value.
package rates

import (
	"port-proforma/core/bracket"
	"port-proforma/core/types"
)

// TierRate is the shared base + per-1000 structure of the tiered tariffs:
// Base covers the first 1000 tons of the driving metric, Per1000 prices
// each additional 1000 beyond that.
type TierRate struct {
	Base    float64 `json:"base"`
	Per1000 float64 `json:"per_1000"`
}

// WasteRow is one GRT bracket of the fixed waste tariff, carrying the fee
// and the waste volumes included in it per MARPOL category.
type WasteRow struct {
	GRTMax          float64 `json:"grt_max"`
	FeeEUR          float64 `json:"fee_eur"`
	IncludedMarpol1 float64 `json:"included_marpol1"`
	IncludedMarpol4 float64 `json:"included_marpol4"`
	IncludedMarpol5 float64 `json:"included_marpol5"`
}

// WasteExcessRates are the per-m3 EUR rates charged on waste volumes above
// the bracket inclusions. Slop water has no inclusion and is charged in
// full at its rate.
type WasteExcessRates struct {
	Marpol1Slop  float64 `json:"marpol1_slop"`
	Marpol1Bilge float64 `json:"marpol1_bilge"`
	Marpol4      float64 `json:"marpol4"`
	Marpol5      float64 `json:"marpol5"`
}

// PortServiceRow is one GT bracket of the port-service tariff with its
// domestic and foreign flag columns, in TL.
type PortServiceRow struct {
	GTMax      float64 `json:"gt_max"`
	DomesticTL float64 `json:"domestic_tl"`
	ForeignTL  float64 `json:"foreign_tl"`
}

// Card is the full set of tariff tables and scalar constants for a given
// tariff revision.
type Card struct {
	// Version identifies the tariff revision
	Version string

	// Agency tariff (EUR, NRT driven)
	AgencyBase         []bracket.Row
	AgencyExtraOver10K []bracket.Row

	// Protective agency tariff (EUR, NRT driven)
	ProtectiveAgencyBase         []bracket.Row
	ProtectiveAgencyExtraOver10K []bracket.Row

	// In-port pilotage T1.1 (USD, GRT driven, per vessel category)
	Pilotage map[types.VesselCategory]TierRate

	// Out-of-port pilotage T2 (USD, GRT driven, per named service)
	TransitPilotage map[types.TransitService]TierRate

	// Towage T1.2 (USD, GRT driven, per vessel category)
	Towage map[types.VesselCategory]TierRate

	// Mooring T1.3 (USD, GRT driven, two-way classification)
	MooringCabotage TierRate
	MooringOthers   TierRate

	// Berthing (USD, GT driven)
	BerthingBaseUSD      float64 // daily rate at or below 500 GT
	BerthingPer1000USD   float64
	BerthingBreakpointGT float64

	// Harbour-master dues (TL, NRT driven)
	HarbourMasterTL         []bracket.Row
	HarbourMasterOvertimeTL []bracket.Row

	// Sanitary dues (TL per NRT)
	SanitaryPerNRTTL float64

	// Port-service fee (TL, GT driven)
	PortService []PortServiceRow

	// Customs overtime (TL, cargo tonnage driven)
	CustomsImportTL []bracket.Row
	CustomsExportTL []bracket.Row

	// Chamber freight share (USD, cargo tonnage driven)
	ChamberFreightUSD []bracket.Row

	// Stamp duties (TL)
	StampSummaryTL     float64
	StampOrdinoTL      float64
	StampPortRequestTL float64

	// Anchorage (USD per GRT per day)
	AnchorageDomesticRate float64
	AnchorageForeignRate  float64

	// Waste tariff (EUR, GRT driven)
	Waste              []WasteRow
	WasteExcessWeekday WasteExcessRates
	WasteExcessWeekend WasteExcessRates
	GarbageFixedEUR    float64

	// Flat fees
	LightDuesUSD          float64
	ChamberShippingFeeUSD float64
	MaritimeAssocEUR      float64
	MotorboatUSD          float64
	MotorboatIzmirUSD     float64
	FacilitiesEUR         float64
	TransportationEUR     float64
	FiscalNotaryEUR       float64
	CommunicationStampEUR float64

	// Supervision fee (USD, cargo tonnage driven)
	SupervisionCargoPct   float64
	SupervisionMultiplier float64

	// Port-specific constants
	PortInOutUSD            map[types.Port]float64
	IzmirTravelAllowanceTL  float64
	AliagaCustodyTL         float64
	AliagaCustodyDouble     bool
	AliagaTravelAllowanceTL float64
	TransitVisaTL           float64

	// Incidental services (tariff 8)
	AutoServicePerGRTUSD float64
	VOAThreshold         float64
	VOAUnderEUR          float64
	VOAOverEUR           float64
	SparePartsPerKgEUR   float64
	SparePartsMinEUR     float64
	SparePartsMaxEUR     float64
	BunkerSupervisionEUR float64
	CrewChangeBaseEUR    float64
	CrewChangeExtraEUR   float64
	MedicalPerPatientEUR float64
	CaptainAdvancePct    float64
	CaptainAdvanceMinEUR float64
}

// PortInOut returns the fixed entry/exit charge for a port, zero when the
// port carries none.
func (c Card) PortInOut(p types.Port) float64 {
	return c.PortInOutUSD[p]
}

// PilotageRate returns the in-port pilotage tier for a vessel category,
// falling back to the other-cargo category for unknown keys.
func (c Card) PilotageRate(cat types.VesselCategory) TierRate {
	if r, ok := c.Pilotage[cat]; ok {
		return r
	}
	return c.Pilotage[types.CategoryOtherCargo]
}

// TowageRate returns the towage tier for a vessel category, falling back
// to the other-cargo category for unknown keys.
func (c Card) TowageRate(cat types.VesselCategory) TierRate {
	if r, ok := c.Towage[cat]; ok {
		return r
	}
	return c.Towage[types.CategoryOtherCargo]
}

// MooringRate returns the mooring tier for the two-way classification
func (c Card) MooringRate(cabotage bool) TierRate {
	if cabotage {
		return c.MooringCabotage
	}
	return c.MooringOthers
}
