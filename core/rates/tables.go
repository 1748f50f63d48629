// Package rates - 2026 tariff revision data.
// Values transcribe the official tariff documents; tables are sorted
// ascending by bound and end in an effectively unbounded sentinel row.
package rates

import (
	"port-proforma/core/bracket"
	"port-proforma/core/types"
)

// openEnd is the sentinel upper bound of the last row of every table
const openEnd = 999999

// Default returns the 2026 tariff revision
func Default() Card {
	return Card{
		Version: "2026.1",

		// Tariff 1: agency services (EUR), per call, up to 7 berth days
		AgencyBase: []bracket.Row{
			{UpTo: 500, Value: 600},
			{UpTo: 1000, Value: 1000},
			{UpTo: 2000, Value: 1500},
			{UpTo: 3000, Value: 1850},
			{UpTo: 4000, Value: 2300},
			{UpTo: 5000, Value: 2750},
			{UpTo: 7500, Value: 3200},
			{UpTo: 10000, Value: 4000},
		},
		AgencyExtraOver10K: []bracket.Row{
			{UpTo: 20000, Value: 125},
			{UpTo: 30000, Value: 100},
			{UpTo: openEnd, Value: 75},
		},

		// Tariff 2: protective agency (EUR)
		ProtectiveAgencyBase: []bracket.Row{
			{UpTo: 500, Value: 300},
			{UpTo: 1000, Value: 500},
			{UpTo: 2000, Value: 750},
			{UpTo: 3000, Value: 925},
			{UpTo: 4000, Value: 1150},
			{UpTo: 5000, Value: 1375},
			{UpTo: 7500, Value: 1600},
			{UpTo: 10000, Value: 2000},
		},
		ProtectiveAgencyExtraOver10K: []bracket.Row{
			{UpTo: 20000, Value: 63},
			{UpTo: 30000, Value: 50},
			{UpTo: openEnd, Value: 38},
		},

		// T.1.1 in-port pilotage (USD/GRT)
		Pilotage: map[types.VesselCategory]TierRate{
			types.CategoryCabotage:           {Base: 63, Per1000: 23},
			types.CategoryPassengerFerryRoro: {Base: 105, Per1000: 42},
			types.CategoryContainer:          {Base: 139, Per1000: 59},
			types.CategoryOtherCargo:         {Base: 179, Per1000: 74},
		},

		// T.2 out-of-port pilotage (USD)
		TransitPilotage: map[types.TransitService]TierRate{
			types.ServiceHalic:                {Base: 605, Per1000: 136},
			types.ServiceIstanbulCanakkale:    {Base: 550, Per1000: 100},
			types.ServiceAhirkapiGelibolu:     {Base: 550, Per1000: 100},
			types.ServiceIstanbulInnerTransit: {Base: 457, Per1000: 55},
			types.ServiceBuyukderePasabahce:   {Base: 550, Per1000: 100},
			types.ServiceCanakkaleInner:       {Base: 282, Per1000: 48},
			types.ServiceIzmirAnchorage:       {Base: 124, Per1000: 68},
		},

		// T.1.2 towage (USD/GRT), amendment set 1
		Towage: map[types.VesselCategory]TierRate{
			types.CategoryCabotage:           {Base: 70, Per1000: 25},
			types.CategoryPassengerFerryRoro: {Base: 116, Per1000: 46},
			types.CategoryContainer:          {Base: 153, Per1000: 65},
			types.CategoryOtherCargo:         {Base: 197, Per1000: 82},
		},

		// T.1.3 mooring (USD/GRT)
		MooringCabotage: TierRate{Base: 11.29, Per1000: 6.16},
		MooringOthers:   TierRate{Base: 22.68, Per1000: 11.29},

		// Daily berthing (USD, GT driven)
		BerthingBaseUSD:      10,
		BerthingPer1000USD:   25,
		BerthingBreakpointGT: 81000,

		// Harbour-master dues (TL, 2026), NRT driven
		HarbourMasterTL: []bracket.Row{
			{UpTo: 500, Value: 1283.90},
			{UpTo: 2000, Value: 3424},
			{UpTo: 4000, Value: 6848.10},
			{UpTo: 8000, Value: 10272.20},
			{UpTo: 10000, Value: 17120.20},
			{UpTo: 30000, Value: 34240.90},
			{UpTo: 50000, Value: 51361.40},
			{UpTo: openEnd, Value: 85602.30},
		},
		HarbourMasterOvertimeTL: []bracket.Row{
			{UpTo: 500, Value: 251},
			{UpTo: 2000, Value: 628},
			{UpTo: 4000, Value: 1506},
			{UpTo: 8000, Value: 2259},
			{UpTo: 10000, Value: 3012},
			{UpTo: 30000, Value: 6024},
			{UpTo: 50000, Value: 9036},
			{UpTo: openEnd, Value: 15059},
		},

		// Sanitary dues (TL per NRT)
		SanitaryPerNRTTL: 21.67,

		// Port-service fee (TL, 2026), GT driven
		PortService: []PortServiceRow{
			{GTMax: 500, DomesticTL: 500, ForeignTL: 1400},
			{GTMax: 1500, DomesticTL: 1120, ForeignTL: 2800},
			{GTMax: 2500, DomesticTL: 2050, ForeignTL: 4200},
			{GTMax: 5000, DomesticTL: 2800, ForeignTL: 4900},
			{GTMax: 10000, DomesticTL: 3400, ForeignTL: 5600},
			{GTMax: 25000, DomesticTL: 4000, ForeignTL: 6300},
			{GTMax: 35000, DomesticTL: 4500, ForeignTL: 7000},
			{GTMax: 50000, DomesticTL: 5000, ForeignTL: 7500},
			{GTMax: openEnd, DomesticTL: 5300, ForeignTL: 8000},
		},

		// Customs overtime (TL), cargo tonnage driven
		CustomsImportTL: []bracket.Row{
			{UpTo: 3000, Value: 20100},
			{UpTo: 6000, Value: 26350},
			{UpTo: 9000, Value: 32700},
			{UpTo: 12000, Value: 38840},
			{UpTo: 15000, Value: 45305},
			{UpTo: 18000, Value: 51585},
			{UpTo: 21000, Value: 57935},
			{UpTo: 25000, Value: 62210},
			{UpTo: 30000, Value: 68525},
			{UpTo: 35000, Value: 77205},
			{UpTo: openEnd, Value: 106105},
		},
		CustomsExportTL: []bracket.Row{
			{UpTo: 3000, Value: 8615},
			{UpTo: 6000, Value: 11230},
			{UpTo: 9000, Value: 13750},
			{UpTo: 12000, Value: 16465},
			{UpTo: 15000, Value: 18505},
			{UpTo: 18000, Value: 21345},
			{UpTo: 21000, Value: 24915},
			{UpTo: 25000, Value: 28395},
			{UpTo: 30000, Value: 35830},
			{UpTo: 35000, Value: 42335},
			{UpTo: openEnd, Value: 46770},
		},

		// Chamber freight share (USD), cargo tonnage driven
		ChamberFreightUSD: []bracket.Row{
			{UpTo: 20000, Value: 580},
			{UpTo: 40000, Value: 870},
			{UpTo: 60000, Value: 1130},
			{UpTo: 100000, Value: 1400},
			{UpTo: openEnd, Value: 1780},
		},

		// Stamp duties (TL)
		StampSummaryTL:     119.40,
		StampOrdinoTL:      5.71,
		StampPortRequestTL: 274.42,

		// Anchorage (USD per GRT per day)
		AnchorageDomesticRate: 0.002,
		AnchorageForeignRate:  0.004,

		// Waste tariff (EUR, GRT driven) with included m3 per MARPOL category
		Waste: []WasteRow{
			{GRTMax: 1000, FeeEUR: 80, IncludedMarpol1: 1, IncludedMarpol4: 2, IncludedMarpol5: 1},
			{GRTMax: 5000, FeeEUR: 140, IncludedMarpol1: 3, IncludedMarpol4: 2, IncludedMarpol5: 1},
			{GRTMax: 10000, FeeEUR: 210, IncludedMarpol1: 4, IncludedMarpol4: 3, IncludedMarpol5: 2},
			{GRTMax: 15000, FeeEUR: 250, IncludedMarpol1: 5, IncludedMarpol4: 4, IncludedMarpol5: 2},
			{GRTMax: 20000, FeeEUR: 300, IncludedMarpol1: 6, IncludedMarpol4: 5, IncludedMarpol5: 2},
			{GRTMax: 25000, FeeEUR: 350, IncludedMarpol1: 7, IncludedMarpol4: 5, IncludedMarpol5: 3},
			{GRTMax: 35000, FeeEUR: 400, IncludedMarpol1: 8, IncludedMarpol4: 6, IncludedMarpol5: 3},
			{GRTMax: 60000, FeeEUR: 540, IncludedMarpol1: 10, IncludedMarpol4: 10, IncludedMarpol5: 4},
			{GRTMax: openEnd, FeeEUR: 720, IncludedMarpol1: 13, IncludedMarpol4: 15, IncludedMarpol5: 5},
		},
		WasteExcessWeekday: WasteExcessRates{
			Marpol1Slop:  1.5,
			Marpol1Bilge: 3.5,
			Marpol4:      1.5,
			Marpol5:      2.5,
		},
		WasteExcessWeekend: WasteExcessRates{
			Marpol1Slop:  1.875,
			Marpol1Bilge: 43.75,
			Marpol4:      18.75,
			Marpol5:      31.25,
		},
		GarbageFixedEUR: 211,

		// Flat fees
		LightDuesUSD:          798,
		ChamberShippingFeeUSD: 128,
		MaritimeAssocEUR:      47,
		MotorboatUSD:          500,
		MotorboatIzmirUSD:     225,
		FacilitiesEUR:         466,
		TransportationEUR:     424,
		FiscalNotaryEUR:       212,
		CommunicationStampEUR: 212,

		// Supervision fee
		SupervisionCargoPct:   0.15,
		SupervisionMultiplier: 1.19,

		// Port-specific constants
		PortInOutUSD: map[types.Port]float64{
			types.PortTekirdag: 1005, // CEYPORT in/out
		},
		IzmirTravelAllowanceTL:  3865,
		AliagaCustodyTL:         4950,
		AliagaCustodyDouble:     true,
		AliagaTravelAllowanceTL: 4250,
		TransitVisaTL:           9376.40,

		// Tariff 8 incidental services
		AutoServicePerGRTUSD: 0.01,
		VOAThreshold:         5000,
		VOAUnderEUR:          20,
		VOAOverEUR:           40,
		SparePartsPerKgEUR:   1.00,
		SparePartsMinEUR:     150,
		SparePartsMaxEUR:     500,
		BunkerSupervisionEUR: 250,
		CrewChangeBaseEUR:    175,
		CrewChangeExtraEUR:   50,
		MedicalPerPatientEUR: 175,
		CaptainAdvancePct:    0.015,
		CaptainAdvanceMinEUR: 150,
	}
}
