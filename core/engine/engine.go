// Package engine assembles priced line items into a proforma.
//
// The engine is purely functional: every estimate is computed from an
// immutable vessel profile, rate card and exchange-rate pair, and returns
// a fresh Proforma. Concurrent estimates need no coordination.
package engine

import (
	"fmt"

	"port-proforma/core/exchange"
	"port-proforma/core/rates"
	"port-proforma/core/tariff"
	"port-proforma/core/types"
)

// Build computes the itemized proforma for one port call.
//
// Calculators run in the fixed tariff sequence; every line is priced in
// its native currency and expressed in the paired one through the
// converter. Totals are independent column sums. Soft failures (zeroed
// conversions from a non-positive rate) are reported in the proforma's
// Warnings, never as errors.
func Build(v types.VesselProfile, opts types.Options, fx exchange.Rates, card rates.Card) types.Proforma {
	b := &builder{fx: fx}

	if !fx.Valid() {
		b.warnings = append(b.warnings,
			"exchange rates must be strictly positive; affected conversions were zeroed")
	}

	// Fixed port entry/exit charge, only carried by some ports
	if inOut := card.PortInOut(v.Port); inOut > 0 {
		b.addUSD("CEYPORT port in Turkey in/out exp. (estimated)", inOut)
	}

	// Pilotage. The overtime flag multiplies the already-computed figure
	// by 1.50 on top of the calculator's own logic; this composition is
	// part of the tariff practice and is kept as is.
	pilot := tariff.PortPilotage(v, opts, card)
	if opts.Overtime {
		pilot = types.Round2(pilot * 1.50)
	}
	b.addUSD("Pilotage", pilot)

	b.addUSD("Tugboats", tariff.Towage(v, opts, card))
	b.addUSD(fmt.Sprintf("Wharfage / Quay dues (For %d days)", v.BerthDays), tariff.Berthing(v, card))
	b.addUSD("Mooring boat", tariff.Mooring(v, opts, card))

	b.addEUR("Garbage (Compulsory charge)", tariff.GarbageCompulsoryEUR(v.GRT, opts.UseFixedGarbage, card))

	b.addTRY("Harbour Master dues", tariff.HarbourMasterTL(v.NRT, opts.Overtime, card))
	b.addTRY("Port Service Fee", tariff.PortServiceTL(v.GT, v.Flag, card))
	b.addTRY("Sanitary dues", tariff.SanitaryTL(v.NRT, card))

	b.addUSD("Light dues", card.LightDuesUSD)

	b.addTRY("Customs Overtime", tariff.CustomsOvertimeTL(v.CargoMT, v.Purpose, card))

	if v.AnchorageDays > 0 {
		b.addUSD(fmt.Sprintf("Anchorage dues (For %d days)", v.AnchorageDays), tariff.Anchorage(v, card))
	}

	b.addUSD("Chamber of shipping fee", card.ChamberShippingFeeUSD)

	if share := tariff.ChamberFreightUSD(v.CargoMT, v.Flag, card); share > 0 {
		b.addUSD("Chamber of shipping share on freight", share)
	}

	b.addEUR("Contr. to Maritime Association fee", card.MaritimeAssocEUR)
	b.addUSD("Motorboat exp.", tariff.MotorboatUSD(v.Port, card))

	b.portExtras(v.Port, card)

	b.addEUR("Facilities & Other exp.", card.FacilitiesEUR)
	b.addEUR("Transportation exp.", card.TransportationEUR)
	b.addEUR("Fiscal & Notary exp.", card.FiscalNotaryEUR)
	b.addEUR("Communication & Copy & Stamp exp.", card.CommunicationStampEUR)

	if superv := tariff.SupervisionUSD(v, card); superv > 0 {
		b.addUSD("Supervision fee (as per official tariff)", superv)
	}

	if opts.ProtectiveAgency {
		b.addEUR("Protective agency fee (as per official tariff)", tariff.ProtectiveAgency(v, opts, card))
	} else {
		b.addEUR("Agency fee (as per official tariff)", tariff.Agency(v, opts, card))
	}

	return types.Proforma{
		VesselName:      v.Name,
		Port:            v.Port,
		Purpose:         v.Purpose,
		Lines:           b.lines,
		TotalUSD:        types.Round2(b.totalUSD),
		TotalEUR:        types.Round2(b.totalEUR),
		RateCardVersion: card.Version,
		Warnings:        b.warnings,
	}
}

// builder accumulates lines and the two independent column totals
type builder struct {
	fx       exchange.Rates
	lines    []types.LineItem
	totalUSD float64
	totalEUR float64
	warnings []string
}

// addUSD appends a USD-native line, deriving the EUR column
func (b *builder) addUSD(desc string, usd float64) {
	usd = types.Round2(usd)
	b.append(types.LineItem{
		Description: desc,
		USD:         usd,
		EUR:         exchange.USDToEUR(usd, b.fx.USDToEUR),
		Native:      types.CurrencyUSD,
	})
}

// addEUR appends a EUR-native line, deriving the USD column
func (b *builder) addEUR(desc string, eur float64) {
	eur = types.Round2(eur)
	b.append(types.LineItem{
		Description: desc,
		USD:         exchange.EURToUSD(eur, b.fx.USDToEUR),
		EUR:         eur,
		Native:      types.CurrencyEUR,
	})
}

// addTRY appends a TL-native line: TL converts to USD first, the EUR
// column derives from the USD figure.
func (b *builder) addTRY(desc string, tl float64) {
	usd := exchange.TRYToUSD(tl, b.fx.USDToTRY)
	b.append(types.LineItem{
		Description: desc,
		USD:         usd,
		EUR:         exchange.USDToEUR(usd, b.fx.USDToEUR),
		Native:      types.CurrencyTRY,
	})
}

func (b *builder) append(line types.LineItem) {
	b.lines = append(b.lines, line)
	b.totalUSD += line.USD
	b.totalEUR += line.EUR
}

// portExtras appends the port-specific extra line items
func (b *builder) portExtras(port types.Port, card rates.Card) {
	switch port {
	case types.PortIzmir:
		b.addTRY("Izmir travel allowance", card.IzmirTravelAllowanceTL)
	case types.PortAliaga:
		custody := card.AliagaCustodyTL
		if card.AliagaCustodyDouble {
			custody *= 2
		}
		b.addTRY("Aliaga custody overtime", custody)
		b.addTRY("Aliaga custody travel allowance", card.AliagaTravelAllowanceTL)
	}
}
