// Package tariff - harbour dues family (TL or USD native).
// The TL-denominated fees return TL; the assembler converts them through
// the USD pivot.
package tariff

import (
	"port-proforma/core/bracket"
	"port-proforma/core/rates"
	"port-proforma/core/types"
)

// HarbourMasterTL computes the harbour-master dues in TL from the NRT
// bracket table, selecting the out-of-hours table when overtime is set.
func HarbourMasterTL(nrt float64, overtime bool, card rates.Card) float64 {
	table := card.HarbourMasterTL
	if overtime {
		table = card.HarbourMasterOvertimeTL
	}
	return bracket.Resolve(nrt, table)
}

// SanitaryTL computes the sanitary dues in TL: NRT times the per-unit rate.
func SanitaryTL(nrt float64, card rates.Card) float64 {
	return types.Round2(nrt * card.SanitaryPerNRTTL)
}

// PortServiceTL computes the port-service fee in TL from the GT bracket
// table, using the domestic or foreign column by flag state.
func PortServiceTL(gt float64, flag types.Flag, card rates.Card) float64 {
	row, ok := bracket.ResolveIn(gt, card.PortService, func(r rates.PortServiceRow) float64 {
		return r.GTMax
	})
	if !ok {
		return 0
	}
	if flag.IsDomestic() {
		return row.DomesticTL
	}
	return row.ForeignTL
}

// CustomsOvertimeTL computes the customs overtime fee in TL from the cargo
// tonnage, selecting the import or export table by call purpose.
func CustomsOvertimeTL(cargoMT float64, purpose types.CallPurpose, card rates.Card) float64 {
	table := card.CustomsExportTL
	if purpose.IsImport() {
		table = card.CustomsImportTL
	}
	return bracket.Resolve(cargoMT, table)
}

// ChamberFreightUSD computes the chamber-of-shipping freight share in USD.
// Domestic-flagged vessels pay nothing.
func ChamberFreightUSD(cargoMT float64, flag types.Flag, card rates.Card) float64 {
	if flag.IsDomestic() {
		return 0
	}
	return bracket.Resolve(cargoMT, card.ChamberFreightUSD)
}

// StampDuties carries the three stamp-duty items in TL
type StampDuties struct {
	SummaryDeclarationTL float64 `json:"summary_declaration_tl"`
	OrdinoTL             float64 `json:"ordino_tl"`
	PortRequestTL        float64 `json:"port_request_tl"`
}

// StampDutiesTL returns the stamp-duty items of the card
func StampDutiesTL(card rates.Card) StampDuties {
	return StampDuties{
		SummaryDeclarationTL: card.StampSummaryTL,
		OrdinoTL:             card.StampOrdinoTL,
		PortRequestTL:        card.StampPortRequestTL,
	}
}

// OrdinoUSD computes the ordino fee: half the harbour-master dues figure.
func OrdinoUSD(harbourMasterUSD float64) float64 {
	return types.Round2(harbourMasterUSD / 2)
}

// AutoServiceUSD computes the auto-service fee: GRT times the per-GRT rate.
func AutoServiceUSD(grt float64, card rates.Card) float64 {
	return types.Round2(grt * card.AutoServicePerGRTUSD)
}
