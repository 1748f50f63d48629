package tariff

import (
	"testing"

	"port-proforma/core/rates"
	"port-proforma/core/types"
)

func TestHarbourMasterBrackets(t *testing.T) {
	card := rates.Default()

	if got := HarbourMasterTL(2196, false, card); got != 6848.10 {
		t.Errorf("HarbourMasterTL(2196) = %v, want 6848.10", got)
	}
	if got := HarbourMasterTL(2196, true, card); got != 1506 {
		t.Errorf("HarbourMasterTL(2196, overtime) = %v, want 1506", got)
	}
	// Open-ended top bracket
	if got := HarbourMasterTL(2e6, false, card); got != 85602.30 {
		t.Errorf("HarbourMasterTL above all bounds = %v, want 85602.30", got)
	}
}

func TestSanitaryLinearInNRT(t *testing.T) {
	card := rates.Default()
	if got := SanitaryTL(2196, card); got != 47587.32 {
		t.Errorf("SanitaryTL(2196) = %v, want 47587.32", got)
	}
	if got := SanitaryTL(0, card); got != 0 {
		t.Errorf("SanitaryTL(0) = %v, want 0", got)
	}
}

func TestPortServiceFlagColumns(t *testing.T) {
	card := rates.Default()

	if got := PortServiceTL(5197, types.FlagForeign, card); got != 5600 {
		t.Errorf("PortServiceTL(5197, foreign) = %v, want 5600", got)
	}
	if got := PortServiceTL(5197, types.FlagDomestic, card); got != 3400 {
		t.Errorf("PortServiceTL(5197, domestic) = %v, want 3400", got)
	}
}

func TestCustomsOvertimeSelectsTableByPurpose(t *testing.T) {
	card := rates.Default()

	// Discharging is an import call
	if got := CustomsOvertimeTL(5520, types.PurposeDischarging, card); got != 26350 {
		t.Errorf("import customs = %v, want 26350", got)
	}
	if got := CustomsOvertimeTL(5520, types.PurposeLoading, card); got != 11230 {
		t.Errorf("export customs = %v, want 11230", got)
	}
}

func TestChamberFreightZeroForDomesticFlag(t *testing.T) {
	card := rates.Default()

	if got := ChamberFreightUSD(5520, types.FlagForeign, card); got != 580 {
		t.Errorf("foreign freight share = %v, want 580", got)
	}
	if got := ChamberFreightUSD(5520, types.FlagDomestic, card); got != 0 {
		t.Errorf("domestic freight share = %v, want 0", got)
	}
}

func TestOrdinoIsHalfTheHarbourMasterFigure(t *testing.T) {
	if got := OrdinoUSD(198.50); got != 99.25 {
		t.Errorf("OrdinoUSD(198.50) = %v, want 99.25", got)
	}
}

func TestAutoServicePerGRT(t *testing.T) {
	card := rates.Default()
	if got := AutoServiceUSD(5197, card); got != 51.97 {
		t.Errorf("AutoServiceUSD(5197) = %v, want 51.97", got)
	}
}

func TestStampDuties(t *testing.T) {
	card := rates.Default()
	duties := StampDutiesTL(card)
	if duties.SummaryDeclarationTL != 119.40 || duties.OrdinoTL != 5.71 || duties.PortRequestTL != 274.42 {
		t.Errorf("StampDutiesTL = %+v", duties)
	}
}
