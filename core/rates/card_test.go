package rates

import (
	"testing"

	"port-proforma/core/bracket"
	"port-proforma/core/types"
)

func assertSortedOpenTop(t *testing.T, name string, rows []bracket.Row) {
	t.Helper()
	if len(rows) == 0 {
		t.Fatalf("%s: empty table", name)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].UpTo <= rows[i-1].UpTo {
			t.Errorf("%s: bounds not strictly ascending at row %d (%v <= %v)",
				name, i, rows[i].UpTo, rows[i-1].UpTo)
		}
	}
	if rows[len(rows)-1].UpTo != openEnd {
		t.Errorf("%s: last bound = %v, want the open-end sentinel", name, rows[len(rows)-1].UpTo)
	}
}

func TestDefaultBracketTablesWellFormed(t *testing.T) {
	card := Default()

	assertSortedOpenTop(t, "AgencyExtraOver10K", card.AgencyExtraOver10K)
	assertSortedOpenTop(t, "ProtectiveAgencyExtraOver10K", card.ProtectiveAgencyExtraOver10K)
	assertSortedOpenTop(t, "HarbourMasterTL", card.HarbourMasterTL)
	assertSortedOpenTop(t, "HarbourMasterOvertimeTL", card.HarbourMasterOvertimeTL)
	assertSortedOpenTop(t, "CustomsImportTL", card.CustomsImportTL)
	assertSortedOpenTop(t, "CustomsExportTL", card.CustomsExportTL)
	assertSortedOpenTop(t, "ChamberFreightUSD", card.ChamberFreightUSD)

	// The agency base table tops out at 10000 NRT where the extra tier
	// takes over; it carries no sentinel.
	base := card.AgencyBase
	for i := 1; i < len(base); i++ {
		if base[i].UpTo <= base[i-1].UpTo {
			t.Errorf("AgencyBase: bounds not ascending at row %d", i)
		}
	}
	if base[len(base)-1].UpTo != 10000 {
		t.Errorf("AgencyBase top bound = %v, want 10000", base[len(base)-1].UpTo)
	}
}

func TestDefaultCategoryMapsComplete(t *testing.T) {
	card := Default()

	for _, cat := range []types.VesselCategory{
		types.CategoryCabotage,
		types.CategoryPassengerFerryRoro,
		types.CategoryContainer,
		types.CategoryOtherCargo,
	} {
		if _, ok := card.Pilotage[cat]; !ok {
			t.Errorf("Pilotage missing category %s", cat)
		}
		if _, ok := card.Towage[cat]; !ok {
			t.Errorf("Towage missing category %s", cat)
		}
	}
}

func TestRateFallbacksUseOtherCargo(t *testing.T) {
	card := Default()

	if got := card.PilotageRate("submarine"); got != card.Pilotage[types.CategoryOtherCargo] {
		t.Errorf("PilotageRate fallback = %+v", got)
	}
	if got := card.TowageRate(types.CategoryOtherAll); got != card.Towage[types.CategoryOtherCargo] {
		t.Errorf("TowageRate fallback = %+v", got)
	}
}

func TestPortInOutOnlyTekirdag(t *testing.T) {
	card := Default()

	if got := card.PortInOut(types.PortTekirdag); got != 1005 {
		t.Errorf("PortInOut(Tekirdag) = %v, want 1005", got)
	}
	for _, p := range []types.Port{types.PortIzmir, types.PortAliaga, types.PortMersin} {
		if got := card.PortInOut(p); got != 0 {
			t.Errorf("PortInOut(%s) = %v, want 0", p, got)
		}
	}
}

func TestWasteTableWellFormed(t *testing.T) {
	card := Default()

	for i := 1; i < len(card.Waste); i++ {
		prev, cur := card.Waste[i-1], card.Waste[i]
		if cur.GRTMax <= prev.GRTMax {
			t.Errorf("Waste: GRT bounds not ascending at row %d", i)
		}
		if cur.FeeEUR < prev.FeeEUR {
			t.Errorf("Waste: fee decreases at row %d", i)
		}
	}
	if top := card.Waste[len(card.Waste)-1]; top.GRTMax != openEnd {
		t.Errorf("Waste top bound = %v, want the open-end sentinel", top.GRTMax)
	}
}
