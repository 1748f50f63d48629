package tariff

import (
	"testing"

	"port-proforma/core/rates"
)

func TestWasteFixedByGRTBracket(t *testing.T) {
	card := rates.Default()

	cases := []struct {
		grt  float64
		want float64
	}{
		{800, 80},
		{4500, 140},
		{5000, 140}, // bound is inclusive
		{5001, 210},
		{200000, 720}, // open-ended top bracket
	}
	for _, c := range cases {
		if got := WasteFixedEUR(c.grt, card); got != c.want {
			t.Errorf("WasteFixedEUR(%v) = %v, want %v", c.grt, got, c.want)
		}
	}
}

func TestGarbageCompulsoryIsAlwaysTheFlatConstant(t *testing.T) {
	card := rates.Default()

	// The charge ignores GRT and the fixed flag entirely
	for _, grt := range []float64{0, 800, 60000} {
		for _, useFixed := range []bool{true, false} {
			if got := GarbageCompulsoryEUR(grt, useFixed, card); got != 211 {
				t.Errorf("GarbageCompulsoryEUR(%v, %v) = %v, want 211", grt, useFixed, got)
			}
		}
	}
}

func TestWasteExcessWeekday(t *testing.T) {
	card := rates.Default()

	// GRT 4500 falls in the 5000 bracket: included bilge 3, sewage 2,
	// garbage 1. Bilge 5 m3 leaves 2 m3 excess at 3.5; sewage 1 m3 is
	// under its inclusion and clips to zero.
	vol := WasteVolumes{
		Marpol1Slop:  0,
		Marpol1Bilge: 5,
		Marpol4:      1,
		Marpol5:      0,
	}
	got := WasteExcessEUR(vol, 4500, false, card)
	if got != 7.00 {
		t.Fatalf("WasteExcessEUR = %v, want 7.00", got)
	}
}

func TestWasteExcessSlopChargedInFull(t *testing.T) {
	card := rates.Default()

	// Slop water has no included volume: 2 m3 at 1.5 regardless of bracket
	vol := WasteVolumes{Marpol1Slop: 2}
	if got := WasteExcessEUR(vol, 4500, false, card); got != 3.00 {
		t.Errorf("slop-only excess = %v, want 3.00", got)
	}
}

func TestWasteExcessWeekendRatesAreTheirOwnTable(t *testing.T) {
	card := rates.Default()

	vol := WasteVolumes{Marpol1Bilge: 5}
	weekday := WasteExcessEUR(vol, 4500, false, card)
	weekend := WasteExcessEUR(vol, 4500, true, card)

	// 2 m3 excess: weekday 2 * 3.5, weekend 2 * 43.75
	if weekday != 7.00 {
		t.Errorf("weekday = %v, want 7.00", weekday)
	}
	if weekend != 87.50 {
		t.Errorf("weekend = %v, want 87.50", weekend)
	}
}

func TestWasteExcessNegativeVolumesClip(t *testing.T) {
	card := rates.Default()
	vol := WasteVolumes{Marpol1Slop: -3, Marpol1Bilge: -1, Marpol4: -2, Marpol5: -5}
	if got := WasteExcessEUR(vol, 4500, false, card); got != 0 {
		t.Errorf("negative volumes = %v, want 0", got)
	}
}
