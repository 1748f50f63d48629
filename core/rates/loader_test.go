package rates

import (
	"os"
	"path/filepath"
	"testing"
)

func writeOverrides(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rates.hcl")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesFullFile(t *testing.T) {
	path := writeOverrides(t, `
exchange {
  usd_to_eur = 1.1801
  usd_to_try = 34.50
}

flat_fees {
  light_dues_usd   = 810
  garbage_fixed_eur = 225
}
`)

	o, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}

	fx := o.Rates()
	if fx == nil {
		t.Fatal("no exchange rates decoded")
	}
	if fx.USDToEUR != 1.1801 || fx.USDToTRY != 34.50 {
		t.Errorf("rates = %+v", fx)
	}

	card := o.Apply(Default())
	if card.LightDuesUSD != 810 {
		t.Errorf("LightDuesUSD = %v, want 810", card.LightDuesUSD)
	}
	if card.GarbageFixedEUR != 225 {
		t.Errorf("GarbageFixedEUR = %v, want 225", card.GarbageFixedEUR)
	}
	// Fields the file does not name keep their defaults
	if card.MotorboatUSD != 500 {
		t.Errorf("MotorboatUSD = %v, want the default 500", card.MotorboatUSD)
	}
}

func TestLoadOverridesExchangeOnly(t *testing.T) {
	path := writeOverrides(t, `
exchange {
  usd_to_eur = 1.05
  usd_to_try = 36
}
`)

	o, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}
	if o.FlatFees != nil {
		t.Errorf("unexpected flat_fees block: %+v", o.FlatFees)
	}

	// Apply with no flat_fees block is the identity
	card := o.Apply(Default())
	if card.LightDuesUSD != Default().LightDuesUSD {
		t.Error("Apply without flat_fees changed the card")
	}
}

func TestLoadOverridesEmptyFile(t *testing.T) {
	path := writeOverrides(t, "")

	o, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}
	if o.Rates() != nil {
		t.Error("empty file produced exchange rates")
	}
}

func TestLoadOverridesBadSyntax(t *testing.T) {
	path := writeOverrides(t, "exchange {\n  usd_to_eur = \n}\n")

	if _, err := LoadOverrides(path); err == nil {
		t.Fatal("no error for malformed file")
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	if _, err := LoadOverrides(filepath.Join(t.TempDir(), "absent.hcl")); err == nil {
		t.Fatal("no error for missing file")
	}
}
