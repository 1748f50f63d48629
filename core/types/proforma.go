// Package types - proforma output types
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyTRY Currency = "TRY"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// LineItem is one priced entry of a proforma.
// USD and EUR are rounded independently; the two columns are not forced
// to reconcile beyond the converter's own rounding, so penny-level drift
// between them is expected.
type LineItem struct {
	// Description is the human-readable line label
	Description string `json:"description"`

	// USD is the amount in US dollars
	USD float64 `json:"usd"`

	// EUR is the amount in euros
	EUR float64 `json:"eur"`

	// Native is the currency the tariff denominates this line in
	Native Currency `json:"native"`
}

// Proforma is the itemized cost estimate for one port call.
// It is constructed fresh per calculation and immutable once returned.
type Proforma struct {
	// VesselName echoes the profile's vessel name
	VesselName string `json:"vessel_name"`

	// Port is the port of call
	Port Port `json:"port"`

	// Purpose is the call purpose
	Purpose CallPurpose `json:"purpose"`

	// Lines are the priced entries in tariff order
	Lines []LineItem `json:"lines"`

	// TotalUSD is the sum of the USD column
	TotalUSD float64 `json:"total_usd"`

	// TotalEUR is the sum of the EUR column, computed independently
	TotalEUR float64 `json:"total_eur"`

	// RateCardVersion identifies the tariff revision used
	RateCardVersion string `json:"rate_card_version"`

	// Warnings lists soft failures (zeroed conversions) hit while pricing
	Warnings []string `json:"warnings,omitempty"`
}

// Round2 rounds a monetary amount to two decimal places.
// Every calculator and conversion rounds through this helper so repeated
// conversions accumulate identical rounding.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
