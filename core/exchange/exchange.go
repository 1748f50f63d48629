// Package exchange converts amounts among USD, EUR and TRY.
//
// All conversions route through USD as the pivot currency and round to two
// decimal places at the point of conversion. A non-positive rate is a
// configuration error: conversions fail soft and return zero instead of
// dividing by zero, so a misconfigured rate zeroes a line rather than
// crashing an estimate.
package exchange

import "port-proforma/core/types"

// Rates holds the two exchange rate scalars an estimate needs.
// Both are expressed against the USD pivot and must be strictly positive.
type Rates struct {
	// USDToEUR is r in "1 EUR = r USD": USD-to-EUR conversion divides by it
	USDToEUR float64 `json:"usd_to_eur"`

	// USDToTRY is r in "1 USD = r TL": USD-to-TRY conversion multiplies by it
	USDToTRY float64 `json:"usd_to_try"`
}

// Valid reports whether both rates are strictly positive
func (r Rates) Valid() bool {
	return r.USDToEUR > 0 && r.USDToTRY > 0
}

// USDToEUR converts a USD amount to EUR
func USDToEUR(usd, rate float64) float64 {
	if rate <= 0 {
		return 0
	}
	return types.Round2(usd / rate)
}

// EURToUSD converts a EUR amount to USD
func EURToUSD(eur, rate float64) float64 {
	if rate <= 0 {
		return 0
	}
	return types.Round2(eur * rate)
}

// USDToTRY converts a USD amount to TRY
func USDToTRY(usd, rate float64) float64 {
	if rate <= 0 {
		return 0
	}
	return types.Round2(usd * rate)
}

// TRYToUSD converts a TRY amount to USD
func TRYToUSD(try, rate float64) float64 {
	if rate <= 0 {
		return 0
	}
	return types.Round2(try / rate)
}
