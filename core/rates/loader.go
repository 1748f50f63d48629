// Package rates - HCL override loader.
// Hosts supply exchange rates and flat-fee overrides as a small HCL file;
// the bracket tables themselves are versioned data and are not overridable.
package rates

import (
	"github.com/hashicorp/hcl/v2/hclsimple"

	"port-proforma/core/exchange"
	"port-proforma/internal/errors"
)

// Overrides is the decoded form of a rates override file.
//
//	exchange {
//	  usd_to_eur = 1.1801
//	  usd_to_try = 34.50
//	}
//
//	flat_fees {
//	  light_dues_usd = 810
//	}
type Overrides struct {
	Exchange *ExchangeBlock `hcl:"exchange,block"`
	FlatFees *FlatFeeBlock  `hcl:"flat_fees,block"`
}

// ExchangeBlock carries the two exchange rate scalars
type ExchangeBlock struct {
	USDToEUR float64 `hcl:"usd_to_eur"`
	USDToTRY float64 `hcl:"usd_to_try"`
}

// FlatFeeBlock carries optional flat-fee overrides
type FlatFeeBlock struct {
	LightDuesUSD          *float64 `hcl:"light_dues_usd,optional"`
	ChamberShippingFeeUSD *float64 `hcl:"chamber_shipping_fee_usd,optional"`
	MaritimeAssocEUR      *float64 `hcl:"maritime_assoc_eur,optional"`
	GarbageFixedEUR       *float64 `hcl:"garbage_fixed_eur,optional"`
	MotorboatUSD          *float64 `hcl:"motorboat_usd,optional"`
	MotorboatIzmirUSD     *float64 `hcl:"motorboat_izmir_usd,optional"`
	FacilitiesEUR         *float64 `hcl:"facilities_eur,optional"`
	TransportationEUR     *float64 `hcl:"transportation_eur,optional"`
	FiscalNotaryEUR       *float64 `hcl:"fiscal_notary_eur,optional"`
	CommunicationStampEUR *float64 `hcl:"communication_stamp_eur,optional"`
}

// LoadOverrides parses a rates override file (.hcl or .json)
func LoadOverrides(path string) (*Overrides, error) {
	var o Overrides
	if err := hclsimple.DecodeFile(path, nil, &o); err != nil {
		return nil, errors.Rates("failed to parse rates override file", err).
			WithContext("path", path)
	}
	return &o, nil
}

// Rates returns the exchange rates from the override file, nil when the
// file carries no exchange block.
func (o *Overrides) Rates() *exchange.Rates {
	if o.Exchange == nil {
		return nil
	}
	return &exchange.Rates{
		USDToEUR: o.Exchange.USDToEUR,
		USDToTRY: o.Exchange.USDToTRY,
	}
}

// Apply returns a copy of the card with the flat-fee overrides applied.
// The input card is not modified.
func (o *Overrides) Apply(card Card) Card {
	if o.FlatFees == nil {
		return card
	}
	f := o.FlatFees
	setIf(&card.LightDuesUSD, f.LightDuesUSD)
	setIf(&card.ChamberShippingFeeUSD, f.ChamberShippingFeeUSD)
	setIf(&card.MaritimeAssocEUR, f.MaritimeAssocEUR)
	setIf(&card.GarbageFixedEUR, f.GarbageFixedEUR)
	setIf(&card.MotorboatUSD, f.MotorboatUSD)
	setIf(&card.MotorboatIzmirUSD, f.MotorboatIzmirUSD)
	setIf(&card.FacilitiesEUR, f.FacilitiesEUR)
	setIf(&card.TransportationEUR, f.TransportationEUR)
	setIf(&card.FiscalNotaryEUR, f.FiscalNotaryEUR)
	setIf(&card.CommunicationStampEUR, f.CommunicationStampEUR)
	return card
}

func setIf(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
