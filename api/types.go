// Package api - request and response types
package api

import (
	"time"

	"port-proforma/core/exchange"
	"port-proforma/core/tariff"
	"port-proforma/core/types"
	"port-proforma/internal/errors"
)

// EstimateRequest is the body of POST /proforma
type EstimateRequest struct {
	// Vessel describes the port call
	Vessel VesselInput `json:"vessel"`

	// Rates are the exchange rates to price with; zero values fall back
	// to the configured defaults
	Rates exchange.Rates `json:"rates"`

	// Options carries the surcharge and discount flags
	Options types.Options `json:"options"`

	// Waste, when present, requests a waste-excess estimate alongside
	// the proforma
	Waste *tariff.WasteVolumes `json:"waste,omitempty"`

	// WasteWeekend prices the waste excess at weekend rates
	WasteWeekend bool `json:"waste_weekend,omitempty"`
}

// VesselInput is the wire form of a vessel profile
type VesselInput struct {
	Name          string  `json:"name"`
	NRT           float64 `json:"nrt"`
	GRT           float64 `json:"grt"`
	GT            float64 `json:"gt"`
	Flag          string  `json:"flag"`
	Category      string  `json:"category"`
	CargoKind     string  `json:"cargo_kind,omitempty"`
	CargoMT       float64 `json:"cargo_mt"`
	BerthDays     int     `json:"berth_days"`
	AnchorageDays int     `json:"anchorage_days"`
	Port          string  `json:"port"`
	Purpose       string  `json:"purpose"`
}

// Profile validates the input and builds the immutable vessel profile.
// The port and purpose must name known values; an unknown vessel category
// falls back to other-cargo per the tariff's default policy.
func (in VesselInput) Profile() (types.VesselProfile, error) {
	port, ok := types.ParsePort(in.Port)
	if !ok {
		return types.VesselProfile{}, errors.Newf(errors.TypeInput, "unknown port: %q", in.Port)
	}

	var purpose types.CallPurpose
	switch types.CallPurpose(in.Purpose) {
	case types.PurposeLoading, types.PurposeDischarging:
		purpose = types.CallPurpose(in.Purpose)
	default:
		return types.VesselProfile{}, errors.Newf(errors.TypeInput, "unknown call purpose: %q", in.Purpose)
	}

	flag := types.FlagForeign
	if in.Flag == string(types.FlagDomestic) {
		flag = types.FlagDomestic
	}

	return types.VesselProfile{
		Name:          in.Name,
		NRT:           in.NRT,
		GRT:           in.GRT,
		GT:            in.GT,
		Flag:          flag,
		Category:      types.ParseVesselCategory(in.Category),
		CargoKind:     in.CargoKind,
		CargoMT:       in.CargoMT,
		BerthDays:     in.BerthDays,
		AnchorageDays: in.AnchorageDays,
		Port:          port,
		Purpose:       purpose,
	}, nil
}

// EstimateResponse is the body of a successful POST /proforma
type EstimateResponse struct {
	// RequestID identifies this estimate
	RequestID string `json:"request_id"`

	// Timestamp is when the estimate was computed
	Timestamp time.Time `json:"timestamp"`

	// Proforma is the itemized estimate
	Proforma types.Proforma `json:"proforma"`

	// WasteExcessEUR is present when the request carried waste volumes
	WasteExcessEUR *float64 `json:"waste_excess_eur,omitempty"`

	// DurationMs is the server-side computation time
	DurationMs int64 `json:"duration_ms"`
}

// ErrorResponse is the body of a failed request
type ErrorResponse struct {
	RequestID string `json:"request_id,omitempty"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}
