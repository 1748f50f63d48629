// Package api - proforma request handler.
// The handler wraps the engine; it contains no tariff logic of its own.
package api

import (
	"time"

	"port-proforma/core/engine"
	"port-proforma/core/exchange"
	"port-proforma/core/rates"
	"port-proforma/core/tariff"
)

// Handler executes estimate requests against a fixed rate card
type Handler struct {
	card         rates.Card
	defaultRates exchange.Rates
}

// NewHandler creates a handler for a rate card and default exchange rates
func NewHandler(card rates.Card, defaults exchange.Rates) *Handler {
	return &Handler{
		card:         card,
		defaultRates: defaults,
	}
}

// Card returns the handler's rate card
func (h *Handler) Card() rates.Card {
	return h.card
}

// execute builds the proforma for one request
func (h *Handler) execute(requestID string, req *EstimateRequest) (*EstimateResponse, error) {
	profile, err := req.Vessel.Profile()
	if err != nil {
		return nil, err
	}

	fx := req.Rates
	if !fx.Valid() {
		fx = h.defaultRates
	}

	resp := &EstimateResponse{
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Proforma:  engine.Build(profile, req.Options, fx, h.card),
	}

	if req.Waste != nil {
		excess := tariff.WasteExcessEUR(*req.Waste, profile.GRT, req.WasteWeekend, h.card)
		resp.WasteExcessEUR = &excess
	}

	return resp, nil
}
