// Package tariff - pilotage services (T.1.1 in-port, T.2 out-of-port, USD)
package tariff

import (
	"port-proforma/core/rates"
	"port-proforma/core/types"
)

// PilotageInPort computes the in-port pilotage fee in USD, tiered by GRT
// and vessel category. Unknown categories price as other-cargo.
func PilotageInPort(v types.VesselProfile, opts types.Options, card rates.Card) float64 {
	fee := tierFee(v.GRT, card.PilotageRate(v.Category))
	if pct := opts.TankerPct(); pct > 0 {
		fee *= 1 + pct/100
	}
	return types.Round2(fee)
}

// PilotageTransit computes an out-of-port pilotage fee in USD for a named
// service route. Unlike the in-port tariff there is no first-tier
// short-circuit: the extra term always applies and is simply zero at or
// below 1000 GRT. An unknown service yields a zero fee.
func PilotageTransit(grt float64, svc types.TransitService, tankerPct float64, card rates.Card) float64 {
	r, ok := card.TransitPilotage[svc]
	if !ok {
		return 0
	}
	fee := r.Base + extraThousands(grt)*r.Per1000
	if tankerPct > 0 {
		fee *= 1 + tankerPct/100
	}
	return types.Round2(fee)
}

// PortPilotage combines the in-port fee with the transit service a port
// requires. Izmir calls add the Izmir anchorage pilotage on top of T.1.1.
func PortPilotage(v types.VesselProfile, opts types.Options, card rates.Card) float64 {
	fee := PilotageInPort(v, opts, card)
	if v.Port == types.PortIzmir {
		fee += PilotageTransit(v.GRT, types.ServiceIzmirAnchorage, opts.TankerPct(), card)
	}
	return types.Round2(fee)
}
