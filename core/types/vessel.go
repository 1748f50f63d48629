// Package types defines the domain model for port-call proforma estimation.
package types

// Flag is the flag state of a vessel
type Flag string

const (
	// FlagDomestic is a Turkish-flagged vessel
	FlagDomestic Flag = "domestic"

	// FlagForeign is any other flag state
	FlagForeign Flag = "foreign"
)

// IsDomestic reports whether the vessel flies the domestic flag
func (f Flag) IsDomestic() bool {
	return f == FlagDomestic
}

// VesselCategory is the tariff classification of a vessel
type VesselCategory string

const (
	// CategoryCabotage is a vessel working the domestic coastal trade
	CategoryCabotage VesselCategory = "cabotage"

	// CategoryPassengerFerryRoro covers passenger, ferry and ro-ro vessels
	CategoryPassengerFerryRoro VesselCategory = "passenger_ferry_roro"

	// CategoryContainer is a container vessel
	CategoryContainer VesselCategory = "container"

	// CategoryOtherCargo is any other cargo vessel
	CategoryOtherCargo VesselCategory = "other_cargo"

	// CategoryOtherAll covers all remaining vessel types
	CategoryOtherAll VesselCategory = "other_all"
)

// ParseVesselCategory maps a string to a vessel category.
// Unknown values fall back to the other-cargo category.
func ParseVesselCategory(s string) VesselCategory {
	switch VesselCategory(s) {
	case CategoryCabotage, CategoryPassengerFerryRoro, CategoryContainer,
		CategoryOtherCargo, CategoryOtherAll:
		return VesselCategory(s)
	}
	return CategoryOtherCargo
}

// Port identifies a supported port of call
type Port string

const (
	PortTekirdag Port = "TEKIRDAG"
	PortIzmir    Port = "IZMIR"
	PortAliaga   Port = "ALIAGA"
	PortMersin   Port = "MERSIN"
)

// Ports lists the supported ports in display order
func Ports() []Port {
	return []Port{PortTekirdag, PortIzmir, PortAliaga, PortMersin}
}

// ParsePort maps a string to a port identity
func ParsePort(s string) (Port, bool) {
	switch Port(s) {
	case PortTekirdag, PortIzmir, PortAliaga, PortMersin:
		return Port(s), true
	}
	return "", false
}

// CallPurpose is the reason for the port call
type CallPurpose string

const (
	PurposeLoading     CallPurpose = "loading"
	PurposeDischarging CallPurpose = "discharging"
)

// IsImport reports whether the call purpose is an import (discharge) call
func (p CallPurpose) IsImport() bool {
	return p == PurposeDischarging
}

// TransitService names an out-of-port pilotage service
type TransitService string

const (
	ServiceHalic                TransitService = "halic"
	ServiceIstanbulCanakkale    TransitService = "istanbul_canakkale_transit"
	ServiceAhirkapiGelibolu     TransitService = "ahirkapi_gelibolu_marmara"
	ServiceIstanbulInnerTransit TransitService = "istanbul_inner_transit"
	ServiceBuyukderePasabahce   TransitService = "buyukdere_pasabahce_anchorage"
	ServiceCanakkaleInner       TransitService = "canakkale_inner_anchorage"
	ServiceIzmirAnchorage       TransitService = "izmir_anchorage"
)

// VesselProfile is an immutable snapshot of a single port call.
// It is created once per estimate request and never mutated.
type VesselProfile struct {
	// Name is the vessel name, informational only
	Name string `json:"name"`

	// NRT is the net registered tonnage
	NRT float64 `json:"nrt"`

	// GRT is the gross registered tonnage
	GRT float64 `json:"grt"`

	// GT is the gross tonnage, used by the berthing tariff
	GT float64 `json:"gt"`

	// Flag is the flag state
	Flag Flag `json:"flag"`

	// Category is the tariff classification
	Category VesselCategory `json:"category"`

	// CargoKind describes the cargo, informational only
	CargoKind string `json:"cargo_kind,omitempty"`

	// CargoMT is the cargo quantity in metric tons
	CargoMT float64 `json:"cargo_mt"`

	// BerthDays is the number of days alongside
	BerthDays int `json:"berth_days"`

	// AnchorageDays is the number of days at anchor
	AnchorageDays int `json:"anchorage_days"`

	// Port is the port of call
	Port Port `json:"port"`

	// Purpose is the reason for the call
	Purpose CallPurpose `json:"purpose"`
}

// IsCabotage reports whether the vessel is classified for the cabotage trade
func (v VesselProfile) IsCabotage() bool {
	return v.Category == CategoryCabotage
}

// Options carries the per-estimate surcharge and discount flags
type Options struct {
	// Overtime applies the weekend/holiday overtime surcharges
	Overtime bool `json:"overtime"`

	// TankerSurcharge applies the tanker percentage to pilotage
	TankerSurcharge bool `json:"tanker_surcharge"`

	// FourTugboats applies the four-tug surcharge to towage
	FourTugboats bool `json:"four_tugboats"`

	// DoubleMooringBoats doubles the mooring boat fee
	DoubleMooringBoats bool `json:"double_mooring_boats"`

	// UseFixedGarbage selects the flat compulsory garbage charge
	UseFixedGarbage bool `json:"use_fixed_garbage"`

	// SpecialServices applies the agency special-service surcharge
	SpecialServices bool `json:"special_services"`

	// ProtectiveAgency prices the agency line on the protective-agency
	// tariff instead of the full agency tariff
	ProtectiveAgency bool `json:"protective_agency"`

	// PassengerDiscountPct is the agency passenger discount percentage
	PassengerDiscountPct float64 `json:"passenger_discount_pct,omitempty"`

	// ContainerDiscountPct is the agency container-line discount percentage
	ContainerDiscountPct float64 `json:"container_discount_pct,omitempty"`
}

// Overtime surcharge is 50% when the flag is set.
const overtimePct = 50

// Tanker surcharge is 0.30% when the flag is set.
const tankerPct = 0.30

// OvertimePct returns the overtime percentage implied by the flag
func (o Options) OvertimePct() float64 {
	if o.Overtime {
		return overtimePct
	}
	return 0
}

// TankerPct returns the tanker surcharge percentage implied by the flag
func (o Options) TankerPct() float64 {
	if o.TankerSurcharge {
		return tankerPct
	}
	return 0
}
