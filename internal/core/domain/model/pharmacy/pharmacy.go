package pharmacy

import (
	"errors"

	"dispatch/internal/core/domain/model/commission"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrPharmacyIsNotConstructed is returned when a Pharmacy instance was
	// not created through a constructor.
	ErrPharmacyIsNotConstructed = errors.New(
		"Pharmacy must be created via NewPharmacy constructor")
	// ErrNameIsRequired is returned when creating a pharmacy without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Pharmacy is the aggregate root for a registered pharmacy.
//
// The location is nullable: a pharmacy can be registered before its
// coordinates are captured, but dispatch refuses to assign couriers to its
// orders until a location exists. The rate override, when set, replaces the
// platform default commission rates for this pharmacy's orders.
type Pharmacy struct {
	// id is the unique identifier for the pharmacy
	id kernel.UUID

	// name is the pharmacy's display name
	name string

	// location is the pickup coordinate pair, nil until captured
	location *kernel.GeoPoint

	// rateOverride replaces the default commission rates when set
	rateOverride *commission.RateSet

	// guard ensures the pharmacy was created via a constructor
	guard guard.ConstructorGuard
}

// NewPharmacy creates a Pharmacy without a location or rate override.
func NewPharmacy(id kernel.UUID, name string) (*Pharmacy, error) {
	p := &Pharmacy{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePharmacy reconstructs a Pharmacy from persistence.
func RestorePharmacy(
	id kernel.UUID,
	name string,
	location *kernel.GeoPoint,
	rateOverride *commission.RateSet,
) (*Pharmacy, error) {
	p, err := NewPharmacy(id, name)
	if err != nil {
		return nil, err
	}

	if location != nil {
		if err := p.UpdateLocation(*location); err != nil {
			return nil, err
		}
	}
	if rateOverride != nil {
		p.SetRateOverride(*rateOverride)
	}

	return p, nil
}

// Validate ensures the Pharmacy was created through a constructor.
func (p *Pharmacy) Validate() error {
	if p == nil {
		return ErrPharmacyIsNotConstructed
	}
	return p.guard.Validate(ErrPharmacyIsNotConstructed)
}

// IsEqual compares two pharmacies by identity.
func (p *Pharmacy) IsEqual(other *Pharmacy) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the pharmacy's unique identifier.
func (p *Pharmacy) ID() kernel.UUID {
	return p.id
}

// Name returns the display name.
func (p *Pharmacy) Name() string {
	return p.name
}

// Location returns a copy of the pickup coordinates, or nil when none were
// captured yet.
func (p *Pharmacy) Location() *kernel.GeoPoint {
	if p.location == nil {
		return nil
	}
	loc := *p.location
	return &loc
}

// HasLocation reports whether dispatch can use this pharmacy as a pickup
// point.
func (p *Pharmacy) HasLocation() bool {
	return p.location != nil
}

// RateOverride returns a copy of the commission-rate override, or nil when
// the platform defaults apply.
func (p *Pharmacy) RateOverride() *commission.RateSet {
	if p.rateOverride == nil {
		return nil
	}
	rates := *p.rateOverride
	return &rates
}

// UpdateLocation sets the pickup coordinates.
func (p *Pharmacy) UpdateLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	p.location = &location
	return nil
}

// SetRateOverride replaces the default commission rates for this pharmacy.
// The set was validated on construction, so the override is taken as is.
func (p *Pharmacy) SetRateOverride(rates commission.RateSet) {
	p.rateOverride = &rates
}

// ClearRateOverride reverts the pharmacy to the platform default rates.
func (p *Pharmacy) ClearRateOverride() {
	p.rateOverride = nil
}

// setID validates and sets the pharmacy's unique identifier.
func (p *Pharmacy) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setName validates and sets the display name.
func (p *Pharmacy) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}
