package wallet

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// OwnerKind classifies who a wallet belongs to.
type OwnerKind string

const (
	// OwnerKindCourier marks a courier's wallet.
	OwnerKindCourier OwnerKind = "courier"
	// OwnerKindPharmacy marks a pharmacy's wallet.
	OwnerKindPharmacy OwnerKind = "pharmacy"
	// OwnerKindPlatform marks the singleton platform wallet.
	OwnerKindPlatform OwnerKind = "platform"
)

// Owner is the polymorphic wallet owner. The platform owner carries the
// zero identifier as a sentinel; courier and pharmacy owners carry their
// aggregate's identifier.
type Owner struct {
	kind OwnerKind
	id   kernel.UUID
}

// CourierOwner builds the owner key for a courier's wallet.
func CourierOwner(courierID kernel.UUID) (Owner, error) {
	if err := courierID.Validate(); err != nil {
		return Owner{}, err
	}
	return Owner{kind: OwnerKindCourier, id: courierID}, nil
}

// PharmacyOwner builds the owner key for a pharmacy's wallet.
func PharmacyOwner(pharmacyID kernel.UUID) (Owner, error) {
	if err := pharmacyID.Validate(); err != nil {
		return Owner{}, err
	}
	return Owner{kind: OwnerKindPharmacy, id: pharmacyID}, nil
}

// PlatformOwner builds the owner key for the singleton platform wallet.
func PlatformOwner() Owner {
	return Owner{kind: OwnerKindPlatform}
}

// Validate checks the owner key is well formed. Courier and pharmacy
// owners must carry an identifier; the platform owner must not.
func (o Owner) Validate() error {
	switch o.kind {
	case OwnerKindCourier, OwnerKindPharmacy:
		return o.id.Validate()
	case OwnerKindPlatform:
		if o.id.Validate() == nil {
			return errs.NewValueIsInvalidError("platform owner must not carry an id")
		}
		return nil
	default:
		return errs.NewValueIsRequiredError("owner kind")
	}
}

// Kind returns the owner classification.
func (o Owner) Kind() OwnerKind {
	return o.kind
}

// ID returns the owning aggregate's identifier. For the platform owner the
// zero identifier is returned.
func (o Owner) ID() kernel.UUID {
	return o.id
}

// IsEqual reports whether two owner keys identify the same wallet.
func (o Owner) IsEqual(other Owner) bool {
	return o.kind == other.kind && o.id.IsEqual(other.id)
}
