package delivery

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ActorKind classifies who is acting on a delivery.
type ActorKind string

const (
	// ActorKindCourier is the courier assigned to the delivery.
	ActorKindCourier ActorKind = "courier"
	// ActorKindAdmin is an operations administrator.
	ActorKindAdmin ActorKind = "admin"
	// ActorKindCustomer is the ordering customer. Customers may view a
	// delivery tied to their own order but never transition it.
	ActorKindCustomer ActorKind = "customer"
)

// Actor is the caller identity every delivery transition is authorized
// against.
type Actor struct {
	kind      ActorKind
	courierID kernel.UUID
}

// CourierActor identifies a courier caller.
func CourierActor(courierID kernel.UUID) (Actor, error) {
	if err := courierID.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{kind: ActorKindCourier, courierID: courierID}, nil
}

// AdminActor identifies an operations administrator. Administrators may
// transition any delivery.
func AdminActor() Actor {
	return Actor{kind: ActorKindAdmin}
}

// CustomerActor identifies the ordering customer.
func CustomerActor() Actor {
	return Actor{kind: ActorKindCustomer}
}

// Validate checks the actor carries a known kind.
func (a Actor) Validate() error {
	switch a.kind {
	case ActorKindCourier, ActorKindAdmin, ActorKindCustomer:
		return nil
	default:
		return errs.NewValueIsRequiredError("actor")
	}
}

// Kind returns the actor classification.
func (a Actor) Kind() ActorKind {
	return a.kind
}

// CourierID returns the courier identity for courier actors.
func (a Actor) CourierID() kernel.UUID {
	return a.courierID
}
