package commission

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/govalues/decimal"
)

// Actor identifies a settlement participant on a commission line.
type Actor string

const (
	// ActorPlatform is the marketplace operator.
	ActorPlatform Actor = "platform"
	// ActorPharmacy is the pharmacy that fulfilled the order.
	ActorPharmacy Actor = "pharmacy"
	// ActorCourier is the courier who delivered the order.
	ActorCourier Actor = "courier"
)

// Validate checks the actor is one of the known settlement participants.
func (a Actor) Validate() error {
	switch a {
	case ActorPlatform, ActorPharmacy, ActorCourier:
		return nil
	default:
		return errs.NewValueIsInvalidError("commission actor")
	}
}

var (
	// ErrCommissionIsNotConstructed is returned when a Commission instance
	// was not created through a constructor.
	ErrCommissionIsNotConstructed = errors.New(
		"Commission must be created via NewCommission constructor")
	// ErrTotalMustBePositive is returned when distributing a zero or
	// negative order total.
	ErrTotalMustBePositive = errs.NewValueIsInvalidError("commission total must be positive")
)

// Line is one actor's share of a distributed order total. Lines are
// immutable once the Commission is created.
type Line struct {
	actor  Actor
	rate   decimal.Decimal
	amount kernel.Money
}

// NewLine builds a commission line. Used by persistence restoration; domain
// code obtains lines through NewCommission.
func NewLine(actor Actor, rate decimal.Decimal, amount kernel.Money) (Line, error) {
	if err := errors.Join(actor.Validate(), amount.Validate()); err != nil {
		return Line{}, err
	}
	if rate.IsNeg() || amount.IsNegative() {
		return Line{}, errs.NewValueIsInvalidError("commission line share")
	}

	return Line{actor: actor, rate: rate, amount: amount}, nil
}

// Actor returns the settlement participant.
func (l Line) Actor() Actor {
	return l.actor
}

// Rate returns the fractional rate the amount was computed from.
func (l Line) Rate() decimal.Decimal {
	return l.rate
}

// Amount returns the actor's share of the order total.
func (l Line) Amount() kernel.Money {
	return l.amount
}

// Commission is the aggregate recording how one order's total was split
// between the settlement actors. Exactly one Commission exists per order;
// the distribution use case enforces idempotency with a unique order
// constraint.
//
// Invariants:
//   - Line amounts sum exactly to the order total
//   - The pharmacy line absorbs rounding remainders
//   - An order without a courier has no courier line; that share is folded
//     into the pharmacy line
type Commission struct {
	id        kernel.UUID
	orderID   kernel.UUID
	total     kernel.Money
	lines     []Line
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewCommission computes the split of total according to rates and builds
// the Commission. When hasCourier is false the courier share is folded into
// the pharmacy before computing amounts.
//
// Platform and courier amounts are rounded shares of the total; the
// pharmacy amount is the remainder, so the three always sum exactly to the
// total.
func NewCommission(
	id kernel.UUID,
	orderID kernel.UUID,
	total kernel.Money,
	rates RateSet,
	hasCourier bool,
	createdAt time.Time,
) (*Commission, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), total.Validate()); err != nil {
		return nil, err
	}
	if !total.IsPositive() {
		return nil, ErrTotalMustBePositive
	}

	effective := rates
	if !hasCourier {
		folded, err := rates.FoldCourierIntoPharmacy()
		if err != nil {
			return nil, err
		}
		effective = folded
	}

	platformAmount, err := total.MulRate(effective.Platform)
	if err != nil {
		return nil, err
	}
	courierAmount, err := total.MulRate(effective.Courier)
	if err != nil {
		return nil, err
	}
	pharmacyAmount, err := total.Sub(platformAmount)
	if err != nil {
		return nil, err
	}
	pharmacyAmount, err = pharmacyAmount.Sub(courierAmount)
	if err != nil {
		return nil, err
	}
	if pharmacyAmount.IsNegative() {
		return nil, errs.NewValueIsInvalidError("pharmacy share must not be negative")
	}

	lines := make([]Line, 0, 3)
	if !effective.Platform.IsZero() {
		lines = append(lines, Line{actor: ActorPlatform, rate: effective.Platform, amount: platformAmount})
	}
	if !effective.Pharmacy.IsZero() {
		lines = append(lines, Line{actor: ActorPharmacy, rate: effective.Pharmacy, amount: pharmacyAmount})
	}
	if !effective.Courier.IsZero() {
		lines = append(lines, Line{actor: ActorCourier, rate: effective.Courier, amount: courierAmount})
	}

	return &Commission{
		id:        id,
		orderID:   orderID,
		total:     total,
		lines:     lines,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreCommission reconstructs a Commission from persistence.
func RestoreCommission(
	id kernel.UUID,
	orderID kernel.UUID,
	total kernel.Money,
	lines []Line,
	createdAt time.Time,
) (*Commission, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), total.Validate()); err != nil {
		return nil, err
	}

	return &Commission{
		id:        id,
		orderID:   orderID,
		total:     total,
		lines:     append([]Line(nil), lines...),
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Commission was created through a constructor.
func (c *Commission) Validate() error {
	if c == nil {
		return ErrCommissionIsNotConstructed
	}
	return c.guard.Validate(ErrCommissionIsNotConstructed)
}

// ID returns the commission's unique identifier.
func (c *Commission) ID() kernel.UUID {
	return c.id
}

// OrderID returns the distributed order's identifier.
func (c *Commission) OrderID() kernel.UUID {
	return c.orderID
}

// Total returns the distributed order total.
func (c *Commission) Total() kernel.Money {
	return c.total
}

// CreatedAt returns the distribution timestamp.
func (c *Commission) CreatedAt() time.Time {
	return c.createdAt
}

// Lines returns a copy of the commission lines.
func (c *Commission) Lines() []Line {
	return append([]Line(nil), c.lines...)
}

// LineFor returns the line for the given actor, if present.
func (c *Commission) LineFor(actor Actor) (Line, bool) {
	for _, l := range c.lines {
		if l.actor == actor {
			return l, true
		}
	}
	return Line{}, false
}

// LinesTotal sums all line amounts. The result always equals Total; the sum
// is exposed so callers and tests can assert the invariant.
func (c *Commission) LinesTotal() (kernel.Money, error) {
	sum, err := kernel.ZeroMoney(c.total.Currency())
	if err != nil {
		return kernel.Money{}, err
	}

	for _, l := range c.lines {
		sum, err = sum.Add(l.amount)
		if err != nil {
			return kernel.Money{}, err
		}
	}
	return sum, nil
}
