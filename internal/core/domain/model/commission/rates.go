package commission

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"

	"github.com/govalues/decimal"
)

var (
	// ErrRateIsNegative is returned when a configured commission rate is
	// below zero.
	ErrRateIsNegative = errors.New("commission rate must not be negative")
	// ErrRatesMustSumToOne is returned when the three normalized rates do
	// not cover the whole order total.
	ErrRatesMustSumToOne = errors.New("normalized commission rates must sum to 1")
)

// NormalizeRate converts a configured rate into a fraction. Values less than
// or equal to 1 are taken as already-fractional, values above 1 as percents.
// Both "0.10" and "10" therefore mean 10%. This is the only place the
// convention lives; callers must never divide by 100 themselves.
func NormalizeRate(raw decimal.Decimal) (decimal.Decimal, error) {
	if raw.IsNeg() {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause("rate",
			fmt.Errorf("%w: %s", ErrRateIsNegative, raw))
	}

	if raw.Cmp(decimal.One) <= 0 {
		return raw, nil
	}

	return raw.Quo(decimal.Hundred)
}

// RateSet holds the normalized fractional shares of an order total for the
// three settlement actors. Construct it with NewRateSet so every rate passes
// through NormalizeRate exactly once.
type RateSet struct {
	Platform decimal.Decimal
	Pharmacy decimal.Decimal
	Courier  decimal.Decimal
}

// NewRateSet normalizes the three raw rates and checks they cover the order
// total exactly.
func NewRateSet(platform, pharmacy, courier decimal.Decimal) (RateSet, error) {
	p, err := NormalizeRate(platform)
	if err != nil {
		return RateSet{}, err
	}
	ph, err := NormalizeRate(pharmacy)
	if err != nil {
		return RateSet{}, err
	}
	c, err := NormalizeRate(courier)
	if err != nil {
		return RateSet{}, err
	}

	sum, err := p.Add(ph)
	if err != nil {
		return RateSet{}, err
	}
	sum, err = sum.Add(c)
	if err != nil {
		return RateSet{}, err
	}
	if sum.Cmp(decimal.One) != 0 {
		return RateSet{}, errs.NewValueIsInvalidErrorWithCause("rates",
			fmt.Errorf("%w: got %s", ErrRatesMustSumToOne, sum))
	}

	return RateSet{Platform: p, Pharmacy: ph, Courier: c}, nil
}

// FoldCourierIntoPharmacy returns a copy of the set with the courier share
// moved to the pharmacy. Used for pickup-only orders that never had a
// courier.
func (r RateSet) FoldCourierIntoPharmacy() (RateSet, error) {
	pharmacy, err := r.Pharmacy.Add(r.Courier)
	if err != nil {
		return RateSet{}, err
	}

	return RateSet{
		Platform: r.Platform,
		Pharmacy: pharmacy,
		Courier:  decimal.Decimal{},
	}, nil
}
