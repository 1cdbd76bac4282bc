package kernel

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/govalues/decimal"
)

// moneyScale is the number of decimal places money amounts are kept at.
const moneyScale = 2

// ErrMoneyIsNotConstructed is returned when using an improperly initialized
// Money value. Money must be created via one of the constructors.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, NewMoneyFromString, NewMoneyFromMinorUnits, or ZeroMoney")

// ErrCurrencyMismatch is returned when an arithmetic operation mixes
// currencies.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// Money is an immutable value object pairing a decimal amount with a
// currency code. All wallet balances, fees, and commission amounts in the
// domain are expressed as Money.
//
// The zero value is invalid; use a constructor. Arithmetic between two Money
// values requires matching currencies.
type Money struct {
	amount   decimal.Decimal
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount and a currency code.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if currency == "" {
		return Money{}, errs.NewValueIsRequiredError("currency")
	}

	return Money{
		amount:   amount.Round(moneyScale),
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewMoneyFromString parses a decimal string ("1500.50") into Money.
func NewMoneyFromString(s, currency string) (Money, error) {
	amount, err := decimal.Parse(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}

	return NewMoney(amount, currency)
}

// NewMoneyFromMinorUnits creates Money from an integer amount of
// minor-currency units (e.g. 1550 -> 15.50).
func NewMoneyFromMinorUnits(minor int64, currency string) (Money, error) {
	amount, err := decimal.New(minor, moneyScale)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}

	return NewMoney(amount, currency)
}

// ZeroMoney returns a zero amount in the given currency.
func ZeroMoney(currency string) (Money, error) {
	return NewMoney(decimal.Decimal{}, currency)
}

// Validate checks that the value was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the ISO currency code.
func (m Money) Currency() string {
	return m.currency
}

// String implements fmt.Stringer.
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount, m.currency)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNeg()
}

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPos()
}

// Add returns the sum of two Money values of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.checkOperands(other); err != nil {
		return Money{}, err
	}

	sum, err := m.amount.Add(other.amount)
	if err != nil {
		return Money{}, err
	}

	return NewMoney(sum, m.currency)
}

// Sub returns the difference of two Money values of the same currency.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.checkOperands(other); err != nil {
		return Money{}, err
	}

	diff, err := m.amount.Sub(other.amount)
	if err != nil {
		return Money{}, err
	}

	return NewMoney(diff, m.currency)
}

// MulRate multiplies the amount by a fractional rate, rounding to the money
// scale. Used for commission share computation.
func (m Money) MulRate(rate decimal.Decimal) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	product, err := m.amount.Mul(rate)
	if err != nil {
		return Money{}, err
	}

	return NewMoney(product.Round(moneyScale), m.currency)
}

// Cmp compares two Money values of the same currency. It returns -1, 0, or
// +1 as m is less than, equal to, or greater than other.
func (m Money) Cmp(other Money) (int, error) {
	if err := m.checkOperands(other); err != nil {
		return 0, err
	}

	return m.amount.Cmp(other.amount), nil
}

// IsEqual reports whether two Money values have the same amount and
// currency.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Cmp(other.amount) == 0
}

func (m Money) checkOperands(other Money) error {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return err
	}
	if m.currency != other.currency {
		return errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency))
	}
	return nil
}
