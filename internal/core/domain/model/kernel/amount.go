package kernel

import (
	"errors"
	"fmt"
	"strings"

	"shiplabel/internal/pkg/errs"
	"shiplabel/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrAmountIsNotConstructed is returned when an Amount bypassed NewAmount.
	ErrAmountIsNotConstructed = errs.NewValueIsRequiredError("amount must be created via NewAmount")

	errAmountIsNegative = errors.New("amount cannot be negative")
)

// Amount is a non-negative decimal price as quoted by a provider.
// Amount compares by decimal value but keeps the provider's original text so
// prices are echoed back exactly as quoted ("8.10" stays "8.10", not "8.1").
//
// Example:
//
//	a, _ := kernel.NewAmount("12.50")
//	b, _ := kernel.NewAmount("8.1")
//	b.LessThan(a) // true
//	b.String()    // "8.1"
type Amount struct { //nolint:recvcheck //using for validation
	value decimal.Decimal
	text  string
	guard guard.ConstructorGuard
}

// NewAmount parses a decimal price. Surrounding whitespace is ignored.
// Empty input, non-numeric text and negative values are rejected.
func NewAmount(text string) (Amount, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Amount{}, errs.NewValueIsRequiredError("amount")
	}

	value, err := decimal.NewFromString(text)
	if err != nil {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q: %w", text, err))
	}

	if value.IsNegative() {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause("amount", errAmountIsNegative)
	}

	return Amount{
		value: value,
		text:  text,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the amount was created through NewAmount.
func (a Amount) Validate() error {
	return a.guard.Validate(ErrAmountIsNotConstructed)
}

// String returns the amount as originally quoted.
func (a Amount) String() string {
	return a.text
}

// Decimal returns the parsed value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// LessThan reports whether a is strictly cheaper than other.
func (a Amount) LessThan(other Amount) bool {
	return a.value.LessThan(other.value)
}

// IsEqual compares by value, so "8.1" equals "8.10".
func (a Amount) IsEqual(other Amount) bool {
	return a.value.Equal(other.value)
}
