package rate

import (
	"errors"
	"strings"

	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/pkg/errs"
	"shiplabel/internal/pkg/guard"
)

// ErrRateIsNotConstructed is returned when a Rate bypassed NewRate.
var ErrRateIsNotConstructed = errs.NewValueIsRequiredError("rate must be created via NewRate")

// Rate is one priced shipping option of a quote: a carrier, its service level and the cost.
//
// Example:
//
//	r, err := rate.NewRate("rate_1", "USPS", "Priority", "10.00", "USD")
//	if err != nil {
//	    return fmt.Errorf("provider returned an unusable rate: %w", err)
//	}
type Rate struct { //nolint:recvcheck //using for validation
	id       string
	carrier  string
	service  string
	amount   kernel.Amount
	currency string

	guard guard.ConstructorGuard
}

// NewRate validates a provider rate. The identifier and a parseable amount are
// mandatory since the rate must be purchasable and comparable; carrier, service and
// currency are informational and passed through as given.
func NewRate(id, carrier, service, amount, currency string) (Rate, error) {
	r := Rate{
		carrier:  strings.TrimSpace(carrier),
		service:  strings.TrimSpace(service),
		currency: strings.TrimSpace(currency),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(r.setID(id), r.setAmount(amount)); err != nil {
		return Rate{}, err
	}

	return r, nil
}

// Validate ensures the rate was created through NewRate.
func (r Rate) Validate() error {
	return r.guard.Validate(ErrRateIsNotConstructed)
}

func (r Rate) ID() string            { return r.id }
func (r Rate) Carrier() string       { return r.carrier }
func (r Rate) Service() string       { return r.service }
func (r Rate) Amount() kernel.Amount { return r.amount }
func (r Rate) Currency() string      { return r.currency }

// IsCheaperThan reports whether r costs strictly less than other.
func (r Rate) IsCheaperThan(other Rate) bool {
	return r.amount.LessThan(other.amount)
}

func (r *Rate) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("rate id")
	}
	r.id = id
	return nil
}

func (r *Rate) setAmount(text string) error {
	amount, err := kernel.NewAmount(text)
	if err != nil {
		return err
	}
	r.amount = amount
	return nil
}
