package shipment

import (
	"errors"
	"fmt"

	"shiplabel/internal/pkg/errs"
	"shiplabel/internal/pkg/guard"
)

// ErrRequestIsNotConstructed is returned when a Request bypassed NewRequest.
var ErrRequestIsNotConstructed = errs.NewValueIsRequiredError("shipment request must be created via NewRequest")

// Request is the immutable input of one label purchase: where from, where to, what.
type Request struct { //nolint:recvcheck //using for validation
	from   Address
	to     Address
	parcel Parcel

	guard guard.ConstructorGuard
}

// NewRequest combines already constructed parts into a Request.
func NewRequest(from, to Address, parcel Parcel) (Request, error) {
	if err := errors.Join(
		wrap("from", from.Validate()),
		wrap("to", to.Validate()),
		wrap("parcel", parcel.Validate()),
	); err != nil {
		return Request{}, err
	}

	return Request{
		from:   from,
		to:     to,
		parcel: parcel,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the request was created through NewRequest.
func (r Request) Validate() error {
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

func (r Request) From() Address  { return r.from }
func (r Request) To() Address    { return r.to }
func (r Request) Parcel() Parcel { return r.parcel }

func wrap(part string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", part, err)
}
