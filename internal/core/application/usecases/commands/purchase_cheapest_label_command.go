package commands

import (
	"errors"

	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/model/shipment"
	"shiplabel/internal/pkg/guard"
)

var ErrPurchaseCheapestLabelCommandIsNotConstructed = errors.New(
	"PurchaseCheapestLabelCommand must be created via NewPurchaseCheapestLabelCommand constructor",
)

// PurchaseCheapestLabelCommand asks for a label for one shipment, bought at the
// cheapest rate the provider offers.
//
// Example:
//
//	cmd, err := NewPurchaseCheapestLabelCommand(kernel.NewUUID(), request)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type PurchaseCheapestLabelCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	request   shipment.Request

	guard guard.ConstructorGuard
}

// NewPurchaseCheapestLabelCommand validates that the request id and the shipment
// request were both properly constructed.
func NewPurchaseCheapestLabelCommand(
	requestID kernel.UUID,
	request shipment.Request,
) (PurchaseCheapestLabelCommand, error) {
	cmd := PurchaseCheapestLabelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setRequest(request),
	); err != nil {
		return PurchaseCheapestLabelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PurchaseCheapestLabelCommand) Validate() error {
	return c.guard.Validate(ErrPurchaseCheapestLabelCommandIsNotConstructed)
}

// RequestID returns the identifier used to correlate this purchase in logs.
func (c PurchaseCheapestLabelCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Request returns the shipment to buy a label for.
func (c PurchaseCheapestLabelCommand) Request() shipment.Request {
	return c.request
}

func (c *PurchaseCheapestLabelCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.requestID = id
	return nil
}

func (c *PurchaseCheapestLabelCommand) setRequest(request shipment.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}

	c.request = request
	return nil
}
