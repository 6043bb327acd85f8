package shipment

import (
	"errors"
	"math"

	"shiplabel/internal/pkg/errs"
	"shiplabel/internal/pkg/guard"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel bypassed NewParcel.
	ErrParcelIsNotConstructed = errs.NewValueIsRequiredError("parcel must be created via NewParcel")

	errDimensionNotPositive = errors.New("must be a positive number")
)

// Parcel holds the package weight and dimensions.
// Units are whatever the provider expects; they are passed through unchanged.
type Parcel struct { //nolint:recvcheck //using for validation
	weight float64
	length float64
	width  float64
	height float64

	guard guard.ConstructorGuard
}

// NewParcel returns a Parcel when every value is a finite number greater than zero.
func NewParcel(weight, length, width, height float64) (Parcel, error) {
	p := Parcel{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		setPositive("weight", weight, &p.weight),
		setPositive("length", length, &p.length),
		setPositive("width", width, &p.width),
		setPositive("height", height, &p.height),
	); err != nil {
		return Parcel{}, err
	}

	return p, nil
}

// Validate ensures the parcel was created through NewParcel.
func (p Parcel) Validate() error {
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

func (p Parcel) Weight() float64 { return p.weight }
func (p Parcel) Length() float64 { return p.length }
func (p Parcel) Width() float64  { return p.width }
func (p Parcel) Height() float64 { return p.height }

func setPositive(name string, v float64, dst *float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, errDimensionNotPositive)
	}
	*dst = v
	return nil
}
