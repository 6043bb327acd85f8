package shipment

import (
	"errors"
	"regexp"
	"strings"

	"shiplabel/internal/pkg/errs"
	"shiplabel/internal/pkg/guard"
)

// CountryUS is the only destination and origin country supported.
const CountryUS = "US"

var (
	// ErrAddressIsNotConstructed is returned when an Address bypassed NewAddress.
	ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

	zipPattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	statePattern = regexp.MustCompile(`^[A-Z]{2}$`)

	errZipFormat     = errors.New("must be a valid US zip code (e.g. 10001 or 10001-1234)")
	errStateFormat   = errors.New("must be a two-letter state code")
	errCountryFormat = errors.New("only US addresses are supported")
)

// AddressInput carries raw address fields as received from a caller.
type AddressInput struct {
	Street1 string
	Street2 string
	City    string
	State   string
	Zip     string
	Country string
}

// Address is a validated US postal address.
// Fields are trimmed, the state is upper-cased and an empty country defaults to US.
type Address struct { //nolint:recvcheck //using for validation
	street1 string
	street2 string
	city    string
	state   string
	zip     string
	country string

	guard guard.ConstructorGuard
}

// NewAddress validates in and returns an Address.
// All field errors are reported together.
func NewAddress(in AddressInput) (Address, error) {
	a := Address{
		street2: strings.TrimSpace(in.Street2),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setStreet1(in.Street1),
		a.setCity(in.City),
		a.setState(in.State),
		a.setZip(in.Zip),
		a.setCountry(in.Country),
	); err != nil {
		return Address{}, err
	}

	return a, nil
}

// Validate ensures the address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Street1() string { return a.street1 }
func (a Address) Street2() string { return a.street2 }
func (a Address) City() string    { return a.city }
func (a Address) State() string   { return a.state }
func (a Address) Zip() string     { return a.zip }
func (a Address) Country() string { return a.country }

func (a *Address) setStreet1(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return errs.NewValueIsRequiredError("street1")
	}
	a.street1 = v
	return nil
}

func (a *Address) setCity(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = v
	return nil
}

func (a *Address) setState(v string) error {
	v = strings.ToUpper(strings.TrimSpace(v))
	if v == "" {
		return errs.NewValueIsRequiredError("state")
	}
	if !statePattern.MatchString(v) {
		return errs.NewValueIsInvalidErrorWithCause("state", errStateFormat)
	}
	a.state = v
	return nil
}

func (a *Address) setZip(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return errs.NewValueIsRequiredError("zip")
	}
	if !zipPattern.MatchString(v) {
		return errs.NewValueIsInvalidErrorWithCause("zip", errZipFormat)
	}
	a.zip = v
	return nil
}

func (a *Address) setCountry(v string) error {
	v = strings.ToUpper(strings.TrimSpace(v))
	if v == "" {
		v = CountryUS
	}
	if v != CountryUS {
		return errs.NewValueIsInvalidErrorWithCause("country", errCountryFormat)
	}
	a.country = v
	return nil
}
