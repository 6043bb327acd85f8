package shipment_test

import (
	"testing"

	"shiplabel/internal/core/domain/model/shipment"
	"shiplabel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddressInput() shipment.AddressInput {
	return shipment.AddressInput{
		Street1: "417 Montgomery St",
		Street2: "Floor 5",
		City:    "San Francisco",
		State:   "CA",
		Zip:     "94104",
		Country: "US",
	}
}

func TestNewAddress_ValidInput(t *testing.T) {
	a, err := shipment.NewAddress(validAddressInput())

	require.NoError(t, err)
	require.NoError(t, a.Validate())
	assert.Equal(t, "417 Montgomery St", a.Street1())
	assert.Equal(t, "Floor 5", a.Street2())
	assert.Equal(t, "San Francisco", a.City())
	assert.Equal(t, "CA", a.State())
	assert.Equal(t, "94104", a.Zip())
	assert.Equal(t, shipment.CountryUS, a.Country())
}

func TestNewAddress_Normalizes(t *testing.T) {
	in := validAddressInput()
	in.Street1 = "  417 Montgomery St "
	in.Street2 = ""
	in.State = "ca"
	in.Zip = "94104-1129"
	in.Country = ""

	a, err := shipment.NewAddress(in)

	require.NoError(t, err)
	assert.Equal(t, "417 Montgomery St", a.Street1())
	assert.Empty(t, a.Street2())
	assert.Equal(t, "CA", a.State())
	assert.Equal(t, "94104-1129", a.Zip())
	assert.Equal(t, "US", a.Country())
}

func TestNewAddress_InvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *shipment.AddressInput)
		target error
		param  string
	}{
		{name: "missing street1", mutate: func(in *shipment.AddressInput) { in.Street1 = " " }, target: errs.ErrValueIsRequired, param: "street1"},
		{name: "missing city", mutate: func(in *shipment.AddressInput) { in.City = "" }, target: errs.ErrValueIsRequired, param: "city"},
		{name: "missing state", mutate: func(in *shipment.AddressInput) { in.State = "" }, target: errs.ErrValueIsRequired, param: "state"},
		{name: "long state", mutate: func(in *shipment.AddressInput) { in.State = "Calif" }, target: errs.ErrValueIsInvalid, param: "state"},
		{name: "missing zip", mutate: func(in *shipment.AddressInput) { in.Zip = "" }, target: errs.ErrValueIsRequired, param: "zip"},
		{name: "short zip", mutate: func(in *shipment.AddressInput) { in.Zip = "9410" }, target: errs.ErrValueIsInvalid, param: "zip"},
		{name: "bad plus four", mutate: func(in *shipment.AddressInput) { in.Zip = "94104-12" }, target: errs.ErrValueIsInvalid, param: "zip"},
		{name: "letters in zip", mutate: func(in *shipment.AddressInput) { in.Zip = "9410A" }, target: errs.ErrValueIsInvalid, param: "zip"},
		{name: "foreign country", mutate: func(in *shipment.AddressInput) { in.Country = "CA" }, target: errs.ErrValueIsInvalid, param: "country"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validAddressInput()
			tt.mutate(&in)

			_, err := shipment.NewAddress(in)

			require.ErrorIs(t, err, tt.target)
			assert.Contains(t, err.Error(), tt.param)
		})
	}
}

func TestNewAddress_ReportsAllErrors(t *testing.T) {
	_, err := shipment.NewAddress(shipment.AddressInput{Zip: "abc"})

	require.Error(t, err)
	for _, field := range []string{"street1", "city", "state", "zip"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestAddress_Validate_ZeroValue(t *testing.T) {
	var a shipment.Address

	assert.Equal(t, shipment.ErrAddressIsNotConstructed, a.Validate())
}
