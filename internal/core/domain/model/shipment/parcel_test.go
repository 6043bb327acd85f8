package shipment_test

import (
	"math"
	"testing"

	"shiplabel/internal/core/domain/model/shipment"
	"shiplabel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParcel_ValidInput(t *testing.T) {
	p, err := shipment.NewParcel(65.9, 20.2, 10.9, 5)

	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.InDelta(t, 65.9, p.Weight(), 1e-9)
	assert.InDelta(t, 20.2, p.Length(), 1e-9)
	assert.InDelta(t, 10.9, p.Width(), 1e-9)
	assert.InDelta(t, 5.0, p.Height(), 1e-9)
}

func TestNewParcel_InvalidInput(t *testing.T) {
	tests := []struct {
		name                          string
		weight, length, width, height float64
		param                         string
	}{
		{name: "zero weight", weight: 0, length: 1, width: 1, height: 1, param: "weight"},
		{name: "negative length", weight: 1, length: -2, width: 1, height: 1, param: "length"},
		{name: "NaN width", weight: 1, length: 1, width: math.NaN(), height: 1, param: "width"},
		{name: "infinite height", weight: 1, length: 1, width: 1, height: math.Inf(1), param: "height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := shipment.NewParcel(tt.weight, tt.length, tt.width, tt.height)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), tt.param)
		})
	}
}

func TestParcel_Validate_ZeroValue(t *testing.T) {
	var p shipment.Parcel

	assert.Equal(t, shipment.ErrParcelIsNotConstructed, p.Validate())
}
