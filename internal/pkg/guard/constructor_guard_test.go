package guard_test

import (
	"errors"
	"testing"

	"shiplabel/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("parcel not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardEmbedded shows the guard embedded in a value object the way the
// domain model uses it.
func TestConstructorGuardEmbedded(t *testing.T) {
	var errLabelNotConstructed = errors.New("Label must be created via NewLabel")

	type label struct {
		url   string
		guard guard.ConstructorGuard
	}

	newLabel := func(url string) (label, error) {
		if url == "" {
			return label{}, errors.New("url is required")
		}
		return label{url: url, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		l, err := newLabel("http://x/label.png")

		require.NoError(t, err)
		require.NoError(t, l.guard.Validate(errLabelNotConstructed))
		assert.Equal(t, "http://x/label.png", l.url)
	})

	t.Run("copy_keeps_constructed_state", func(t *testing.T) {
		l, _ := newLabel("http://x/label.png")
		cp := l

		require.NoError(t, cp.guard.Validate(errLabelNotConstructed))
	})

	t.Run("zero_value_fails", func(t *testing.T) {
		var l label

		assert.Equal(t, errLabelNotConstructed, l.guard.Validate(errLabelNotConstructed))
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 200 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}
