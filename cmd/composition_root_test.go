package cmd_test

import (
	"errors"
	"testing"
	"time"

	"shiplabel/cmd"
	"shiplabel/internal/core/application/usecases/commands"
	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommand(t *testing.T) commands.PurchaseCheapestLabelCommand {
	t.Helper()
	addr, err := shipment.NewAddress(shipment.AddressInput{
		Street1: "417 Montgomery St", City: "San Francisco", State: "CA", Zip: "94104",
	})
	require.NoError(t, err)
	parcel, err := shipment.NewParcel(1, 1, 1, 1)
	require.NoError(t, err)
	request, err := shipment.NewRequest(addr, addr, parcel)
	require.NoError(t, err)
	cmd, err := commands.NewPurchaseCheapestLabelCommand(kernel.NewUUID(), request)
	require.NoError(t, err)
	return cmd
}

func Test_CompositionRoot_MissingAPIKeyFailsAtConfigStage(t *testing.T) {
	root := cmd.NewCompositionRoot(cmd.Config{
		EasyPostAPIURL:  "http://127.0.0.1:1",
		ProviderTimeout: time.Second,
	}, nil)
	handler := root.CreatePurchaseCheapestLabelCommandHandler()

	_, err := handler.Handle(t.Context(), newCommand(t))

	var labelErr *commands.LabelPurchaseError
	require.True(t, errors.As(err, &labelErr))
	assert.Equal(t, commands.StageConfig, labelErr.Stage)
	assert.Contains(t, labelErr.Message, "Server configuration error")
}

func Test_CompositionRoot_CreatesServer(t *testing.T) {
	root := cmd.NewCompositionRoot(cmd.Config{EasyPostAPIKey: "k", EasyPostAPIURL: "http://127.0.0.1:1"}, nil)

	assert.NotNil(t, root.CreateServer())
}
