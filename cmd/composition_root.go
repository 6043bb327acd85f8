package cmd

import (
	"net/http"

	httpin "shiplabel/internal/adapters/in/http"
	"shiplabel/internal/adapters/out/easypost"
	"shiplabel/internal/core/application/usecases/commands"
	"shiplabel/internal/core/ports"

	"go.uber.org/zap"
)

type CompositionRoot struct {
	config   Config
	logger   *zap.Logger
	provider ports.LabelProvider
}

func NewCompositionRoot(config Config, logger *zap.Logger) CompositionRoot {
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := &http.Client{Timeout: config.ProviderTimeout}
	if config.ProviderTimeout <= 0 {
		httpClient.Timeout = easypost.DefaultTimeout
	}

	return CompositionRoot{
		config:   config,
		logger:   logger,
		provider: easypost.NewClient(config.providerConfig(), httpClient, logger),
	}
}

func (c *CompositionRoot) CreatePurchaseCheapestLabelCommandHandler() commands.PurchaseCheapestLabelCommandHandler {
	return commands.NewPurchaseCheapestLabelCommandHandler(c.config.providerConfig(), c.provider, c.logger)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(c.CreatePurchaseCheapestLabelCommandHandler())
}

func (c Config) providerConfig() ports.ProviderConfig {
	return ports.ProviderConfig{
		APIKey:  c.EasyPostAPIKey,
		BaseURL: c.EasyPostAPIURL,
	}
}
