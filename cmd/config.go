package cmd

import "time"

type Config struct {
	HTTPPort           string
	EasyPostAPIKey     string
	EasyPostAPIURL     string
	ProviderTimeout    time.Duration
	HTTPRequestTimeout time.Duration
	LogLevel           string
}
