package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server.
	HTTPAddress string `validate:"required,url"`
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration `validate:"gt=0"`
}

// ClientConfig is the configuration of the command-line client assembled
// from [StructuredConfig].
type ClientConfig struct {
	Adapter  ClientAdapter
	LogLevel string `validate:"omitempty,loglevel"`
}

// GetClientConfig builds and validates a client-specific config view from
// defaults, the .env file and the environment. Flags belong to the client's
// own subcommands and are not read here.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv(defaultDotEnvFile).
		withEnv().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		LogLevel: cfg.App.LogLevel,
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
