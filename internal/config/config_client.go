package config

import (
	"fmt"
	"os"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server address, "host:port" or a base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the command-line client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Args holds the positional arguments left after flag parsing:
	// the command name followed by its arguments.
	Args []string
}

// GetClientConfig builds and validates the client configuration from the
// environment, the client flags in os.Args, an optional JSON file and the
// defaults, in that priority order.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	b := newConfigBuilder().
		withEnv().
		withClientFlags(args).
		withJSON().
		withDefaults()

	cfg, err := b.build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Args: b.args,
	}

	return clientCfg, clientCfg.validate()
}
