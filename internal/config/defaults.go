package config

import "time"

// Built-in defaults, applied after every other source.
const (
	DefaultPasswordHashCost = 10
	DefaultLogLevel         = "debug"
	DefaultVersion          = "dev"
	DefaultHTTPAddress      = "localhost:8080"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultDBMaxRetries     = 3
	DefaultAdapterTimeout   = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHashCost: DefaultPasswordHashCost,
			LogLevel:         DefaultLogLevel,
			Version:          DefaultVersion,
		},
		Storage: Storage{
			DB: DB{
				MaxRetries: DefaultDBMaxRetries,
			},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
	}
}
