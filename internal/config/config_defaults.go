package config

import "time"

const (
	defaultDotEnvFile     = ".env"
	defaultTokenIssuer    = "go-auth-service"
	defaultTokenDuration  = time.Hour
	defaultPasswordHasher = "bcrypt"
	defaultBcryptCost     = 10
	defaultLogLevel       = "debug"
	defaultDBDriver       = "memory"
	defaultServerAddress  = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultAdapterAddress = "http://localhost:8080"
	defaultAdapterTimeout = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:    defaultTokenIssuer,
			TokenDuration:  defaultTokenDuration,
			PasswordHasher: defaultPasswordHasher,
			BcryptCost:     defaultBcryptCost,
			LogLevel:       defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{Driver: defaultDBDriver},
		},
		Server: Server{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterTimeout,
		},
	}
}
