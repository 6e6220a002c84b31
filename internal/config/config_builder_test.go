package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_DefaultsNeedSignKey(t *testing.T) {
	_, err := newConfigBuilder().withDefaults().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "TokenSignKey")
}

func TestBuild_DefaultsWithSignKey(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{App: App{TokenSignKey: "secret"}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "go-auth-service", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "bcrypt", cfg.App.PasswordHasher)
	assert.Equal(t, 10, cfg.App.BcryptCost)
	assert.Equal(t, "memory", cfg.Storage.DB.Driver)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenSignKey: "env-key", Version: "1.0.0"}},
		&StructuredConfig{App: App{TokenSignKey: "flag-key"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
	assert.Equal(t, "1.0.0", cfg.App.Version)
}

func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name  string
		patch StructuredConfig
	}{
		{name: "unknown driver", patch: StructuredConfig{Storage: Storage{DB: DB{Driver: "mysql"}}}},
		{name: "postgres without dsn", patch: StructuredConfig{Storage: Storage{DB: DB{Driver: "postgres"}}}},
		{name: "unknown hasher", patch: StructuredConfig{App: App{PasswordHasher: "md5"}}},
		{name: "bcrypt cost too high", patch: StructuredConfig{App: App{BcryptCost: 40}}},
		{name: "bad log level", patch: StructuredConfig{App: App{LogLevel: "loud"}}},
		{name: "bad address", patch: StructuredConfig{Server: Server{HTTPAddress: "nowhere"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patch := tt.patch
			patch.App.TokenSignKey = "secret"

			b := newConfigBuilder().withDefaults()
			b.configs = append(b.configs, &patch)

			_, err := b.build()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestBuild_SQLiteWithDSN(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{Driver: "sqlite", DSN: "file:auth.db"}},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-secret")
	t.Setenv("STORAGE_DB_DRIVER", "postgres")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/auth")

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-secret", b.configs[0].App.TokenSignKey)
	assert.Equal(t, "postgres", b.configs[0].Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost/auth", b.configs[0].Storage.DB.DSN)
}

func TestWithEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "forever")

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithDotEnv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))
		assert.NoError(t, b.err)
	})

	t.Run("file values are visible to env parsing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("APP_VERSION=9.9.9\n"), 0o600))
		t.Setenv("APP_VERSION", "")
		require.NoError(t, os.Unsetenv("APP_VERSION"))

		b := newConfigBuilder().withDotEnv(path).withEnv()
		require.NoError(t, b.err)
		assert.Equal(t, "9.9.9", b.configs[0].App.Version)
	})

	t.Run("process env wins over file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("APP_ISSUER_TEST=file\n"), 0o600))
		t.Setenv("APP_ISSUER_TEST", "process")

		b := newConfigBuilder().withDotEnv(path)
		require.NoError(t, b.err)
		assert.Equal(t, "process", os.Getenv("APP_ISSUER_TEST"))
	})
}

func TestWithFlags(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "127.0.0.1:9000", "-token-sign-key", "flag-key", "-db-driver", "sqlite", "-d", "file:auth.db"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)

	cfg := b.configs[0]
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:auth.db", cfg.Storage.DB.DSN)
}

func TestWithFlags_InvalidAddress(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "not-an-address"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_OverridesEarlierSources(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":    map[string]any{"token_sign_key": "json-key", "token_duration": "15m"},
		"server": map[string]any{"http_address": "localhost:9999"},
	})

	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{App: App{TokenSignKey: "env-key"}, JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, 15*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "missing.json")})

	b.withJSON()
	assert.Error(t, b.err)
}
