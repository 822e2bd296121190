package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

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

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{MaxSignInAttempts: 3},
		Storage: Storage{DB: DB{DSN: "vault.db"}},
		Log:     Log{FilePath: "app.log", Level: "info"},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a builder with no sources fails
// validation instead of returning an unusable config.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that a non-zero field from an earlier
// config is not overwritten by a later one.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "flags.db"}}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "env.db"}}, Log: Log{Level: "debug"}},
		defaultConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flags.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, DefaultLogFilePath, cfg.Log.FilePath)
	assert.Equal(t, DefaultMaxSignInAttempts, cfg.App.MaxSignInAttempts)
	assert.Equal(t, DefaultClipboardTTL, cfg.App.ClipboardTTL)
}

func TestBuild_SingleConfig(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, validConfig(), cfg)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_DB_DSN": "env.db",
		"LOG_LEVEL":      "warn",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env.db", b.configs[0].Storage.DB.DSN)
	assert.Equal(t, "warn", b.configs[0].Log.Level)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_MAX_SIGN_IN_ATTEMPTS": "many"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-bogus"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.DB.DSN = "json.db"
	payload.App.ClipboardTTL = Duration(time.Minute)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json.db", b.configs[1].Storage.DB.DSN)
	assert.Equal(t, time.Minute, b.configs[1].App.ClipboardTTL)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesFirstPath verifies that the JSON path from the
// highest-priority source (flags) wins over the one from env.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.Log.Level = "debug"
	firstPath := writeTempJSONConfig(t, first)

	second := StructuredJSONConfig{}
	second.Log.Level = "error"
	secondPath := writeTempJSONConfig(t, second)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: firstPath},
		&StructuredConfig{JSONFilePath: secondPath},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "debug", b.configs[2].Log.Level)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultLogFilePath, cfg.Log.FilePath)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultMaxSignInAttempts, cfg.App.MaxSignInAttempts)
	assert.False(t, cfg.App.DisableClipboard)
}

func TestGetStructuredConfig_Priority(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.DB.DSN = "json.db"
	payload.Log.Level = "error"
	payload.Log.FilePath = "json.log"
	payload.App.MaxSignInAttempts = 7
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"CONFIG":    path,
		"LOG_LEVEL": "warn",
	})

	cfg, err := GetStructuredConfig([]string{"-d", "flags.db"})
	require.NoError(t, err)
	assert.Equal(t, "flags.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json.log", cfg.Log.FilePath)
	assert.Equal(t, 7, cfg.App.MaxSignInAttempts)
}

func TestGetStructuredConfig_RejectsAttemptsOutOfRange(t *testing.T) {
	clearEnvVars(t)

	_, err := GetStructuredConfig([]string{"-max-attempts", "11"})
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}
