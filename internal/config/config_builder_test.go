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

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs yields the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{
		App: App{Version: DefaultVersion, Environment: DefaultEnvironment},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			GRPCAddress:    DefaultGRPCAddress,
			RequestTimeout: DefaultRequestTimeout,
			MaxBodyBytes:   DefaultMaxBodyBytes,
		},
		Log: Log{Level: DefaultLogLevel},
		Health: Health{
			DiskPath:          DefaultDiskPath,
			CPUSampleInterval: DefaultCPUSampleInterval,
			ProbeInterval:     DefaultProbeInterval,
		},
		Limits: Limits{SweepInterval: DefaultSweepInterval},
	}, cfg)
}

// TestBuild_DebugLowersDefaultLevel verifies that debug mode selects the
// debug log level unless a level is set explicitly.
func TestBuild_DebugLowersDefaultLevel(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{Debug: true}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)

	b = newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{Debug: true}, Log: Log{Level: "error"}})

	cfg, err = b.build()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{Environment: "staging"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "staging", cfg.App.Environment)
}

// TestBuild_EarlierSourceWins verifies the precedence of merged sources.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:1000"}},
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:2000", GRPCAddress: "127.0.0.1:3000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:1000", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:3000", cfg.Server.GRPCAddress)
}

// TestBuild_Validation verifies that invalid merged configs are rejected.
func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{
			name:    "negative request timeout",
			cfg:     &StructuredConfig{Server: Server{RequestTimeout: -time.Second}},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative body limit",
			cfg:     &StructuredConfig{Server: Server{MaxBodyBytes: -1}},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "malformed trusted proxy",
			cfg:     &StructuredConfig{Server: Server{TrustedProxies: []string{"10.0.0.0/33"}}},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "unknown log level",
			cfg:     &StructuredConfig{Log: Log{Level: "chatty"}},
			wantErr: ErrInvalidLogConfigs,
		},
		{
			name:    "probe shorter than cpu window",
			cfg:     &StructuredConfig{Health: Health{CPUSampleInterval: 5 * time.Second, ProbeInterval: 2 * time.Second}},
			wantErr: ErrInvalidHealthConfigs,
		},
		{
			name:    "negative sweep interval",
			cfg:     &StructuredConfig{Limits: Limits{SweepInterval: -time.Minute}},
			wantErr: ErrInvalidLimitsConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			cfg, err := b.build()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_AppendsOneConfig verifies that withEnv appends exactly one entry.
func TestWithEnv_AppendsOneConfig(t *testing.T) {
	clearEnvVars(t)
	b := newConfigBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":     "env-version",
		"APP_ENVIRONMENT": "env-name",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-name", b.configs[0].App.Environment)
}

// TestWithEnv_SetsErrorOnInvalidValue verifies that a malformed variable
// sets b.err and appends nothing.
func TestWithEnv_SetsErrorOnInvalidValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "forever"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

// TestWithFlags_AppendsParsedConfig verifies that parsed flags are appended.
func TestWithFlags_AppendsParsedConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-env", "flag-env"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-env", b.configs[0].App.Environment)
}

// TestWithFlags_SetsErrorOnUnknownFlag verifies that bad arguments set b.err.
func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-nope"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_ReturnsBuilder verifies the fluent interface.
func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withJSON())
}

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Log.Level = "error"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "error", b.configs[1].Log.Level)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_SetsError_WhenMalformedJSON verifies that invalid JSON content
// sets b.err.
func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// TestBuilder_FullChain verifies env, flags and JSON merged together.
func TestBuilder_FullChain(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "from-json"
	payload.Server.HTTPAddress = "127.0.0.1:7000"
	payload.Health.DiskPath = "/json"
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"SERVER_ADDRESS": "127.0.0.1:9000",
		"CONFIG":         path,
	})

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-disk-path", "/flags"}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "/flags", cfg.Health.DiskPath)
	assert.Equal(t, "from-json", cfg.App.Version)
	assert.Equal(t, DefaultSweepInterval, cfg.Limits.SweepInterval)
}
