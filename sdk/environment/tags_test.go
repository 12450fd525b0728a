package environment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testHTTP struct {
	Port    string        `env:"PORT" default:":8080"`
	Timeout time.Duration `env:"TIMEOUT" default:"5s"`
}

type testConfig struct {
	Level    string   `env:"LOG_LEVEL" default:"INFO"`
	MaxConns int      `env:"MAX_CONNS" default:"25"`
	Ratio    float64  `env:"RATIO" default:"0.5"`
	Debug    bool     `env:"DEBUG"`
	Origins  []string `env:"ORIGINS" separator:";"`
	HTTP     testHTTP
	ignored  string
}

func TestParseEnvTags_Defaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, ParseEnvTags("ENVTEST", &cfg))

	assert.Equal(t, "INFO", cfg.Level)
	assert.Equal(t, 25, cfg.MaxConns)
	assert.InDelta(t, 0.5, cfg.Ratio, 0.0001)
	assert.False(t, cfg.Debug)
	assert.Nil(t, cfg.Origins)
	assert.Equal(t, ":8080", cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	assert.Empty(t, cfg.ignored)
}

func TestParseEnvTags_FromEnvironment(t *testing.T) {
	t.Setenv("ENVTEST_LOG_LEVEL", "DEBUG")
	t.Setenv("ENVTEST_MAX_CONNS", "3")
	t.Setenv("ENVTEST_DEBUG", "true")
	t.Setenv("ENVTEST_ORIGINS", "http://a.test; http://b.test;")
	t.Setenv("ENVTEST_TIMEOUT", "250ms")

	var cfg testConfig
	require.NoError(t, ParseEnvTags("ENVTEST", &cfg))

	assert.Equal(t, "DEBUG", cfg.Level)
	assert.Equal(t, 3, cfg.MaxConns)
	assert.True(t, cfg.Debug)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Origins)
	assert.Equal(t, 250*time.Millisecond, cfg.HTTP.Timeout)
}

func TestParseEnvTags_Errors(t *testing.T) {
	t.Run("not a pointer", func(t *testing.T) {
		err := ParseEnvTags("", testConfig{})
		assert.ErrorIs(t, err, ErrNotStructPointer)
	})

	t.Run("required missing", func(t *testing.T) {
		var cfg struct {
			URL string `env:"DATABASE_URL" required:"true"`
		}
		err := ParseEnvTags("ENVTEST", &cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ENVTEST_DATABASE_URL")
	})

	t.Run("bad int", func(t *testing.T) {
		t.Setenv("ENVTEST_MAX_CONNS", "lots")
		var cfg testConfig
		assert.Error(t, ParseEnvTags("ENVTEST", &cfg))
	})
}

func TestGetNamespaceEnvKey(t *testing.T) {
	assert.Equal(t, "KEY", GetNamespaceEnvKey("", "KEY"))
	assert.Equal(t, "APP_KEY", GetNamespaceEnvKey("APP", "KEY"))
}
