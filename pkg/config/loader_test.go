package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/config"
)

type flashConfig struct {
	Delay       time.Duration `env:"FLASH_DELAY" envDefault:"4s"`
	Fade        time.Duration `env:"FLASH_FADE" envDefault:"500ms"`
	ContainerID string        `env:"FLASH_CONTAINER_ID" envDefault:"flash-container"`
}

type requiredConfig struct {
	Secret string `env:"FLASH_SECRET,required"`
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load[flashConfig](config.WithEnvironment(nil))
	require.NoError(t, err)
	assert.Equal(t, 4*time.Second, cfg.Delay)
	assert.Equal(t, 500*time.Millisecond, cfg.Fade)
	assert.Equal(t, "flash-container", cfg.ContainerID)
}

func TestLoad_Environment(t *testing.T) {
	cfg, err := config.Load[flashConfig](config.WithEnvironment(map[string]string{
		"FLASH_DELAY":        "2s",
		"FLASH_CONTAINER_ID": "banner",
	}))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Delay)
	assert.Equal(t, "banner", cfg.ContainerID)
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	t.Setenv("FLASH_FADE", "750ms")

	cfg, err := config.Load[flashConfig]()
	require.NoError(t, err)
	assert.Equal(t, 750*time.Millisecond, cfg.Fade)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing required value", func(t *testing.T) {
		_, err := config.Load[requiredConfig](config.WithEnvironment(nil))
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrParsingConfig))
	})

	t.Run("malformed duration", func(t *testing.T) {
		_, err := config.Load[flashConfig](config.WithEnvironment(map[string]string{"FLASH_DELAY": "soon"}))
		assert.True(t, errors.Is(err, config.ErrParsingConfig))
	})

	t.Run("explicit env file must exist", func(t *testing.T) {
		_, err := config.Load[flashConfig](config.WithEnvFiles(filepath.Join(t.TempDir(), "missing.env")))
		assert.True(t, errors.Is(err, config.ErrLoadingEnvFile))
	})
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("FORMKIT_TEST_SECRET=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("FORMKIT_TEST_SECRET") })

	type fileConfig struct {
		Secret string `env:"FORMKIT_TEST_SECRET,required"`
	}
	cfg, err := config.Load[fileConfig](config.WithEnvFiles(path))
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Secret)
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		config.MustLoad[requiredConfig](config.WithEnvironment(nil))
	})
	assert.NotPanics(t, func() {
		config.MustLoad[flashConfig](config.WithEnvironment(nil))
	})
}
