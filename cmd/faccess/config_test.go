package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		config, err := LoadConfig("", nil)
		require.NoError(t, err)
		assert.Equal(t, "warn", config.LogLevel)
		assert.Empty(t, config.Identity)
	})

	t.Run("json file with relative paths", func(t *testing.T) {
		path := writeConfig(t, "faccess.json", `{
			"log_level": "debug",
			"decision_log": "logs/decisions.log",
			"root": "/srv/chroot",
			"identity": "1000:1000:4,27"
		}`)

		config, err := LoadConfig(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, filepath.Join(filepath.Dir(path), "logs", "decisions.log"), config.DecisionLog)
		assert.Equal(t, "/srv/chroot", config.Root)
		assert.Equal(t, "1000:1000:4,27", config.Identity)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := writeConfig(t, "faccess.yaml", "log_level: error\nidentity: \"0:0\"\n")

		config, err := LoadConfig(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "error", config.LogLevel)
		assert.Equal(t, "0:0", config.Identity)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeConfig(t, "faccess.json", `{"log_level": "debug"}`)
		t.Setenv("FACCESS_LOG_LEVEL", "info")
		t.Setenv("FACCESS_IDENTITY", "5:5")

		config, err := LoadConfig(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "info", config.LogLevel)
		assert.Equal(t, "5:5", config.Identity)
	})

	t.Run("bound values override everything", func(t *testing.T) {
		t.Setenv("FACCESS_LOG_LEVEL", "info")

		config, err := LoadConfig("", func(v *viper.Viper) error {
			v.Set("log_level", "error")
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "error", config.LogLevel)
	})

	t.Run("invalid identity", func(t *testing.T) {
		path := writeConfig(t, "faccess.json", `{"identity": "root"}`)
		_, err := LoadConfig(path, nil)
		assert.Error(t, err)
	})

	t.Run("invalid log level", func(t *testing.T) {
		path := writeConfig(t, "faccess.json", `{"log_level": "chatty"}`)
		_, err := LoadConfig(path, nil)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"), nil)
		assert.Error(t, err)
	})
}
