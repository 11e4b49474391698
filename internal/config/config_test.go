package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NotNil(t, cfg)
	assert.Empty(t, cfg.AccentColor, "an empty accent defers to the theme default")
	assert.Equal(t, 6, cfg.SourceContext)
	assert.False(t, cfg.Quiet)
	assert.False(t, cfg.Verbose)
	assert.True(t, cfg.Log.Enabled)
	assert.Empty(t, cfg.Log.File)
}

func TestLoad(t *testing.T) {
	t.Run("returns defaults when no config file exists", func(t *testing.T) {
		tmpDir := t.TempDir()
		origDir, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(origDir)

		cfg, err := Load()
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, 6, cfg.SourceContext)
	})

	t.Run("loads config from current directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		origDir, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(origDir)

		configContent := `
accent_color: "#89b4fa"
source_context: 10
quiet: true
log:
  enabled: false
`
		err := os.WriteFile(filepath.Join(tmpDir, ".shdbg.yaml"), []byte(configContent), 0644)
		require.NoError(t, err)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "#89b4fa", cfg.AccentColor)
		assert.Equal(t, 10, cfg.SourceContext)
		assert.True(t, cfg.Quiet)
		assert.False(t, cfg.Log.Enabled)
	})
}

func TestLoadPinnedConfigFile(t *testing.T) {
	t.Run("SHDBG_CONFIG wins over the search path", func(t *testing.T) {
		tmpDir := t.TempDir()
		origDir, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(origDir)

		err := os.WriteFile(filepath.Join(tmpDir, ".shdbg.yaml"), []byte("source_context: 10"), 0644)
		require.NoError(t, err)

		pinned := filepath.Join(tmpDir, "pinned.yaml")
		err = os.WriteFile(pinned, []byte("source_context: 3"), 0644)
		require.NoError(t, err)
		t.Setenv("SHDBG_CONFIG", pinned)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.SourceContext)
		assert.Equal(t, pinned, File())
	})

	t.Run("a missing pinned file is an error, not a fallback", func(t *testing.T) {
		t.Setenv("SHDBG_CONFIG", "/nonexistent/shdbg.yaml")

		cfg, err := Load()
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Empty(t, File())
	})
}

func TestLoadFromFile(t *testing.T) {
	t.Run("returns error for non-existent file", func(t *testing.T) {
		cfg, err := LoadFromFile("/nonexistent/path/config.yaml")
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "bad.yaml")
		err := os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0644)
		require.NoError(t, err)

		cfg, err := LoadFromFile(configPath)
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("parses all config fields", func(t *testing.T) {
		tmpDir := t.TempDir()
		configContent := `
accent_color: "#f38ba8"
source_context: 3
quiet: false
verbose: true
log:
  enabled: true
  file: /tmp/shdbg-test.log
`
		configPath := filepath.Join(tmpDir, "shdbg.yaml")
		err := os.WriteFile(configPath, []byte(configContent), 0644)
		require.NoError(t, err)

		cfg, err := LoadFromFile(configPath)
		require.NoError(t, err)

		assert.Equal(t, "#f38ba8", cfg.AccentColor)
		assert.Equal(t, 3, cfg.SourceContext)
		assert.False(t, cfg.Quiet)
		assert.True(t, cfg.Verbose)
		assert.True(t, cfg.Log.Enabled)
		assert.Equal(t, "/tmp/shdbg-test.log", cfg.Log.File)
	})

	t.Run("rejects values validation refuses", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "shdbg.yaml")
		err := os.WriteFile(configPath, []byte("source_context: 0"), 0644)
		require.NoError(t, err)

		cfg, err := LoadFromFile(configPath)
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(c *Config) {}, ""},
		{"hex accent", func(c *Config) { c.AccentColor = "#AF87FF" }, ""},
		{"ansi accent", func(c *Config) { c.AccentColor = "135" }, ""},
		{"named accent", func(c *Config) { c.AccentColor = "purple" }, "accent_color"},
		{"short hex", func(c *Config) { c.AccentColor = "#fff" }, "accent_color"},
		{"zero context", func(c *Config) { c.SourceContext = 0 }, "source_context"},
		{"huge context", func(c *Config) { c.SourceContext = 500 }, "source_context"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfigEnvironmentVariables(t *testing.T) {
	origAccent := os.Getenv("SHDBG_ACCENT_COLOR")
	origContext := os.Getenv("SHDBG_SOURCE_CONTEXT")
	defer func() {
		os.Setenv("SHDBG_ACCENT_COLOR", origAccent)
		os.Setenv("SHDBG_SOURCE_CONTEXT", origContext)
	}()

	os.Setenv("SHDBG_ACCENT_COLOR", "#a6e3a1")
	os.Setenv("SHDBG_SOURCE_CONTEXT", "12")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "#a6e3a1", cfg.AccentColor)
	assert.Equal(t, 12, cfg.SourceContext)
}

func TestLogFile(t *testing.T) {
	t.Run("explicit path wins", func(t *testing.T) {
		cfg := Default()
		cfg.Log.File = "/var/log/shdbg.log"
		assert.Equal(t, "/var/log/shdbg.log", cfg.LogFile())
	})

	t.Run("defaults under the home directory", func(t *testing.T) {
		cfg := Default()
		home, err := os.UserHomeDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".shdbg", "shdbg.log"), cfg.LogFile())
	})
}

func TestFile(t *testing.T) {
	t.Run("finds .shdbg.yaml in current directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		origDir, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(origDir)

		configPath := filepath.Join(tmpDir, ".shdbg.yaml")
		err := os.WriteFile(configPath, []byte("source_context: 4"), 0644)
		require.NoError(t, err)

		found := File()
		expectedPath, _ := filepath.EvalSymlinks(configPath)
		foundPath, _ := filepath.EvalSymlinks(found)
		assert.Equal(t, expectedPath, foundPath)
	})

	t.Run("returns empty string when no config found", func(t *testing.T) {
		tmpDir := t.TempDir()
		origDir, _ := os.Getwd()
		os.Chdir(tmpDir)
		defer os.Chdir(origDir)

		found := File()
		assert.Empty(t, found)
	})
}
