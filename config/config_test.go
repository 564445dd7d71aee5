package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "strict-seo", cfg.Output.DefaultMode)
	assert.True(t, cfg.Sanitize.IsEnabled())
	assert.False(t, cfg.Sanitize.ShouldAttach())
	assert.Equal(t, 5, cfg.Suggest.OptionalDisplayCap)
	assert.Equal(t, 500*time.Millisecond, cfg.Definitions.DebounceDelay)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults ok", func(c *Config) {}, false},
		{"split mode ok", func(c *Config) { c.Output.DefaultMode = "split-channels" }, false},
		{"unknown mode", func(c *Config) { c.Output.DefaultMode = "turbo" }, true},
		{"negative cap", func(c *Config) { c.Suggest.OptionalDisplayCap = -1 }, true},
		{"watch without path", func(c *Config) { c.Definitions.Watch = true }, true},
		{"watch with path", func(c *Config) {
			c.Definitions.Watch = true
			c.Definitions.Path = "profiles.yaml"
		}, false},
		{"negative debounce", func(c *Config) { c.Definitions.DebounceDelay = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profilekit.yaml")
	content := `
output:
  default_mode: standards-header
sanitize:
  enabled: true
  attach_sanitized: true
suggest:
  optional_display_cap: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "standards-header", cfg.Output.DefaultMode)
	assert.True(t, cfg.Sanitize.ShouldAttach())
	assert.Equal(t, 3, cfg.Suggest.OptionalDisplayCap)

	// Unspecified sections keep their defaults.
	assert.Equal(t, 500*time.Millisecond, cfg.Definitions.DebounceDelay)
}

func TestLoadFromFileRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profilekit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  default_mode: turbo\n"), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	overlay := &Config{}
	overlay.Output.DefaultMode = "split-channels"
	overlay.Definitions.Path = "custom.yaml"
	overlay.Sanitize.AttachSanitized = boolp(true)

	base.Merge(overlay)

	assert.Equal(t, "split-channels", base.Output.DefaultMode)
	assert.Equal(t, "custom.yaml", base.Definitions.Path)
	assert.True(t, base.Sanitize.ShouldAttach())
	assert.True(t, base.Sanitize.IsEnabled())
	assert.Equal(t, 5, base.Suggest.OptionalDisplayCap)

	base.Merge(nil)
	assert.Equal(t, "split-channels", base.Output.DefaultMode)
}

func TestMergeWithoutSanitizeSectionKeepsAdvisorOn(t *testing.T) {
	base := DefaultConfig()

	// An overlay that says nothing about sanitize must not touch it.
	base.Merge(&Config{Output: OutputConfig{DefaultMode: "split-channels"}})

	assert.Equal(t, "split-channels", base.Output.DefaultMode)
	assert.True(t, base.Sanitize.IsEnabled())
	assert.False(t, base.Sanitize.ShouldAttach())

	// An overlay that does mention it still wins.
	base.Merge(&Config{Sanitize: SanitizeConfig{Enabled: boolp(false)}})
	assert.False(t, base.Sanitize.IsEnabled())
}

func TestSaveToFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "profilekit.yaml")

	cfg := DefaultConfig()
	cfg.Output.DefaultMode = "split-channels"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
