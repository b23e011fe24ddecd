package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/sitemon/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, 5*time.Second, cfg.PollInterval())
	assert.Equal(t, 3*time.Second, cfg.ProbeTimeout())
	assert.Equal(t, 200*time.Millisecond, cfg.TickInterval())
	assert.Equal(t, 50, cfg.HistorySize)
	assert.Equal(t, FormatBullet, cfg.Output.Format)

	require.Len(t, cfg.Sites, 3)
	assert.Equal(t, "GitHub", cfg.Sites[0].Name)
	assert.Equal(t, "Google", cfg.Sites[1].Name)
	assert.Equal(t, "Steam", cfg.Sites[2].Name)

	assert.NoError(t, Validate(cfg))
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
version: 1
interval: 10s
timeout: 2s
history_size: 20
tick: 100ms
output:
  format: line
sites:
  - name: Example
    url: https://example.com
  - name: Local
    url: localhost:8080
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.PollInterval())
	assert.Equal(t, 2*time.Second, cfg.ProbeTimeout())
	assert.Equal(t, 100*time.Millisecond, cfg.TickInterval())
	assert.Equal(t, 20, cfg.HistorySize)
	assert.Equal(t, FormatLine, cfg.Output.Format)
	assert.Equal(t, []Site{
		{Name: "Example", URL: "https://example.com"},
		{Name: "Local", URL: "localhost:8080"},
	}, cfg.Sites)
}

func TestLoad_PartialFileUsesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
sites:
  - name: Only
    url: https://only.example
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultInterval, cfg.Interval)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultTick, cfg.Tick)
	assert.Equal(t, DefaultHistorySize, cfg.HistorySize)
	assert.Equal(t, FormatBullet, cfg.Output.Format)
	// A shorter list replaces the defaults rather than merging into them.
	assert.Equal(t, []Site{{Name: "Only", URL: "https://only.example"}}, cfg.Sites)
}

func TestLoad_SitesAbsentUsesDefaultSites(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "interval: 7s\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultSites(), cfg.Sites)
	assert.Equal(t, 7*time.Second, cfg.PollInterval())
}

func TestLoad_EmptySitesIsZeroSites(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty list", "sites: []\n"},
		{"null value", "sites:\n"},
		{"explicit null", "sites: ~\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)

			cfg, err := Load(path)
			require.NoError(t, err)

			assert.NotNil(t, cfg.Sites)
			assert.Empty(t, cfg.Sites)
			assert.NoError(t, Validate(cfg))
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "sites: [\n  - name: x\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})
}

func TestFind(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "version: 1\n")
		found, err := Find(path)
		require.NoError(t, err)
		assert.Equal(t, path, found)
	})

	t.Run("explicit path missing", func(t *testing.T) {
		_, err := Find(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})

	t.Run("current directory", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("HOME", t.TempDir())
		path := writeConfig(t, dir, "version: 1\n")
		t.Chdir(dir)

		found, err := Find("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Base(path), filepath.Base(found))
	})

	t.Run("parent directory below git root", func(t *testing.T) {
		root := t.TempDir()
		t.Setenv("HOME", t.TempDir())
		require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))
		writeConfig(t, root, "version: 1\n")
		sub := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(sub, 0755))
		t.Chdir(sub)

		found, err := Find("")
		require.NoError(t, err)
		assert.Equal(t, ConfigFileName, filepath.Base(found))
	})

	t.Run("global config", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		globalDir := filepath.Join(home, GlobalConfigDir)
		require.NoError(t, os.MkdirAll(globalDir, 0755))
		globalPath := filepath.Join(globalDir, GlobalConfigFile)
		require.NoError(t, os.WriteFile(globalPath, []byte("version: 1\n"), 0644))

		work := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(work, ".git"), 0755))
		t.Chdir(work)

		found, err := Find("")
		require.NoError(t, err)
		assert.Equal(t, globalPath, found)
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		work := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(work, ".git"), 0755))
		t.Chdir(work)

		found, err := Find("")
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestLoadOrDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	work := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(work, ".git"), 0755))
	t.Chdir(work)

	cfg, path, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestWriteThenLoad(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Interval = "30s"
	cfg.Output.Format = FormatLine
	cfg.Sites = []Site{{Name: "Example", URL: "example.com"}}

	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, Write(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# sitemon configuration")
	assert.Contains(t, string(data), "interval: 30s")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestWrite_RejectsInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Format = "fancy"

	path := filepath.Join(t.TempDir(), ConfigFileName)
	err := Write(path, cfg)
	require.Error(t, err)
	assert.NoFileExists(t, path)
}
