package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rileyhilliard/sitemon/internal/config"
	"github.com/stretchr/testify/require"
)

// resetGlobals isolates a test from flag state and from config files on
// this machine.
func resetGlobals(t *testing.T) {
	t.Helper()
	oldCfg, oldOverrides, oldMachine := cfgFile, overrides, machineMode
	t.Cleanup(func() {
		cfgFile, overrides, machineMode = oldCfg, oldOverrides, oldMachine
	})
	cfgFile, overrides, machineMode = "", Overrides{}, false

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
}

// writeConfigFile writes content to a config file in a temp dir.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// statusServer answers every request with code.
func statusServer(t *testing.T, code int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// testConfig returns a valid config monitoring the given sites.
func testConfig(sites ...config.Site) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Timeout = "2s"
	cfg.Sites = sites
	return cfg
}

// syncWriter is a bytes.Buffer safe for the spinner's animation goroutine.
type syncWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func (w *syncWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.String()
}
