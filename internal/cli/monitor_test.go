package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/sitemon/internal/config"
	"github.com/rileyhilliard/sitemon/internal/logger"
	"github.com/rileyhilliard/sitemon/internal/monitor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintRound_Text(t *testing.T) {
	resetGlobals(t)
	up := statusServer(t, http.StatusOK)
	broken := statusServer(t, http.StatusServiceUnavailable)

	prober := monitor.NewHTTPProber(nil)
	defer prober.Close()

	var out bytes.Buffer
	err := printRound(context.Background(), testConfig(
		config.Site{Name: "Up", URL: up.URL},
		config.Site{Name: "Broken", URL: broken.URL},
	), prober, &out)
	require.NoError(t, err, "a down site is data, not an error")

	assert.Contains(t, out.String(), "200 OK")
	assert.Contains(t, out.String(), "503 Service Unavailable")
}

func TestPrintRound_JSON(t *testing.T) {
	resetGlobals(t)
	machineMode = true
	srv := statusServer(t, http.StatusOK)

	var out bytes.Buffer
	err := printRound(context.Background(), testConfig(
		config.Site{Name: "Up", URL: srv.URL},
	), monitor.NewHTTPProber(nil), &out)
	require.NoError(t, err)

	var env struct {
		Success bool `json:"success"`
		Data    struct {
			Sites []struct {
				Name   string      `json:"name"`
				Latest interface{} `json:"latest"`
			} `json:"sites"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &env))
	assert.True(t, env.Success)
	require.Len(t, env.Data.Sites, 1)
	assert.Equal(t, "Up", env.Data.Sites[0].Name)
	assert.Equal(t, float64(200), env.Data.Sites[0].Latest)
}

func TestPrintRound_CancelledLeavesPending(t *testing.T) {
	resetGlobals(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := printRound(ctx, testConfig(
		config.Site{Name: "Never", URL: "https://never.example"},
	), monitor.ProbeFunc(func(ctx context.Context, address string) monitor.Outcome {
		return monitor.Success(200)
	}), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "pending")
}

func TestRedirectLog_Discard(t *testing.T) {
	t.Setenv(logger.DebugEnv, "")

	restore, err := redirectLog()
	require.NoError(t, err)
	defer restore()

	assert.Equal(t, io.Discard, log.Writer())
}

func TestRedirectLog_DebugFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	t.Setenv(logger.DebugEnv, "1")
	t.Setenv(logger.LogFileEnv, path)

	restore, err := redirectLog()
	require.NoError(t, err)
	log.Print("probe finished")
	restore()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "probe finished")
	assert.Equal(t, os.Stderr, log.Writer())
}

func TestRedirectLog_BadPath(t *testing.T) {
	t.Setenv(logger.DebugEnv, "1")
	t.Setenv(logger.LogFileEnv, filepath.Join(t.TempDir(), "missing", "debug.log"))

	_, err := redirectLog()
	require.Error(t, err)
	assert.Contains(t, err.Error(), logger.LogFileEnv)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f), "regular files are not terminals")
}
