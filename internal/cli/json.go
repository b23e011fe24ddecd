package cli

import (
	"encoding/json"
	stderrors "errors"
	"io"

	"github.com/rileyhilliard/sitemon/internal/errors"
	"github.com/rileyhilliard/sitemon/internal/monitor"
)

// Machine mode flag - when true, outputs JSON and suppresses human-friendly decorations
var machineMode bool

// MachineMode returns true if machine-readable output is enabled
func MachineMode() bool {
	return machineMode
}

// JSONEnvelope wraps command output in a consistent structure for machine parsing.
// All --json output should use this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// SnapshotData is the --json payload of monitor and check.
type SnapshotData struct {
	Sites []monitor.SiteSnapshot `json:"sites"`
	Up    int                    `json:"up"`
	Total int                    `json:"total"`
}

// newSnapshotData counts the sites that are up in snaps.
func newSnapshotData(snaps []monitor.SiteSnapshot) SnapshotData {
	data := SnapshotData{Sites: snaps, Total: len(snaps)}
	if data.Sites == nil {
		data.Sites = []monitor.SiteSnapshot{}
	}
	for _, s := range snaps {
		if s.Latest.IsUp() {
			data.Up++
		}
	}
	return data
}

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: true,
		Data:    data,
	})
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: false,
		Error:   ErrorToJSON(err),
	})
}

// writeJSONEnvelope writes the envelope with consistent formatting.
func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError. Structured errors keep
// their code; anything else is reported as EXEC.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	var smErr *errors.Error
	if stderrors.As(err, &smErr) {
		return &JSONError{
			Code:       smErr.Code,
			Message:    smErr.Message,
			Suggestion: smErr.Suggestion,
		}
	}

	return &JSONError{
		Code:    errors.CodeOf(err),
		Message: err.Error(),
	}
}
