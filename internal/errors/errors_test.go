package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrProbe,
		ErrTerminal,
		ErrExec,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid configuration in .sitemon.yaml",
			suggestion: "Check your configuration file syntax",
		},
		{
			name:       "probe error",
			code:       ErrProbe,
			message:    "2 of 3 sites are down",
			suggestion: "Run 'sitemon check' again to confirm",
		},
		{
			name:       "terminal error",
			code:       ErrTerminal,
			message:    "Monitor exited with error",
			suggestion: "Check your terminal supports the alternate screen",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name: "message and suggestion",
			err:  New(ErrConfig, "Invalid configuration", "Check .sitemon.yaml syntax"),
			expectedParts: []string{
				"✗ Invalid configuration",
				"Check .sitemon.yaml syntax",
			},
		},
		{
			name:          "no suggestion",
			err:           New(ErrExec, "Command failed", ""),
			expectedParts: []string{"Command failed"},
			notExpected:   []string{"\n\n  \n"},
		},
		{
			name:          "with cause",
			err:           WrapWithCode(errors.New("yaml: line 3"), ErrConfig, "Failed to parse config", "Fix the YAML"),
			expectedParts: []string{"Failed to parse config", "yaml: line 3", "Fix the YAML"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()

			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part)
			}
			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part)
			}
		})
	}
}

func TestErrorMessageStructure(t *testing.T) {
	err := WrapWithCode(
		errors.New("open .sitemon.yaml: permission denied"),
		ErrConfig,
		"Failed to read config file",
		"Check the file permissions",
	)

	lines := strings.Split(err.Error(), "\n")

	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "✗ Failed to read config file", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "  open .sitemon.yaml: permission denied", lines[2])
	assert.Equal(t, "", lines[3])
	assert.Equal(t, "  Check the file permissions", lines[4])
}

func TestWrap(t *testing.T) {
	cause := errors.New("boom")
	wrapped := Wrap(cause, "Something failed")

	assert.Equal(t, ErrExec, wrapped.Code)
	assert.Equal(t, cause, wrapped.Cause)
	assert.True(t, errors.Is(wrapped, cause))
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "Config error", "")

	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrProbe))
	assert.True(t, IsCode(fmt.Errorf("outer: %w", err), ErrConfig))
	assert.False(t, IsCode(errors.New("standard error"), ErrConfig))
	assert.False(t, IsCode(nil, ErrConfig))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrTerminal, CodeOf(New(ErrTerminal, "x", "")))
	assert.Equal(t, ErrExec, CodeOf(errors.New("plain")))
}

func TestExitError(t *testing.T) {
	tests := []struct {
		code    int
		wantMsg string
	}{
		{0, "exit code 0"},
		{1, "exit code 1"},
		{137, "exit code 137"},
	}

	for _, tt := range tests {
		t.Run(tt.wantMsg, func(t *testing.T) {
			err := NewExitError(tt.code)
			assert.Equal(t, tt.wantMsg, err.Error())

			code, ok := GetExitCode(err)
			assert.True(t, ok)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestGetExitCode_NotExitError(t *testing.T) {
	for _, err := range []error{nil, errors.New("plain"), New(ErrExec, "x", "")} {
		code, ok := GetExitCode(err)
		assert.False(t, ok)
		assert.Equal(t, 0, code)
	}
}
