package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/poacpm/poac/internal/adapters/logger"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// NO_COLOR keeps the output free of ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("some message") },
			goldenName: "info_basic",
		},
		{
			name:       "success",
			log:        func(l *logger.Logger) { l.Success("a: 1.0.0 is deleted") },
			goldenName: "success_basic",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("b: 1.0.0 can not be deleted because c: 1.0.0 depends on it") },
			goldenName: "warn_basic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "metadata",
			err:        zerr.With(zerr.New("there is no such package in the dependencies"), "package", "missing"),
			goldenName: "error_metadata",
		},
		{
			name: "chain",
			err: zerr.With(
				zerr.Wrap(errors.New("permission denied"), "failed to write manifest"),
				"path", "/project/poac.yml",
			),
			goldenName: "error_chain",
		},
		{
			name:       "stdlib",
			err:        fmt.Errorf("failed to initialize: %w", errors.New("permission denied")),
			goldenName: "error_stdlib",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String(), "Expected no output for nil error")
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(zerr.With(zerr.Wrap(errors.New("disk full"), "failed to write lock file"), "path", "/project/poac.lock"))

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"msg":"failed to write lock file"`)
	assert.Contains(t, out, `"path":"/project/poac.lock"`)
	assert.Contains(t, out, "disk full")
	assert.NotContains(t, out, "✗")
}

func TestLogger_SetJSON_Success(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Success("a: 1.0.0 is deleted")

	assert.Contains(t, buf.String(), `"msg":"a: 1.0.0 is deleted"`)
	assert.Contains(t, buf.String(), `"level":"INFO+2"`)
}

func TestLogger_FormatSwitching(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.SetJSON(true)
	lg.Info("json")
	lg.SetJSON(false)
	lg.Info("pretty")

	assert.Contains(t, buf.String(), `"msg":"json"`)
	assert.Contains(t, buf.String(), "pretty\n")
}

func TestLogger_SetOutputKeepsFormat(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	next := &bytes.Buffer{}
	lg.SetOutput(next)
	lg.Warn("moved")

	assert.Contains(t, next.String(), `"level":"WARN"`)
}
