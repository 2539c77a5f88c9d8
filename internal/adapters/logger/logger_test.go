package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/3pl/internal/adapters/logger"
	"go.trai.ch/3pl/internal/core/domain"
	"go.trai.ch/zerr"
)

func newPlainLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := logger.New()
	l.SetColorMode(domain.ColorNever)
	l.SetOutput(&buf)
	return l, &buf
}

func TestLogger_Warn(t *testing.T) {
	l, buf := newPlainLogger(t)
	l.Warn("No license field: foo v1.0.0")
	l.Warn("No license files found: foo v1.0.0")

	g := goldie.New(t)
	g.Assert(t, "warn", buf.Bytes())
}

func TestLogger_Error_flattensChain(t *testing.T) {
	l, buf := newPlainLogger(t)
	l.Error(zerr.Wrap(errors.New("permission denied"), "failed to read directory"))

	g := goldie.New(t)
	g.Assert(t, "error_chain", buf.Bytes())
}

func TestLogger_Error_bareSentinel(t *testing.T) {
	l, buf := newPlainLogger(t)
	l.Error(domain.ErrNoDependencies)

	assert.Equal(t, "✗ No dependencies\n", buf.String())
}

func TestLogger_Error_wrappedSentinelShowsWrapMessageOnly(t *testing.T) {
	// A sentinel at the end of the chain supplies the errors.Is identity;
	// only the wrap site's message reaches the user.
	l, buf := newPlainLogger(t)
	err := zerr.Wrap(domain.ErrTargetSpec, `Could not find specification for target "riscv128gc-unknown-none"`)
	l.Error(err)

	require.ErrorIs(t, err, domain.ErrTargetSpec)
	assert.Equal(t, "✗ Could not find specification for target \"riscv128gc-unknown-none\"\n", buf.String())
	assert.NotContains(t, buf.String(), "target specification")
}

func TestLogger_Error_includesMetadata(t *testing.T) {
	l, buf := newPlainLogger(t)
	l.Error(zerr.With(zerr.Wrap(domain.ErrMetadataCommand, "cargo metadata failed"), "stderr", "error: could not find Cargo.toml"))

	assert.Contains(t, buf.String(), "cargo metadata failed")
	assert.Contains(t, buf.String(), "stderr=error: could not find Cargo.toml")
}

func TestLogger_Error_plainError(t *testing.T) {
	l, buf := newPlainLogger(t)
	l.Error(assert.AnError)

	require.Contains(t, buf.String(), assert.AnError.Error())
}

func TestLogger_Error_nil(t *testing.T) {
	l, buf := newPlainLogger(t)
	l.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_Info(t *testing.T) {
	l, buf := newPlainLogger(t)
	l.Info("resolved 12 packages")
	assert.Equal(t, "resolved 12 packages\n", buf.String())
}

func TestLogger_bufferOutputIsNeverColored(t *testing.T) {
	// A plain buffer is not a terminal, so auto mode must not emit
	// escape codes.
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)
	l.Warn("plain")

	assert.NotContains(t, buf.String(), "\x1b[")
}
