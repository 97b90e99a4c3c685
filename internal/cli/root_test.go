package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	res := runCLI(t, "", "version")
	require.NoError(t, res.Err)
	assert.Equal(t, "librarian v0.1.0\nmodule: github.com/mesh-intelligence/librarian\n", res.Stdout)
}

func TestRootRejectsArgs(t *testing.T) {
	res := runCLI(t, "", "--config-dir", t.TempDir(), "extra")
	assert.Error(t, res.Err)
}

func TestExitCode(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil is success", err: nil, want: exitSuccess},
		{name: "plain error is a user error", err: base, want: exitUserError},
		{name: "user error", err: userError("bad input: %w", base), want: exitUserError},
		{name: "system error", err: sysError(base), want: exitSysError},
		{name: "wrapped system error", err: fmt.Errorf("outer: %w", sysError(base)), want: exitSysError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestExitCodeErrorUnwraps(t *testing.T) {
	base := errors.New("boom")
	assert.ErrorIs(t, sysError(base), base)
	assert.ErrorIs(t, userError("wrap: %w", base), base)
}
