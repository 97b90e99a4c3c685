package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// cliResult captures the outcome of one root command execution.
type cliResult struct {
	Stdout string
	Stderr string
	Err    error
}

// runCLI executes a fresh root command with the given stdin and arguments.
func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return cliResult{Stdout: out.String(), Stderr: errOut.String(), Err: err}
}

// runMenuScript runs the interactive menu against an empty config directory.
func runMenuScript(t *testing.T, script string, args ...string) cliResult {
	t.Helper()
	dir := t.TempDir()
	return runCLI(t, script, append([]string{"--config-dir", dir}, args...)...)
}

// writeConfig writes config.yaml into a fresh directory and returns it.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
	return dir
}

// lines joins menu answers into a script, one answer per line.
func lines(answers ...string) string {
	return strings.Join(answers, "\n") + "\n"
}
