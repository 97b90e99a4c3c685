// Package cli implements the librarian command-line interface: the root
// command, the interactive catalog menu, and the init and version commands.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	logLevel  string
}

// exitCodeError carries the process exit code for an error returned by a
// command. Errors without one exit with exitUserError.
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string { return e.err.Error() }
func (e *exitCodeError) Unwrap() error { return e.err }

// sysError marks err as a system failure (exit code 2).
func sysError(err error) error {
	return &exitCodeError{code: exitSysError, err: err}
}

// NewRootCmd creates the top-level "librarian" command with global flags
// and all subcommands registered. Running it without a subcommand opens the
// interactive menu.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:     "librarian",
		Short:   "An in-memory library catalog",
		Long:    "Librarian keeps a catalog of printed books and e-books for one session:\nadd, list, search, borrow, return, delete, and summarize items.",
		Version: Version,
		Args:    cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, flags)
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir/librarian)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config.yaml)")

	root.AddCommand(newMenuCmd(flags))
	root.AddCommand(newInitCmd(flags))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitCode maps a command error to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ec *exitCodeError
	if errors.As(err, &ec) {
		return ec.code
	}
	return exitUserError
}

// userError formats a message as a user error (exit code 1).
func userError(format string, args ...any) error {
	return &exitCodeError{code: exitUserError, err: fmt.Errorf(format, args...)}
}
