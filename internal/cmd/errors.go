package cmd

import (
	"errors"
	"fmt"

	"github.com/dsmmcken/distman/internal/dist"
	"github.com/dsmmcken/distman/internal/fsops"
	"github.com/dsmmcken/distman/internal/output"
	"github.com/spf13/cobra"
)

// ErrUsage marks errors caused by how the command was invoked.
var ErrUsage = errors.New("usage error")

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return output.ExitSuccess
	case errors.Is(err, ErrUsage), errors.Is(err, dist.ErrInvalidID):
		return output.ExitUsage
	case errors.Is(err, dist.ErrActiveVersion):
		return output.ExitProtected
	case errors.Is(err, dist.ErrNotFound), errors.Is(err, dist.ErrNotActivated):
		return output.ExitNotFound
	case errors.Is(err, fsops.ErrPermissionDenied):
		return output.ExitPermission
	default:
		return output.ExitError
	}
}

// errorCode is the machine-readable code used in JSON error envelopes.
func errorCode(err error) string {
	switch {
	case errors.Is(err, ErrUsage):
		return "usage"
	case errors.Is(err, dist.ErrInvalidID):
		return "invalid_name"
	case errors.Is(err, dist.ErrActiveVersion):
		return "active_distribution"
	case errors.Is(err, dist.ErrNotFound), errors.Is(err, dist.ErrNotActivated):
		return "not_found"
	case errors.Is(err, fsops.ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, fsops.ErrLocked):
		return "locked"
	case errors.Is(err, fsops.ErrDeleteFailed):
		return "delete_failed"
	case errors.Is(err, dist.ErrRemoveFailed):
		return "remove_failed"
	default:
		return "error"
	}
}

// fail writes the JSON error envelope when --json is set and returns err
// unchanged so the exit code still reflects it. It reads the flag directly
// because argument validation runs before PersistentPreRunE.
func fail(cmd *cobra.Command, err error) error {
	if jsonFlag {
		_ = output.PrintError(cmd.ErrOrStderr(), errorCode(err), err.Error())
	}
	return err
}

// exactlyOneDist accepts a single distribution name and reports a usage
// error for anything else.
func exactlyOneDist(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return fail(cmd, fmt.Errorf("%w: a distribution is required; run '%s --help' for usage", ErrUsage, cmd.CommandPath()))
	case len(args) > 1:
		return fail(cmd, fmt.Errorf("%w: too many arguments; run '%s --help' for usage", ErrUsage, cmd.CommandPath()))
	}
	return nil
}
