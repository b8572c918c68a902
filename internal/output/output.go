package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// Exit codes
const (
	ExitSuccess    = 0
	ExitError      = 1
	ExitUsage      = 2
	ExitProtected  = 3
	ExitNotFound   = 4
	ExitPermission = 5
)

var (
	flagJSON    bool
	flagQuiet   bool
	flagVerbose bool
	flagNoColor bool
)

// SetFlags is called by the root command's PersistentPreRun to propagate flag values.
func SetFlags(jsonMode, quiet, verbose, noColor bool) {
	flagJSON = jsonMode
	flagQuiet = quiet
	flagVerbose = verbose
	flagNoColor = noColor
}

// IsJSON returns true when --json mode is active.
func IsJSON() bool { return flagJSON }

// IsQuiet returns true when --quiet mode is active.
func IsQuiet() bool { return flagQuiet }

// PrintJSON marshals v as JSON and writes it to w.
func PrintJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// PrintError writes a JSON error envelope to w.
func PrintError(w io.Writer, code string, message string) error {
	return PrintJSON(w, map[string]string{
		"error":   code,
		"message": message,
	})
}
