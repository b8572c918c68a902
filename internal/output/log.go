package output

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// NewLogger builds the diagnostics logger for one invocation: warnings by
// default, debug with --verbose, errors only with --quiet, JSON lines in
// --json mode.
func NewLogger(w io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	switch {
	case flagVerbose:
		logger.SetLevel(log.DebugLevel)
	case flagQuiet:
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.WarnLevel)
	}
	if flagJSON {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{
			DisableTimestamp: true,
			DisableColors:    flagNoColor,
		})
	}
	return logger
}
