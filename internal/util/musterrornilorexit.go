package util

import (
	"fmt"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
)

const (
	ErrGeneric = 99
)

// HelpOutput receives the usage text of a help request
var HelpOutput io.Writer = os.Stdout

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with provided error code.
// Error code is unwrapped from `flags.Error` object. If it's a different kind of error, a generic
// error code - 99 - is returned. A help request prints the usage to HelpOutput and exits with 0.
//
// Every error is reported exactly once, here; the flags parser must not be set up with flags.PrintErrors.
//
// The process is terminated through the standard logger's ExitFunc.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	logger := log.StandardLogger()

	var flagsError *flags.Error
	if errors.As(err, &flagsError) {
		if flagsError.Type == flags.ErrHelp {
			fmt.Fprintln(HelpOutput, flagsError.Message)
			logger.Exit(0)
			return
		}

		logger.WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		logger.Exit(int(flagsError.Type))
	} else {
		logger.WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		logger.Exit(ErrGeneric)
	}
}
