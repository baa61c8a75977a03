// SPDX-License-Identifier: EPL-2.0

// Package log hands out logrus loggers for the loader and the CLI.
// Setting AUDSIG_DEBUG to a true value enables debug output.
package log

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// DebugEnv is the environment variable that enables debug logging.
const DebugEnv = "AUDSIG_DEBUG"

var debug bool

// Logger is the subset of logrus used across the module.
type Logger interface {
	Debug(...any)
	Info(...any)
	WithFields(logrus.Fields) *logrus.Entry
}

func init() {
	debug = parseDebug(os.Getenv(DebugEnv))
}

func parseDebug(v string) bool {
	on, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return on
}

// SetDebug overrides the environment toggle for loggers created afterwards.
func SetDebug(on bool) { debug = on }

// GetLogger returns a new logger instance
func GetLogger() *logrus.Logger {
	l := logrus.New()
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}
