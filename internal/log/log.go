// Package log provides the logger seam for the library and CLI. The default
// logger discards everything; the application installs a real logger with
// Set.
package log

import (
	"github.com/anchore/go-logger"
	"github.com/anchore/go-logger/adapter/discard"
)

var l logger.Logger = discard.New()

// Set installs the singleton logger used by this repository.
func Set(lgr logger.Logger) {
	l = lgr
}

// Get returns the current logger.
func Get() logger.Logger {
	return l
}

func Errorf(format string, args ...interface{}) {
	l.Errorf(format, args...)
}

func Error(args ...interface{}) {
	l.Error(args...)
}

func Warnf(format string, args ...interface{}) {
	l.Warnf(format, args...)
}

func Warn(args ...interface{}) {
	l.Warn(args...)
}

func Infof(format string, args ...interface{}) {
	l.Infof(format, args...)
}

func Info(args ...interface{}) {
	l.Info(args...)
}

func Debugf(format string, args ...interface{}) {
	l.Debugf(format, args...)
}

func Debug(args ...interface{}) {
	l.Debug(args...)
}

func Tracef(format string, args ...interface{}) {
	l.Tracef(format, args...)
}

func Trace(args ...interface{}) {
	l.Trace(args...)
}
