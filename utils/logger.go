package utils

import (
	"io"
	"log"
	"os"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

var (
	logLevel = LogLevelInfo
	logger   = log.New(os.Stderr, "", log.LstdFlags)
)

// SetVerbose enables debug logging
func SetVerbose(verbose bool) {
	if verbose {
		logLevel = LogLevelDebug
	} else {
		logLevel = LogLevelInfo
	}
}

// SetLogOutput redirects diagnostics, mostly for tests
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

func LogError(format string, args ...interface{}) {
	if logLevel >= LogLevelError {
		logger.Printf("❌ "+format, args...)
	}
}

func LogWarn(format string, args ...interface{}) {
	if logLevel >= LogLevelWarn {
		logger.Printf("⚠️  "+format, args...)
	}
}

func LogInfo(format string, args ...interface{}) {
	if logLevel >= LogLevelInfo {
		logger.Printf(format, args...)
	}
}

func LogDebug(format string, args ...interface{}) {
	if logLevel >= LogLevelDebug {
		logger.Printf("DEBUG: "+format, args...)
	}
}
