package bower

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger receives every diagnostic bower emits. Replace it with SetLogger.
var logger = newLogger()

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "bower",
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.InfoLevel,
	})
}

// SetLogger replaces the package logger. A nil logger restores the default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = newLogger()
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *log.Logger {
	return logger
}
