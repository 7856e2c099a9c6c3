// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds the stderr logger shared by all tools. Quiet raises the
// level to Error so routine progress lines disappear but failures still show.
func NewLogger(dst io.Writer, prefix string, quiet bool) *log.Logger {
	logger := log.New(dst)
	logger.SetPrefix(prefix)
	if quiet {
		logger.SetLevel(log.ErrorLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}

// Warnf keeps the old one-line warning path for places that only need a
// plain formatted message.
func Warnf(logger *log.Logger, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	logger.Warnf(format, a...)
}
