package testutil

import (
	"bytes"
	"io"

	"github.com/dtroode/gophframe/internal/logger"
)

// MakeNoopLogger returns a logger that discards everything.
func MakeNoopLogger() *logger.Logger {
	return logger.NewWithFormat(io.Discard, 0, logger.FormatText)
}

// MakeJSONLogger returns a debug level JSON logger writing into buf.
func MakeJSONLogger(buf *bytes.Buffer) *logger.Logger {
	return logger.NewWithFormat(buf, -4, logger.FormatJSON)
}
