// Package logging sets up the standard library logger used by the commands.
package logging

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for file logs.
const (
	maxSizeMB  = 10  // megabytes after which a new file is started
	maxBackups = 4   // rotated files kept
	maxAgeDays = 180 // days a rotated file is kept
)

// Setup points the standard logger at stderr, and additionally at a
// rotating file when path is non-empty. The returned closer flushes and
// closes the file; it is never nil.
func Setup(path, prefix string) io.Closer {
	log.SetPrefix(prefix)
	log.SetFlags(log.LstdFlags)

	if path == "" {
		log.SetOutput(os.Stderr)
		return nopCloser{}
	}

	rotator := NewRotator(path)
	log.SetOutput(io.MultiWriter(os.Stderr, rotator))
	return rotator
}

// NewRotator returns a size-rotated, gzip-compressing log file writer.
func NewRotator(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
