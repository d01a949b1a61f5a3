package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logFileName = "rhotate.log"
	maxLogSize  = 10 << 20 // 10MB
)

// setupLogging opens the debug log under dir, rotating it past maxLogSize
// Stdout and stderr belong to the terminal, so nothing is logged there: with debug off the logger is a no-op
// The standard library logger is redirected too, so dependencies cannot scribble over the display
func setupLogging(debug bool, dir string) (*os.File, zerolog.Logger) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, zerolog.Nop()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil, zerolog.Nop()
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("rhotate-%s.log", time.Now().Format("20060102-150405")))
		os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, zerolog.Nop()
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger := zerolog.New(f).With().Timestamp().Int("pid", os.Getpid()).Logger().Level(zerolog.DebugLevel)

	log.SetFlags(0)
	log.SetOutput(logger)
	return f, logger
}
