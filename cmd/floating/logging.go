package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	logDir      = ".floating/logs"
	logFileName = "floating.log"
)

// setupLogging routes the standard logger to a file under logDir when
// debug is set and discards it otherwise. The caller closes the
// returned file.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
