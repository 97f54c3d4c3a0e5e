// Package logs redirects the standard logger to a file so interactive
// output stays clean.
package logs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	logFile *os.File
	mu      sync.Mutex
)

// Initialize points the standard logger at path, creating parent
// directories. An empty path leaves logging on stderr.
func Initialize(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	if logFile != nil {
		logFile.Close()
	}

	logFile = f
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags)

	log.Printf("[logs] Logging to %s", path)
	return nil
}

// Close restores stderr output and closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	log.SetOutput(os.Stderr)
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
