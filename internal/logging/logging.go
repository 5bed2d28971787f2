package logging

import (
	"io"
	"log"
	"os"
)

// Setup tees the default logger to a per-pipeline log file and stderr.
// The returned func closes the file; logging falls back to stderr only
// if the file cannot be opened.
func Setup(path string) func() {
	log.SetFlags(log.LstdFlags | log.LUTC)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("[LOG][WARN] cannot open %s: %v — logging to stderr only", path, err)
		return func() {}
	}

	log.SetOutput(io.MultiWriter(os.Stderr, f))
	return func() { _ = f.Close() }
}
