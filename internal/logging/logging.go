// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New builds the process logger. With a path, logs go to that file;
// otherwise to stderr, or nowhere when quiet is set. The returned func
// closes the file, if any.
func New(level, path string, quiet bool) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: invalid log level %q: %w", level, err)
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case path != "":
		f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("logging: cannot open log file: %w", openErr)
		}
		w = f
		//nolint:errcheck // Best-effort close on exit
		closer = func() { f.Close() }
	case quiet:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           lvl,
	})
	return logger, closer, nil
}
