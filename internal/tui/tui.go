// Modified and adapted from github.com/MichaelS11/go-tetris.git
// Under MIT.
package tui

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chiselstrike/blockfall/internal/tetris"
)

// NewLogger opens the log file for appending. The terminal belongs to the
// screen while playing, so nothing may be written to stderr.
func NewLogger(path string) (*log.Logger, io.Closer, error) {
	logFile, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := log.New(logFile, "", log.Ldate|log.Ltime|log.LUTC|log.Lshortfile)
	return logger, logFile, nil
}

// Start plays on the terminal until the player quits
func Start(ctx context.Context, logger *log.Logger, options Options) (*Summary, error) {
	view, err := NewView(options.Ghost)
	if err != nil {
		return nil, err
	}
	defer view.Stop()

	engine := NewEngine(view, logger, tetris.NewRandomFactory(nil), options)
	if err := engine.Run(ctx); err != nil {
		return nil, err
	}
	return engine.Summary(), nil
}
