// Package logging configures the orchestrator's zerolog output: structured
// JSON to stderr by default, or a human-readable console writer when pretty
// output is requested, matching the level the teacher's own beacon API
// client accepts (github.com/rs/zerolog).
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Setup parses levelName (e.g. "debug", "info", "warn") and returns a logger
// writing to out. An empty out defaults to os.Stderr. pretty selects the
// console writer instead of raw JSON, for interactive use.
func Setup(levelName string, pretty bool, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(levelName))
	if err != nil {
		level = zerolog.InfoLevel
	}

	if out == nil {
		out = os.Stderr
	}
	if pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// WithComponent returns a child logger tagging every entry with which loop
// produced it (oracle, signer, relayer, batch-requester), per §7's logging
// requirements.
func WithComponent(log zerolog.Logger, component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
