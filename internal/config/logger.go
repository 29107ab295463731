package config

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// InitLogger sets the global level and returns a structured logger writing
// to w. Command output goes to stdout, so callers pass stderr here.
func InitLogger(level string, w io.Writer) zerolog.Logger {
	parsedLevel, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsedLevel == zerolog.NoLevel {
		parsedLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(parsedLevel)

	return zerolog.New(w).With().Timestamp().Logger()
}
