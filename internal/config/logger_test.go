package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInitLogger(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	InitLogger("debug", &bytes.Buffer{})
	if got := zerolog.GlobalLevel(); got != zerolog.DebugLevel {
		t.Fatalf("GlobalLevel = %s, want %s", got, zerolog.DebugLevel)
	}

	InitLogger(" WARN ", &bytes.Buffer{})
	if got := zerolog.GlobalLevel(); got != zerolog.WarnLevel {
		t.Fatalf("GlobalLevel = %s, want %s", got, zerolog.WarnLevel)
	}

	InitLogger("invalid-level", &bytes.Buffer{})
	if got := zerolog.GlobalLevel(); got != zerolog.InfoLevel {
		t.Fatalf("GlobalLevel = %s, want %s", got, zerolog.InfoLevel)
	}

	InitLogger("", &bytes.Buffer{})
	if got := zerolog.GlobalLevel(); got != zerolog.InfoLevel {
		t.Fatalf("GlobalLevel = %s, want %s", got, zerolog.InfoLevel)
	}
}

func TestInitLoggerWritesToWriter(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	logger := InitLogger("info", &buf)
	logger.Info().Str("endpoint", "chat_completions").Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"endpoint":"chat_completions"`) || !strings.Contains(out, `"time"`) {
		t.Fatalf("log output = %s", out)
	}
}
