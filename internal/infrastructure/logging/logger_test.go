package logging

import (
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestSetup(t *testing.T) {
	t.Run("json debug", func(t *testing.T) {
		Setup("debug", "JSON")
		if log.GetLevel() != log.DebugLevel {
			t.Fatalf("expected debug level, got %s", log.GetLevel())
		}
		if _, ok := log.StandardLogger().Formatter.(*log.JSONFormatter); !ok {
			t.Fatalf("expected json formatter")
		}
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		Setup("loud", "text")
		if log.GetLevel() != log.InfoLevel {
			t.Fatalf("expected info level, got %s", log.GetLevel())
		}
		if _, ok := log.StandardLogger().Formatter.(*log.TextFormatter); !ok {
			t.Fatalf("expected text formatter")
		}
	})
}
