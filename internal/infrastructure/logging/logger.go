package logging

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Setup configures the global logrus logger. format is "json" or "text";
// an unknown level falls back to info.
func Setup(level, format string) {
	log.SetOutput(os.Stdout)
	if strings.EqualFold(format, "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Printf("[logging] unknown LOG_LEVEL=%q, using info", level)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
