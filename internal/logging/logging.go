// Package logging configures the process-wide logrus logger from LogConfig.
package logging

import (
	"os"

	log "github.com/sirupsen/logrus"

	"xactdiff/internal/config"
)

// Init sets the standard logger's level and formatter. Unknown levels fall
// back to info; format "json" selects the JSON formatter, anything else text.
func Init(cfg config.LogConfig) {
	log.SetOutput(os.Stdout)

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
		return
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
