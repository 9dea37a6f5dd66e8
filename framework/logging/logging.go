// Package logging builds the application logger, registered in the
// container as the "logger" singleton.
package logging

import (
	"go.uber.org/zap"
)

// New returns a zap logger tuned for the given APP_ENV: JSON at info level
// for "production", human-readable console output at debug level for
// everything else.
func New(env string) *zap.Logger {
	if env == "production" {
		log, err := zap.NewProduction()
		if err != nil {
			panic("logging: unable to build production logger: " + err.Error())
		}
		return log
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		panic("logging: unable to build development logger: " + err.Error())
	}
	return log
}

// Nop returns a logger that discards everything. Handy in tests.
func Nop() *zap.Logger {
	return zap.NewNop()
}
