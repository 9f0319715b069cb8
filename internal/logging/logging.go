// Package logging keeps every package-level logger at the same level.
package logging

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu      sync.Mutex
	loggers []*logrus.Logger
)

// Register tracks a package-level logger so later level changes reach it.
func Register(logger *logrus.Logger) {
	mu.Lock()
	defer mu.Unlock()
	loggers = append(loggers, logger)
}

// SetAllLogLevels forces the given level on every registered logger and the
// global logrus default.
func SetAllLogLevels(level logrus.Level) {
	mu.Lock()
	defer mu.Unlock()

	logrus.SetLevel(level)
	for _, logger := range loggers {
		logger.SetLevel(level)
	}
}
