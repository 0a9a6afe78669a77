package logger

import (
	"testing"

	logrus "github.com/sirupsen/logrus"
)

// Handlers log through L(), so it must hand back the logger Setup
// configures rather than a fresh instance.
func TestLReturnsConfiguredLogger(t *testing.T) {
	if L() != logrus.StandardLogger() {
		t.Error("L() is not the standard logger Setup configures")
	}
}
