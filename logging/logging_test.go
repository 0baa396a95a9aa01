package logging

import (
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoggerInitializers(t *testing.T) {
	Init()
	if l := Logger(SourceApp); l == nil {
		t.Fatal("Logger returned nil")
	}
	if l := StdLogger(SourceImport); l == nil {
		t.Fatal("StdLogger returned nil")
	}
}

func TestSetLevelReachesDerivedLoggers(t *testing.T) {
	l := Logger(SourceDB)

	if err := SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel failed: %v", err)
	}
	t.Cleanup(func() {
		_ = SetLevel("info")
	})

	if got := l.GetLevel(); got != log.DebugLevel {
		t.Fatalf("expected derived logger at debug, got %v", got)
	}
}

func TestSetLevelRejectsUnknown(t *testing.T) {
	if err := SetLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
