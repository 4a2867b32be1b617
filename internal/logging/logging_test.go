package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"debug": zapcore.DebugLevel,
		"WARN":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q)=%v,%v", in, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestInitialize(t *testing.T) {
	prev := L
	t.Cleanup(func() { L = prev })

	if err := Initialize(true, "warn"); err != nil {
		t.Fatalf("Initialize json: %v", err)
	}
	if L.Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info enabled at warn level")
	}
	if err := Initialize(false, "debug"); err != nil {
		t.Fatalf("Initialize console: %v", err)
	}
	if !Component("test").Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug disabled at debug level")
	}
	if err := Initialize(false, "nope"); err == nil {
		t.Fatalf("expected error for bad level")
	}
}
