package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadFromReaderOverridesDefaults(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(`
policy: strict
log:
  level: debug
index:
  jobs: 8
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Defaults()
	want.Policy = "strict"
	want.Log.Level = "debug"
	want.Index.Jobs = 8
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config (-want +got):\n%s", diff)
	}
}

func TestLoadFromReaderEmpty(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(Defaults(), cfg); diff != "" {
		t.Fatalf("config (-want +got):\n%s", diff)
	}
}

func TestLoadFromReaderRejectsUnknownFields(t *testing.T) {
	if _, err := LoadFromReader(strings.NewReader("polcy: strict\n")); err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Defaults()
	cfg.Policy = "sloppy"
	cfg.Index.Jobs = 0
	cfg.Serve.Addr = ""
	err := Validate(cfg)
	if err == nil {
		t.Fatalf("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"policy", "index.jobs", "serve.addr"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error %q does not mention %s", msg, want)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("serve:\n  addr: \":9000\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Serve.Addr != ":9000" || cfg.Policy != "lenient" {
		t.Fatalf("cfg: %+v", cfg)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for explicit missing file")
	}
	if got := cfg.Profile.WatchDebounce().Milliseconds(); got != 300 {
		t.Fatalf("debounce=%d", got)
	}
}
