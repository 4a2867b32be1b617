// Package config loads colobot-level.yaml.
package config

import (
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"colobot.info/gold/internal/logging"
	"colobot.info/gold/internal/script/cmdtoken"
)

// DefaultFile is read from the working directory when no --config is given.
const DefaultFile = "colobot-level.yaml"

type Config struct {
	// Policy is "lenient" or "strict".
	Policy string `yaml:"policy"`
	// AliasFile is an optional YAML overlay of catalog aliases.
	AliasFile string `yaml:"alias_file"`

	Log         LogConfig         `yaml:"log"`
	Profile     ProfileConfig     `yaml:"profile"`
	Index       IndexConfig       `yaml:"index"`
	Diagnostics DiagnosticsConfig `yaml:"diagnostics"`
	Serve       ServeConfig       `yaml:"serve"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

type ProfileConfig struct {
	Path                string `yaml:"path"`
	UseCurrentDirectory bool   `yaml:"use_current_directory"`
	UserDir             string `yaml:"user_dir"`
	WatchDebounceMs     int    `yaml:"watch_debounce_ms"`
}

func (p ProfileConfig) WatchDebounce() time.Duration {
	return time.Duration(p.WatchDebounceMs) * time.Millisecond
}

type IndexConfig struct {
	Path string `yaml:"path"`
	Jobs int    `yaml:"jobs"`
}

type DiagnosticsConfig struct {
	// Dir receives hourly diagnostics-*.jsonl.zst files; empty disables them.
	Dir string `yaml:"dir"`
}

type ServeConfig struct {
	Addr string `yaml:"addr"`
}

func Defaults() Config {
	return Config{
		Policy: cmdtoken.Lenient.String(),
		Log:    LogConfig{Level: "info"},
		Profile: ProfileConfig{
			UseCurrentDirectory: true,
			WatchDebounceMs:     300,
		},
		Index: IndexConfig{Path: "data/index.sqlite", Jobs: 4},
		Serve: ServeConfig{Addr: "127.0.0.1:8088"},
	}
}

// Load reads path. A missing DefaultFile is not an error and yields
// Defaults; any other missing path is.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultFile
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultFile {
			return Defaults(), nil
		}
		return Config{}, errors.Wrapf(err, "config: open %q", path)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: %s", path)
	}
	return cfg, nil
}

// LoadFromReader decodes YAML over Defaults and validates the result.
func LoadFromReader(r io.Reader) (Config, error) {
	cfg := Defaults()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decode yaml")
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func Validate(cfg Config) error {
	var errs []error
	if _, err := cmdtoken.ParsePolicy(cfg.Policy); err != nil {
		errs = append(errs, errors.Wrap(err, "policy"))
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, errors.Wrap(err, "log.level"))
	}
	if cfg.Profile.WatchDebounceMs < 0 {
		errs = append(errs, errors.Newf("profile.watch_debounce_ms %d is negative", cfg.Profile.WatchDebounceMs))
	}
	if cfg.Index.Jobs < 1 || cfg.Index.Jobs > 64 {
		errs = append(errs, errors.Newf("index.jobs %d is out of range [1, 64]", cfg.Index.Jobs))
	}
	if cfg.Serve.Addr == "" {
		errs = append(errs, errors.New("serve.addr is required"))
	}
	if len(errs) > 0 {
		return errors.WithHint(errors.Wrap(errors.Join(errs...), "config"), "see colobot-level.yaml in the repository root for an example")
	}
	return nil
}
