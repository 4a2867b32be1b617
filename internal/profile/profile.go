// Package profile stores player settings in an INI file (colobot.ini).
package profile

import (
	"bytes"
	"crypto/sha256"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"gopkg.in/ini.v1"

	"colobot.info/gold/internal/logging"
)

// LocalFile is the profile name used when the working directory is
// preferred over the system location.
const LocalFile = "colobot.ini"

type Options struct {
	// Path is the system profile location.
	Path string
	// UseCurrentDirectory reads and writes LocalFile in the working
	// directory instead of Path.
	UseCurrentDirectory bool
}

// Store is an in-memory copy of the profile. Setters mark it dirty and Save
// writes it back. It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	opts    Options
	file    *ini.File
	dirty   bool
	sum     [sha256.Size]byte // content last read from or written to disk
	userDir string
}

func New(opts Options) *Store {
	return &Store{opts: opts, file: ini.Empty()}
}

// Location is the file Load and Save use.
func (s *Store) Location() string {
	if s.opts.UseCurrentDirectory || s.opts.Path == "" {
		return LocalFile
	}
	return s.opts.Path
}

// Load replaces the in-memory profile with the file content.
func (s *Store) Load() error {
	raw, err := os.ReadFile(s.Location())
	if err != nil {
		return errors.Wrap(err, "profile: read")
	}
	f, err := ini.Load(raw)
	if err != nil {
		return errors.Wrapf(err, "profile: parse %s", s.Location())
	}
	s.mu.Lock()
	s.file = f
	s.dirty = false
	s.sum = sha256.Sum256(raw)
	s.mu.Unlock()
	return nil
}

// Reload loads the file only when its content differs from what this store
// last read or wrote. It reports whether the profile changed.
func (s *Store) Reload() (bool, error) {
	raw, err := os.ReadFile(s.Location())
	if err != nil {
		return false, errors.Wrap(err, "profile: read")
	}
	sum := sha256.Sum256(raw)
	s.mu.RLock()
	same := sum == s.sum
	dirty := s.dirty
	s.mu.RUnlock()
	if same {
		return false, nil
	}
	f, err := ini.Load(raw)
	if err != nil {
		return false, errors.Wrapf(err, "profile: parse %s", s.Location())
	}
	if dirty {
		logging.Component("profile").Warnw("external change replaces unsaved settings",
			"path", s.Location())
	}
	s.mu.Lock()
	s.file = f
	s.dirty = false
	s.sum = sum
	s.mu.Unlock()
	return true, nil
}

// Save writes the profile if a setter ran since the last Load or Save.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return nil
	}
	var buf bytes.Buffer
	if _, err := s.file.WriteTo(&buf); err != nil {
		return errors.Wrap(err, "profile: encode")
	}
	path := s.Location()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "profile: mkdir")
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, "profile: write")
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrap(err, "profile: rename")
	}
	s.sum = sha256.Sum256(buf.Bytes())
	s.dirty = false
	return nil
}

func (s *Store) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

func (s *Store) SetString(section, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.file.Section(section).Key(key).SetValue(value)
	s.dirty = true
}

func (s *Store) GetString(section, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sec, err := s.file.GetSection(section)
	if err != nil || !sec.HasKey(key) {
		return "", false
	}
	return sec.Key(key).Value(), true
}

func (s *Store) SetInt(section, key string, value int) {
	s.SetString(section, key, strconv.Itoa(value))
}

// GetInt fails when the key is absent or not an integer.
func (s *Store) GetInt(section, key string) (int, bool) {
	v, ok := s.GetString(section, key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s *Store) SetFloat(section, key string, value float64) {
	s.SetString(section, key, strconv.FormatFloat(value, 'g', -1, 64))
}

func (s *Store) GetFloat(section, key string) (float64, bool) {
	v, ok := s.GetString(section, key)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Section returns, in file order, the values of every key of section whose
// name contains key followed by optional digits. Section("Setup", "Mod")
// returns Mod, Mod1, Mod2... but also OldMod.
func (s *Store) Section(section, key string) []string {
	re := regexp.MustCompile(regexp.QuoteMeta(key) + "[0-9]*")
	s.mu.RLock()
	defer s.mu.RUnlock()
	sec, err := s.file.GetSection(section)
	if err != nil {
		return nil
	}
	var out []string
	for _, k := range sec.Keys() {
		if re.MatchString(k.Name()) {
			out = append(out, k.Value())
		}
	}
	return out
}

func (s *Store) SetUserDir(dir string) {
	s.mu.Lock()
	s.userDir = dir
	s.mu.Unlock()
}

func (s *Store) UserDir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userDir
}

// UserBasedPath resolves a resource path from a level or profile. Backslashes
// become slashes; a bare name is placed under defaultDir; %user% expands to
// the user directory, or to defaultDir when none is set.
func (s *Store) UserBasedPath(dir, defaultDir string) string {
	return userBasedPath(dir, defaultDir, s.UserDir())
}

func userBasedPath(dir, defaultDir, userDir string) string {
	path := strings.ReplaceAll(dir, `\`, "/")
	if !strings.Contains(dir, "/") {
		path = defaultDir + "/" + path
	}
	if userDir != "" {
		path = strings.ReplaceAll(path, "%user%", userDir)
	} else {
		path = strings.ReplaceAll(path, "%user%", defaultDir)
	}
	return filepath.FromSlash(path)
}

// TempUserDir is the user directory CopyFileToTemp copies into.
const TempUserDir = "temp"

// CopyFileToTemp copies a user texture to the same path under the temp
// user directory, overwriting any previous copy. It returns the
// destination.
func (s *Store) CopyFileToTemp(name string) (string, error) {
	src := userBasedPath(name, "textures", s.UserDir())
	dst := userBasedPath(name, "textures", TempUserDir)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", errors.Wrap(err, "profile: temp dir")
	}
	in, err := os.Open(src)
	if err != nil {
		return "", errors.Wrap(err, "profile: copy")
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return "", errors.Wrap(err, "profile: copy")
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return "", errors.Wrapf(err, "profile: copy %s", src)
	}
	if err := out.Close(); err != nil {
		return "", errors.Wrap(err, "profile: copy")
	}
	return dst, nil
}
