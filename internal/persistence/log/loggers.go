package log

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zstd"

	"colobot.info/gold/internal/level"
)

// JSONLZstdWriter appends one JSON document per line to hourly files named
// <prefix>-YYYY-MM-DD-HH.jsonl.zst. Each rotation starts a new zstd frame, so
// reopening an hour that was already written still yields a readable file.
type JSONLZstdWriter struct {
	baseDir string
	prefix  string
	now     func() time.Time

	mu      sync.Mutex
	curHour string
	f       *os.File
	enc     *zstd.Encoder
	w       *bufio.Writer
}

func NewJSONLZstdWriter(baseDir, prefix string) *JSONLZstdWriter {
	return &JSONLZstdWriter{
		baseDir: baseDir,
		prefix:  prefix,
		now:     time.Now,
	}
}

func (w *JSONLZstdWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closeLocked()
}

// Path returns the file the writer currently appends to, or "" before the
// first write.
func (w *JSONLZstdWriter) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.curHour == "" {
		return ""
	}
	return w.pathForHour(w.curHour)
}

func (w *JSONLZstdWriter) Write(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	hour := w.now().UTC().Format("2006-01-02-15")
	if hour != w.curHour || w.w == nil {
		if err := w.rotateLocked(hour); err != nil {
			return err
		}
	}

	b, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "jsonl: marshal")
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	return w.w.Flush()
}

func (w *JSONLZstdWriter) rotateLocked(hour string) error {
	if err := w.closeLocked(); err != nil {
		return err
	}
	if err := os.MkdirAll(w.baseDir, 0o755); err != nil {
		return errors.Wrap(err, "jsonl")
	}
	f, err := os.OpenFile(w.pathForHour(hour), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrap(err, "jsonl")
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return err
	}
	w.f = f
	w.enc = enc
	w.w = bufio.NewWriterSize(enc, 32*1024)
	w.curHour = hour
	return nil
}

func (w *JSONLZstdWriter) closeLocked() error {
	var err1 error
	if w.w != nil {
		_ = w.w.Flush()
	}
	if w.enc != nil {
		err1 = w.enc.Close()
		w.enc = nil
	}
	if w.f != nil {
		_ = w.f.Close()
		w.f = nil
	}
	w.w = nil
	return err1
}

func (w *JSONLZstdWriter) pathForHour(hour string) string {
	return filepath.Join(w.baseDir, fmt.Sprintf("%s-%s.jsonl.zst", w.prefix, hour))
}

// DiagnosticRecord is one line of the diagnostics log.
type DiagnosticRecord struct {
	Time     string         `json:"time"`
	Source   string         `json:"source"`
	Line     int            `json:"line"`
	Cmd      string         `json:"cmd"`
	Op       string         `json:"op,omitempty"`
	Severity level.Severity `json:"severity"`
	Message  string         `json:"message"`
}

// DiagnosticsWriter records level diagnostics (compressed).
type DiagnosticsWriter struct{ w *JSONLZstdWriter }

func NewDiagnosticsWriter(dir string) *DiagnosticsWriter {
	return &DiagnosticsWriter{w: NewJSONLZstdWriter(dir, "diagnostics")}
}

// WriteDiagnostics appends every diagnostic found in source.
func (l *DiagnosticsWriter) WriteDiagnostics(source string, diags []level.Diagnostic) error {
	if len(diags) == 0 {
		return nil
	}
	ts := l.w.now().UTC().Format(time.RFC3339)
	for _, d := range diags {
		rec := DiagnosticRecord{
			Time:     ts,
			Source:   source,
			Line:     d.Line,
			Cmd:      d.Cmd,
			Op:       d.Op,
			Severity: d.Severity,
			Message:  d.Message,
		}
		if err := l.w.Write(rec); err != nil {
			return errors.Wrapf(err, "diagnostics: %s", source)
		}
	}
	return nil
}

func (l *DiagnosticsWriter) Path() string { return l.w.Path() }
func (l *DiagnosticsWriter) Close() error { return l.w.Close() }
