// Package level reads and writes scene files made of directive lines.
package level

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"colobot.info/gold/internal/script/cmdtoken"
)

// MaxLineBytes bounds a single directive line.
const MaxLineBytes = 1 << 20

// Directive is one non blank line of a scene file with comments removed.
type Directive struct {
	Line int    `json:"line"`
	Cmd  string `json:"cmd"`
	Text string `json:"text"`
}

// Read splits r into directives. Tabs become spaces, everything after "//"
// is dropped (also inside quotes, as the game does) and blank lines are
// skipped.
func Read(r io.Reader) ([]Directive, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)

	var out []Directive
	n := 0
	for sc.Scan() {
		n++
		text := sc.Text()
		if i := strings.Index(text, "//"); i >= 0 {
			text = text[:i]
		}
		text = strings.ReplaceAll(text, "\t", " ")
		text = strings.TrimRight(text, " \r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		out = append(out, Directive{Line: n, Cmd: cmdtoken.GetCmd(text), Text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "level: line %d", n+1)
	}
	return out, nil
}

// LoadFile reads and decodes the scene at path.
func LoadFile(path string, dec cmdtoken.Decoder) (*Scene, []Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "level")
	}
	defer f.Close()

	dirs, err := Read(f)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "%s", path)
	}
	scene, diags := Decode(dirs, dec)
	return scene, diags, nil
}
