package level

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"colobot.info/gold/internal/script/cmdtoken"
	"colobot.info/gold/internal/sim/catalogs"
	"colobot.info/gold/internal/sim/geom"
)

// Encode writes s as directive lines that Read and Decode turn back into s.
// Only canonical catalog codes survive the trip.
func Encode(w io.Writer, s *Scene) error {
	lines, err := Lines(s)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		bw.WriteString(l)
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "level: write")
}

// Lines renders s without the trailing newlines.
func Lines(s *Scene) ([]string, error) {
	var out []string
	if s.Title != "" {
		q, err := quote(s.Title)
		if err != nil {
			return nil, errors.Wrap(err, "title")
		}
		out = append(out, "Title text="+q)
	}
	if s.Resume != "" {
		q, err := quote(s.Resume)
		if err != nil {
			return nil, errors.Wrap(err, "resume")
		}
		out = append(out, "Resume text="+q)
	}
	if c := s.Camera; c != nil {
		l := "Camera eye=" + vec3(c.Eye) + " lookat=" + vec3(c.LookAt)
		if c.Type != catalogs.CameraNull {
			l += " type=" + cmdtoken.CameraName(c.Type)
		}
		out = append(out, l)
	}
	if w := s.Water; w != nil {
		out = append(out, "TerrainWater air="+cmdtoken.WaterName(w.Air)+
			" water="+cmdtoken.WaterName(w.Water)+" level="+num(w.Level))
		if w.Color != (geom.Color{}) {
			out = append(out, "WaterColor color="+color(w.Color))
		}
	}
	if name := cmdtoken.TerrainName(s.Terrain); name != "" {
		out = append(out, "TerrainType type="+name)
	}
	for _, b := range catalogs.Default().Builds.Codes() {
		if s.Builds&b != 0 {
			out = append(out, "EnableBuild type="+cmdtoken.BuildName(b))
		}
	}
	for _, r := range catalogs.Default().Research.Codes() {
		if s.Research&r != 0 {
			out = append(out, "EnableResearch type="+cmdtoken.ResearchName(r))
		}
	}
	for _, r := range catalogs.Default().Research.Codes() {
		if s.DoneResearch&r != 0 {
			out = append(out, "DoneResearch type="+cmdtoken.ResearchName(r))
		}
	}
	for i, o := range s.Objects {
		l, err := objectLine(o)
		if err != nil {
			return nil, errors.Wrapf(err, "object %d", i)
		}
		out = append(out, l)
	}
	for _, d := range s.Extra {
		out = append(out, d.Text)
	}
	return out, nil
}

// objectOp is an operator objectLine leaves out at its default value.
type objectOp struct {
	op, zero string // zero is "" when the default has no spelling
}

func objectLine(o Object) (string, error) {
	var (
		b       strings.Builder
		omitted []objectOp
	)
	opt := func(op, value, zero string, present bool) {
		if present {
			b.WriteString(" " + op + "=" + value)
		} else {
			omitted = append(omitted, objectOp{op, zero})
		}
	}
	b.WriteString("CreateObject")
	name := cmdtoken.ObjectName(o.Type)
	opt("type", name, "", name != "")
	b.WriteString(" pos=" + num(o.Pos.X) + ";" + num(o.Pos.Z))
	opt("h", num(o.Height), "0", o.Height != 0)
	opt("dir", num(o.Dir), "0", o.Dir != 0)
	b.WriteString(" power=" + num(o.Power))
	opt("drive", cmdtoken.DriveName(o.Drive), "", o.Drive != catalogs.DriveOther)
	opt("tool", cmdtoken.ToolName(o.Tool), "", o.Tool != catalogs.ToolOther)
	opt("camera", cmdtoken.CameraName(o.Camera), "", o.Camera != catalogs.CameraNull)
	pyro := cmdtoken.PyroName(o.Pyro)
	opt("pyro", pyro, "", pyro != "")
	opt("color", color(o.Color), "0;0;0;0", o.Color != (geom.Color{}))
	opt("id", strconv.Itoa(o.ID), "0", o.ID != 0)
	switch {
	case o.Auto == nil:
		omitted = append(omitted, objectOp{"aExist", "0"})
	case o.Auto.Research == 0:
		b.WriteString(o.Auto.Write())
		omitted = append(omitted, objectOp{"aResearch", "0"})
	default:
		b.WriteString(o.Auto.Write())
	}
	if o.Name != "" {
		q, err := quote(o.Name)
		if err != nil {
			return "", errors.Wrap(err, "name")
		}
		// The first " op=" of a line wins: spell out every default the
		// name would otherwise supply.
		for _, d := range omitted {
			if !strings.Contains(q, " "+d.op+"=") {
				continue
			}
			if d.zero == "" {
				return "", errors.WithHintf(errors.Newf("name %q contains %q", o.Name, " "+d.op+"="),
					"the level reader would take it as the %s of the object", d.op)
			}
			b.WriteString(" " + d.op + "=" + d.zero)
		}
		b.WriteString(" name=" + q)
	}
	return b.String(), nil
}

// num is the shortest decimal form that scans back to f.
func num(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func vec3(v geom.Vec3) string { return num(v.X) + ";" + num(v.Y) + ";" + num(v.Z) }

func color(c geom.Color) string {
	return num(c.R) + ";" + num(c.G) + ";" + num(c.B) + ";" + num(c.A)
}

// quote doubles embedded quotes. Text that Read would cut cannot be
// represented.
func quote(s string) (string, error) {
	if strings.ContainsAny(s, "\t\r\n") {
		return "", errors.Newf("text %q has a tab or a line break", s)
	}
	if strings.Contains(s, "//") {
		return "", errors.WithHint(errors.Newf("text %q contains //", s),
			"the level reader treats // as the start of a comment")
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`, nil
}
