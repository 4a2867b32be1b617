package level

import (
	"github.com/cockroachdb/errors"

	"colobot.info/gold/internal/script/cmdtoken"
	"colobot.info/gold/internal/sim/auto"
	"colobot.info/gold/internal/sim/catalogs"
	"colobot.info/gold/internal/sim/geom"
)

type decodeState struct {
	dec   cmdtoken.Decoder
	d     Directive
	diags []Diagnostic
}

func (st *decodeState) add(op string, sev Severity, msg string) {
	st.diags = append(st.diags, Diagnostic{
		Line:     st.d.Line,
		Cmd:      st.d.Cmd,
		Op:       op,
		Severity: sev,
		Message:  msg,
	})
}

// note records a decode error. Absent operators are optional unless
// required says otherwise.
func (st *decodeState) note(op string, err error) {
	if err == nil || errors.Is(err, cmdtoken.ErrMissing) {
		return
	}
	st.add(op, SeverityWarn, err.Error())
}

// require reports an absent operator in strict mode.
func (st *decodeState) require(ops ...string) {
	if st.dec.Policy != cmdtoken.Strict {
		return
	}
	for _, op := range ops {
		if cmdtoken.SearchOp(st.d.Text, op) == "" {
			st.add(op, SeverityError, "required operator "+op+" is missing")
		}
	}
}

// Decode interprets dirs. It never fails: problems are returned as
// diagnostics and the scene holds whatever the lenient rules produce.
func Decode(dirs []Directive, dec cmdtoken.Decoder) (*Scene, []Diagnostic) {
	s := &Scene{}
	st := &decodeState{dec: dec}
	for _, d := range dirs {
		st.d = d
		line := d.Text
		switch d.Cmd {
		case "Title":
			st.require("text")
			v, err := dec.Text(line, "text")
			st.note("text", err)
			s.Title = v
		case "Resume":
			st.require("text")
			v, err := dec.Text(line, "text")
			st.note("text", err)
			s.Resume = v
		case "Camera":
			st.require("eye", "lookat")
			c := &Camera{}
			var err error
			c.Eye, err = dec.Dir(line, "eye")
			st.note("eye", err)
			c.LookAt, err = dec.Dir(line, "lookat")
			st.note("lookat", err)
			c.Type, err = dec.Camera(line, "type")
			st.note("type", err)
			s.Camera = c
		case "TerrainWater":
			w := s.water()
			var err error
			w.Air, err = dec.Water(line, "air", catalogs.WaterNull)
			st.note("air", err)
			w.Water, err = dec.Water(line, "water", catalogs.WaterNull)
			st.note("water", err)
			w.Level, err = dec.Float(line, "level", 0)
			st.note("level", err)
		case "WaterColor":
			st.require("color")
			c, err := dec.Color(line, "color", geom.Color{})
			st.note("color", err)
			s.water().Color = c
		case "TerrainType":
			st.require("type")
			t, err := dec.Terrain(line, "type", catalogs.TerrainNull)
			st.note("type", err)
			s.Terrain = t
		case "EnableBuild":
			st.require("type")
			b, err := dec.Build(line, "type")
			st.note("type", err)
			s.Builds |= b
		case "EnableResearch":
			st.require("type")
			r, err := dec.Research(line, "type")
			st.note("type", err)
			s.Research |= r
		case "DoneResearch":
			st.require("type")
			r, err := dec.Research(line, "type")
			st.note("type", err)
			s.DoneResearch |= r
		case "CreateObject":
			st.require("type", "pos")
			s.Objects = append(s.Objects, st.object())
		default:
			s.Extra = append(s.Extra, d)
			st.add("", SeverityInfo, "directive "+d.Cmd+" kept verbatim")
		}
	}
	return s, st.diags
}

func (s *Scene) water() *Water {
	if s.Water == nil {
		s.Water = &Water{}
	}
	return s.Water
}

func (st *decodeState) object() Object {
	dec, line := st.dec, st.d.Text
	var (
		o   Object
		err error
	)
	o.Type, err = dec.Object(line, "type", catalogs.ObjectNull)
	st.note("type", err)
	o.Pos, err = dec.Pos(line, "pos")
	st.note("pos", err)
	o.Height, err = dec.Float(line, "h", 0)
	st.note("h", err)
	o.Dir, err = dec.Float(line, "dir", 0)
	st.note("dir", err)
	o.Power, err = dec.Float(line, "power", DefaultPower)
	st.note("power", err)
	o.Drive, err = dec.Drive(line, "drive")
	st.note("drive", err)
	o.Tool, err = dec.Tool(line, "tool")
	st.note("tool", err)
	o.Camera, err = dec.Camera(line, "camera")
	st.note("camera", err)
	o.Pyro, err = dec.Pyro(line, "pyro")
	st.note("pyro", err)
	o.Color, err = dec.Color(line, "color", geom.Color{})
	st.note("color", err)
	o.ID, err = dec.Int(line, "id", 0)
	st.note("id", err)
	o.Name, err = dec.Text(line, "name")
	st.note("name", err)
	o.Auto = auto.ReadSaved(o.Type, line)
	return o
}

// Counts tallies diagnostics by severity.
func Counts(diags []Diagnostic) map[Severity]int {
	out := make(map[Severity]int, 3)
	for _, d := range diags {
		out[d.Severity]++
	}
	return out
}
