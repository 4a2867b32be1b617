package cmdtoken

import (
	"strconv"

	"github.com/cockroachdb/errors"

	"colobot.info/gold/internal/sim/catalogs"
)

// Kind names a value type a caller can ask DecodeField for.
type Kind string

const (
	KindInt      Kind = "int"
	KindFloat    Kind = "float"
	KindString   Kind = "string"
	KindObject   Kind = "object"
	KindWater    Kind = "water"
	KindTerrain  Kind = "terrain"
	KindResearch Kind = "research"
	KindPyro     Kind = "pyro"
	KindCamera   Kind = "camera"
	KindDrive    Kind = "drive"
	KindTool     Kind = "tool"
	KindBuild    Kind = "build"
	KindPos      Kind = "pos"
	KindDir      Kind = "dir"
	KindColor    Kind = "color"
)

var kinds = []Kind{
	KindInt, KindFloat, KindString, KindObject, KindWater, KindTerrain, KindResearch,
	KindPyro, KindCamera, KindDrive, KindTool, KindBuild, KindPos, KindDir, KindColor,
}

// Kinds lists every supported kind.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Field describes one value to pull out of a line. With an empty Op the
// rank addresses the line itself. Default is written in directive syntax
// ("1.5", "WingedGrabber", "1;1;1;1") and decoded with the same kind.
type Field struct {
	Op      string `json:"op,omitempty"`
	Kind    Kind   `json:"kind"`
	Rank    int    `json:"rank,omitempty"`
	Default string `json:"default,omitempty"`
}

func (f Field) label() string {
	if f.Op != "" {
		return f.Op
	}
	return "arg " + strconv.Itoa(f.Rank)
}

// DecodeField decodes f from line into a JSON friendly value: int, float64,
// string, the canonical name of an enumeration code, geom.Vec3 or
// geom.Color.
func (d Decoder) DecodeField(line string, f Field) (any, error) {
	cur := line
	if f.Op != "" {
		cur = SearchOp(line, f.Op)
	}
	set := d.set()

	var (
		v   any
		err error
	)
	switch f.Kind {
	case KindInt:
		v, err = intArg(cur, f.Rank, GetInt(f.Default, 0, 0))
	case KindFloat:
		v, err = floatArg(cur, f.Rank, GetFloat(f.Default, 0, 0))
	case KindString:
		var s string
		if s, err = stringArg(cur, f.Rank); errors.Is(err, ErrMissing) {
			s = f.Default
		}
		v = s
	case KindObject:
		v, err = enumName(set.Objects, cur, f, catalogs.ObjectNull)
	case KindWater:
		v, err = enumName(set.Water, cur, f, catalogs.WaterNull)
	case KindTerrain:
		v, err = enumName(set.Terrain, cur, f, catalogs.TerrainNull)
	case KindResearch:
		v, err = enumName(set.Research, cur, f, 0)
	case KindPyro:
		v, err = enumName(set.Pyro, cur, f, catalogs.PyroNull)
	case KindCamera:
		v, err = enumName(set.Cameras, cur, f, catalogs.CameraNull)
	case KindDrive:
		v, err = enumName(set.Drives, cur, f, catalogs.DriveOther)
	case KindTool:
		v, err = enumName(set.Tools, cur, f, catalogs.ToolOther)
	case KindBuild:
		v, err = enumName(set.Builds, cur, f, 0)
	case KindPos:
		if SearchArg(cur, f.Rank) == "" {
			v, _ = posArg(f.Default, 0)
			err = ErrMissing
			break
		}
		v, err = posArg(cur, f.Rank)
	case KindDir:
		if SearchArg(cur, f.Rank) == "" {
			v, _ = dirArg(f.Default, 0)
			err = ErrMissing
			break
		}
		v, err = dirArg(cur, f.Rank)
	case KindColor:
		if SearchArg(cur, f.Rank) == "" {
			v, _ = colorArg(f.Default, 0)
			err = ErrMissing
			break
		}
		v, err = colorArg(cur, f.Rank)
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%s: %q", f.label(), f.Kind)
	}
	return v, d.fail(f.label(), err)
}

func enumName[C comparable](cat *catalogs.Catalog[C], cur string, f Field, zero C) (string, error) {
	def, _ := enumArg(cat, f.Default, 0, zero)
	c, err := enumArg(cat, cur, f.Rank, def)
	return cat.Name(c), err
}
