package cmdtoken

import (
	"colobot.info/gold/internal/sim/catalogs"
	"colobot.info/gold/internal/sim/geom"
)

// Operator level decoding: SearchOp followed by the rank 0 decoder. When the
// operator is absent the result is the same default the argument decoder
// uses for an absent argument.

func (d Decoder) Int(line, op string, def int) (int, error) {
	v, err := intArg(SearchOp(line, op), 0, def)
	return v, d.fail(op, err)
}

func (d Decoder) Float(line, op string, def float64) (float64, error) {
	v, err := floatArg(SearchOp(line, op), 0, def)
	return v, d.fail(op, err)
}

// Text decodes a quoted string operator.
func (d Decoder) Text(line, op string) (string, error) {
	v, err := stringArg(SearchOp(line, op), 0)
	return v, d.fail(op, err)
}

func (d Decoder) Object(line, op string, def catalogs.ObjectType) (catalogs.ObjectType, error) {
	v, err := enumArg(d.set().Objects, SearchOp(line, op), 0, def)
	return v, d.fail(op, err)
}

func (d Decoder) Water(line, op string, def catalogs.WaterType) (catalogs.WaterType, error) {
	v, err := enumArg(d.set().Water, SearchOp(line, op), 0, def)
	return v, d.fail(op, err)
}

func (d Decoder) Terrain(line, op string, def catalogs.TerrainType) (catalogs.TerrainType, error) {
	v, err := enumArg(d.set().Terrain, SearchOp(line, op), 0, def)
	return v, d.fail(op, err)
}

func (d Decoder) Research(line, op string) (catalogs.ResearchFlag, error) {
	v, err := enumArg(d.set().Research, SearchOp(line, op), 0, 0)
	return v, d.fail(op, err)
}

func (d Decoder) Pyro(line, op string) (catalogs.PyroType, error) {
	v, err := enumArg(d.set().Pyro, SearchOp(line, op), 0, catalogs.PyroNull)
	return v, d.fail(op, err)
}

func (d Decoder) Camera(line, op string) (catalogs.CameraType, error) {
	v, err := enumArg(d.set().Cameras, SearchOp(line, op), 0, catalogs.CameraNull)
	return v, d.fail(op, err)
}

func (d Decoder) Drive(line, op string) (catalogs.DriveType, error) {
	v, err := enumArg(d.set().Drives, SearchOp(line, op), 0, catalogs.DriveOther)
	return v, d.fail(op, err)
}

func (d Decoder) Tool(line, op string) (catalogs.ToolType, error) {
	v, err := enumArg(d.set().Tools, SearchOp(line, op), 0, catalogs.ToolOther)
	return v, d.fail(op, err)
}

func (d Decoder) Build(line, op string) (catalogs.BuildFlag, error) {
	v, err := enumArg(d.set().Builds, SearchOp(line, op), 0, 0)
	return v, d.fail(op, err)
}

// Pos decodes a ground position "x;z". Y is always 0.
func (d Decoder) Pos(line, op string) (geom.Vec3, error) {
	cur := SearchOp(line, op)
	if cur == "" {
		return geom.Vec3{}, d.fail(op, ErrMissing)
	}
	v, err := posArg(cur, 0)
	return v, d.fail(op, err)
}

// Dir decodes "x;y;z".
func (d Decoder) Dir(line, op string) (geom.Vec3, error) {
	cur := SearchOp(line, op)
	if cur == "" {
		return geom.Vec3{}, d.fail(op, ErrMissing)
	}
	v, err := dirArg(cur, 0)
	return v, d.fail(op, err)
}

// Color decodes "r;g;b;a". def is returned only when the operator is
// absent; missing components of a present operator are 0.
func (d Decoder) Color(line, op string, def geom.Color) (geom.Color, error) {
	cur := SearchOp(line, op)
	if cur == "" {
		return def, d.fail(op, ErrMissing)
	}
	v, err := colorArg(cur, 0)
	return v, d.fail(op, err)
}

func OpInt(line, op string, def int) int {
	v, _ := lenient.Int(line, op, def)
	return v
}

func OpFloat(line, op string, def float64) float64 {
	v, _ := lenient.Float(line, op, def)
	return v
}

func OpString(line, op string) string {
	v, _ := lenient.Text(line, op)
	return v
}

func OpTypeObject(line, op string, def catalogs.ObjectType) catalogs.ObjectType {
	v, _ := lenient.Object(line, op, def)
	return v
}

func OpTypeWater(line, op string, def catalogs.WaterType) catalogs.WaterType {
	v, _ := lenient.Water(line, op, def)
	return v
}

func OpTypeTerrain(line, op string, def catalogs.TerrainType) catalogs.TerrainType {
	v, _ := lenient.Terrain(line, op, def)
	return v
}

func OpResearch(line, op string) catalogs.ResearchFlag {
	v, _ := lenient.Research(line, op)
	return v
}

func OpPyro(line, op string) catalogs.PyroType {
	v, _ := lenient.Pyro(line, op)
	return v
}

func OpCamera(line, op string) catalogs.CameraType {
	v, _ := lenient.Camera(line, op)
	return v
}

func OpDrive(line, op string) catalogs.DriveType {
	v, _ := lenient.Drive(line, op)
	return v
}

func OpTool(line, op string) catalogs.ToolType {
	v, _ := lenient.Tool(line, op)
	return v
}

func OpBuild(line, op string) catalogs.BuildFlag {
	v, _ := lenient.Build(line, op)
	return v
}

func OpPos(line, op string) geom.Vec3 {
	v, _ := lenient.Pos(line, op)
	return v
}

func OpDir(line, op string) geom.Vec3 {
	v, _ := lenient.Dir(line, op)
	return v
}

func OpColor(line, op string, def geom.Color) geom.Color {
	v, _ := lenient.Color(line, op, def)
	return v
}
