package cmdtoken

import "colobot.info/gold/internal/sim/catalogs"

// Enumeration decoders over the built-in catalogs. Names are matched with
// Cmd in catalog order.

func GetTypeObject(cursor string, rank int, def catalogs.ObjectType) catalogs.ObjectType {
	t, _ := enumArg(catalogs.Default().Objects, cursor, rank, def)
	return t
}

func GetTypeWater(cursor string, rank int, def catalogs.WaterType) catalogs.WaterType {
	t, _ := enumArg(catalogs.Default().Water, cursor, rank, def)
	return t
}

func GetTypeTerrain(cursor string, rank int, def catalogs.TerrainType) catalogs.TerrainType {
	t, _ := enumArg(catalogs.Default().Terrain, cursor, rank, def)
	return t
}

// GetBuild returns the building flag named at rank, or 0.
func GetBuild(cursor string, rank int) catalogs.BuildFlag {
	b, _ := enumArg(catalogs.Default().Builds, cursor, rank, 0)
	return b
}

// GetResearch returns the research flag named at rank, or 0.
func GetResearch(cursor string, rank int) catalogs.ResearchFlag {
	r, _ := enumArg(catalogs.Default().Research, cursor, rank, 0)
	return r
}

func GetPyro(cursor string, rank int) catalogs.PyroType {
	p, _ := enumArg(catalogs.Default().Pyro, cursor, rank, catalogs.PyroNull)
	return p
}

func GetCamera(cursor string, rank int) catalogs.CameraType {
	c, _ := enumArg(catalogs.Default().Cameras, cursor, rank, catalogs.CameraNull)
	return c
}

func GetDrive(cursor string, rank int) catalogs.DriveType {
	d, _ := enumArg(catalogs.Default().Drives, cursor, rank, catalogs.DriveOther)
	return d
}

func GetTool(cursor string, rank int) catalogs.ToolType {
	t, _ := enumArg(catalogs.Default().Tools, cursor, rank, catalogs.ToolOther)
	return t
}

// Encoders. They return the canonical name, never an alias. Unknown codes
// give "" except cameras ("BACK"), drives and tools ("Other").

func ObjectName(t catalogs.ObjectType) string   { return catalogs.Default().Objects.Name(t) }
func WaterName(t catalogs.WaterType) string     { return catalogs.Default().Water.Name(t) }
func TerrainName(t catalogs.TerrainType) string { return catalogs.Default().Terrain.Name(t) }
func BuildName(b catalogs.BuildFlag) string     { return catalogs.Default().Builds.Name(b) }
func ResearchName(r catalogs.ResearchFlag) string {
	return catalogs.Default().Research.Name(r)
}
func PyroName(p catalogs.PyroType) string     { return catalogs.Default().Pyro.Name(p) }
func CameraName(c catalogs.CameraType) string { return catalogs.Default().Cameras.Name(c) }
func DriveName(d catalogs.DriveType) string   { return catalogs.Default().Drives.Name(d) }
func ToolName(t catalogs.ToolType) string     { return catalogs.Default().Tools.Name(t) }
