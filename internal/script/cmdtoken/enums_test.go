package cmdtoken

import (
	"testing"

	"colobot.info/gold/internal/sim/catalogs"
)

func TestObjectRoundTrip(t *testing.T) {
	const sentinel = catalogs.ObjectType(-1)
	for _, code := range catalogs.Default().Objects.Codes() {
		name := ObjectName(code)
		if name == "" {
			t.Fatalf("code %d has no name", code)
		}
		if got := GetTypeObject(name, 0, sentinel); got != code {
			t.Fatalf("decode(encode(%d))=%d via %q", code, got, name)
		}
	}
}

func TestEnumRoundTrips(t *testing.T) {
	set := catalogs.Default()
	for _, c := range set.Water.Codes() {
		if got := GetTypeWater(WaterName(c), 0, -1); got != c {
			t.Fatalf("water %d -> %q -> %d", c, WaterName(c), got)
		}
	}
	for _, c := range set.Terrain.Codes() {
		if got := GetTypeTerrain(TerrainName(c), 0, -1); got != c {
			t.Fatalf("terrain %d -> %q -> %d", c, TerrainName(c), got)
		}
	}
	for _, c := range set.Builds.Codes() {
		if got := GetBuild(BuildName(c), 0); got != c {
			t.Fatalf("build %d -> %q -> %d", c, BuildName(c), got)
		}
	}
	for _, c := range set.Research.Codes() {
		if got := GetResearch(ResearchName(c), 0); got != c {
			t.Fatalf("research %d -> %q -> %d", c, ResearchName(c), got)
		}
	}
	for _, c := range set.Pyro.Codes() {
		if got := GetPyro(PyroName(c), 0); got != c {
			t.Fatalf("pyro %d -> %q -> %d", c, PyroName(c), got)
		}
	}
	for _, c := range set.Cameras.Codes() {
		if got := GetCamera(CameraName(c), 0); got != c {
			t.Fatalf("camera %d -> %q -> %d", c, CameraName(c), got)
		}
	}
	for _, c := range set.Drives.Codes() {
		if got := GetDrive(DriveName(c), 0); got != c {
			t.Fatalf("drive %d -> %q -> %d", c, DriveName(c), got)
		}
	}
	for _, c := range set.Tools.Codes() {
		if got := GetTool(ToolName(c), 0); got != c {
			t.Fatalf("tool %d -> %q -> %d", c, ToolName(c), got)
		}
	}
}

func TestObjectAliases(t *testing.T) {
	cases := []struct {
		alias, canonical string
		code             catalogs.ObjectType
	}{
		{"PlatinumSpot", "UraniumSpot", catalogs.ObjectMarkUranium},
		{"PlatinumOre", "UraniumOre", catalogs.ObjectUranium},
		{"FuelCell", "NuclearCell", catalogs.ObjectAtomic},
		{"FuelCellPlant", "NuclearPlant", catalogs.ObjectNuclear},
	}
	for _, tc := range cases {
		if got := GetTypeObject(tc.alias, 0, -1); got != tc.code {
			t.Fatalf("%s decodes to %d want %d", tc.alias, got, tc.code)
		}
		if got := GetTypeObject(tc.canonical, 0, -1); got != tc.code {
			t.Fatalf("%s decodes to %d want %d", tc.canonical, got, tc.code)
		}
		if got := ObjectName(tc.code); got != tc.canonical {
			t.Fatalf("encode %d=%q want %q", tc.code, got, tc.canonical)
		}
	}
	if got := GetTypeObject("All", 0, catalogs.ObjectPortico); got != catalogs.ObjectNull {
		t.Fatalf("All decodes to %d", got)
	}
	if got := ObjectName(catalogs.ObjectNull); got != "" {
		t.Fatalf("null object encodes to %q", got)
	}
	if got := BuildName(catalogs.BuildNuclear); got != "NuclearPlant" {
		t.Fatalf("nuclear plant build encodes to %q", got)
	}
	if got := GetBuild("FuelCellPlant", 0); got != catalogs.BuildNuclear {
		t.Fatalf("FuelCellPlant build decodes to %d", got)
	}
}

func TestEnumDefaults(t *testing.T) {
	if got := GetTypeObject("WingedGrabber", 0, catalogs.ObjectNull); got != catalogs.ObjectMobileFA {
		t.Fatalf("WingedGrabber=%d", got)
	}
	if got := GetTypeObject("Unknown", 0, catalogs.ObjectPortico); got != catalogs.ObjectPortico {
		t.Fatalf("unknown name should give default, got %d", got)
	}
	if got := GetTypeObject("WingedGrabber2", 0, catalogs.ObjectPortico); got != catalogs.ObjectPortico {
		t.Fatalf("prefix collision matched: %d", got)
	}
	if got := GetTypeObject("WingedGrabber;1", 0, catalogs.ObjectPortico); got != catalogs.ObjectPortico {
		t.Fatalf("';' treated as delimiter: %d", got)
	}
	if got := GetTypeWater("XX", 0, catalogs.WaterCO); got != catalogs.WaterCO {
		t.Fatalf("water default: %d", got)
	}
	if got := GetTypeTerrain("", 0, catalogs.TerrainMetal); got != catalogs.TerrainMetal {
		t.Fatalf("terrain default: %d", got)
	}
	if got := GetBuild("Nope", 0); got != 0 {
		t.Fatalf("build default: %d", got)
	}
	if got := GetResearch("Nope", 0); got != 0 {
		t.Fatalf("research default: %d", got)
	}
	if got := GetPyro("Nope", 0); got != catalogs.PyroNull {
		t.Fatalf("pyro default: %d", got)
	}
	if got := GetCamera("Nope", 0); got != catalogs.CameraNull {
		t.Fatalf("camera default: %d", got)
	}
	if got := GetDrive("Nope", 0); got != catalogs.DriveOther {
		t.Fatalf("drive default: %d", got)
	}
	if got := GetTool("Nope", 0); got != catalogs.ToolOther {
		t.Fatalf("tool default: %d", got)
	}
}

func TestEncoderFallbacks(t *testing.T) {
	if got := CameraName(catalogs.CameraFree); got != "BACK" {
		t.Fatalf("camera fallback %q", got)
	}
	if got := CameraName(catalogs.CameraPlane); got != "PLANE" {
		t.Fatalf("plane camera %q", got)
	}
	if got := DriveName(catalogs.DriveOther); got != "Other" {
		t.Fatalf("drive fallback %q", got)
	}
	if got := ToolName(catalogs.ToolType(99)); got != "Other" {
		t.Fatalf("tool fallback %q", got)
	}
	if got := ObjectName(catalogs.ObjectType(-5)); got != "" {
		t.Fatalf("object fallback %q", got)
	}
	if got := PyroName(catalogs.PyroNull); got != "" {
		t.Fatalf("pyro fallback %q", got)
	}
}
