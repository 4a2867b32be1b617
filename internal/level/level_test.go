package level

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"colobot.info/gold/internal/script/cmdtoken"
	"colobot.info/gold/internal/sim/auto"
	"colobot.info/gold/internal/sim/catalogs"
	"colobot.info/gold/internal/sim/geom"
)

const sample = "Title text=\"Training\"   // shown in the menu\n" +
	"\n" +
	"// full line comment\n" +
	"Resume\ttext=\"Collect \"\"titanium\"\"\"\n" +
	"Camera eye=0;50;-20 lookat=0;0;0 type=BACK\n" +
	"TerrainWater air=TT water=CO level=12.5\n" +
	"WaterColor color=0.1;0.2;0.3;1\n" +
	"TerrainType type=Quartz\n" +
	"EnableBuild type=BotFactory\n" +
	"EnableBuild type=FuelCellPlant\n" +
	"EnableResearch type=TRACKER\n" +
	"DoneResearch type=iGUN\n" +
	"CreateObject type=WingedGrabber pos=10;-4.5 dir=0.5 power=0.75 drive=Winged tool=Grabber\r\n" +
	"CreateObject type=PlatinumOre pos=1;2\n" +
	"MissionFile version=2\n"

func TestReadStripsComments(t *testing.T) {
	dirs, err := Read(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(dirs) != 13 {
		t.Fatalf("directives=%d", len(dirs))
	}
	if dirs[0].Text != `Title text="Training"` || dirs[0].Line != 1 || dirs[0].Cmd != "Title" {
		t.Fatalf("first directive %+v", dirs[0])
	}
	if dirs[1].Line != 4 || dirs[1].Text != `Resume text="Collect ""titanium"""` {
		t.Fatalf("tab not replaced: %+v", dirs[1])
	}
	if got := dirs[10].Text; strings.HasSuffix(got, "\r") {
		t.Fatalf("carriage return kept: %q", got)
	}
}

func TestReadLongLine(t *testing.T) {
	long := "Title text=\"" + strings.Repeat("a", MaxLineBytes) + "\"\n"
	if _, err := Read(strings.NewReader(long)); err == nil {
		t.Fatalf("expected error for oversized line")
	}
}

func TestDecodeSample(t *testing.T) {
	dirs, err := Read(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	s, diags := Decode(dirs, cmdtoken.Decoder{})
	want := &Scene{
		Title:  "Training",
		Resume: `Collect "titanium"`,
		Camera: &Camera{
			Eye:  geom.Vec3{X: 0, Y: 50, Z: -20},
			Type: catalogs.CameraBack,
		},
		Water: &Water{
			Air:   catalogs.WaterTT,
			Water: catalogs.WaterCO,
			Level: 12.5,
			Color: geom.Color{R: 0.1, G: 0.2, B: 0.3, A: 1},
		},
		Terrain:      catalogs.TerrainQuartz,
		Builds:       catalogs.BuildFactory | catalogs.BuildNuclear,
		Research:     catalogs.ResearchTank,
		DoneResearch: catalogs.ResearchIGun,
		Objects: []Object{
			{
				Type:  catalogs.ObjectMobileFA,
				Pos:   geom.Vec3{X: 10, Z: -4.5},
				Dir:   0.5,
				Power: 0.75,
				Drive: catalogs.DriveWinged,
				Tool:  catalogs.ToolGrabber,
			},
			{Type: catalogs.ObjectUranium, Pos: geom.Vec3{X: 1, Z: 2}, Power: DefaultPower},
		},
		Extra: []Directive{{Line: 15, Cmd: "MissionFile", Text: "MissionFile version=2"}},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Fatalf("scene mismatch (-want +got):\n%s", diff)
	}
	if len(diags) != 1 || diags[0].Severity != SeverityInfo || diags[0].Line != 15 {
		t.Fatalf("diags=%+v", diags)
	}
}

func TestDecodeStrictDiagnostics(t *testing.T) {
	src := "CreateObject type=Rover pos=1;x power=full\n" +
		"Title name=\"x\"\n" +
		"EnableBuild type=BotFactory\n"
	dirs, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	_, lenient := Decode(dirs, cmdtoken.Decoder{})
	if len(lenient) != 0 {
		t.Fatalf("lenient diagnostics: %+v", lenient)
	}

	s, diags := Decode(dirs, cmdtoken.Decoder{Policy: cmdtoken.Strict})
	byOp := map[string]Diagnostic{}
	for _, d := range diags {
		byOp[d.Cmd+"."+d.Op] = d
	}
	for _, key := range []string{"CreateObject.type", "CreateObject.pos", "CreateObject.power", "Title.text"} {
		if _, ok := byOp[key]; !ok {
			t.Fatalf("missing diagnostic %s in %+v", key, diags)
		}
	}
	if byOp["Title.text"].Severity != SeverityError {
		t.Fatalf("missing required operator should be an error: %+v", byOp["Title.text"])
	}
	if c := Counts(diags); c[SeverityWarn] != 3 || c[SeverityError] != 1 {
		t.Fatalf("counts=%v", c)
	}
	// Strict decoding yields the same scene values.
	if s.Objects[0].Power != 0 || s.Objects[0].Pos.X != 1 || s.Builds != catalogs.BuildFactory {
		t.Fatalf("strict scene %+v", s)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	in := &Scene{
		Title:  `Say "hi"`,
		Resume: "Build a base; then explore",
		Camera: &Camera{Eye: geom.Vec3{X: 1.25, Y: 2, Z: -3}, LookAt: geom.Vec3{Z: 9}, Type: catalogs.CameraPlane},
		Water: &Water{
			Air:   catalogs.WaterNull,
			Water: catalogs.WaterCT,
			Level: -0.125,
		},
		Terrain:      catalogs.TerrainMetal,
		Builds:       catalogs.BuildRadar | catalogs.BuildGFlat | catalogs.BuildFlagMarker,
		Research:     catalogs.ResearchFly | catalogs.ResearchSniffer,
		DoneResearch: catalogs.ResearchFly,
		Objects: []Object{
			{
				Type:   catalogs.ObjectMobileTS,
				Pos:    geom.Vec3{X: 0.1, Z: 1e-3},
				Height: 3,
				Dir:    1.333,
				Power:  0.5,
				Drive:  catalogs.DriveTracked,
				Tool:   catalogs.ToolSniffer,
				Camera: catalogs.CameraOnboard,
				Pyro:   catalogs.PyroFragO,
				Color:  geom.Color{R: 1, G: 0.5, A: 1},
				ID:     42,
				Name:   `Sniffy "S"`,
			},
			{Type: catalogs.ObjectHuman, Pos: geom.Vec3{X: -7, Z: 8}, Power: DefaultPower},
			{
				Type:  catalogs.ObjectResearch,
				Pos:   geom.Vec3{X: 3, Z: 3},
				Power: DefaultPower,
				Auto:  &auto.Saved{Phase: 2, Progress: 0.4, Speed: 1.0 / 30, Research: catalogs.ResearchSniffer},
			},
			{Type: catalogs.ObjectMushroom2, Pos: geom.Vec3{X: 5}, Power: DefaultPower, Auto: &auto.Saved{Phase: 4, Progress: 0.5, Speed: 1.0 / 3}},
		},
		Extra: []Directive{{Cmd: "Audio", Text: "Audio music=2"}},
	}
	var buf bytes.Buffer
	if err := Encode(&buf, in); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	dirs, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	out, diags := Decode(dirs, cmdtoken.Decoder{Policy: cmdtoken.Strict})
	for _, d := range diags {
		if d.Severity != SeverityInfo {
			t.Fatalf("unexpected diagnostic %+v", d)
		}
	}
	if diff := cmp.Diff(in, out, cmpopts.IgnoreFields(Directive{}, "Line")); diff != "" {
		t.Fatalf("round trip mismatch (-in +out):\n%s", diff)
	}
}

func TestEncodeNameCannotSupplyOperators(t *testing.T) {
	in := &Scene{Objects: []Object{
		{Type: catalogs.ObjectMobileFA, Power: 1, Name: "x id=5 h=3 color=1;1;1;1"},
	}}
	lines, err := Lines(in)
	if err != nil {
		t.Fatalf("Lines: %v", err)
	}
	want := `CreateObject type=WingedGrabber pos=0;0 power=1 h=0 color=0;0;0;0 id=0 name="x id=5 h=3 color=1;1;1;1"`
	if diff := cmp.Diff([]string{want}, lines); diff != "" {
		t.Fatalf("lines (-want +got):\n%s", diff)
	}
	dirs, err := Read(strings.NewReader(lines[0]))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	out, _ := Decode(dirs, cmdtoken.Decoder{})
	if diff := cmp.Diff(in.Objects, out.Objects); diff != "" {
		t.Fatalf("round trip mismatch (-in +out):\n%s", diff)
	}

	// A default without a spelling cannot be written out.
	bad := &Scene{Objects: []Object{{Type: catalogs.ObjectMobileFA, Name: "a drive=Winged"}}}
	if _, err := Lines(bad); err == nil {
		t.Fatalf("expected error for a name carrying drive=")
	}
}

func TestEncodeRejectsUnrepresentableText(t *testing.T) {
	for _, title := range []string{"a\nb", "see http://x", "tab\there"} {
		if err := Encode(&bytes.Buffer{}, &Scene{Title: title}); err == nil {
			t.Fatalf("%q: expected error", title)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.txt")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, _, err := LoadFile(path, cmdtoken.Decoder{})
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(s.Objects) != 2 {
		t.Fatalf("objects=%d", len(s.Objects))
	}
	if _, _, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"), cmdtoken.Decoder{}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
