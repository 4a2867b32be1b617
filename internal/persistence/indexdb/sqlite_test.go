package indexdb

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"colobot.info/gold/internal/level"
	"colobot.info/gold/internal/sim/catalogs"
	"colobot.info/gold/internal/sim/geom"
)

func sampleRow(path string) LevelRow {
	s := &level.Scene{
		Title: "Landing",
		Objects: []level.Object{
			{Type: catalogs.ObjectHuman, Pos: geom.Vec3{X: 1, Z: 2}, Power: 1},
			{Type: catalogs.ObjectMobileWA, Pos: geom.Vec3{X: -3, Z: 4.5}, Power: 0.5, ID: 7, Name: "scout"},
		},
	}
	diags := []level.Diagnostic{
		{Line: 4, Cmd: "CreateObject", Severity: level.SeverityWarn},
		{Line: 9, Cmd: "Bogus", Severity: level.SeverityInfo},
	}
	return RowFromScene(path, "abc123", s, diags, catalogs.Default())
}

func TestRowFromScene(t *testing.T) {
	r := sampleRow("scene.txt")
	if r.Warnings != 1 || r.Infos != 1 || r.Errors != 0 {
		t.Fatalf("counts: %+v", r)
	}
	want := []ObjectRow{
		{Type: "Me", X: 1, Z: 2, Power: 1},
		{Type: "WheeledGrabber", X: -3, Z: 4.5, Power: 0.5, ID: 7, Name: "scout"},
	}
	if diff := cmp.Diff(want, r.Objects); diff != "" {
		t.Fatalf("objects (-want +got):\n%s", diff)
	}
}

func TestSQLiteIndex_RecordLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.sqlite")
	idx, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := idx.UpsertCatalogs(catalogs.Default()); err != nil {
		t.Fatalf("catalogs: %v", err)
	}
	idx.RecordLevel(sampleRow("a.txt"))
	// Re-recording replaces the previous object rows.
	r := sampleRow("a.txt")
	r.Objects = r.Objects[:1]
	idx.RecordLevel(r)
	idx.RecordLevel(sampleRow("b.txt"))
	idx.RecordLevel(LevelRow{})
	if err := idx.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	// Recording after close is a no-op.
	idx.RecordLevel(sampleRow("c.txt"))

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	var version string
	if err := db.QueryRow(`SELECT value FROM meta WHERE key='schema_version'`).Scan(&version); err != nil {
		t.Fatalf("meta: %v", err)
	}
	if version != SchemaVersion {
		t.Fatalf("schema_version=%q", version)
	}

	var ncat int
	if err := db.QueryRow(`SELECT COUNT(*) FROM catalogs`).Scan(&ncat); err != nil {
		t.Fatalf("catalogs: %v", err)
	}
	if ncat != len(catalogs.Domains()) {
		t.Fatalf("catalog rows=%d", ncat)
	}
	var digest string
	if err := db.QueryRow(`SELECT digest FROM catalogs WHERE name='object'`).Scan(&digest); err != nil {
		t.Fatalf("object catalog: %v", err)
	}
	if digest != catalogs.Default().Objects.Digest() {
		t.Fatalf("digest mismatch")
	}

	var nlevels int
	if err := db.QueryRow(`SELECT COUNT(*) FROM levels`).Scan(&nlevels); err != nil {
		t.Fatalf("levels: %v", err)
	}
	if nlevels != 2 {
		t.Fatalf("levels=%d want 2", nlevels)
	}

	var objects, warnings int
	if err := db.QueryRow(`SELECT objects, warnings FROM levels WHERE path='a.txt'`).Scan(&objects, &warnings); err != nil {
		t.Fatalf("level a: %v", err)
	}
	if objects != 1 || warnings != 1 {
		t.Fatalf("level a: objects=%d warnings=%d", objects, warnings)
	}

	var nobj int
	if err := db.QueryRow(`SELECT COUNT(*) FROM level_objects WHERE path='a.txt'`).Scan(&nobj); err != nil {
		t.Fatalf("objects a: %v", err)
	}
	if nobj != 1 {
		t.Fatalf("objects for a.txt=%d want 1", nobj)
	}

	var name string
	if err := db.QueryRow(`SELECT name FROM level_objects WHERE path='b.txt' AND type='WheeledGrabber'`).Scan(&name); err != nil {
		t.Fatalf("objects b: %v", err)
	}
	if name != "scout" {
		t.Fatalf("name=%q", name)
	}
}

func TestSQLiteIndex_QueueDropStats(t *testing.T) {
	s := &SQLiteIndex{ch: make(chan req, 1)}
	s.ch <- req{kind: reqLevel, level: LevelRow{Path: "x"}}

	if s.RecordLevel(LevelRow{Path: "y"}) {
		t.Fatalf("RecordLevel accepted a row on a full queue")
	}
	s.RecordLevel(LevelRow{Path: "z"})

	st := s.Stats()
	if st.DropLevelTotal != 2 {
		t.Fatalf("DropLevelTotal=%d want=2", st.DropLevelTotal)
	}
	if st.QueueDepth != 1 || st.QueueCapacity != 1 {
		t.Fatalf("queue stats mismatch: depth=%d cap=%d", st.QueueDepth, st.QueueCapacity)
	}
}

func TestOpenSQLiteEmptyPath(t *testing.T) {
	if _, err := OpenSQLite(""); err == nil {
		t.Fatalf("expected error")
	}
}
