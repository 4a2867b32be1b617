package indexdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	_ "modernc.org/sqlite"

	"colobot.info/gold/internal/level"
	"colobot.info/gold/internal/logging"
	"colobot.info/gold/internal/sim/catalogs"
)

// SchemaVersion is stored in the meta table.
const SchemaVersion = "1"

type SQLiteIndex struct {
	db *sql.DB

	ch   chan req
	wg   sync.WaitGroup
	once sync.Once

	closed atomic.Bool

	dropLevelTotal atomic.Uint64
	failTotal      atomic.Uint64
}

type reqKind int

const (
	reqLevel reqKind = iota + 1
)

type req struct {
	kind  reqKind
	level LevelRow
}

// LevelRow summarizes one decoded level file.
type LevelRow struct {
	Path      string
	Digest    string
	Title     string
	Infos     int
	Warnings  int
	Errors    int
	IndexedAt string
	Objects   []ObjectRow
}

type ObjectRow struct {
	Type  string
	X, Z  float64
	Power float64
	ID    int
	Name  string
}

// RowFromScene builds the index row for a decoded scene. Object types are
// stored by canonical name so rows stay readable when codes are renumbered.
func RowFromScene(path, digest string, s *level.Scene, diags []level.Diagnostic, cats *catalogs.Set) LevelRow {
	counts := level.Counts(diags)
	r := LevelRow{
		Path:      path,
		Digest:    digest,
		Title:     s.Title,
		Infos:     counts[level.SeverityInfo],
		Warnings:  counts[level.SeverityWarn],
		Errors:    counts[level.SeverityError],
		IndexedAt: time.Now().UTC().Format(time.RFC3339Nano),
		Objects:   make([]ObjectRow, 0, len(s.Objects)),
	}
	for _, o := range s.Objects {
		r.Objects = append(r.Objects, ObjectRow{
			Type:  cats.Objects.Name(o.Type),
			X:     o.Pos.X,
			Z:     o.Pos.Z,
			Power: o.Power,
			ID:    o.ID,
			Name:  o.Name,
		})
	}
	return r
}

type Stats struct {
	QueueDepth     int
	QueueCapacity  int
	DropLevelTotal uint64
	FailTotal      uint64
}

func OpenSQLite(path string) (*SQLiteIndex, error) {
	return openSQLite(path, 4096)
}

func openSQLite(path string, queue int) (*SQLiteIndex, error) {
	if path == "" {
		return nil, errors.New("indexdb: empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "indexdb")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "indexdb: open")
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &SQLiteIndex{
		db: db,
		ch: make(chan req, queue),
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.loop()
	}()
	return s, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return errors.Wrapf(err, "indexdb: %s", p)
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS catalogs (
			name TEXT PRIMARY KEY,
			digest TEXT NOT NULL,
			json TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS levels (
			path TEXT PRIMARY KEY,
			digest TEXT NOT NULL,
			title TEXT NOT NULL,
			objects INTEGER NOT NULL,
			infos INTEGER NOT NULL,
			warnings INTEGER NOT NULL,
			errors INTEGER NOT NULL,
			indexed_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS level_objects (
			path TEXT NOT NULL REFERENCES levels(path) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			type TEXT NOT NULL,
			x REAL NOT NULL,
			z REAL NOT NULL,
			power REAL NOT NULL,
			object_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			PRIMARY KEY (path, seq)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_level_objects_type ON level_objects(type);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return errors.Wrap(err, "indexdb: schema")
		}
	}
	return nil
}

func (s *SQLiteIndex) Close() error {
	var err error
	s.once.Do(func() {
		s.closed.Store(true)
		close(s.ch)
		s.wg.Wait()
		err = s.db.Close()
	})
	return err
}

// RecordLevel queues r for the writer goroutine and reports whether it was
// accepted. Rows are dropped when the queue is full; the level files remain
// the source of truth.
func (s *SQLiteIndex) RecordLevel(r LevelRow) bool {
	if s == nil || s.closed.Load() {
		return false
	}
	if r.Path == "" {
		return false
	}
	select {
	case s.ch <- req{kind: reqLevel, level: r}:
		return true
	default:
		s.dropLevelTotal.Add(1)
		return false
	}
}

func (s *SQLiteIndex) Stats() Stats {
	if s == nil {
		return Stats{}
	}
	return Stats{
		QueueDepth:     len(s.ch),
		QueueCapacity:  cap(s.ch),
		DropLevelTotal: s.dropLevelTotal.Load(),
		FailTotal:      s.failTotal.Load(),
	}
}

// UpsertCatalogs stores the name tables of every domain with their digests.
func (s *SQLiteIndex) UpsertCatalogs(set *catalogs.Set) error {
	if s == nil {
		return nil
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	digests := set.Digests()

	tx, err := s.db.BeginTx(context.Background(), nil)
	if err != nil {
		return errors.Wrap(err, "indexdb: catalogs")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`INSERT OR REPLACE INTO meta(key,value) VALUES('schema_version',?)`, SchemaVersion); err != nil {
		return errors.Wrap(err, "indexdb: meta")
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO catalogs(name,digest,json,updated_at) VALUES(?,?,?,?)`)
	if err != nil {
		return errors.Wrap(err, "indexdb: catalogs")
	}
	defer stmt.Close()
	for _, domain := range catalogs.Domains() {
		names, _ := set.Names(domain)
		b, err := json.Marshal(names)
		if err != nil {
			return errors.Wrapf(err, "indexdb: catalog %s", domain)
		}
		if _, err := stmt.Exec(domain, digests[domain], string(b), now); err != nil {
			return errors.Wrapf(err, "indexdb: catalog %s", domain)
		}
	}
	return errors.Wrap(tx.Commit(), "indexdb: catalogs")
}

func (s *SQLiteIndex) loop() {
	ctx := context.Background()
	log := logging.Component("indexdb")

	insertLevel, _ := s.db.Prepare(`INSERT OR REPLACE INTO levels(path,digest,title,objects,infos,warnings,errors,indexed_at) VALUES(?,?,?,?,?,?,?,?)`)
	deleteObjects, _ := s.db.Prepare(`DELETE FROM level_objects WHERE path = ?`)
	insertObject, _ := s.db.Prepare(`INSERT INTO level_objects(path,seq,type,x,z,power,object_id,name) VALUES(?,?,?,?,?,?,?,?)`)
	defer func() {
		for _, st := range []*sql.Stmt{insertLevel, deleteObjects, insertObject} {
			if st != nil {
				_ = st.Close()
			}
		}
	}()
	if insertLevel == nil || deleteObjects == nil || insertObject == nil {
		log.Errorw("prepare failed, index disabled")
		for range s.ch {
			s.failTotal.Add(1)
		}
		return
	}

	var (
		tx            *sql.Tx
		opCount       int
		lastCommit    = time.Now()
		commitEvery   = 500
		commitMaxWait = time.Second
	)

	begin := func() {
		if tx != nil {
			return
		}
		txx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			time.Sleep(50 * time.Millisecond)
			return
		}
		tx = txx
		opCount = 0
		lastCommit = time.Now()
	}
	commit := func() {
		if tx == nil {
			return
		}
		if err := tx.Commit(); err != nil {
			s.failTotal.Add(1)
			log.Warnw("commit failed", "error", err)
		}
		tx = nil
		opCount = 0
		lastCommit = time.Now()
	}
	rollback := func(err error) {
		s.failTotal.Add(1)
		log.Warnw("write failed", "error", err)
		if tx == nil {
			return
		}
		_ = tx.Rollback()
		tx = nil
		opCount = 0
		lastCommit = time.Now()
	}

	writeLevel := func(r LevelRow) error {
		if _, err := tx.Stmt(deleteObjects).Exec(r.Path); err != nil {
			return err
		}
		if _, err := tx.Stmt(insertLevel).Exec(
			r.Path,
			r.Digest,
			r.Title,
			len(r.Objects),
			r.Infos,
			r.Warnings,
			r.Errors,
			r.IndexedAt,
		); err != nil {
			return err
		}
		opCount++
		obj := tx.Stmt(insertObject)
		for i, o := range r.Objects {
			if _, err := obj.Exec(r.Path, i, o.Type, o.X, o.Z, o.Power, o.ID, o.Name); err != nil {
				return err
			}
			opCount++
		}
		return nil
	}

	for r := range s.ch {
		begin()
		if tx == nil {
			s.failTotal.Add(1)
			continue
		}
		switch r.kind {
		case reqLevel:
			if err := writeLevel(r.level); err != nil {
				rollback(errors.Wrapf(err, "level %s", r.level.Path))
				continue
			}
		}
		if opCount >= commitEvery || time.Since(lastCommit) >= commitMaxWait {
			commit()
		}
	}

	commit()
}
