package snapshot

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zstd"

	"colobot.info/gold/internal/level"
	"colobot.info/gold/internal/sim/auto"
	"colobot.info/gold/internal/sim/catalogs"
	"colobot.info/gold/internal/sim/geom"
)

// Version is the current snapshot format.
const Version = 1

// Header is written as a plain JSON line ahead of the gob payload so tools
// can identify a snapshot after decompressing only its first bytes.
type Header struct {
	Version int    `json:"version"`
	Source  string `json:"source"`
	Objects int    `json:"objects"`
	// ObjectDigest identifies the object catalog the codes below refer to.
	ObjectDigest string `json:"object_digest"`
}

type SceneV1 struct {
	Header Header `json:"header"`

	Title   string    `json:"title,omitempty"`
	Resume  string    `json:"resume,omitempty"`
	Camera  *CameraV1 `json:"camera,omitempty"`
	Water   *WaterV1  `json:"water,omitempty"`
	Terrain int       `json:"terrain,omitempty"`

	Builds       int `json:"builds,omitempty"`
	Research     int `json:"research,omitempty"`
	DoneResearch int `json:"done_research,omitempty"`

	Objects []ObjectV1    `json:"objects"`
	Extra   []DirectiveV1 `json:"extra,omitempty"`
}

type CameraV1 struct {
	Eye    [3]float64 `json:"eye"`
	LookAt [3]float64 `json:"lookat"`
	Type   int        `json:"type"`
}

type WaterV1 struct {
	Air   int        `json:"air"`
	Water int        `json:"water"`
	Level float64    `json:"level"`
	Color [4]float64 `json:"color"`
}

type ObjectV1 struct {
	Type   int        `json:"type"`
	Pos    [3]float64 `json:"pos"`
	Height float64    `json:"h,omitempty"`
	Dir    float64    `json:"dir,omitempty"`
	Power  float64    `json:"power"`
	Drive  int        `json:"drive,omitempty"`
	Tool   int        `json:"tool,omitempty"`
	Camera int        `json:"camera,omitempty"`
	Pyro   int        `json:"pyro,omitempty"`
	Color  [4]float64 `json:"color"`
	ID     int        `json:"id,omitempty"`
	Name   string     `json:"name,omitempty"`
	Auto   *AutoV1    `json:"auto,omitempty"`
}

type AutoV1 struct {
	Phase    int     `json:"phase"`
	Progress float64 `json:"progress"`
	Speed    float64 `json:"speed"`
	Research int     `json:"research,omitempty"`
}

type DirectiveV1 struct {
	Line int    `json:"line"`
	Cmd  string `json:"cmd"`
	Text string `json:"text"`
}

// FromScene flattens s. source is recorded in the header only.
func FromScene(source string, s *level.Scene, cats *catalogs.Set) SceneV1 {
	snap := SceneV1{
		Header: Header{
			Version:      Version,
			Source:       source,
			Objects:      len(s.Objects),
			ObjectDigest: cats.Objects.Digest(),
		},
		Title:        s.Title,
		Resume:       s.Resume,
		Terrain:      int(s.Terrain),
		Builds:       int(s.Builds),
		Research:     int(s.Research),
		DoneResearch: int(s.DoneResearch),
		Objects:      make([]ObjectV1, 0, len(s.Objects)),
	}
	if c := s.Camera; c != nil {
		snap.Camera = &CameraV1{Eye: vec(c.Eye), LookAt: vec(c.LookAt), Type: int(c.Type)}
	}
	if w := s.Water; w != nil {
		snap.Water = &WaterV1{Air: int(w.Air), Water: int(w.Water), Level: w.Level, Color: rgba(w.Color)}
	}
	for _, o := range s.Objects {
		var a *AutoV1
		if o.Auto != nil {
			a = &AutoV1{Phase: o.Auto.Phase, Progress: o.Auto.Progress, Speed: o.Auto.Speed, Research: int(o.Auto.Research)}
		}
		snap.Objects = append(snap.Objects, ObjectV1{
			Type:   int(o.Type),
			Pos:    vec(o.Pos),
			Height: o.Height,
			Dir:    o.Dir,
			Power:  o.Power,
			Drive:  int(o.Drive),
			Tool:   int(o.Tool),
			Camera: int(o.Camera),
			Pyro:   int(o.Pyro),
			Color:  rgba(o.Color),
			ID:     o.ID,
			Name:   o.Name,
			Auto:   a,
		})
	}
	for _, d := range s.Extra {
		snap.Extra = append(snap.Extra, DirectiveV1{Line: d.Line, Cmd: d.Cmd, Text: d.Text})
	}
	return snap
}

// Scene rebuilds the level scene stored in snap.
func (snap SceneV1) Scene() *level.Scene {
	s := &level.Scene{
		Title:        snap.Title,
		Resume:       snap.Resume,
		Terrain:      catalogs.TerrainType(snap.Terrain),
		Builds:       catalogs.BuildFlag(snap.Builds),
		Research:     catalogs.ResearchFlag(snap.Research),
		DoneResearch: catalogs.ResearchFlag(snap.DoneResearch),
	}
	if c := snap.Camera; c != nil {
		s.Camera = &level.Camera{Eye: toVec(c.Eye), LookAt: toVec(c.LookAt), Type: catalogs.CameraType(c.Type)}
	}
	if w := snap.Water; w != nil {
		s.Water = &level.Water{
			Air:   catalogs.WaterType(w.Air),
			Water: catalogs.WaterType(w.Water),
			Level: w.Level,
			Color: toColor(w.Color),
		}
	}
	for _, o := range snap.Objects {
		var a *auto.Saved
		if o.Auto != nil {
			a = &auto.Saved{Phase: o.Auto.Phase, Progress: o.Auto.Progress, Speed: o.Auto.Speed, Research: catalogs.ResearchFlag(o.Auto.Research)}
		}
		s.Objects = append(s.Objects, level.Object{
			Type:   catalogs.ObjectType(o.Type),
			Pos:    toVec(o.Pos),
			Height: o.Height,
			Dir:    o.Dir,
			Power:  o.Power,
			Drive:  catalogs.DriveType(o.Drive),
			Tool:   catalogs.ToolType(o.Tool),
			Camera: catalogs.CameraType(o.Camera),
			Pyro:   catalogs.PyroType(o.Pyro),
			Color:  toColor(o.Color),
			ID:     o.ID,
			Name:   o.Name,
			Auto:   a,
		})
	}
	for _, d := range snap.Extra {
		s.Extra = append(s.Extra, level.Directive{Line: d.Line, Cmd: d.Cmd, Text: d.Text})
	}
	return s
}

func vec(v geom.Vec3) [3]float64      { return [3]float64{v.X, v.Y, v.Z} }
func toVec(a [3]float64) geom.Vec3    { return geom.Vec3{X: a[0], Y: a[1], Z: a[2]} }
func rgba(c geom.Color) [4]float64    { return [4]float64{c.R, c.G, c.B, c.A} }
func toColor(a [4]float64) geom.Color { return geom.Color{R: a[0], G: a[1], B: a[2], A: a[3]} }

func WriteSnapshot(path string, snap SceneV1) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "snapshot")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrap(err, "snapshot")
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}

	bw := bufio.NewWriterSize(enc, 64*1024)
	hb, _ := json.Marshal(snap.Header)
	if _, err := bw.Write(hb); err != nil {
		_ = enc.Close()
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		_ = enc.Close()
		return err
	}
	if err := gob.NewEncoder(bw).Encode(&snap); err != nil {
		_ = enc.Close()
		return errors.Wrap(err, "gob encode")
	}
	if err := bw.Flush(); err != nil {
		_ = enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return f.Close()
}

// ReadHeader decodes only the leading JSON line.
func ReadHeader(path string) (Header, error) {
	var h Header
	f, err := os.Open(path)
	if err != nil {
		return h, errors.Wrap(err, "snapshot")
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return h, err
	}
	defer dec.Close()

	line, err := bufio.NewReader(dec).ReadBytes('\n')
	if err != nil {
		return h, errors.Wrap(err, "snapshot: header")
	}
	if err := json.Unmarshal(line, &h); err != nil {
		return h, errors.Wrap(err, "snapshot: header")
	}
	return h, nil
}

func ReadSnapshot(path string) (SceneV1, error) {
	var snap SceneV1
	f, err := os.Open(path)
	if err != nil {
		return snap, errors.Wrap(err, "snapshot")
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return snap, err
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 64*1024)

	// The gob payload repeats the header.
	if _, err := br.ReadBytes('\n'); err != nil {
		return snap, errors.Wrap(err, "snapshot: header")
	}
	if err := gob.NewDecoder(br).Decode(&snap); err != nil {
		return snap, errors.Wrap(err, "gob decode")
	}
	if snap.Header.Version != Version {
		return snap, errors.Newf("snapshot: unsupported version %d", snap.Header.Version)
	}
	return snap, nil
}
