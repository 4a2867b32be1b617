package catalogs

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
)

// Entry binds one textual name to a code. Several entries may share a code;
// exactly one of them should be canonical (Alias false) if the code is ever
// written back out.
type Entry[C comparable] struct {
	Name  string `json:"name"`
	Code  C      `json:"code"`
	Alias bool   `json:"alias,omitempty"`
}

// Catalog is an ordered, immutable name<->code table for one domain.
type Catalog[C comparable] struct {
	domain   string
	fallback string
	entries  []Entry[C]
	digest   string
}

func newCatalog[C comparable](domain, fallback string, entries []Entry[C]) *Catalog[C] {
	c := &Catalog[C]{
		domain:   domain,
		fallback: fallback,
		entries:  entries,
	}
	b, _ := json.Marshal(entries)
	c.digest = sha256Hex(b)
	return c
}

func (c *Catalog[C]) Domain() string { return c.domain }
func (c *Catalog[C]) Len() int       { return len(c.entries) }
func (c *Catalog[C]) Digest() string { return c.digest }

// Lookup returns the code of the first entry whose name satisfies match.
// Entries are tried in declaration order.
func (c *Catalog[C]) Lookup(match func(name string) bool) (C, bool) {
	for _, e := range c.entries {
		if match(e.Name) {
			return e.Code, true
		}
	}
	var zero C
	return zero, false
}

// Code is the exact-name lookup used by configuration files.
func (c *Catalog[C]) Code(name string) (C, bool) {
	return c.Lookup(func(n string) bool { return n == name })
}

// Name returns the canonical name of code, or the catalog's fallback name
// when no canonical entry carries it.
func (c *Catalog[C]) Name(code C) string {
	for _, e := range c.entries {
		if !e.Alias && e.Code == code {
			return e.Name
		}
	}
	return c.fallback
}

// Entries returns a copy of the table in declaration order.
func (c *Catalog[C]) Entries() []Entry[C] {
	out := make([]Entry[C], len(c.entries))
	copy(out, c.entries)
	return out
}

// Codes returns every code that has a canonical name, in table order.
func (c *Catalog[C]) Codes() []C {
	seen := make(map[C]struct{}, len(c.entries))
	var out []C
	for _, e := range c.entries {
		if e.Alias {
			continue
		}
		if _, ok := seen[e.Code]; ok {
			continue
		}
		seen[e.Code] = struct{}{}
		out = append(out, e.Code)
	}
	return out
}

func (c *Catalog[C]) withAliases(extra []Entry[C]) *Catalog[C] {
	if len(extra) == 0 {
		return c
	}
	entries := make([]Entry[C], 0, len(c.entries)+len(extra))
	entries = append(entries, c.entries...)
	entries = append(entries, extra...)
	return newCatalog(c.domain, c.fallback, entries)
}

// Set bundles one catalog per domain.
type Set struct {
	Objects  *Catalog[ObjectType]
	Water    *Catalog[WaterType]
	Terrain  *Catalog[TerrainType]
	Builds   *Catalog[BuildFlag]
	Research *Catalog[ResearchFlag]
	Pyro     *Catalog[PyroType]
	Cameras  *Catalog[CameraType]
	Drives   *Catalog[DriveType]
	Tools    *Catalog[ToolType]
}

// Domain names, as used in digests and alias files.
const (
	DomainObject   = "object"
	DomainWater    = "water"
	DomainTerrain  = "terrain"
	DomainBuild    = "build"
	DomainResearch = "research"
	DomainPyro     = "pyro"
	DomainCamera   = "camera"
	DomainDrive    = "drive"
	DomainTool     = "tool"
)

var builtin = &Set{
	Objects:  newCatalog(DomainObject, "", objectEntries),
	Water:    newCatalog(DomainWater, "", waterEntries),
	Terrain:  newCatalog(DomainTerrain, "", terrainEntries),
	Builds:   newCatalog(DomainBuild, "", buildEntries),
	Research: newCatalog(DomainResearch, "", researchEntries),
	Pyro:     newCatalog(DomainPyro, "", pyroEntries),
	Cameras:  newCatalog(DomainCamera, "BACK", cameraEntries),
	Drives:   newCatalog(DomainDrive, "Other", driveEntries),
	Tools:    newCatalog(DomainTool, "Other", toolEntries),
}

// Default returns the built-in catalogs. The returned set is shared and must
// not be modified.
func Default() *Set { return builtin }

// Digests returns the sha256 of every catalog keyed by domain name.
func (s *Set) Digests() map[string]string {
	return map[string]string{
		DomainObject:   s.Objects.Digest(),
		DomainWater:    s.Water.Digest(),
		DomainTerrain:  s.Terrain.Digest(),
		DomainBuild:    s.Builds.Digest(),
		DomainResearch: s.Research.Digest(),
		DomainPyro:     s.Pyro.Digest(),
		DomainCamera:   s.Cameras.Digest(),
		DomainDrive:    s.Drives.Digest(),
		DomainTool:     s.Tools.Digest(),
	}
}

// Domains lists the domain names in a stable order.
func Domains() []string {
	d := []string{
		DomainObject, DomainWater, DomainTerrain, DomainBuild, DomainResearch,
		DomainPyro, DomainCamera, DomainDrive, DomainTool,
	}
	sort.Strings(d)
	return d
}

// Names returns the names of one domain's entries in table order, aliases
// included.
func (s *Set) Names(domain string) ([]string, bool) {
	var out []string
	collect := func(name string) bool {
		out = append(out, name)
		return false
	}
	switch domain {
	case DomainObject:
		s.Objects.Lookup(collect)
	case DomainWater:
		s.Water.Lookup(collect)
	case DomainTerrain:
		s.Terrain.Lookup(collect)
	case DomainBuild:
		s.Builds.Lookup(collect)
	case DomainResearch:
		s.Research.Lookup(collect)
	case DomainPyro:
		s.Pyro.Lookup(collect)
	case DomainCamera:
		s.Cameras.Lookup(collect)
	case DomainDrive:
		s.Drives.Lookup(collect)
	case DomainTool:
		s.Tools.Lookup(collect)
	default:
		return nil, false
	}
	return out, true
}

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
