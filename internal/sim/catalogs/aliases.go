package catalogs

import (
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// AliasFile is the on-disk overlay that adds names to the built-in catalogs.
//
//	aliases:
//	  - domain: object
//	    name: Grabber
//	    canonical: WingedGrabber
type AliasFile struct {
	Aliases []AliasDef `yaml:"aliases" json:"aliases"`
}

type AliasDef struct {
	Domain    string `yaml:"domain" json:"domain"`
	Name      string `yaml:"name" json:"name"`
	Canonical string `yaml:"canonical" json:"canonical"`
}

const aliasSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["aliases"],
  "additionalProperties": false,
  "properties": {
    "aliases": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["domain", "name", "canonical"],
        "additionalProperties": false,
        "properties": {
          "domain": {"enum": ["object", "water", "terrain", "build", "research", "pyro", "camera", "drive", "tool"]},
          "name": {"type": "string", "pattern": "^[^\\s;=\"]+$"},
          "canonical": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

var aliasSchema = jsonschema.MustCompileString("aliases.schema.json", aliasSchemaJSON)

// LoadAliases reads a YAML alias overlay and returns base extended with it.
// base itself is left untouched.
func LoadAliases(path string, base *Set) (*Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "aliases")
	}
	s, err := ParseAliases(raw, base)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return s, nil
}

func ParseAliases(raw []byte, base *Set) (*Set, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "aliases: decode yaml")
	}
	// The validator expects encoding/json value types.
	jb, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "aliases: normalize")
	}
	var jv any
	if err := json.Unmarshal(jb, &jv); err != nil {
		return nil, errors.Wrap(err, "aliases: normalize")
	}
	if err := aliasSchema.Validate(jv); err != nil {
		return nil, errors.WithHint(errors.Wrap(err, "aliases: invalid file"),
			"each alias needs domain, name and canonical")
	}

	var f AliasFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrap(err, "aliases: decode yaml")
	}
	return base.WithAliases(f.Aliases)
}

// WithAliases returns a copy of s where every def is appended to its
// domain's catalog. Built-in names keep precedence since aliases are
// appended after them.
func (s *Set) WithAliases(defs []AliasDef) (*Set, error) {
	out := *s
	for _, d := range defs {
		var err error
		switch d.Domain {
		case DomainObject:
			out.Objects, err = addAlias(out.Objects, d)
		case DomainWater:
			out.Water, err = addAlias(out.Water, d)
		case DomainTerrain:
			out.Terrain, err = addAlias(out.Terrain, d)
		case DomainBuild:
			out.Builds, err = addAlias(out.Builds, d)
		case DomainResearch:
			out.Research, err = addAlias(out.Research, d)
		case DomainPyro:
			out.Pyro, err = addAlias(out.Pyro, d)
		case DomainCamera:
			out.Cameras, err = addAlias(out.Cameras, d)
		case DomainDrive:
			out.Drives, err = addAlias(out.Drives, d)
		case DomainTool:
			out.Tools, err = addAlias(out.Tools, d)
		default:
			err = errors.Newf("aliases: unknown domain %q", d.Domain)
		}
		if err != nil {
			return nil, err
		}
	}
	return &out, nil
}

func addAlias[C comparable](cat *Catalog[C], d AliasDef) (*Catalog[C], error) {
	if _, exists := cat.Code(d.Name); exists {
		return nil, errors.WithHint(
			errors.Newf("aliases: %s name %q already defined", cat.domain, d.Name),
			"built-in names cannot be redefined")
	}
	code, ok := cat.Code(d.Canonical)
	if !ok {
		return nil, errors.Newf("aliases: %s has no name %q", cat.domain, d.Canonical)
	}
	return cat.withAliases([]Entry[C]{{Name: d.Name, Code: code, Alias: true}}), nil
}
