package level

import (
	"colobot.info/gold/internal/sim/auto"
	"colobot.info/gold/internal/sim/catalogs"
	"colobot.info/gold/internal/sim/geom"
)

// Scene is the decoded content of a level file.
type Scene struct {
	Title   string               `json:"title,omitempty"`
	Resume  string               `json:"resume,omitempty"`
	Camera  *Camera              `json:"camera,omitempty"`
	Water   *Water               `json:"water,omitempty"`
	Terrain catalogs.TerrainType `json:"terrain,omitempty"`

	Builds       catalogs.BuildFlag    `json:"builds,omitempty"`
	Research     catalogs.ResearchFlag `json:"research,omitempty"`
	DoneResearch catalogs.ResearchFlag `json:"done_research,omitempty"`

	Objects []Object `json:"objects,omitempty"`

	// Extra keeps directives this package does not interpret, in file order.
	Extra []Directive `json:"extra,omitempty"`
}

type Camera struct {
	Eye    geom.Vec3           `json:"eye"`
	LookAt geom.Vec3           `json:"lookat"`
	Type   catalogs.CameraType `json:"type"`
}

type Water struct {
	Air   catalogs.WaterType `json:"air"`
	Water catalogs.WaterType `json:"water"`
	Level float64            `json:"level"`
	Color geom.Color         `json:"color"`
}

// Object is one CreateObject directive.
type Object struct {
	Type   catalogs.ObjectType `json:"type"`
	Pos    geom.Vec3           `json:"pos"` // ground plane, Y unused
	Height float64             `json:"h,omitempty"`
	Dir    float64             `json:"dir,omitempty"`
	Power  float64             `json:"power"`
	Drive  catalogs.DriveType  `json:"drive,omitempty"`
	Tool   catalogs.ToolType   `json:"tool,omitempty"`
	Camera catalogs.CameraType `json:"camera,omitempty"`
	Pyro   catalogs.PyroType   `json:"pyro,omitempty"`
	Color  geom.Color          `json:"color"`
	ID     int                 `json:"id,omitempty"`
	Name   string              `json:"name,omitempty"`
	// Auto is the automaton state of a saved game, nil in a mission file.
	Auto *auto.Saved `json:"auto,omitempty"`
}

// DefaultPower is the power level of an object without a power operator.
const DefaultPower = 1.0

type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// Diagnostic reports something the lenient decoder accepted silently or a
// directive that was not understood.
type Diagnostic struct {
	Line     int      `json:"line"`
	Cmd      string   `json:"cmd"`
	Op       string   `json:"op,omitempty"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}
