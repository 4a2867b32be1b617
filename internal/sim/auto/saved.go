package auto

import (
	"fmt"
	"strconv"

	"colobot.info/gold/internal/sim/catalogs"
)

// Saved is the automaton state a saved game appends to a CreateObject line.
type Saved struct {
	Phase    int                   `json:"phase"`
	Progress float64               `json:"progress"`
	Speed    float64               `json:"speed"`
	Research catalogs.ResearchFlag `json:"research,omitempty"`
}

// ReadSaved restores the automaton of an object of type t from line. It
// returns nil for types without one and for lines without aExist=1.
func ReadSaved(t catalogs.ObjectType, line string) *Saved {
	switch t {
	case catalogs.ObjectMushroom2:
		var m Mush
		if !m.Read(line) {
			return nil
		}
		return &Saved{Phase: int(m.Phase()), Progress: m.st.progress, Speed: m.st.speed}
	case catalogs.ObjectResearch:
		var r Research
		if !r.Read(line) {
			return nil
		}
		return &Saved{Phase: int(r.Phase()), Progress: r.st.progress, Speed: r.st.speed, Research: r.research}
	}
	return nil
}

// Write renders s as the operators ReadSaved reads back, at full precision.
func (s Saved) Write() string {
	out := fmt.Sprintf(" aExist=1 aPhase=%d aProgress=%s aSpeed=%s", s.Phase, fnum(s.Progress), fnum(s.Speed))
	if s.Research != 0 {
		out += fmt.Sprintf(" aResearch=%d", int(s.Research))
	}
	return out
}

func fnum(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
