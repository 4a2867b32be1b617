package auto

import (
	"fmt"
	"sync"

	"github.com/cockroachdb/errors"

	"colobot.info/gold/internal/script/cmdtoken"
	"colobot.info/gold/internal/sim/catalogs"
)

// ResearchState is the mission wide set of enabled and completed research.
// All research centers of a mission share one.
type ResearchState struct {
	mu      sync.RWMutex
	enabled catalogs.ResearchFlag
	done    catalogs.ResearchFlag
}

// NewResearchState starts from the EnableResearch and DoneResearch sets of a
// level.
func NewResearchState(enabled, done catalogs.ResearchFlag) *ResearchState {
	return &ResearchState{enabled: enabled | done, done: done}
}

func (r *ResearchState) IsEnabled(f catalogs.ResearchFlag) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.enabled&f != 0
}

func (r *ResearchState) IsDone(f catalogs.ResearchFlag) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.done&f != 0
}

func (r *ResearchState) MarkDone(f catalogs.ResearchFlag) {
	r.mu.Lock()
	r.done |= f
	r.enabled |= f
	r.mu.Unlock()
}

func (r *ResearchState) Done() catalogs.ResearchFlag {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.done
}

type ResearchPhase int

const (
	ResearchWait   ResearchPhase = 1
	ResearchSearch ResearchPhase = 2 // research in progress
)

// DefaultResearchTime is the duration of a research in seconds.
const DefaultResearchTime = 30.0

var (
	ErrResearchUnknown  = errors.New("unknown research")
	ErrResearchDisabled = errors.New("research not available in this mission")
	ErrResearchDone     = errors.New("research already done")
	ErrResearchBusy     = errors.New("research center busy")
)

// Research is a research center.
type Research struct {
	State *ResearchState
	// Durations overrides DefaultResearchTime per research.
	Durations map[catalogs.ResearchFlag]float64

	st       state
	research catalogs.ResearchFlag
}

func NewResearch(s *ResearchState) *Research {
	r := &Research{State: s}
	r.Init()
	return r
}

func (r *Research) Init() {
	r.st.enter(int(ResearchWait), 1)
	r.research = 0
}

func (r *Research) Phase() ResearchPhase { return ResearchPhase(r.st.phase) }
func (r *Research) Progress() float64    { return r.st.progress }

// Current is the research in progress, 0 while waiting.
func (r *Research) Current() catalogs.ResearchFlag { return r.research }

// StartAction begins research f.
func (r *Research) StartAction(f catalogs.ResearchFlag) error {
	if r.Phase() != ResearchWait {
		return errors.Wrapf(ErrResearchBusy, "researching %s", cmdtoken.ResearchName(r.research))
	}
	name := cmdtoken.ResearchName(f)
	if name == "" {
		return errors.Wrapf(ErrResearchUnknown, "code %d", f)
	}
	if r.State.IsDone(f) {
		return errors.Wrap(ErrResearchDone, name)
	}
	if !r.State.IsEnabled(f) {
		return errors.Wrap(ErrResearchDisabled, name)
	}
	d := DefaultResearchTime
	if v, ok := r.Durations[f]; ok && v > 0 {
		d = v
	}
	r.research = f
	r.st.enter(int(ResearchSearch), d)
	return nil
}

// Step advances the research by dt seconds and returns the research that
// completed during this step, or 0.
func (r *Research) Step(dt float64) catalogs.ResearchFlag {
	if r.Phase() != ResearchSearch {
		return 0
	}
	if !r.st.advance(dt) {
		return 0
	}
	done := r.research
	r.State.MarkDone(done)
	r.Init()
	return done
}

func (r *Research) Write() string {
	if r.Phase() == ResearchWait {
		return ""
	}
	return r.st.write() + fmt.Sprintf(" aResearch=%d", int(r.research))
}

func (r *Research) Read(line string) bool {
	if !r.st.read(line, int(ResearchWait)) {
		return false
	}
	r.research = catalogs.ResearchFlag(cmdtoken.OpInt(line, "aResearch", 0))
	if p := r.Phase(); p != ResearchWait && p != ResearchSearch {
		r.Init()
	}
	return true
}
