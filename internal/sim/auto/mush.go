package auto

// MushPhase is the state of a mushroom.
type MushPhase int

const (
	MushWait  MushPhase = 1
	MushSnif  MushPhase = 2 // target spotted
	MushZoom  MushPhase = 3
	MushFire  MushPhase = 4 // spores released
	MushSmoke MushPhase = 5
)

func (p MushPhase) String() string {
	switch p {
	case MushWait:
		return "wait"
	case MushSnif:
		return "snif"
	case MushZoom:
		return "zoom"
	case MushFire:
		return "fire"
	case MushSmoke:
		return "smoke"
	}
	return "unknown"
}

// Phase durations in seconds.
const (
	MushWaitTime  = 4.0
	MushSnifTime  = 1.25
	MushZoomTime  = 1.0
	MushFireTime  = 3.0
	MushSmokeTime = 4.0
)

// Mush is the poisonous mushroom: it waits, and when a target is in range
// it sniffs, swells, fires spores and smokes before waiting again.
type Mush struct {
	// Target reports whether a victim is in range. Nil means never.
	Target func() bool
	// Fire is called once when spores are released.
	Fire func()

	st state
}

func NewMush(target func() bool) *Mush {
	m := &Mush{Target: target}
	m.Init()
	return m
}

func (m *Mush) Init() {
	m.st.enter(int(MushWait), MushWaitTime)
}

func (m *Mush) Phase() MushPhase  { return MushPhase(m.st.phase) }
func (m *Mush) Progress() float64 { return m.st.progress }
func (m *Mush) Speed() float64    { return m.st.speed }
func (m *Mush) hasTarget() bool   { return m.Target != nil && m.Target() }

// Step advances the mushroom by dt seconds and returns the current phase.
func (m *Mush) Step(dt float64) MushPhase {
	if !m.st.advance(dt) {
		return m.Phase()
	}
	switch m.Phase() {
	case MushWait:
		if m.hasTarget() {
			m.st.enter(int(MushSnif), MushSnifTime)
		} else {
			m.st.enter(int(MushWait), MushWaitTime)
		}
	case MushSnif:
		m.st.enter(int(MushZoom), MushZoomTime)
	case MushZoom:
		m.st.enter(int(MushFire), MushFireTime)
		if m.Fire != nil {
			m.Fire()
		}
	case MushFire:
		m.st.enter(int(MushSmoke), MushSmokeTime)
	default:
		m.st.enter(int(MushWait), MushWaitTime)
	}
	return m.Phase()
}

// Write returns the operators to append to the object's line, or "" while
// waiting since there is nothing worth saving then.
func (m *Mush) Write() string {
	if m.Phase() == MushWait {
		return ""
	}
	return m.st.write()
}

// Read restores a state saved by Write. Unknown phases restart the cycle.
func (m *Mush) Read(line string) bool {
	if !m.st.read(line, int(MushWait)) {
		return false
	}
	if p := m.Phase(); p < MushWait || p > MushSmoke {
		m.Init()
	}
	return true
}
