package tasks

import (
	"math"

	"colobot.info/gold/internal/sim/geom"
)

const (
	// MinTimeLimit is the shortest time an advance is allowed.
	MinTimeLimit = 2.0
	// FixTimeLimit is how long an object may make no progress.
	FixTimeLimit = 3.0
)

// Advance moves an object straight ahead (or backwards for a negative
// length) until it has covered the requested distance on the ground.
type Advance struct {
	// Speed is the object's top linear speed, in units per second.
	Speed float64
	// Brake is the distance before the goal where the motor slows down.
	Brake float64

	totalLength float64
	direction   float64
	timeLimit   float64
	startPos    geom.Vec3
	lastDist    float64
	dist        float64
	fixTime     float64
	started     bool
	stuck       bool
}

func NewAdvance(speed, brake float64) *Advance {
	return &Advance{Speed: speed, Brake: brake}
}

func (a *Advance) Kind() Kind { return KindAdvance }

// Start begins a move of length from pos.
func (a *Advance) Start(length float64, pos geom.Vec3) {
	a.direction = 1
	if length < 0 {
		a.direction = -1
	}
	a.totalLength = math.Abs(length)
	a.startPos = pos
	a.lastDist = 0
	a.dist = 0
	a.fixTime = 0
	a.stuck = false
	a.started = true

	a.timeLimit = MinTimeLimit
	if a.Speed > 0 {
		a.timeLimit = math.Max(a.totalLength/a.Speed*3, MinTimeLimit)
	}
}

// Step records the object's new position after dt seconds.
func (a *Advance) Step(dt float64, pos geom.Vec3) {
	if !a.started {
		return
	}
	a.timeLimit -= dt
	a.dist = geom.DistXZ(a.startPos, pos)
	if a.dist > a.lastDist {
		a.lastDist = a.dist
		a.fixTime = 0
		return
	}
	a.fixTime += dt
	if a.fixTime > FixTimeLimit {
		a.stuck = true
	}
}

// Motor is the motor command for the next step: ±1, reduced near the goal,
// 0 once the task ended.
func (a *Advance) Motor() float64 {
	if !a.started || a.IsEnded() != nil {
		return 0
	}
	left := a.totalLength - a.dist
	if a.Brake > 0 && left < a.Brake {
		return a.direction * math.Max(left/a.Brake, 0.1)
	}
	return a.direction
}

// Remaining is the distance still to cover.
func (a *Advance) Remaining() float64 {
	return math.Max(a.totalLength-a.dist, 0)
}

func (a *Advance) IsEnded() error {
	if !a.started {
		return ErrStop
	}
	if a.dist >= a.totalLength {
		return ErrStop
	}
	if a.stuck {
		return ErrStuck
	}
	if a.timeLimit < 0 {
		return ErrTimeout
	}
	return nil
}
