// Package auto implements the automated behaviors of a few buildings and
// creatures. Each one is a small phase machine advanced by Step and saved
// as operators appended to the object's CreateObject line.
package auto

import (
	"fmt"

	"colobot.info/gold/internal/script/cmdtoken"
)

// state is the part of the saved line shared by every automaton.
type state struct {
	phase    int
	progress float64
	speed    float64
}

func (s state) write() string {
	return fmt.Sprintf(" aExist=1 aPhase=%d aProgress=%.2f aSpeed=%.2f", s.phase, s.progress, s.speed)
}

// read fills s from line. It returns false when the line carries no saved
// automaton.
func (s *state) read(line string, defPhase int) bool {
	if cmdtoken.OpInt(line, "aExist", 0) == 0 {
		return false
	}
	s.phase = cmdtoken.OpInt(line, "aPhase", defPhase)
	s.progress = cmdtoken.OpFloat(line, "aProgress", 0)
	s.speed = cmdtoken.OpFloat(line, "aSpeed", 1)
	return true
}

// advance moves progress by dt and reports whether the phase completed.
func (s *state) advance(dt float64) bool {
	s.progress += dt * s.speed
	return s.progress >= 1
}

func (s *state) enter(phase int, duration float64) {
	s.phase = phase
	s.progress = 0
	s.speed = 1 / duration
}
