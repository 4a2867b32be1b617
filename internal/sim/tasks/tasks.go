// Package tasks holds the multi step actions objects perform over several
// simulation steps.
package tasks

import (
	"github.com/cockroachdb/errors"

	"colobot.info/gold/internal/sim/geom"
)

type Kind string

const (
	KindAdvance Kind = "ADVANCE"
)

// Task is driven by the object that runs it: Step once per simulation step,
// then IsEnded to learn whether to keep going.
type Task interface {
	Kind() Kind
	Step(dt float64, pos geom.Vec3)
	// IsEnded returns nil while the task runs, ErrStop when it completed
	// and another error when it failed.
	IsEnded() error
}

var (
	ErrStop    = errors.New("task completed")
	ErrTimeout = errors.New("task timed out")
	ErrStuck   = errors.New("object stuck")
)

// Failed reports whether err ends a task unsuccessfully.
func Failed(err error) bool {
	return err != nil && !errors.Is(err, ErrStop)
}
