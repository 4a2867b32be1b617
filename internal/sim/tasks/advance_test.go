package tasks

import (
	"testing"

	"github.com/cockroachdb/errors"

	"colobot.info/gold/internal/sim/geom"
)

func TestAdvanceReachesGoal(t *testing.T) {
	a := NewAdvance(5, 2)
	a.Start(10, geom.Vec3{X: 1, Z: 1})
	var task Task = a
	if task.Kind() != KindAdvance {
		t.Fatalf("kind %s", task.Kind())
	}

	pos := geom.Vec3{X: 1, Z: 1}
	steps := 0
	for a.IsEnded() == nil {
		m := a.Motor()
		if m <= 0 || m > 1 {
			t.Fatalf("motor %v", m)
		}
		pos.X += 5 * 0.1 * m
		a.Step(0.1, pos)
		steps++
		if steps > 1000 {
			t.Fatalf("advance never ended")
		}
	}
	if err := a.IsEnded(); !errors.Is(err, ErrStop) || Failed(err) {
		t.Fatalf("IsEnded=%v", err)
	}
	if a.Remaining() != 0 || a.Motor() != 0 {
		t.Fatalf("remaining %v motor %v", a.Remaining(), a.Motor())
	}
}

func TestAdvanceBackwards(t *testing.T) {
	a := NewAdvance(5, 0)
	a.Start(-3, geom.Vec3{})
	if a.Motor() != -1 {
		t.Fatalf("motor %v", a.Motor())
	}
	a.Step(0.5, geom.Vec3{X: -2})
	if a.IsEnded() != nil {
		t.Fatalf("ended early")
	}
	a.Step(0.5, geom.Vec3{X: -3.5})
	if !errors.Is(a.IsEnded(), ErrStop) {
		t.Fatalf("IsEnded=%v", a.IsEnded())
	}
}

func TestAdvanceStuck(t *testing.T) {
	a := NewAdvance(1, 0)
	a.Start(100, geom.Vec3{})
	a.Step(0.5, geom.Vec3{X: 1})
	for i := 0; i < 7; i++ {
		a.Step(0.5, geom.Vec3{X: 1})
	}
	err := a.IsEnded()
	if !errors.Is(err, ErrStuck) || !Failed(err) {
		t.Fatalf("IsEnded=%v", err)
	}
}

func TestAdvanceTimeout(t *testing.T) {
	a := NewAdvance(10, 0)
	a.Start(1, geom.Vec3{})
	// Creeping forward keeps the stall timer at zero until the limit runs out.
	x := 0.0
	for i := 0; i < 30; i++ {
		x += 0.001
		a.Step(0.1, geom.Vec3{X: x})
	}
	if err := a.IsEnded(); !errors.Is(err, ErrTimeout) {
		t.Fatalf("IsEnded=%v", err)
	}
}

func TestAdvanceNotStarted(t *testing.T) {
	a := NewAdvance(1, 0)
	a.Step(1, geom.Vec3{X: 5})
	if !errors.Is(a.IsEnded(), ErrStop) || a.Motor() != 0 {
		t.Fatalf("idle task should be ended")
	}
}
