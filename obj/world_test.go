package obj

import (
	"testing"

	"github.com/jakecoffman/cp"
)

const maxSettleSteps = 1200

func newTestWorld() (*World, *stubInput, *MovementController) {
	w := NewWorld(testGravity, testTimeStep)
	w.AddGround(cp.Vector{X: -20, Y: 0}, cp.Vector{X: 20, Y: 0})
	in := &stubInput{}
	ctrl := w.AttachPlayer(DefaultCharacterConfig(), in, cp.Vector{X: 0, Y: 1}, 0.6, 1.2)
	return w, in, ctrl
}

func settle(t *testing.T, w *World, ctrl *MovementController) {
	t.Helper()
	for i := 0; i < maxSettleSteps; i++ {
		w.Step()
		if ctrl.Grounded() {
			return
		}
	}
	t.Fatalf("player never landed on the ground segment")
}

func TestWorldGroundContactRoundTrip(t *testing.T) {
	w, in, ctrl := newTestWorld()

	if ctrl.Grounded() {
		t.Fatalf("player must spawn airborne above the ground")
	}
	settle(t, w, ctrl)

	// press and charge a full hop
	in.pressed = true
	in.held = true
	ctrl.HandleInput()
	in.pressed = false
	for ctrl.Phase() == PhaseJumpSquat {
		ctrl.HandleInput()
	}
	if ctrl.Phase() != PhaseAirborne {
		t.Fatalf("expected airborne after squat, got %s", ctrl.Phase())
	}

	w.Step()
	if vy := w.PlayerBody().Velocity().Y; vy <= 0 {
		t.Fatalf("expected upward velocity after jump, got %v", vy)
	}

	// the impulse separates the player from the ground
	left := false
	for i := 0; i < maxSettleSteps; i++ {
		w.Step()
		if !ctrl.Grounded() {
			left = true
			break
		}
	}
	if !left {
		t.Fatalf("player never left the ground after jumping")
	}

	// and gravity brings it back down onto the segment
	in.held = false
	settle(t, w, ctrl)
	if ctrl.Phase() != PhaseIdle {
		t.Fatalf("landing must reset the jump phase, got %s", ctrl.Phase())
	}
}

func TestWorldRunAcrossGround(t *testing.T) {
	w, in, ctrl := newTestWorld()
	settle(t, w, ctrl)

	in.axis = 1
	ctrl.HandleInput()
	w.Step()

	if vx := w.PlayerBody().Velocity().X; vx != 4 {
		t.Fatalf("expected run speed 4 on the body, got %v", vx)
	}

	startX := w.PlayerBody().Position().X
	for i := 0; i < 120; i++ {
		ctrl.HandleInput()
		w.Step()
	}
	if x := w.PlayerBody().Position().X; x <= startX {
		t.Fatalf("player did not move right while running: %v -> %v", startX, x)
	}
	if !ctrl.FacingRight() {
		t.Fatalf("running right must keep facing right")
	}
}

func TestWallsDoNotCountAsGround(t *testing.T) {
	w := NewWorld(testGravity, testTimeStep)
	// only a wall below: the player rests on it but never grounds
	w.AddWall(cp.Vector{X: -20, Y: 0}, cp.Vector{X: 20, Y: 0})
	in := &stubInput{}
	ctrl := w.AttachPlayer(DefaultCharacterConfig(), in, cp.Vector{X: 0, Y: 1}, 0.6, 1.2)

	for i := 0; i < maxSettleSteps; i++ {
		w.Step()
	}
	if ctrl.Grounded() {
		t.Fatalf("wall contact must not set the grounded flag")
	}

	in.pressed = true
	in.held = true
	ctrl.HandleInput()
	if ctrl.Phase() != PhaseIdle {
		t.Fatalf("jump must not start without ground contact, got %s", ctrl.Phase())
	}
}
