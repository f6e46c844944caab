package obj

import "testing"

func TestTapeEdges(t *testing.T) {
	tape := NewTapeInput(
		TapeFrame{Axis: 0.5},
		TapeFrame{Axis: 1, Jump: true},
		TapeFrame{Axis: 1, Jump: true},
		TapeFrame{Jump: false},
	)

	type want struct {
		axis          float64
		pressed, held bool
		released      bool
		scripted      bool
	}
	wants := []want{
		{axis: 0.5, scripted: true},
		{axis: 1, pressed: true, held: true, scripted: true},
		{axis: 1, held: true, scripted: true},
		{released: true, scripted: true},
		{}, // exhausted: last frame repeats, no further edges
	}

	for i, w := range wants {
		scripted := tape.Advance()
		if scripted != w.scripted {
			t.Fatalf("frame %d: expected scripted=%v, got %v", i, w.scripted, scripted)
		}
		if tape.HorizontalAxis() != w.axis {
			t.Fatalf("frame %d: expected axis %v, got %v", i, w.axis, tape.HorizontalAxis())
		}
		if tape.JumpPressed() != w.pressed {
			t.Fatalf("frame %d: expected pressed=%v", i, w.pressed)
		}
		if tape.JumpHeld() != w.held {
			t.Fatalf("frame %d: expected held=%v", i, w.held)
		}
		if tape.JumpReleased() != w.released {
			t.Fatalf("frame %d: expected released=%v", i, w.released)
		}
	}
}
