package obj

// TapeFrame is one frame of scripted input.
type TapeFrame struct {
	Axis float64
	Jump bool
}

// TapeInput replays a fixed sequence of input frames. It derives press and
// release edges from consecutive Jump values the same way a device poll
// would, so a controller fed from a tape sees identical semantics to live
// input. Used by the headless simulator and by tests.
type TapeInput struct {
	frames []TapeFrame
	pos    int
	cur    TapeFrame
	prev   TapeFrame
}

func NewTapeInput(frames ...TapeFrame) *TapeInput {
	return &TapeInput{frames: frames, pos: -1}
}

// Advance moves the tape to the next frame. Once the tape is exhausted the
// last frame repeats; the return value reports whether a scripted frame was
// consumed.
func (t *TapeInput) Advance() bool {
	t.prev = t.cur
	if t.pos+1 < len(t.frames) {
		t.pos++
		t.cur = t.frames[t.pos]
		return true
	}
	return false
}

func (t *TapeInput) HorizontalAxis() float64 { return t.cur.Axis }

func (t *TapeInput) JumpPressed() bool { return t.cur.Jump && !t.prev.Jump }

func (t *TapeInput) JumpHeld() bool { return t.cur.Jump }

func (t *TapeInput) JumpReleased() bool { return !t.cur.Jump && t.prev.Jump }
