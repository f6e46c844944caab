package obj

import (
	"math"

	"github.com/jakecoffman/cp"
)

// GroundTag is the contact tag the controller tracks for grounding.
// Contact events carrying any other tag are ignored.
const GroundTag = "ground"

// JumpPhase is the controller's discrete jump state.
type JumpPhase int

const (
	PhaseIdle JumpPhase = iota
	PhaseJumpSquat
	PhaseAirborne
)

func (p JumpPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseJumpSquat:
		return "jumpsquat"
	case PhaseAirborne:
		return "airborne"
	}
	return "unknown"
}

// InputSource is the polled input collaborator. JumpReleased is part of the
// device surface but the controller never consumes it: hop height is decided
// by polling JumpHeld at the instant the jump executes.
type InputSource interface {
	HorizontalAxis() float64
	JumpPressed() bool
	JumpHeld() bool
	JumpReleased() bool
}

// Body is the slice of a rigid body the controller reads and writes.
// *cp.Body satisfies it directly.
type Body interface {
	Velocity() cp.Vector
	SetVelocity(x, y float64)
	ApplyImpulseAtLocalPoint(impulse, point cp.Vector)
}

// CharacterConfig holds the author-time movement tunables. The controller
// performs no validation: degenerate values (e.g. JumpSquatFrames == 0,
// which makes a jump arm on the same sampling call that starts the squat)
// behave exactly as supplied.
type CharacterConfig struct {
	RunSpeed            float64
	ShortHopImpulse     float64
	FullHopImpulse      float64
	FallMultiplier      float64
	AscendingThreshold  float64
	DescendingThreshold float64
	JumpSquatFrames     int
}

// DefaultCharacterConfig returns the documented default tuning.
func DefaultCharacterConfig() CharacterConfig {
	return CharacterConfig{
		RunSpeed:            4,
		ShortHopImpulse:     4,
		FullHopImpulse:      5.5,
		FallMultiplier:      2.5,
		AscendingThreshold:  0.1,
		DescendingThreshold: 0.5,
		JumpSquatFrames:     5,
	}
}

// MovementController turns directional and jump input into velocity and
// impulse writes on a physics body. It is ticked at two distinct points by
// the host loop: HandleInput once per rendered frame, OnPhysics once per
// fixed simulation step. Ground contact arrives through OnContactBegin and
// OnContactEnd, driven by the physics world's collision handlers.
//
// Coordinates are y-up: gravityY is negative and jump impulses are positive.
type MovementController struct {
	cfg   CharacterConfig
	input InputSource
	body  Body

	gravityY float64
	timeStep float64

	prevAxis    float64
	grounded    bool
	phase       JumpPhase
	squatFrames int
	jumpArmed   bool
	facingRight bool

	// transient per-frame samples, refreshed by HandleInput
	axis        float64
	jumpPressed bool
	jumpHeld    bool
}

// NewMovementController wires a controller to its collaborators. gravityY is
// the engine's ambient vertical gravity (negative), timeStep the fixed
// seconds per physics tick.
func NewMovementController(cfg CharacterConfig, input InputSource, body Body, gravityY, timeStep float64) *MovementController {
	return &MovementController{
		cfg:         cfg,
		input:       input,
		body:        body,
		gravityY:    gravityY,
		timeStep:    timeStep,
		phase:       PhaseIdle,
		facingRight: true,
	}
}

// HandleInput is the input-sampling step, called once per rendered frame.
// It reads the input source into transient fields and advances the
// jump-squat timer. It never touches the body.
func (c *MovementController) HandleInput() {
	c.axis = c.input.HorizontalAxis()
	c.jumpPressed = c.input.JumpPressed()
	c.jumpHeld = c.input.JumpHeld()

	// A fresh squat starts at counter 0 and is not advanced again until the
	// next sampling call, except when JumpSquatFrames is 0 and the squat
	// completes on the call that started it.
	if c.phase == PhaseJumpSquat {
		c.squatFrames++
		if c.squatFrames >= c.cfg.JumpSquatFrames {
			c.phase = PhaseAirborne
			c.jumpArmed = true
		}
		return
	}

	if c.phase == PhaseIdle && c.grounded && c.jumpPressed {
		c.phase = PhaseJumpSquat
		c.squatFrames = 0
		if c.cfg.JumpSquatFrames == 0 {
			c.phase = PhaseAirborne
			c.jumpArmed = true
		}
	}
}

// OnPhysics is the physics step, called once per fixed simulation tick.
// Stages run in fixed order: run, flip, fall, jump.
func (c *MovementController) OnPhysics() {
	c.run()
	c.flip()
	c.fall()
	c.jump()
}

// run snaps horizontal velocity to ±RunSpeed while input magnitude is rising
// above AscendingThreshold and zeroes it while falling below
// DescendingThreshold. The band between the two thresholds leaves velocity
// untouched so a decaying stick value doesn't jitter the character.
func (c *MovementController) run() {
	cur := math.Abs(c.axis)
	prev := math.Abs(c.prevAxis)
	v := c.body.Velocity()

	if cur >= prev {
		if cur > c.cfg.AscendingThreshold {
			c.body.SetVelocity(math.Copysign(c.cfg.RunSpeed, c.axis), v.Y)
		}
	} else if cur < c.cfg.DescendingThreshold {
		c.body.SetVelocity(0, v.Y)
	}

	c.prevAxis = c.axis
}

// flip updates facing only when input magnitude leaves the dead zone in the
// opposite direction of the current facing.
func (c *MovementController) flip() {
	if c.facingRight && c.axis < -c.cfg.AscendingThreshold {
		c.facingRight = false
	} else if !c.facingRight && c.axis > c.cfg.AscendingThreshold {
		c.facingRight = true
	}
}

// fall steepens the descent curve: while moving down, extra gravity scaled
// by (FallMultiplier - 1) is mixed in on top of the engine's ambient
// gravity. The rise curve is never altered.
func (c *MovementController) fall() {
	v := c.body.Velocity()
	if v.Y < 0 {
		c.body.SetVelocity(v.X, v.Y+c.gravityY*(c.cfg.FallMultiplier-1)*c.timeStep)
	}
}

// jump fires the single armed impulse from the squat window. The hop height
// is decided by the held state polled on the frame the jump executes, not by
// a release edge.
func (c *MovementController) jump() {
	if !c.jumpArmed {
		return
	}
	impulse := c.cfg.ShortHopImpulse
	if c.jumpHeld {
		impulse = c.cfg.FullHopImpulse
	}
	c.body.ApplyImpulseAtLocalPoint(cp.Vector{Y: impulse}, cp.Vector{})
	c.jumpArmed = false
}

// OnContactBegin marks the controller grounded when a ground-tagged contact
// starts. Landing while airborne resets the jump phase so a new squat can
// begin. Repeated begins collapse into the single boolean.
func (c *MovementController) OnContactBegin(tag string) {
	if tag != GroundTag {
		return
	}
	c.grounded = true
	if c.phase == PhaseAirborne {
		c.phase = PhaseIdle
	}
}

// OnContactEnd clears the grounded flag when a ground-tagged contact ends.
func (c *MovementController) OnContactEnd(tag string) {
	if tag != GroundTag {
		return
	}
	c.grounded = false
}

// SetConfig swaps the tuning in place. Used for hot reload; takes effect on
// the next tick.
func (c *MovementController) SetConfig(cfg CharacterConfig) {
	c.cfg = cfg
}

func (c *MovementController) Config() CharacterConfig { return c.cfg }

func (c *MovementController) Grounded() bool { return c.grounded }

func (c *MovementController) Phase() JumpPhase { return c.phase }

// FacingRight is the one-way presentation signal consumed by the renderer.
func (c *MovementController) FacingRight() bool { return c.facingRight }
