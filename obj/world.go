package obj

import (
	"github.com/jakecoffman/cp"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeGround
	collisionTypeWall
)

const terrainRadius = 0.05

// World owns the physics space and the player's rigid body, and routes
// ground-contact begin/separate events from the space's collision handlers
// into the movement controller.
type World struct {
	space *cp.Space

	playerBody  *cp.Body
	playerShape *cp.Shape
	controller  *MovementController

	gravityY float64
	timeStep float64
}

// NewWorld builds an empty y-up space with the given ambient gravity.
func NewWorld(gravityY, timeStep float64) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravityY})
	return &World{
		space:    space,
		gravityY: gravityY,
		timeStep: timeStep,
	}
}

// AddGround adds a static walkable segment. Contact with ground shapes is
// what feeds the controller's grounded flag.
func (w *World) AddGround(a, b cp.Vector) {
	shape := cp.NewSegment(w.space.StaticBody, a, b, terrainRadius)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeGround)
	w.space.AddShape(shape)
}

// AddWall adds a static segment that blocks movement without counting as
// ground.
func (w *World) AddWall(a, b cp.Vector) {
	shape := cp.NewSegment(w.space.StaticBody, a, b, terrainRadius)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeWall)
	w.space.AddShape(shape)
}

// AttachPlayer creates the unit-mass player body at pos, builds its movement
// controller, and installs the ground-contact handlers. Rotation is locked
// with an infinite moment; friction is zero because the run logic owns
// horizontal velocity outright.
func (w *World) AttachPlayer(cfg CharacterConfig, input InputSource, pos cp.Vector, width, height float64) *MovementController {
	if w.playerBody != nil {
		return w.controller
	}

	body := cp.NewBody(1, cp.INFINITY)
	body.SetPosition(pos)
	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypePlayer)

	w.space.AddBody(body)
	w.space.AddShape(shape)

	w.playerBody = body
	w.playerShape = shape
	w.controller = NewMovementController(cfg, input, body, w.gravityY, w.timeStep)

	handler := w.space.NewCollisionHandler(collisionTypePlayer, collisionTypeGround)
	handler.UserData = w
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*World)
		if ok && world.controller != nil {
			world.controller.OnContactBegin(GroundTag)
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		world, ok := userData.(*World)
		if ok && world.controller != nil {
			world.controller.OnContactEnd(GroundTag)
		}
	}

	return w.controller
}

// Step runs one fixed simulation tick: the controller's physics stage first,
// then the space integration that applies the resulting velocities.
func (w *World) Step() {
	if w.controller != nil {
		w.controller.OnPhysics()
	}
	w.space.Step(w.timeStep)
}

func (w *World) Space() *cp.Space { return w.space }

func (w *World) PlayerBody() *cp.Body { return w.playerBody }

func (w *World) Controller() *MovementController { return w.controller }

func (w *World) TimeStep() float64 { return w.timeStep }
