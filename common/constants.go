package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// World units are meters, y-up. PixelsPerMeter maps them onto the screen.
	PixelsPerMeter = 48.0

	// GravityY is the engine's ambient vertical gravity.
	GravityY = -9.81

	// PhysicsHz is the fixed simulation rate; FixedTimeStep is seconds per
	// physics tick.
	PhysicsHz     = 120
	FixedTimeStep = 1.0 / float64(PhysicsHz)
)
