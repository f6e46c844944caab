package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input polls the keyboard and the first connected gamepad once per rendered
// frame. Keyboard movement is digital (-1/0/+1); the gamepad left stick
// passes through its analog value so the controller's threshold band sees
// real partial magnitudes.
type Input struct {
	axis         float64
	jumpPressed  bool
	jumpHeld     bool
	jumpReleased bool

	prevPadJump bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the devices. Call once per frame before sampling.
func (i *Input) Update() {
	var axis float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		axis -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		axis += 1
	}

	jumpPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	jumpHeld := ebiten.IsKeyPressed(ebiten.KeySpace)
	jumpReleased := inpututil.IsKeyJustReleased(ebiten.KeySpace)

	// Gamepad: left stick X as the analog axis, bottom face button for jump.
	var padJump bool
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		if stick := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal); stick != 0 {
			axis = stick
		}
		padJump = ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		if padJump && !i.prevPadJump {
			jumpPressed = true
		}
		if !padJump && i.prevPadJump {
			jumpReleased = true
		}
		jumpHeld = jumpHeld || padJump
	}
	i.prevPadJump = padJump

	i.axis = axis
	i.jumpPressed = jumpPressed
	i.jumpHeld = jumpHeld
	i.jumpReleased = jumpReleased
}

func (i *Input) HorizontalAxis() float64 { return i.axis }

func (i *Input) JumpPressed() bool { return i.jumpPressed }

func (i *Input) JumpHeld() bool { return i.jumpHeld }

func (i *Input) JumpReleased() bool { return i.jumpReleased }
