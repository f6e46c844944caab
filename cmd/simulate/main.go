// Command simulate runs the movement controller headless against a real
// physics space and prints a per-frame trace. Useful for tuning hop heights
// and run feel without launching the game.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/jakecoffman/cp"

	"github.com/hoplite2d/hoplite/common"
	"github.com/hoplite2d/hoplite/obj"
	"github.com/hoplite2d/hoplite/prefabs"
)

const stepsPerFrame = common.PhysicsHz / 60

func main() {
	configName := flag.String("config", "character.yaml", "character spec in prefabs/")
	frames := flag.Int("frames", 180, "rendered frames to simulate")
	axis := flag.Float64("axis", 1.0, "horizontal axis value while running")
	jumpFrame := flag.Int("jump", 30, "frame on which the jump button is pressed")
	hold := flag.Bool("hold", true, "hold the jump button through the squat (full hop); otherwise release next frame (short hop)")
	flag.Parse()

	spec, err := prefabs.LoadCharacterSpec(*configName)
	if err != nil {
		log.Fatalf("load character spec: %v", err)
	}
	cfg := spec.Config()

	tape := buildTape(*frames, *axis, *jumpFrame, *hold, cfg.JumpSquatFrames)

	world := obj.NewWorld(common.GravityY, common.FixedTimeStep)
	world.AddGround(cp.Vector{X: -50, Y: 0}, cp.Vector{X: 50, Y: 0})
	ctrl := world.AttachPlayer(cfg, tape, cp.Vector{X: 0, Y: 1}, 0.6, 1.2)

	fmt.Printf("frame  phase      grounded  pos(x, y)        vel(x, y)\n")
	for f := 0; f < *frames; f++ {
		tape.Advance()
		ctrl.HandleInput()
		for s := 0; s < stepsPerFrame; s++ {
			world.Step()
		}

		pos := world.PlayerBody().Position()
		vel := world.PlayerBody().Velocity()
		fmt.Printf("%5d  %-9s  %-8v  (%6.2f, %5.2f)  (%6.2f, %6.2f)\n",
			f, ctrl.Phase(), ctrl.Grounded(), pos.X, pos.Y, vel.X, vel.Y)
	}
}

// buildTape scripts a simple session: settle onto the ground, run along the
// axis, press jump on jumpFrame, and either hold through the squat window or
// release immediately.
func buildTape(frames int, axis float64, jumpFrame int, hold bool, squatFrames int) *obj.TapeInput {
	tape := make([]obj.TapeFrame, frames)
	for f := range tape {
		tape[f].Axis = axis
		if f == jumpFrame {
			tape[f].Jump = true
		}
		if hold && f > jumpFrame && f <= jumpFrame+squatFrames+1 {
			tape[f].Jump = true
		}
	}
	return obj.NewTapeInput(tape...)
}
