package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/hoplite2d/hoplite/common"
	"github.com/hoplite2d/hoplite/obj"
	"github.com/hoplite2d/hoplite/prefabs"

	"github.com/ebitenui/ebitenui"
)

const (
	playerWidth  = 0.6 // meters
	playerHeight = 1.2
)

type segment struct {
	a, b cp.Vector
}

type Game struct {
	frames int

	input *obj.Input
	world *obj.World
	ctrl  *obj.MovementController

	configName string
	watcher    *prefabs.Watcher

	terrain []segment
	camX    float64

	paused bool
	ui     *ebitenui.UI

	accumulator float64

	playerImg *ebiten.Image
}

func NewGame(configName string) *Game {
	spec, err := prefabs.LoadCharacterSpec(configName)
	if err != nil {
		log.Printf("failed to load character spec %s: %v", configName, err)
	}

	g := &Game{
		configName: configName,
		world:      obj.NewWorld(common.GravityY, common.FixedTimeStep),
		input:      obj.NewInput(),
	}
	g.buildTerrain()

	g.ctrl = g.world.AttachPlayer(spec.Config(), g.input, cp.Vector{X: 3, Y: 2}, playerWidth, playerHeight)
	g.camX = 3

	playerWidthPx := playerWidth * common.PixelsPerMeter
	playerHeightPx := playerHeight * common.PixelsPerMeter
	g.playerImg = ebiten.NewImage(int(playerWidthPx), int(playerHeightPx))
	g.playerImg.Fill(colornames.Crimson)
	// mark the facing edge so sprite flips are visible without art
	edge := ebiten.NewImage(3, int(playerHeightPx))
	edge.Fill(colornames.White)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(g.playerImg.Bounds().Dx()-3), 0)
	g.playerImg.DrawImage(edge, op)

	watcher, err := prefabs.NewWatcher("prefabs")
	if err != nil {
		log.Printf("prefab watcher unavailable: %v", err)
	} else {
		g.watcher = watcher
	}

	g.ui = NewPauseUI(g)
	return g
}

func (g *Game) buildTerrain() {
	w := g.world
	floor := segment{cp.Vector{X: 0, Y: 0}, cp.Vector{X: 26, Y: 0}}
	plats := []segment{
		{cp.Vector{X: 8, Y: 1.6}, cp.Vector{X: 12, Y: 1.6}},
		{cp.Vector{X: 14, Y: 3.0}, cp.Vector{X: 17, Y: 3.0}},
		{cp.Vector{X: 20, Y: 4.2}, cp.Vector{X: 23, Y: 4.2}},
	}
	walls := []segment{
		{cp.Vector{X: 0, Y: 0}, cp.Vector{X: 0, Y: 12}},
		{cp.Vector{X: 26, Y: 0}, cp.Vector{X: 26, Y: 12}},
	}

	w.AddGround(floor.a, floor.b)
	g.terrain = append(g.terrain, floor)
	for _, p := range plats {
		w.AddGround(p.a, p.b)
		g.terrain = append(g.terrain, p)
	}
	for _, wl := range walls {
		w.AddWall(wl.a, wl.b)
		g.terrain = append(g.terrain, wl)
	}
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	g.drainConfigEvents()

	// input stage: once per rendered frame
	g.input.Update()
	g.ctrl.HandleInput()

	// physics stage: fixed-rate steps accumulated against the render tick
	g.accumulator += 1.0 / float64(ebiten.TPS())
	for g.accumulator >= common.FixedTimeStep {
		g.world.Step()
		g.accumulator -= common.FixedTimeStep
	}

	g.camX = common.Lerp(g.camX, g.world.PlayerBody().Position().X, 0.08)

	return nil
}

// drainConfigEvents applies edited character tuning without restarting.
func (g *Game) drainConfigEvents() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("reloading character tuning from %s", name)
			g.ReloadConfig()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab watcher error: %v", err)
		default:
			return
		}
	}
}

// ReloadConfig re-reads the character spec and swaps it into the controller.
func (g *Game) ReloadConfig() {
	spec, err := prefabs.LoadCharacterSpec(g.configName)
	if err != nil {
		log.Printf("config reload failed: %v", err)
		return
	}
	g.ctrl.SetConfig(spec.Config())
}

// screenPos maps a world point (meters, y-up) onto the screen.
func (g *Game) screenPos(p cp.Vector) (float64, float64) {
	x := common.BaseWidth/2 + (p.X-g.camX)*common.PixelsPerMeter
	y := common.BaseHeight - 96 - p.Y*common.PixelsPerMeter
	return x, y
}

func (g *Game) Draw(screen *ebiten.Image) {
	for _, s := range g.terrain {
		ax, ay := g.screenPos(s.a)
		bx, by := g.screenPos(s.b)
		ebitenutil.DrawLine(screen, ax, ay, bx, by, colornames.Slategray)
	}

	body := g.world.PlayerBody()
	pos := body.Position()
	px, py := g.screenPos(cp.Vector{X: pos.X - playerWidth/2, Y: pos.Y + playerHeight/2})

	op := &ebiten.DrawImageOptions{}
	if g.ctrl.FacingRight() {
		op.GeoM.Translate(px, py)
	} else {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(px+playerWidth*common.PixelsPerMeter, py)
	}
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.playerImg, op)

	v := body.Velocity()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"phase: %s  grounded: %v  vel: (%.2f, %.2f)",
		g.ctrl.Phase(), g.ctrl.Grounded(), v.X, v.Y,
	), 0, 20)

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
