// Package app hosts the scene inside an ebiten game loop: it polls pointer,
// wheel and touch input into the camera, detects surface-size changes, and
// drives one simulation step plus one draw per display frame.
package app

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/swidaryanto/Planetaria/hud"
	"github.com/swidaryanto/Planetaria/internal/logging"
	"github.com/swidaryanto/Planetaria/render"
	"github.com/swidaryanto/Planetaria/scene"
)

// wheelNotchDelta maps one ebiten wheel notch to a browser-style deltaY, so
// the camera's wheel formula keeps its calibrated feel.
const wheelNotchDelta = 120.0

// Game wires scene, renderer and HUD into the ebiten run loop. RunGame owns
// the frame scheduling and tears everything down together when it returns.
type Game struct {
	log      *logging.Logger
	scene    *scene.Scene
	renderer *render.Renderer
	overlay  *hud.HUD

	w, h  int
	nowMS float64

	lastCX, lastCY int
	touchIDs       []ebiten.TouchID
}

func New(sc *scene.Scene, r *render.Renderer, overlay *hud.HUD, log *logging.Logger) *Game {
	w, h := sc.Size()
	return &Game{
		log:      log,
		scene:    sc,
		renderer: r,
		overlay:  overlay,
		w:        w,
		h:        h,
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		g.log.Info("exit requested")
		return ebiten.Termination
	}

	// Fixed-step clock: ebiten calls Update at the configured TPS.
	g.nowMS += 1000.0 / float64(ebiten.TPS())

	g.pollInput()
	g.scene.Advance(g.nowMS)
	g.overlay.Advance(g.nowMS)
	return nil
}

// pollInput reads this tick's input into the camera. Only plain scalars are
// written; the simulation containers are never touched from here.
func (g *Game) pollInput() {
	cam := g.scene.Camera()

	if mx, my := ebiten.CursorPosition(); mx != g.lastCX || my != g.lastCY {
		g.lastCX, g.lastCY = mx, my
		cam.SetPointer(float64(mx), float64(my))
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		cam.Wheel(-wy * wheelNotchDelta)
	}

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	switch {
	case len(g.touchIDs) >= 2:
		x0, y0 := ebiten.TouchPosition(g.touchIDs[0])
		x1, y1 := ebiten.TouchPosition(g.touchIDs[1])
		cam.Pinch(math.Hypot(float64(x1-x0), float64(y1-y0)))
	case len(g.touchIDs) == 1:
		cam.PinchEnd()
		x, y := ebiten.TouchPosition(g.touchIDs[0])
		cam.SetPointer(float64(x), float64(y))
	default:
		cam.PinchEnd()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.scene)
	g.overlay.Draw(screen)
}

// Layout reports the logical surface 1:1 with the window and doubles as the
// resize hook: a size change remounts the scene before the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.w || outsideHeight != g.h) {
		g.w = outsideWidth
		g.h = outsideHeight
		g.scene.Resize(outsideWidth, outsideHeight)
		g.log.Debug("surface resized to %dx%d", outsideWidth, outsideHeight)
	}
	return g.w, g.h
}
