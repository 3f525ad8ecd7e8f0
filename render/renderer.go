// Package render paints a scene.Scene onto an ebiten image: planet glow,
// rotating point cloud, gradient connection arcs and the depth-graded star
// field. It holds only immutable drawing resources; all animation state lives
// in the scene.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/swidaryanto/Planetaria/scene"
)

const (
	// Points projected outside the surface by more than this margin are
	// skipped. Planet points are exempt; their count is fixed and small.
	cullMargin = 50

	hoverRadius = 90.0
)

var (
	background = color.RGBA{R: 0x05, G: 0x08, B: 0x12, A: 0xFF}

	starFar  = color.RGBA{R: 150, G: 160, B: 190, A: 0xFF}
	starMid  = color.RGBA{R: 190, G: 205, B: 235, A: 0xFF}
	starNear = color.RGBA{R: 255, G: 255, B: 255, A: 0xFF}

	arcIndigo = color.RGBA{R: 99, G: 102, B: 241, A: 0xFF}
	arcCyan   = color.RGBA{R: 34, G: 211, B: 238, A: 0xFF}

	planetDim    = color.RGBA{R: 110, G: 120, B: 205, A: 0xFF}
	planetBright = color.RGBA{R: 225, G: 235, B: 255, A: 0xFF}
)

// Renderer draws scenes. Create one with New and reuse it across frames.
type Renderer struct {
	white    *ebiten.Image // single-texel source for gradient triangles
	whiteSrc *ebiten.Image
	glow     *ebiten.Image

	verts []ebiten.Vertex
	idxs  []uint16
}

func New() *Renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Renderer{
		white:    white,
		whiteSrc: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		glow:     newGlowSprite(glowSpriteSize),
	}
}

// Draw paints one frame. A nil destination or scene is a silent no-op; the
// next tick retries with whatever state is available then.
func (r *Renderer) Draw(dst *ebiten.Image, sc *scene.Scene) {
	if r == nil || dst == nil || sc == nil {
		return
	}

	dst.Fill(background)

	cam := sc.Camera()
	r.drawPlanetGlow(dst, sc, cam)
	r.drawPlanet(dst, sc, cam)
	r.drawConnections(dst, sc, cam)
	r.drawStars(dst, sc, cam)
}

func (r *Renderer) drawPlanetGlow(dst *ebiten.Image, sc *scene.Scene, cam *scene.Camera) {
	cx := cam.CenterX() + cam.OffsetX()
	cy := cam.CenterY() + cam.OffsetY()
	radius := sc.PlanetRadius() * cam.Zoom * 1.5
	r.drawGlow(dst, cx, cy, radius, arcIndigo, 0.35)
}

func (r *Renderer) drawPlanet(dst *ebiten.Image, sc *scene.Scene, cam *scene.Camera) {
	radius := sc.PlanetRadius()
	if radius <= 0 {
		return
	}
	hoverR := hoverRadius * cam.Zoom
	hoverSq := hoverR * hoverR

	for _, p := range sc.Planet() {
		rx, ry, rz := p.RotatedY(cam.Rotation)
		px, py, scale := cam.ProjectPlanet(rx, ry, rz)

		// Negative rotated Z faces the viewer.
		front := clamp01(0.5 - rz/(2*radius))
		alpha := (0.15 + 0.6*front) * (0.55 + 0.45*p.Noise)
		size := (0.6 + 1.6*front) * scale

		dx := cam.PointerX - px
		dy := cam.PointerY - py
		if d := dx*dx + dy*dy; d < hoverSq {
			t := 1 - (d / hoverSq) // quadratic falloff of proximity
			alpha += 0.5 * t
			size += 1.5 * t
		}
		alpha = clamp01(alpha)

		col := lerpColor(planetDim, planetBright, front)
		vector.DrawFilledCircle(dst, float32(px), float32(py), float32(size), scaleAlpha(col, alpha), true)
	}
}

func (r *Renderer) drawConnections(dst *ebiten.Image, sc *scene.Scene, cam *scene.Camera) {
	w, h := sc.Size()
	stars := sc.Stars()
	for _, c := range sc.Connections() {
		if c.A >= len(stars) || c.B >= len(stars) {
			continue
		}
		ax, ay, _ := cam.ProjectStar(&stars[c.A])
		bx, by, _ := cam.ProjectStar(&stars[c.B])
		if !onScreen(ax, ay, w, h) || !onScreen(bx, by, w, h) {
			continue
		}
		width := (0.5 + c.Life*1.5) * cam.Zoom * 0.5
		r.strokeArc(dst, ax, ay, bx, by, width, c.Life*0.6)
	}
}

func (r *Renderer) drawStars(dst *ebiten.Image, sc *scene.Scene, cam *scene.Camera) {
	w, h := sc.Size()
	stars := sc.Stars()
	for i := range stars {
		st := &stars[i]
		sx, sy, scale := cam.ProjectStar(st)
		if !onScreen(sx, sy, w, h) {
			continue
		}

		alpha := st.Opacity * depthDim(st.Z) * nearFade(st.Z)
		alpha = clamp01(alpha)
		if alpha <= 0 {
			continue
		}

		col := starColor(st.Z)
		radius := st.Size * scale
		vector.DrawFilledCircle(dst, float32(sx), float32(sy), float32(radius), scaleAlpha(col, alpha), true)

		if st.Z < 1.2 && alpha > 0.55 && st.TwinkleSpeed > 0 {
			r.drawGlow(dst, sx, sy, radius*6, col, alpha*0.5)
		}

		for _, n := range st.Cluster {
			nx := sx + n.OffsetX
			ny := sy + n.OffsetY
			if !onScreen(nx, ny, w, h) {
				continue
			}
			na := clamp01(alpha * (0.3 + 0.7*pulse(n.Phase)))
			vector.DrawFilledCircle(dst, float32(nx), float32(ny), float32(n.Size*scale), scaleAlpha(col, na), true)
		}
	}
}

// depthDim dims stars toward the far plane.
func depthDim(z float64) float64 {
	return clamp01(1.1 - (z-scene.MinDepth)*0.22)
}

// nearFade ramps alpha to zero just before the near plane so depth recycling
// never pops.
func nearFade(z float64) float64 {
	return clamp01((z - scene.MinDepth) / 0.3)
}

func starColor(z float64) color.RGBA {
	switch {
	case z > 2.5:
		return starFar
	case z > 1.2:
		return starMid
	default:
		return starNear
	}
}

func onScreen(x, y float64, w, h int) bool {
	return x >= -cullMargin && x <= float64(w)+cullMargin &&
		y >= -cullMargin && y <= float64(h)+cullMargin
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// pulse maps a sawtooth phase in [0,1) to a smooth 0..1..0 swell.
func pulse(phase float64) float64 {
	return math.Sin(phase * math.Pi)
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 0xFF,
	}
}

// scaleAlpha premultiplies a color by alpha, as color.RGBA requires.
func scaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(255 * alpha),
	}
}
