package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Gradient stops along a connection arc: transparent at both ends, full
// strength between 20% and 80% of the span, indigo blending into cyan.
const (
	arcFadeIn  = 0.2
	arcFadeOut = 0.8
)

// strokeArc draws one connection as a quad strip with per-vertex colors,
// additively blended so overlapping arcs brighten instead of muddying.
func (r *Renderer) strokeArc(dst *ebiten.Image, ax, ay, bx, by, width, peakAlpha float64) {
	dx := bx - ax
	dy := by - ay
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 || peakAlpha <= 0 {
		return
	}

	// Unit normal for the half-width offset.
	nx := -dy / length * width / 2
	ny := dx / length * width / 2

	cuts := [4]float64{0, arcFadeIn, arcFadeOut, 1}
	r.verts = r.verts[:0]
	r.idxs = r.idxs[:0]

	for _, t := range cuts {
		px := ax + dx*t
		py := ay + dy*t

		var alpha float64
		switch {
		case t <= arcFadeIn:
			alpha = peakAlpha * (t / arcFadeIn)
		case t >= arcFadeOut:
			alpha = peakAlpha * (1 - t) / (1 - arcFadeOut)
		default:
			alpha = peakAlpha
		}

		// Indigo at the start of the visible span, cyan at its end.
		mix := clamp01((t - arcFadeIn) / (arcFadeOut - arcFadeIn))
		cr := float32((float64(arcIndigo.R) + (float64(arcCyan.R)-float64(arcIndigo.R))*mix) / 255 * alpha)
		cg := float32((float64(arcIndigo.G) + (float64(arcCyan.G)-float64(arcIndigo.G))*mix) / 255 * alpha)
		cb := float32((float64(arcIndigo.B) + (float64(arcCyan.B)-float64(arcIndigo.B))*mix) / 255 * alpha)
		ca := float32(alpha)

		r.verts = append(r.verts,
			ebiten.Vertex{
				DstX: float32(px + nx), DstY: float32(py + ny),
				SrcX: 1, SrcY: 1,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			},
			ebiten.Vertex{
				DstX: float32(px - nx), DstY: float32(py - ny),
				SrcX: 1, SrcY: 1,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			},
		)
	}

	for seg := uint16(0); seg < 3; seg++ {
		i := seg * 2
		r.idxs = append(r.idxs, i, i+1, i+2, i+1, i+3, i+2)
	}

	op := &ebiten.DrawTrianglesOptions{
		Blend:     ebiten.BlendLighter,
		AntiAlias: true,
	}
	dst.DrawTriangles(r.verts, r.idxs, r.whiteSrc, op)
}
