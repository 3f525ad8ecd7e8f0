package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const glowSpriteSize = 128

// newGlowSprite builds a white radial falloff sprite once; tinting and
// scaling happen at draw time.
func newGlowSprite(size int) *ebiten.Image {
	pix := make([]byte, size*size*4)
	center := float64(size-1) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) - center) / center
			dy := (float64(y) - center) / center
			d := math.Sqrt(dx*dx + dy*dy)
			if d > 1 {
				continue
			}
			a := (1 - d) * (1 - d)
			v := byte(a * 255)
			i := (y*size + x) * 4
			pix[i] = v
			pix[i+1] = v
			pix[i+2] = v
			pix[i+3] = v
		}
	}
	img := ebiten.NewImage(size, size)
	img.WritePixels(pix)
	return img
}

// drawGlow blits the radial sprite centered on (cx, cy) with the given
// radius, tint and alpha, additively blended.
func (r *Renderer) drawGlow(dst *ebiten.Image, cx, cy, radius float64, tint color.RGBA, alpha float64) {
	if radius <= 0 || alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	s := 2 * radius / glowSpriteSize
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(cx-radius, cy-radius)
	op.ColorScale.Scale(float32(tint.R)/255, float32(tint.G)/255, float32(tint.B)/255, 1)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Blend = ebiten.BlendLighter
	dst.DrawImage(r.glow, op)
}
