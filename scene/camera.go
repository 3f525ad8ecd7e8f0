package scene

import "math"

const (
	MinZoom = 0.5
	MaxZoom = 5.0

	zoomSmoothing = 0.1
	rotationRate  = 0.002

	wheelZoomFactor = 0.001
	pinchZoomFactor = 0.008

	lookTargetFactor = 0.05
	lookSmoothing    = 0.05

	bobAmplitude = 12.0
)

// Camera holds the interaction state shared between the input adapter and the
// frame step: pointer position, smoothed zoom and look-at offset, pinch
// tracking, and the monotonically increasing planet rotation.
//
// Input methods only write plain scalars and may be called at any point
// between frames; Advance reads them once per frame.
type Camera struct {
	W, H float64

	PointerX, PointerY float64

	Zoom       float64
	TargetZoom float64
	Rotation   float64

	lookX, lookY float64 // smoothed look-at offset
	offX, offY   float64 // lookX/Y plus ambient bob, refreshed by Advance

	pinchDist float64
	pinching  bool
}

// SetPointer records the pointer position immediately, without smoothing.
func (c *Camera) SetPointer(x, y float64) {
	c.PointerX = x
	c.PointerY = y
}

// Wheel adjusts the zoom target from a browser-style vertical wheel delta
// (positive delta scrolls down and zooms out).
func (c *Camera) Wheel(deltaY float64) {
	c.TargetZoom = clampZoom(c.TargetZoom - deltaY*wheelZoomFactor)
}

// Pinch feeds the current two-finger distance. The first call after PinchEnd
// only records the distance; subsequent calls turn the distance delta into a
// zoom target change.
func (c *Camera) Pinch(dist float64) {
	if !c.pinching {
		c.pinching = true
		c.pinchDist = dist
		return
	}
	c.TargetZoom = clampZoom(c.TargetZoom + (dist-c.pinchDist)*pinchZoomFactor)
	c.pinchDist = dist
}

// PinchEnd clears the recorded two-finger distance.
func (c *Camera) PinchEnd() {
	c.pinching = false
	c.pinchDist = 0
}

// Advance smooths zoom and look-at toward their targets, advances the
// rotation, and refreshes the combined camera offset for nowMS of elapsed
// animation time.
func (c *Camera) Advance(nowMS float64) {
	c.Zoom += (c.TargetZoom - c.Zoom) * zoomSmoothing
	c.Rotation += rotationRate

	tx := (c.PointerX - c.CenterX()) * lookTargetFactor
	ty := (c.PointerY - c.CenterY()) * lookTargetFactor
	c.lookX += (tx - c.lookX) * lookSmoothing
	c.lookY += (ty - c.lookY) * lookSmoothing

	c.offX = c.lookX + bobAmplitude*math.Sin(nowMS*0.001)
	c.offY = c.lookY + bobAmplitude*math.Cos(nowMS*0.0013)
}

// CenterX returns the horizontal screen center.
func (c *Camera) CenterX() float64 { return c.W / 2 }

// CenterY returns the vertical screen center, shifted up by 10% of the height
// on portrait surfaces to clear bottom UI.
func (c *Camera) CenterY() float64 {
	cy := c.H / 2
	if c.H > c.W {
		cy -= 0.1 * c.H
	}
	return cy
}

// OffsetX returns the combined look-at and ambient-bob offset.
func (c *Camera) OffsetX() float64 { return c.offX }

// OffsetY returns the combined look-at and ambient-bob offset.
func (c *Camera) OffsetY() float64 { return c.offY }

// ProjectStar maps a star to screen space with simple 1/Z perspective. The
// camera offset is scaled by 1/Z too, so near stars parallax harder.
func (c *Camera) ProjectStar(st *Star) (sx, sy, scale float64) {
	inv := 1 / st.Z
	scale = c.Zoom * inv
	sx = c.CenterX() + c.offX*inv + st.X*inv*c.Zoom
	sy = c.CenterY() + c.offY*inv + st.Y*inv*c.Zoom
	return sx, sy, scale
}

// ProjectPlanet maps a rotated planet-surface position to screen space.
func (c *Camera) ProjectPlanet(rx, ry, rz float64) (px, py, scale float64) {
	scale = c.Zoom / (planetBaseDepth + rz*planetZLean)
	px = c.CenterX() + c.offX + rx*scale
	py = c.CenterY() + c.offY + ry*scale
	return px, py, scale
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}
