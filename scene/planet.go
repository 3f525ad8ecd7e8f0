package scene

import (
	"math"
	"math/rand/v2"
)

const (
	planetPointCount  = 1400
	planetRadiusRatio = 0.30

	// Perspective divisor for planet points. The rotated-Z coefficient is a
	// visual calibration constant, not a physical one; keep it as-is.
	planetBaseDepth = 1.0
	planetZLean     = 0.001
)

// PlanetPoint is one sample of the planet's surface point cloud. The base
// position is fixed at generation time; the rotated view is derived every
// frame and never stored. Noise is a persistent per-point shading scalar.
type PlanetPoint struct {
	X, Y, Z float64
	Noise   float64
}

// planetRadius returns the sphere radius for a w x h surface.
func planetRadius(w, h int) float64 {
	m := w
	if h < m {
		m = h
	}
	return planetRadiusRatio * float64(m)
}

// generatePlanet distributes exactly planetPointCount points over a sphere of
// the surface-derived radius using the Fibonacci-sphere spacing. Deterministic
// except for the noise scalar.
func generatePlanet(w, h int, rng *rand.Rand) []PlanetPoint {
	const n = planetPointCount
	radius := planetRadius(w, h)
	golden := math.Pi * (3 - math.Sqrt(5))

	points := make([]PlanetPoint, n)
	for i := range points {
		y := 1 - 2*float64(i)/float64(n-1)
		r := math.Sqrt(1 - y*y)
		theta := float64(i) * golden
		points[i] = PlanetPoint{
			X:     math.Cos(theta) * r * radius,
			Y:     y * radius,
			Z:     math.Sin(theta) * r * radius,
			Noise: rng.Float64(),
		}
	}
	return points
}

// RotatedY returns the point's position after rotating the sphere about the
// vertical axis by angle radians.
func (p PlanetPoint) RotatedY(angle float64) (x, y, z float64) {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return p.X*c + p.Z*s, p.Y, -p.X*s + p.Z*c
}
