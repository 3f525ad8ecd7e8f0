package scene

import (
	"math"
	"testing"
)

func TestPlanetRadius(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		want float64
	}{
		{"landscape", 1000, 800, 240},
		{"portrait", 600, 900, 180},
		{"square", 500, 500, 150},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := planetRadius(tc.w, tc.h); got != tc.want {
				t.Fatalf("planetRadius(%d, %d) = %v, want %v", tc.w, tc.h, got, tc.want)
			}
		})
	}
}

func TestGeneratePlanet(t *testing.T) {
	const w, h = 1000, 800
	points := generatePlanet(w, h, testRNG())
	if len(points) != planetPointCount {
		t.Fatalf("got %d points, want %d", len(points), planetPointCount)
	}

	radius := planetRadius(w, h)
	for i, p := range points {
		mag := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
		if math.Abs(mag-radius) > 1e-9*radius {
			t.Fatalf("point %d magnitude %v, want %v", i, mag, radius)
		}
		if p.Noise < 0 || p.Noise >= 1 {
			t.Fatalf("point %d noise %v outside [0, 1)", i, p.Noise)
		}
	}

	// Fibonacci spacing sweeps Y from pole to pole.
	if points[0].Y != radius {
		t.Fatalf("first point Y = %v, want %v", points[0].Y, radius)
	}
	if math.Abs(points[planetPointCount-1].Y+radius) > 1e-9 {
		t.Fatalf("last point Y = %v, want %v", points[planetPointCount-1].Y, -radius)
	}
}

func TestRotatedYPreservesMagnitudeAndHeight(t *testing.T) {
	p := PlanetPoint{X: 3, Y: 4, Z: 12}
	for _, angle := range []float64{0, 0.5, math.Pi, 7.3} {
		x, y, z := p.RotatedY(angle)
		if y != p.Y {
			t.Fatalf("angle %v changed Y: %v", angle, y)
		}
		before := math.Sqrt(p.X*p.X + p.Z*p.Z)
		after := math.Sqrt(x*x + z*z)
		if math.Abs(before-after) > 1e-12 {
			t.Fatalf("angle %v changed radial magnitude: %v vs %v", angle, before, after)
		}
	}
}
