package scene

import "math/rand/v2"

// Scene owns the simulation containers and the camera. It is single-threaded:
// one Advance per display frame, input writes between frames through the
// Camera's scalar setters.
type Scene struct {
	w, h int

	cam    Camera
	stars  []Star
	planet []PlanetPoint
	conns  []Connection

	rng *rand.Rand
}

// New builds a scene for an initial surface size. The rng drives all
// stochastic behavior; pass a seeded source for reproducible runs.
func New(w, h int, rng *rand.Rand) *Scene {
	s := &Scene{
		cam: Camera{Zoom: 1, TargetZoom: 1},
		rng: rng,
	}
	s.Resize(w, h)
	return s
}

// Resize is the mount contract: it regenerates the star field and planet
// cloud for the new surface, discards every connection (their star indices
// are no longer meaningful), and recenters the pointer. Call it on initial
// mount and on every surface-size change.
func (s *Scene) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	s.w = w
	s.h = h
	s.cam.W = float64(w)
	s.cam.H = float64(h)
	s.cam.SetPointer(float64(w)/2, float64(h)/2)

	s.stars = generateStars(w, h, s.rng)
	s.planet = generatePlanet(w, h, s.rng)
	s.conns = s.conns[:0]
}

// Advance steps the whole simulation by one frame at nowMS of elapsed
// animation time: camera smoothing and rotation, star drift and twinkle,
// then connection spawn and lifecycle.
func (s *Scene) Advance(nowMS float64) {
	s.cam.Advance(nowMS)

	for i := range s.stars {
		s.stars[i].advance(s.w, s.h, s.rng)
	}

	s.trySpawnConnection()
	s.stepConnections()
}

// Size returns the current surface size.
func (s *Scene) Size() (w, h int) { return s.w, s.h }

// Camera returns the shared interaction state. Input adapters mutate it
// directly; it stays valid across resizes.
func (s *Scene) Camera() *Camera { return &s.cam }

// Stars exposes the live star slice for drawing. Callers must not retain it
// across a Resize.
func (s *Scene) Stars() []Star { return s.stars }

// Planet exposes the live planet point cloud for drawing.
func (s *Scene) Planet() []PlanetPoint { return s.planet }

// PlanetRadius returns the sphere radius for the current surface.
func (s *Scene) PlanetRadius() float64 { return planetRadius(s.w, s.h) }

// Connections exposes the live connection slice for drawing.
func (s *Scene) Connections() []Connection { return s.conns }
