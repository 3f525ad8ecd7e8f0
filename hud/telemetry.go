package hud

import "math/rand/v2"

// Telemetry walk bounds. Values wander inside these and reflect off the
// edges so the readout never freezes or escapes.
const (
	latMin, latMax   = -90.0, 90.0
	lonMin, lonMax   = -180.0, 180.0
	nodesMin         = 1200
	nodesMax         = 1600
	loadMin, loadMax = 8.0, 96.0
)

// telemetry is the fake readout state: coordinates, node count and load.
// It is a pure random walk with no connection to the scene.
type telemetry struct {
	Lat   float64
	Lon   float64
	Nodes int
	Load  float64
}

func newTelemetry(rng *rand.Rand) telemetry {
	return telemetry{
		Lat:   latMin + rng.Float64()*(latMax-latMin),
		Lon:   lonMin + rng.Float64()*(lonMax-lonMin),
		Nodes: nodesMin + rng.IntN(nodesMax-nodesMin),
		Load:  20 + rng.Float64()*50,
	}
}

func (t *telemetry) step(rng *rand.Rand) {
	t.Lat = walk(t.Lat, 0.05, latMin, latMax, rng)
	t.Lon = walk(t.Lon, 0.08, lonMin, lonMax, rng)
	t.Load = walk(t.Load, 2.5, loadMin, loadMax, rng)

	t.Nodes += rng.IntN(7) - 3
	if t.Nodes < nodesMin {
		t.Nodes = nodesMin
	} else if t.Nodes > nodesMax {
		t.Nodes = nodesMax
	}
}

// walk nudges v by up to ±step and reflects off the [lo, hi] bounds.
func walk(v, step, lo, hi float64, rng *rand.Rand) float64 {
	v += (rng.Float64()*2 - 1) * step
	if v < lo {
		v = 2*lo - v
	}
	if v > hi {
		v = 2*hi - v
	}
	return v
}
