package hud

import (
	"math/rand/v2"
	"testing"
)

func TestTelemetryWalkStaysBounded(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 9))
	tele := newTelemetry(rng)

	for i := 0; i < 10000; i++ {
		tele.step(rng)
		if tele.Lat < latMin || tele.Lat > latMax {
			t.Fatalf("step %d: lat %v escaped", i, tele.Lat)
		}
		if tele.Lon < lonMin || tele.Lon > lonMax {
			t.Fatalf("step %d: lon %v escaped", i, tele.Lon)
		}
		if tele.Nodes < nodesMin || tele.Nodes > nodesMax {
			t.Fatalf("step %d: nodes %d escaped", i, tele.Nodes)
		}
		if tele.Load < loadMin || tele.Load > loadMax {
			t.Fatalf("step %d: load %v escaped", i, tele.Load)
		}
	}
}

func TestTelemetryWalkMoves(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 9))
	tele := newTelemetry(rng)
	start := tele

	moved := false
	for i := 0; i < 10; i++ {
		tele.step(rng)
		if tele.Lat != start.Lat || tele.Lon != start.Lon || tele.Load != start.Load {
			moved = true
			break
		}
	}
	if !moved {
		t.Fatal("telemetry froze")
	}
}
