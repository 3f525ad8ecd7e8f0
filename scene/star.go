package scene

import "math/rand/v2"

const (
	// Depth runs from the near plane toward the far plane. Stars drift down
	// through this range and are recycled to MaxDepth when they cross MinDepth.
	MinDepth = 0.2
	MaxDepth = 4.0

	starDrift = 0.0015 // depth units per frame toward the camera

	starDensity = 350.0 // surface pixels per star
	minStars    = 600
	maxStars    = 2500

	// A sample rectangle scaled by spreadFactor*depth keeps angular density
	// uniform across depth layers.
	spreadFactor = 1.5

	minTwinkleOpacity = 0.2

	clusterChance = 0.04
)

// ClusterNode is a small companion light rigidly attached to its parent star.
// It is never recycled on its own; it lives and dies with the parent.
type ClusterNode struct {
	OffsetX float64
	OffsetY float64
	Size    float64
	Phase   float64 // twinkle phase in [0,1), wraps by subtraction
}

// Star is a point light in view space. X and Y are sampled proportionally to
// Z so that projection by 1/Z yields a depth-independent screen spread.
type Star struct {
	X, Y, Z      float64
	Size         float64
	BaseOpacity  float64
	Opacity      float64
	TwinkleSpeed float64
	Cluster      []ClusterNode
}

// starCount returns the population for a surface of the given size.
func starCount(w, h int) int {
	n := int(float64(w) * float64(h) / starDensity)
	if n < minStars {
		return minStars
	}
	if n > maxStars {
		return maxStars
	}
	return n
}

// generateStars builds a fresh star population for a w x h surface. Safe to
// call repeatedly; the result wholesale-replaces any previous population.
func generateStars(w, h int, rng *rand.Rand) []Star {
	stars := make([]Star, starCount(w, h))
	for i := range stars {
		z := MinDepth + rng.Float64()*(MaxDepth-MinDepth)
		st := Star{
			Z:            z,
			Size:         0.5 + rng.Float64()*1.5,
			BaseOpacity:  0.3 + rng.Float64()*0.5,
			Opacity:      rng.Float64(),
			TwinkleSpeed: 0.002 + rng.Float64()*0.01,
		}
		st.X, st.Y = sampleSpread(w, h, z, rng)
		if rng.Float64() < 0.5 {
			st.TwinkleSpeed = -st.TwinkleSpeed
		}
		if rng.Float64() < clusterChance {
			st.Cluster = generateCluster(rng)
		}
		stars[i] = st
	}
	return stars
}

// sampleSpread picks a view-space position inside the frustum-consistent
// rectangle for depth z, centered on the origin.
func sampleSpread(w, h int, z float64, rng *rand.Rand) (x, y float64) {
	x = (rng.Float64() - 0.5) * float64(w) * spreadFactor * z
	y = (rng.Float64() - 0.5) * float64(h) * spreadFactor * z
	return x, y
}

func generateCluster(rng *rand.Rand) []ClusterNode {
	nodes := make([]ClusterNode, 3+rng.IntN(3))
	for i := range nodes {
		nodes[i] = ClusterNode{
			OffsetX: (rng.Float64() - 0.5) * 40,
			OffsetY: (rng.Float64() - 0.5) * 40,
			Size:    0.3 + rng.Float64()*0.8,
			Phase:   rng.Float64(),
		}
	}
	return nodes
}

// advance moves the star one frame: drift toward the camera with far-plane
// recycling, then the twinkle oscillation and cluster phases. A recycled star
// skips this frame's twinkle so it reappears at exactly zero opacity.
func (st *Star) advance(w, h int, rng *rand.Rand) {
	st.Z -= starDrift
	if st.Z <= MinDepth {
		st.Z = MaxDepth
		st.Opacity = 0
		st.X, st.Y = sampleSpread(w, h, st.Z, rng)
	} else {
		st.Opacity += st.TwinkleSpeed
		if st.Opacity > 1 {
			st.Opacity = 1
			st.TwinkleSpeed = -st.TwinkleSpeed
		} else if st.Opacity < minTwinkleOpacity && st.TwinkleSpeed < 0 {
			// No low clamp: recycled stars start at 0 and fade in.
			st.TwinkleSpeed = -st.TwinkleSpeed
		}
	}

	for i := range st.Cluster {
		n := &st.Cluster[i]
		n.Phase += 0.01
		if n.Phase > 1 {
			n.Phase -= 1
		}
	}
}
