package scene

import (
	"math"
	"testing"
)

func TestWheelZoom(t *testing.T) {
	cases := []struct {
		name   string
		start  float64
		deltaY float64
		want   float64
	}{
		{"zoom in one notch", 1.0, -100, 1.1},
		{"zoom out one notch", 1.0, 100, 0.9},
		{"clamped low", 0.6, 1e9, MinZoom},
		{"clamped high", 4.9, -1e9, MaxZoom},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Camera{TargetZoom: tc.start}
			c.Wheel(tc.deltaY)
			if math.Abs(c.TargetZoom-tc.want) > 1e-12 {
				t.Fatalf("target zoom %v, want %v", c.TargetZoom, tc.want)
			}
		})
	}
}

func TestZoomSmoothing(t *testing.T) {
	c := Camera{W: 800, H: 600, Zoom: 1, TargetZoom: 2}
	c.Advance(0)
	if math.Abs(c.Zoom-1.1) > 1e-12 {
		t.Fatalf("zoom after one frame = %v, want 1.1", c.Zoom)
	}
	for i := 0; i < 200; i++ {
		c.Advance(float64(i))
	}
	if math.Abs(c.Zoom-2) > 1e-3 {
		t.Fatalf("zoom did not converge: %v", c.Zoom)
	}
}

func TestPinch(t *testing.T) {
	c := Camera{TargetZoom: 1}

	c.Pinch(100)
	if c.TargetZoom != 1 {
		t.Fatalf("initial pinch contact changed zoom to %v", c.TargetZoom)
	}

	c.Pinch(110)
	want := 1 + 10*pinchZoomFactor
	if math.Abs(c.TargetZoom-want) > 1e-12 {
		t.Fatalf("target zoom %v after spread, want %v", c.TargetZoom, want)
	}

	c.PinchEnd()
	c.Pinch(300)
	if math.Abs(c.TargetZoom-want) > 1e-12 {
		t.Fatalf("pinch after end mutated zoom: %v", c.TargetZoom)
	}
}

func TestCenterPortraitShift(t *testing.T) {
	landscape := Camera{W: 800, H: 600}
	if got := landscape.CenterY(); got != 300 {
		t.Fatalf("landscape center Y = %v, want 300", got)
	}
	portrait := Camera{W: 600, H: 800}
	if got := portrait.CenterY(); got != 320 {
		t.Fatalf("portrait center Y = %v, want 320 (10%% lift)", got)
	}
}

func TestRotationMonotonic(t *testing.T) {
	c := Camera{W: 800, H: 600, Zoom: 1, TargetZoom: 1}
	prev := c.Rotation
	for i := 0; i < 100; i++ {
		c.Advance(float64(i) * 16.0)
		if c.Rotation <= prev {
			t.Fatalf("rotation regressed at frame %d: %v <= %v", i, c.Rotation, prev)
		}
		prev = c.Rotation
	}
}

func TestLookAtSmoothingAndBob(t *testing.T) {
	c := Camera{W: 800, H: 600, Zoom: 1, TargetZoom: 1}
	c.SetPointer(500, 300) // 100 right of center

	c.Advance(0)
	// One smoothing step toward (100*0.05, 0); bob at t=0 is (0, 12).
	wantX := 100 * lookTargetFactor * lookSmoothing
	if math.Abs(c.OffsetX()-wantX) > 1e-12 {
		t.Fatalf("offset X = %v, want %v", c.OffsetX(), wantX)
	}
	if math.Abs(c.OffsetY()-bobAmplitude) > 1e-12 {
		t.Fatalf("offset Y = %v, want bob %v", c.OffsetY(), bobAmplitude)
	}

	for i := 0; i < 500; i++ {
		c.Advance(0)
	}
	if math.Abs(c.OffsetX()-100*lookTargetFactor) > 1e-3 {
		t.Fatalf("look-at X did not converge: %v", c.OffsetX())
	}
}

func TestProjectStarCenterAndParallax(t *testing.T) {
	c := Camera{W: 800, H: 600, Zoom: 1, TargetZoom: 1}
	c.SetPointer(400, 300)
	c.Advance(0) // bob contributes (0, 12)

	onAxis := Star{Z: 1}
	sx, _, scale := c.ProjectStar(&onAxis)
	if sx != 400 {
		t.Fatalf("on-axis star X = %v, want center", sx)
	}
	if scale != 1 {
		t.Fatalf("scale at depth 1 = %v, want zoom", scale)
	}

	near := Star{Z: 0.5}
	far := Star{Z: 2}
	_, ny, _ := c.ProjectStar(&near)
	_, fy, _ := c.ProjectStar(&far)
	nearShift := math.Abs(ny - c.CenterY())
	farShift := math.Abs(fy - c.CenterY())
	if nearShift <= farShift {
		t.Fatalf("near star parallax %v not stronger than far %v", nearShift, farShift)
	}
}
