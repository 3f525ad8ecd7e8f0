package scene

const (
	connSpawnChance = 0.03

	// Connections only start on mid-field stars; very near or far endpoints
	// read as visual noise.
	connMinDepth = 0.5
	connMaxDepth = 3.0

	connCandidates  = 20
	connRangeFactor = 50000.0 // squared screen distance budget per unit depth
	connDepthGap    = 0.5

	connGrowRate = 0.04
	connHoldRate = 0.005
	connFadeRate = 0.015

	// Holding hands over to fading once life decays below this share of the
	// connection's max life.
	connHoldExit = 0.8
)

// ConnState tags a connection's lifecycle phase. Transitions only ever run
// forward: growing, holding, fading, gone.
type ConnState uint8

const (
	ConnGrowing ConnState = iota
	ConnHolding
	ConnFading
)

// Connection is a transient arc between two stars, referenced by index into
// the scene's star slice. The indices are borrowed, never owned: a resize
// invalidates them, and a connection holding a stale index is dropped without
// being dereferenced.
type Connection struct {
	A, B    int
	Life    float64 // normalized, [0,1]
	State   ConnState
	MaxLife float64
}

// trySpawnConnection rolls the per-frame spawn chance and, on success, links a
// random mid-field star to the nearest qualifying candidate on screen. Absent
// candidates the frame simply yields no new connection.
func (s *Scene) trySpawnConnection() {
	if s.rng.Float64() >= connSpawnChance {
		return
	}
	if len(s.stars) == 0 {
		return
	}

	ai := s.rng.IntN(len(s.stars))
	a := &s.stars[ai]
	if a.Z <= connMinDepth || a.Z >= connMaxDepth {
		return
	}
	ax, ay, _ := s.cam.ProjectStar(a)

	maxDistSq := connRangeFactor * a.Z
	best := -1
	bestDistSq := maxDistSq
	for i := 0; i < connCandidates; i++ {
		bi := s.rng.IntN(len(s.stars))
		if bi == ai {
			continue
		}
		b := &s.stars[bi]
		if diff := b.Z - a.Z; diff >= connDepthGap || diff <= -connDepthGap {
			continue
		}
		bx, by, _ := s.cam.ProjectStar(b)
		dx := bx - ax
		dy := by - ay
		if d := dx*dx + dy*dy; d < bestDistSq {
			bestDistSq = d
			best = bi
		}
	}
	if best < 0 {
		return
	}

	s.conns = append(s.conns, Connection{
		A:       ai,
		B:       best,
		State:   ConnGrowing,
		MaxLife: 0.6 + s.rng.Float64()*0.4,
	})
}

// stepConnections advances every connection's state machine by one frame.
// Iteration runs in reverse index order so removals stay safe.
func (s *Scene) stepConnections() {
	for i := len(s.conns) - 1; i >= 0; i-- {
		c := &s.conns[i]
		if c.A >= len(s.stars) || c.B >= len(s.stars) {
			s.removeConnection(i)
			continue
		}

		switch c.State {
		case ConnGrowing:
			c.Life += connGrowRate
			if c.Life >= c.MaxLife {
				c.State = ConnHolding
			}
		case ConnHolding:
			c.Life -= connHoldRate
			if c.Life < c.MaxLife*connHoldExit {
				c.State = ConnFading
			}
		case ConnFading:
			c.Life -= connFadeRate
		}

		if c.Life <= 0 {
			s.removeConnection(i)
		}
	}
}

func (s *Scene) removeConnection(i int) {
	s.conns = append(s.conns[:i], s.conns[i+1:]...)
}
