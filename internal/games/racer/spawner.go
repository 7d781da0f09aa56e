package racer

import "math/rand"

// Spawner decides when and where traffic and power-ups appear. All
// randomness flows through a single seeded source so a session is fully
// reproducible from its seed.
type Spawner struct {
	rng *rand.Rand

	laneW        float64
	margin       float64 // Obstacles keep this distance from the lane edges
	maxObstacles int

	intervalMin int // Obstacle spawn interval bounds, in ticks
	intervalMax int
	nextSpawnIn int // Ticks until the next obstacle spawn fires

	powerUpsOn    bool
	powerUpChance float64 // Per-tick spawn probability
	powerUpSize   float64
	powerUpFall   float64
}

// NewSpawner builds a spawner for one session.
func NewSpawner(seed int64, laneW, margin float64, maxObstacles, intervalMin, intervalMax int,
	powerUpsOn bool, powerUpChance, powerUpSize, powerUpFall float64) *Spawner {
	s := &Spawner{
		laneW:         laneW,
		margin:        margin,
		maxObstacles:  maxObstacles,
		intervalMin:   intervalMin,
		intervalMax:   intervalMax,
		powerUpsOn:    powerUpsOn,
		powerUpChance: powerUpChance,
		powerUpSize:   powerUpSize,
		powerUpFall:   powerUpFall,
	}
	s.Reset(seed)
	return s
}

// Reset reseeds the random source and draws a fresh spawn interval.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.nextSpawnIn = s.drawInterval()
}

// drawInterval picks the next obstacle spawn delay uniformly from the
// configured [min, max] range.
func (s *Spawner) drawInterval() int {
	if s.intervalMax <= s.intervalMin {
		return s.intervalMin
	}
	return s.intervalMin + s.rng.Intn(s.intervalMax-s.intervalMin+1)
}

// TrySpawnObstacle advances the spawn countdown one tick and returns a new
// obstacle when it fires. The countdown holds at zero while the field is at
// capacity, so a spawn fires as soon as a slot frees up.
func (s *Spawner) TrySpawnObstacle(liveCount int) *Obstacle {
	if s.nextSpawnIn > 0 {
		s.nextSpawnIn--
	}
	if s.nextSpawnIn > 0 || liveCount >= s.maxObstacles {
		return nil
	}
	s.nextSpawnIn = s.drawInterval()
	kind := s.rollKind()
	return &Obstacle{
		Kind: kind,
		X:    s.rollX(kind.Width()),
		Y:    -kind.Height(), // Spawn fully above the lane
	}
}

// rollKind picks an obstacle type by cumulative weight.
func (s *Spawner) rollKind() ObstacleKind {
	var total float64
	for k := ObstacleKind(0); k < kindCount; k++ {
		total += k.Weight()
	}
	roll := s.rng.Float64() * total
	var cumulative float64
	for k := ObstacleKind(0); k < kindCount; k++ {
		cumulative += k.Weight()
		if roll < cumulative {
			return k
		}
	}
	return kindCount - 1
}

// rollX picks a horizontal position keeping the margin from both edges.
func (s *Spawner) rollX(width float64) float64 {
	span := s.laneW - width - 2*s.margin
	if span <= 0 {
		return s.margin
	}
	return s.margin + s.rng.Float64()*span
}

// TrySpawnPowerUp makes the independent per-tick power-up draw and returns
// a new power-up when it hits.
func (s *Spawner) TrySpawnPowerUp() *PowerUp {
	if !s.powerUpsOn || s.rng.Float64() >= s.powerUpChance {
		return nil
	}
	kind := PowerUpKind(s.rng.Intn(int(powerKindCount)))
	span := s.laneW - s.powerUpSize
	if span < 0 {
		span = 0
	}
	return &PowerUp{
		Kind: kind,
		X:    s.rng.Float64() * span,
		Y:    -s.powerUpSize,
		size: s.powerUpSize,
		fall: s.powerUpFall,
	}
}
