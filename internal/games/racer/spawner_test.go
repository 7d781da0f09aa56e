package racer

import "testing"

// everyTickSpawner spawns an obstacle on every call, which makes
// distribution tests cheap.
func everyTickSpawner(seed int64) *Spawner {
	return NewSpawner(seed, 400, 8, 3, 1, 1, false, 0, 30, 3)
}

func TestSpawnerDeterminism(t *testing.T) {
	s1 := NewSpawner(42, 400, 8, 3, 90, 140, true, 0.05, 30, 3)
	s2 := NewSpawner(42, 400, 8, 3, 90, 140, true, 0.05, 30, 3)

	for i := 0; i < 2000; i++ {
		o1 := s1.TrySpawnObstacle(0)
		o2 := s2.TrySpawnObstacle(0)
		if (o1 == nil) != (o2 == nil) {
			t.Fatalf("Spawn timing diverged at tick %d", i)
		}
		if o1 != nil && (o1.Kind != o2.Kind || o1.X != o2.X || o1.Y != o2.Y) {
			t.Fatalf("Spawned obstacles diverged at tick %d: %+v vs %+v", i, o1, o2)
		}

		p1 := s1.TrySpawnPowerUp()
		p2 := s2.TrySpawnPowerUp()
		if (p1 == nil) != (p2 == nil) {
			t.Fatalf("Power-up timing diverged at tick %d", i)
		}
		if p1 != nil && (p1.Kind != p2.Kind || p1.X != p2.X) {
			t.Fatalf("Spawned power-ups diverged at tick %d", i)
		}
	}
}

func TestSpawnerObstaclePlacement(t *testing.T) {
	s := everyTickSpawner(7)

	for i := 0; i < 500; i++ {
		o := s.TrySpawnObstacle(0)
		if o == nil {
			t.Fatal("Expected a spawn every tick with a 1-tick interval")
		}
		if o.X < 8 {
			t.Fatalf("Obstacle x %v violates the left margin", o.X)
		}
		if o.X+o.Kind.Width() > 400-8 {
			t.Fatalf("Obstacle right edge %v violates the right margin", o.X+o.Kind.Width())
		}
		if o.Y != -o.Kind.Height() {
			t.Fatalf("Expected spawn fully above the lane, got y %v", o.Y)
		}
	}
}

func TestSpawnerWeightedKinds(t *testing.T) {
	s := everyTickSpawner(99)

	counts := make(map[ObstacleKind]int)
	for i := 0; i < 5000; i++ {
		o := s.TrySpawnObstacle(0)
		counts[o.Kind]++
	}

	// The weight table is 5.0 / 2.0 / 1.5 / 1.0 / 0.5; with 5000 samples
	// the ordering is unambiguous.
	if counts[KindNormal] <= counts[KindTruck] {
		t.Errorf("Expected normal (%d) above truck (%d)", counts[KindNormal], counts[KindTruck])
	}
	if counts[KindTruck] <= counts[KindSportsCar] {
		t.Errorf("Expected truck (%d) above sports car (%d)", counts[KindTruck], counts[KindSportsCar])
	}
	if counts[KindSportsCar] <= counts[KindMotorcycle] {
		t.Errorf("Expected sports car (%d) above motorcycle (%d)", counts[KindSportsCar], counts[KindMotorcycle])
	}
	if counts[KindMotorcycle] <= counts[KindBus] {
		t.Errorf("Expected motorcycle (%d) above bus (%d)", counts[KindMotorcycle], counts[KindBus])
	}
	if counts[KindBus] == 0 {
		t.Error("Expected at least one bus in 5000 spawns")
	}
}

func TestSpawnerIntervalBounds(t *testing.T) {
	s := NewSpawner(3, 400, 8, 3, 90, 140, false, 0, 30, 3)

	gap := 0
	spawns := 0
	for i := 0; i < 5000; i++ {
		gap++
		if o := s.TrySpawnObstacle(0); o != nil {
			if gap < 90 || gap > 140 {
				t.Fatalf("Spawn gap %d outside [90, 140]", gap)
			}
			gap = 0
			spawns++
		}
	}
	if spawns < 30 {
		t.Errorf("Expected around 40 spawns over 5000 ticks, got %d", spawns)
	}
}

func TestSpawnerHoldsAtCapacity(t *testing.T) {
	s := NewSpawner(11, 400, 8, 3, 5, 5, false, 0, 30, 3)

	// The countdown runs out while the field is full; nothing spawns.
	for i := 0; i < 20; i++ {
		if o := s.TrySpawnObstacle(3); o != nil {
			t.Fatal("Expected no spawn while at the obstacle cap")
		}
	}

	// The moment a slot frees, the held spawn fires.
	if o := s.TrySpawnObstacle(0); o == nil {
		t.Error("Expected an immediate spawn once below the cap")
	}
}

func TestSpawnerPowerUpChance(t *testing.T) {
	s := NewSpawner(21, 400, 8, 3, 1000, 1000, true, 0.01, 30, 3)

	counts := make(map[PowerUpKind]int)
	total := 0
	for i := 0; i < 20000; i++ {
		if p := s.TrySpawnPowerUp(); p != nil {
			counts[p.Kind]++
			total++
			if p.X < 0 || p.X+30 > 400 {
				t.Fatalf("Power-up x %v out of lane", p.X)
			}
			if p.Y != -30 {
				t.Fatalf("Expected power-up to spawn above the lane, got y %v", p.Y)
			}
		}
	}

	// 1% per tick over 20000 ticks lands near 200.
	if total < 100 || total > 300 {
		t.Errorf("Expected roughly 200 power-ups, got %d", total)
	}
	for kind := PowerUpKind(0); kind < powerKindCount; kind++ {
		if counts[kind] == 0 {
			t.Errorf("Expected at least one %s power-up", kind)
		}
	}
}

func TestSpawnerPowerUpsDisabled(t *testing.T) {
	s := NewSpawner(5, 400, 8, 3, 1000, 1000, false, 0.5, 30, 3)

	for i := 0; i < 5000; i++ {
		if s.TrySpawnPowerUp() != nil {
			t.Fatal("Expected no power-ups while disabled")
		}
	}
}
