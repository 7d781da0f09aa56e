package racer

import "testing"

func TestNewCarStartsCentered(t *testing.T) {
	car := NewCar(400, 600, 10)

	wantX := (400.0 - CarWidth) / 2
	if car.X != wantX {
		t.Errorf("Expected car x %v, got %v", wantX, car.X)
	}
	wantY := 600.0 - CarHeight - carBottomGap
	if car.Y != wantY {
		t.Errorf("Expected car y %v, got %v", wantY, car.Y)
	}
	if car.Facing != 0 {
		t.Errorf("Expected car to start facing straight, got %d", car.Facing)
	}
}

func TestCarMove(t *testing.T) {
	car := NewCar(400, 600, 10)
	startX := car.X

	car.Move(-1, 1)
	if car.X != startX-10 {
		t.Errorf("Expected x %v after moving left, got %v", startX-10, car.X)
	}
	if car.Facing != -1 {
		t.Errorf("Expected facing -1, got %d", car.Facing)
	}

	car.Move(1, 1)
	if car.X != startX {
		t.Errorf("Expected x %v after moving back right, got %v", startX, car.X)
	}
	if car.Facing != 1 {
		t.Errorf("Expected facing 1, got %d", car.Facing)
	}

	car.Move(0, 1)
	if car.X != startX {
		t.Errorf("Expected x unchanged when not steering, got %v", car.X)
	}
	if car.Facing != 0 {
		t.Errorf("Expected facing 0 when not steering, got %d", car.Facing)
	}
}

func TestCarMoveClampsAtEdges(t *testing.T) {
	car := NewCar(400, 600, 10)

	for i := 0; i < 50; i++ {
		car.Move(-1, 1)
	}
	if car.X != 0 {
		t.Errorf("Expected car pinned at left wall, got x %v", car.X)
	}

	for i := 0; i < 50; i++ {
		car.Move(1, 1)
	}
	if want := 400 - CarWidth; car.X != want {
		t.Errorf("Expected car pinned at right wall x %v, got %v", want, car.X)
	}
}

func TestCarMoveBoostFactor(t *testing.T) {
	car := NewCar(400, 600, 10)
	startX := car.X

	car.Move(1, 1.5)
	if car.X != startX+15 {
		t.Errorf("Expected boosted step of 15, got %v", car.X-startX)
	}
}

func TestObstacleKindTable(t *testing.T) {
	for k := ObstacleKind(0); k < kindCount; k++ {
		if k.Width() <= 0 || k.Height() <= 0 {
			t.Errorf("Kind %s has non-positive size", k)
		}
		if k.SpeedModifier() <= 0 {
			t.Errorf("Kind %s has non-positive speed modifier", k)
		}
		if k.Points() <= 0 {
			t.Errorf("Kind %s has non-positive points", k)
		}
		if k.Weight() <= 0 {
			t.Errorf("Kind %s has non-positive weight", k)
		}
		if k.String() == "unknown" {
			t.Errorf("Kind %d has no name", k)
		}
	}

	// Spot-check the balance extremes.
	if KindMotorcycle.SpeedModifier() != 1.5 {
		t.Errorf("Expected motorcycle modifier 1.5, got %v", KindMotorcycle.SpeedModifier())
	}
	if KindBus.SpeedModifier() != 0.6 {
		t.Errorf("Expected bus modifier 0.6, got %v", KindBus.SpeedModifier())
	}
	if KindBus.Points() != 4 {
		t.Errorf("Expected bus to pay 4 points, got %d", KindBus.Points())
	}
	if KindNormal.Weight() <= KindBus.Weight() {
		t.Error("Expected normal cars to be more common than buses")
	}
}

func TestObstacleAdvance(t *testing.T) {
	o := &Obstacle{Kind: KindTruck, X: 100, Y: 50}

	o.Advance(5, 1)
	if o.Y != 54 { // 5 * 0.8 truck modifier
		t.Errorf("Expected y 54, got %v", o.Y)
	}

	o.Advance(5, 0.5)
	if o.Y != 56 { // Slow motion halves it
		t.Errorf("Expected y 56 under slow motion, got %v", o.Y)
	}
}

func TestObstacleOffScreen(t *testing.T) {
	o := &Obstacle{Kind: KindNormal, X: 0, Y: 600}
	if o.OffScreen(600) {
		t.Error("Obstacle with its top on the edge should still be on screen")
	}
	o.Y = 600.1
	if !o.OffScreen(600) {
		t.Error("Obstacle past the bottom edge should be off screen")
	}
}

func TestPowerUpAdvance(t *testing.T) {
	p := &PowerUp{Kind: PowerShield, X: 50, Y: 10, size: 30, fall: 3}

	p.Advance()
	if p.Y != 13 {
		t.Errorf("Expected y 13, got %v", p.Y)
	}

	b := p.Bounds()
	if b.W != 30 || b.H != 30 {
		t.Errorf("Expected 30x30 bounds, got %vx%v", b.W, b.H)
	}
}

func TestPowerUpKindNames(t *testing.T) {
	names := map[PowerUpKind]string{
		PowerShield:     "shield",
		PowerSlowMotion: "slow_motion",
		PowerSpeedBoost: "speed_boost",
	}
	for kind, want := range names {
		if got := kind.String(); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
}

func TestCollisionInsetForgiveness(t *testing.T) {
	car := NewCar(400, 600, 10)
	// An obstacle brushing the car's edge within the tolerance margin
	// does not register as a hit.
	o := &Obstacle{Kind: KindNormal, X: car.X - KindNormal.Width() + 4, Y: car.Y}
	if car.Bounds().Intersects(o.Bounds().Inset(5, 15)) {
		t.Error("Graze inside the tolerance margin should not collide")
	}
	o.X = car.X - KindNormal.Width() + 10
	if !car.Bounds().Intersects(o.Bounds().Inset(5, 15)) {
		t.Error("Deeper overlap should collide")
	}
}
