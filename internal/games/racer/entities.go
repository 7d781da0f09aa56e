// Package racer implements a vertical-scrolling arcade driving game.
// The player steers a car across a multi-lane road, dodging oncoming
// traffic that falls from the top of the screen, collecting power-ups and
// chasing a persistent high score.
//
// The simulation runs in a fixed virtual coordinate space (laneWidth x
// laneHeight units from config, default 400x600) that is independent of the
// terminal size; rendering scales virtual units to screen cells.
package racer

import "github.com/merrillholt/F1Game/internal/core"

// Car dimensions in virtual units. These are gameplay constants, not
// configuration: collision balance depends on them.
const (
	CarWidth     = 46.0
	CarHeight    = 90.0
	carBottomGap = 30.0 // Clearance between car and the bottom edge
)

// Car is the player vehicle. Only the horizontal position changes; the car
// sits at a fixed height near the bottom of the lane.
type Car struct {
	X, Y   float64
	Facing int // -1 steering left, 0 straight, 1 steering right; render hint

	step  float64 // Horizontal units per tick while steering
	laneW float64
}

// NewCar places the car centered at the bottom of the lane.
func NewCar(laneW, laneH, step float64) *Car {
	return &Car{
		X:     (laneW - CarWidth) / 2,
		Y:     laneH - CarHeight - carBottomGap,
		step:  step,
		laneW: laneW,
	}
}

// Move steers the car one tick in dir (-1 left, 0 straight, +1 right),
// scaled by the boost factor. The x position always stays within
// [0, laneWidth-CarWidth]; steering into a wall just pins the car there.
func (c *Car) Move(dir int, boostFactor float64) {
	c.Facing = dir
	if dir == 0 {
		return
	}
	c.X += float64(dir) * c.step * boostFactor
	c.X = core.ClampF(c.X, 0, c.laneW-CarWidth)
}

// Bounds returns the car's collision rectangle.
func (c *Car) Bounds() core.Rect {
	return core.Rect{X: c.X, Y: c.Y, W: CarWidth, H: CarHeight}
}

// ObstacleKind identifies one of the five traffic vehicle types.
type ObstacleKind int

const (
	KindNormal ObstacleKind = iota
	KindTruck
	KindSportsCar
	KindMotorcycle
	KindBus
	kindCount // Sentinel for counting types
)

// kindSpec is the per-type balance sheet: size, speed modifier applied to
// the session base speed, points awarded for a dodge, and spawn weight.
type kindSpec struct {
	name     string
	width    float64
	height   float64
	speedMod float64
	points   int
	weight   float64
}

var kindSpecs = [kindCount]kindSpec{
	KindNormal:     {"normal", 46, 90, 1.0, 1, 5.0},
	KindTruck:      {"truck", 50, 120, 0.8, 2, 2.0},
	KindSportsCar:  {"sports_car", 42, 80, 1.3, 3, 1.5},
	KindMotorcycle: {"motorcycle", 25, 60, 1.5, 2, 1.0},
	KindBus:        {"bus", 55, 150, 0.6, 4, 0.5},
}

func (k ObstacleKind) spec() kindSpec {
	if k < 0 || k >= kindCount {
		return kindSpecs[KindNormal]
	}
	return kindSpecs[k]
}

// String returns the stable name used in logs.
func (k ObstacleKind) String() string { return k.spec().name }

// Width returns the obstacle width in virtual units.
func (k ObstacleKind) Width() float64 { return k.spec().width }

// Height returns the obstacle height in virtual units.
func (k ObstacleKind) Height() float64 { return k.spec().height }

// SpeedModifier returns the multiplier applied to the session base speed.
func (k ObstacleKind) SpeedModifier() float64 { return k.spec().speedMod }

// Points returns the score awarded when this obstacle is dodged.
func (k ObstacleKind) Points() int { return k.spec().points }

// Weight returns the relative spawn weight.
func (k ObstacleKind) Weight() float64 { return k.spec().weight }

// Obstacle is one falling traffic vehicle. Velocity is not stored: it is
// derived every tick from the session base speed, the kind's modifier and
// the slow-motion factor, so speed changes apply instantly and slow motion
// restores itself when it expires.
type Obstacle struct {
	Kind ObstacleKind
	X, Y float64
}

// Advance moves the obstacle down one tick.
func (o *Obstacle) Advance(baseSpeed, slowFactor float64) {
	o.Y += baseSpeed * o.Kind.SpeedModifier() * slowFactor
}

// Bounds returns the obstacle's full rectangle. Collision tests inset this
// by the configured tolerance margins.
func (o *Obstacle) Bounds() core.Rect {
	return core.Rect{X: o.X, Y: o.Y, W: o.Kind.Width(), H: o.Kind.Height()}
}

// OffScreen reports whether the obstacle has fully passed the bottom edge,
// which counts as a dodge.
func (o *Obstacle) OffScreen(laneH float64) bool {
	return o.Y > laneH
}
