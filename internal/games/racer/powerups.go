package racer

import "github.com/merrillholt/F1Game/internal/core"

// PowerUpKind identifies one of the collectible power-up types.
type PowerUpKind int

const (
	PowerShield PowerUpKind = iota
	PowerSlowMotion
	PowerSpeedBoost
	powerKindCount // Sentinel for counting types
)

// String returns the stable name used in logs.
func (k PowerUpKind) String() string {
	switch k {
	case PowerShield:
		return "shield"
	case PowerSlowMotion:
		return "slow_motion"
	case PowerSpeedBoost:
		return "speed_boost"
	default:
		return "unknown"
	}
}

// PowerUp is a collectible falling down the lane. Power-ups fall at their
// own fixed rate and are not affected by slow motion.
type PowerUp struct {
	Kind PowerUpKind
	X, Y float64

	size float64
	fall float64
}

// Advance moves the power-up down one tick.
func (p *PowerUp) Advance() {
	p.Y += p.fall
}

// Bounds returns the power-up's pickup rectangle.
func (p *PowerUp) Bounds() core.Rect {
	return core.Rect{X: p.X, Y: p.Y, W: p.size, H: p.size}
}

// OffScreen reports whether the power-up has fallen past the bottom edge.
// Missed power-ups disappear silently.
func (p *PowerUp) OffScreen(laneH float64) bool {
	return p.Y > laneH
}

// Effect is an active power-up effect with an absolute expiry tick.
type Effect struct {
	Kind      PowerUpKind
	UntilTick int
}

// TicksRemaining returns how many ticks the effect has left.
func (e *Effect) TicksRemaining(now int) int {
	remaining := e.UntilTick - now
	if remaining < 0 {
		return 0
	}
	return remaining
}

// EffectManager tracks active power-up effects. Each kind occupies at most
// one slot: collecting a power-up whose effect is already active refreshes
// the expiry to a full duration from now rather than stacking.
type EffectManager struct {
	effects []*Effect

	durations  [powerKindCount]int // Effect duration per kind, in ticks
	slowFactor float64             // Obstacle speed multiplier under slow motion
	fastFactor float64             // Car step multiplier under speed boost
}

// NewEffectManager derives tick durations from the configured second
// durations at the given tick rate.
func NewEffectManager(shieldSec, slowSec, boostSec, slowFactor, fastFactor float64, tickRate int) *EffectManager {
	em := &EffectManager{
		slowFactor: slowFactor,
		fastFactor: fastFactor,
	}
	em.durations[PowerShield] = int(shieldSec * float64(tickRate))
	em.durations[PowerSlowMotion] = int(slowSec * float64(tickRate))
	em.durations[PowerSpeedBoost] = int(boostSec * float64(tickRate))
	return em
}

// Reset clears all active effects.
func (em *EffectManager) Reset() {
	em.effects = em.effects[:0]
}

// Activate starts the effect for kind, or refreshes its expiry when it is
// already active. Returns the effect duration in ticks.
func (em *EffectManager) Activate(kind PowerUpKind, now int) int {
	duration := em.durations[kind]
	until := now + duration
	for _, e := range em.effects {
		if e.Kind == kind {
			e.UntilTick = until
			return duration
		}
	}
	em.effects = append(em.effects, &Effect{Kind: kind, UntilTick: until})
	return duration
}

// Expire removes effects whose expiry tick has passed and returns the kinds
// that expired this tick.
func (em *EffectManager) Expire(now int) []PowerUpKind {
	var expired []PowerUpKind
	kept := em.effects[:0]
	for _, e := range em.effects {
		if now >= e.UntilTick {
			expired = append(expired, e.Kind)
			continue
		}
		kept = append(kept, e)
	}
	em.effects = kept
	return expired
}

// Has reports whether the effect for kind is currently active.
func (em *EffectManager) Has(kind PowerUpKind) bool {
	for _, e := range em.effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// ShieldActive reports whether the car is currently shielded.
func (em *EffectManager) ShieldActive() bool {
	return em.Has(PowerShield)
}

// ObstacleSpeedFactor returns the multiplier applied to obstacle movement:
// the slow-motion factor while slow motion is active, otherwise 1.
func (em *EffectManager) ObstacleSpeedFactor() float64 {
	if em.Has(PowerSlowMotion) {
		return em.slowFactor
	}
	return 1
}

// CarStepFactor returns the multiplier applied to car steering: the boost
// factor while speed boost is active, otherwise 1.
func (em *EffectManager) CarStepFactor() float64 {
	if em.Has(PowerSpeedBoost) {
		return em.fastFactor
	}
	return 1
}

// SecondsRemaining returns the remaining effect time for kind in seconds,
// or 0 when the effect is not active.
func (em *EffectManager) SecondsRemaining(kind PowerUpKind, now, tickRate int) float64 {
	for _, e := range em.effects {
		if e.Kind == kind {
			return float64(e.TicksRemaining(now)) / float64(tickRate)
		}
	}
	return 0
}

// Active returns the live effect list, ordered by activation. The HUD uses
// this to show remaining effect time.
func (em *EffectManager) Active() []*Effect {
	return em.effects
}
