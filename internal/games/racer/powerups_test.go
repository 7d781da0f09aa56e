package racer

import "testing"

func newTestEffects() *EffectManager {
	// 3s shield, 5s slow motion, 2s boost at 60 ticks per second
	return NewEffectManager(3, 5, 2, 0.5, 1.5, 60)
}

func TestEffectActivate(t *testing.T) {
	em := newTestEffects()

	if em.Has(PowerShield) {
		t.Error("Expected no active effects initially")
	}

	ticks := em.Activate(PowerShield, 0)
	if ticks != 180 {
		t.Errorf("Expected 180 tick shield duration, got %d", ticks)
	}
	if !em.Has(PowerShield) {
		t.Error("Expected shield to be active")
	}
	if em.Has(PowerSlowMotion) || em.Has(PowerSpeedBoost) {
		t.Error("Expected only the shield to be active")
	}
}

func TestEffectRefreshExtendsInsteadOfStacking(t *testing.T) {
	em := newTestEffects()

	em.Activate(PowerShield, 0)
	em.Activate(PowerShield, 100)

	active := em.Active()
	if len(active) != 1 {
		t.Fatalf("Expected one shield slot, got %d", len(active))
	}
	if got := active[0].TicksRemaining(100); got != 180 {
		t.Errorf("Expected a full 180 ticks after refresh, got %d", got)
	}
}

func TestEffectExpire(t *testing.T) {
	em := newTestEffects()
	em.Activate(PowerShield, 0)     // Expires at 180
	em.Activate(PowerSpeedBoost, 0) // Expires at 120

	if expired := em.Expire(119); len(expired) != 0 {
		t.Errorf("Expected nothing expired at tick 119, got %v", expired)
	}

	expired := em.Expire(120)
	if len(expired) != 1 || expired[0] != PowerSpeedBoost {
		t.Errorf("Expected speed boost to expire at tick 120, got %v", expired)
	}
	if em.Has(PowerSpeedBoost) {
		t.Error("Expected boost gone after expiry")
	}
	if !em.Has(PowerShield) {
		t.Error("Expected shield still active")
	}

	expired = em.Expire(500)
	if len(expired) != 1 || expired[0] != PowerShield {
		t.Errorf("Expected shield to expire, got %v", expired)
	}
	if len(em.Active()) != 0 {
		t.Error("Expected no active effects after everything expired")
	}
}

func TestEffectFactors(t *testing.T) {
	em := newTestEffects()

	if em.ObstacleSpeedFactor() != 1 {
		t.Errorf("Expected neutral obstacle factor, got %v", em.ObstacleSpeedFactor())
	}
	if em.CarStepFactor() != 1 {
		t.Errorf("Expected neutral car factor, got %v", em.CarStepFactor())
	}

	em.Activate(PowerSlowMotion, 0)
	if em.ObstacleSpeedFactor() != 0.5 {
		t.Errorf("Expected obstacle factor 0.5, got %v", em.ObstacleSpeedFactor())
	}
	if em.CarStepFactor() != 1 {
		t.Error("Slow motion must not touch the car step")
	}

	em.Activate(PowerSpeedBoost, 0)
	if em.CarStepFactor() != 1.5 {
		t.Errorf("Expected car factor 1.5, got %v", em.CarStepFactor())
	}

	em.Activate(PowerShield, 0)
	if !em.ShieldActive() {
		t.Error("Expected shield active")
	}
	if len(em.Active()) != 3 {
		t.Errorf("Expected all three effects to coexist, got %d", len(em.Active()))
	}
}

func TestEffectSecondsRemaining(t *testing.T) {
	em := newTestEffects()
	em.Activate(PowerShield, 0)

	if got := em.SecondsRemaining(PowerShield, 0, 60); got != 3 {
		t.Errorf("Expected 3s remaining, got %v", got)
	}
	if got := em.SecondsRemaining(PowerShield, 60, 60); got != 2 {
		t.Errorf("Expected 2s remaining, got %v", got)
	}
	if got := em.SecondsRemaining(PowerSlowMotion, 0, 60); got != 0 {
		t.Errorf("Expected 0s for an inactive effect, got %v", got)
	}
}

func TestEffectReset(t *testing.T) {
	em := newTestEffects()
	em.Activate(PowerShield, 0)
	em.Activate(PowerSlowMotion, 0)

	em.Reset()
	if len(em.Active()) != 0 {
		t.Error("Expected reset to clear all effects")
	}
	if em.ObstacleSpeedFactor() != 1 {
		t.Error("Expected neutral factors after reset")
	}
}
