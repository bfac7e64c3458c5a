package arkanoid

import (
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/geom"
)

func TestSimpleRNGDeterministic(t *testing.T) {
	a, b := NewSimpleRNG(42), NewSimpleRNG(42)
	for range 100 {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("same seed produced different sequences")
		}
	}
	if NewSimpleRNG(0).State() != 1 {
		t.Error("zero seed not replaced")
	}
	if NewSimpleRNG(3).Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
}

func TestTrySpawn(t *testing.T) {
	cfg := DefaultPowerUpConfig()

	cfg.SpawnChance = 0
	pm := NewPowerUpManager(1, cfg)
	for range 50 {
		if _, ok := pm.TrySpawn(geom.Vec(5, 5)); ok {
			t.Fatal("spawned with zero chance")
		}
	}

	cfg.SpawnChance = 100
	cfg.WeightDisruption, cfg.WeightSlow, cfg.WeightExpand, cfg.WeightPlayer = 0, 0, 0, 0
	cfg.WeightCatch = 1
	pm = NewPowerUpManager(1, cfg)
	c, ok := pm.TrySpawn(geom.Vec(5, 5))
	if !ok {
		t.Fatal("did not spawn with full chance")
	}
	if c.Type != CapsuleCatch {
		t.Errorf("Type = %v, want Catch", c.Type)
	}
	if got := c.Bounds().Center(); got != geom.Vec(5, 5) {
		t.Errorf("capsule center = %v, want (5,5)", got)
	}
}

func TestCapsulesFallAndDrop(t *testing.T) {
	cfg := DefaultPowerUpConfig()
	cfg.FallSpeed = 1
	pm := NewPowerUpManager(1, cfg)
	zone := geom.NewRect(0, 0, 26, 22)

	pm.Capsules = append(pm.Capsules,
		&Capsule{Type: CapsuleSlow, body: newCapsuleBody(5, 10, 1)},
		&Capsule{Type: CapsuleExpand, body: newCapsuleBody(8, 21.5, 1)},
	)
	pm.Update(zone)

	if len(pm.Capsules) != 1 || pm.Capsules[0].Type != CapsuleSlow {
		t.Fatalf("capsules after update = %d", len(pm.Capsules))
	}
	if y := pm.Capsules[0].Bounds().Center().Y; y != 11 {
		t.Errorf("capsule y = %v, want 11", y)
	}

	if _, ok := pm.Collect(geom.NewRect(0, 20, 4, 1)); ok {
		t.Error("collected a capsule out of reach")
	}
	typ, ok := pm.Collect(geom.NewRect(4, 10.5, 4, 1))
	if !ok || typ != CapsuleSlow || len(pm.Capsules) != 0 {
		t.Errorf("Collect() = %v, %v; %d left", typ, ok, len(pm.Capsules))
	}
}

func TestEffects(t *testing.T) {
	pm := NewPowerUpManager(1, DefaultPowerUpConfig())

	pm.AddEffect(EffectSlow, 0, 10)
	pm.AddEffect(EffectExpand, 0, 20)
	pm.AddEffect(EffectSlow, 5, 10) // extends

	if len(pm.Effects) != 2 {
		t.Fatalf("effects = %d, want 2", len(pm.Effects))
	}
	if got := pm.Effects[0].TicksRemaining(5); got != 10 {
		t.Errorf("TicksRemaining() = %d, want 10", got)
	}

	if expired := pm.ExpireEffects(15); len(expired) != 1 || expired[0] != EffectSlow {
		t.Errorf("ExpireEffects(15) = %v, want [Slow]", expired)
	}
	if !pm.HasEffect(EffectExpand) || pm.HasEffect(EffectSlow) {
		t.Error("wrong effects left")
	}
	if !pm.RemoveEffect(EffectExpand) || pm.RemoveEffect(EffectExpand) {
		t.Error("RemoveEffect() should succeed once")
	}
}
