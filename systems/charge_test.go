package systems

import (
	"testing"

	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

func TestSquashWhileCharging(t *testing.T) {
	h := newHarness(t, 51)
	h.layout(mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{3, 0.5, 0}, components.ShapeBox, components.ShapeBox)

	player := components.Transform.Get(MustPlayer(h.ecs.World))
	platform := components.Transform.Get(MustCurrentPlatform(h.ecs.World))

	h.held = true
	h.run(60)

	if player.Scale.X() <= 1 || player.Scale.Z() <= 1 || player.Scale.Y() >= 1 {
		t.Errorf("player scale %v after one second of charge", player.Scale)
	}
	if platform.Scale.Y() >= 1 || platform.Scale.X() != 1 {
		t.Errorf("platform scale %v after one second of charge", platform.Scale)
	}

	// Hold long enough to hit every limit
	h.run(60 * 10)
	if player.Scale.X() != cfg.Player.MaxSquashXZ || player.Scale.Y() != cfg.Player.MinSquashY {
		t.Errorf("player scale %v, want clamped to (%v, %v)", player.Scale, cfg.Player.MaxSquashXZ, cfg.Player.MinSquashY)
	}
	if platform.Scale.Y() != cfg.Platform.MinSquashY {
		t.Errorf("platform y scale %v, want %v", platform.Scale.Y(), cfg.Platform.MinSquashY)
	}
}

func TestSquashRecoversAfterRelease(t *testing.T) {
	h := newHarness(t, 52)
	_, next := h.layout(mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{3, 0.5, 0}, components.ShapeBox, components.ShapeBox)
	oldCurrent := MustCurrentPlatform(h.ecs.World)

	h.charge(60)
	h.run(int(float32(cfg.C.TPS)*cfg.Player.SquashRecovery) + 2)

	one := mgl64.Vec3{1, 1, 1}
	if got := components.Transform.Get(MustPlayer(h.ecs.World)).Scale; got != one {
		t.Errorf("player scale %v, want %v", got, one)
	}
	if got := components.Transform.Get(oldCurrent).Scale; got != one {
		t.Errorf("launch platform scale %v, want %v", got, one)
	}
	if got := components.Transform.Get(next).Scale; got != one {
		t.Errorf("landing platform scale %v, want %v", got, one)
	}
	if oldCurrent.HasComponent(components.SquashRecovery) {
		t.Error("recovery tween should be removed once finished")
	}
}

func TestSparksWhileCharging(t *testing.T) {
	h := newHarness(t, 53)
	h.layout(mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{3, 0.5, 0}, components.ShapeBox, components.ShapeBox)

	h.held = true
	h.run(1)
	if n := countTag(h.ecs.World, tags.Spark); n != cfg.ChargeEffect.SparksPerTick {
		t.Fatalf("sparks after the first charging frame = %d, want %d", n, cfg.ChargeEffect.SparksPerTick)
	}

	center := h.playerPos()
	components.Spark.Each(h.ecs.World, func(entry *donburi.Entry) {
		if d := components.Spark.Get(entry).Position.Sub(center).Len(); d > cfg.ChargeEffect.Radius+1e-9 {
			t.Errorf("spark %v from the player, want within %v", d, cfg.ChargeEffect.Radius)
		}
	})

	// One burst per interval: three more bursts land within 3.5 intervals
	h.run(int(3.5 * cfg.ChargeEffect.SpawnInterval * float64(cfg.C.TPS)))
	if n := countTag(h.ecs.World, tags.Spark); n != 4*cfg.ChargeEffect.SparksPerTick {
		t.Errorf("sparks after four bursts = %d, want %d", n, 4*cfg.ChargeEffect.SparksPerTick)
	}

	h.held = false
	h.run(1)
	h.run(int(float64(cfg.ChargeEffect.Lifetime)*float64(cfg.C.TPS)) + 5)
	if n := countTag(h.ecs.World, tags.Spark); n != 0 {
		t.Errorf("sparks still alive after their lifetime: %d", n)
	}
}
