package systems

import (
	"math"
	"testing"

	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/tags"
	"github.com/go-gl/mathgl/mgl64"
)

func TestEnsureNextPlatformIdempotent(t *testing.T) {
	h := newHarness(t, 11)

	first, created := EnsureNextPlatform(h.ecs)
	if created {
		t.Fatal("the first tick should already have spawned Next")
	}
	for i := 0; i < 5; i++ {
		again, created := EnsureNextPlatform(h.ecs)
		if created || again.Entity() != first.Entity() {
			t.Fatalf("call %d created a second Next platform", i)
		}
	}
	if n := countTag(h.ecs.World, tags.NextPlatform); n != 1 {
		t.Errorf("next platforms = %d, want 1", n)
	}
	if n := countTag(h.ecs.World, tags.Platform); n != 2 {
		t.Errorf("platforms = %d, want 2", n)
	}
}

func TestNextPlatformPlacement(t *testing.T) {
	seenAxis := map[components.Axis]bool{}
	seenShape := map[components.Shape]bool{}

	for seed := int64(1); seed <= 64; seed++ {
		h := newHarness(t, seed)
		current := components.Transform.Get(MustCurrentPlatform(h.ecs.World)).Position
		nextEntry := MustNextPlatform(h.ecs.World)
		next := components.Transform.Get(nextEntry).Position

		if next.Y() != cfg.Platform.Height {
			t.Errorf("seed %d: next height %v, want %v", seed, next.Y(), cfg.Platform.Height)
		}

		axis := LayoutAxis(current, next)
		seenAxis[axis] = true
		seenShape[components.Platform.Get(nextEntry).Shape] = true

		var distance float64
		switch axis {
		case components.AxisX:
			distance = next.X() - current.X()
			if next.Z() != current.Z() {
				t.Errorf("seed %d: X layout drifted in Z", seed)
			}
		case components.AxisZ:
			distance = current.Z() - next.Z()
			if next.X() != current.X() {
				t.Errorf("seed %d: Z layout drifted in X", seed)
			}
		}
		if distance < cfg.Platform.MinDistance || distance >= cfg.Platform.MaxDistance {
			t.Errorf("seed %d: distance %v outside [%v, %v)", seed, distance, cfg.Platform.MinDistance, cfg.Platform.MaxDistance)
		}
	}

	if len(seenAxis) != 2 {
		t.Errorf("axes seen %v, want both", seenAxis)
	}
	if len(seenShape) != int(components.ShapeCount) {
		t.Errorf("shapes seen %v, want all", seenShape)
	}
}

func TestSameSeedSameLayout(t *testing.T) {
	a := newHarness(t, 99)
	b := newHarness(t, 99)

	pa := components.Transform.Get(MustNextPlatform(a.ecs.World)).Position
	pb := components.Transform.Get(MustNextPlatform(b.ecs.World)).Position
	if pa != pb {
		t.Errorf("layouts differ for the same seed: %v vs %v", pa, pb)
	}
}

func TestPromoteNextPlatform(t *testing.T) {
	h := newHarness(t, 12)
	oldCurrent := MustCurrentPlatform(h.ecs.World)
	next := MustNextPlatform(h.ecs.World)

	PromoteNextPlatform(h.ecs, next)

	current, err := CurrentPlatform(h.ecs.World)
	if err != nil {
		t.Fatalf("after promotion: %v", err)
	}
	if current.Entity() != next.Entity() {
		t.Error("promoted platform is not Current")
	}
	if got := MustNextPlatform(h.ecs.World); got != nil {
		t.Error("Next should be empty right after promotion")
	}
	if !oldCurrent.HasComponent(tags.Platform) || oldCurrent.HasComponent(tags.CurrentPlatform) || oldCurrent.HasComponent(tags.NextPlatform) {
		t.Error("previous Current should remain as an inert platform")
	}

	h.run(1)

	fresh := MustNextPlatform(h.ecs.World)
	if fresh == nil {
		t.Fatal("a new Next should be generated on the following tick")
	}
	from := components.Transform.Get(next).Position
	to := components.Transform.Get(fresh).Position
	d := math.Max(math.Abs(to.X()-from.X()), math.Abs(to.Z()-from.Z()))
	if d < cfg.Platform.MinDistance || d >= cfg.Platform.MaxDistance {
		t.Errorf("new Next is %v away from the promoted platform", d)
	}
	if n := countTag(h.ecs.World, tags.CurrentPlatform); n != 1 {
		t.Errorf("current platforms = %d, want 1", n)
	}
}

func TestClearPlatforms(t *testing.T) {
	h := newHarness(t, 13)
	ClearPlatforms(h.ecs)

	if n := countTag(h.ecs.World, tags.Platform); n != 0 {
		t.Errorf("platforms left = %d", n)
	}
	if _, err := CurrentPlatform(h.ecs.World); err == nil {
		t.Error("CurrentPlatform should fail with no platforms")
	}
	if _, err := Player(h.ecs.World); err != nil {
		t.Errorf("player should survive ClearPlatforms: %v", err)
	}
}

func TestFirstPlatformUnderPlayer(t *testing.T) {
	h := newHarness(t, 14)

	current := components.Transform.Get(MustCurrentPlatform(h.ecs.World)).Position
	if current != cfg.Platform.FirstPosition {
		t.Errorf("first platform at %v, want %v", current, cfg.Platform.FirstPosition)
	}
	if !h.playerPos().ApproxEqual(mgl64.Vec3{0, 1.5, 0}) {
		t.Errorf("player at %v, want rest position", h.playerPos())
	}
}
