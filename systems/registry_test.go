package systems

import (
	"errors"
	"testing"

	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/systems/factory"
	"github.com/automoto/hopper/tags"
	"github.com/go-gl/mathgl/mgl64"
)

func TestRegistryInvariants(t *testing.T) {
	tests := []struct {
		name  string
		setup func(h *harness)
		check func(h *harness) error
		count int
	}{
		{
			name: "two current platforms",
			setup: func(h *harness) {
				factory.CreatePlatform(h.ecs, mgl64.Vec3{9, 0.5, 0}, components.ShapeBox, cfg.White, tags.CurrentPlatform)
			},
			check: func(h *harness) error { _, err := CurrentPlatform(h.ecs.World); return err },
			count: 2,
		},
		{
			name:  "no current platform",
			setup: func(h *harness) { ClearPlatforms(h.ecs) },
			check: func(h *harness) error { _, err := CurrentPlatform(h.ecs.World); return err },
			count: 0,
		},
		{
			name: "two next platforms",
			setup: func(h *harness) {
				factory.CreatePlatform(h.ecs, mgl64.Vec3{0, 0.5, -9}, components.ShapeCylinder, cfg.White, tags.NextPlatform)
			},
			check: func(h *harness) error { _, err := NextPlatform(h.ecs.World); return err },
			count: 2,
		},
		{
			name:  "no player",
			setup: func(h *harness) { h.ecs.World.Remove(MustPlayer(h.ecs.World).Entity()) },
			check: func(h *harness) error { _, err := Player(h.ecs.World); return err },
			count: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, 21)
			tt.setup(h)

			err := tt.check(h)
			var invariant *InvariantError
			if !errors.As(err, &invariant) {
				t.Fatalf("error = %v, want *InvariantError", err)
			}
			if invariant.Count != tt.count {
				t.Errorf("count = %d, want %d", invariant.Count, tt.count)
			}
		})
	}
}

func TestMissingNextIsNotAnError(t *testing.T) {
	h := newHarness(t, 22)
	h.ecs.World.Remove(MustNextPlatform(h.ecs.World).Entity())

	next, err := NextPlatform(h.ecs.World)
	if err != nil || next != nil {
		t.Errorf("NextPlatform = %v, %v; want nil, nil", next, err)
	}
}

func TestMustAccessorsPanic(t *testing.T) {
	h := newHarness(t, 23)
	factory.CreatePlatform(h.ecs, mgl64.Vec3{9, 0.5, 0}, components.ShapeBox, cfg.White, tags.CurrentPlatform)

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("recovered %v, want an error", r)
		}
		var invariant *InvariantError
		if !errors.As(err, &invariant) {
			t.Errorf("panic value %v does not wrap *InvariantError", err)
		}
	}()
	MustCurrentPlatform(h.ecs.World)
	t.Error("MustCurrentPlatform did not panic")
}
