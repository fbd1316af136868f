package systems

import (
	"testing"

	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/go-gl/mathgl/mgl64"
)

func TestStraightFallStateMachine(t *testing.T) {
	h := newHarness(t, 41)
	origin := mgl64.Vec3{1.5, 1.5, 0}
	components.Transform.Get(MustPlayer(h.ecs.World)).Position = origin
	GetFall(h.ecs).Begin(origin, components.FallPlan{Kind: components.FallStraight})

	prev := origin.Y()
	frames := 0
	for !IsGameOver(h.ecs) {
		if frames > 600 {
			t.Fatal("fall never ended")
		}
		h.run(1)
		frames++

		pos := h.playerPos()
		if pos.Y() > prev {
			t.Fatalf("frame %d: player rose to %v", frames, pos.Y())
		}
		if pos.X() != origin.X() || pos.Z() != origin.Z() {
			t.Fatalf("straight fall drifted to %v", pos)
		}
		prev = pos.Y()
	}

	fall := GetFall(h.ecs)
	if !fall.Completed {
		t.Error("fall should be completed at game over")
	}
	// (1.5 - 0.5) / 0.7 seconds plus the frame that notices
	want := int((origin.Y()-cfg.Fall.StraightFloor)/cfg.Fall.DescentRate*float64(cfg.C.TPS)) + 2
	if frames < want-2 || frames > want+2 {
		t.Errorf("fall took %d frames, want about %d", frames, want)
	}
	if n := countSound(h.ecs, cfg.SoundFall); n != 1 {
		t.Errorf("fall cue played %d times", n)
	}
}

func TestTiltFallPivots(t *testing.T) {
	h := newHarness(t, 42)
	origin := mgl64.Vec3{2.1, 1.5, 0}
	components.Transform.Get(MustPlayer(h.ecs.World)).Position = origin
	GetFall(h.ecs).Begin(origin, components.FallPlan{Kind: components.FallTilt, Direction: mgl64.Vec3{0, 0, 1}})

	pivot := mgl64.Vec3{origin.X(), cfg.Player.InitialPosition.Y() - cfg.Fall.TiltPivotDrop, origin.Z()}
	radius := origin.Sub(pivot).Len()

	for !GetFall(h.ecs).TiltCompleted {
		h.run(1)
		if d := h.playerPos().Sub(pivot).Len(); d < radius-1e-6 || d > radius+1e-6 {
			t.Fatalf("player left the pivot circle: distance %v, want %v", d, radius)
		}
		if IsGameOver(h.ecs) {
			t.Fatal("game over before the tilt finished")
		}
	}

	// Tilting about +Z swings the player toward -X
	if h.playerPos().X() >= origin.X() {
		t.Errorf("tilt about +Z moved player to %v", h.playerPos())
	}

	h.runUntil(600, func() bool { return IsGameOver(h.ecs) })
	if y := h.playerPos().Y(); y >= cfg.Fall.TiltFloor {
		t.Errorf("ended at height %v", y)
	}
}

func TestFallBeginWhileRunningPanics(t *testing.T) {
	h := newHarness(t, 43)
	GetFall(h.ecs).Begin(mgl64.Vec3{}, components.FallPlan{Kind: components.FallStraight})

	defer func() {
		if recover() == nil {
			t.Error("second Begin should panic")
		}
	}()
	GetFall(h.ecs).Begin(mgl64.Vec3{}, components.FallPlan{Kind: components.FallTilt, Direction: mgl64.Vec3{1, 0, 0}})
}

func TestCurrentEdgeTiltSwingsSideways(t *testing.T) {
	tests := []struct {
		axis  components.Axis
		swing mgl64.Vec3
	}{
		{components.AxisX, mgl64.Vec3{0, 0, -1}},
		{components.AxisZ, mgl64.Vec3{1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.axis.String(), func(t *testing.T) {
			h := newHarness(t, 44)
			origin := mgl64.Vec3{0.8, 1.5, 0}
			components.Transform.Get(MustPlayer(h.ecs.World)).Position = origin
			GetFall(h.ecs).Begin(origin, components.FallPlan{Kind: components.FallTilt, Direction: currentTiltDirection(tt.axis)})

			h.runUntil(600, func() bool { return GetFall(h.ecs).TiltCompleted })

			moved := h.playerPos().Sub(origin)
			moved[1] = 0
			if moved.Normalize().Sub(tt.swing).Len() > 1e-6 {
				t.Errorf("player swung along %v, want %v", moved, tt.swing)
			}
		})
	}
}
