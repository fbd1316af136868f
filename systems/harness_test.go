package systems

import (
	"testing"

	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/systems/factory"
	"github.com/automoto/hopper/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// harness runs the play scene's systems headless, with the jump action
// driven by held instead of a device
type harness struct {
	t    *testing.T
	ecs  *ecs.ECS
	held bool
}

func newHarness(t *testing.T, seed int64) *harness {
	t.Helper()
	h := &harness{t: t, ecs: ecs.NewECS(donburi.NewWorld())}
	SetSeed(h.ecs, seed)

	h.ecs.AddSystem(UpdateClock)
	h.ecs.AddSystem(func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}
		SetActionPressed(e, cfg.ActionJump, h.held)
	})
	h.ecs.AddSystem(NewUpdateSession(nil))
	h.ecs.AddSystem(WithPlaying(UpdatePrepareJump))
	h.ecs.AddSystem(WithPlaying(UpdatePlatforms))
	h.ecs.AddSystem(WithPlaying(UpdateCamera))
	h.ecs.AddSystem(WithPlaying(UpdateJump))
	h.ecs.AddSystem(WithPlaying(UpdateJumpAnimation))
	h.ecs.AddSystem(WithPlaying(UpdateFall))
	h.ecs.AddSystem(WithRun(UpdateChargeVisuals))
	h.ecs.AddSystem(WithRun(UpdateScorePopups))

	RequestTransition(h.ecs, cfg.TransitionStart)
	h.ecs.Update()
	if GetSession(h.ecs).State != cfg.StatePlaying {
		t.Fatalf("session did not start: %v", GetSession(h.ecs).State)
	}
	return h
}

// layout replaces the generated platforms with a known Current and Next
func (h *harness) layout(current, next mgl64.Vec3, currentShape, nextShape components.Shape) (*donburi.Entry, *donburi.Entry) {
	ClearPlatforms(h.ecs)
	c := factory.CreatePlatform(h.ecs, current, currentShape, cfg.White, tags.CurrentPlatform)
	n := factory.CreatePlatform(h.ecs, next, nextShape, cfg.White, tags.NextPlatform)
	GetPrepareJump(h.ecs).Remaining = 0
	return c, n
}

func (h *harness) run(frames int) {
	for i := 0; i < frames; i++ {
		h.ecs.Update()
	}
}

// charge holds the jump action for frames ticks, then releases it
func (h *harness) charge(frames int) {
	h.held = true
	h.run(frames)
	h.held = false
	h.run(1)
}

// runUntil ticks until cond holds, failing after limit frames
func (h *harness) runUntil(limit int, cond func() bool) {
	h.t.Helper()
	for i := 0; i < limit; i++ {
		if cond() {
			return
		}
		h.ecs.Update()
	}
	if !cond() {
		h.t.Fatalf("condition not reached within %d frames", limit)
	}
}

func (h *harness) playerPos() mgl64.Vec3 {
	return components.Transform.Get(MustPlayer(h.ecs.World)).Position
}

func countTag(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func countSound(e *ecs.ECS, id cfg.SoundID) int {
	n := 0
	for _, s := range GetOrCreateAudio(e).PendingSFX {
		if s == id {
			n++
		}
	}
	return n
}
