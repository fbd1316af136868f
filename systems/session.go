package systems

import (
	"log"
	"math/rand"
	"time"

	"github.com/automoto/hopper/archetypes"
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/systems/factory"
	"github.com/automoto/hopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSession returns the entry holding the per-world singletons,
// creating it in the main menu state if needed
func GetOrCreateSession(e *ecs.ECS) *donburi.Entry {
	if entry, ok := components.Session.First(e.World); ok {
		return entry
	}

	seed := cfg.Debug.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	entry := archetypes.Session.Spawn(e)
	components.Session.SetValue(entry, components.SessionData{State: cfg.StateMainMenu})
	components.Clock.SetValue(entry, components.ClockData{Step: 1.0 / float64(cfg.C.TPS)})
	components.Random.SetValue(entry, components.RandomData{Rand: rand.New(rand.NewSource(seed))})
	resetRunState(entry)
	return entry
}

func resetRunState(entry *donburi.Entry) {
	components.Charge.SetValue(entry, components.ChargeData{})
	components.PrepareJump.SetValue(entry, components.PrepareJumpData{Remaining: cfg.Jump.PrepareDelay})
	components.Jump.SetValue(entry, components.NewJumpData())
	components.Fall.SetValue(entry, components.NewFallData())
	components.Score.SetValue(entry, components.ScoreData{})
	components.ScoreUpQueue.SetValue(entry, components.ScoreUpQueueData{})
}

func GetSession(e *ecs.ECS) *components.SessionData {
	return components.Session.Get(GetOrCreateSession(e))
}

func GetClock(e *ecs.ECS) *components.ClockData {
	return components.Clock.Get(GetOrCreateSession(e))
}

func GetRandom(e *ecs.ECS) *rand.Rand {
	return components.Random.Get(GetOrCreateSession(e)).Rand
}

func GetCharge(e *ecs.ECS) *components.ChargeData {
	return components.Charge.Get(GetOrCreateSession(e))
}

func GetPrepareJump(e *ecs.ECS) *components.PrepareJumpData {
	return components.PrepareJump.Get(GetOrCreateSession(e))
}

func GetJump(e *ecs.ECS) *components.JumpData {
	return components.Jump.Get(GetOrCreateSession(e))
}

func GetFall(e *ecs.ECS) *components.FallData {
	return components.Fall.Get(GetOrCreateSession(e))
}

func GetScore(e *ecs.ECS) *components.ScoreData {
	return components.Score.Get(GetOrCreateSession(e))
}

func GetScoreUpQueue(e *ecs.ECS) *components.ScoreUpQueueData {
	return components.ScoreUpQueue.Get(GetOrCreateSession(e))
}

// SetSeed reseeds the platform layout source
func SetSeed(e *ecs.ECS, seed int64) {
	components.Random.Get(GetOrCreateSession(e)).Rand = rand.New(rand.NewSource(seed))
}

// StartSession tears down the previous run (if any) and sets up a fresh one:
// player at the rest position, the first platform and the follow camera.
func StartSession(e *ecs.ECS) {
	entry := GetOrCreateSession(e)
	teardownRun(e)
	resetRunState(entry)

	factory.CreatePlayer(e)
	SpawnFirstPlatform(e)
	factory.CreateCamera(e)

	session := components.Session.Get(entry)
	session.State = cfg.StatePlaying
	session.Pending = cfg.TransitionNone

	PlaySFX(e, cfg.SoundGameStart)
	log.Println("Session started")
}

// EndSession moves the session to the game over state
func EndSession(e *ecs.ECS) {
	session := GetSession(e)
	if session.State == cfg.StateGameOver {
		return
	}
	session.State = cfg.StateGameOver
	log.Printf("Game over, score %d", GetScore(e).Value)
}

// RequestTransition records a transition applied at the start of the next frame
func RequestTransition(e *ecs.ECS, id cfg.TransitionID) {
	GetSession(e).Pending = id
}

// IsGameOver reports whether the run has ended
func IsGameOver(e *ecs.ECS) bool {
	return GetSession(e).State == cfg.StateGameOver
}

// NewUpdateSession creates the system applying pending transitions. onMenu is
// called after the run is torn down for TransitionToMenu.
func NewUpdateSession(onMenu func()) ecs.System {
	return func(e *ecs.ECS) {
		session := GetSession(e)

		// Keyboard / gamepad shortcuts for the game over buttons
		if session.State == cfg.StateGameOver && session.Pending == cfg.TransitionNone {
			input := getOrCreateInput(e)
			if GetAction(input, cfg.ActionMenuSelect).JustPressed {
				session.Pending = cfg.TransitionRestart
			} else if GetAction(input, cfg.ActionMenuBack).JustPressed {
				session.Pending = cfg.TransitionToMenu
			}
		}

		pending := session.Pending
		session.Pending = cfg.TransitionNone

		switch pending {
		case cfg.TransitionStart, cfg.TransitionRestart:
			StartSession(e)
		case cfg.TransitionToMenu:
			teardownRun(e)
			session.State = cfg.StateMainMenu
			if onMenu != nil {
				onMenu()
			}
		}
	}
}

// WithPlaying wraps a system so it only runs while a run is in progress
func WithPlaying(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetSession(e).State != cfg.StatePlaying {
			return
		}
		system(e)
	}
}

// WithRun wraps a cosmetic system so it keeps animating on the game over
// screen. It is idle in the main menu, where there is no run.
func WithRun(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetSession(e).State == cfg.StateMainMenu {
			return
		}
		system(e)
	}
}

// teardownRun removes every entity belonging to the current run
func teardownRun(e *ecs.ECS) {
	ClearPlatforms(e)

	var toRemove []*donburi.Entry
	collectAll := func(entry *donburi.Entry) {
		toRemove = append(toRemove, entry)
	}
	tags.Player.Each(e.World, collectAll)
	tags.ScoreUpEffect.Each(e.World, collectAll)
	tags.Spark.Each(e.World, collectAll)
	components.Camera.Each(e.World, collectAll)

	for _, entry := range toRemove {
		e.World.Remove(entry.Entity())
	}
}
