package components

import (
	"math/rand"

	cfg "github.com/automoto/hopper/config"
	"github.com/yohamta/donburi"
)

// SessionData is the session-level state machine (singleton)
type SessionData struct {
	State   cfg.GameState
	Pending cfg.TransitionID // applied at the start of the next frame
}

var Session = donburi.NewComponentType[SessionData]()

// ClockData accumulates frame deltas (singleton)
type ClockData struct {
	Now   float64 // seconds since the world was created
	Delta float64 // seconds covered by the current frame
	Step  float64 // delta applied by the clock system each frame
}

var Clock = donburi.NewComponentType[ClockData]()

// RandomData is the random source used for platform layout (singleton)
type RandomData struct {
	Rand *rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()
