package config

// GameState is the session-level state read by menus and the HUD
type GameState int

const (
	StateMainMenu GameState = iota
	StatePlaying
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	}
	return "Unknown"
}

// TransitionID is a session transition requested by the UI
type TransitionID int

const (
	TransitionNone TransitionID = iota
	TransitionStart
	TransitionRestart
	TransitionToMenu
)
