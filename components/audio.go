package components

import (
	cfg "github.com/automoto/hopper/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound cues emitted during the frame (singleton)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
