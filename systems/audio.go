package systems

import (
	"log"
	"sync"

	"github.com/automoto/hopper/assets"
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalLoop         *audio.Player
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX synthesises every cue up front to avoid lag on first play
func PreloadAllSFX() {
	if cfg.Debug.Mute {
		return
	}
	initGlobalAudio()

	for id := range cfg.Sound.Tones {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

// UpdateAudio drains the cues queued this frame
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	if !cfg.Debug.Mute {
		initGlobalAudio()
		for _, soundID := range audioData.PendingSFX {
			playSFX(soundID)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// cueKind is how a queued sound ID is played
type cueKind int

const (
	cueOneShot cueKind = iota
	cueLoop            // replaces any running loop
	cueStopLoop
)

func cueKindOf(soundID cfg.SoundID) cueKind {
	if soundID == cfg.SoundChargeStop {
		return cueStopLoop
	}
	if cfg.Sound.Tones[soundID].Loop {
		return cueLoop
	}
	return cueOneShot
}

func playSFX(soundID cfg.SoundID) {
	switch cueKindOf(soundID) {
	case cueLoop:
		startLoop(soundID)
		return
	case cueStopLoop:
		stopLoop()
		return
	}

	if globalSFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		log.Printf("Warning: %v", err)
		return
	}
	player.SetVolume(globalSFXVolume)
	player.Play()
}

func startLoop(soundID cfg.SoundID) {
	stopLoop()

	player, err := globalAudioLoader.LoadLoop(soundID)
	if err != nil {
		log.Printf("Warning: %v", err)
		return
	}
	player.SetVolume(globalSFXVolume)
	player.Play()
	globalLoop = player
}

func stopLoop() {
	if globalLoop == nil {
		return
	}
	globalLoop.Pause()
	_ = globalLoop.Close()
	globalLoop = nil
}

// StopAllAudio silences loops left running by a scene that is going away
func StopAllAudio() {
	stopLoop()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
	if globalLoop != nil {
		globalLoop.SetVolume(volume)
	}
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
