package assets

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/hopper/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesises and caches sound cues
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // Cache rendered PCM for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a cue and caches it without creating a player.
// Call this at startup to avoid lag on first play.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	_, err := l.rendered(id)
	return err
}

// LoadSFX returns a new one-shot player for the cue
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	pcm, err := l.rendered(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(pcm), nil
}

// LoadLoop returns a player repeating the cue until paused. Only tones
// configured with Loop can be looped.
func (l *AudioLoader) LoadLoop(id cfg.SoundID) (*audio.Player, error) {
	if !cfg.Sound.Tones[id].Loop {
		return nil, fmt.Errorf("sound %d is not a looping tone", id)
	}
	pcm, err := l.rendered(id)
	if err != nil {
		return nil, err
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	return l.context.NewPlayer(loop)
}

func (l *AudioLoader) rendered(id cfg.SoundID) ([]byte, error) {
	if cached, ok := l.sfxCache[id]; ok {
		return cached, nil
	}

	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return nil, fmt.Errorf("no tone for sound %d", id)
	}

	pcm := TonePCM(tone, l.context.SampleRate())
	l.sfxCache[id] = pcm
	return pcm, nil
}
