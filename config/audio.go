package config

// SoundID represents a logical sound cue
type SoundID int

const (
	SoundNone SoundID = iota
	SoundChargeStart
	SoundChargeStop
	SoundSuccess
	SoundFall
	SoundGameStart
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// Tone describes a synthesised cue: a sine sweep between two frequencies
type Tone struct {
	StartFreq float64 // Hz
	EndFreq   float64 // Hz
	Duration  float64 // seconds
	Volume    float64 // 0.0 - 1.0
	Loop      bool    // played on a repeating player until SoundChargeStop
}

// SoundConfig maps sound IDs to tones
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundChargeStart: {StartFreq: 220, EndFreq: 440, Duration: 1.0, Volume: 0.4, Loop: true},
			SoundSuccess:     {StartFreq: 660, EndFreq: 990, Duration: 0.18, Volume: 0.8},
			SoundFall:        {StartFreq: 300, EndFreq: 80, Duration: 0.5, Volume: 0.9},
			SoundGameStart:   {StartFreq: 440, EndFreq: 880, Duration: 0.3, Volume: 0.7},
		},
	}
}
