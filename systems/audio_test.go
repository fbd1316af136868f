package systems

import (
	"testing"

	cfg "github.com/automoto/hopper/config"
)

func TestCueKind(t *testing.T) {
	tests := []struct {
		sound cfg.SoundID
		want  cueKind
	}{
		{cfg.SoundChargeStart, cueLoop},
		{cfg.SoundChargeStop, cueStopLoop},
		{cfg.SoundSuccess, cueOneShot},
		{cfg.SoundFall, cueOneShot},
		{cfg.SoundGameStart, cueOneShot},
	}
	for _, tt := range tests {
		if got := cueKindOf(tt.sound); got != tt.want {
			t.Errorf("cueKindOf(%d) = %d, want %d", tt.sound, got, tt.want)
		}
	}
}

func TestCueKindFollowsToneConfig(t *testing.T) {
	tone := cfg.Sound.Tones[cfg.SoundSuccess]
	tone.Loop = true
	cfg.Sound.Tones[cfg.SoundSuccess] = tone
	defer func() {
		tone.Loop = false
		cfg.Sound.Tones[cfg.SoundSuccess] = tone
	}()

	if got := cueKindOf(cfg.SoundSuccess); got != cueLoop {
		t.Errorf("looping tone played as %d, want loop", got)
	}
}
