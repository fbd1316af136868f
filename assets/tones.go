package assets

import (
	"encoding/binary"
	"math"

	cfg "github.com/automoto/hopper/config"
)

const (
	bytesPerFrame  = 4    // 16-bit little endian, two channels
	toneFadeLength = 0.02 // seconds of attack/release ramp
)

// TonePCM renders a tone as the signed 16-bit stereo PCM an audio.Player plays
func TonePCM(t cfg.Tone, sampleRate int) []byte {
	n := int(t.Duration * float64(sampleRate))
	if n < 0 {
		n = 0
	}

	pcm := make([]byte, n*bytesPerFrame)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.StartFreq + (t.EndFreq-t.StartFreq)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)
		v := uint16(int16(math.Sin(phase) * envelope(float64(i)/float64(sampleRate), t) * t.Volume * math.MaxInt16))

		binary.LittleEndian.PutUint16(pcm[i*bytesPerFrame:], v)
		binary.LittleEndian.PutUint16(pcm[i*bytesPerFrame+2:], v)
	}
	return pcm
}

// envelope ramps in and out so cues and loop seams do not click
func envelope(at float64, t cfg.Tone) float64 {
	fade := math.Min(toneFadeLength, t.Duration/2)
	if fade <= 0 {
		return 1
	}
	switch {
	case at < fade:
		return at / fade
	case at > t.Duration-fade:
		return math.Max(0, (t.Duration-at)/fade)
	}
	return 1
}
