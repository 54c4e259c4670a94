package audio

import (
	"encoding/binary"
	"math"

	"github.com/borgmon/riseandpi/pkg/models"
)

const (
	sampleRate = 44100
	amplitude  = 0.6
)

// toneFormat is the fixed format of all synthesized sounds.
var toneFormat = wavFormat{SampleRate: sampleRate, Channels: 1, BitDepth: 16}

// synthesize renders one loop of the named sound as signed 16-bit LE mono
// PCM. Unknown sounds fall back to the classic pattern.
func synthesize(sound models.Sound) []byte {
	var buf []byte
	switch sound {
	case models.SoundBeep:
		buf = appendTone(buf, 1000, 0.4)
		buf = appendSilence(buf, 0.4)
	case models.SoundRooster:
		// A crow-like rise, hold, and fall.
		buf = appendSweep(buf, 500, 1100, 0.25)
		buf = appendTone(buf, 1100, 0.2)
		buf = appendSweep(buf, 1100, 600, 0.35)
		buf = appendSilence(buf, 0.8)
	case models.SoundChime:
		// C5, E5, G5 struck in sequence.
		for _, freq := range []float64{523.25, 659.25, 783.99} {
			buf = appendTone(buf, freq, 0.35)
			buf = appendSilence(buf, 0.05)
		}
		buf = appendSilence(buf, 0.6)
	case models.SoundBirdsong:
		for i := 0; i < 3; i++ {
			buf = appendSweep(buf, 2200, 3100, 0.08)
			buf = appendSweep(buf, 3100, 2400, 0.06)
			buf = appendSilence(buf, 0.1)
		}
		buf = appendSilence(buf, 0.7)
	default:
		// Classic: four short beeps.
		for i := 0; i < 4; i++ {
			buf = appendTone(buf, 880, 0.15)
			buf = appendSilence(buf, 0.1)
		}
		buf = appendSilence(buf, 0.5)
	}
	return buf
}

func appendTone(buf []byte, freq, seconds float64) []byte {
	return appendSweep(buf, freq, freq, seconds)
}

// appendSweep writes a sine sweep from f0 to f1 with a short attack/release
// envelope so the loop has no clicks.
func appendSweep(buf []byte, f0, f1, seconds float64) []byte {
	samples := int(seconds * sampleRate)
	phase := 0.0
	for i := 0; i < samples; i++ {
		progress := float64(i) / float64(samples)
		freq := f0 + (f1-f0)*progress
		phase += 2 * math.Pi * freq / sampleRate

		env := 1.0
		attack := int(0.01 * sampleRate)
		if i < attack {
			env = float64(i) / float64(attack)
		} else if i > samples-attack {
			env = float64(samples-i) / float64(attack)
		}

		sample := int16(amplitude * env * math.Sin(phase) * math.MaxInt16)
		buf = binary.LittleEndian.AppendUint16(buf, uint16(sample))
	}
	return buf
}

func appendSilence(buf []byte, seconds float64) []byte {
	return append(buf, make([]byte, 2*int(seconds*sampleRate))...)
}
