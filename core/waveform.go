package core

import "math"

// Waveform is one period of duty-cycle levels, one byte per sample
type Waveform []byte

// MaxLevels is the widest amplitude range a byte sample can carry
const MaxLevels = 256

// SineTable returns one period of a sine wave sampled samples times, with
// amplitudes centred on levels/2 and spanning levels-2 steps.
func SineTable(samples, levels int) (Waveform, error) {
	if samples < 1 || samples > MaxTransferLength {
		return nil, invalid("sample count " + itoa(samples))
	}
	if levels < 2 || levels > MaxLevels {
		return nil, invalid("amplitude levels " + itoa(levels))
	}

	half := levels / 2
	wave := make(Waveform, samples)
	for i := range wave {
		v := float64(half-1)*math.Sin(float64(i)*2*math.Pi/float64(samples)) + float64(half) + 0.5
		wave[i] = byte(v)
	}
	return wave, nil
}

// Peak returns the smallest and largest sample
func (w Waveform) Peak() (lo, hi byte) {
	if len(w) == 0 {
		return 0, 0
	}
	lo, hi = w[0], w[0]
	for _, v := range w[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
