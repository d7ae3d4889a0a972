// Package wavpreview renders a waveform table as a 16-bit mono WAV file so
// the signal can be inspected in an audio editor before flashing.
package wavpreview

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	bitDepth  = 16
	pcmFormat = 1
)

// Options controls how many periods are rendered and at which rate
type Options struct {
	SampleRate int // WAV sample rate; each table entry becomes one sample
	Periods    int // Number of table repetitions
	Levels     int // Amplitude levels of the table
}

// Samples maps table levels onto signed 16-bit PCM centred on the midpoint
func Samples(table []byte, levels int, periods int) []int {
	mid := float64(levels-1) / 2
	out := make([]int, 0, len(table)*periods)
	for p := 0; p < periods; p++ {
		for _, v := range table {
			s := (float64(v) - mid) / mid * 32767
			out = append(out, int(s))
		}
	}
	return out
}

// Render writes the table as a WAV stream to w
func Render(w io.WriteSeeker, table []byte, opts Options) error {
	if len(table) == 0 {
		return errors.New("wavpreview: empty table")
	}
	if opts.SampleRate <= 0 || opts.Levels < 2 {
		return fmt.Errorf("wavpreview: invalid options %+v", opts)
	}
	if opts.Periods <= 0 {
		opts.Periods = 1
	}

	enc := wav.NewEncoder(w, opts.SampleRate, bitDepth, 1, pcmFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: opts.SampleRate},
		Data:           Samples(table, opts.Levels, opts.Periods),
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavpreview: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavpreview: %w", err)
	}
	return nil
}
