package wavpreview

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
)

func TestSamples(t *testing.T) {
	got := Samples([]byte{0, 1, 2}, 3, 2)
	want := []int{-32767, 0, 32767, -32767, 0, 32767}
	if len(got) != len(want) {
		t.Fatalf("Expected %d samples, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sample %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sine.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	table := []byte{32, 40, 47, 52, 55, 55, 52, 47, 40, 32}
	if err := Render(f, table, Options{SampleRate: 48000, Periods: 4, Levels: 64}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	f.Close()

	r, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		t.Fatal("Rendered file is not a valid WAV file")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer failed: %v", err)
	}

	if dec.SampleRate != 48000 || dec.NumChans != 1 || dec.BitDepth != 16 {
		t.Errorf("Unexpected format: rate=%d chans=%d depth=%d", dec.SampleRate, dec.NumChans, dec.BitDepth)
	}
	if len(buf.Data) != len(table)*4 {
		t.Errorf("Expected %d samples, got %d", len(table)*4, len(buf.Data))
	}
	want := Samples(table, 64, 1)
	for i, v := range want {
		if buf.Data[i] != v || buf.Data[i+len(table)] != v {
			t.Errorf("Sample %d: expected %d, got %d", i, v, buf.Data[i])
		}
	}
}

func TestRenderRejects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	defer f.Close()

	if err := Render(f, nil, Options{SampleRate: 1, Levels: 2}); err == nil {
		t.Error("Expected error for empty table")
	}
	if err := Render(f, []byte{1}, Options{SampleRate: 0, Levels: 2}); err == nil {
		t.Error("Expected error for zero sample rate")
	}
	if err := Render(f, []byte{1}, Options{SampleRate: 1, Levels: 1}); err == nil {
		t.Error("Expected error for single level")
	}
}
