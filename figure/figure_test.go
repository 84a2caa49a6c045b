package figure

import (
	"bytes"
	"errors"
	"go/format"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-stimulus/dsp/core"
	"github.com/cwbudde/algo-stimulus/dsp/spectrum"
	"github.com/cwbudde/algo-stimulus/internal/testutil"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func requirePNG(t *testing.T, path string) {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.HasPrefix(raw, pngMagic) {
		t.Fatalf("%s is not a PNG file", path)
	}
}

func TestWaveformSave(t *testing.T) {
	data := testutil.DeterministicSine(50, 1000, 1, 200)
	times := core.Linspace(0, 0.2, len(data))

	p, err := Waveform(times, data)
	if err != nil {
		t.Fatalf("Waveform() error = %v", err)
	}
	if p.X.Label.Text != "Time [sec]" || p.Y.Label.Text != "Amplitude" {
		t.Fatalf("unexpected axis labels %q / %q", p.X.Label.Text, p.Y.Label.Text)
	}

	path := filepath.Join(t.TempDir(), "wave.png")
	if err := Save(p, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	requirePNG(t, path)
}

func TestWaveformErrors(t *testing.T) {
	if _, err := Waveform(nil, nil); !errors.Is(err, ErrNoData) {
		t.Fatalf("error = %v, want ErrNoData", err)
	}
	if _, err := Waveform([]float64{0}, []float64{0, 1}); !errors.Is(err, ErrMismatchedLength) {
		t.Fatalf("error = %v, want ErrMismatchedLength", err)
	}
}

func TestSpectrogramSave(t *testing.T) {
	data := testutil.DeterministicSine(1000, 8000, 1, 4000)
	sg, err := spectrum.Compute(data, 8000)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	p, err := Spectrogram(sg)
	if err != nil {
		t.Fatalf("Spectrogram() error = %v", err)
	}
	if p.Y.Label.Text != "Frequency [Hz]" {
		t.Fatalf("y label = %q", p.Y.Label.Text)
	}

	path := filepath.Join(t.TempDir(), "spectrogram.png")
	if err := Save(p, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	requirePNG(t, path)
}

func TestSpectrogramOfSilenceRenders(t *testing.T) {
	sg, err := spectrum.Compute(make([]float64, 1024), 8000)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	p, err := Spectrogram(sg)
	if err != nil {
		t.Fatalf("Spectrogram() error = %v", err)
	}
	if err := Save(p, filepath.Join(t.TempDir(), "silence.png")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
}

func TestSpectrogramGridFloorsZeroPower(t *testing.T) {
	g := newSpectrogramGrid(&spectrum.Spectrogram{
		Frequencies: []float64{0, 100},
		Times:       []float64{0.5},
		Power:       [][]float64{{0, 1}},
	})
	c, r := g.Dims()
	if c != 1 || r != 2 {
		t.Fatalf("Dims() = %d, %d; want 1, 2", c, r)
	}
	if g.Z(0, 0) != floorDB || g.Z(0, 1) != 0 {
		t.Fatalf("Z = %v, %v; want %v, 0", g.Z(0, 0), g.Z(0, 1), float64(floorDB))
	}
	if g.X(0) != 0.5 || g.Y(1) != 100 {
		t.Fatalf("X/Y = %v/%v", g.X(0), g.Y(1))
	}
}

func TestSpectrogramNil(t *testing.T) {
	if _, err := Spectrogram(nil); !errors.Is(err, ErrNoData) {
		t.Fatalf("error = %v, want ErrNoData", err)
	}
}

func TestSourceIsGofmtClean(t *testing.T) {
	src, err := os.ReadFile("figure.go")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	got, err := format.Source(src)
	if err != nil {
		t.Fatalf("format.Source() error = %v", err)
	}
	if !bytes.Equal(got, src) {
		t.Fatal("figure.go is not gofmt formatted")
	}
}
