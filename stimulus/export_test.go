package stimulus

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-stimulus/dsp/signal"
	"github.com/cwbudde/algo-stimulus/dsp/spectrum"
	"github.com/cwbudde/algo-stimulus/wavfile"
)

func TestSaveWAVRoundTrip(t *testing.T) {
	want := []float64{-1, -0.5, 0, 0.5, 1}
	s := mustNew(t, 5, 1)
	s.data = append([]float64(nil), want...)

	for _, depth := range []wavfile.BitDepth{wavfile.BitDepth16, wavfile.BitDepth32} {
		t.Run(depth.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "roundtrip.wav")
			if err := s.SaveWAV(path, depth); err != nil {
				t.Fatalf("SaveWAV() error = %v", err)
			}

			got, err := wavfile.Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got.SampleRate != 1 {
				t.Fatalf("SampleRate = %d, want 1", got.SampleRate)
			}
			if len(got.Data) != len(want) {
				t.Fatalf("len = %d, want %d", len(got.Data), len(want))
			}
			step := depth.QuantizationStep()
			for i := range want {
				if math.Abs(got.Data[i]-want[i]) > step {
					t.Fatalf("sample %d: got %v, want %v within %v", i, got.Data[i], want[i], step)
				}
			}
		})
	}
}

func TestSaveWAVRoundsSampleRate(t *testing.T) {
	s := mustNew(t, 0.01, 44100.4)
	if err := s.PureTone(1000); err != nil {
		t.Fatalf("PureTone() error = %v", err)
	}
	path := filepath.Join(t.TempDir(), "tone.wav")
	if err := s.SaveWAV(path, wavfile.BitDepth16); err != nil {
		t.Fatalf("SaveWAV() error = %v", err)
	}
	got, err := wavfile.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.SampleRate != 44100 {
		t.Fatalf("SampleRate = %d, want 44100", got.SampleRate)
	}
	if len(got.Data) != s.NumSamples() {
		t.Fatalf("len = %d, want %d", len(got.Data), s.NumSamples())
	}
}

func TestSaveWAVErrors(t *testing.T) {
	dir := t.TempDir()

	empty := mustNew(t, 0.01, 8000)
	if err := empty.SaveWAV(filepath.Join(dir, "empty.wav"), wavfile.BitDepth16); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("SaveWAV() without data error = %v, want ErrInvalidParameter", err)
	}

	s := mustNew(t, 0.01, 8000)
	if err := s.Silence(); err != nil {
		t.Fatalf("Silence() error = %v", err)
	}
	path := filepath.Join(dir, "bad.wav")
	if err := s.SaveWAV(path, wavfile.BitDepth(42)); !errors.Is(err, wavfile.ErrUnsupportedBitDepth) {
		t.Fatalf("SaveWAV() error = %v, want ErrUnsupportedBitDepth", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("failed SaveWAV left a file behind: %v", err)
	}

	slow := mustNew(t, 10, 0.3)
	if err := slow.Silence(); err != nil {
		t.Fatalf("Silence() error = %v", err)
	}
	if err := slow.SaveWAV(filepath.Join(dir, "slow.wav"), wavfile.BitDepth16); !errors.Is(err, wavfile.ErrInvalidSampleRate) {
		t.Fatalf("SaveWAV() error = %v, want ErrInvalidSampleRate", err)
	}
}

func TestSpectrogramPeak(t *testing.T) {
	s := mustNew(t, 0.5, 8000)
	if err := s.PureTone(1000); err != nil {
		t.Fatalf("PureTone() error = %v", err)
	}
	sg, err := s.Spectrogram()
	if err != nil {
		t.Fatalf("Spectrogram() error = %v", err)
	}

	seg := sg.Power[len(sg.Power)/2]
	best := 0
	for i, p := range seg {
		if p > seg[best] {
			best = i
		}
	}
	if got := sg.Frequencies[best]; math.Abs(got-1000) > 8000.0/256 {
		t.Fatalf("peak at %v Hz, want 1000 Hz", got)
	}
}

func TestSpectrogramWithoutData(t *testing.T) {
	s := mustNew(t, 0.01, 8000)
	if _, err := s.Spectrogram(); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("Spectrogram() error = %v, want ErrInvalidParameter", err)
	}
}

func TestPlots(t *testing.T) {
	s := mustNew(t, 0.1, 8000)
	if err := s.Chirp(100, 3000, signal.ChirpLinear); err != nil {
		t.Fatalf("Chirp() error = %v", err)
	}
	dir := t.TempDir()

	wave := filepath.Join(dir, "waveform.png")
	if err := s.PlotWaveform(wave); err != nil {
		t.Fatalf("PlotWaveform() error = %v", err)
	}
	sgram := filepath.Join(dir, "spectrogram.png")
	if err := s.PlotSpectrogram(sgram, spectrum.WithSegmentLength(128)); err != nil {
		t.Fatalf("PlotSpectrogram() error = %v", err)
	}

	for _, path := range []string{wave, sgram} {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat(%s) error = %v", path, err)
		}
		if info.Size() == 0 {
			t.Fatalf("%s is empty", path)
		}
	}
}

func TestPlotsWithoutData(t *testing.T) {
	s := mustNew(t, 0.01, 8000)
	dir := t.TempDir()
	if err := s.PlotWaveform(filepath.Join(dir, "w.png")); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("PlotWaveform() error = %v, want ErrInvalidParameter", err)
	}
	if err := s.PlotSpectrogram(filepath.Join(dir, "s.png")); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("PlotSpectrogram() error = %v, want ErrInvalidParameter", err)
	}
}
