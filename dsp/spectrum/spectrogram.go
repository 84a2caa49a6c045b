package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-stimulus/dsp/core"
	"github.com/cwbudde/algo-stimulus/dsp/window"
)

// Errors returned by spectrogram computation.
var (
	ErrEmptyInput        = errors.New("spectrum: input needs at least 2 samples")
	ErrInvalidSampleRate = errors.New("spectrum: sample rate must be positive and finite")
	ErrInvalidSegment    = errors.New("spectrum: invalid segment configuration")
)

const (
	defaultSegmentLength = 256
	defaultTukeyAlpha    = 0.25
)

// Spectrogram holds a one-sided power spectral density per analysis segment.
type Spectrogram struct {
	Frequencies []float64   // bin centre frequencies in Hz
	Times       []float64   // segment centre times in seconds
	Power       [][]float64 // Power[segment][bin], units²/Hz
}

// Option configures spectrogram computation.
type Option func(*config)

type config struct {
	segmentLength int
	overlap       int // <0 selects segmentLength/8
	window        window.Type
	alpha         float64
}

func defaultConfig() config {
	return config{
		segmentLength: defaultSegmentLength,
		overlap:       -1,
		window:        window.TypeTukey,
		alpha:         defaultTukeyAlpha,
	}
}

// WithSegmentLength sets the number of samples per segment (default 256).
// Segments longer than the input are shortened to the input length.
func WithSegmentLength(n int) Option {
	return func(c *config) {
		c.segmentLength = n
	}
}

// WithOverlap sets the number of samples shared by neighbouring segments
// (default segment length / 8).
func WithOverlap(n int) Option {
	return func(c *config) {
		c.overlap = n
	}
}

// WithWindow selects the segment window. alpha only affects TypeTukey.
func WithWindow(t window.Type, alpha float64) Option {
	return func(c *config) {
		c.window = t
		c.alpha = alpha
	}
}

// Compute returns the short-time power spectral density of data.
//
// Each segment has its mean removed, is multiplied by a periodic window and
// transformed at its own length, so bins are fs/segmentLength apart. Bins
// are scaled by 1/(fs·Σw²) and every bin except DC and, for even lengths,
// Nyquist is doubled to fold in the negative frequencies.
func Compute(data []float64, sampleRate float64, opts ...Option) (*Spectrogram, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrEmptyInput, len(data))
	}
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	segLen := cfg.segmentLength
	if segLen < 2 {
		return nil, fmt.Errorf("%w: segment length %d < 2", ErrInvalidSegment, segLen)
	}
	if segLen > len(data) {
		segLen = len(data)
	}
	overlap := cfg.overlap
	if overlap < 0 {
		overlap = segLen / 8
	}
	if overlap >= segLen {
		return nil, fmt.Errorf("%w: overlap %d must be < segment length %d", ErrInvalidSegment, overlap, segLen)
	}

	win := window.Generate(cfg.window, segLen, window.WithPeriodic(), window.WithAlpha(cfg.alpha))
	sumSquares := 0.0
	for _, w := range win {
		sumSquares += w * w
	}
	if sumSquares == 0 {
		return nil, fmt.Errorf("%w: window %v has no energy", ErrInvalidSegment, cfg.window)
	}
	scale := 1 / (sampleRate * sumSquares)

	fftSize := segLen
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	step := segLen - overlap
	numSegments := (len(data)-segLen)/step + 1
	numBins := fftSize/2 + 1

	sg := &Spectrogram{
		Frequencies: make([]float64, numBins),
		Times:       make([]float64, numSegments),
		Power:       make([][]float64, numSegments),
	}
	for k := range sg.Frequencies {
		sg.Frequencies[k] = float64(k) * sampleRate / float64(fftSize)
	}

	in := make([]complex128, fftSize)
	out := make([]complex128, fftSize)
	re := make([]float64, numBins)
	im := make([]float64, numBins)

	for s := 0; s < numSegments; s++ {
		start := s * step
		seg := data[start : start+segLen]

		mean := 0.0
		for _, v := range seg {
			mean += v
		}
		mean /= float64(segLen)

		for i := range in {
			in[i] = 0
		}
		for i, v := range seg {
			in[i] = complex((v-mean)*win[i], 0)
		}

		if err := plan.Forward(out, in); err != nil {
			return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
		}

		for k := 0; k < numBins; k++ {
			re[k] = real(out[k])
			im[k] = imag(out[k])
		}

		row := make([]float64, numBins)
		PowerFromParts(row, re, im)
		for k := range row {
			row[k] *= scale
			if k > 0 && (fftSize%2 == 1 || k < fftSize/2) {
				row[k] *= 2
			}
		}

		sg.Power[s] = row
		sg.Times[s] = (float64(start) + float64(segLen)/2) / sampleRate
	}

	return sg, nil
}
