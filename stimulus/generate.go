package stimulus

import (
	"github.com/cwbudde/algo-stimulus/dsp/core"
	"github.com/cwbudde/algo-stimulus/dsp/signal"
	"github.com/cwbudde/algo-stimulus/dsp/window"
)

// PureTone fills the buffer with sin(2π·freq·i/sampleRate). Frequencies
// above Nyquist alias; no check is made.
func (s *Stimulus) PureTone(freq float64) error {
	if !core.IsFinite(freq) {
		return invalidf("tone frequency must be finite: %v", freq)
	}
	data, err := s.gen.Sine(freq, 1, s.numSamples)
	if err != nil {
		return wrapInvalid("pure tone", err)
	}
	s.data = data
	return nil
}

// Noise fills the buffer with independent uniform samples in [-1, 1].
//
// Without WithSeed or WithSource every call, on any stimulus, continues one
// process-wide stream, so two calls never return the same buffer. WithSeed
// makes each call reproduce the seeded buffer.
func (s *Stimulus) Noise() error {
	data, err := s.gen.WhiteNoise(1, s.numSamples)
	if err != nil {
		return wrapInvalid("noise", err)
	}
	s.data = data
	return nil
}

// Chirp fills the buffer with a unit cosine sweep from f0 Hz at t = 0 to
// f1 Hz at t = Length.
func (s *Stimulus) Chirp(f0, f1 float64, method signal.ChirpMethod) error {
	data, err := s.gen.Chirp(f0, f1, s.length, method, s.numSamples)
	if err != nil {
		return wrapInvalid("chirp", err)
	}
	s.data = data
	return nil
}

// Silence fills the buffer with zeros.
func (s *Stimulus) Silence() error {
	data, err := s.gen.Silence(s.numSamples)
	if err != nil {
		return wrapInvalid("silence", err)
	}
	s.data = data
	return nil
}

// Normalize rescales the buffer so that its peak magnitude equals peak.
// A silent buffer stays silent.
func (s *Stimulus) Normalize(peak float64) error {
	if s.data == nil {
		return invalidf("normalize: stimulus has no data")
	}
	data, err := signal.Normalize(s.data, peak)
	if err != nil {
		return wrapInvalid("normalize", err)
	}
	s.data = data
	return nil
}

// TaperOption configures Taper.
type TaperOption func(*taperConfig)

type taperConfig struct {
	shape window.Type
}

// WithTaperShape selects the fade curve: window.TypeHann (raised cosine,
// default), window.TypeTriangle (linear) or window.TypeCosine (quarter sine).
func WithTaperShape(t window.Type) TaperOption {
	return func(c *taperConfig) {
		c.shape = t
	}
}

// Taper fades the buffer in over its first startPct and out over its last
// endPct fraction. Both fractions must lie in (0, 1) and sum to less than 1.
//
// The fade-in covers floor(startPct·N) samples and starts at gain 0; the
// fade-out covers floor(endPct·N) samples and ends at gain 0. Samples in
// between are unchanged.
func (s *Stimulus) Taper(startPct, endPct float64, opts ...TaperOption) error {
	if !(startPct > 0 && startPct < 1) {
		return invalidf("taper start fraction must be in (0, 1): %v", startPct)
	}
	if !(endPct > 0 && endPct < 1) {
		return invalidf("taper end fraction must be in (0, 1): %v", endPct)
	}
	if startPct+endPct >= 1 {
		return invalidf("taper fractions must sum to less than 1: %v + %v", startPct, endPct)
	}
	if s.data == nil {
		return invalidf("taper: stimulus has no data")
	}

	cfg := taperConfig{shape: window.TypeHann}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := len(s.data)
	fadeIn, err := window.Fade(cfg.shape, int(startPct*float64(n)), window.FadeIn)
	if err != nil {
		return wrapInvalid("taper", err)
	}
	fadeOut, err := window.Fade(cfg.shape, int(endPct*float64(n)), window.FadeOut)
	if err != nil {
		return wrapInvalid("taper", err)
	}

	envelope := make([]float64, n)
	for i := range envelope {
		envelope[i] = 1
	}
	copy(envelope, fadeIn)
	copy(envelope[n-len(fadeOut):], fadeOut)

	data := core.Clone(s.data)
	if err := window.ApplyCoefficientsInPlace(data, envelope); err != nil {
		return wrapInvalid("taper", err)
	}
	s.data = data
	return nil
}
