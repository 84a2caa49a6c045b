package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-stimulus/dsp/core"
)

// Errors returned by signal generators.
var (
	ErrInvalidLength     = errors.New("signal: sample count must be >= 0")
	ErrInvalidSampleRate = errors.New("signal: sample rate must be positive and finite")
	ErrInvalidFrequency  = errors.New("signal: frequency is not valid for this sweep")
	ErrInvalidDuration   = errors.New("signal: duration must be positive and finite")
)

// Generator creates deterministic signals from a shared configuration.
//
// Noise is drawn from a dedicated random source. Without [WithSource] the
// source is rebuilt from the seed on every call, so repeated calls with the
// same seed return the same samples.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
	src  rand.Source
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithSource makes noise generation draw from src. Successive calls continue
// the stream instead of restarting it.
func WithSource(src rand.Source) Option {
	return func(g *Generator) {
		g.src = src
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

func (g *Generator) validate(samples int) error {
	if samples < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, samples)
	}
	if g.cfg.SampleRate <= 0 || !core.IsFinite(g.cfg.SampleRate) {
		return fmt.Errorf("%w: %f", ErrInvalidSampleRate, g.cfg.SampleRate)
	}
	return nil
}

// Sine generates amplitude * sin(2*pi*freqHz*i/fs) for i in [0, samples).
// Phase follows the sample index, so the tone is exactly periodic in fs.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.validate(samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates uniform white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if err := g.validate(samples); err != nil {
		return nil, err
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	src := g.src
	if src == nil {
		src = rand.NewSource(g.seed)
	}
	rng := rand.New(src)
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Silence returns samples zeros.
func (g *Generator) Silence(samples int) ([]float64, error) {
	if err := g.validate(samples); err != nil {
		return nil, err
	}
	return make([]float64, samples), nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 || !core.IsFinite(targetPeak) {
		return nil, fmt.Errorf("signal: normalize target peak must be >= 0: %f", targetPeak)
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
