package stimulus

import (
	"math"
	"math/rand"
	"sync"

	"github.com/cwbudde/algo-stimulus/dsp/core"
	"github.com/cwbudde/algo-stimulus/dsp/signal"
)

// maxSamples bounds the buffer length of any stimulus, built or combined.
const maxSamples = math.MaxInt32

// Stimulus is a mono sample buffer together with its timing.
type Stimulus struct {
	length     float64
	sampleRate float64
	numSamples int
	timePoints []float64
	data       []float64
	opts       options
	gen        *signal.Generator
}

// Option configures a Stimulus.
type Option func(*options)

type options struct {
	seed   int64
	seeded bool
	src    rand.Source
}

// WithSeed seeds the noise generator. Each Noise call restarts from the
// seed, so it reproduces the same buffer.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
		o.src = nil
	}
}

// WithSource makes Noise draw from src. Successive calls continue the
// stream. Stimuli derived by Concat or Repeat draw from the same src.
func WithSource(src rand.Source) Option {
	return func(o *options) {
		o.src = src
		o.seeded = false
	}
}

// defaultSource feeds Noise on stimuli created without WithSeed or
// WithSource. It is shared by the whole process, so every call draws
// fresh samples.
var defaultSource rand.Source = &lockedSource{src: rand.NewSource(1)}

type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// New creates an empty Stimulus of length seconds at sampleRate Hz.
// The sample count is floor(length * sampleRate).
func New(length, sampleRate float64, opts ...Option) (*Stimulus, error) {
	if length <= 0 || !core.IsFinite(length) {
		return nil, invalidf("length must be positive and finite: %v", length)
	}
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, invalidf("sample rate must be positive and finite: %v", sampleRate)
	}

	n := math.Floor(length * sampleRate)
	if n > maxSamples {
		return nil, invalidf("%v s at %v Hz is too many samples", length, sampleRate)
	}

	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return newStimulus(length, sampleRate, int(n), o), nil
}

func newStimulus(length, sampleRate float64, numSamples int, o options) *Stimulus {
	var sigOpts []signal.Option
	switch {
	case o.src != nil:
		sigOpts = append(sigOpts, signal.WithSource(o.src))
	case o.seeded:
		sigOpts = append(sigOpts, signal.WithSeed(o.seed))
	default:
		sigOpts = append(sigOpts, signal.WithSource(defaultSource))
	}

	return &Stimulus{
		length:     length,
		sampleRate: sampleRate,
		numSamples: numSamples,
		timePoints: core.Linspace(0, length, numSamples),
		opts:       o,
		gen: signal.NewGeneratorWithOptions(
			[]core.ProcessorOption{core.WithSampleRate(sampleRate)},
			sigOpts...,
		),
	}
}

// Length returns the nominal duration in seconds.
func (s *Stimulus) Length() float64 { return s.length }

// SampleRate returns the sample rate in Hz.
func (s *Stimulus) SampleRate() float64 { return s.sampleRate }

// NumSamples returns the buffer length every generator produces.
func (s *Stimulus) NumSamples() int { return s.numSamples }

// TimePoints returns a copy of the time axis.
func (s *Stimulus) TimePoints() []float64 { return core.Clone(s.timePoints) }

// Data returns a copy of the sample buffer, or nil before any generator ran.
func (s *Stimulus) Data() []float64 { return core.Clone(s.data) }

// HasData reports whether a generator or combinator populated the buffer.
func (s *Stimulus) HasData() bool { return s.data != nil }

// Duration returns the duration actually covered by the buffer,
// NumSamples / SampleRate.
func (s *Stimulus) Duration() float64 {
	return float64(s.numSamples) / s.sampleRate
}
