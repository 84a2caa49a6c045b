package stimulus

import (
	"fmt"

	"github.com/cwbudde/algo-stimulus/dsp/core"
)

// Concat returns a new Stimulus holding a's samples followed by b's.
// Both must share the same sample rate and hold data.
//
// The result's sample count is the sum of the operands' counts, which can
// differ by one from floor((a.Length+b.Length)·rate).
func Concat(a, b *Stimulus) (*Stimulus, error) {
	if a == nil || b == nil {
		return nil, invalidf("concat: nil stimulus")
	}
	if a.sampleRate != b.sampleRate {
		return nil, fmt.Errorf("%w: sample rates differ (%v Hz vs %v Hz)", ErrIncompatibleStimulus, a.sampleRate, b.sampleRate)
	}
	if a.data == nil || b.data == nil {
		return nil, invalidf("concat: both stimuli need data")
	}
	if a.numSamples > maxSamples-b.numSamples {
		return nil, invalidf("concat: %d + %d samples is too many", a.numSamples, b.numSamples)
	}

	out := derive(a, a.length+b.length, a.numSamples+b.numSamples)
	out.data = core.Join(a.data, b.data)
	return out, nil
}

// Concat is shorthand for Concat(s, other).
func (s *Stimulus) Concat(other *Stimulus) (*Stimulus, error) {
	return Concat(s, other)
}

// Sequence concatenates stims in order.
func Sequence(stims ...*Stimulus) (*Stimulus, error) {
	if len(stims) == 0 {
		return nil, invalidf("sequence: no stimuli")
	}
	out := stims[0]
	if out == nil || out.data == nil {
		return nil, invalidf("sequence: stimulus 0 has no data")
	}
	if len(stims) == 1 {
		return out.clone(), nil
	}
	for _, next := range stims[1:] {
		var err error
		out, err = Concat(out, next)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Repeat returns a new Stimulus holding a's samples n times end-to-end.
// n must be at least 1.
func Repeat(n int, a *Stimulus) (*Stimulus, error) {
	if n < 1 {
		return nil, invalidf("repeat count must be a positive integer: %d", n)
	}
	if a == nil || a.data == nil {
		return nil, invalidf("repeat: stimulus has no data")
	}
	if n > maxSamples/max(a.numSamples, 1) {
		return nil, invalidf("repeat: %d x %d samples is too many", n, a.numSamples)
	}

	out := derive(a, float64(n)*a.length, n*a.numSamples)
	out.data = core.Tile(a.data, n)
	return out, nil
}

// Repeat is shorthand for Repeat(n, s).
func (s *Stimulus) Repeat(n int) (*Stimulus, error) {
	return Repeat(n, s)
}

// derive builds an empty Stimulus with src's sample rate and noise options.
func derive(src *Stimulus, length float64, numSamples int) *Stimulus {
	return newStimulus(length, src.sampleRate, numSamples, src.opts)
}

func (s *Stimulus) clone() *Stimulus {
	out := derive(s, s.length, s.numSamples)
	out.data = core.Clone(s.data)
	return out
}
