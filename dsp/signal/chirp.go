package signal

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-stimulus/dsp/core"
)

// ErrInvalidChirpMethod is returned for an unknown sweep law.
var ErrInvalidChirpMethod = errors.New("signal: unknown chirp method")

// ChirpMethod selects how the instantaneous frequency moves from f0 to f1.
type ChirpMethod int

const (
	ChirpLinear ChirpMethod = iota
	ChirpQuadratic
	ChirpLogarithmic
	ChirpHyperbolic
)

var chirpMethodNames = map[ChirpMethod]string{
	ChirpLinear:      "linear",
	ChirpQuadratic:   "quadratic",
	ChirpLogarithmic: "logarithmic",
	ChirpHyperbolic:  "hyperbolic",
}

// String returns the lower-case method name.
func (m ChirpMethod) String() string {
	if name, ok := chirpMethodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("ChirpMethod(%d)", int(m))
}

// ParseChirpMethod maps a method name to its ChirpMethod. "log" and "hyp"
// are accepted as short forms.
func ParseChirpMethod(name string) (ChirpMethod, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear", "lin", "li":
		return ChirpLinear, nil
	case "quadratic", "quad", "q":
		return ChirpQuadratic, nil
	case "logarithmic", "log", "lo":
		return ChirpLogarithmic, nil
	case "hyperbolic", "hyp":
		return ChirpHyperbolic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidChirpMethod, name)
	}
}

// Chirp generates a unit-amplitude cosine sweep that starts at f0 Hz and
// reaches f1 Hz at t = duration. Sample i is evaluated at t = i/fs.
//
// The phase laws are:
//
//	linear:      2π(f0·t + (f1-f0)·t²/(2T))
//	quadratic:   2π(f0·t + (f1-f0)·t³/(3T²))
//	logarithmic: 2π·f0·T/ln(f1/f0)·((f1/f0)^(t/T) - 1)
//	hyperbolic:  2π·(-s·f0)·ln|1 - t/s|, s = -f1·T/(f0-f1)
//
// Logarithmic sweeps need f0 and f1 of the same sign, hyperbolic sweeps
// need both to be non-zero.
func (g *Generator) Chirp(f0, f1, duration float64, method ChirpMethod, samples int) ([]float64, error) {
	if err := g.validate(samples); err != nil {
		return nil, err
	}
	if duration <= 0 || !core.IsFinite(duration) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidDuration, duration)
	}
	if !core.IsFinite(f0) || !core.IsFinite(f1) {
		return nil, fmt.Errorf("%w: f0=%f f1=%f", ErrInvalidFrequency, f0, f1)
	}

	phase, err := chirpPhase(f0, f1, duration, method)
	if err != nil {
		return nil, err
	}

	out := make([]float64, samples)
	for i := range out {
		out[i] = math.Cos(phase(float64(i) / g.cfg.SampleRate))
	}
	return out, nil
}

func chirpPhase(f0, f1, T float64, method ChirpMethod) (func(t float64) float64, error) {
	const twoPi = 2 * math.Pi

	switch method {
	case ChirpLinear:
		beta := (f1 - f0) / T
		return func(t float64) float64 {
			return twoPi * (f0*t + 0.5*beta*t*t)
		}, nil
	case ChirpQuadratic:
		beta := (f1 - f0) / (T * T)
		return func(t float64) float64 {
			return twoPi * (f0*t + beta*t*t*t/3)
		}, nil
	case ChirpLogarithmic:
		if f0*f1 <= 0 {
			return nil, fmt.Errorf("%w: logarithmic sweep needs f0*f1 > 0 (f0=%f f1=%f)", ErrInvalidFrequency, f0, f1)
		}
		if f0 == f1 {
			return func(t float64) float64 { return twoPi * f0 * t }, nil
		}
		ratio := f1 / f0
		beta := T / math.Log(ratio)
		return func(t float64) float64 {
			return twoPi * beta * f0 * (math.Pow(ratio, t/T) - 1)
		}, nil
	case ChirpHyperbolic:
		if f0 == 0 || f1 == 0 {
			return nil, fmt.Errorf("%w: hyperbolic sweep needs non-zero f0 and f1 (f0=%f f1=%f)", ErrInvalidFrequency, f0, f1)
		}
		if f0 == f1 {
			return func(t float64) float64 { return twoPi * f0 * t }, nil
		}
		sing := -f1 * T / (f0 - f1)
		return func(t float64) float64 {
			return twoPi * (-sing * f0) * math.Log(math.Abs(1-t/sing))
		}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidChirpMethod, method)
	}
}
