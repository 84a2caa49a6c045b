package wavfile

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-stimulus/dsp/core"
)

// BitDepth selects the sample encoding of a WAV file.
type BitDepth int

const (
	BitDepth16 BitDepth = iota
	BitDepth32
	BitDepthFloat
)

const (
	formatPCM       = 1
	formatIEEEFloat = 3
)

// ParseBitDepth maps "16", "32" or "float" to a BitDepth.
func ParseBitDepth(s string) (BitDepth, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "16":
		return BitDepth16, nil
	case "32":
		return BitDepth32, nil
	case "float", "f32", "passthrough":
		return BitDepthFloat, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedBitDepth, s)
	}
}

// String returns the name accepted by ParseBitDepth.
func (d BitDepth) String() string {
	switch d {
	case BitDepth16:
		return "16"
	case BitDepth32:
		return "32"
	case BitDepthFloat:
		return "float"
	default:
		return fmt.Sprintf("BitDepth(%d)", int(d))
	}
}

// Bits returns the number of bits per stored sample.
func (d BitDepth) Bits() int {
	switch d {
	case BitDepth16:
		return 16
	case BitDepth32, BitDepthFloat:
		return 32
	default:
		return 0
	}
}

// QuantizationStep returns the spacing between adjacent decoded values for
// integer encodings and 0 for float.
func (d BitDepth) QuantizationStep() float64 {
	switch d {
	case BitDepth16:
		return 1.0 / math.MaxInt16
	case BitDepth32:
		return 1.0 / math.MaxInt32
	default:
		return 0
	}
}

func (d BitDepth) validate() error {
	switch d {
	case BitDepth16, BitDepth32, BitDepthFloat:
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedBitDepth, d)
	}
}

func (d BitDepth) formatTag() int {
	if d == BitDepthFloat {
		return formatIEEEFloat
	}
	return formatPCM
}

// encode converts a full-scale sample to the integer stored in the file.
// Float samples are carried as their IEEE 754 bit pattern.
func (d BitDepth) encode(v float64) int {
	switch d {
	case BitDepth16:
		return int(math.Round(core.Clamp(v, -1, 1) * math.MaxInt16))
	case BitDepth32:
		return int(math.Round(core.Clamp(v, -1, 1) * math.MaxInt32))
	default:
		return int(int32(math.Float32bits(float32(v))))
	}
}

func (d BitDepth) decode(v int) float64 {
	switch d {
	case BitDepth16:
		return float64(v) / math.MaxInt16
	case BitDepth32:
		return float64(v) / math.MaxInt32
	default:
		return float64(math.Float32frombits(uint32(v)))
	}
}
