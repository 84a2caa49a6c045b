// Package time summarises the level of a sample buffer in the time domain.
package time

import (
	"math"

	"github.com/cwbudde/algo-stimulus/dsp/core"
)

// Stats holds time-domain level statistics.
//
//nolint:revive
type Stats struct {
	Length         int
	DC             float64 // mean
	RMS            float64
	RMS_dB         float64
	Peak           float64 // max |x|
	PeakPos        int
	Peak_dB        float64
	CrestFactor    float64 // peak / RMS (linear)
	CrestFactor_dB float64
	ZeroCrossings  int
}

// Calculate computes all statistics in a single pass. dB values are
// relative to full scale (1.0) and are -Inf for silent buffers.
func Calculate(signal []float64) Stats {
	s := Stats{
		Length:         len(signal),
		RMS_dB:         math.Inf(-1),
		Peak_dB:        math.Inf(-1),
		CrestFactor_dB: math.Inf(-1),
	}
	if len(signal) == 0 {
		return s
	}

	var sum, sumSquares float64
	for i, v := range signal {
		sum += v
		sumSquares += v * v
		if a := math.Abs(v); a > s.Peak {
			s.Peak = a
			s.PeakPos = i
		}
		if i > 0 && crosses(signal[i-1], v) {
			s.ZeroCrossings++
		}
	}

	n := float64(len(signal))
	s.DC = sum / n
	s.RMS = math.Sqrt(sumSquares / n)
	s.RMS_dB = core.LinearToDB(s.RMS)
	s.Peak_dB = core.LinearToDB(s.Peak)
	if s.RMS > 0 {
		s.CrestFactor = s.Peak / s.RMS
		s.CrestFactor_dB = core.LinearToDB(s.CrestFactor)
	}

	return s
}

func crosses(prev, cur float64) bool {
	return (prev < 0 && cur >= 0) || (prev >= 0 && cur < 0)
}
