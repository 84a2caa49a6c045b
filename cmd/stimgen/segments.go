package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-stimulus/dsp/signal"
	"github.com/cwbudde/algo-stimulus/stimulus"
)

var errBadSegment = errors.New("bad segment")

type segmentKind int

const (
	segmentTone segmentKind = iota
	segmentNoise
	segmentSilence
	segmentChirp
)

var segmentNames = map[segmentKind]string{
	segmentTone:    "tone",
	segmentNoise:   "noise",
	segmentSilence: "silence",
	segmentChirp:   "chirp",
}

// segmentArity is the minimum and maximum number of values after the kind.
var segmentArity = map[segmentKind][2]int{
	segmentTone:    {2, 2},
	segmentNoise:   {1, 1},
	segmentSilence: {1, 1},
	segmentChirp:   {3, 4},
}

func (k segmentKind) String() string { return segmentNames[k] }

// segment is one parsed command-line building block.
type segment struct {
	kind     segmentKind
	duration float64
	freq     float64
	f0, f1   float64
	method   signal.ChirpMethod
}

// parseSegment parses
//
//	tone:<sec>:<hz> | noise:<sec> | silence:<sec> | chirp:<sec>:<f0>:<f1>[:<method>]
func parseSegment(arg string) (segment, error) {
	fields := strings.Split(strings.TrimSpace(arg), ":")
	name := strings.ToLower(fields[0])

	var seg segment
	switch name {
	case "tone":
		seg.kind = segmentTone
	case "noise":
		seg.kind = segmentNoise
	case "silence":
		seg.kind = segmentSilence
	case "chirp":
		seg.kind = segmentChirp
	default:
		return seg, fmt.Errorf("%w %q: unknown kind %q", errBadSegment, arg, name)
	}

	arity := segmentArity[seg.kind]
	if n := len(fields) - 1; n < arity[0] || n > arity[1] {
		return seg, fmt.Errorf("%w %q: %s takes %d to %d values", errBadSegment, arg, name, arity[0], arity[1])
	}

	nums := make([]float64, 0, 3)
	for _, f := range fields[1:min(len(fields), 4)] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return seg, fmt.Errorf("%w %q: %v", errBadSegment, arg, err)
		}
		nums = append(nums, v)
	}
	seg.duration = nums[0]

	switch seg.kind {
	case segmentTone:
		seg.freq = nums[1]
	case segmentChirp:
		seg.f0, seg.f1 = nums[1], nums[2]
		if len(fields) == 5 {
			m, err := signal.ParseChirpMethod(fields[4])
			if err != nil {
				return seg, fmt.Errorf("%w %q: %w", errBadSegment, arg, err)
			}
			seg.method = m
		}
	}

	return seg, nil
}

// build renders the segment as a populated Stimulus.
func (s segment) build(rate float64, opts ...stimulus.Option) (*stimulus.Stimulus, error) {
	st, err := stimulus.New(s.duration, rate, opts...)
	if err != nil {
		return nil, err
	}

	switch s.kind {
	case segmentTone:
		err = st.PureTone(s.freq)
	case segmentNoise:
		err = st.Noise()
	case segmentSilence:
		err = st.Silence()
	case segmentChirp:
		err = st.Chirp(s.f0, s.f1, s.method)
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}

func (s segment) String() string {
	switch s.kind {
	case segmentTone:
		return fmt.Sprintf("tone %gs %g Hz", s.duration, s.freq)
	case segmentChirp:
		return fmt.Sprintf("chirp %gs %g-%g Hz %v", s.duration, s.f0, s.f1, s.method)
	default:
		return fmt.Sprintf("%v %gs", s.kind, s.duration)
	}
}
