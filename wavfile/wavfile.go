package wavfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-stimulus/dsp/core"
)

// Errors returned by the WAV encoder and decoder.
var (
	ErrUnsupportedBitDepth = errors.New("wavfile: unsupported bit depth")
	ErrInvalidSampleRate   = errors.New("wavfile: sample rate must round to at least 1 Hz")
	ErrInvalidFile         = errors.New("wavfile: not a valid WAV file")
	ErrUnsupportedChannels = errors.New("wavfile: only mono files are supported")
)

// Audio is a decoded mono WAV file.
type Audio struct {
	Data       []float64
	SampleRate int
	Depth      BitDepth
}

// SampleRate converts a real-valued rate to the integer rate stored in the
// WAV header.
func SampleRate(rate float64) (int, error) {
	if !core.IsFinite(rate) || rate > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %f", ErrInvalidSampleRate, rate)
	}
	r := int(math.Round(rate))
	if r < 1 {
		return 0, fmt.Errorf("%w: %f", ErrInvalidSampleRate, rate)
	}
	return r, nil
}

// Encode writes data as a mono WAV stream to w.
func Encode(w io.WriteSeeker, data []float64, sampleRate float64, depth BitDepth) error {
	if err := depth.validate(); err != nil {
		return err
	}
	rate, err := SampleRate(sampleRate)
	if err != nil {
		return err
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           make([]int, len(data)),
		SourceBitDepth: depth.Bits(),
	}
	for i, v := range data {
		buf.Data[i] = depth.encode(v)
	}

	enc := wav.NewEncoder(w, rate, depth.Bits(), 1, depth.formatTag())
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavfile: write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavfile: finalize header: %w", err)
	}
	return nil
}

// Save writes data to a WAV file at path. The file is removed again if
// encoding fails.
func Save(path string, data []float64, sampleRate float64, depth BitDepth) (err error) {
	if err := depth.validate(); err != nil {
		return err
	}
	if _, err := SampleRate(sampleRate); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavfile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("wavfile: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return Encode(f, data, sampleRate, depth)
}

// Decode reads a mono 16- or 32-bit PCM WAV stream.
func Decode(r io.ReadSeeker) (*Audio, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrInvalidFile
	}
	if dec.NumChans != 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedChannels, dec.NumChans)
	}

	var depth BitDepth
	switch {
	case dec.WavAudioFormat == formatPCM && dec.BitDepth == 16:
		depth = BitDepth16
	case dec.WavAudioFormat == formatPCM && dec.BitDepth == 32:
		depth = BitDepth32
	default:
		return nil, fmt.Errorf("%w: format %d, %d bits", ErrUnsupportedBitDepth, dec.WavAudioFormat, dec.BitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavfile: read samples: %w", err)
	}

	out := &Audio{
		Data:       make([]float64, len(buf.Data)),
		SampleRate: int(dec.SampleRate),
		Depth:      depth,
	}
	for i, v := range buf.Data {
		out.Data[i] = depth.decode(v)
	}
	return out, nil
}

// Load reads a WAV file written by Save with an integer bit depth.
func Load(path string) (*Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wavfile: %w", err)
	}
	defer f.Close()

	return Decode(f)
}
