package stimulus

import (
	"github.com/cwbudde/algo-stimulus/dsp/spectrum"
	"github.com/cwbudde/algo-stimulus/figure"
	"github.com/cwbudde/algo-stimulus/wavfile"
)

// SaveWAV writes the buffer to a mono WAV file at path.
func (s *Stimulus) SaveWAV(path string, depth wavfile.BitDepth) error {
	if s.data == nil {
		return invalidf("save: stimulus has no data")
	}
	return wavfile.Save(path, s.data, s.sampleRate, depth)
}

// Spectrogram returns the short-time power spectral density of the buffer.
func (s *Stimulus) Spectrogram(opts ...spectrum.Option) (*spectrum.Spectrogram, error) {
	if s.data == nil {
		return nil, invalidf("spectrogram: stimulus has no data")
	}
	return spectrum.Compute(s.data, s.sampleRate, opts...)
}

// PlotWaveform renders amplitude against TimePoints to an image file.
func (s *Stimulus) PlotWaveform(path string) error {
	if s.data == nil {
		return invalidf("plot waveform: stimulus has no data")
	}
	p, err := figure.Waveform(s.timePoints, s.data)
	if err != nil {
		return err
	}
	return figure.Save(p, path)
}

// PlotSpectrogram renders the spectrogram as a time-frequency heat map.
func (s *Stimulus) PlotSpectrogram(path string, opts ...spectrum.Option) error {
	sg, err := s.Spectrogram(opts...)
	if err != nil {
		return err
	}
	p, err := figure.Spectrogram(sg)
	if err != nil {
		return err
	}
	return figure.Save(p, path)
}
