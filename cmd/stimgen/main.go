// Command stimgen renders a sequence of audio stimuli to a WAV file.
//
// Usage:
//
//	stimgen [flags] segment [segment ...]
//
// Segments are played in order:
//
//	tone:<sec>:<hz>
//	noise:<sec>
//	silence:<sec>
//	chirp:<sec>:<f0>:<f1>[:<method>]
//
// Examples:
//
//	stimgen tone:0.1:1000 chirp:0.1:0:1000 silence:0.1
//	stimgen -repeat 3 -taper 0.01,0.01 -out train.wav silence:1 noise:0.1
//	stimgen -depth float -spectrogram sweep.png -open chirp:2:20:20000:log
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-stimulus/figure"
	"github.com/cwbudde/algo-stimulus/stimulus"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.logLevel, cfg.logFile, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger, os.Stdout); err != nil {
		logger.Error("stimgen failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config, logger *zap.Logger, stdout io.Writer) error {
	s, err := render(cfg, logger)
	if err != nil {
		return err
	}

	if err := s.SaveWAV(cfg.out, cfg.depth); err != nil {
		return err
	}
	logger.Info("wrote wav",
		zap.String("path", cfg.out),
		zap.Stringer("depth", cfg.depth),
		zap.Int("samples", s.NumSamples()),
	)

	var plots []string
	if cfg.waveform != "" {
		if err := s.PlotWaveform(cfg.waveform); err != nil {
			return err
		}
		plots = append(plots, cfg.waveform)
	}
	if cfg.spectrogram != "" {
		if err := s.PlotSpectrogram(cfg.spectrogram); err != nil {
			return err
		}
		plots = append(plots, cfg.spectrogram)
	}
	for _, p := range plots {
		logger.Info("wrote plot", zap.String("path", p))
		if cfg.open {
			if err := figure.Open(p); err != nil {
				logger.Warn("could not open plot", zap.String("path", p), zap.Error(err))
			}
		}
	}

	if cfg.summary {
		return printSummary(stdout, s)
	}
	return nil
}

// render builds the segments, joins them and applies repeat, taper and
// normalization in that order.
func render(cfg *config, logger *zap.Logger) (*stimulus.Stimulus, error) {
	src := stimulus.WithSource(rand.NewSource(cfg.seed))

	parts := make([]*stimulus.Stimulus, 0, len(cfg.segments))
	for i, seg := range cfg.segments {
		st, err := seg.build(cfg.rate, src)
		if err != nil {
			return nil, fmt.Errorf("segment %d (%v): %w", i+1, seg, err)
		}
		logger.Debug("built segment",
			zap.Int("index", i+1),
			zap.Stringer("segment", seg),
			zap.Int("samples", st.NumSamples()),
		)
		parts = append(parts, st)
	}

	s, err := stimulus.Sequence(parts...)
	if err != nil {
		return nil, err
	}
	if cfg.repeat > 1 {
		if s, err = s.Repeat(cfg.repeat); err != nil {
			return nil, err
		}
	}
	if cfg.tapered() {
		if err := s.Taper(cfg.taperStart, cfg.taperEnd, stimulus.WithTaperShape(cfg.taperShape)); err != nil {
			return nil, err
		}
	}
	if cfg.normalize > 0 {
		if err := s.Normalize(cfg.normalize); err != nil {
			return nil, err
		}
	}
	return s, nil
}
