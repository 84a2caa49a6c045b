package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-stimulus/dsp/window"
	"github.com/cwbudde/algo-stimulus/wavfile"
)

type config struct {
	rate        float64
	repeat      int
	taperStart  float64
	taperEnd    float64
	taperShape  window.Type
	seed        int64
	normalize   float64
	out         string
	depth       wavfile.BitDepth
	waveform    string
	spectrogram string
	open        bool
	summary     bool
	logLevel    string
	logFile     string
	segments    []segment
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseConfig reads flags from args. STIMGEN_RATE, STIMGEN_DEPTH and
// STIMGEN_LOG_LEVEL replace the built-in defaults; explicit flags win.
func parseConfig(args []string, stderr io.Writer) (*config, error) {
	defRate, err := strconv.ParseFloat(getEnv("STIMGEN_RATE", "44100"), 64)
	if err != nil {
		return nil, fmt.Errorf("STIMGEN_RATE: %w", err)
	}

	fs := flag.NewFlagSet("stimgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := &config{}
	fs.Float64Var(&cfg.rate, "rate", defRate, "sample rate in Hz")
	fs.IntVar(&cfg.repeat, "repeat", 1, "number of times the whole sequence is played")
	taper := fs.String("taper", "0,0", "fade-in and fade-out fractions as `start,end` (0,0 disables)")
	taperShape := fs.String("taper-shape", "hann", "fade curve: hann, triangle or cosine")
	fs.Int64Var(&cfg.seed, "seed", 1, "noise seed")
	fs.Float64Var(&cfg.normalize, "normalize", 0, "rescale to this peak amplitude (0 keeps levels)")
	fs.StringVar(&cfg.out, "out", "stimulus.wav", "output WAV file")
	depth := fs.String("depth", getEnv("STIMGEN_DEPTH", "16"), "WAV sample format: 16, 32 or float")
	fs.StringVar(&cfg.waveform, "waveform", "", "write a waveform plot to this image file")
	fs.StringVar(&cfg.spectrogram, "spectrogram", "", "write a spectrogram plot to this image file")
	fs.BoolVar(&cfg.open, "open", false, "open written plots in the system viewer")
	fs.BoolVar(&cfg.summary, "summary", false, "print a level summary")
	fs.StringVar(&cfg.logLevel, "log-level", getEnv("STIMGEN_LOG_LEVEL", "info"), "log level: debug, info, warn or error")
	fs.StringVar(&cfg.logFile, "log-file", "", "also log to this file, rotated")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: stimgen [flags] segment [segment ...]\n\n")
		fmt.Fprintf(stderr, "Builds an audio stimulus from segments played in order and writes it as WAV.\n\n")
		fmt.Fprintf(stderr, "Segments:\n")
		fmt.Fprintf(stderr, "  tone:<sec>:<hz>\n")
		fmt.Fprintf(stderr, "  noise:<sec>\n")
		fmt.Fprintf(stderr, "  silence:<sec>\n")
		fmt.Fprintf(stderr, "  chirp:<sec>:<f0>:<f1>[:linear|quadratic|log|hyperbolic]\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  stimgen tone:0.1:1000 chirp:0.1:0:1000 silence:0.1\n")
		fmt.Fprintf(stderr, "  stimgen -repeat 3 -spectrogram noise.png silence:1 noise:0.1\n")
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.depth, err = wavfile.ParseBitDepth(*depth); err != nil {
		return nil, err
	}
	if cfg.taperStart, cfg.taperEnd, err = parseTaper(*taper); err != nil {
		return nil, err
	}
	if cfg.taperShape, err = window.ParseType(*taperShape); err != nil {
		return nil, fmt.Errorf("-taper-shape: %w", err)
	}
	if cfg.repeat < 1 {
		return nil, fmt.Errorf("-repeat must be at least 1: %d", cfg.repeat)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return nil, errors.New("no segments given")
	}
	for _, arg := range fs.Args() {
		seg, err := parseSegment(arg)
		if err != nil {
			return nil, err
		}
		cfg.segments = append(cfg.segments, seg)
	}

	return cfg, nil
}

func parseTaper(v string) (start, end float64, err error) {
	parts := strings.Split(v, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("-taper wants start,end: %q", v)
	}
	if start, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return 0, 0, fmt.Errorf("-taper start: %w", err)
	}
	if end, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return 0, 0, fmt.Errorf("-taper end: %w", err)
	}
	return start, end, nil
}

func (c *config) tapered() bool {
	return c.taperStart != 0 || c.taperEnd != 0
}
