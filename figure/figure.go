// Package figure renders stimulus waveforms and spectrograms with gonum/plot.
package figure

import (
	"errors"
	"fmt"
	"math"

	"github.com/pkg/browser"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-stimulus/dsp/core"
	"github.com/cwbudde/algo-stimulus/dsp/spectrum"
)

// Errors returned by figure constructors.
var (
	ErrNoData           = errors.New("figure: nothing to plot")
	ErrMismatchedLength = errors.New("figure: time and sample slices differ in length")
)

// Default output size used by Save.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// floorDB bounds the dB scale of spectrogram cells with zero power.
const floorDB = -200

// Waveform returns a line plot of amplitude against time.
func Waveform(times, data []float64) (*plot.Plot, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}
	if len(times) != len(data) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrMismatchedLength, len(times), len(data))
	}

	pts := make(plotter.XYs, len(data))
	for i := range pts {
		pts[i].X = times[i]
		pts[i].Y = data[i]
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("figure: waveform line: %w", err)
	}

	p := plot.New()
	p.Title.Text = "Waveform"
	p.X.Label.Text = "Time [sec]"
	p.Y.Label.Text = "Amplitude"
	p.Add(line)

	return p, nil
}

// Spectrogram returns a heat map of sg's power in dB over time and frequency.
func Spectrogram(sg *spectrum.Spectrogram) (*plot.Plot, error) {
	if sg == nil || len(sg.Times) == 0 || len(sg.Frequencies) == 0 {
		return nil, ErrNoData
	}

	grid := newSpectrogramGrid(sg)
	hm := plotter.NewHeatMap(grid, palette.Heat(64, 1))
	if hm.Max-hm.Min == 0 {
		hm.Max = hm.Min + 1
	}

	p := plot.New()
	p.Title.Text = "Spectrogram"
	p.X.Label.Text = "Time [sec]"
	p.Y.Label.Text = "Frequency [Hz]"
	p.Add(hm)

	return p, nil
}

// Save renders p to path. The file extension selects the format
// (.png, .svg, .pdf, .jpg, .eps, .tif).
func Save(p *plot.Plot, path string) error {
	if err := p.Save(DefaultWidth, DefaultHeight, path); err != nil {
		return fmt.Errorf("figure: save %s: %w", path, err)
	}
	return nil
}

// Open shows a rendered file in the system's default viewer.
func Open(path string) error {
	if err := browser.OpenFile(path); err != nil {
		return fmt.Errorf("figure: open %s: %w", path, err)
	}
	return nil
}

// spectrogramGrid adapts a Spectrogram to plotter.GridXYZ with columns
// as segments and rows as frequency bins.
type spectrogramGrid struct {
	sg *spectrum.Spectrogram
	db [][]float64
}

func newSpectrogramGrid(sg *spectrum.Spectrogram) *spectrogramGrid {
	db := make([][]float64, len(sg.Power))
	for c, row := range sg.Power {
		db[c] = make([]float64, len(row))
		for r, p := range row {
			db[c][r] = math.Max(core.LinearPowerToDB(p), floorDB)
		}
	}
	return &spectrogramGrid{sg: sg, db: db}
}

func (g *spectrogramGrid) Dims() (c, r int) {
	return len(g.sg.Times), len(g.sg.Frequencies)
}

func (g *spectrogramGrid) Z(c, r int) float64 {
	return g.db[c][r]
}

func (g *spectrogramGrid) X(c int) float64 {
	return g.sg.Times[c]
}

func (g *spectrogramGrid) Y(r int) float64 {
	return g.sg.Frequencies[r]
}
