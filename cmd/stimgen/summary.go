package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	timestats "github.com/cwbudde/algo-stimulus/stats/time"
	"github.com/cwbudde/algo-stimulus/stimulus"
)

func printSummary(w io.Writer, s *stimulus.Stimulus) error {
	st := timestats.Calculate(s.Data())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		name, value string
	}{
		{"Samples", fmt.Sprintf("%d", s.NumSamples())},
		{"Sample rate [Hz]", fmt.Sprintf("%g", s.SampleRate())},
		{"Duration [sec]", fmt.Sprintf("%.6f", s.Duration())},
		{"Peak [dBFS]", fmt.Sprintf("%.2f", st.Peak_dB)},
		{"RMS [dBFS]", fmt.Sprintf("%.2f", st.RMS_dB)},
		{"Crest factor [dB]", fmt.Sprintf("%.2f", st.CrestFactor_dB)},
		{"DC", fmt.Sprintf("%.6f", st.DC)},
		{"Zero crossings", fmt.Sprintf("%d", st.ZeroCrossings)},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r.name, r.value); err != nil {
			return err
		}
	}
	return tw.Flush()
}
