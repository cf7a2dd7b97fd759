package main

import (
	"fmt"
	"io"
	"math/cmplx"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-filterdesign/dsp/filter/biquad"
	"github.com/cwbudde/algo-filterdesign/dsp/filter/design"
	"github.com/cwbudde/algo-filterdesign/dsp/filter/fir"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// printTaps writes one row per tap followed by the gain at DC, the cutoff
// frequencies and Nyquist.
func printTaps(w io.Writer, name string, taps []float64, cutoff []float64, fs float64) error {
	tw := newTable(w)

	fmt.Fprintf(tw, "# %s (%d taps)\n", name, len(taps))
	fmt.Fprintf(tw, "Index\tTap\n")
	fmt.Fprintf(tw, "-----\t---\n")

	for i, v := range taps {
		fmt.Fprintf(tw, "%d\t% .9f\n", i, v)
	}

	fmt.Fprintf(tw, "\nFrequency [Hz]\tMagnitude [dB]\n")
	fmt.Fprintf(tw, "--------------\t--------------\n")

	for _, f := range probeFrequencies(cutoff, fs) {
		fmt.Fprintf(tw, "%.1f\t%.2f\n", f, fir.MagnitudeDB(taps, f, fs))
	}

	return tw.Flush()
}

// probeFrequencies returns DC, each cutoff in Hz and Nyquist.
func probeFrequencies(cutoff []float64, fs float64) []float64 {
	freqs := []float64{0}

	for _, c := range cutoff {
		if c > 0 && c < 1 {
			freqs = append(freqs, c*fs/2)
		}
	}

	return append(freqs, fs/2)
}

// printBank writes one row per polyphase branch.
func printBank(w io.Writer, name string, bank [][]float64) error {
	tw := newTable(w)

	fmt.Fprintf(tw, "# %s (%d branches)\n", name, len(bank))
	fmt.Fprintf(tw, "Branch\tTaps\n")
	fmt.Fprintf(tw, "------\t----\n")

	for i, row := range bank {
		fmt.Fprintf(tw, "%d\t%s\n", i, formatRow(row))
	}

	return tw.Flush()
}

func formatRoot(z complex128) string {
	return fmt.Sprintf("(%.4f%+.4fi)", real(z), imag(z))
}

func formatRow(row []float64) string {
	var sb strings.Builder

	for i, v := range row {
		if i > 0 {
			sb.WriteByte(' ')
		}

		fmt.Fprintf(&sb, "%.6f", v)
	}

	return sb.String()
}

// printQuads writes the digital sections, the accumulated gain and the
// response of the resulting chain at a few probe frequencies.
func printQuads(w io.Writer, name string, quads []design.Quad, chain *biquad.Chain, fc, fs float64) error {
	tw := newTable(w)

	fmt.Fprintf(tw, "# %s (order %d)\n", name, chain.Order())
	fmt.Fprintf(tw, "Section\tBeta1\tBeta2\tAlpha1\tAlpha2\n")
	fmt.Fprintf(tw, "-------\t-----\t-----\t------\t------\n")

	for i, q := range quads {
		fmt.Fprintf(tw, "%d\t% .9f\t% .9f\t% .9f\t% .9f\n", i, q.Beta1, q.Beta2, q.Alpha1, q.Alpha2)
	}

	fmt.Fprintf(tw, "\nSection\tZeros\tPole radius\tMagnitude at fc [dB]\n")
	fmt.Fprintf(tw, "-------\t-----\t-----------\t--------------------\n")

	for i := range chain.NumSections() {
		sec := chain.Section(i)
		z := sec.Zeros()
		p := sec.Poles()

		fmt.Fprintf(tw, "%d\t%s %s\t%.6f\t%.2f\n", i,
			formatRoot(z[0]), formatRoot(z[1]),
			max(cmplx.Abs(p[0]), cmplx.Abs(p[1])),
			sec.MagnitudeDB(fc, fs))
	}

	fmt.Fprintf(tw, "\nGain\t%.9g\n", chain.Gain())
	fmt.Fprintf(tw, "Stable\t%t\n", chain.Stable())

	fmt.Fprintf(tw, "\nFrequency [Hz]\tMagnitude [dB]\n")
	fmt.Fprintf(tw, "--------------\t--------------\n")

	for _, f := range []float64{0, fc / 2, fc, 2 * fc} {
		if f >= fs/2 {
			break
		}

		fmt.Fprintf(tw, "%.1f\t%.2f\n", f, chain.MagnitudeDB(f, fs))
	}

	return tw.Flush()
}
