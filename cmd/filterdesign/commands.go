package main

import (
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-filterdesign/dsp/filter/biquad"
	"github.com/cwbudde/algo-filterdesign/dsp/filter/design"
	"github.com/cwbudde/algo-filterdesign/dsp/filter/fir"
)

const (
	defaultSampleRate = 48000
	defaultIRLength   = 1024
)

var errBranches = errors.New("polyphase branch count must be positive")

// runner designs filters and reports them to out.
type runner struct {
	out        io.Writer
	sampleRate float64
}

// designFIR allocates and designs the taps described by d.
func designFIR(d FIRDesign) ([]float64, error) {
	spec, err := d.Spec()
	if err != nil {
		return nil, err
	}

	taps, err := spec.Design()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Name, err)
	}

	return taps, nil
}

// designBank splits taps into p.Branches rows.
func designBank(taps []float64, p PolyphaseDesign) ([][]float64, error) {
	if p.Branches <= 0 {
		return nil, errBranches
	}

	l := len(taps) / p.Branches
	if l < 1 {
		return nil, fir.ErrShortPrototype
	}

	bank := fir.NewBank(p.Branches, l)
	if err := fir.DesignPolyphase(bank, taps, p.Gain, p.Flags()); err != nil {
		return nil, err
	}

	return bank, nil
}

// designIIR builds a Butterworth lowpass cascade for d.
func designIIR(d IIRDesign, fs float64) ([]design.Quad, *biquad.Chain, error) {
	sections, err := design.ButterworthPrototype(d.Order)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", d.Name, err)
	}

	quads, gain, err := design.CascadeQuads(sections, d.Q, d.CutoffHz, fs)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", d.Name, err)
	}

	return quads, design.NewChain(quads, gain), nil
}

func (r *runner) runFIR(d FIRDesign) error {
	taps, err := designFIR(d)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"name":   d.Name,
		"taps":   len(taps),
		"kind":   d.Kind,
		"window": d.Window,
		"cutoff": d.Cutoff,
	}).Debug("designed FIR")

	if err := printTaps(r.out, d.Name, taps, d.Cutoff, r.sampleRate); err != nil {
		return err
	}

	if d.Polyphase != nil {
		bank, err := designBank(taps, *d.Polyphase)
		if err != nil {
			return fmt.Errorf("%s: %w", d.Name, err)
		}

		if dropped := len(taps) % d.Polyphase.Branches; dropped != 0 {
			log.WithFields(log.Fields{
				"name":     d.Name,
				"branches": d.Polyphase.Branches,
				"dropped":  dropped,
			}).Warn("prototype length is not a multiple of the branch count")
		}

		fmt.Fprintln(r.out)

		if err := printBank(r.out, d.Name, bank); err != nil {
			return err
		}
	}

	if d.WAV != "" {
		if err := WriteImpulseWAV(d.WAV, taps, int(r.sampleRate)); err != nil {
			return fmt.Errorf("%s: %w", d.Name, err)
		}

		log.WithField("path", d.WAV).Info("wrote impulse response")
	}

	return nil
}

func (r *runner) runIIR(d IIRDesign) error {
	quads, chain, err := designIIR(d, r.sampleRate)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"name":     d.Name,
		"order":    d.Order,
		"cutoffHz": d.CutoffHz,
		"q":        d.Q,
		"gain":     chain.Gain(),
	}).Debug("designed IIR")

	if !chain.Stable() {
		log.WithField("name", d.Name).Warn("cascade has poles on or outside the unit circle")
	}

	if err := printQuads(r.out, d.Name, quads, chain, d.CutoffHz, r.sampleRate); err != nil {
		return err
	}

	if d.WAV != "" {
		ir := chain.ImpulseResponse(d.IRLength)
		if err := WriteImpulseWAV(d.WAV, ir, int(r.sampleRate)); err != nil {
			return fmt.Errorf("%s: %w", d.Name, err)
		}

		log.WithField("path", d.WAV).Info("wrote impulse response")
	}

	return nil
}

// runFile designs every entry of df in order, stopping at the first error.
// The file's sample rate overrides the runner's when set.
func (r *runner) runFile(df *DesignFile) error {
	if df.SampleRate > 0 {
		r.sampleRate = df.SampleRate
	}

	for _, d := range df.FIR {
		if err := r.runFIR(d); err != nil {
			return err
		}

		fmt.Fprintln(r.out)
	}

	for _, d := range df.IIR {
		if err := r.runIIR(d); err != nil {
			return err
		}

		fmt.Fprintln(r.out)
	}

	return nil
}
