package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-filterdesign/dsp/filter/fir"
	"github.com/cwbudde/algo-filterdesign/dsp/window"
)

// DesignFile is a batch of filter designs loaded from YAML.
//
//	sample_rate: 48000
//	fir:
//	  - name: lp63
//	    length: 63
//	    kind: lp
//	    window: hamming
//	    cutoff: [0.25]
//	    polyphase: {branches: 4, gain: 4, reverse: true}
//	    wav: lp63.wav
//	iir:
//	  - name: bw4
//	    order: 4
//	    cutoff_hz: 1000
type DesignFile struct {
	SampleRate float64     `yaml:"sample_rate"`
	FIR        []FIRDesign `yaml:"fir"`
	IIR        []IIRDesign `yaml:"iir"`
}

// FIRDesign describes one windowed-sinc design and its optional polyphase
// split.
type FIRDesign struct {
	Name      string           `yaml:"name"`
	Length    int              `yaml:"length"`
	Kind      string           `yaml:"kind"`
	Window    string           `yaml:"window"`
	Cutoff    []float64        `yaml:"cutoff"`
	Beta      float64          `yaml:"beta"`
	Polyphase *PolyphaseDesign `yaml:"polyphase,omitempty"`
	WAV       string           `yaml:"wav,omitempty"`
}

// PolyphaseDesign describes how to repack a FIR prototype.
type PolyphaseDesign struct {
	Branches int     `yaml:"branches"`
	Gain     float64 `yaml:"gain"`
	Reverse  bool    `yaml:"reverse"`
	Odd      bool    `yaml:"odd"`
}

// IIRDesign describes a Butterworth lowpass cascade.
type IIRDesign struct {
	Name     string  `yaml:"name"`
	Order    int     `yaml:"order"`
	CutoffHz float64 `yaml:"cutoff_hz"`
	Q        float64 `yaml:"q"`
	WAV      string  `yaml:"wav,omitempty"`
	IRLength int     `yaml:"ir_length,omitempty"`
}

var errEmptyDesignFile = errors.New("design file contains no designs")

// LoadDesignFile reads a YAML design file from path.
func LoadDesignFile(path string) (*DesignFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open design file: %w", err)
	}
	defer f.Close()

	return ParseDesignFile(f)
}

// ParseDesignFile decodes a design file and fills in defaults. SampleRate
// stays zero when the file does not set it.
func ParseDesignFile(r io.Reader) (*DesignFile, error) {
	var df DesignFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&df); err != nil {
		return nil, fmt.Errorf("decode design file: %w", err)
	}

	if len(df.FIR) == 0 && len(df.IIR) == 0 {
		return nil, errEmptyDesignFile
	}

	for i := range df.FIR {
		if df.FIR[i].Name == "" {
			df.FIR[i].Name = fmt.Sprintf("fir%d", i)
		}

		if p := df.FIR[i].Polyphase; p != nil && p.Gain == 0 {
			p.Gain = 1
		}
	}

	for i := range df.IIR {
		if df.IIR[i].Name == "" {
			df.IIR[i].Name = fmt.Sprintf("iir%d", i)
		}

		if df.IIR[i].Q == 0 {
			df.IIR[i].Q = 1
		}

		if df.IIR[i].IRLength <= 0 {
			df.IIR[i].IRLength = defaultIRLength
		}
	}

	return &df, nil
}

// Spec converts d into a FIR design spec.
func (d FIRDesign) Spec() (fir.Spec, error) {
	kind, err := fir.ParseKind(d.Kind)
	if err != nil {
		return fir.Spec{}, fmt.Errorf("%s: %w", d.Name, err)
	}

	wname := d.Window
	if wname == "" {
		wname = window.TypeHamming.String()
	}

	wt, err := window.Parse(wname)
	if err != nil {
		return fir.Spec{}, fmt.Errorf("%s: %w", d.Name, err)
	}

	return fir.Spec{
		Length: d.Length,
		Cutoff: d.Cutoff,
		Kind:   kind,
		Window: wt,
		Beta:   d.Beta,
	}, nil
}

// Flags returns the polyphase direction and shape flags.
func (p PolyphaseDesign) Flags() fir.Flags {
	flags := fir.FWD
	if p.Reverse {
		flags |= fir.REW
	}

	if p.Odd {
		flags |= fir.ODD
	}

	return flags
}
