// Command filterdesign designs FIR, polyphase and IIR filters and prints
// their coefficients.
//
// Usage:
//
//	filterdesign [global flags] command [flags]
//
// Examples:
//
//	filterdesign fir -n 63 --kind lp --window hamming --cutoff 0.5
//	filterdesign fir -n 101 --kind bp --cutoff 0.2 --cutoff 0.4 --wav bp.wav
//	filterdesign pfir -n 64 --branches 4 --gain 4 --reverse
//	filterdesign --sample-rate 44100 iir --order 4 --cutoff-hz 1000
//	filterdesign run designs.yaml
package main

import (
	"errors"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var errMissingFile = errors.New("missing design file argument")

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func firFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "length",
			Aliases: []string{"n"},
			Value:   63,
			Usage:   "number of taps",
		},
		&cli.StringFlag{
			Name:  "kind",
			Value: "lp",
			Usage: "filter kind: lp, hp, bp or bs",
		},
		&cli.StringFlag{
			Name:  "window",
			Value: "hamming",
			Usage: "window: boxcar, triang, hamming, hanning, blackman, flattop or kaiser",
		},
		&cli.Float64SliceFlag{
			Name:  "cutoff",
			Value: cli.NewFloat64Slice(0.5),
			Usage: "normalized cutoff (1 is Nyquist); repeat for bp and bs",
		},
		&cli.Float64Flag{
			Name:  "beta",
			Value: 8,
			Usage: "kaiser window beta",
		},
		&cli.StringFlag{
			Name:  "wav",
			Usage: "write the taps to this WAV file",
		},
	}
}

func firFromContext(cCtx *cli.Context) FIRDesign {
	return FIRDesign{
		Name:   cCtx.Command.Name,
		Length: cCtx.Int("length"),
		Kind:   cCtx.String("kind"),
		Window: cCtx.String("window"),
		Cutoff: cCtx.Float64Slice("cutoff"),
		Beta:   cCtx.Float64("beta"),
		WAV:    cCtx.String("wav"),
	}
}

func newRunner(cCtx *cli.Context) *runner {
	return &runner{
		out:        cCtx.App.Writer,
		sampleRate: cCtx.Float64("sample-rate"),
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:                 "filterdesign",
		Usage:                "Design FIR, polyphase and IIR filters",
		EnableBashCompletion: true,
		Writer:               out,
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:    "sample-rate",
				Aliases: []string{"fs"},
				Value:   defaultSampleRate,
				Usage:   "sample rate in Hz",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "json-log",
				Usage: "emit logs as JSON",
			},
		},
		Before: func(cCtx *cli.Context) error {
			log.SetOutput(cCtx.App.ErrWriter)

			if cCtx.Bool("verbose") {
				log.SetLevel(log.DebugLevel)
			}

			if cCtx.Bool("json-log") {
				log.SetFormatter(&log.JSONFormatter{})
			}

			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "fir",
				Usage: "Design a windowed-sinc FIR filter",
				Flags: firFlags(),
				Action: func(cCtx *cli.Context) error {
					return newRunner(cCtx).runFIR(firFromContext(cCtx))
				},
			},
			{
				Name:  "pfir",
				Usage: "Design a FIR prototype and split it into a polyphase bank",
				Flags: append(firFlags(),
					&cli.IntFlag{
						Name:  "branches",
						Value: 4,
						Usage: "number of polyphase branches",
					},
					&cli.Float64Flag{
						Name:  "gain",
						Value: 1,
						Usage: "gain applied to every tap",
					},
					&cli.BoolFlag{
						Name:  "reverse",
						Usage: "store each branch time-reversed",
					},
					&cli.BoolFlag{
						Name:  "odd",
						Usage: "alternate the sign of every other column",
					},
				),
				Action: func(cCtx *cli.Context) error {
					d := firFromContext(cCtx)
					d.Polyphase = &PolyphaseDesign{
						Branches: cCtx.Int("branches"),
						Gain:     cCtx.Float64("gain"),
						Reverse:  cCtx.Bool("reverse"),
						Odd:      cCtx.Bool("odd"),
					}

					return newRunner(cCtx).runFIR(d)
				},
			},
			{
				Name:  "iir",
				Usage: "Design a Butterworth lowpass biquad cascade",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "order",
						Value: 4,
						Usage: "filter order (even)",
					},
					&cli.Float64Flag{
						Name:  "cutoff-hz",
						Value: 1000,
						Usage: "cutoff frequency in Hz",
					},
					&cli.Float64Flag{
						Name:  "q",
						Value: 1,
						Usage: "resonance applied to every section, 1 to 1000",
					},
					&cli.StringFlag{
						Name:  "wav",
						Usage: "write the impulse response to this WAV file",
					},
					&cli.IntFlag{
						Name:  "ir-length",
						Value: defaultIRLength,
						Usage: "impulse response length in samples",
					},
				},
				Action: func(cCtx *cli.Context) error {
					return newRunner(cCtx).runIIR(IIRDesign{
						Name:     cCtx.Command.Name,
						Order:    cCtx.Int("order"),
						CutoffHz: cCtx.Float64("cutoff-hz"),
						Q:        cCtx.Float64("q"),
						WAV:      cCtx.String("wav"),
						IRLength: cCtx.Int("ir-length"),
					})
				},
			},
			{
				Name:      "run",
				Usage:     "Design every filter listed in a YAML file",
				ArgsUsage: "FILE",
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() < 1 {
						return errMissingFile
					}

					df, err := LoadDesignFile(cCtx.Args().First())
					if err != nil {
						return err
					}

					log.WithFields(log.Fields{
						"fir": len(df.FIR),
						"iir": len(df.IIR),
					}).Debug("loaded design file")

					return newRunner(cCtx).runFile(df)
				},
			},
		},
	}
}
