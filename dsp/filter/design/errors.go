package design

import "errors"

var (
	ErrNilGain   = errors.New("design: gain accumulator must not be nil")
	ErrNilOutput = errors.New("design: output coefficients must not be nil")
	ErrQRange    = errors.New("design: Q must be in [1, 1000]")
	ErrOrder     = errors.New("design: order must be even and > 0")
	ErrCutoff    = errors.New("design: cutoff must satisfy 0 < fc < fs/2")
	ErrNoSection = errors.New("design: cascade needs at least one section")
)
