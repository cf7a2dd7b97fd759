package window

import (
	"errors"
	"fmt"
)

var (
	errEmptyBuffer = errors.New("window buffer must not be empty")
	errUnknownType = errors.New("unknown window type")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window size must be > 0: %d", size)
	}
	return nil
}

func validateKaiser(size int, beta float64) error {
	if size <= 0 {
		return validateLength(size)
	}
	if !(beta >= 0) {
		return fmt.Errorf("kaiser beta must be >= 0: %f", beta)
	}
	return nil
}

func unknownName(name string) error {
	return fmt.Errorf("%w: %q", errUnknownType, name)
}
