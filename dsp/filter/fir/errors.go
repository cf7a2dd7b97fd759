package fir

import "errors"

var (
	ErrEmptyTaps      = errors.New("fir: taps must not be empty")
	ErrUnknownWindow  = errors.New("fir: exactly one known window must be selected")
	ErrUnknownKind    = errors.New("fir: exactly one of LP, HP, BP, BS must be selected")
	ErrCutoffCount    = errors.New("fir: not enough cutoff frequencies for filter kind")
	ErrEvenLength     = errors.New("fir: HP and BS filters require odd length")
	ErrNoBranches     = errors.New("fir: polyphase bank must have at least one branch")
	ErrShortPrototype = errors.New("fir: prototype shorter than number of branches")
	ErrShortRow       = errors.New("fir: polyphase bank row shorter than branch length")
	ErrQueueSize      = errors.New("fir: queue rows must hold twice the branch length")
	ErrOutputSize     = errors.New("fir: output buffer shorter than number of branches")
)
