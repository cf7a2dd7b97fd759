package fir

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Eval returns the dot product of the taps w and the samples x over their
// common length.
//
//	y = sum_{i} w[i] * x[i]
func Eval(w, x []float64) float64 {
	n := min(len(w), len(x))
	if n == 0 {
		return 0
	}

	return vecmath.DotProduct(w[:n], x[:n])
}

// NewQueue allocates the sample history used by [PushBank] and [EvalBank]
// for k branches of length l. Every row holds 2*l samples.
func NewQueue(k, l int) [][]float64 {
	return NewBank(k, 2*l)
}

// PushBank writes in[i] into branch i of queue at position xi and at its
// mirror xi+l, and returns the next position. The mirrored write keeps the
// last l samples contiguous so [EvalBank] never wraps. xi is reduced
// modulo l, where l is half the row length.
func PushBank(queue [][]float64, xi int, in []float64) int {
	if len(queue) == 0 {
		return xi
	}

	l := len(queue[0]) / 2
	if l == 0 {
		return xi
	}

	xi %= l
	if xi < 0 {
		xi += l
	}

	for i := range min(len(queue), len(in)) {
		queue[i][xi] = in[i]
		queue[i][xi+l] = in[i]
	}

	return (xi + 1) % l
}

// EvalBank runs every branch of a polyphase bank over its history in queue,
// starting at position xi, and stores branch i's output in dst[i]. The
// oldest sample meets bank[i][0].
func EvalBank(dst []float64, bank, queue [][]float64, xi int) error {
	k := len(bank)
	if k == 0 {
		return ErrNoBranches
	}

	if len(dst) < k {
		return ErrOutputSize
	}

	if len(queue) < k {
		return fmt.Errorf("%w: %d rows for %d branches", ErrQueueSize, len(queue), k)
	}

	for i := range k {
		l := len(bank[i])
		if len(queue[i]) < 2*l || xi < 0 || xi >= max(l, 1) {
			return fmt.Errorf("%w: row %d len=%d l=%d xi=%d", ErrQueueSize, i, len(queue[i]), l, xi)
		}
	}

	for i := range k {
		l := len(bank[i])
		dst[i] = Eval(bank[i], queue[i][xi:xi+l])
	}

	return nil
}
