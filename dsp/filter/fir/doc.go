// Package fir designs linear-phase FIR filters with the window method.
//
// [Design] fills a caller-owned tap buffer with a lowpass, highpass,
// bandpass or bandstop windowed-sinc filter selected by a [Flags] word, for
// example LP|Hamming. [DesignPolyphase] repacks a prototype into the
// branches of a polyphase bank for multirate use.
//
// Neither function allocates. [Eval], [PushBank] and [EvalBank] are small
// evaluation helpers for checking designs; streaming convolution of real
// signals is left to the caller.
package fir
