// Package window fills caller-owned buffers with the window functions used
// by windowed-sinc FIR design: boxcar, triangular, Hamming, Hanning,
// Blackman, flat-top and Kaiser.
//
// All windows are symmetric. A single-point window is always 1.
package window
