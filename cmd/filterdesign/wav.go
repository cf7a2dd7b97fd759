package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	wavBitDepth = 24
	wavPCM      = 1
)

var errEmptyResponse = errors.New("impulse response is empty")

// WriteImpulseWAV stores ir as a mono 24-bit PCM file. Samples are written
// at their true level with 1.0 mapped to full scale; anything beyond is
// clipped.
func WriteImpulseWAV(path string, ir []float64, sampleRate int) error {
	if len(ir) == 0 {
		return errEmptyResponse
	}

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	outFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer outFile.Close()

	enc := wav.NewEncoder(outFile, sampleRate, wavBitDepth, 1, wavPCM)

	buf := &audio.IntBuffer{
		Data:           quantize(ir, wavBitDepth),
		Format:         &audio.Format{SampleRate: sampleRate, NumChannels: 1},
		SourceBitDepth: wavBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write to WAV encoder: %w", err)
	}

	return enc.Close()
}

// quantize converts floating-point samples to signed integers of the given
// bit depth.
func quantize(x []float64, bitDepth int) []int {
	full := float64(int(1)<<(bitDepth-1) - 1)
	out := make([]int, len(x))

	for i, v := range x {
		v = math.Max(-1, math.Min(1, v))
		out[i] = int(math.Round(v * full))
	}

	return out
}
