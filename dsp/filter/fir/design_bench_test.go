package fir

import (
	"fmt"
	"testing"
)

func BenchmarkDesign(b *testing.B) {
	for _, n := range []int{31, 127, 511} {
		taps := make([]float64, n)
		for _, kind := range []Flags{LP, HP, BP, BS} {
			b.Run(fmt.Sprintf("%s/n=%d", kind|Kaiser, n), func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					_ = Design(taps, []float64{0.2, 0.5}, kind|Kaiser, 8)
				}
			})
		}
	}
}

func BenchmarkDesignPolyphase(b *testing.B) {
	for _, k := range []int{2, 8, 32} {
		proto := make([]float64, 32*k)
		_ = Design(proto, []float64{1 / float64(k)}, LP|Hamming, 0)
		bank := NewBank(k, 32)

		b.Run(fmt.Sprintf("k=%d", k), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = DesignPolyphase(bank, proto, float64(k), REW)
			}
		})
	}
}
