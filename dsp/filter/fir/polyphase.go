package fir

// DesignPolyphase splits the prototype filter proto into len(bank) branches
// of length l = len(proto)/len(bank), scaling every tap by gain.
//
// The prototype is walked once, column by column: tap j*k+i lands in
// bank[i][j]. With REW the columns are filled from the last to the first,
// which reverses every branch. When len(proto) is not a multiple of
// len(bank) the trailing taps are dropped.
//
// ODD negates every other column, turning a lowpass prototype into a
// highpass bank. The forward walk negates the even columns while the
// reverse walk negates the odd ones.
//
// Rows of bank may be longer than l; only the first l entries are written.
// On error the bank is left untouched.
func DesignPolyphase(bank [][]float64, proto []float64, gain float64, flags Flags) error {
	if len(proto) == 0 {
		return ErrEmptyTaps
	}

	k := len(bank)
	if k < 1 {
		return ErrNoBranches
	}

	l := len(proto) / k
	if l < 1 {
		return ErrShortPrototype
	}

	for i := range bank {
		if len(bank[i]) < l {
			return ErrShortRow
		}
	}

	odd := flags&ODD != 0
	p := 0

	if flags&REW != 0 {
		for j := l - 1; j >= 0; j-- {
			s := 1.0
			if odd && j&1 == 1 {
				s = -1
			}

			for i := range k {
				t := gain * proto[p]
				bank[i][j] = t * s
				p++
			}
		}

		return nil
	}

	for j := range l {
		s := 1.0
		if odd && j&1 == 0 {
			s = -1
		}

		for i := range k {
			t := gain * proto[p]
			bank[i][j] = t * s
			p++
		}
	}

	return nil
}

// NewBank allocates a k by l polyphase bank backed by a single slice.
func NewBank(k, l int) [][]float64 {
	if k <= 0 || l <= 0 {
		return nil
	}

	data := make([]float64, k*l)
	bank := make([][]float64, k)

	for i := range bank {
		bank[i] = data[i*l : (i+1)*l : (i+1)*l]
	}

	return bank
}
