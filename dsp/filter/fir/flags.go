package fir

import (
	"strings"

	"github.com/cwbudde/algo-filterdesign/dsp/window"
)

// Flags is a bit-field combining exactly one window kind and one filter
// kind for [Design], or the direction and shape bits for [DesignPolyphase].
//
//	fir.LP | fir.Hamming
//	fir.REW | fir.ODD
type Flags uint32

// Window selection.
const (
	Boxcar Flags = 1 << iota
	Triang
	Hamming
	Hanning
	Blackman
	FlatTop
	Kaiser
)

// Filter kind.
const (
	LP Flags = 1 << (iota + 8)
	HP
	BP
	BS
)

// Polyphase direction and shape. FWD is the zero value.
const (
	FWD Flags = 0
	REW Flags = 1 << (iota + 15)
	ODD
)

const (
	WindowMask = Boxcar | Triang | Hamming | Hanning | Blackman | FlatTop | Kaiser
	KindMask   = LP | HP | BP | BS
)

var windowFlags = map[Flags]window.Type{
	Boxcar:   window.TypeBoxcar,
	Triang:   window.TypeTriang,
	Hamming:  window.TypeHamming,
	Hanning:  window.TypeHanning,
	Blackman: window.TypeBlackman,
	FlatTop:  window.TypeFlatTop,
	Kaiser:   window.TypeKaiser,
}

var kindNames = map[Flags]string{
	LP: "lp",
	HP: "hp",
	BP: "bp",
	BS: "bs",
}

// Window returns the window type selected by f.
func (f Flags) Window() (window.Type, bool) {
	t, ok := windowFlags[f&WindowMask]
	return t, ok
}

// Kind returns the filter-kind bits of f. It is zero when no kind or more
// than one kind is set.
func (f Flags) Kind() Flags {
	switch k := f & KindMask; k {
	case LP, HP, BP, BS:
		return k
	default:
		return 0
	}
}

// String renders the window and kind bits, e.g. "lp|hamming".
func (f Flags) String() string {
	var parts []string
	if k := f.Kind(); k != 0 {
		parts = append(parts, kindNames[k])
	}

	if w, ok := f.Window(); ok {
		parts = append(parts, w.String())
	}

	if f&REW != 0 {
		parts = append(parts, "rew")
	}

	if f&ODD != 0 {
		parts = append(parts, "odd")
	}

	if len(parts) == 0 {
		return "0"
	}

	return strings.Join(parts, "|")
}

// WindowFlag maps a window type to its flag bit.
func WindowFlag(t window.Type) (Flags, error) {
	for f, wt := range windowFlags {
		if wt == t {
			return f, nil
		}
	}

	return 0, ErrUnknownWindow
}

// ParseKind resolves "lp", "hp", "bp" or "bs" (case-insensitive).
func ParseKind(name string) (Flags, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range kindNames {
		if n == name {
			return f, nil
		}
	}

	return 0, ErrUnknownKind
}
