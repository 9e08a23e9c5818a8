package cpf

import (
	"errors"
	"testing"
)

// FuzzParse checks that Parse never panics and that every accepted input
// round-trips through String and New.
func FuzzParse(f *testing.F) {
	f.Add("01678346063")
	f.Add("016.783.460-63")
	f.Add("0167834606a")
	f.Add("")
	f.Add("...-")
	f.Add("00000000000")
	f.Add(string([]byte{0xff, 0xfe, 0x00}))

	f.Fuzz(func(t *testing.T, input string) {
		c, err := Parse(input)
		if err != nil {
			if !errors.Is(err, ErrInvalidLength) && !errors.Is(err, ErrInvalidFormat) &&
				!errors.Is(err, ErrInvalidChecksum) && !errors.Is(err, ErrRepeatedDigits) {
				t.Fatalf("Parse(%q) returned unknown error kind: %v", input, err)
			}
			if !c.IsZero() {
				t.Fatalf("Parse(%q) returned a value alongside an error", input)
			}
			return
		}

		again, err := Parse(c.String())
		if err != nil || again != c {
			t.Fatalf("canonical form %q of %q did not round-trip: %v", c.String(), input, err)
		}
		fromInt, err := New(c.Value())
		if err != nil || fromInt != c {
			t.Fatalf("New(%d) disagrees with Parse(%q): %v", c.Value(), input, err)
		}
	})
}
