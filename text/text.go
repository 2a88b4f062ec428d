/*
Package text implements the subset of the Generation I character set used for
trainer and Pokémon names.

Only upper case letters, digits and space are supported. Names are stored in
fixed-length fields terminated, and padded, with 0x50.
*/
package text

import (
	"github.com/bodgit/gen1save/buffer"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// Terminator ends a name and pads the rest of the field
	Terminator byte = 0x50
	// Space is the code used for a space and any unsupported character
	Space byte = 0x7f
	// Placeholder is returned when decoding a byte with no mapping
	Placeholder = '?'

	letters = 0x80 // A-Z, 0x80-0x99
	digits  = 0xa0 // 0-9, 0xa0-0xa9
)

// DecodeByte returns the character for c and false if c is the terminator
func DecodeByte(c byte) (rune, bool) {
	switch {
	case c == Terminator:
		return 0, false
	case c == Space:
		return ' ', true
	case c >= letters && c < letters+26:
		return rune('A' + c - letters), true
	case c >= digits && c < digits+10:
		return rune('0' + c - digits), true
	default:
		return Placeholder, true
	}
}

// EncodeRune returns the code for an upper case letter, digit or space.
// Anything else is encoded as Space.
func EncodeRune(r rune) byte {
	switch {
	case r >= 'A' && r <= 'Z':
		return letters + byte(r-'A')
	case r >= '0' && r <= '9':
		return digits + byte(r-'0')
	default:
		return Space
	}
}

// DecodeBytes decodes p up to the first terminator
func DecodeBytes(p []byte) string {
	s := make([]rune, 0, len(p))
	for _, c := range p {
		r, ok := DecodeByte(c)
		if !ok {
			break
		}
		s = append(s, r)
	}
	return string(s)
}

// EncodeBytes encodes name into a field of n bytes. The name is upper cased
// first and truncated so that a terminator always follows it.
func EncodeBytes(name string, n int) []byte {
	if n <= 0 {
		return nil
	}

	p := make([]byte, n)
	for i := range p {
		p[i] = Terminator
	}

	i := 0
	for _, r := range cases.Upper(language.Und).String(name) {
		if i == n-1 {
			break
		}
		p[i] = EncodeRune(r)
		i++
	}

	return p
}

// Decode reads the name stored in the n bytes at offset off
func Decode(b *buffer.Buffer, off, n int) (string, error) {
	p, err := b.Slice(off, n)
	if err != nil {
		return "", err
	}
	return DecodeBytes(p), nil
}

// Encode writes name to the n bytes at offset off. Nothing is written if the
// field does not fit in the buffer.
func Encode(b *buffer.Buffer, off, n int, name string) error {
	if err := b.Check(off, n); err != nil {
		return err
	}
	_, err := b.WriteAt(EncodeBytes(name, n), int64(off))
	return err
}
