package text

import (
	"testing"

	"github.com/bodgit/gen1save/buffer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeByte(t *testing.T) {
	tests := []struct {
		c  byte
		r  rune
		ok bool
	}{
		{0x80, 'A', true},
		{0x99, 'Z', true},
		{0xa0, '0', true},
		{0xa9, '9', true},
		{0x7f, ' ', true},
		{0x50, 0, false},
		{0x00, '?', true},
		{0x9a, '?', true},
		{0xaa, '?', true},
		{0xff, '?', true},
	}

	for _, tt := range tests {
		r, ok := DecodeByte(tt.c)
		assert.Equal(t, tt.ok, ok, "%#02x", tt.c)
		assert.Equal(t, tt.r, r, "%#02x", tt.c)
	}
}

func TestDecodeBytes(t *testing.T) {
	assert.Equal(t, "RED", DecodeBytes([]byte{0x91, 0x84, 0x83, 0x50, 0x80, 0x80}))
	assert.Equal(t, "AB", DecodeBytes([]byte{0x80, 0x81}))
	assert.Equal(t, "A?1", DecodeBytes([]byte{0x80, 0x00, 0xa1, 0x50}))
	assert.Equal(t, "", DecodeBytes([]byte{0x50, 0x80}))
}

func TestEncodeBytes(t *testing.T) {
	assert.Equal(t, []byte{0x91, 0x84, 0x83, 0x50, 0x50, 0x50}, EncodeBytes("red", 6))
	assert.Equal(t, []byte{0x80, 0x7f, 0xa1, 0x50}, EncodeBytes("a-1", 4))
	assert.Equal(t, []byte{0x80, 0x81, 0x50}, EncodeBytes("ABCDEF", 3))
	assert.Equal(t, []byte{0x50}, EncodeBytes("A", 1))
	assert.Nil(t, EncodeBytes("A", 0))
}

func TestRoundTrip(t *testing.T) {
	names := []string{"", "RED", "BLUE", "ASH 1", "0123456789", "ABCDEFGHIJ", "gary"}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			b := buffer.New(make([]byte, 16))
			require.NoError(t, Encode(b, 2, 11, name))

			got, err := Decode(b, 2, 11)
			require.NoError(t, err)
			assert.Equal(t, upper(name), got)
			assert.Equal(t, Terminator, b.Bytes()[2+len(name)])
		})
	}
}

func upper(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= 'a' && r <= 'z' {
			out[i] = r - 'a' + 'A'
		}
	}
	return string(out)
}

func TestEncodeFullField(t *testing.T) {
	b := buffer.New(make([]byte, 11))
	require.NoError(t, Encode(b, 0, 11, "ABCDEFGHIJK"))

	assert.Equal(t, Terminator, b.Bytes()[10])

	got, err := Decode(b, 0, 11)
	require.NoError(t, err)
	assert.Equal(t, "ABCDEFGHIJ", got)
}

func TestOutOfRange(t *testing.T) {
	b := buffer.New(make([]byte, 8))

	assert.ErrorIs(t, Encode(b, 0, 9, "RED"), buffer.ErrOutOfRange)
	assert.Equal(t, make([]byte, 8), b.Bytes())

	_, err := Decode(b, 4, 5)
	assert.ErrorIs(t, err, buffer.ErrOutOfRange)
}
