package checksum

import (
	"math/rand"
	"testing"

	"github.com/bodgit/gen1save/buffer"
	"github.com/bodgit/gen1save/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		sum  uint8
	}{
		{"empty", nil, 0xff},
		{"zeroes", make([]byte, 16), 0xff},
		{"single", []byte{0x01}, 0xfe},
		{"wraps", []byte{0xff, 0x02}, 0xfe},
		{"many", []byte{0x10, 0x20, 0x30, 0x40}, ^uint8(0xa0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Checksum(tt.data))

			h := New()
			_, err := h.Write(tt.data)
			require.NoError(t, err)
			assert.Equal(t, []byte{tt.sum}, h.Sum(nil))
		})
	}
}

func TestDigest(t *testing.T) {
	h := New()
	assert.Equal(t, Size, h.Size())
	assert.Equal(t, 1, h.BlockSize())

	_, _ = h.Write([]byte{0x01, 0x02})
	_, _ = h.Write([]byte{0x03})
	assert.Equal(t, []byte{0xaa, ^uint8(6)}, h.Sum([]byte{0xaa}))

	h.Reset()
	assert.Equal(t, []byte{0xff}, h.Sum(nil))
}

func randomSave(t *testing.T) *buffer.Buffer {
	t.Helper()
	b := make([]byte, layout.ExpectedSize)
	rand.New(rand.NewSource(1)).Read(b)
	return buffer.New(b)
}

func TestMainChecksum(t *testing.T) {
	b := randomSave(t)

	var sum uint32
	for _, c := range b.Bytes()[layout.MainChecksumStart : layout.MainChecksumEnd+1] {
		sum += uint32(c)
	}

	got, err := Main(b)
	require.NoError(t, err)
	assert.Equal(t, ^uint8(sum), got)

	require.NoError(t, RepairMain(b))
	first := b.Bytes()[layout.MainChecksumOffset]
	assert.Equal(t, got, first)

	ok, err := ValidateMain(b)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, RepairMain(b))
	assert.Equal(t, first, b.Bytes()[layout.MainChecksumOffset])

	b.Bytes()[layout.MainChecksumStart]++
	ok, err = ValidateMain(b)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBox(t *testing.T) {
	b := randomSave(t)

	for box := 1; box <= layout.Boxes; box++ {
		require.NoError(t, RepairBox(b, box))

		off, err := layout.BoxChecksumOffset(box)
		require.NoError(t, err)
		first := b.Bytes()[off]

		ok, err := ValidateBox(b, box)
		require.NoError(t, err)
		assert.True(t, ok, "box %d", box)

		require.NoError(t, RepairBox(b, box))
		assert.Equal(t, first, b.Bytes()[off])
	}

	start, err := layout.BoxOffset(8)
	require.NoError(t, err)
	b.Bytes()[start+layout.BoxSize-1]++

	for box := 1; box <= layout.Boxes; box++ {
		ok, err := ValidateBox(b, box)
		require.NoError(t, err)
		assert.Equal(t, box != 8, ok, "box %d", box)
	}

	_, err = Box(b, 0)
	assert.ErrorIs(t, err, layout.ErrInvalidIndex)
	_, err = ValidateBox(b, 13)
	assert.ErrorIs(t, err, layout.ErrInvalidIndex)
	assert.ErrorIs(t, RepairBox(b, 13), layout.ErrInvalidIndex)
}

func TestBank(t *testing.T) {
	b := randomSave(t)

	for _, bank := range []int{2, 3} {
		require.NoError(t, RepairBank(b, bank))

		ok, err := ValidateBank(b, bank)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	// The bank checksum stops short of its own byte and the box table
	b.Bytes()[layout.Bank2BoxChecksumsOffset]++
	ok, err := ValidateBank(b, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	b.Bytes()[layout.Bank2Base]++
	ok, err = ValidateBank(b, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	for _, bank := range []int{0, 1, 4} {
		_, err := Bank(b, bank)
		assert.ErrorIs(t, err, layout.ErrInvalidIndex)
		_, err = ValidateBank(b, bank)
		assert.ErrorIs(t, err, layout.ErrInvalidIndex)
		assert.ErrorIs(t, RepairBank(b, bank), layout.ErrInvalidIndex)
	}
}

func TestScopesAreIndependent(t *testing.T) {
	b := randomSave(t)
	require.NoError(t, RepairAll(b))

	start, err := layout.BoxOffset(2)
	require.NoError(t, err)
	b.Bytes()[start+layout.BoxMembersOffset]++

	require.NoError(t, RepairBox(b, 2))

	ok, err := ValidateBox(b, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ValidateBank(b, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = ValidateMain(b)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, RepairBank(b, 2))
	ok, err = ValidateBank(b, 2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestShortBuffer(t *testing.T) {
	b := buffer.New(make([]byte, layout.MainChecksumOffset))

	_, err := ValidateMain(b)
	assert.ErrorIs(t, err, buffer.ErrOutOfRange)
	assert.ErrorIs(t, RepairMain(b), buffer.ErrOutOfRange)

	_, err = ValidateBox(b, 1)
	assert.ErrorIs(t, err, buffer.ErrOutOfRange)
	assert.ErrorIs(t, RepairAll(b), buffer.ErrOutOfRange)

	_, err = Range(b, 10, 9)
	assert.NoError(t, err)
	_, err = Range(b, 10, 8)
	assert.ErrorIs(t, err, buffer.ErrOutOfRange)
}
