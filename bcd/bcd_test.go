package bcd

import (
	"testing"

	"github.com/bodgit/gen1save/buffer"
	"github.com/bodgit/gen1save/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		p    []byte
		v    uint32
	}{
		{"zero", []byte{0x00, 0x00, 0x00}, 0},
		{"money", []byte{0x12, 0x34, 0x56}, 123456},
		{"max money", []byte{0x99, 0x99, 0x99}, 999999},
		{"coins", []byte{0x09, 0x87}, 987},
		{"bad nibbles", []byte{0xab, 0x1f}, 10},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.v, Decode(tt.p))
		})
	}
}

func TestEncode(t *testing.T) {
	p, err := Encode(3000, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x30, 0x00}, p)

	p, err = Encode(9999, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x99, 0x99}, p)

	_, err = Encode(1000000, 3)
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	_, err = Encode(10000, 2)
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	_, err = Encode(1, 0)
	assert.Error(t, err)
	_, err = Encode(1, 5)
	assert.Error(t, err)
}

func TestMax(t *testing.T) {
	assert.Equal(t, uint32(99), Max(1))
	assert.Equal(t, uint32(9999), Max(2))
	assert.Equal(t, uint32(999999), Max(3))
	assert.Equal(t, uint32(99999999), Max(4))
}

func TestMoneyRoundTrip(t *testing.T) {
	b := buffer.New(make([]byte, layout.ExpectedSize))

	for _, v := range []uint32{0, 1, 9, 10, 3000, 123456, 500000, 999998, 999999} {
		require.NoError(t, WriteMoney(b, v))
		got, err := ReadMoney(b)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	before := append([]byte(nil), b.Bytes()...)
	assert.ErrorIs(t, WriteMoney(b, 1000000), ErrValueOutOfRange)
	assert.Equal(t, before, b.Bytes())
}

func TestCoinsRoundTrip(t *testing.T) {
	b := buffer.New(make([]byte, layout.ExpectedSize))

	for _, v := range []uint16{0, 7, 50, 999, 1234, 9999} {
		require.NoError(t, WriteCoins(b, v))
		got, err := ReadCoins(b)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	before := append([]byte(nil), b.Bytes()...)
	assert.ErrorIs(t, WriteCoins(b, 10000), ErrValueOutOfRange)
	assert.Equal(t, before, b.Bytes())
}

func TestShortBuffer(t *testing.T) {
	b := buffer.New(make([]byte, layout.MoneyOffset+2))

	_, err := ReadMoney(b)
	assert.ErrorIs(t, err, buffer.ErrOutOfRange)

	assert.ErrorIs(t, WriteMoney(b, 1), buffer.ErrOutOfRange)
	assert.Equal(t, make([]byte, layout.MoneyOffset+2), b.Bytes())
}
