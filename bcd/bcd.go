/*
Package bcd implements the packed decimal encoding used for money and casino
coins.

Each byte holds two decimal digits, most significant in the upper nibble. A
nibble above 9 is read as 0.
*/
package bcd

import (
	"errors"
	"fmt"

	"github.com/bodgit/gen1save/buffer"
	"github.com/bodgit/gen1save/layout"
)

// ErrValueOutOfRange is returned when a value has more digits than the
// field can hold
var ErrValueOutOfRange = errors.New("bcd: value out of range")

const maxBytes = 4

func digit(nibble byte) uint32 {
	if nibble > 9 {
		return 0
	}
	return uint32(nibble)
}

// Max returns the largest value that fits in n bytes
func Max(n int) uint32 {
	m := uint32(1)
	for i := 0; i < n; i++ {
		m *= 100
	}
	return m - 1
}

// Decode returns the value held in p, which must be at most four bytes
func Decode(p []byte) uint32 {
	var v uint32
	for _, b := range p {
		v = v*100 + digit(b>>4)*10 + digit(b&0x0f)
	}
	return v
}

// Encode returns v packed into n bytes
func Encode(v uint32, n int) ([]byte, error) {
	if n < 1 || n > maxBytes {
		return nil, fmt.Errorf("bcd: invalid width %d", n)
	}
	if v > Max(n) {
		return nil, fmt.Errorf("%w: %d does not fit in %d bytes, maximum %d", ErrValueOutOfRange, v, n, Max(n))
	}

	p := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		p[i] = byte(v%10) | byte(v/10%10)<<4
		v /= 100
	}
	return p, nil
}

// Read decodes the n bytes at offset off
func Read(b *buffer.Buffer, off, n int) (uint32, error) {
	if n > maxBytes {
		return 0, fmt.Errorf("bcd: invalid width %d", n)
	}
	p, err := b.Slice(off, n)
	if err != nil {
		return 0, err
	}
	return Decode(p), nil
}

// Write encodes v into the n bytes at offset off. Nothing is written if v is
// out of range or the field does not fit in the buffer.
func Write(b *buffer.Buffer, off, n int, v uint32) error {
	p, err := Encode(v, n)
	if err != nil {
		return err
	}
	_, err = b.WriteAt(p, int64(off))
	return err
}

// ReadMoney returns the player's money
func ReadMoney(b *buffer.Buffer) (uint32, error) {
	return Read(b, layout.MoneyOffset, layout.MoneyLength)
}

// WriteMoney sets the player's money, 0-999999
func WriteMoney(b *buffer.Buffer, v uint32) error {
	return Write(b, layout.MoneyOffset, layout.MoneyLength, v)
}

// ReadCoins returns the player's casino coins
func ReadCoins(b *buffer.Buffer) (uint16, error) {
	v, err := Read(b, layout.CoinsOffset, layout.CoinsLength)
	return uint16(v), err
}

// WriteCoins sets the player's casino coins, 0-9999
func WriteCoins(b *buffer.Buffer, v uint16) error {
	return Write(b, layout.CoinsOffset, layout.CoinsLength, uint32(v))
}
