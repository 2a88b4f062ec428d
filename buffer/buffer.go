/*
Package buffer implements a bounds-checked byte buffer holding the contents of
a Generation I save file.

Every accessor validates the requested range before touching the underlying
bytes so a failed call never leaves the buffer partially modified. Multi-byte
values do not share a single byte order in this format; the 16-bit accessors
come in both little and big-endian forms and the 24-bit accessors are always
big-endian.

A Buffer is not safe for concurrent use.
*/
package buffer

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned whenever an offset, length or bit index falls
// outside of the buffer
var ErrOutOfRange = errors.New("buffer: out of range")

// Buffer owns the raw bytes of a save file
type Buffer struct {
	b []byte
}

// New returns a Buffer that takes ownership of b. The length is not checked
// here, see the validators in the parent package.
func New(b []byte) *Buffer {
	return &Buffer{b: b}
}

// Len returns the size of the buffer in bytes
func (b *Buffer) Len() int {
	return len(b.b)
}

// Bytes returns the underlying byte slice, used when persisting the buffer
func (b *Buffer) Bytes() []byte {
	return b.b
}

// Check returns an error wrapping ErrOutOfRange if the n bytes starting at
// offset off are not all within the buffer.
func (b *Buffer) Check(off, n int) error {
	if off < 0 || n < 0 {
		return fmt.Errorf("%w: offset %#x, length %d", ErrOutOfRange, off, n)
	}
	end := off + n
	if end < off || off > len(b.b) || end > len(b.b) {
		return fmt.Errorf("%w: offset %#x, length %d, size %#x", ErrOutOfRange, off, n, len(b.b))
	}
	return nil
}

// ReadU8 returns the byte at offset off
func (b *Buffer) ReadU8(off int) (uint8, error) {
	if err := b.Check(off, 1); err != nil {
		return 0, err
	}
	return b.b[off], nil
}

// ReadU16LE returns the little-endian 16-bit value at offset off
func (b *Buffer) ReadU16LE(off int) (uint16, error) {
	if err := b.Check(off, 2); err != nil {
		return 0, err
	}
	return uint16(b.b[off]) | uint16(b.b[off+1])<<8, nil
}

// ReadU16BE returns the big-endian 16-bit value at offset off. The trainer
// ID is stored this way.
func (b *Buffer) ReadU16BE(off int) (uint16, error) {
	if err := b.Check(off, 2); err != nil {
		return 0, err
	}
	return uint16(b.b[off])<<8 | uint16(b.b[off+1]), nil
}

// ReadU24BE returns the big-endian 24-bit value at offset off
func (b *Buffer) ReadU24BE(off int) (uint32, error) {
	if err := b.Check(off, 3); err != nil {
		return 0, err
	}
	return uint32(b.b[off])<<16 | uint32(b.b[off+1])<<8 | uint32(b.b[off+2]), nil
}

// WriteU8 stores v at offset off
func (b *Buffer) WriteU8(off int, v uint8) error {
	if err := b.Check(off, 1); err != nil {
		return err
	}
	b.b[off] = v
	return nil
}

// WriteU16LE stores v at offset off in little-endian order
func (b *Buffer) WriteU16LE(off int, v uint16) error {
	if err := b.Check(off, 2); err != nil {
		return err
	}
	b.b[off] = byte(v)
	b.b[off+1] = byte(v >> 8)
	return nil
}

// WriteU16BE stores v at offset off in big-endian order
func (b *Buffer) WriteU16BE(off int, v uint16) error {
	if err := b.Check(off, 2); err != nil {
		return err
	}
	b.b[off] = byte(v >> 8)
	b.b[off+1] = byte(v)
	return nil
}

// WriteU24BE stores the low 24 bits of v at offset off in big-endian order
func (b *Buffer) WriteU24BE(off int, v uint32) error {
	if err := b.Check(off, 3); err != nil {
		return err
	}
	b.b[off] = byte(v >> 16)
	b.b[off+1] = byte(v >> 8)
	b.b[off+2] = byte(v)
	return nil
}

func checkBit(bit uint8) error {
	if bit > 7 {
		return fmt.Errorf("%w: bit index %d", ErrOutOfRange, bit)
	}
	return nil
}

// Bit reports whether bit (0-7, 0 being the least significant) of the byte
// at offset off is set.
func (b *Buffer) Bit(off int, bit uint8) (bool, error) {
	if err := checkBit(bit); err != nil {
		return false, err
	}
	if err := b.Check(off, 1); err != nil {
		return false, err
	}
	return b.b[off]&(1<<bit) != 0, nil
}

// SetBit sets or clears bit (0-7) of the byte at offset off
func (b *Buffer) SetBit(off int, bit uint8, v bool) error {
	if err := checkBit(bit); err != nil {
		return err
	}
	if err := b.Check(off, 1); err != nil {
		return err
	}
	if v {
		b.b[off] |= 1 << bit
	} else {
		b.b[off] &^= 1 << bit
	}
	return nil
}

// Slice returns a copy of the n bytes starting at offset off
func (b *Buffer) Slice(off, n int) ([]byte, error) {
	if err := b.Check(off, n); err != nil {
		return nil, err
	}
	s := make([]byte, n)
	copy(s, b.b[off:off+n])
	return s, nil
}

// ReadAt implements io.ReaderAt. Unlike a file, a short read is never
// performed; the whole of p must fit.
func (b *Buffer) ReadAt(p []byte, off int64) (int, error) {
	if off > int64(len(b.b)) {
		return 0, fmt.Errorf("%w: offset %#x", ErrOutOfRange, off)
	}
	if err := b.Check(int(off), len(p)); err != nil {
		return 0, err
	}
	return copy(p, b.b[off:]), nil
}

// WriteAt implements io.WriterAt. Either all of p is written or nothing is.
func (b *Buffer) WriteAt(p []byte, off int64) (int, error) {
	if off > int64(len(b.b)) {
		return 0, fmt.Errorf("%w: offset %#x", ErrOutOfRange, off)
	}
	if err := b.Check(int(off), len(p)); err != nil {
		return 0, err
	}
	return copy(b.b[off:], p), nil
}

// MarshalBinary returns a copy of the buffer contents
func (b *Buffer) MarshalBinary() ([]byte, error) {
	out := make([]byte, len(b.b))
	copy(out, b.b)
	return out, nil
}

// UnmarshalBinary replaces the buffer contents with a copy of data
func (b *Buffer) UnmarshalBinary(data []byte) error {
	b.b = make([]byte, len(data))
	copy(b.b, data)
	return nil
}
