/*
Package checksum implements the 8-bit checksum used by Generation I saves.

Every byte in a range is added together, the sum is truncated to 8 bits and
then inverted. The same algorithm protects the main game state, each of the
two PC box banks as a whole and each individual box.

Repairing a box checksum does not update the checksum of its bank, nor does
either update the main checksum. Callers that change box data must repair
the box and then the bank.
*/
package checksum

import "hash"

// Size of a checksum in bytes
const Size = 1

type digest struct {
	sum uint32
}

// New creates a new hash.Hash computing the checksum. Its Sum method appends
// the single checksum byte.
func New() hash.Hash {
	return &digest{}
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.sum = 0 }

// Update returns the result of adding the bytes in p to sum
func Update(sum uint32, p []byte) uint32 {
	for _, b := range p {
		sum += uint32(b)
	}
	return sum
}

func (d *digest) Write(p []byte) (n int, err error) {
	d.sum = Update(d.sum, p)
	return len(p), nil
}

func (d *digest) sum8() uint8 { return ^uint8(d.sum) }

func (d *digest) Sum(in []byte) []byte {
	return append(in, d.sum8())
}

// Checksum returns the checksum of data
func Checksum(data []byte) uint8 { return ^uint8(Update(0, data)) }
