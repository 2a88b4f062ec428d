package checksum

import (
	"github.com/bodgit/gen1save/buffer"
	"github.com/bodgit/gen1save/layout"
)

// Range returns the checksum of the bytes from start to end inclusive
func Range(b *buffer.Buffer, start, end int) (uint8, error) {
	p, err := b.Slice(start, end-start+1)
	if err != nil {
		return 0, err
	}
	return Checksum(p), nil
}

func validate(b *buffer.Buffer, off int, compute func() (uint8, error)) (bool, error) {
	stored, err := b.ReadU8(off)
	if err != nil {
		return false, err
	}
	sum, err := compute()
	if err != nil {
		return false, err
	}
	return sum == stored, nil
}

func repair(b *buffer.Buffer, off int, compute func() (uint8, error)) error {
	if err := b.Check(off, 1); err != nil {
		return err
	}
	sum, err := compute()
	if err != nil {
		return err
	}
	return b.WriteU8(off, sum)
}

// Main returns the checksum of the main game state
func Main(b *buffer.Buffer) (uint8, error) {
	return Range(b, layout.MainChecksumStart, layout.MainChecksumEnd)
}

// ValidateMain reports whether the stored main checksum is correct. A
// mismatch is not an error.
func ValidateMain(b *buffer.Buffer) (bool, error) {
	return validate(b, layout.MainChecksumOffset, func() (uint8, error) {
		return Main(b)
	})
}

// RepairMain recomputes and stores the main checksum
func RepairMain(b *buffer.Buffer) error {
	return repair(b, layout.MainChecksumOffset, func() (uint8, error) {
		return Main(b)
	})
}

// Bank returns the checksum of all of the boxes in bank (2 or 3)
func Bank(b *buffer.Buffer, bank int) (uint8, error) {
	start, err := layout.BankBase(bank)
	if err != nil {
		return 0, err
	}
	off, err := layout.BankChecksumOffset(bank)
	if err != nil {
		return 0, err
	}
	return Range(b, start, off-1)
}

// ValidateBank reports whether the stored checksum for bank is correct
func ValidateBank(b *buffer.Buffer, bank int) (bool, error) {
	off, err := layout.BankChecksumOffset(bank)
	if err != nil {
		return false, err
	}
	return validate(b, off, func() (uint8, error) {
		return Bank(b, bank)
	})
}

// RepairBank recomputes and stores the checksum for bank
func RepairBank(b *buffer.Buffer, bank int) error {
	off, err := layout.BankChecksumOffset(bank)
	if err != nil {
		return err
	}
	return repair(b, off, func() (uint8, error) {
		return Bank(b, bank)
	})
}

// Box returns the checksum of box (1-12)
func Box(b *buffer.Buffer, box int) (uint8, error) {
	start, err := layout.BoxOffset(box)
	if err != nil {
		return 0, err
	}
	return Range(b, start, start+layout.BoxSize-1)
}

// ValidateBox reports whether the stored checksum for box is correct
func ValidateBox(b *buffer.Buffer, box int) (bool, error) {
	off, err := layout.BoxChecksumOffset(box)
	if err != nil {
		return false, err
	}
	return validate(b, off, func() (uint8, error) {
		return Box(b, box)
	})
}

// RepairBox recomputes and stores the checksum for box
func RepairBox(b *buffer.Buffer, box int) error {
	off, err := layout.BoxChecksumOffset(box)
	if err != nil {
		return err
	}
	return repair(b, off, func() (uint8, error) {
		return Box(b, box)
	})
}

// RepairAll repairs every box checksum, then both bank checksums and finally
// the main checksum
func RepairAll(b *buffer.Buffer) error {
	for box := 1; box <= layout.Boxes; box++ {
		if err := RepairBox(b, box); err != nil {
			return err
		}
	}
	for _, bank := range []int{2, 3} {
		if err := RepairBank(b, bank); err != nil {
			return err
		}
	}
	return RepairMain(b)
}
