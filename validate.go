package gen1save

import (
	"fmt"
	"log"

	"github.com/bodgit/gen1save/buffer"
	"github.com/bodgit/gen1save/checksum"
	"github.com/bodgit/gen1save/layout"
)

// ExpectedSize is the size of a standard save
const ExpectedSize = layout.ExpectedSize

// SizeError is returned when a save is not the expected size
type SizeError struct {
	Size int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("unexpected save size %d bytes, expected %d", e.Size, ExpectedSize)
}

// HasExpectedSize reports whether b is exactly ExpectedSize bytes
func HasExpectedSize(b *buffer.Buffer) bool {
	return b.Len() == ExpectedSize
}

// RequireExpectedSize returns a *SizeError unless b is exactly ExpectedSize
// bytes
func RequireExpectedSize(b *buffer.Buffer) error {
	if !HasExpectedSize(b) {
		return &SizeError{Size: b.Len()}
	}
	return nil
}

// HasValidMainChecksum reports whether the main checksum matches. A buffer
// too short to hold it is reported as invalid.
func HasValidMainChecksum(b *buffer.Buffer) bool {
	ok, err := checksum.ValidateMain(b)
	return err == nil && ok
}

// CheckSize warns about a save that is not the expected size. Larger files,
// such as those with trailing clock data, are accepted; smaller ones return
// a *SizeError.
func CheckSize(b *buffer.Buffer, logger *log.Logger) error {
	if HasExpectedSize(b) {
		return nil
	}
	if b.Len() < ExpectedSize {
		return &SizeError{Size: b.Len()}
	}
	logger.Printf("Save is %d bytes, expected %d, ignoring %d trailing bytes\n", b.Len(), ExpectedSize, b.Len()-ExpectedSize)
	return nil
}

// ChecksumReport holds the validity of every checksum in a save
type ChecksumReport struct {
	Main  bool               `yaml:"main"`
	Bank2 bool               `yaml:"bank2"`
	Bank3 bool               `yaml:"bank3"`
	Boxes [layout.Boxes]bool `yaml:"boxes,flow"`
}

// Valid reports whether every checksum matches
func (r ChecksumReport) Valid() bool {
	if !r.Main || !r.Bank2 || !r.Bank3 {
		return false
	}
	for _, ok := range r.Boxes {
		if !ok {
			return false
		}
	}
	return true
}

// InvalidBoxes returns the 1-based indices of boxes with a bad checksum
func (r ChecksumReport) InvalidBoxes() []int {
	var l []int
	for i, ok := range r.Boxes {
		if !ok {
			l = append(l, i+1)
		}
	}
	return l
}

func valid(ok bool, err error) bool {
	return err == nil && ok
}

// Checksums validates every checksum in the save. Any checksum that cannot
// be read counts as invalid.
func (s *Save) Checksums() ChecksumReport {
	r := ChecksumReport{
		Main:  HasValidMainChecksum(s.buf),
		Bank2: valid(checksum.ValidateBank(s.buf, 2)),
		Bank3: valid(checksum.ValidateBank(s.buf, 3)),
	}
	for box := 1; box <= layout.Boxes; box++ {
		r.Boxes[box-1] = valid(checksum.ValidateBox(s.buf, box))
	}

	if !r.Main {
		s.logger.Println("Main checksum does not match")
	}
	if !r.Bank2 {
		s.logger.Println("Bank 2 checksum does not match")
	}
	if !r.Bank3 {
		s.logger.Println("Bank 3 checksum does not match")
	}
	for _, box := range r.InvalidBoxes() {
		s.logger.Printf("Box %d checksum does not match\n", box)
	}

	return r
}

// Repair recomputes and stores every checksum in the save
func (s *Save) Repair() error {
	return checksum.RepairAll(s.buf)
}
