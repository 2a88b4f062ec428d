/*
Package layout describes where everything lives in a 32 KiB Generation I
(Red/Blue) save file.

The file is split into four 8 KiB banks. Bank 0 holds the Hall of Fame and
other scratch data with no checksum. Bank 1 holds the main game state covered
by the main checksum. Banks 2 and 3 each hold six PC boxes followed by a
checksum over the whole bank and a table of six per-box checksums.

Unless stated otherwise multi-byte fields are little-endian. The trainer ID is
big-endian and money and coins are packed decimal.
*/
package layout

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex is returned for a box index outside 1-12 or a bank index
// other than 2 or 3
var ErrInvalidIndex = errors.New("layout: invalid index")

// ExpectedSize is the size of a standard save
const ExpectedSize = 0x8000

// Banks
const (
	BankSize  = 0x2000
	Bank0Base = 0x0000
	Bank1Base = 0x2000
	Bank2Base = 0x4000
	Bank3Base = 0x6000
)

// Bank 1 fields
const (
	TrainerNameOffset = 0x2598
	NameLength        = 11 // including terminator

	PokedexOwnedOffset = 0x25a3
	PokedexSeenOffset  = 0x25b6
	PokedexLength      = 0x13 // bit n is Dex #n+1
	PokedexSize        = 151

	BagItemsOffset = 0x25c9
	BagItemsLength = 0x2a

	MoneyOffset = 0x25f3 // 3 bytes packed decimal
	MoneyLength = 3

	RivalNameOffset = 0x25f6

	OptionsOffset     = 0x2601
	BadgesOffset      = 0x2602 // bit n is gym n+1
	LetterDelayOffset = 0x2604

	TrainerIDOffset = 0x2605 // big-endian

	MusicIDOffset   = 0x2607
	MusicBankOffset = 0x2608
	ContrastOffset  = 0x2609

	MapIDOffset = 0x260a
	YOffset     = 0x260d
	XOffset     = 0x260e

	HallOfFameCountOffset = 0x284e

	CoinsOffset = 0x2850 // 2 bytes packed decimal
	CoinsLength = 2

	EventFlagsOffset = 0x29f3 // flag n is byte n/8, bit n%8
	EventFlagsLength = 0x140

	PlayTimeHoursOffset   = 0x2ced
	PlayTimeMaxedOffset   = 0x2cee
	PlayTimeMinutesOffset = 0x2cef
	PlayTimeSecondsOffset = 0x2cf0
	PlayTimeFramesOffset  = 0x2cf1
)

// Main checksum, computed over MainChecksumStart-MainChecksumEnd inclusive
const (
	MainChecksumStart  = 0x2598
	MainChecksumEnd    = 0x3522
	MainChecksumOffset = 0x3523
)

// Hall of Fame, bank 0
const (
	HallOfFameOffset     = 0x0598
	HallOfFameRecords    = 50
	HallOfFameRecordSize = 0x60
	HallOfFameLength     = HallOfFameRecords * HallOfFameRecordSize
	HallOfFameMembers    = 6
	HallOfFameMemberSize = 0x10

	// Offsets within a member entry
	HallOfFameSpecies = 0x00
	HallOfFameLevel   = 0x01
	HallOfFameName    = 0x02
)

// PC boxes, banks 2 and 3
const (
	Boxes        = 12
	BoxesPerBank = 6
	BoxSize      = 0x462

	Box1Offset = Bank2Base
	Box7Offset = Bank3Base

	Bank2ChecksumOffset     = 0x5a4c
	Bank2BoxChecksumsOffset = 0x5a4d
	Bank3ChecksumOffset     = 0x7a4c
	Bank3BoxChecksumsOffset = 0x7a4d
	BoxChecksumsLength      = BoxesPerBank
)

const (
	firstBoxBank = 2
	lastBoxBank  = 3
)

// Sub-layout of a box block
const (
	BoxCountOffset   = 0x00
	BoxSpeciesOffset = 0x01
	BoxCapacity      = 20
	BoxMembersOffset = BoxSpeciesOffset + BoxCapacity + 1 // count, species list, padding
	BoxMemberSize    = 0x21

	// BoxMemberLevel is the offset of the level byte within a box member.
	// Low confidence; this has not been verified against real saves.
	BoxMemberLevel = 0x03
)

func checkBox(box int) error {
	if box < 1 || box > Boxes {
		return fmt.Errorf("%w: box %d", ErrInvalidIndex, box)
	}
	return nil
}

func checkBank(bank int) error {
	if bank < firstBoxBank || bank > lastBoxBank {
		return fmt.Errorf("%w: bank %d", ErrInvalidIndex, bank)
	}
	return nil
}

// BoxOffset returns the offset of the block for box (1-12)
func BoxOffset(box int) (int, error) {
	if err := checkBox(box); err != nil {
		return 0, err
	}
	if box <= BoxesPerBank {
		return Box1Offset + (box-1)*BoxSize, nil
	}
	return Box7Offset + (box-BoxesPerBank-1)*BoxSize, nil
}

// BoxBank returns the bank (2 or 3) holding box and the 0-based position of
// the box within that bank.
func BoxBank(box int) (int, int, error) {
	if err := checkBox(box); err != nil {
		return 0, 0, err
	}
	if box <= BoxesPerBank {
		return firstBoxBank, box - 1, nil
	}
	return lastBoxBank, box - BoxesPerBank - 1, nil
}

// BankBase returns the offset of the start of bank (2 or 3)
func BankBase(bank int) (int, error) {
	if err := checkBank(bank); err != nil {
		return 0, err
	}
	if bank == firstBoxBank {
		return Bank2Base, nil
	}
	return Bank3Base, nil
}

// BankChecksumOffset returns the offset of the checksum covering the boxes
// of bank (2 or 3)
func BankChecksumOffset(bank int) (int, error) {
	if err := checkBank(bank); err != nil {
		return 0, err
	}
	if bank == firstBoxBank {
		return Bank2ChecksumOffset, nil
	}
	return Bank3ChecksumOffset, nil
}

// BoxChecksumTable returns the offset of the per-box checksum table in the
// bank holding box
func BoxChecksumTable(box int) (int, error) {
	bank, _, err := BoxBank(box)
	if err != nil {
		return 0, err
	}
	if bank == firstBoxBank {
		return Bank2BoxChecksumsOffset, nil
	}
	return Bank3BoxChecksumsOffset, nil
}

// BoxChecksumOffset returns the offset of the checksum byte for box
func BoxChecksumOffset(box int) (int, error) {
	table, err := BoxChecksumTable(box)
	if err != nil {
		return 0, err
	}
	_, pos, _ := BoxBank(box)
	return table + pos, nil
}

// BoxBankChecksumOffset returns the offset of the bank checksum covering box
func BoxBankChecksumOffset(box int) (int, error) {
	bank, _, err := BoxBank(box)
	if err != nil {
		return 0, err
	}
	return BankChecksumOffset(bank)
}

// HallOfFameMemberOffset returns the offset of member (0-5) of record (0-49)
func HallOfFameMemberOffset(record, member int) int {
	return HallOfFameOffset + record*HallOfFameRecordSize + member*HallOfFameMemberSize
}
