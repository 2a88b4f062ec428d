/*
Package halloffame recovers the Hall of Fame teams from a save.

The records live in bank 0 which has no checksum, and the game leaves
unrelated data there until a record is written, so every member is checked
for a plausible species, level and name before it is accepted. The record
count kept in bank 1 decides how many of the surviving records are returned.
*/
package halloffame

import (
	"fmt"
	"strings"

	"github.com/bodgit/gen1save/buffer"
	"github.com/bodgit/gen1save/layout"
	"github.com/bodgit/gen1save/species"
	"github.com/bodgit/gen1save/text"
)

// Levels outside this range mark a member as garbage
const (
	MinLevel = 1
	MaxLevel = 100
)

// Member is one Pokémon of a Hall of Fame team
type Member struct {
	Species uint8  `yaml:"species"`
	Level   uint8  `yaml:"level"`
	Name    string `yaml:"name"`
}

// SpeciesName returns the name of the member's species
func (m Member) SpeciesName() string {
	return species.Name(m.Species)
}

func (m Member) String() string {
	return fmt.Sprintf("%s Lv %d %q", m.SpeciesName(), m.Level, m.Name)
}

// Entry is a single Hall of Fame team
type Entry struct {
	Index int      `yaml:"index"`
	Team  []Member `yaml:"team"`
}

func plausibleName(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	var n, bad int
	for _, r := range s {
		n++
		if r == text.Placeholder {
			bad++
		}
	}
	return bad*2 < n
}

func readMember(b *buffer.Buffer, off int) (Member, error) {
	var m Member
	p, err := b.Slice(off, layout.HallOfFameMemberSize)
	if err != nil {
		return m, err
	}
	m.Species = p[layout.HallOfFameSpecies]
	m.Level = p[layout.HallOfFameLevel]
	m.Name = text.DecodeBytes(p[layout.HallOfFameName : layout.HallOfFameName+layout.NameLength])
	return m, nil
}

func (m Member) plausible() bool {
	return species.Plausible(m.Species) && m.Level >= MinLevel && m.Level <= MaxLevel && plausibleName(m.Name)
}

func empty(id uint8) bool {
	return id == 0x00 || id == 0xff
}

// readRecord returns the valid members of record i. A bad first member
// discards the whole record, a bad later member is skipped.
func readRecord(b *buffer.Buffer, i int) ([]Member, error) {
	var team []Member
	for j := 0; j < layout.HallOfFameMembers; j++ {
		m, err := readMember(b, layout.HallOfFameMemberOffset(i, j))
		if err != nil {
			return nil, err
		}

		if empty(m.Species) {
			break
		}

		if !m.plausible() {
			if j == 0 {
				return nil, nil
			}
			continue
		}

		team = append(team, m)
	}
	return team, nil
}

// ScanAll returns every record that has at least one valid member, in
// storage order. Index is the 1-based slot the record was found in.
func ScanAll(b *buffer.Buffer) ([]Entry, error) {
	if err := b.Check(layout.HallOfFameOffset, layout.HallOfFameLength); err != nil {
		return nil, err
	}

	var entries []Entry
	for i := 0; i < layout.HallOfFameRecords; i++ {
		team, err := readRecord(b, i)
		if err != nil {
			return nil, err
		}
		if len(team) == 0 {
			continue
		}
		entries = append(entries, Entry{
			Index: i + 1,
			Team:  team,
		})
	}
	return entries, nil
}

// Count returns the number of records the game believes it has written,
// limited to the number of slots
func Count(b *buffer.Buffer) (int, error) {
	n, err := b.ReadU8(layout.HallOfFameCountOffset)
	if err != nil {
		return 0, err
	}
	if int(n) > layout.HallOfFameRecords {
		return layout.HallOfFameRecords, nil
	}
	return int(n), nil
}

// Window keeps the newest n entries, which are the last ones in storage
// order, and renumbers them from 1
func Window(entries []Entry, n int) []Entry {
	if n <= 0 {
		return []Entry{}
	}
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = Entry{
			Index: i + 1,
			Team:  e.Team,
		}
	}
	return out
}

// Scan returns the Hall of Fame teams. It only fails if the record count or
// the record area lies outside of the buffer; implausible data is dropped.
func Scan(b *buffer.Buffer) ([]Entry, error) {
	n, err := Count(b)
	if err != nil {
		return nil, err
	}

	entries, err := ScanAll(b)
	if err != nil {
		return nil, err
	}

	return Window(entries, n), nil
}
