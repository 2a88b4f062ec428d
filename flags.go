package gen1save

import (
	"math/bits"

	"github.com/bodgit/gen1save/layout"
	"github.com/bodgit/gen1save/species"
)

// FlagSummary counts the completed event flags
type FlagSummary struct {
	Checked int   `yaml:"checked"`
	Set     int   `yaml:"set"`
	Indices []int `yaml:"indices,flow"`
}

// EventFlags returns the set event flags. Flag n is bit n%8 of byte n/8.
func (s *Save) EventFlags() (FlagSummary, error) {
	p, err := s.buf.Slice(layout.EventFlagsOffset, layout.EventFlagsLength)
	if err != nil {
		return FlagSummary{}, err
	}

	f := FlagSummary{
		Checked: len(p) * 8,
	}
	for i, b := range p {
		f.Set += bits.OnesCount8(b)
		for bit := 0; b != 0 && bit < 8; bit++ {
			if b&(1<<uint(bit)) != 0 {
				f.Indices = append(f.Indices, i*8+bit)
			}
		}
	}

	return f, nil
}

// PokedexSummary lists the owned and seen Pokémon by Pokédex number
type PokedexSummary struct {
	Owned      []int    `yaml:"owned,flow"`
	Seen       []int    `yaml:"seen,flow"`
	OwnedNames []string `yaml:"owned_names,omitempty,flow"`
	SeenNames  []string `yaml:"seen_names,omitempty,flow"`
}

// Pokedex returns the owned and seen Pokédex entries, optionally with the
// species names
func (s *Save) Pokedex(names bool) (PokedexSummary, error) {
	owned, err := s.buf.Slice(layout.PokedexOwnedOffset, layout.PokedexLength)
	if err != nil {
		return PokedexSummary{}, err
	}
	seen, err := s.buf.Slice(layout.PokedexSeenOffset, layout.PokedexLength)
	if err != nil {
		return PokedexSummary{}, err
	}

	var d PokedexSummary
	for n := 1; n <= layout.PokedexSize; n++ {
		i, bit := (n-1)/8, uint(n-1)%8
		if owned[i]&(1<<bit) != 0 {
			d.Owned = append(d.Owned, n)
			if names {
				d.OwnedNames = append(d.OwnedNames, species.NameByNumber(n))
			}
		}
		if seen[i]&(1<<bit) != 0 {
			d.Seen = append(d.Seen, n)
			if names {
				d.SeenNames = append(d.SeenNames, species.NameByNumber(n))
			}
		}
	}

	return d, nil
}
