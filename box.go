package gen1save

import (
	"github.com/bodgit/gen1save/halloffame"
	"github.com/bodgit/gen1save/layout"
)

// BoxStats summarises the contents of a PC box
type BoxStats struct {
	Box          int     `yaml:"box"`
	Count        int     `yaml:"count"`
	AverageLevel float64 `yaml:"average_level"`
}

// BoxStats returns the number of Pokémon in box (1-12) and their average
// level. Level bytes outside 1-100 are left out of the average.
func (s *Save) BoxStats(box int) (BoxStats, error) {
	base, err := layout.BoxOffset(box)
	if err != nil {
		return BoxStats{}, err
	}

	p, err := s.buf.Slice(base, layout.BoxSize)
	if err != nil {
		return BoxStats{}, err
	}

	stats := BoxStats{
		Box:   box,
		Count: int(p[layout.BoxCountOffset]),
	}
	if stats.Count > layout.BoxCapacity {
		s.logger.Printf("Box %d claims %d Pokémon, limiting to %d\n", box, stats.Count, layout.BoxCapacity)
		stats.Count = layout.BoxCapacity
	}

	var sum, n int
	for i := 0; i < stats.Count; i++ {
		level := int(p[layout.BoxMembersOffset+i*layout.BoxMemberSize+layout.BoxMemberLevel])
		if level >= halloffame.MinLevel && level <= halloffame.MaxLevel {
			sum += level
			n++
		}
	}
	if n > 0 {
		stats.AverageLevel = float64(sum) / float64(n)
	}

	return stats, nil
}

// AllBoxStats returns the statistics for every box in order
func (s *Save) AllBoxStats() ([]BoxStats, error) {
	all := make([]BoxStats, 0, layout.Boxes)
	for box := 1; box <= layout.Boxes; box++ {
		stats, err := s.BoxStats(box)
		if err != nil {
			return nil, err
		}
		all = append(all, stats)
	}
	return all, nil
}
