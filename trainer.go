package gen1save

import (
	"github.com/bodgit/gen1save/bcd"
	"github.com/bodgit/gen1save/buffer"
	"github.com/bodgit/gen1save/layout"
	"github.com/bodgit/gen1save/location"
	"github.com/bodgit/gen1save/text"
)

// TrainerSummary holds the player's profile
type TrainerSummary struct {
	Name    string `yaml:"name"`
	Rival   string `yaml:"rival"`
	ID      uint16 `yaml:"id"`
	Money   uint32 `yaml:"money"`
	Coins   uint16 `yaml:"coins"`
	Badges  Badges `yaml:"badges"`
	MapID   uint8  `yaml:"map_id"`
	Map     string `yaml:"map"`
	X       uint8  `yaml:"x"`
	Y       uint8  `yaml:"y"`
	Hours   uint8  `yaml:"hours"`
	Minutes uint8  `yaml:"minutes"`
	Seconds uint8  `yaml:"seconds"`
}

// reader remembers the first error so a run of reads can be checked once
type reader struct {
	b   *buffer.Buffer
	err error
}

func (r *reader) u8(off int) uint8 {
	if r.err != nil {
		return 0
	}
	var v uint8
	v, r.err = r.b.ReadU8(off)
	return v
}

func (r *reader) u16be(off int) uint16 {
	if r.err != nil {
		return 0
	}
	var v uint16
	v, r.err = r.b.ReadU16BE(off)
	return v
}

func (r *reader) name(off int) string {
	if r.err != nil {
		return ""
	}
	var s string
	s, r.err = text.Decode(r.b, off, layout.NameLength)
	return s
}

func (r *reader) money() uint32 {
	if r.err != nil {
		return 0
	}
	var v uint32
	v, r.err = bcd.ReadMoney(r.b)
	return v
}

func (r *reader) coins() uint16 {
	if r.err != nil {
		return 0
	}
	var v uint16
	v, r.err = bcd.ReadCoins(r.b)
	return v
}

// Trainer returns the player's profile
func (s *Save) Trainer() (TrainerSummary, error) {
	r := reader{b: s.buf}

	t := TrainerSummary{
		Name:    r.name(layout.TrainerNameOffset),
		Rival:   r.name(layout.RivalNameOffset),
		ID:      r.u16be(layout.TrainerIDOffset),
		Money:   r.money(),
		Coins:   r.coins(),
		Badges:  Badges(r.u8(layout.BadgesOffset)),
		MapID:   r.u8(layout.MapIDOffset),
		X:       r.u8(layout.XOffset),
		Y:       r.u8(layout.YOffset),
		Hours:   r.u8(layout.PlayTimeHoursOffset),
		Minutes: r.u8(layout.PlayTimeMinutesOffset),
		Seconds: r.u8(layout.PlayTimeSecondsOffset),
	}
	if r.err != nil {
		return TrainerSummary{}, r.err
	}
	t.Map = location.Name(t.MapID)

	return t, nil
}

// HasBadge reports whether the trainer has earned badge
func (t TrainerSummary) HasBadge(badge Badge) bool {
	return t.Badges.Has(badge)
}
