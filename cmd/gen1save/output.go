package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bodgit/gen1save"
	"github.com/bodgit/gen1save/halloffame"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

type report struct {
	Trainer    gen1save.TrainerSummary `yaml:"trainer"`
	Checksums  gen1save.ChecksumReport `yaml:"checksums"`
	Pokedex    gen1save.PokedexSummary `yaml:"pokedex"`
	HallOfFame []halloffame.Entry      `yaml:"hall_of_fame"`
	Boxes      []gen1save.BoxStats     `yaml:"boxes"`
	EventFlags gen1save.FlagSummary    `yaml:"event_flags"`
}

func newReport(s *gen1save.Save) (*report, error) {
	var (
		r   report
		err error
	)

	if r.Trainer, err = s.Trainer(); err != nil {
		return nil, err
	}
	r.Checksums = s.Checksums()
	if r.Pokedex, err = s.Pokedex(false); err != nil {
		return nil, err
	}
	if r.HallOfFame, err = s.HallOfFame(); err != nil {
		return nil, err
	}
	if r.Boxes, err = s.AllBoxStats(); err != nil {
		return nil, err
	}
	if r.EventFlags, err = s.EventFlags(); err != nil {
		return nil, err
	}

	return &r, nil
}

func (r *report) write(w io.Writer, format string) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case formatText:
		r.writeText(w)
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func ok(b bool) string {
	if b {
		return "OK"
	}
	return "BAD"
}

func writeChecksums(w io.Writer, r gen1save.ChecksumReport) {
	fmt.Fprintf(w, "Main checksum:   %s\n", ok(r.Main))
	fmt.Fprintf(w, "Bank 2 checksum: %s\n", ok(r.Bank2))
	fmt.Fprintf(w, "Bank 3 checksum: %s\n", ok(r.Bank3))
	boxes := make([]string, len(r.Boxes))
	for i, v := range r.Boxes {
		boxes[i] = fmt.Sprintf("%d:%s", i+1, ok(v))
	}
	fmt.Fprintf(w, "Box checksums:   %s\n", strings.Join(boxes, " "))
}

func (r *report) writeText(w io.Writer) {
	t := r.Trainer
	fmt.Fprintf(w, "Trainer:  %s (ID %05d)\n", t.Name, t.ID)
	fmt.Fprintf(w, "Rival:    %s\n", t.Rival)
	fmt.Fprintf(w, "Money:    ¥%d\n", t.Money)
	fmt.Fprintf(w, "Coins:    %d\n", t.Coins)
	fmt.Fprintf(w, "Location: %s (%d, %d)\n", t.Map, t.X, t.Y)
	fmt.Fprintf(w, "Playtime: %d:%02d:%02d\n", t.Hours, t.Minutes, t.Seconds)

	badges := t.Badges.List()
	names := make([]string, len(badges))
	for i, b := range badges {
		names[i] = b.String()
	}
	fmt.Fprintf(w, "Badges:   %d/%d %s\n", len(badges), len(gen1save.AllBadges()), strings.Join(names, ", "))
	fmt.Fprintf(w, "Pokédex:  %d owned, %d seen\n", len(r.Pokedex.Owned), len(r.Pokedex.Seen))
	fmt.Fprintf(w, "Events:   %d of %d flags set\n", r.EventFlags.Set, r.EventFlags.Checked)
	fmt.Fprintln(w)

	writeChecksums(w, r.Checksums)
	fmt.Fprintln(w)

	for _, b := range r.Boxes {
		if b.Count == 0 {
			continue
		}
		fmt.Fprintf(w, "Box %2d: %2d Pokémon, average level %.1f\n", b.Box, b.Count, b.AverageLevel)
	}

	for _, e := range r.HallOfFame {
		fmt.Fprintf(w, "\nHall of Fame #%d\n", e.Index)
		for _, m := range e.Team {
			fmt.Fprintf(w, "  %s\n", m)
		}
	}
}
