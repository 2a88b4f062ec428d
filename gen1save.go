/*
Package gen1save is a library for inspecting and repairing Generation I
Pokémon (Red/Blue) save files.

A Save wraps a buffer.Buffer and produces read-only summaries of it. The
summaries hold copies of the values they were built from so they stay valid
after the buffer is changed or discarded.
*/
package gen1save

import (
	"log"

	"github.com/bodgit/gen1save/buffer"
	"github.com/bodgit/gen1save/halloffame"
)

// Save provides summaries of a single save buffer. Like the buffer, it must
// not be used from more than one goroutine at a time.
type Save struct {
	buf    *buffer.Buffer
	logger *log.Logger
}

// New returns a Save reading from buf. Warnings are written to logger.
func New(buf *buffer.Buffer, logger *log.Logger) *Save {
	return &Save{
		buf:    buf,
		logger: logger,
	}
}

// Open loads the save at path, warning about an unexpected size
func Open(path string, logger *log.Logger) (*Save, error) {
	buf, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := CheckSize(buf, logger); err != nil {
		return nil, err
	}
	return New(buf, logger), nil
}

// Buffer returns the underlying buffer
func (s *Save) Buffer() *buffer.Buffer {
	return s.buf
}

// HallOfFame returns the Hall of Fame teams, newest last
func (s *Save) HallOfFame() ([]halloffame.Entry, error) {
	all, err := halloffame.ScanAll(s.buf)
	if err != nil {
		return nil, err
	}
	n, err := halloffame.Count(s.buf)
	if err != nil {
		return nil, err
	}
	if len(all) > n {
		s.logger.Printf("Hall of Fame has %d plausible records but the game counts %d, keeping the newest\n", len(all), n)
	}
	return halloffame.Window(all, n), nil
}
