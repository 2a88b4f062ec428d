package gen1save

import (
	"database/sql"
	"fmt"

	"github.com/bodgit/gen1save/halloffame"
	"github.com/bodgit/gen1save/location"
	_ "github.com/mattn/go-sqlite3"
)

// SaveRecord is everything the catalog stores about one save
type SaveRecord struct {
	SHA1       string             `yaml:"sha1"`
	Path       string             `yaml:"path"`
	Batch      string             `yaml:"batch"`
	Trainer    TrainerSummary     `yaml:"trainer"`
	Valid      bool               `yaml:"valid"`
	HallOfFame []halloffame.Entry `yaml:"hall_of_fame"`
}

// SaveDB is a catalog of indexed saves keyed by the SHA-1 of the file
type SaveDB struct {
	db *sql.DB
}

// NewSaveDB opens or creates the catalog in file
func NewSaveDB(file string) (*SaveDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS save (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, path TEXT NOT NULL, batch TEXT NOT NULL, trainer TEXT NOT NULL, rival TEXT NOT NULL, trainer_id INTEGER NOT NULL, money INTEGER NOT NULL, coins INTEGER NOT NULL, badges INTEGER NOT NULL, map_id INTEGER NOT NULL, x INTEGER NOT NULL, y INTEGER NOT NULL, hours INTEGER NOT NULL, minutes INTEGER NOT NULL, seconds INTEGER NOT NULL, main_checksum_valid INTEGER NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS hall_of_fame (save_id INTEGER NOT NULL, entry INTEGER NOT NULL, slot INTEGER NOT NULL, species INTEGER NOT NULL, level INTEGER NOT NULL, name TEXT NOT NULL, PRIMARY KEY(save_id, entry, slot), FOREIGN KEY(save_id) REFERENCES save(id) ON DELETE CASCADE)"); err != nil {
		db.Close()
		return nil, err
	}

	return &SaveDB{
		db: db,
	}, nil
}

// Close closes the catalog
func (db *SaveDB) Close() error {
	return db.db.Close()
}

// AddSave stores r, replacing anything previously stored for the same SHA-1
func (db *SaveDB) AddSave(r *SaveRecord) (int64, error) {
	tx, err := db.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	t := r.Trainer
	var id int64
	switch err := tx.QueryRow("SELECT id FROM save WHERE sha1 = ?", r.SHA1).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := tx.Exec("INSERT INTO save (sha1, path, batch, trainer, rival, trainer_id, money, coins, badges, map_id, x, y, hours, minutes, seconds, main_checksum_valid) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)", r.SHA1, r.Path, r.Batch, t.Name, t.Rival, t.ID, t.Money, t.Coins, t.Badges, t.MapID, t.X, t.Y, t.Hours, t.Minutes, t.Seconds, r.Valid)
		if err != nil {
			return 0, err
		}
		if id, err = result.LastInsertId(); err != nil {
			return 0, err
		}
	case nil:
		if _, err := tx.Exec("UPDATE save SET path = ?, batch = ?, trainer = ?, rival = ?, trainer_id = ?, money = ?, coins = ?, badges = ?, map_id = ?, x = ?, y = ?, hours = ?, minutes = ?, seconds = ?, main_checksum_valid = ? WHERE id = ?", r.Path, r.Batch, t.Name, t.Rival, t.ID, t.Money, t.Coins, t.Badges, t.MapID, t.X, t.Y, t.Hours, t.Minutes, t.Seconds, r.Valid, id); err != nil {
			return 0, err
		}
		if _, err := tx.Exec("DELETE FROM hall_of_fame WHERE save_id = ?", id); err != nil {
			return 0, err
		}
	default:
		return 0, err
	}

	for _, e := range r.HallOfFame {
		for slot, m := range e.Team {
			if _, err := tx.Exec("INSERT INTO hall_of_fame (save_id, entry, slot, species, level, name) VALUES (?, ?, ?, ?, ?, ?)", id, e.Index, slot, m.Species, m.Level, m.Name); err != nil {
				return 0, err
			}
		}
	}

	return id, tx.Commit()
}

// FindSaveBySHA1 returns the save stored under sha1, or nil if there isn't
// one
func (db *SaveDB) FindSaveBySHA1(sha1 string) (*SaveRecord, error) {
	var id int64
	r := SaveRecord{
		SHA1: sha1,
	}
	t := &r.Trainer
	switch err := db.db.QueryRow("SELECT id, path, batch, trainer, rival, trainer_id, money, coins, badges, map_id, x, y, hours, minutes, seconds, main_checksum_valid FROM save WHERE sha1 = ?", sha1).Scan(&id, &r.Path, &r.Batch, &t.Name, &t.Rival, &t.ID, &t.Money, &t.Coins, &t.Badges, &t.MapID, &t.X, &t.Y, &t.Hours, &t.Minutes, &t.Seconds, &r.Valid); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		t.Map = location.Name(t.MapID)
	default:
		return nil, err
	}

	rows, err := db.db.Query("SELECT entry, species, level, name FROM hall_of_fame WHERE save_id = ? ORDER BY entry, slot", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry int
		var m halloffame.Member
		if err := rows.Scan(&entry, &m.Species, &m.Level, &m.Name); err != nil {
			return nil, err
		}
		if n := len(r.HallOfFame); n == 0 || r.HallOfFame[n-1].Index != entry {
			r.HallOfFame = append(r.HallOfFame, halloffame.Entry{Index: entry})
		}
		last := &r.HallOfFame[len(r.HallOfFame)-1]
		last.Team = append(last.Team, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &r, nil
}

// CountBatch returns the number of saves last recorded by batch
func (db *SaveDB) CountBatch(batch string) (int, error) {
	var n int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM save WHERE batch = ?", batch).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Count returns the number of saves in the catalog
func (db *SaveDB) Count() (int, error) {
	var n int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM save").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
