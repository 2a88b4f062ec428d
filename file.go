package gen1save

import (
	"errors"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bodgit/gen1save/buffer"
)

const (
	backupPrefix = "(BACKUP) "
	editedPrefix = "(EDITED) "
)

// LoadFile reads the whole file into a new buffer
func LoadFile(file string) (*buffer.Buffer, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return buffer.New(b), nil
}

// WriteFile writes the buffer contents to file, replacing it
func WriteFile(file string, b *buffer.Buffer) error {
	return ioutil.WriteFile(file, b.Bytes(), 0644)
}

func prefixed(file, prefix string) string {
	return filepath.Join(filepath.Dir(file), prefix+filepath.Base(file))
}

// BackupPath returns the path of the backup copy of file
func BackupPath(file string) string {
	return prefixed(file, backupPrefix)
}

// EditedPath returns the path repaired or edited saves are written to
func EditedPath(file string) string {
	return prefixed(file, editedPrefix)
}

// Backup copies file to BackupPath. An existing backup is left alone so it
// always holds the first copy taken. It returns the backup path.
func Backup(file string) (string, error) {
	backup := BackupPath(file)

	src, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.OpenFile(backup, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	switch {
	case errors.Is(err, os.ErrExist):
		return backup, nil
	case err != nil:
		return "", err
	}

	if _, err = io.Copy(dst, src); err != nil {
		dst.Close()
		return "", err
	}

	return backup, dst.Close()
}
