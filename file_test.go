package gen1save

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestSave(t *testing.T, dir, name string) string {
	t.Helper()
	file := filepath.Join(dir, name)
	require.NoError(t, WriteFile(file, testSave(t)))
	return file
}

func TestPaths(t *testing.T) {
	file := filepath.Join("saves", "Pokemon Red.sav")
	assert.Equal(t, filepath.Join("saves", "(BACKUP) Pokemon Red.sav"), BackupPath(file))
	assert.Equal(t, filepath.Join("saves", "(EDITED) Pokemon Red.sav"), EditedPath(file))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	file := writeTestSave(t, dir, "red.sav")

	b, err := LoadFile(file)
	require.NoError(t, err)
	assert.Equal(t, testSave(t).Bytes(), b.Bytes())

	_, err = LoadFile(filepath.Join(dir, "missing.sav"))
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(writeTestSave(t, dir, "red.sav"), discard())
	require.NoError(t, err)
	assert.True(t, s.Checksums().Valid())

	short := filepath.Join(dir, "short.sav")
	require.NoError(t, ioutil.WriteFile(short, make([]byte, 100), 0644))
	_, err = Open(short, discard())
	var serr *SizeError
	assert.ErrorAs(t, err, &serr)
}

func TestBackup(t *testing.T) {
	dir := t.TempDir()
	file := writeTestSave(t, dir, "red.sav")

	backup, err := Backup(file)
	require.NoError(t, err)
	assert.Equal(t, BackupPath(file), backup)

	original, err := ioutil.ReadFile(file)
	require.NoError(t, err)
	copied, err := ioutil.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, original, copied)

	// A second backup leaves the first one alone
	require.NoError(t, ioutil.WriteFile(file, []byte("changed"), 0644))
	_, err = Backup(file)
	require.NoError(t, err)
	copied, err = ioutil.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, original, copied)

	_, err = Backup(filepath.Join(dir, "missing.sav"))
	assert.Error(t, err)
}

func TestHashFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "abc")
	require.NoError(t, ioutil.WriteFile(file, []byte("abc"), 0644))

	sha, err := hashFile(file)
	require.NoError(t, err)
	assert.Equal(t, "A9993E364706816ABA3E25717850C26C9CD0D89D", sha)
}
