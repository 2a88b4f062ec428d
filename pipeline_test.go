package gen1save

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCollection(t *testing.T) *Collection {
	t.Helper()
	c, err := NewCollection(filepath.Join(t.TempDir(), "test.db"), discard())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestImport(t *testing.T) {
	c := newTestCollection(t)
	file := writeTestSave(t, t.TempDir(), "red.sav")

	r, err := c.Import(file)
	require.NoError(t, err)
	assert.True(t, r.Valid)
	_, err = ksuid.Parse(r.Batch)
	assert.NoError(t, err)
	assert.Equal(t, "ASH", r.Trainer.Name)
	require.Len(t, r.HallOfFame, 1)

	sha, err := hashFile(file)
	require.NoError(t, err)
	assert.Equal(t, sha, r.SHA1)

	found, err := c.DB().FindSaveBySHA1(sha)
	require.NoError(t, err)
	assert.Equal(t, r, found)
}

func TestScan(t *testing.T) {
	c := newTestCollection(t)
	dir := t.TempDir()

	// Each save needs to differ to get its own SHA-1
	for i, name := range []string{"red.sav", "blue.SAV", filepath.Join("nested", "yellow.sav"), filepath.Join(".hidden", "green.sav"), ".ignored.sav", "(BACKUP) red.sav"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, filepath.Dir(name)), 0755))
		b := testSave(t)
		b.Bytes()[0] = byte(i)
		require.NoError(t, WriteFile(filepath.Join(dir, name), b))
	}
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0644))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "short.sav"), make([]byte, 10), 0644))

	batch, err := c.Scan(dir)
	require.NoError(t, err)
	_, err = ksuid.Parse(batch)
	require.NoError(t, err)

	n, err := c.DB().Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = c.DB().CountBatch(batch)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// Rescanning moves every save to the new batch
	again, err := c.Scan(dir)
	require.NoError(t, err)
	assert.NotEqual(t, batch, again)

	n, err = c.DB().CountBatch(again)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	n, err = c.DB().Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestScanMissingDirectory(t *testing.T) {
	c := newTestCollection(t)
	_, err := c.Scan(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
