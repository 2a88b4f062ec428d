package species

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	assert.Equal(t, "RHYDON", Name(0x01))
	assert.Equal(t, "PIKACHU", Name(0x54))
	assert.Equal(t, "VICTREEBEL", Name(MaxID))
	assert.Equal(t, "MISSINGNO", Name(0x1f))
	assert.Equal(t, Invalid, Name(0x00))
	assert.Equal(t, Invalid, Name(0xbf))
	assert.Equal(t, Invalid, Name(0xff))
}

func TestPokedex(t *testing.T) {
	assert.Equal(t, "BULBASAUR", NameByNumber(1))
	assert.Equal(t, "PIKACHU", NameByNumber(25))
	assert.Equal(t, "MEWTWO", NameByNumber(150))
	assert.Equal(t, "MEW", NameByNumber(151))
	assert.Equal(t, Invalid, NameByNumber(0))
	assert.Equal(t, Invalid, NameByNumber(152))

	_, ok := ID(152)
	assert.False(t, ok)
	_, ok = Number(0x1f)
	assert.False(t, ok)

	seen := make(map[uint8]int)
	for n := 1; n <= PokedexSize; n++ {
		id, ok := ID(n)
		assert.True(t, ok)
		assert.True(t, Plausible(id), "#%d", n)
		assert.NotEqual(t, "MISSINGNO", Name(id), "#%d", n)

		prev, dup := seen[id]
		assert.False(t, dup, "#%d and #%d share ID %#02x", n, prev, id)
		seen[id] = n

		back, ok := Number(id)
		assert.True(t, ok)
		assert.Equal(t, n, back)
	}
}

func TestPlausible(t *testing.T) {
	assert.False(t, Plausible(0x00))
	assert.True(t, Plausible(0x01))
	assert.True(t, Plausible(0x99))
	assert.True(t, Plausible(MaxID))
	assert.False(t, Plausible(MaxID+1))
	assert.False(t, Plausible(0xff))
}
