/*
Package species maps the internal species IDs stored in a save to names and
Pokédex numbers.

Internal IDs are not in Pokédex order and include a number of unused
"MISSINGNO" slots. IDs above MaxID are glitch values.
*/
package species

// Invalid is returned for any ID without a name
const Invalid = "INVALID"

const (
	// MaxID is the highest internal ID used by a real species
	MaxID = 0xbe
	// PokedexSize is the number of Pokédex entries
	PokedexSize = 151
)

// Name returns the name for internal ID id
func Name(id uint8) string {
	if int(id) >= len(names) || names[id] == "" {
		return Invalid
	}
	return names[id]
}

// Plausible reports whether id is within the range of IDs used by real
// species. MISSINGNO slots inside the range are not excluded.
func Plausible(id uint8) bool {
	return id >= 1 && id <= MaxID
}

// ID returns the internal ID for Pokédex number n (1-151)
func ID(n int) (uint8, bool) {
	if n < 1 || n > PokedexSize {
		return 0, false
	}
	return dex[n], true
}

// Number returns the Pokédex number for internal ID id
func Number(id uint8) (int, bool) {
	if id == 0 {
		return 0, false
	}
	for n := 1; n <= PokedexSize; n++ {
		if dex[n] == id {
			return n, true
		}
	}
	return 0, false
}

// NameByNumber returns the name for Pokédex number n
func NameByNumber(n int) string {
	id, ok := ID(n)
	if !ok {
		return Invalid
	}
	return Name(id)
}
