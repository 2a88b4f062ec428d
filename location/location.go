// Package location maps the current map ID stored in a save to a name.
package location

// Invalid is returned for unused map IDs
const Invalid = "INVALID"

// Name returns the name of map id
func Name(id uint8) string {
	if int(id) >= len(names) || names[id] == "" {
		return Invalid
	}
	return names[id]
}
