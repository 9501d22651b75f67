// Package save provides save-state tokens and their sqlite-backed store.
package save

// DataFile is an opaque save-state token. An empty token starts a new game;
// a loaded token carries the serialized session handed to the loading state.
type DataFile struct {
	Slot string
	Data []byte
}

// Empty returns the new-game token.
func Empty() DataFile {
	return DataFile{}
}

// IsEmpty reports whether the token carries no saved state.
func (d DataFile) IsEmpty() bool {
	return d.Slot == "" && len(d.Data) == 0
}
