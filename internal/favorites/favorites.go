// Package favorites keeps the user's favorited games as snapshots taken at
// favoriting time.
package favorites

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/abelbrown/horizon/internal/game"
)

// ErrSnapshotRequired is returned when adding a favorite without its data.
var ErrSnapshotRequired = errors.New("favorite snapshot required")

// Change says what a toggle did.
type Change int

const (
	Added Change = iota + 1
	Removed
)

// Store persists the map.
type Store interface {
	Favorites() map[string]game.Snapshot
	SaveFavorites(map[string]game.Snapshot) error
}

// Manager is the in-memory favorites map, written through on every change.
// Not safe for concurrent use; the UI loop is its only caller.
type Manager struct {
	st   Store
	favs map[string]game.Snapshot
}

// New loads saved favorites.
func New(st Store) *Manager {
	favs := st.Favorites()
	if favs == nil {
		favs = map[string]game.Snapshot{}
	}
	return &Manager{st: st, favs: favs}
}

// Has reports whether id is a favorite.
func (m *Manager) Has(id string) bool {
	_, ok := m.favs[id]
	return ok
}

// Len is the number of favorites.
func (m *Manager) Len() int {
	return len(m.favs)
}

// Toggle removes id if present. Otherwise it stores snap verbatim, which must
// then be non-nil. The map is persisted before returning.
func (m *Manager) Toggle(id string, snap *game.Snapshot) (Change, error) {
	var change Change
	if _, ok := m.favs[id]; ok {
		delete(m.favs, id)
		change = Removed
	} else {
		if snap == nil {
			return 0, ErrSnapshotRequired
		}
		m.favs[id] = *snap
		change = Added
	}
	if err := m.st.SaveFavorites(m.favs); err != nil {
		return change, fmt.Errorf("favorites: %w", err)
	}
	return change, nil
}

// List returns the favorites ordered by numeric id, the order the web client
// iterated its id-keyed object in.
func (m *Manager) List() []game.Snapshot {
	keys := make([]string, 0, len(m.favs))
	for k := range m.favs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		if errA == nil && errB == nil {
			return a < b
		}
		if (errA == nil) != (errB == nil) {
			return errA == nil
		}
		return keys[i] < keys[j]
	})

	out := make([]game.Snapshot, 0, len(keys))
	for _, k := range keys {
		out = append(out, m.favs[k])
	}
	return out
}
