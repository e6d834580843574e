// Package memory implements the storage contract over maps. Data lives for the
// lifetime of the process; fixtures are loaded through the same contract.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/storage"
)

// now stamps created_at the way the database default does
var now = func() time.Time { return time.Now().UTC() }

// table holds the rows of one entity. The mutex keeps the map itself consistent;
// concurrent updates of the same row are still last-write-wins.
type table[T any] struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]T
}

func newTable[T any]() *table[T] {
	return &table[T]{nextID: 1, rows: make(map[int64]T)}
}

// insert stores the row produced by build. It fails without consuming an id
// when conflicts reports a clash with an existing row.
func (t *table[T]) insert(conflicts func(T) bool, build func(id int64) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if conflicts != nil {
		for _, row := range t.rows {
			if conflicts(row) {
				var zero T
				return zero, false
			}
		}
	}

	id := t.nextID
	t.nextID++
	row := build(id)
	t.rows[id] = row
	return row, true
}

func (t *table[T]) get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) update(id int64, apply func(*T)) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return row, false
	}
	apply(&row)
	t.rows[id] = row
	return row, true
}

func (t *table[T]) delete(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// list returns the rows accepted by keep, ordered by less
func (t *table[T]) list(keep func(T) bool, less func(a, b T) bool) []T {
	t.mu.RLock()
	out := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		if keep == nil || keep(row) {
			out = append(out, row)
		}
	}
	t.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// newestFirst orders by creation time descending, then id descending
func newestFirst(aAt, bAt time.Time, aID, bID int64) bool {
	if !aAt.Equal(bAt) {
		return aAt.After(bAt)
	}
	return aID > bID
}

// New creates an empty in-memory backend
func New() *storage.Repositories {
	return &storage.Repositories{
		User:        &UserRepository{rows: newTable[models.User]()},
		Category:    &CategoryRepository{rows: newTable[models.Category]()},
		MenuItem:    &MenuItemRepository{rows: newTable[models.MenuItem]()},
		Order:       &OrderRepository{rows: newTable[models.Order]()},
		Reservation: &ReservationRepository{rows: newTable[models.Reservation]()},
		Review:      &ReviewRepository{rows: newTable[models.Review]()},
		Staff:       &StaffRepository{rows: newTable[models.Staff]()},
		Table:       &TableRepository{rows: newTable[models.Table]()},
	}
}
