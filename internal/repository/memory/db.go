// Package memory keeps every collection in process memory. It backs
// DB_DRIVER=memory and the HTTP tests.
package memory

import (
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jeongjingoo/tech/internal/models"
	"github.com/jeongjingoo/tech/internal/repository"
	"github.com/jeongjingoo/tech/internal/utils"
)

type table[T any] struct {
	mutex sync.RWMutex
	rows  map[bson.ObjectID]*T
	key   func(*T) (time.Time, bson.ObjectID)
}

func newTable[T any](key func(*T) (time.Time, bson.ObjectID)) *table[T] {
	return &table[T]{rows: make(map[bson.ObjectID]*T), key: key}
}

// sorted returns copies of the rows accepted by keep, newest first.
// Callers hold the lock.
func (t *table[T]) sorted(keep func(*T) bool) []T {
	out := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		if keep == nil || keep(row) {
			out = append(out, *row)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ti, idi := t.key(&out[i])
		tj, idj := t.key(&out[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return idi.Hex() > idj.Hex()
	})
	return out
}

func (t *table[T]) page(p utils.Page) ([]T, int64) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	all := t.sorted(nil)
	start, end := p.Window(len(all))
	return all[start:end], int64(len(all))
}

func (t *table[T]) all(keep func(*T) bool) []T {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.sorted(keep)
}

func (t *table[T]) count(keep func(*T) bool) int64 {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	var n int64
	for _, row := range t.rows {
		if keep == nil || keep(row) {
			n++
		}
	}
	return n
}

func (t *table[T]) put(id bson.ObjectID, row T) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.rows[id] = &row
}

func (t *table[T]) update(id bson.ObjectID, fn func(*T)) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	fn(row)
	return nil
}

func (t *table[T]) remove(id bson.ObjectID) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if _, ok := t.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(t.rows, id)
	return nil
}

// DB holds one table per collection.
type DB struct {
	schools     *table[models.School]
	technicians *table[models.Technician]
	vendors     *table[models.Vendor]
	posts       *table[models.Post]
	events      *table[models.Event]
}

func NewDB() *DB {
	return &DB{
		schools:     newTable(func(s *models.School) (time.Time, bson.ObjectID) { return s.CreatedAt, s.ID }),
		technicians: newTable(func(t *models.Technician) (time.Time, bson.ObjectID) { return t.CreatedAt, t.ID }),
		vendors:     newTable(func(v *models.Vendor) (time.Time, bson.ObjectID) { return v.CreatedAt, v.ID }),
		posts:       newTable(func(p *models.Post) (time.Time, bson.ObjectID) { return p.CreatedAt, p.ID }),
		events:      newTable(func(e *models.Event) (time.Time, bson.ObjectID) { return e.CreatedAt, e.ID }),
	}
}

// NewStores returns repositories sharing a fresh DB.
func NewStores() repository.Stores {
	db := NewDB()
	return repository.Stores{
		Schools:     NewSchoolRepository(db),
		Technicians: NewTechnicianRepository(db),
		Vendors:     NewVendorRepository(db),
		Posts:       NewPostRepository(db),
		Events:      NewEventRepository(db),
	}
}
