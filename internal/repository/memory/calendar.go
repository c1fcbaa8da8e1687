package memory

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jeongjingoo/tech/internal/models"
	"github.com/jeongjingoo/tech/internal/repository"
)

type eventRepository struct {
	db *table[models.Event]
}

func NewEventRepository(db *DB) repository.EventRepository {
	return &eventRepository{db: db.events}
}

func (repo *eventRepository) List(context.Context) ([]models.Event, error) {
	return repo.db.all(nil), nil
}

func (repo *eventRepository) Insert(_ context.Context, e *models.Event) error {
	if e.ID.IsZero() {
		e.ID = bson.NewObjectID()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = repository.Now()
	}
	repo.db.put(e.ID, *e)
	return nil
}

func (repo *eventRepository) Replace(_ context.Context, id bson.ObjectID, e models.Event) error {
	return repo.db.update(id, func(row *models.Event) {
		row.Title = e.Title
		row.Start = e.Start
		row.End = e.End
		row.Description = e.Description
	})
}

func (repo *eventRepository) Delete(_ context.Context, id bson.ObjectID) error {
	return repo.db.remove(id)
}
