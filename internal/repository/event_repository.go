package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jeongjingoo/tech/internal/models"
)

type mongoEvents struct {
	col *mongo.Collection
}

func NewEventRepository(db *mongo.Database) EventRepository {
	return &mongoEvents{col: db.Collection(models.EventCollection)}
}

func (r *mongoEvents) List(ctx context.Context) ([]models.Event, error) {
	return findAll[models.Event](ctx, r.col, bson.M{})
}

func (r *mongoEvents) Insert(ctx context.Context, e *models.Event) error {
	if e.ID.IsZero() {
		e.ID = bson.NewObjectID()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = Now()
	}
	return insert(ctx, r.col, e)
}

func (r *mongoEvents) Replace(ctx context.Context, id bson.ObjectID, e models.Event) error {
	return updateByID(ctx, r.col, id, bson.M{"$set": bson.M{
		"title":       e.Title,
		"start":       e.Start,
		"end":         e.End,
		"description": e.Description,
	}})
}

func (r *mongoEvents) Delete(ctx context.Context, id bson.ObjectID) error {
	return deleteByID(ctx, r.col, id)
}
