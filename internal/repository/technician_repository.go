package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jeongjingoo/tech/internal/models"
)

type mongoTechnicians struct {
	col *mongo.Collection
}

func NewTechnicianRepository(db *mongo.Database) TechnicianRepository {
	return &mongoTechnicians{col: db.Collection(models.TechnicianCollection)}
}

func (r *mongoTechnicians) List(ctx context.Context) ([]models.Technician, error) {
	return findAll[models.Technician](ctx, r.col, bson.M{})
}

func (r *mongoTechnicians) Insert(ctx context.Context, t *models.Technician) error {
	// the unique index is the real guard, this gives a clean error without it
	if _, err := r.FindByLoginID(ctx, t.LoginID); err == nil {
		return ErrDuplicate
	}
	if t.ID.IsZero() {
		t.ID = bson.NewObjectID()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = Now()
	}
	return insert(ctx, r.col, t)
}

func (r *mongoTechnicians) Replace(ctx context.Context, id bson.ObjectID, t models.Technician) error {
	if other, err := r.FindByLoginID(ctx, t.LoginID); err == nil && other.ID != id {
		return ErrDuplicate
	}
	set := bson.M{
		"name":        t.Name,
		"phoneNumber": t.PhoneNumber,
		"team":        t.Team,
		"id":          t.LoginID,
	}
	if t.Password != "" {
		set["password"] = t.Password
	}
	return updateByID(ctx, r.col, id, bson.M{"$set": set})
}

func (r *mongoTechnicians) Delete(ctx context.Context, id bson.ObjectID) error {
	return deleteByID(ctx, r.col, id)
}

func (r *mongoTechnicians) FindByLoginID(ctx context.Context, loginID string) (*models.Technician, error) {
	return findOne[models.Technician](ctx, r.col, bson.M{"id": loginID})
}

func (r *mongoTechnicians) SetPassword(ctx context.Context, id bson.ObjectID, hash string) error {
	return updateByID(ctx, r.col, id, bson.M{"$set": bson.M{"password": hash}})
}

func (r *mongoTechnicians) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	return n, errors.Wrap(err, "count technicians")
}
