package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jeongjingoo/tech/internal/models"
	"github.com/jeongjingoo/tech/internal/utils"
)

type mongoVendors struct {
	col *mongo.Collection
}

func NewVendorRepository(db *mongo.Database) VendorRepository {
	return &mongoVendors{col: db.Collection(models.VendorCollection)}
}

func (r *mongoVendors) List(ctx context.Context, p utils.Page) ([]models.Vendor, int64, error) {
	return findPage[models.Vendor](ctx, r.col, bson.M{}, p)
}

func (r *mongoVendors) Insert(ctx context.Context, v *models.Vendor) error {
	if v.ID.IsZero() {
		v.ID = bson.NewObjectID()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = Now()
	}
	return insert(ctx, r.col, v)
}

func (r *mongoVendors) Replace(ctx context.Context, id bson.ObjectID, v models.Vendor) error {
	return updateByID(ctx, r.col, id, bson.M{"$set": bson.M{
		"school_name": v.SchoolName,
		"stuff":       v.Stuff,
		"com_name":    v.ComName,
		"phone":       v.Phone,
		"licence":     v.Licence,
	}})
}

func (r *mongoVendors) Delete(ctx context.Context, id bson.ObjectID) error {
	return deleteByID(ctx, r.col, id)
}
