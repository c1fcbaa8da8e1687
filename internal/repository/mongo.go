package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/jeongjingoo/tech/internal/utils"
)

var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

// NewMongoStores builds every repository on top of db.
func NewMongoStores(db *mongo.Database) Stores {
	return Stores{
		Schools:     NewSchoolRepository(db),
		Technicians: NewTechnicianRepository(db),
		Vendors:     NewVendorRepository(db),
		Posts:       NewPostRepository(db),
		Events:      NewEventRepository(db),
	}
}

func findPage[T any](ctx context.Context, col *mongo.Collection, filter any, p utils.Page) ([]T, int64, error) {
	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "count %s", col.Name())
	}

	opts := options.Find().SetSort(newestFirst).SetSkip(p.Skip()).SetLimit(int64(p.Limit))
	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "find %s", col.Name())
	}
	defer cur.Close(ctx)

	items := make([]T, 0, p.Limit)
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, errors.Wrapf(err, "decode %s", col.Name())
	}
	return items, total, nil
}

func findAll[T any](ctx context.Context, col *mongo.Collection, filter any) ([]T, error) {
	cur, err := col.Find(ctx, filter, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, errors.Wrapf(err, "find %s", col.Name())
	}
	defer cur.Close(ctx)

	items := make([]T, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, errors.Wrapf(err, "decode %s", col.Name())
	}
	return items, nil
}

func findOne[T any](ctx context.Context, col *mongo.Collection, filter any) (*T, error) {
	var out T
	err := col.FindOne(ctx, filter).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "find one %s", col.Name())
	}
	return &out, nil
}

func updateByID(ctx context.Context, col *mongo.Collection, id bson.ObjectID, update any) error {
	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return errors.Wrapf(err, "update %s", col.Name())
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, col *mongo.Collection, id bson.ObjectID) error {
	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrapf(err, "delete %s", col.Name())
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func insert(ctx context.Context, col *mongo.Collection, doc any) error {
	if _, err := col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return errors.Wrapf(err, "insert %s", col.Name())
	}
	return nil
}
