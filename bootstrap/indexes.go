package bootstrap

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/jeongjingoo/tech/internal/models"
)

func createdAtIndex(collection string) mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName(collection + "_createdAt_desc"),
	}
}

// EnsureIndexes creates the indexes every collection relies on. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		models.TechnicianCollection: {
			{
				Keys:    bson.D{{Key: "id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_technician_id"),
			},
		},
		models.SchoolCollection: {
			{
				Keys: bson.D{
					{Key: "data.division", Value: 1},
					{Key: "data.level", Value: 1},
					{Key: "data.name", Value: 1},
				},
				Options: options.Index().SetName("school_natural_key"),
			},
			{
				Keys:    bson.D{{Key: "data.team", Value: 1}},
				Options: options.Index().SetName("school_team"),
			},
		},
	}
	for _, col := range []string{
		models.SchoolCollection,
		models.TechnicianCollection,
		models.VendorCollection,
		models.PostCollection,
		models.EventCollection,
	} {
		specs := append(indexes[col], createdAtIndex(col))
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, specs); err != nil {
			return errors.Wrapf(err, "ensure indexes on %s", col)
		}
	}
	return nil
}
