package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jeongjingoo/tech/internal/models"
	"github.com/jeongjingoo/tech/internal/utils"
)

type mongoSchools struct {
	col *mongo.Collection
}

func NewSchoolRepository(db *mongo.Database) SchoolRepository {
	return &mongoSchools{col: db.Collection(models.SchoolCollection)}
}

func (r *mongoSchools) List(ctx context.Context, p utils.Page) ([]models.School, int64, error) {
	return findPage[models.School](ctx, r.col, bson.M{}, p)
}

func (r *mongoSchools) All(ctx context.Context, team string) ([]models.School, error) {
	filter := bson.M{}
	if team != "" {
		filter["data.team"] = team
	}
	return findAll[models.School](ctx, r.col, filter)
}

func (r *mongoSchools) Insert(ctx context.Context, s *models.School) error {
	if s.ID.IsZero() {
		s.ID = bson.NewObjectID()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = Now()
	}
	return insert(ctx, r.col, s)
}

func (r *mongoSchools) ReplaceData(ctx context.Context, id bson.ObjectID, data models.SchoolData) error {
	return updateByID(ctx, r.col, id, bson.M{"$set": bson.M{"data": data, "updatedAt": Now()}})
}

func (r *mongoSchools) Patch(ctx context.Context, id bson.ObjectID, p models.SchoolPatch) error {
	set := bson.M{"updatedAt": Now()}
	if p.Team != nil {
		set["data.team"] = *p.Team
	}
	if p.IsComp != nil {
		set["iscomp"] = *p.IsComp
	}
	return updateByID(ctx, r.col, id, bson.M{"$set": set})
}

func (r *mongoSchools) Delete(ctx context.Context, id bson.ObjectID) error {
	return deleteByID(ctx, r.col, id)
}

func (r *mongoSchools) FindByNaturalKey(ctx context.Context, division, level, name string) (*models.School, error) {
	return findOne[models.School](ctx, r.col, bson.M{
		"data.division": division,
		"data.level":    level,
		"data.name":     name,
	})
}

func (r *mongoSchools) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	return n, errors.Wrap(err, "count schools")
}

func (r *mongoSchools) CountCompleted(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"iscomp": 1})
	return n, errors.Wrap(err, "count completed schools")
}
