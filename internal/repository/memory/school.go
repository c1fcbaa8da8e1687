package memory

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jeongjingoo/tech/internal/models"
	"github.com/jeongjingoo/tech/internal/repository"
	"github.com/jeongjingoo/tech/internal/utils"
)

type schoolRepository struct {
	db *table[models.School]
}

func NewSchoolRepository(db *DB) repository.SchoolRepository {
	return &schoolRepository{db: db.schools}
}

func (repo *schoolRepository) List(_ context.Context, p utils.Page) ([]models.School, int64, error) {
	items, total := repo.db.page(p)
	return items, total, nil
}

func (repo *schoolRepository) All(_ context.Context, team string) ([]models.School, error) {
	if team == "" {
		return repo.db.all(nil), nil
	}
	return repo.db.all(func(s *models.School) bool { return s.Data.Team == team }), nil
}

func (repo *schoolRepository) Insert(_ context.Context, s *models.School) error {
	if s.ID.IsZero() {
		s.ID = bson.NewObjectID()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = repository.Now()
	}
	repo.db.put(s.ID, *s)
	return nil
}

func (repo *schoolRepository) ReplaceData(_ context.Context, id bson.ObjectID, data models.SchoolData) error {
	return repo.db.update(id, func(s *models.School) {
		now := repository.Now()
		s.Data = data
		s.UpdatedAt = &now
	})
}

func (repo *schoolRepository) Patch(_ context.Context, id bson.ObjectID, p models.SchoolPatch) error {
	return repo.db.update(id, func(s *models.School) {
		now := repository.Now()
		if p.Team != nil {
			s.Data.Team = *p.Team
		}
		if p.IsComp != nil {
			s.IsComp = *p.IsComp
		}
		s.UpdatedAt = &now
	})
}

func (repo *schoolRepository) Delete(_ context.Context, id bson.ObjectID) error {
	return repo.db.remove(id)
}

func (repo *schoolRepository) FindByNaturalKey(_ context.Context, division, level, name string) (*models.School, error) {
	found := repo.db.all(func(s *models.School) bool {
		return s.Data.Division == division && s.Data.Level == level && s.Data.Name == name
	})
	if len(found) == 0 {
		return nil, repository.ErrNotFound
	}
	return &found[0], nil
}

func (repo *schoolRepository) Count(context.Context) (int64, error) {
	return repo.db.count(nil), nil
}

func (repo *schoolRepository) CountCompleted(context.Context) (int64, error) {
	return repo.db.count(func(s *models.School) bool { return s.IsComp == 1 }), nil
}
