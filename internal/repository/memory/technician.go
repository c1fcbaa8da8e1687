package memory

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jeongjingoo/tech/internal/models"
	"github.com/jeongjingoo/tech/internal/repository"
)

type technicianRepository struct {
	db *table[models.Technician]
}

func NewTechnicianRepository(db *DB) repository.TechnicianRepository {
	return &technicianRepository{db: db.technicians}
}

// loginTaken reports whether loginID belongs to a row other than except.
// Callers hold the lock.
func (repo *technicianRepository) loginTaken(loginID string, except bson.ObjectID) bool {
	for id, t := range repo.db.rows {
		if t.LoginID == loginID && id != except {
			return true
		}
	}
	return false
}

func (repo *technicianRepository) List(context.Context) ([]models.Technician, error) {
	return repo.db.all(nil), nil
}

func (repo *technicianRepository) Insert(_ context.Context, t *models.Technician) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if repo.loginTaken(t.LoginID, bson.NilObjectID) {
		return repository.ErrDuplicate
	}
	if t.ID.IsZero() {
		t.ID = bson.NewObjectID()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = repository.Now()
	}
	row := *t
	repo.db.rows[t.ID] = &row
	return nil
}

func (repo *technicianRepository) Replace(_ context.Context, id bson.ObjectID, t models.Technician) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	row, ok := repo.db.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	if repo.loginTaken(t.LoginID, id) {
		return repository.ErrDuplicate
	}
	row.Name = t.Name
	row.PhoneNumber = t.PhoneNumber
	row.Team = t.Team
	row.LoginID = t.LoginID
	if t.Password != "" {
		row.Password = t.Password
	}
	return nil
}

func (repo *technicianRepository) Delete(_ context.Context, id bson.ObjectID) error {
	return repo.db.remove(id)
}

func (repo *technicianRepository) FindByLoginID(_ context.Context, loginID string) (*models.Technician, error) {
	found := repo.db.all(func(t *models.Technician) bool { return t.LoginID == loginID })
	if len(found) == 0 {
		return nil, repository.ErrNotFound
	}
	return &found[0], nil
}

func (repo *technicianRepository) SetPassword(_ context.Context, id bson.ObjectID, hash string) error {
	return repo.db.update(id, func(t *models.Technician) { t.Password = hash })
}

func (repo *technicianRepository) Count(context.Context) (int64, error) {
	return repo.db.count(nil), nil
}
