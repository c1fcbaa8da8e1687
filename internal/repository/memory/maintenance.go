package memory

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jeongjingoo/tech/internal/models"
	"github.com/jeongjingoo/tech/internal/repository"
	"github.com/jeongjingoo/tech/internal/utils"
)

type vendorRepository struct {
	db *table[models.Vendor]
}

func NewVendorRepository(db *DB) repository.VendorRepository {
	return &vendorRepository{db: db.vendors}
}

func (repo *vendorRepository) List(_ context.Context, p utils.Page) ([]models.Vendor, int64, error) {
	items, total := repo.db.page(p)
	return items, total, nil
}

func (repo *vendorRepository) Insert(_ context.Context, v *models.Vendor) error {
	if v.ID.IsZero() {
		v.ID = bson.NewObjectID()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = repository.Now()
	}
	repo.db.put(v.ID, *v)
	return nil
}

func (repo *vendorRepository) Replace(_ context.Context, id bson.ObjectID, v models.Vendor) error {
	return repo.db.update(id, func(row *models.Vendor) {
		row.SchoolName = v.SchoolName
		row.Stuff = v.Stuff
		row.ComName = v.ComName
		row.Phone = v.Phone
		row.Licence = v.Licence
	})
}

func (repo *vendorRepository) Delete(_ context.Context, id bson.ObjectID) error {
	return repo.db.remove(id)
}
