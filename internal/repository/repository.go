package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jeongjingoo/tech/internal/models"
	"github.com/jeongjingoo/tech/internal/utils"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate key")
)

type SchoolRepository interface {
	List(ctx context.Context, p utils.Page) ([]models.School, int64, error)
	// All returns every school, optionally restricted to one team.
	All(ctx context.Context, team string) ([]models.School, error)
	Insert(ctx context.Context, s *models.School) error
	ReplaceData(ctx context.Context, id bson.ObjectID, data models.SchoolData) error
	Patch(ctx context.Context, id bson.ObjectID, p models.SchoolPatch) error
	Delete(ctx context.Context, id bson.ObjectID) error
	FindByNaturalKey(ctx context.Context, division, level, name string) (*models.School, error)
	Count(ctx context.Context) (int64, error)
	CountCompleted(ctx context.Context) (int64, error)
}

type TechnicianRepository interface {
	List(ctx context.Context) ([]models.Technician, error)
	Insert(ctx context.Context, t *models.Technician) error
	// Replace overwrites the profile fields; an empty Password keeps the stored one.
	Replace(ctx context.Context, id bson.ObjectID, t models.Technician) error
	Delete(ctx context.Context, id bson.ObjectID) error
	FindByLoginID(ctx context.Context, loginID string) (*models.Technician, error)
	SetPassword(ctx context.Context, id bson.ObjectID, hash string) error
	Count(ctx context.Context) (int64, error)
}

type VendorRepository interface {
	List(ctx context.Context, p utils.Page) ([]models.Vendor, int64, error)
	Insert(ctx context.Context, v *models.Vendor) error
	Replace(ctx context.Context, id bson.ObjectID, v models.Vendor) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

type PostRepository interface {
	List(ctx context.Context, p utils.Page) ([]models.Post, int64, error)
	Get(ctx context.Context, id bson.ObjectID) (*models.Post, error)
	Insert(ctx context.Context, p *models.Post) error
	// Replace updates title, content and writer only.
	Replace(ctx context.Context, id bson.ObjectID, p models.Post) error
	Delete(ctx context.Context, id bson.ObjectID) error
	AppendReply(ctx context.Context, id bson.ObjectID, r models.Reply) error
	IncrementViews(ctx context.Context, id bson.ObjectID) error
}

type EventRepository interface {
	List(ctx context.Context) ([]models.Event, error)
	Insert(ctx context.Context, e *models.Event) error
	Replace(ctx context.Context, id bson.ObjectID, e models.Event) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

// Stores groups one repository per collection.
type Stores struct {
	Schools     SchoolRepository
	Technicians TechnicianRepository
	Vendors     VendorRepository
	Posts       PostRepository
	Events      EventRepository
}

// Now is the timestamp stored on new and updated documents. BSON dates
// keep millisecond precision, so every backend truncates the same way.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
