package memory

import (
	"context"
	"slices"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jeongjingoo/tech/internal/models"
	"github.com/jeongjingoo/tech/internal/repository"
	"github.com/jeongjingoo/tech/internal/utils"
)

type postRepository struct {
	db *table[models.Post]
}

func NewPostRepository(db *DB) repository.PostRepository {
	return &postRepository{db: db.posts}
}

// detach gives the caller its own replies slice.
func detach(p models.Post) models.Post {
	p.Replies = slices.Clone(p.Replies)
	p.Normalize()
	return p
}

func (repo *postRepository) List(_ context.Context, p utils.Page) ([]models.Post, int64, error) {
	items, total := repo.db.page(p)
	for i := range items {
		items[i] = detach(items[i])
	}
	return items, total, nil
}

func (repo *postRepository) Get(_ context.Context, id bson.ObjectID) (*models.Post, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	row, ok := repo.db.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	post := detach(*row)
	return &post, nil
}

func (repo *postRepository) Insert(_ context.Context, p *models.Post) error {
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = repository.Now()
	}
	p.Normalize()
	repo.db.put(p.ID, detach(*p))
	return nil
}

func (repo *postRepository) Replace(_ context.Context, id bson.ObjectID, p models.Post) error {
	return repo.db.update(id, func(row *models.Post) {
		row.Title = p.Title
		row.Content = p.Content
		row.Writer = p.Writer
	})
}

func (repo *postRepository) Delete(_ context.Context, id bson.ObjectID) error {
	return repo.db.remove(id)
}

func (repo *postRepository) AppendReply(_ context.Context, id bson.ObjectID, reply models.Reply) error {
	if reply.CreatedAt.IsZero() {
		reply.CreatedAt = repository.Now()
	}
	return repo.db.update(id, func(row *models.Post) {
		row.Replies = append(row.Replies, reply)
	})
}

func (repo *postRepository) IncrementViews(_ context.Context, id bson.ObjectID) error {
	return repo.db.update(id, func(row *models.Post) { row.Views++ })
}
