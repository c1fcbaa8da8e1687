package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jeongjingoo/tech/internal/models"
	"github.com/jeongjingoo/tech/internal/utils"
)

type mongoPosts struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) PostRepository {
	return &mongoPosts{col: db.Collection(models.PostCollection)}
}

func (r *mongoPosts) List(ctx context.Context, p utils.Page) ([]models.Post, int64, error) {
	posts, total, err := findPage[models.Post](ctx, r.col, bson.M{}, p)
	for i := range posts {
		posts[i].Normalize()
	}
	return posts, total, err
}

func (r *mongoPosts) Get(ctx context.Context, id bson.ObjectID) (*models.Post, error) {
	post, err := findOne[models.Post](ctx, r.col, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	post.Normalize()
	return post, nil
}

func (r *mongoPosts) Insert(ctx context.Context, p *models.Post) error {
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = Now()
	}
	p.Normalize()
	return insert(ctx, r.col, p)
}

func (r *mongoPosts) Replace(ctx context.Context, id bson.ObjectID, p models.Post) error {
	return updateByID(ctx, r.col, id, bson.M{"$set": bson.M{
		"title":   p.Title,
		"content": p.Content,
		"writer":  p.Writer,
	}})
}

func (r *mongoPosts) Delete(ctx context.Context, id bson.ObjectID) error {
	return deleteByID(ctx, r.col, id)
}

func (r *mongoPosts) AppendReply(ctx context.Context, id bson.ObjectID, reply models.Reply) error {
	if reply.CreatedAt.IsZero() {
		reply.CreatedAt = Now()
	}
	return updateByID(ctx, r.col, id, bson.M{"$push": bson.M{"replies": reply}})
}

func (r *mongoPosts) IncrementViews(ctx context.Context, id bson.ObjectID) error {
	return updateByID(ctx, r.col, id, bson.M{"$inc": bson.M{"views": 1}})
}
