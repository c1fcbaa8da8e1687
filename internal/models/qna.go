package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const PostCollection = "qna"

type Reply struct {
	Content   string    `bson:"content" json:"content"`
	Writer    string    `bson:"writer" json:"writer"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type Post struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title     string        `bson:"title" json:"title"`
	Content   string        `bson:"content" json:"content"`
	Writer    string        `bson:"writer" json:"writer"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	Views     int64         `bson:"views" json:"views"`
	Replies   []Reply       `bson:"replies" json:"replies"`
}

// Normalize makes sure replies serialize as an empty list.
func (p *Post) Normalize() {
	if p.Replies == nil {
		p.Replies = []Reply{}
	}
}
