package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const EventCollection = "calendar"

// Event start/end are kept as the ISO-8601 strings the calendar widget emits.
type Event struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string        `bson:"title" json:"title"`
	Start       string        `bson:"start" json:"start"`
	End         string        `bson:"end" json:"end"`
	Description string        `bson:"description" json:"description"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
}
