package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const VendorCollection = "maintenance"

// Vendor is a maintenance company contracted by a school.
type Vendor struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	SchoolName string        `bson:"school_name" json:"school_name"`
	Stuff      string        `bson:"stuff" json:"stuff"`
	ComName    string        `bson:"com_name" json:"com_name"`
	Phone      string        `bson:"phone" json:"phone"`
	Licence    string        `bson:"licence" json:"licence"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
}
