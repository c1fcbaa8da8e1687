package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const SchoolCollection = "schools"

// Seoul city hall, used when a school has no coordinates.
const (
	DefaultLat = 37.5665
	DefaultLon = 126.9780
)

type SchoolData struct {
	Division        string  `bson:"division" json:"division"`
	Level           string  `bson:"level" json:"level"`
	Name            string  `bson:"name" json:"name"`
	IsTech          int     `bson:"istech" json:"istech"`
	Address         string  `bson:"address" json:"address"`
	TotalClasses    int     `bson:"total_classes" json:"total_classes"`
	TeachersRoomNum string  `bson:"teachers_room_num" json:"teachers_room_num"`
	AdminRoomNum    string  `bson:"admin_room_num" json:"admin_room_num"`
	Team            string  `bson:"team" json:"team"`
	Lat             float64 `bson:"lat" json:"lat"`
	Lon             float64 `bson:"lon" json:"lon"`
}

// WithDefaults fills zero coordinates with the default map centre.
func (d SchoolData) WithDefaults() SchoolData {
	if d.Lat == 0 {
		d.Lat = DefaultLat
	}
	if d.Lon == 0 {
		d.Lon = DefaultLon
	}
	return d
}

type School struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Data      SchoolData    `bson:"data" json:"data"`
	IsComp    int           `bson:"iscomp" json:"iscomp"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt *time.Time    `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// SchoolPatch carries the partial update accepted by the status endpoint.
type SchoolPatch struct {
	Team   *string
	IsComp *int
}

func (p SchoolPatch) Empty() bool { return p.Team == nil && p.IsComp == nil }
