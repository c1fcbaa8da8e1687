package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const TechnicianCollection = "technicians"

type Technician struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string        `bson:"name" json:"name"`
	PhoneNumber string        `bson:"phoneNumber" json:"phoneNumber"`
	Team        string        `bson:"team" json:"team"`
	LoginID     string        `bson:"id" json:"id"`
	Password    string        `bson:"password" json:"-"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
}

// Profile is what a successful login hands back to the client.
type Profile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Team string `json:"team"`
}

func (t Technician) Profile() Profile {
	return Profile{ID: t.LoginID, Name: t.Name, Team: t.Team}
}
