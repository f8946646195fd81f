package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ESGStatus tracks how much ESG data has been collected for a company.
type ESGStatus string

const (
	ESGStatusNotCollected ESGStatus = "not_collected"
	ESGStatusPartial      ESGStatus = "partial"
	ESGStatusComplete     ESGStatus = "complete"
)

// Coordinate is a (lat, lon) pair. The backend assigns an id when the
// coordinate is part of a stored area of interest.
type Coordinate struct {
	ID  string  `bson:"id,omitempty" json:"id,omitempty"`
	Lat float64 `bson:"lat"          json:"lat"`
	Lon float64 `bson:"lon"          json:"lon"`
}

// AreaOfInterest is a named region. One coordinate marks a single point,
// more than one describes a polygon.
type AreaOfInterest struct {
	Name        string       `bson:"name"        json:"name"`
	Coordinates []Coordinate `bson:"coordinates" json:"coordinates"`
}

// Company — the portal's managed entity. Registration number, email and
// phone are unique across the collection.
type Company struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"        json:"id"`
	Name               string             `bson:"name"                 json:"name"`
	RegistrationNumber string             `bson:"registration_number"  json:"registration_number"`
	Email              string             `bson:"email"                json:"email"`
	Phone              string             `bson:"phone"                json:"phone"`
	ContactPerson      string             `bson:"contact_person,omitempty" json:"contact_person,omitempty"`
	Industry           string             `bson:"industry,omitempty"   json:"industry,omitempty"`
	Country            string             `bson:"country,omitempty"    json:"country,omitempty"`
	AreaOfInterest     *AreaOfInterest    `bson:"area_of_interest,omitempty" json:"area_of_interest,omitempty"`
	ESGStatus          ESGStatus          `bson:"esg_status"           json:"esg_status"`
	CreatedAt          time.Time          `bson:"created_at"           json:"created_at"`
	UpdatedAt          time.Time          `bson:"updated_at"           json:"updated_at"`
}
