package record

import "time"

// Coordinate is a water-quality measurement tied to a geographic point.
// Optional measurements are pointers so that "not supplied" serializes as
// null rather than zero.
type Coordinate struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Lat          float64   `bson:"lat" json:"lat"`
	Lng          float64   `bson:"lng" json:"lng"`
	Transparency *float64  `bson:"transparency" json:"transparency"`
	Temperature  *float64  `bson:"temperature" json:"temperature"`
	Conductivity *float64  `bson:"conductivity" json:"conductivity"`
	WaterLevel   *float64  `bson:"waterlevel" json:"waterlevel"`
	Pathogens    string    `bson:"pathogens" json:"pathogens"`
	Description  string    `bson:"description" json:"description"`
	Status       Status    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// GetID returns the record identifier.
func (c *Coordinate) GetID() string { return c.ID }

// SetID assigns the record identifier. Called once by the store at insert.
func (c *Coordinate) SetID(id string) { c.ID = id }

// SetStatus moves the record to a new moderation stage and refreshes
// updatedAt. All other fields are left untouched.
func (c *Coordinate) SetStatus(status Status, now time.Time) {
	c.Status = status
	c.UpdatedAt = now
}
