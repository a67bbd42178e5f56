package record

import "time"

// Default field values applied at creation.
const (
	DefaultSeverity  = "medium"
	DefaultPathogens = "Unknown"
)

// Report is a citizen-submitted environmental incident.
// The same struct is persisted (BSON for the document store, JSON for the
// file store) and returned on the wire.
type Report struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Type        string    `bson:"type" json:"type"`
	Location    string    `bson:"location" json:"location"`
	Description string    `bson:"description" json:"description"`
	Coordinates string    `bson:"coordinates" json:"coordinates"`
	Severity    string    `bson:"severity" json:"severity"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone" json:"phone"`
	Status      Status    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// GetID returns the record identifier.
func (r *Report) GetID() string { return r.ID }

// SetID assigns the record identifier. Called once by the store at insert.
func (r *Report) SetID(id string) { r.ID = id }

// SetStatus moves the record to a new moderation stage and refreshes
// updatedAt. All other fields are left untouched.
func (r *Report) SetStatus(status Status, now time.Time) {
	r.Status = status
	r.UpdatedAt = now
}
