// Package record defines the domain records collected by AquaWatch and their
// shared moderation lifecycle.
package record

import "errors"

// Status errors.
var (
	ErrInvalidStatus = errors.New("invalid status")
)

// Status represents the moderation stage of a record.
type Status string

const (
	StatusPending  Status = "pending"
	StatusReviewed Status = "reviewed"
	StatusResolved Status = "resolved"
)

// ParseStatus validates a raw status value.
// Returns ErrInvalidStatus for anything outside the three defined stages.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusReviewed, StatusResolved:
		return Status(raw), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Valid reports whether s is one of the defined stages.
func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}
