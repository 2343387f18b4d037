package model

import "strconv"

// CharacterStatus is the life status reported by the API
type CharacterStatus string

const (
	StatusAlive   CharacterStatus = "Alive"
	StatusDead    CharacterStatus = "Dead"
	StatusUnknown CharacterStatus = "unknown"
)

// String returns the string representation of CharacterStatus
func (cs CharacterStatus) String() string {
	return string(cs)
}

// IsKnown returns true if the status is one of the values the API documents
func (cs CharacterStatus) IsKnown() bool {
	return cs == StatusAlive || cs == StatusDead || cs == StatusUnknown
}

// Character represents a single character record. Records are treated as
// immutable once decoded.
type Character struct {
	ID      int             `json:"id"`
	Name    string          `json:"name"`
	Status  CharacterStatus `json:"status"`
	Species string          `json:"species"`
	Gender  string          `json:"gender"`
	Image   string          `json:"image"` // thumbnail URL
	URL     string          `json:"url"`   // self link in the API
}

// Key returns the stable list key for the record
func (c Character) Key() string {
	return strconv.Itoa(c.ID)
}
