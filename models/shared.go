package models

// Viewer roles.
const (
	RolePatient   = "patient"
	RoleCaregiver = "caregiver"
	RoleAdmin     = "admin"
)

// Booking statuses.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusNoShow     = "no_show"
)

// Visit location types.
const (
	LocationHome     = "home"
	LocationFacility = "facility"
	LocationOther    = "other"
)

// Location describes where a visit takes place.
type Location struct {
	Type    string `bson:"type" json:"type"`
	Details string `bson:"details,omitempty" json:"details,omitempty"`
}

// GeoPoint is an optional geolocation proof captured at session start.
type GeoPoint struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}
