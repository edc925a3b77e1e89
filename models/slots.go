package models

// AvailabilityWindow is a declared working window on a weekday.
// Weekday follows time.Weekday numbering (Sunday = 0).
type AvailabilityWindow struct {
	Weekday int `bson:"weekday" json:"weekday"`
	Start   int `bson:"start" json:"start"` // minutes from midnight
	End     int `bson:"end" json:"end"`
}

// TimeSlot is a derived bookable interval. Slots are computed on demand
// from a caregiver's declared availability minus committed bookings and are
// never persisted.
type TimeSlot struct {
	Date      string `json:"date"` // "YYYY-MM-DD"
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Available bool   `json:"available"`
}
