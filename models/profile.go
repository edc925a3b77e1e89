package models

import "time"

// EmergencyContact is a patient's next-of-kin reachable during a visit.
type EmergencyContact struct {
	Name     string `bson:"name" json:"name"`
	Relation string `bson:"relation" json:"relation"`
	Phone    string `bson:"phone" json:"phone"`
}

// PatientProfile holds the identity and care fields of a care recipient.
// The privacy filter produces redacted copies of this struct; the stored
// document is never mutated by a read.
type PatientProfile struct {
	ID          string `bson:"id" json:"id"`
	GivenName   string `bson:"given_name" json:"given_name"`
	FamilyName  string `bson:"family_name" json:"family_name"`
	Email       string `bson:"email" json:"email,omitempty"`
	Phone       string `bson:"phone" json:"phone,omitempty"`
	Street      string `bson:"street" json:"street,omitempty"`
	City        string `bson:"city" json:"city,omitempty"`
	State       string `bson:"state" json:"state,omitempty"`
	PostalCode  string `bson:"postal_code" json:"postal_code,omitempty"`
	DateOfBirth string `bson:"date_of_birth" json:"date_of_birth,omitempty"`
	PhotoURL    string `bson:"photo_url" json:"photo_url,omitempty"`

	Conditions        []string           `bson:"conditions,omitempty" json:"conditions,omitempty"`
	CareNotes         string             `bson:"care_notes,omitempty" json:"care_notes,omitempty"`
	EmergencyContacts []EmergencyContact `bson:"emergency_contacts,omitempty" json:"emergency_contacts,omitempty"`

	ActiveSubscription bool `bson:"active_subscription" json:"active_subscription"`

	PasswordHash string    `bson:"password_hash" json:"-"`
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// CaregiverProfile holds the identity and service fields of a caregiver.
type CaregiverProfile struct {
	ID          string `bson:"id" json:"id"`
	GivenName   string `bson:"given_name" json:"given_name"`
	FamilyName  string `bson:"family_name" json:"family_name"`
	Email       string `bson:"email" json:"email,omitempty"`
	Phone       string `bson:"phone" json:"phone,omitempty"`
	Street      string `bson:"street" json:"street,omitempty"`
	City        string `bson:"city" json:"city,omitempty"`
	State       string `bson:"state" json:"state,omitempty"`
	PostalCode  string `bson:"postal_code" json:"postal_code,omitempty"`
	DateOfBirth string `bson:"date_of_birth" json:"date_of_birth,omitempty"`
	PhotoURL    string `bson:"photo_url" json:"photo_url,omitempty"`

	HourlyRate     float64  `bson:"hourly_rate" json:"hourly_rate"`
	Bio            string   `bson:"bio,omitempty" json:"bio,omitempty"`
	Skills         []string `bson:"skills,omitempty" json:"skills,omitempty"`
	Certifications []string `bson:"certifications,omitempty" json:"certifications,omitempty"`

	Verified               bool `bson:"verified" json:"verified"`
	BackgroundCheckCleared bool `bson:"background_check_cleared" json:"background_check_cleared"`

	// Declared weekly availability windows, minutes from midnight per weekday.
	AvailabilityWindows []AvailabilityWindow `bson:"availability_windows,omitempty" json:"availability_windows,omitempty"`

	PasswordHash string    `bson:"password_hash" json:"-"`
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
