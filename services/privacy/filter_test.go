package privacy

import (
	"reflect"
	"testing"

	"carelink/models"
)

func testPatient() *models.PatientProfile {
	return &models.PatientProfile{
		ID:          "pat-1",
		GivenName:   "Rose",
		FamilyName:  "Okafor",
		Email:       "rose@example.com",
		Phone:       "555-123-4567",
		Street:      "12 Elm Street",
		City:        "Springfield",
		State:       "IL",
		PostalCode:  "62704",
		DateOfBirth: "1948-05-02",
		PhotoURL:    "https://cdn.example.com/rose.jpg",
		Conditions:  []string{"dementia"},
		CareNotes:   "prefers morning visits",
		EmergencyContacts: []models.EmergencyContact{
			{Name: "Ben Okafor", Relation: "son", Phone: "555-987-6543"},
		},
		PasswordHash: "hash",
		FCMToken:     "token",
	}
}

func testCaregiver() *models.CaregiverProfile {
	return &models.CaregiverProfile{
		ID:          "cg-1",
		GivenName:   "Maya",
		FamilyName:  "Chen",
		Email:       "maya@example.com",
		Phone:       "555-222-3344",
		Street:      "9 Oak Avenue",
		City:        "Springfield",
		State:       "IL",
		PostalCode:  "62701",
		DateOfBirth: "1990-11-20",
		PhotoURL:    "https://cdn.example.com/maya.jpg",
		HourlyRate:  30,
		Bio:         "10 years of elder care",
		Skills:      []string{"dementia care"},
	}
}

func bookingWithStatus(status string) *models.Booking {
	if status == "" {
		return nil
	}
	return &models.Booking{ID: "b1", PatientID: "pat-1", CaregiverID: "cg-1", Status: status}
}

func TestFilterPatientProfileBaseline(t *testing.T) {
	for _, status := range []string{"", models.StatusPending, models.StatusCancelled, models.StatusNoShow} {
		got := FilterPatientProfile(testPatient(), bookingWithStatus(status), models.RoleCaregiver)

		if got.FamilyName != "O." {
			t.Errorf("status %q: family name = %q, want initial", status, got.FamilyName)
		}
		if got.Email != "" || got.Phone != "" || got.Street != "" || got.PostalCode != "" {
			t.Errorf("status %q: contact fields leaked: %+v", status, got)
		}
		if got.DateOfBirth != "" || got.PhotoURL != "" || got.CareNotes != "" || got.EmergencyContacts != nil {
			t.Errorf("status %q: sensitive fields leaked: %+v", status, got)
		}
		if got.City != "Springfield" || got.State != "IL" {
			t.Errorf("status %q: coarse location should survive, got %q %q", status, got.City, got.State)
		}
		if len(got.Conditions) != 1 {
			t.Errorf("status %q: condition tags should survive for matching", status)
		}
	}
}

func TestFilterPatientProfileWidensWithStatus(t *testing.T) {
	confirmed := FilterPatientProfile(testPatient(), bookingWithStatus(models.StatusConfirmed), models.RoleCaregiver)
	if confirmed.FamilyName != "Okafor" {
		t.Errorf("confirmed family name = %q, want full", confirmed.FamilyName)
	}
	if confirmed.Phone != "555-123-45**" {
		t.Errorf("confirmed phone = %q, want masked", confirmed.Phone)
	}
	if confirmed.Street != "" || confirmed.EmergencyContacts != nil {
		t.Errorf("confirmed should not reveal address or contacts: %+v", confirmed)
	}

	active := FilterPatientProfile(testPatient(), bookingWithStatus(models.StatusInProgress), models.RoleCaregiver)
	if active.Phone != "555-123-4567" {
		t.Errorf("active phone = %q, want full", active.Phone)
	}
	if active.Street != "12 Elm Street" || active.PostalCode != "62704" {
		t.Errorf("active should reveal the visit address: %+v", active)
	}
	if len(active.EmergencyContacts) != 1 {
		t.Errorf("active should reveal emergency contacts")
	}
	if active.CareNotes != "" {
		t.Errorf("care notes must never leave the record, got %q", active.CareNotes)
	}
}

func TestFilterCaregiverAddressNeverRevealed(t *testing.T) {
	for _, status := range []string{"", models.StatusPending, models.StatusConfirmed, models.StatusInProgress, models.StatusCompleted} {
		got := FilterCaregiverProfile(testCaregiver(), bookingWithStatus(status), models.RolePatient)
		if got.Street != "" || got.PostalCode != "" {
			t.Errorf("status %q: caregiver home address leaked: %q %q", status, got.Street, got.PostalCode)
		}
	}
}

func TestFilterCaregiverSelectionFieldsSurvive(t *testing.T) {
	got := FilterCaregiverProfile(testCaregiver(), nil, models.RolePatient)
	if got.HourlyRate != 30 || got.Bio == "" || len(got.Skills) != 1 || got.PhotoURL == "" {
		t.Errorf("selection fields should survive baseline redaction: %+v", got)
	}
	if got.FamilyName != "C." {
		t.Errorf("family name = %q, want initial", got.FamilyName)
	}
}

func TestFilterBypassForAdminAndSelf(t *testing.T) {
	adminView := FilterPatientProfile(testPatient(), nil, models.RoleAdmin)
	if adminView.Email == "" || adminView.Street == "" {
		t.Errorf("admin view should be unredacted: %+v", adminView)
	}
	if adminView.PasswordHash != "" || adminView.FCMToken != "" {
		t.Errorf("credentials must never be exposed, even to admins")
	}

	selfView := FilterPatientProfile(testPatient(), nil, models.RolePatient)
	if selfView.Email == "" || selfView.CareNotes == "" {
		t.Errorf("self view should be unredacted: %+v", selfView)
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	booking := bookingWithStatus(models.StatusConfirmed)
	once := FilterPatientProfile(testPatient(), booking, models.RoleCaregiver)
	twice := FilterPatientProfile(&once, booking, models.RoleCaregiver)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filtering a filtered profile changed it:\nonce : %+v\ntwice: %+v", once, twice)
	}
}

func TestFilterDoesNotMutateStored(t *testing.T) {
	stored := testPatient()
	FilterPatientProfile(stored, bookingWithStatus(models.StatusPending), models.RoleCaregiver)
	if stored.Email == "" || stored.Phone == "" || stored.CareNotes == "" {
		t.Errorf("stored profile was mutated: %+v", stored)
	}
}

func TestMaskPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"555-123-4567", "555-123-45**"},
		{"(555) 123-4567", "(555) 123-45**"},
		{"", ""},
		{"x", "x"},
	}
	for _, tt := range tests {
		if got := MaskPhone(tt.in); got != tt.want {
			t.Errorf("MaskPhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
