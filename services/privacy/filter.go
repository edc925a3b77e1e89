package privacy

import (
	"strings"

	"carelink/models"
)

// Disclosure levels derived from booking status. Redaction only ever widens
// as a booking advances along the legal transition graph.
const (
	levelBaseline = iota // no booking, pending, cancelled, no_show
	levelCommitted       // confirmed, completed
	levelActive          // in_progress
)

func disclosureLevel(booking *models.Booking) int {
	if booking == nil {
		return levelBaseline
	}
	switch booking.Status {
	case models.StatusConfirmed, models.StatusCompleted:
		return levelCommitted
	case models.StatusInProgress:
		return levelActive
	default:
		return levelBaseline
	}
}

// FilterPatientProfile returns a redacted copy of a patient profile for the
// given viewer role and booking state. The stored profile is never mutated;
// the result is derived per read and identical for identical inputs.
func FilterPatientProfile(p *models.PatientProfile, booking *models.Booking, viewerRole string) models.PatientProfile {
	out := *p
	out.PasswordHash = ""
	out.FCMToken = ""

	// Admins and the subject's own role see the profile unmodified.
	if viewerRole == models.RoleAdmin || viewerRole == models.RolePatient {
		return out
	}

	level := disclosureLevel(booking)

	// Maximally redacted baseline: given name and city/state survive for
	// matching; medical condition tags survive for care matching. Free-text
	// care notes never leave the record.
	out.FamilyName = familyInitial(p.FamilyName)
	out.Email = ""
	out.Phone = ""
	out.Street = ""
	out.PostalCode = ""
	out.DateOfBirth = ""
	out.PhotoURL = ""
	out.CareNotes = ""
	out.EmergencyContacts = nil

	if level >= levelCommitted {
		out.FamilyName = p.FamilyName
		out.Phone = MaskPhone(p.Phone)
	}
	if level >= levelActive {
		// The caregiver travels to the patient: full contact and address
		// details unlock for the duration of the visit.
		out.Phone = p.Phone
		out.Street = p.Street
		out.PostalCode = p.PostalCode
		out.EmergencyContacts = append([]models.EmergencyContact(nil), p.EmergencyContacts...)
	}

	return out
}

// FilterCaregiverProfile returns a redacted copy of a caregiver profile.
// Rate, bio, skills and photo always survive (needed for selection); home
// address fields are never restored regardless of booking state, since the
// caregiver travels to the patient and not vice versa.
func FilterCaregiverProfile(c *models.CaregiverProfile, booking *models.Booking, viewerRole string) models.CaregiverProfile {
	out := *c
	out.PasswordHash = ""
	out.FCMToken = ""

	if viewerRole == models.RoleAdmin || viewerRole == models.RoleCaregiver {
		return out
	}

	level := disclosureLevel(booking)

	out.FamilyName = familyInitial(c.FamilyName)
	out.Email = ""
	out.Phone = ""
	out.Street = ""
	out.PostalCode = ""
	out.DateOfBirth = ""

	if level >= levelCommitted {
		out.FamilyName = c.FamilyName
		out.Phone = MaskPhone(c.Phone)
	}
	if level >= levelActive {
		out.Phone = c.Phone
	}

	return out
}

// familyInitial reduces a family name to its initial, e.g. "Okafor" -> "O.".
func familyInitial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return string([]rune(name)[0]) + "."
}

// MaskPhone preserves the area code and exchange and replaces the final two
// digits, e.g. "555-123-4567" -> "555-123-45**". Non-digit formatting is
// kept in place.
func MaskPhone(phone string) string {
	if phone == "" {
		return ""
	}
	runes := []rune(phone)
	masked := 0
	for i := len(runes) - 1; i >= 0 && masked < 2; i-- {
		switch {
		case runes[i] == '*':
			// Already masked; re-filtering must not eat further digits.
			masked++
		case runes[i] >= '0' && runes[i] <= '9':
			runes[i] = '*'
			masked++
		}
	}
	return string(runes)
}
