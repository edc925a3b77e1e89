package profileRepo

import (
	"context"
	"errors"

	"carelink/models"
)

// ErrNotFound is returned when a profile does not exist.
var ErrNotFound = errors.New("profile not found")

// PatientRepository defines persistence operations for patient profiles.
type PatientRepository interface {
	Create(ctx context.Context, p *models.PatientProfile) error
	GetByID(ctx context.Context, id string) (*models.PatientProfile, error)
	GetByEmail(ctx context.Context, email string) (*models.PatientProfile, error)
	SetFCMToken(ctx context.Context, id, token string) error
}

// CaregiverRepository defines persistence operations for caregiver profiles.
type CaregiverRepository interface {
	Create(ctx context.Context, c *models.CaregiverProfile) error
	GetByID(ctx context.Context, id string) (*models.CaregiverProfile, error)
	GetByEmail(ctx context.Context, email string) (*models.CaregiverProfile, error)
	SetFCMToken(ctx context.Context, id, token string) error
}
