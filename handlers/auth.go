package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"time"

	profileRepo "carelink/database/repository/profile"
	"carelink/models"
	"carelink/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthHandler registers and authenticates patients and caregivers.
type AuthHandler struct {
	Patients   profileRepo.PatientRepository
	Caregivers profileRepo.CaregiverRepository
}

func NewAuthHandler(patients profileRepo.PatientRepository, caregivers profileRepo.CaregiverRepository) *AuthHandler {
	return &AuthHandler{Patients: patients, Caregivers: caregivers}
}

func validateSignup(input models.SignupInput) []models.FieldError {
	var fields []models.FieldError
	if input.Role != models.RolePatient && input.Role != models.RoleCaregiver {
		fields = append(fields, models.FieldError{Field: "role", Message: "role must be patient or caregiver"})
	}
	if input.GivenName == "" {
		fields = append(fields, models.FieldError{Field: "given_name", Message: "given_name is required"})
	}
	if input.FamilyName == "" {
		fields = append(fields, models.FieldError{Field: "family_name", Message: "family_name is required"})
	}
	if !emailPattern.MatchString(input.Email) {
		fields = append(fields, models.FieldError{Field: "email", Message: "email is not valid"})
	}
	if len(input.Password) < 8 {
		fields = append(fields, models.FieldError{Field: "password", Message: "password must be at least 8 characters"})
	}
	return fields
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var input models.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if fields := validateSignup(input); len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "validation failed", "errors": fields})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process password"})
		return
	}

	id := uuid.New().String()
	ctx := c.Request.Context()

	switch input.Role {
	case models.RoleCaregiver:
		caregiver := &models.CaregiverProfile{
			ID:           id,
			GivenName:    input.GivenName,
			FamilyName:   input.FamilyName,
			Email:        input.Email,
			Phone:        input.Phone,
			City:         input.City,
			State:        input.State,
			HourlyRate:   input.HourlyRate,
			PasswordHash: string(hash),
			CreatedAt:    time.Now(),
		}
		if err := h.Caregivers.Create(ctx, caregiver); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "account could not be created"})
			return
		}
	default:
		patient := &models.PatientProfile{
			ID:           id,
			GivenName:    input.GivenName,
			FamilyName:   input.FamilyName,
			Email:        input.Email,
			Phone:        input.Phone,
			City:         input.City,
			State:        input.State,
			PasswordHash: string(hash),
			CreatedAt:    time.Now(),
		}
		if err := h.Patients.Create(ctx, patient); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "account could not be created"})
			return
		}
	}

	token, err := utils.GenerateToken(id, input.Role, tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "role": input.Role, "token": token})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	var id, hash string

	switch input.Role {
	case models.RoleCaregiver:
		caregiver, err := h.Caregivers.GetByEmail(ctx, input.Email)
		if err != nil {
			h.rejectLogin(c, err)
			return
		}
		id, hash = caregiver.ID, caregiver.PasswordHash
	default:
		patient, err := h.Patients.GetByEmail(ctx, input.Email)
		if err != nil {
			h.rejectLogin(c, err)
			return
		}
		id, hash = patient.ID, patient.PasswordHash
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	role := input.Role
	if role == "" {
		role = models.RolePatient
	}
	token, err := utils.GenerateToken(id, role, tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "role": role, "token": token})
}

// rejectLogin answers unknown accounts and bad passwords the same way.
func (h *AuthHandler) rejectLogin(c *gin.Context, err error) {
	if errors.Is(err, profileRepo.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "authentication is temporarily unavailable"})
}
