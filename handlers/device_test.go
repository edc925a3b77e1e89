package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	profileRepo "carelink/database/repository/profile"
	"carelink/middleware"
	"carelink/models"

	"github.com/gin-gonic/gin"
)

type tokenRecordingPatientRepo struct {
	tokens map[string]string
}

func (r *tokenRecordingPatientRepo) Create(ctx context.Context, p *models.PatientProfile) error {
	return nil
}
func (r *tokenRecordingPatientRepo) GetByID(ctx context.Context, id string) (*models.PatientProfile, error) {
	return nil, profileRepo.ErrNotFound
}
func (r *tokenRecordingPatientRepo) GetByEmail(ctx context.Context, email string) (*models.PatientProfile, error) {
	return nil, profileRepo.ErrNotFound
}
func (r *tokenRecordingPatientRepo) SetFCMToken(ctx context.Context, id, token string) error {
	r.tokens[id] = token
	return nil
}

type tokenRecordingCaregiverRepo struct {
	tokens map[string]string
}

func (r *tokenRecordingCaregiverRepo) Create(ctx context.Context, c *models.CaregiverProfile) error {
	return nil
}
func (r *tokenRecordingCaregiverRepo) GetByID(ctx context.Context, id string) (*models.CaregiverProfile, error) {
	return nil, profileRepo.ErrNotFound
}
func (r *tokenRecordingCaregiverRepo) GetByEmail(ctx context.Context, email string) (*models.CaregiverProfile, error) {
	return nil, profileRepo.ErrNotFound
}
func (r *tokenRecordingCaregiverRepo) SetFCMToken(ctx context.Context, id, token string) error {
	r.tokens[id] = token
	return nil
}

func fcmTokenRequest(h *DeviceHandler, actorID, role, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/api/devices/fcm-token", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxActorID, actorID)
	c.Set(middleware.CtxActorRole, role)

	h.UpdateFCMToken(c)
	return w
}

func TestUpdateFCMTokenStoresForActorRole(t *testing.T) {
	patients := &tokenRecordingPatientRepo{tokens: make(map[string]string)}
	caregivers := &tokenRecordingCaregiverRepo{tokens: make(map[string]string)}
	h := NewDeviceHandler(patients, caregivers)

	w := fcmTokenRequest(h, "pat-1", models.RolePatient, `{"token":"device-abc"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if patients.tokens["pat-1"] != "device-abc" {
		t.Errorf("patient token = %q, want device-abc", patients.tokens["pat-1"])
	}
	if len(caregivers.tokens) != 0 {
		t.Errorf("caregiver repo touched for a patient actor: %v", caregivers.tokens)
	}

	w = fcmTokenRequest(h, "cg-1", models.RoleCaregiver, `{"token":"device-xyz"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if caregivers.tokens["cg-1"] != "device-xyz" {
		t.Errorf("caregiver token = %q, want device-xyz", caregivers.tokens["cg-1"])
	}
}

func TestUpdateFCMTokenRequiresToken(t *testing.T) {
	patients := &tokenRecordingPatientRepo{tokens: make(map[string]string)}
	caregivers := &tokenRecordingCaregiverRepo{tokens: make(map[string]string)}
	h := NewDeviceHandler(patients, caregivers)

	w := fcmTokenRequest(h, "pat-1", models.RolePatient, `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if len(patients.tokens) != 0 {
		t.Errorf("token stored despite invalid input: %v", patients.tokens)
	}
}
