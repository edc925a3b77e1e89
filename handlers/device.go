package handlers

import (
	"net/http"

	profileRepo "carelink/database/repository/profile"
	"carelink/models"

	"github.com/gin-gonic/gin"
)

// DeviceHandler maintains the actor's push registration.
type DeviceHandler struct {
	Patients   profileRepo.PatientRepository
	Caregivers profileRepo.CaregiverRepository
}

func NewDeviceHandler(patients profileRepo.PatientRepository, caregivers profileRepo.CaregiverRepository) *DeviceHandler {
	return &DeviceHandler{Patients: patients, Caregivers: caregivers}
}

// UpdateFCMToken handles PUT /api/devices/fcm-token. The token belongs to the
// authenticated actor; visit reminders and safety check-ins are delivered to
// it from then on.
func (h *DeviceHandler) UpdateFCMToken(c *gin.Context) {
	actorID, role := actor(c)

	var input struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	var err error
	switch role {
	case models.RoleCaregiver:
		err = h.Caregivers.SetFCMToken(c.Request.Context(), actorID, input.Token)
	default:
		err = h.Patients.SetFCMToken(c.Request.Context(), actorID, input.Token)
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to update device token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "device token updated"})
}
