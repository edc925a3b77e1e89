package notification

import (
	"context"
	"fmt"

	profileRepo "carelink/database/repository/profile"
	"carelink/models"
	"carelink/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// FCMDispatcher sends notifications as Firebase Cloud Messaging pushes,
// looking up the recipient's device token from the profile repos.
type FCMDispatcher struct {
	Patients   profileRepo.PatientRepository
	Caregivers profileRepo.CaregiverRepository
	Logger     *zap.Logger
}

func NewFCMDispatcher(patients profileRepo.PatientRepository, caregivers profileRepo.CaregiverRepository, logger *zap.Logger) *FCMDispatcher {
	return &FCMDispatcher{Patients: patients, Caregivers: caregivers, Logger: logger}
}

func (d *FCMDispatcher) Dispatch(ctx context.Context, n models.Notification) error {
	token, err := d.lookupToken(ctx, n.RecipientID, n.RecipientRole)
	if err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}
	if token == "" {
		// No registered device; nothing to deliver.
		d.Logger.Debug("recipient has no fcm token", zap.String("recipient", n.RecipientID))
		return nil
	}

	data := map[string]string{"type": n.Type}
	for k, v := range n.Data {
		data[k] = v
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("dispatch: failed to send FCM message: %w", err)
	}
	return nil
}

func (d *FCMDispatcher) lookupToken(ctx context.Context, recipientID, role string) (string, error) {
	switch role {
	case models.RoleCaregiver:
		c, err := d.Caregivers.GetByID(ctx, recipientID)
		if err != nil {
			return "", err
		}
		return c.FCMToken, nil
	default:
		p, err := d.Patients.GetByID(ctx, recipientID)
		if err != nil {
			return "", err
		}
		return p.FCMToken, nil
	}
}
