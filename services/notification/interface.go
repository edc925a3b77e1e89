package notification

import (
	"context"

	"carelink/models"
)

// Dispatcher delivers a notification to a recipient. The booking lifecycle
// only decides what to send; delivery mechanics live behind this interface.
type Dispatcher interface {
	Dispatch(ctx context.Context, n models.Notification) error
}
