package availability

import (
	"context"
	"testing"

	profileRepo "carelink/database/repository/profile"
	"carelink/models"

	"go.mongodb.org/mongo-driver/bson"
)

// 2026-09-07 is a Monday.
const monday = "2026-09-07"

func mondayWindow() []models.AvailabilityWindow {
	return []models.AvailabilityWindow{{Weekday: 1, Start: 540, End: 1020}} // 09:00-17:00
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		start1, end1, start2, end2 int
		want                       bool
	}{
		{"partial overlap", 630, 690, 600, 660, true},
		{"contained", 615, 645, 600, 660, true},
		{"identical", 600, 660, 600, 660, true},
		{"back to back after", 660, 720, 600, 660, false},
		{"back to back before", 540, 600, 600, 660, false},
		{"disjoint", 720, 780, 600, 660, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.start1, tt.end1, tt.start2, tt.end2); got != tt.want {
				t.Errorf("Overlaps(%d, %d, %d, %d) = %v, want %v", tt.start1, tt.end1, tt.start2, tt.end2, got, tt.want)
			}
		})
	}
}

func TestGenerateSlots(t *testing.T) {
	committed := []models.Booking{
		{ServiceDate: monday, Start: 600, End: 660, Status: models.StatusConfirmed},
	}

	slots, err := GenerateSlots(mondayWindow(), committed, monday, monday, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 8 {
		t.Fatalf("got %d slots, want 8 for a 09:00-17:00 window at hourly granularity", len(slots))
	}

	for _, slot := range slots {
		wantAvailable := slot.Start != 600
		if slot.Available != wantAvailable {
			t.Errorf("slot %d-%d available = %v, want %v", slot.Start, slot.End, slot.Available, wantAvailable)
		}
	}
}

func TestGenerateSlotsFinerGranularity(t *testing.T) {
	committed := []models.Booking{
		{ServiceDate: monday, Start: 600, End: 660, Status: models.StatusConfirmed},
	}

	slots, err := GenerateSlots(mondayWindow(), committed, monday, monday, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 16 {
		t.Fatalf("got %d slots, want 16 at 30-minute granularity", len(slots))
	}
	blocked := 0
	for _, slot := range slots {
		if !slot.Available {
			blocked++
		}
	}
	if blocked != 2 {
		t.Errorf("blocked %d slots, want 2 (10:00-10:30 and 10:30-11:00)", blocked)
	}
}

func TestGenerateSlotsSkipsOtherWeekdays(t *testing.T) {
	// Monday through Wednesday with a Monday-only window yields Monday slots only.
	slots, err := GenerateSlots(mondayWindow(), nil, monday, "2026-09-09", 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, slot := range slots {
		if slot.Date != monday {
			t.Errorf("unexpected slot on %s", slot.Date)
		}
	}
	if len(slots) != 8 {
		t.Errorf("got %d slots, want 8", len(slots))
	}
}

func TestGenerateSlotsRejectsInvertedRange(t *testing.T) {
	if _, err := GenerateSlots(mondayWindow(), nil, monday, "2026-09-01", 60); err == nil {
		t.Fatal("expected an error for an inverted date range")
	}
}

type stubCaregiverRepo struct {
	caregiver *models.CaregiverProfile
}

func (r *stubCaregiverRepo) Create(ctx context.Context, c *models.CaregiverProfile) error { return nil }
func (r *stubCaregiverRepo) GetByID(ctx context.Context, id string) (*models.CaregiverProfile, error) {
	if r.caregiver == nil {
		return nil, profileRepo.ErrNotFound
	}
	return r.caregiver, nil
}
func (r *stubCaregiverRepo) GetByEmail(ctx context.Context, email string) (*models.CaregiverProfile, error) {
	return nil, profileRepo.ErrNotFound
}
func (r *stubCaregiverRepo) SetFCMToken(ctx context.Context, id, token string) error { return nil }

type stubBookingRepo struct {
	committed []models.Booking
}

func (r *stubBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	return nil, nil
}
func (r *stubBookingRepo) CreateIfSlotFree(ctx context.Context, booking *models.Booking) error {
	return nil
}
func (r *stubBookingRepo) UpdateStatusConditional(ctx context.Context, bookingID, from string, extra bson.M, set bson.M) (*models.Booking, error) {
	return nil, nil
}
func (r *stubBookingRepo) FindCommitted(ctx context.Context, caregiverID, fromDate, toDate string) ([]models.Booking, error) {
	return r.committed, nil
}
func (r *stubBookingRepo) FindConfirmedOnOrBefore(ctx context.Context, date string) ([]models.Booking, error) {
	return nil, nil
}

func TestIsSlotAvailable(t *testing.T) {
	ctx := context.Background()
	resolver := &DefaultResolver{
		Caregivers: &stubCaregiverRepo{caregiver: &models.CaregiverProfile{
			ID:                  "cg-1",
			AvailabilityWindows: mondayWindow(),
		}},
		Bookings: &stubBookingRepo{committed: []models.Booking{
			{ServiceDate: monday, Start: 600, End: 660, Status: models.StatusConfirmed},
		}},
	}

	tests := []struct {
		name       string
		start, end int
		want       bool
	}{
		{"overlaps committed booking", 630, 690, false},
		{"starts exactly at committed end", 660, 720, true},
		{"ends exactly at committed start", 540, 600, true},
		{"outside declared window", 480, 540, false},
		{"spills past window end", 960, 1080, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.IsSlotAvailable(ctx, "cg-1", monday, tt.start, tt.end)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsSlotAvailable(%d, %d) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
