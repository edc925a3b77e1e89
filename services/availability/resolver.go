package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bookingRepo "carelink/database/repository/booking"
	profileRepo "carelink/database/repository/profile"
	"carelink/models"

	"github.com/go-redis/redis/v8"
)

// Resolver computes bookable time slots for a caregiver. It is a pure
// read/derive operation with no side effects, safe to call repeatedly and
// concurrently; conflicts are enforced by the booking repository at commit.
type Resolver interface {
	// GetCaregiverAvailability returns granular slots between startDate and
	// endDate (inclusive, "YYYY-MM-DD").
	GetCaregiverAvailability(ctx context.Context, caregiverID, startDate, endDate string) ([]models.TimeSlot, error)
	// IsSlotAvailable reports whether [start, end) on date falls inside a
	// declared window and clear of committed bookings.
	IsSlotAvailable(ctx context.Context, caregiverID, date string, start, end int) (bool, error)
}

// DefaultResolver is the production implementation. The optional cache holds
// derived slot listings for a short TTL; staleness is acceptable because the
// listing is advisory and overlap is re-checked when a booking commits.
type DefaultResolver struct {
	Caregivers  profileRepo.CaregiverRepository
	Bookings    bookingRepo.BookingRepository
	Granularity int // slot length in minutes

	Cache    *redis.Client
	CacheTTL time.Duration
}

func (r *DefaultResolver) granularity() int {
	if r.Granularity <= 0 {
		return 60
	}
	return r.Granularity
}

func (r *DefaultResolver) cacheTTL() time.Duration {
	if r.CacheTTL <= 0 {
		return 30 * time.Second
	}
	return r.CacheTTL
}

func (r *DefaultResolver) GetCaregiverAvailability(ctx context.Context, caregiverID, startDate, endDate string) ([]models.TimeSlot, error) {
	cacheKey := fmt.Sprintf("availability:%s:%s:%s:%d", caregiverID, startDate, endDate, r.granularity())
	if r.Cache != nil {
		if cached, err := r.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var slots []models.TimeSlot
			if err := json.Unmarshal([]byte(cached), &slots); err == nil {
				return slots, nil
			}
		}
	}

	caregiver, err := r.Caregivers.GetByID(ctx, caregiverID)
	if err != nil {
		return nil, fmt.Errorf("resolver: %w", err)
	}

	committed, err := r.Bookings.FindCommitted(ctx, caregiverID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("resolver: %w", err)
	}

	slots, err := GenerateSlots(caregiver.AvailabilityWindows, committed, startDate, endDate, r.granularity())
	if err != nil {
		return nil, err
	}

	if r.Cache != nil {
		if encoded, err := json.Marshal(slots); err == nil {
			// Best effort; a cache write failure never fails the read.
			r.Cache.Set(ctx, cacheKey, encoded, r.cacheTTL())
		}
	}
	return slots, nil
}

func (r *DefaultResolver) IsSlotAvailable(ctx context.Context, caregiverID, date string, start, end int) (bool, error) {
	caregiver, err := r.Caregivers.GetByID(ctx, caregiverID)
	if err != nil {
		return false, fmt.Errorf("resolver: %w", err)
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false, fmt.Errorf("resolver: invalid date %q: %w", date, err)
	}

	if !insideWindow(caregiver.AvailabilityWindows, int(day.Weekday()), start, end) {
		return false, nil
	}

	committed, err := r.Bookings.FindCommitted(ctx, caregiverID, date, date)
	if err != nil {
		return false, fmt.Errorf("resolver: %w", err)
	}
	for _, b := range committed {
		if b.ServiceDate == date && Overlaps(start, end, b.Start, b.End) {
			return false, nil
		}
	}
	return true, nil
}

// Overlaps reports half-open interval overlap: start1 < end2 && end1 > start2.
func Overlaps(start1, end1, start2, end2 int) bool {
	return start1 < end2 && end1 > start2
}

func insideWindow(windows []models.AvailabilityWindow, weekday, start, end int) bool {
	for _, w := range windows {
		if w.Weekday == weekday && start >= w.Start && end <= w.End {
			return true
		}
	}
	return false
}

// GenerateSlots derives fixed-granularity candidate slots inside each
// declared window across the date range and marks a slot unavailable when it
// overlaps any committed booking on the same date.
func GenerateSlots(windows []models.AvailabilityWindow, committed []models.Booking, startDate, endDate string, granularity int) ([]models.TimeSlot, error) {
	from, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	to, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("end date %s precedes start date %s", endDate, startDate)
	}

	// Index committed bookings per date for the overlap scan.
	byDate := make(map[string][]models.Booking, len(committed))
	for _, b := range committed {
		byDate[b.ServiceDate] = append(byDate[b.ServiceDate], b)
	}

	var slots []models.TimeSlot
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		dayStr := day.Format("2006-01-02")
		weekday := int(day.Weekday())

		for _, w := range windows {
			if w.Weekday != weekday {
				continue
			}
			for start := w.Start; start+granularity <= w.End; start += granularity {
				end := start + granularity
				slot := models.TimeSlot{
					Date:      dayStr,
					Start:     start,
					End:       end,
					Available: true,
				}
				for _, b := range byDate[dayStr] {
					if Overlaps(start, end, b.Start, b.End) {
						slot.Available = false
						break
					}
				}
				slots = append(slots, slot)
			}
		}
	}
	return slots, nil
}
