package booking

import (
	"math"
	"time"
)

// ComputeCancellationFee returns the fee owed for cancelling a booking that
// starts timeToStart from now. A fee applies only inside the late window:
// more than zero but less than cutoff remaining before the scheduled start.
func ComputeCancellationFee(totalCost float64, timeToStart, cutoff time.Duration, rate float64) float64 {
	if timeToStart <= 0 || timeToStart >= cutoff {
		return 0
	}
	return round2(totalCost * rate)
}

// visitCost computes duration in hours and total cost from the booked
// window and the caregiver's hourly rate.
func visitCost(start, end int, hourlyRate float64) (durationHours, totalCost float64) {
	durationHours = float64(end-start) / 60.0
	totalCost = round2(durationHours * hourlyRate)
	return durationHours, totalCost
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
