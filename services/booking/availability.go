package booking

import (
	"context"

	"equibook/models"
)

// SlotAvailability pairs a lesson time with its occupancy for one date.
type SlotAvailability struct {
	Time  string `json:"time"`
	Taken bool   `json:"taken"`
}

// IsSlotTaken reports whether some booking occupies the (date, time) pair
// with a status other than cancelled. Pure read over the current snapshot;
// it does not lock the slot.
func (s *DefaultWizardService) IsSlotTaken(ctx context.Context, date, timeLabel string) (bool, error) {
	existing, err := s.Repo.FindBySlot(ctx, date, timeLabel)
	if err != nil {
		return false, err
	}
	for _, b := range existing {
		if b.Status != models.StatusCancelled {
			return true, nil
		}
	}
	return false, nil
}

// DaySlots returns the fixed slot set for a date with taken flags, so a
// client can render the time picker. The date must itself be selectable.
func (s *DefaultWizardService) DaySlots(ctx context.Context, date string) ([]SlotAvailability, error) {
	if reason, ok := dateSelectable(date, s.now()); !ok {
		return nil, &ValidationError{Fields: map[string]string{"date": reason}}
	}

	dayBookings, err := s.Repo.List(ctx, models.BookingFilter{Date: date})
	if err != nil {
		return nil, err
	}
	occupied := make(map[string]bool, len(dayBookings))
	for _, b := range dayBookings {
		if b.Status != models.StatusCancelled {
			occupied[b.Time] = true
		}
	}

	slots := make([]SlotAvailability, 0, len(models.TimeSlots))
	for _, t := range models.TimeSlots {
		slots = append(slots, SlotAvailability{Time: t, Taken: occupied[t]})
	}
	return slots, nil
}
