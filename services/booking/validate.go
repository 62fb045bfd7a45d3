package booking

import (
	"regexp"
	"strings"
	"time"

	"equibook/models"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// validateServiceSelection checks the step-one fields.
func validateServiceSelection(sel models.ServiceSelection) *ValidationError {
	fields := map[string]string{}
	if !models.ValidService(sel.ServiceType) {
		fields["serviceType"] = "Please select a service"
	}
	if !models.ValidDuration(sel.Duration) {
		fields["duration"] = "Please select duration"
	}
	if !models.ValidRiderLevel(sel.RiderLevel) {
		fields["riderLevel"] = "Please select your level"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// validateSlotSelection checks the step-two date and time against the
// calendar rules. Slot occupancy is checked separately by the caller.
func validateSlotSelection(sel models.SlotSelection, now time.Time) *ValidationError {
	fields := map[string]string{}

	if sel.Date == "" {
		fields["date"] = "Please select a date"
	} else if reason, ok := dateSelectable(sel.Date, now); !ok {
		fields["date"] = reason
	}

	if sel.Time == "" {
		fields["time"] = "Please select a time"
	} else if !models.ValidTimeSlot(sel.Time) {
		fields["time"] = "Please select one of the offered times"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// dateSelectable reports whether date is bookable: well-formed, today or
// later, and not a Sunday (the yard's closed day).
func dateSelectable(date string, now time.Time) (string, bool) {
	d, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return "Invalid date", false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return "Date is in the past", false
	}
	if d.Weekday() == time.Sunday {
		return "We are closed on Sundays", false
	}
	return "", true
}

// validateContactDetails checks the step-three fields.
func validateContactDetails(det models.ContactDetails) *ValidationError {
	fields := map[string]string{}
	if strings.TrimSpace(det.FirstName) == "" {
		fields["firstName"] = "First name is required"
	}
	if strings.TrimSpace(det.LastName) == "" {
		fields["lastName"] = "Last name is required"
	}
	if strings.TrimSpace(det.Email) == "" {
		fields["email"] = "Email is required"
	} else if !emailPattern.MatchString(det.Email) {
		fields["email"] = "Invalid email format"
	}
	if strings.TrimSpace(det.Phone) == "" {
		fields["phone"] = "Phone number is required"
	}
	if det.HasOwnHorse == "yes" && strings.TrimSpace(det.HorseName) == "" {
		fields["horseName"] = "Please enter your horse's name"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
