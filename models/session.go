package models

import "time"

// Wizard steps, in order. Transitions are strictly linear; Back moves one
// step without discarding entered data.
const (
	StepService   = "service"
	StepDateTime  = "datetime"
	StepContact   = "contact"
	StepReview    = "review"
	StepSubmitted = "submitted"
)

// StepOrder is the linear progression of the booking wizard.
var StepOrder = []string{StepService, StepDateTime, StepContact, StepReview, StepSubmitted}

// ServiceSelection holds the step-one choices.
type ServiceSelection struct {
	ServiceType string `json:"serviceType"`
	Duration    string `json:"duration"`
	RiderLevel  string `json:"riderLevel"`
}

// SlotSelection holds the step-two choices.
type SlotSelection struct {
	Date string `json:"date"` // "YYYY-MM-DD"
	Time string `json:"time"` // one of TimeSlots
}

// ContactDetails holds the step-three client details.
type ContactDetails struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	HasOwnHorse     string `json:"hasOwnHorse"`
	HorseName       string `json:"horseName"`
	SpecialRequests string `json:"specialRequests"`
}

// BookingSession is the server-held state of one wizard run.
type BookingSession struct {
	ID            string           `json:"id"`
	Step          string           `json:"step"`
	Service       ServiceSelection `json:"service"`
	Slot          SlotSelection    `json:"slot"`
	Contact       ContactDetails   `json:"contact"`
	BookingID     string           `json:"bookingId,omitempty"` // set once submitted
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// StepIndex returns the position of step in StepOrder, or -1.
func StepIndex(step string) int {
	for i, s := range StepOrder {
		if s == step {
			return i
		}
	}
	return -1
}
