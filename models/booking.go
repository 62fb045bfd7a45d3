package models

import "time"

// Booking statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Service types offered by the yard.
const (
	ServiceDressage    = "dressage"
	ServicePrivate     = "private"
	ServiceSemiPrivate = "semi-private"
	ServiceGroup       = "group"
	ServiceAssessment  = "assessment"
)

// ServiceLabels maps service type values to their display names.
var ServiceLabels = map[string]string{
	ServiceDressage:    "Dressage Training",
	ServicePrivate:     "Private Riding Lesson",
	ServiceSemiPrivate: "Semi-Private Lesson",
	ServiceGroup:       "Group Lesson",
	ServiceAssessment:  "Assessment/Trial Lesson",
}

// DurationPrices maps lesson duration (minutes) to the currency-labelled
// price fixed at booking time.
var DurationPrices = map[string]string{
	"30": "$50",
	"45": "$75",
	"60": "$95",
}

// RiderLevels lists accepted experience levels in display order.
var RiderLevels = []string{"beginner", "novice", "intermediate", "advanced"}

// TimeSlots is the fixed set of bookable lesson times. The midday gap is
// reserved for yard work.
var TimeSlots = []string{
	"8:00 AM", "9:00 AM", "10:00 AM", "11:00 AM",
	"2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
}

// Booking represents a lesson booking record.
type Booking struct {
	ID              string    `bson:"id" json:"id"`                            // Human-legible reference (e.g., EQB-M2X4K9)
	ServiceType     string    `bson:"service_type" json:"serviceType"`         // One of the Service* constants
	Duration        string    `bson:"duration" json:"duration"`                // Lesson length in minutes: "30", "45" or "60"
	RiderLevel      string    `bson:"rider_level" json:"riderLevel"`           // One of RiderLevels
	FirstName       string    `bson:"first_name" json:"firstName"`
	LastName        string    `bson:"last_name" json:"lastName"`
	Email           string    `bson:"email" json:"email"`
	Phone           string    `bson:"phone" json:"phone"`
	HasOwnHorse     string    `bson:"has_own_horse" json:"hasOwnHorse"`        // "yes" or "no"
	HorseName       string    `bson:"horse_name" json:"horseName"`             // Required when HasOwnHorse is "yes"
	SpecialRequests string    `bson:"special_requests" json:"specialRequests"`
	Date            string    `bson:"date" json:"date"`                        // Lesson date in "YYYY-MM-DD" format
	Time            string    `bson:"time" json:"time"`                        // One of TimeSlots
	Status          string    `bson:"status" json:"status"`                    // One of the Status* constants
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`             // Set once at creation
	Price           string    `bson:"price" json:"price"`                      // Fixed at creation from DurationPrices
}

// FullName returns the client's display name.
func (b Booking) FullName() string {
	return b.FirstName + " " + b.LastName
}

// BookingFilter narrows an admin listing. Zero values (or "all") match
// everything; set predicates are ANDed.
type BookingFilter struct {
	Search      string `form:"search" json:"search"`       // case-insensitive substring over name/email/id
	Status      string `form:"status" json:"status"`       // "all" or one of the Status* constants
	ServiceType string `form:"service" json:"serviceType"` // "all" or one of the Service* constants
	Date        string `form:"date" json:"date"`           // exact "YYYY-MM-DD" match
}

// BookingStats aggregates the admin dashboard numbers.
type BookingStats struct {
	Total         int            `json:"total"`
	ByStatus      map[string]int `json:"byStatus"`
	ThisMonth     int            `json:"thisMonth"`
	Revenue       int            `json:"revenue"` // whole dollars over confirmed + completed
	ByServiceType map[string]int `json:"byServiceType"`
}

// ValidService reports whether s is a known service type.
func ValidService(s string) bool {
	_, ok := ServiceLabels[s]
	return ok
}

// ValidDuration reports whether d is an offered lesson duration.
func ValidDuration(d string) bool {
	_, ok := DurationPrices[d]
	return ok
}

// ValidRiderLevel reports whether l is a known experience level.
func ValidRiderLevel(l string) bool {
	for _, v := range RiderLevels {
		if v == l {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is a known booking status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ValidTimeSlot reports whether t is one of the bookable lesson times.
func ValidTimeSlot(t string) bool {
	for _, v := range TimeSlots {
		if v == t {
			return true
		}
	}
	return false
}
