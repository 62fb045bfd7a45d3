package notification

import (
	"fmt"
	"strings"
	"time"

	"equibook/models"
)

// Message is one rendered email ready for a Mailer.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// displayDate renders a stored "YYYY-MM-DD" lesson date for email copy.
func displayDate(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return d.Format("Monday, 2 January 2006")
}

func serviceName(serviceType string) string {
	if label, ok := models.ServiceLabels[serviceType]; ok {
		return label
	}
	return serviceType
}

func horseLine(b models.Booking) string {
	if b.HasOwnHorse == "yes" {
		return "Yes - " + b.HorseName
	}
	return "No - needs a school horse"
}

func detailRows(b models.Booking) string {
	var sb strings.Builder
	row := func(label, value string) {
		fmt.Fprintf(&sb, `<p><strong>%s:</strong> %s</p>`+"\n", label, value)
	}
	row("Booking Reference", b.ID)
	row("Service", serviceName(b.ServiceType))
	row("Date", displayDate(b.Date))
	row("Time", b.Time)
	row("Duration", b.Duration+" minutes")
	return sb.String()
}

// RenderBookingCreated produces the two booking-created mails: the operator
// summary and the client confirmation. Both render from the same record.
func RenderBookingCreated(b models.Booking, operatorEmail string) []Message {
	operator := Message{
		To:      operatorEmail,
		Subject: fmt.Sprintf("New Booking: %s - %s", b.FullName(), displayDate(b.Date)),
	}
	var sb strings.Builder
	sb.WriteString("<h1>New Booking Received</h1>\n")
	fmt.Fprintf(&sb, `<p><strong>Client:</strong> %s</p>`+"\n", b.FullName())
	fmt.Fprintf(&sb, `<p><strong>Email:</strong> %s</p>`+"\n", b.Email)
	fmt.Fprintf(&sb, `<p><strong>Phone:</strong> %s</p>`+"\n", b.Phone)
	sb.WriteString(detailRows(b))
	fmt.Fprintf(&sb, `<p><strong>Experience Level:</strong> %s</p>`+"\n", b.RiderLevel)
	fmt.Fprintf(&sb, `<p><strong>Own Horse:</strong> %s</p>`+"\n", horseLine(b))
	if b.SpecialRequests != "" {
		fmt.Fprintf(&sb, `<p><strong>Special Requests:</strong> %s</p>`+"\n", b.SpecialRequests)
	}
	sb.WriteString("<p>Log in to the admin dashboard to confirm this booking.</p>\n")
	operator.HTML = sb.String()

	client := Message{
		To:      b.Email,
		Subject: fmt.Sprintf("Booking Confirmation - %s on %s", serviceName(b.ServiceType), displayDate(b.Date)),
	}
	sb.Reset()
	sb.WriteString("<h1>Ashgrove Equestrian</h1>\n")
	fmt.Fprintf(&sb, "<p>Dear %s,</p>\n", b.FirstName)
	sb.WriteString("<p>Thank you for booking with Ashgrove Equestrian! We're excited to welcome you.</p>\n")
	sb.WriteString("<p><strong>Status: Pending Confirmation</strong> &mdash; we'll contact you shortly to confirm your booking.</p>\n")
	sb.WriteString(detailRows(b))
	sb.WriteString("<h3>What to Bring</h3>\n")
	sb.WriteString("<ul><li>Comfortable riding clothes</li><li>Closed-toe shoes with a small heel</li><li>An approved riding helmet (we have spares if needed)</li><li>Water bottle</li></ul>\n")
	sb.WriteString("<p>Please give at least 24 hours notice for cancellations.</p>\n")
	client.HTML = sb.String()

	return []Message{operator, client}
}

// RenderStatusChanged produces the client mail for a status transition.
// Subject line and body copy differ per target status.
func RenderStatusChanged(b models.Booking, newStatus string) (Message, error) {
	var subject, statusCopy, extra string
	switch newStatus {
	case models.StatusConfirmed:
		subject = fmt.Sprintf("Booking Confirmed - %s on %s", serviceName(b.ServiceType), displayDate(b.Date))
		statusCopy = "Great news! Your booking has been confirmed."
		extra = "<p>Please arrive 10-15 minutes before your scheduled time to get settled.</p>\n"
	case models.StatusCompleted:
		subject = fmt.Sprintf("Thank You - %s Completed", serviceName(b.ServiceType))
		statusCopy = "Thank you for visiting Ashgrove Equestrian! We hope you enjoyed your session."
		extra = "<p>If you enjoyed your session, please consider leaving us a review.</p>\n"
	case models.StatusCancelled:
		subject = fmt.Sprintf("Booking Cancelled - %s on %s", serviceName(b.ServiceType), displayDate(b.Date))
		statusCopy = "Unfortunately, your booking has been cancelled. Please contact us if you have any questions or would like to reschedule."
		extra = "<p>You can book a new session anytime on our website or give us a call.</p>\n"
	default:
		return Message{}, fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}

	var sb strings.Builder
	sb.WriteString("<h1>Ashgrove Equestrian - Booking Update</h1>\n")
	fmt.Fprintf(&sb, "<p>Dear %s,</p>\n", b.FirstName)
	fmt.Fprintf(&sb, "<p><strong>Booking %s%s</strong></p>\n", strings.ToUpper(newStatus[:1]), newStatus[1:])
	fmt.Fprintf(&sb, "<p>%s</p>\n", statusCopy)
	sb.WriteString(detailRows(b))
	sb.WriteString(extra)

	return Message{To: b.Email, Subject: subject, HTML: sb.String()}, nil
}
