package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle collects every route handler the router wires up.
type HandlerBundle struct {
	// Booking wizard endpoints.
	StartSession   gin.HandlerFunc
	GetSession     gin.HandlerFunc
	SubmitService  gin.HandlerFunc
	SubmitSlot     gin.HandlerFunc
	SubmitContact  gin.HandlerFunc
	StepBack       gin.HandlerFunc
	ConfirmBooking gin.HandlerFunc
	CancelSession  gin.HandlerFunc
	DaySlots       gin.HandlerFunc
	GetCatalogue   gin.HandlerFunc

	// Admin endpoints.
	AdminLogin         gin.HandlerFunc
	AdminListBookings  gin.HandlerFunc
	AdminUpdateStatus  gin.HandlerFunc
	AdminDeleteBooking gin.HandlerFunc
	AdminStats         gin.HandlerFunc
	AdminExportCSV     gin.HandlerFunc
}
