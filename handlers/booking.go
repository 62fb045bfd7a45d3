package handlers

import (
	"errors"
	"net/http"

	bookingRepo "equibook/database/repository/booking"
	"equibook/models"
	"equibook/services/booking"
	"equibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the wizard flow over HTTP.
type BookingHandler struct {
	Service booking.WizardService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.WizardService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// respondWizardError maps service errors onto the HTTP surface. Validation
// failures carry their field map; everything else gets the standard
// envelope.
func (h *BookingHandler) respondWizardError(c *gin.Context, err error) {
	if verr, ok := booking.AsValidationError(err); ok {
		utils.JSONFieldErrors(c, "Validation failed", verr.Fields)
		return
	}
	var stepErr *booking.WrongStepError
	if errors.As(err, &stepErr) {
		utils.JSONError(c, http.StatusConflict, "Out of order", stepErr.Error())
		return
	}
	if errors.Is(err, booking.ErrSessionNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Session not found", "booking session not found or expired")
		return
	}
	if errors.Is(err, bookingRepo.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Booking not found", err.Error())
		return
	}
	h.Logger.Error("Wizard request failed",
		zap.String("path", c.FullPath()), zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
}

// StartSession opens a new wizard session.
func (h *BookingHandler) StartSession(c *gin.Context) {
	session, err := h.Service.StartSession(c.Request.Context())
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// GetSession returns the current state of a wizard session.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SubmitService records step one (service, duration, rider level).
func (h *BookingHandler) SubmitService(c *gin.Context) {
	var input models.ServiceSelection
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	session, err := h.Service.SubmitService(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SubmitSlot records step two (date and time).
func (h *BookingHandler) SubmitSlot(c *gin.Context) {
	var input models.SlotSelection
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	session, err := h.Service.SubmitSlot(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SubmitContact records step three (client details).
func (h *BookingHandler) SubmitContact(c *gin.Context) {
	var input models.ContactDetails
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	session, err := h.Service.SubmitContact(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// StepBack moves the wizard one step backward, keeping entered data.
func (h *BookingHandler) StepBack(c *gin.Context) {
	session, err := h.Service.StepBack(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ConfirmBooking performs the final submission and returns the committed
// record. Mail dispatch failures never surface here.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	record, err := h.Service.Confirm(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": record})
}

// CancelSession abandons a wizard run.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

// DaySlots lists the time slots for one date with taken flags.
func (h *BookingHandler) DaySlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "date query parameter is required")
		return
	}
	slots, err := h.Service.DaySlots(c.Request.Context(), date)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// GetCatalogue returns the option lists the wizard UI renders: services,
// durations with prices, rider levels and the fixed slot times.
func (h *BookingHandler) GetCatalogue(c *gin.Context) {
	type durationOption struct {
		Value string `json:"value"`
		Price string `json:"price"`
	}
	durations := make([]durationOption, 0, len(models.DurationPrices))
	for _, d := range []string{"30", "45", "60"} {
		durations = append(durations, durationOption{Value: d, Price: models.DurationPrices[d]})
	}
	c.JSON(http.StatusOK, gin.H{
		"services":    models.ServiceLabels,
		"durations":   durations,
		"riderLevels": models.RiderLevels,
		"timeSlots":   models.TimeSlots,
	})
}
