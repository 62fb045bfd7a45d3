package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	bookingRepo "equibook/database/repository/booking"
	"equibook/models"
	"equibook/services/admin"
	"equibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the booking manager to the authenticated operator.
type AdminHandler struct {
	Manager admin.BookingManager
	Auth    *admin.Authenticator
}

func NewAdminHandler(manager admin.BookingManager, auth *admin.Authenticator) *AdminHandler {
	return &AdminHandler{Manager: manager, Auth: auth}
}

// LoginHandler verifies the operator credential and returns a session token.
func (h *AdminHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	token, err := h.Auth.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, admin.ErrBadCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Login failed", "Invalid email or password. Please try again.")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ListBookingsHandler returns bookings matching the query filter.
func (h *AdminHandler) ListBookingsHandler(c *gin.Context) {
	var filter models.BookingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}

	bookings, err := h.Manager.List(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings", err.Error())
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// UpdateStatusHandler applies a status transition to one booking.
func (h *AdminHandler) UpdateStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	booking, err := h.Manager.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		var tErr *admin.InvalidTransitionError
		switch {
		case errors.As(err, &tErr):
			utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid transition", tErr.Error())
		case errors.Is(err, bookingRepo.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking not found", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update status", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// DeleteBookingHandler removes a booking permanently. Deletion is
// irreversible, so the caller must pass confirm=true explicitly.
func (h *AdminHandler) DeleteBookingHandler(c *gin.Context) {
	if c.Query("confirm") != "true" {
		utils.JSONError(c, http.StatusBadRequest, "Confirmation required",
			"pass confirm=true to permanently delete this booking")
		return
	}

	if err := h.Manager.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// StatsHandler returns the dashboard aggregates.
func (h *AdminHandler) StatsHandler(c *gin.Context) {
	stats, err := h.Manager.Statistics(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute statistics", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// ExportCSVHandler streams the filtered booking list as a CSV attachment.
func (h *AdminHandler) ExportCSVHandler(c *gin.Context) {
	var filter models.BookingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=bookings-%s.csv",
		time.Now().Format("2006-01-02")))
	if _, err := h.Manager.ExportCSV(c.Request.Context(), filter, c.Writer); err != nil {
		// Headers are already out; log and abort the stream.
		utils.GetLogger().Error("ExportCSVHandler: export failed", zap.Error(err))
		c.Abort()
	}
}
