package admin

import (
	"context"
	"strconv"
	"strings"
	"time"

	"equibook/models"
)

// Statistics computes the dashboard aggregates over every stored booking.
// An empty store yields zeroes; nothing is ever seeded from a read path.
func (m *DefaultBookingManager) Statistics(ctx context.Context) (*models.BookingStats, error) {
	bookings, err := m.Repo.List(ctx, models.BookingFilter{})
	if err != nil {
		return nil, err
	}
	stats := ComputeStatistics(bookings, m.now())
	return &stats, nil
}

// ComputeStatistics aggregates totals, per-status and per-service counts,
// lessons falling in the current calendar month, and revenue over confirmed
// and completed bookings.
func ComputeStatistics(bookings []models.Booking, now time.Time) models.BookingStats {
	stats := models.BookingStats{
		Total: len(bookings),
		ByStatus: map[string]int{
			models.StatusPending:   0,
			models.StatusConfirmed: 0,
			models.StatusCompleted: 0,
			models.StatusCancelled: 0,
		},
		ByServiceType: map[string]int{},
	}

	for _, b := range bookings {
		stats.ByStatus[b.Status]++
		stats.ByServiceType[b.ServiceType]++

		if d, err := time.Parse("2006-01-02", b.Date); err == nil {
			if d.Month() == now.Month() && d.Year() == now.Year() {
				stats.ThisMonth++
			}
		}

		if b.Status == models.StatusConfirmed || b.Status == models.StatusCompleted {
			stats.Revenue += parsePrice(b.Price)
		}
	}
	return stats
}

// parsePrice strips the currency symbol and reads the whole-dollar amount.
// Unparseable prices count as zero.
func parsePrice(price string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(price), "$"))
	if err != nil {
		return 0
	}
	return n
}
