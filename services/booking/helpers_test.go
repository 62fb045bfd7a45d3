package booking

import (
	"context"
	"strings"
	"sync"
	"time"

	bookingRepo "equibook/database/repository/booking"
	"equibook/models"
)

// memBookingRepo is an in-memory BookingRepository for tests.
type memBookingRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func (r *memBookingRepo) Insert(ctx context.Context, b models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, b)
	return nil
}

func (r *memBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (r *memBookingRepo) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if filter.Status != "" && filter.Status != "all" && b.Status != filter.Status {
			continue
		}
		if filter.ServiceType != "" && filter.ServiceType != "all" && b.ServiceType != filter.ServiceType {
			continue
		}
		if filter.Date != "" && b.Date != filter.Date {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(b.FullName()), needle) &&
				!strings.Contains(strings.ToLower(b.Email), needle) &&
				!strings.Contains(strings.ToLower(b.ID), needle) {
				continue
			}
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *memBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].Status = status
			return nil
		}
	}
	return bookingRepo.ErrNotFound
}

func (r *memBookingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return bookingRepo.ErrNotFound
}

func (r *memBookingRepo) FindBySlot(ctx context.Context, date, timeLabel string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Date == date && b.Time == timeLabel {
			out = append(out, b)
		}
	}
	return out, nil
}

// memSessionStore keeps wizard sessions in a map.
type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.BookingSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: map[string]models.BookingSession{}}
}

func (s *memSessionStore) Save(ctx context.Context, session models.BookingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *memSessionStore) Get(ctx context.Context, id string) (*models.BookingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (s *memSessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// recordingNotifier captures dispatches instead of enqueuing them.
type recordingNotifier struct {
	created []models.Booking
	changed []string // "<id>:<newStatus>"
	fail    error
}

func (n *recordingNotifier) DispatchBookingCreated(ctx context.Context, b models.Booking) error {
	if n.fail != nil {
		return n.fail
	}
	n.created = append(n.created, b)
	return nil
}

func (n *recordingNotifier) DispatchStatusChanged(ctx context.Context, b models.Booking, newStatus string) error {
	if n.fail != nil {
		return n.fail
	}
	n.changed = append(n.changed, b.ID+":"+newStatus)
	return nil
}

// fixedClock pins the wizard to a known Monday for deterministic date
// validation.
var fixedNow = time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC) // Monday

func newTestWizard() (*DefaultWizardService, *memBookingRepo, *recordingNotifier) {
	repo := &memBookingRepo{}
	notifier := &recordingNotifier{}
	svc := &DefaultWizardService{
		Repo:     repo,
		Sessions: newMemSessionStore(),
		Notifier: notifier,
		Clock:    func() time.Time { return fixedNow },
	}
	return svc, repo, notifier
}
