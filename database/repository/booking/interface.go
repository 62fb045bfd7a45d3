package bookingRepo

import (
	"context"

	"equibook/database"
	"equibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the durable store for lesson booking records.
type BookingRepository interface {
	Insert(ctx context.Context, booking models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	// FindBySlot returns every record occupying the given (date, time) pair,
	// regardless of status.
	FindBySlot(ctx context.Context, date, time string) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("equibook")
	repo := &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
	repo.ensureIndexes()
	return repo
}
