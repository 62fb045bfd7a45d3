package bookingRepo

import (
	"context"

	"equibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List returns booking records matching the filter, newest first. All set
// predicates are ANDed; empty or "all" predicates match everything.
func (r *mongoBookingRepo) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	query := bson.M{}

	if filter.Status != "" && filter.Status != "all" {
		query["status"] = filter.Status
	}
	if filter.ServiceType != "" && filter.ServiceType != "all" {
		query["service_type"] = filter.ServiceType
	}
	if filter.Date != "" {
		query["date"] = filter.Date
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexQuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"first_name": pattern},
			bson.M{"last_name": pattern},
			bson.M{"email": pattern},
			bson.M{"id": pattern},
			// Full-name queries like "Emma Wilson" span both name fields.
			bson.M{"$expr": bson.M{"$regexMatch": bson.M{
				"input":   bson.M{"$concat": bson.A{"$first_name", " ", "$last_name"}},
				"regex":   pattern.Pattern,
				"options": "i",
			}}},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindBySlot returns every record occupying the given (date, time) pair.
func (r *mongoBookingRepo) FindBySlot(ctx context.Context, date, timeLabel string) ([]models.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"date": date, "time": timeLabel})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// regexQuoteMeta escapes regex metacharacters so search text is treated as
// a literal substring.
func regexQuoteMeta(s string) string {
	const special = `\.+*?()|[]{}^$`
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(special); j++ {
			if s[i] == special[j] {
				out = append(out, '\\')
				break
			}
		}
		out = append(out, s[i])
	}
	return string(out)
}
