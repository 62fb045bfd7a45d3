// Seed inserts a batch of plausible demo bookings so the admin dashboard
// has content to show. It only ever runs when invoked explicitly; nothing
// in the server seeds data on its own.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"equibook/config"
	"equibook/database"
	"equibook/models"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	count = flag.Int("count", 15, "number of demo bookings to insert")
	reset = flag.Bool("reset", false, "clear the bookings collection first")
)

func main() {
	flag.Parse()

	config.LoadConfig()
	database.InitDB()
	coll := database.MongoClient.Database("equibook").Collection("bookings")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if *reset {
		if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear bookings collection: %v", err)
		}
		log.Println("Cleared bookings collection")
	}

	services := []string{
		models.ServiceDressage, models.ServicePrivate,
		models.ServiceSemiPrivate, models.ServiceGroup, models.ServiceAssessment,
	}
	statuses := []string{
		models.StatusPending, models.StatusConfirmed,
		models.StatusCompleted, models.StatusCancelled,
	}
	durations := []string{"30", "45", "60"}
	names := []struct{ First, Last string }{
		{"Emma", "Wilson"}, {"James", "Taylor"}, {"Sophie", "Brown"},
		{"Oliver", "Davies"}, {"Charlotte", "Evans"}, {"Henry", "Roberts"},
		{"Amelia", "Walker"}, {"Thomas", "Wright"}, {"Grace", "Hughes"},
		{"William", "Green"},
	}
	horseNames := []string{"Thunder", "Willow", "Copper", "Storm"}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	today := time.Now()

	var docs []interface{}
	for i := 0; i < *count; i++ {
		name := names[rng.Intn(len(names))]
		duration := durations[rng.Intn(len(durations))]
		// Lesson dates land in a window around today, skipping Sundays.
		date := today.AddDate(0, 0, rng.Intn(30)-10)
		if date.Weekday() == time.Sunday {
			date = date.AddDate(0, 0, 1)
		}

		hasOwnHorse := "no"
		horseName := ""
		if rng.Intn(2) == 1 {
			hasOwnHorse = "yes"
			horseName = horseNames[rng.Intn(len(horseNames))]
		}

		docs = append(docs, models.Booking{
			ID:          "EQB-" + strings.ToUpper(strconv.FormatInt(today.UnixMilli()+int64(i), 36)),
			ServiceType: services[rng.Intn(len(services))],
			Duration:    duration,
			RiderLevel:  models.RiderLevels[rng.Intn(len(models.RiderLevels))],
			FirstName:   name.First,
			LastName:    name.Last,
			Email:       fmt.Sprintf("%s.%s@example.com", strings.ToLower(name.First), strings.ToLower(name.Last)),
			Phone:       fmt.Sprintf("04%08d", rng.Intn(100000000)),
			HasOwnHorse: hasOwnHorse,
			HorseName:   horseName,
			Date:        date.Format("2006-01-02"),
			Time:        models.TimeSlots[rng.Intn(len(models.TimeSlots))],
			Status:      statuses[rng.Intn(len(statuses))],
			CreatedAt:   today.Add(-time.Duration(rng.Intn(7*24)) * time.Hour),
			Price:       models.DurationPrices[duration],
		})
	}

	res, err := coll.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to insert demo bookings: %v", err)
	}
	log.Printf("Inserted %d demo bookings", len(res.InsertedIDs))
}
