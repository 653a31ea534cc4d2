// Seeds the local database with demo bookings and a closed day for manual
// testing. Run against a disposable database only: it clears both collections.
package main

import (
	"context"
	"log"
	"time"

	"salonbook/config"
	"salonbook/database"
	"salonbook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	config.LoadConfig()
	database.InitDB()

	db := database.MongoClient.Database(database.DatabaseName)
	apptColl := db.Collection("appointments")
	closedColl := db.Collection("closed_days")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := apptColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear appointments collection: %v", err)
	}
	if _, err := closedColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear closed days collection: %v", err)
	}

	names := []string{"Ayşe Demir", "Fatima Hassan", "Leyla Kaya", "Mariam Said"}
	phones := []string{"+90 532 000 0001", "+90 532 000 0002", "+90 532 000 0003", "+90 532 000 0004"}
	services := []string{models.ServiceHaircut, models.ServiceColoring, models.ServiceBridal, models.ServiceMakeup}

	// Two bookings per day at 09:00 and 14:00; far enough apart that neither
	// falls in the other's buffer window.
	times := []string{"09:00", "14:00"}
	today := time.Now()

	var docs []interface{}
	idx := 0
	for day := 0; day < 5; day++ {
		date := today.AddDate(0, 0, day).Format("2006-01-02")
		for _, slot := range times {
			status := models.StatusPending
			source := models.SourceWebsite
			if idx%2 == 1 {
				status = models.StatusConfirmed
				source = models.SourceWhatsApp
			}
			docs = append(docs, models.Appointment{
				ID:        uuid.New().String(),
				Name:      names[idx%len(names)],
				Phone:     phones[idx%len(phones)],
				Service:   services[idx%len(services)],
				Date:      date,
				Time:      slot,
				Status:    status,
				Language:  models.LanguageTurkish,
				Source:    source,
				CreatedAt: time.Now(),
			})
			idx++
		}
	}

	if _, err := apptColl.InsertMany(ctx, docs); err != nil {
		log.Fatalf("Failed to seed appointments: %v", err)
	}

	closed := models.ClosedDay{
		ID:        uuid.New().String(),
		Date:      today.AddDate(0, 0, 6).Format("2006-01-02"),
		Reason:    "Holiday",
		CreatedAt: time.Now(),
	}
	if _, err := closedColl.InsertOne(ctx, closed); err != nil {
		log.Fatalf("Failed to seed closed day: %v", err)
	}

	log.Printf("Seeded %d appointments and 1 closed day (%s)", len(docs), closed.Date)
}
