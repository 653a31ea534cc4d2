package closeddayRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonbook/database"
	"salonbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoClosedDayRepo implements ClosedDayRepository using MongoDB.
type MongoClosedDayRepo struct {
	coll *mongo.Collection
}

// NewMongoClosedDayRepo constructs a new instance of MongoClosedDayRepo.
func NewMongoClosedDayRepo() ClosedDayRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &MongoClosedDayRepo{
		coll: db.Collection("closed_days"),
	}
}

// Insert stores a new closure record.
func (repo *MongoClosedDayRepo) Insert(day *models.ClosedDay) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, day); err != nil {
		return fmt.Errorf("error inserting closed day: %w", err)
	}
	return nil
}

// GetByDate returns the closure for a date, or (nil, nil) when the date is open.
func (repo *MongoClosedDayRepo) GetByDate(date string) (*models.ClosedDay, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var day models.ClosedDay
	err := repo.coll.FindOne(ctx, bson.M{"date": date}).Decode(&day)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching closed day %s: %w", date, err)
	}
	return &day, nil
}

// ListAll retrieves every closure record.
func (repo *MongoClosedDayRepo) ListAll() ([]models.ClosedDay, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching closed days: %w", err)
	}
	defer cursor.Close(ctx)

	var days []models.ClosedDay
	if err := cursor.All(ctx, &days); err != nil {
		return nil, fmt.Errorf("error decoding closed days: %w", err)
	}
	return days, nil
}

// DeleteByDate removes the closure for a date if one exists.
func (repo *MongoClosedDayRepo) DeleteByDate(date string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"date": date})
	if err != nil {
		return false, fmt.Errorf("error deleting closed day %s: %w", date, err)
	}
	return res.DeletedCount > 0, nil
}
