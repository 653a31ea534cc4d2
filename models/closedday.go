package models

import "time"

// ClosedDay marks an entire date as unbookable. A date appears at most once
// among active closures. Closing a day does not touch bookings that already
// exist on it; it only prevents new ones.
type ClosedDay struct {
	ID        string    `bson:"id" json:"id"`
	Date      string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Reason    string    `bson:"reason" json:"reason"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
