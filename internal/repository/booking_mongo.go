package repository

import (
	"context"
	"time"

	"hotel-ai-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookingMongo provides read-only access to the booking subsystem's
// "bookings" collection.
type BookingMongo struct {
	col *mongo.Collection
}

// NewBookingRepository wires the bookings collection.
func NewBookingRepository(db *mongo.Database) *BookingMongo {
	return &BookingMongo{col: db.Collection("bookings")}
}

// FindActiveOverlapping returns the first Active booking for roomID whose
// [checkInDate, checkOutDate) interval overlaps [checkIn, checkOut).
// The $or covers the three overlap cases: the queried interval starts inside
// an existing booking, ends inside one, or fully contains one. Check-out is
// exclusive, so back-to-back stays do not conflict.
//
// Returns mongo.ErrNoDocuments when the room is free for the whole range.
func (r *BookingMongo) FindActiveOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time) (models.Booking, error) {
	filter := bson.M{
		"room":   roomRef(roomID),
		"status": models.BookingStatusActive,
		"$or": []bson.M{
			// queried check-in falls inside an existing stay
			{"checkInDate": bson.M{"$lte": checkIn}, "checkOutDate": bson.M{"$gt": checkIn}},
			// queried check-out falls inside an existing stay
			{"checkInDate": bson.M{"$lt": checkOut}, "checkOutDate": bson.M{"$gte": checkOut}},
			// queried range fully contains an existing stay
			{"checkInDate": bson.M{"$gte": checkIn}, "checkOutDate": bson.M{"$lte": checkOut}},
		},
	}

	var booking models.Booking
	err := r.col.FindOne(ctx, filter).Decode(&booking)
	return booking, err
}

// roomRef converts a room id back to the ObjectId the booking subsystem
// stores in its ref field. Room ids decode to hex strings on our side, but
// a string never equals an ObjectId under Mongo equality, so the filter
// must carry the original type. Non-hex ids pass through unchanged.
func roomRef(roomID string) interface{} {
	if oid, err := primitive.ObjectIDFromHex(roomID); err == nil {
		return oid
	}
	return roomID
}
