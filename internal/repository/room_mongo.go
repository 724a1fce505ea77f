package repository

import (
	"context"

	"hotel-ai-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RoomMongo provides read-only access to the booking subsystem's "rooms"
// collection. The core never writes rooms.
//
// Expected schema (owned by the booking subsystem):
//
//	rooms
//	  { _id, roomNumber, type, price, isAvailable, description, amenities: [] }
type RoomMongo struct {
	col *mongo.Collection
}

// NewRoomRepository wires the rooms collection.
func NewRoomRepository(db *mongo.Database) *RoomMongo {
	return &RoomMongo{col: db.Collection("rooms")}
}

// FindByNumber fetches a room by its display number (e.g. "101").
// Returns mongo.ErrNoDocuments when no such room exists.
func (r *RoomMongo) FindByNumber(ctx context.Context, roomNumber string) (models.Room, error) {
	var room models.Room
	err := r.col.FindOne(ctx, bson.M{"roomNumber": roomNumber}).Decode(&room)
	return room, err
}

// ListRooms returns every room projected down to the fields the context
// builder needs. Sorted by room number so listings are stable.
func (r *RoomMongo) ListRooms(ctx context.Context) ([]models.Room, error) {
	opts := options.Find().
		SetProjection(bson.M{
			"roomNumber":  1,
			"type":        1,
			"price":       1,
			"isAvailable": 1,
		}).
		SetSort(bson.M{"roomNumber": 1})

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rooms []models.Room
	if err := cur.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}
