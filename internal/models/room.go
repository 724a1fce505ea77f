package models

import "time"

// Room type enumeration. Values match the booking subsystem's schema.
const (
	RoomTypeSingle = "Single"
	RoomTypeDouble = "Double"
	RoomTypeSuite  = "Suite"
)

// Booking status enumeration.
const (
	BookingStatusActive    = "Active"
	BookingStatusCanceled  = "Canceled"
	BookingStatusCompleted = "Completed"
)

// Room mirrors the booking subsystem's room document. The core only ever
// reads rooms; all mutation happens in the booking service.
type Room struct {
	ID          string   `bson:"_id,omitempty" json:"_id"`
	RoomNumber  string   `bson:"roomNumber"    json:"roomNumber"`
	Type        string   `bson:"type"          json:"type"`
	Price       float64  `bson:"price"         json:"price"`
	IsAvailable bool     `bson:"isAvailable"   json:"isAvailable"`
	Description string   `bson:"description"   json:"description"`
	Amenities   []string `bson:"amenities"     json:"amenities"`
}

// Booking mirrors the booking subsystem's booking document.
type Booking struct {
	ID           string    `bson:"_id,omitempty" json:"_id"`
	RoomID       string    `bson:"room"          json:"room"`
	CheckInDate  time.Time `bson:"checkInDate"   json:"checkInDate"`
	CheckOutDate time.Time `bson:"checkOutDate"  json:"checkOutDate"`
	Status       string    `bson:"status"        json:"status"`
	BookingDate  time.Time `bson:"bookingDate"   json:"bookingDate"`
}

// Overlaps reports whether the booking's [checkIn, checkOut) interval
// intersects [checkIn, checkOut). Three cases are covered: the new interval
// starts inside the booking, ends inside it, or fully contains it. The end
// date is exclusive, so back-to-back stays do not conflict.
func (b Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckInDate.Before(checkOut) && b.CheckOutDate.After(checkIn)
}
