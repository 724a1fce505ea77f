package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"hotel-ai-service/internal/models"
)

// ---- Repository layer contracts -------------------------------------------

// RoomRepository exposes the read-only room lookups the tools need.
type RoomRepository interface {
	FindByNumber(ctx context.Context, roomNumber string) (models.Room, error)
	ListRooms(ctx context.Context) ([]models.Room, error)
}

// BookingRepository exposes the Active-booking overlap query.
type BookingRepository interface {
	FindActiveOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time) (models.Booking, error)
}

// ---- Static hotel facts ----------------------------------------------------

// HotelFacts are the fixed property details fed into general context
// retrieval. They change with the property, not per request.
type HotelFacts struct {
	CheckInTime  string
	CheckOutTime string
	Amenities    []string
}

// DefaultHotelFacts returns the facts for the current property.
func DefaultHotelFacts() HotelFacts {
	return HotelFacts{
		CheckInTime:  "3:00 PM",
		CheckOutTime: "11:00 AM",
		Amenities:    []string{"Free WiFi", "Swimming Pool", "Fitness Center", "On-site Restaurant", "24/7 Front Desk"},
	}
}

// ---- Tool dispatcher -------------------------------------------------------

// Sentinel context strings. Downstream consumes these as ordinary context
// text, so they are plain sentences rather than errors.
const (
	contextDBDown  = "The hotel database is not connected, so live room information is unavailable right now."
	contextNoRooms = "There are currently no rooms on record for this hotel."
)

const dateLayout = "2006-01-02"
const longDateLayout = "January 2, 2006"

// ToolDispatcher turns a classified intent into a plain-text factual result.
// It never returns an error to the caller: every internal failure is caught
// and phrased as apologetic text, keeping the chat turn alive.
type ToolDispatcher struct {
	rooms    RoomRepository
	bookings BookingRepository
	facts    HotelFacts
}

// NewToolDispatcher wires the repositories and static facts.
func NewToolDispatcher(rooms RoomRepository, bookings BookingRepository, facts HotelFacts) *ToolDispatcher {
	return &ToolDispatcher{rooms: rooms, bookings: bookings, facts: facts}
}

// Dispatch invokes the tool matching the intent and returns its text result.
func (d *ToolDispatcher) Dispatch(ctx context.Context, intent models.Intent) string {
	switch intent.Intent {
	case models.IntentSpecificAvailability:
		return d.checkAvailability(ctx, intent)
	default:
		return d.hotelContext(ctx)
	}
}

// checkAvailability answers a specific-availability question. Missing or
// invalid inputs produce explanatory text, not errors.
func (d *ToolDispatcher) checkAvailability(ctx context.Context, intent models.Intent) string {
	p := intent.Parameters
	if p.RoomNumber == nil || *p.RoomNumber == "" {
		return "No specific room number was mentioned, so I could not check availability for a particular room."
	}
	roomNumber := *p.RoomNumber

	room, err := d.rooms.FindByNumber(ctx, roomNumber)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Sprintf("Room %s was not found in our records.", roomNumber)
	}
	if err != nil {
		log.Printf("[Tool Dispatcher] room lookup failed for %s: %v", roomNumber, err)
		return "Sorry, I ran into a problem reading the room records. Please try again in a moment."
	}

	// Without a date range the answer comes straight from the live flag.
	if p.CheckInDate == nil && p.CheckOutDate == nil {
		if room.IsAvailable {
			return fmt.Sprintf("Room %s (%s, $%.0f per night) is currently available.", room.RoomNumber, room.Type, room.Price)
		}
		return fmt.Sprintf("Room %s (%s) is currently occupied.", room.RoomNumber, room.Type)
	}
	// Half a date range is likely a dropped parameter, so ask rather than
	// guess what the guest meant.
	if p.CheckInDate == nil || p.CheckOutDate == nil {
		return "I need both a check-in and a check-out date to check availability for specific dates."
	}

	checkIn, errIn := time.Parse(dateLayout, *p.CheckInDate)
	checkOut, errOut := time.Parse(dateLayout, *p.CheckOutDate)
	if errIn != nil || errOut != nil || !checkIn.Before(checkOut) {
		return "Those dates don't look right: the check-in date must come before the check-out date."
	}

	booking, err := d.bookings.FindActiveOverlapping(ctx, room.ID, checkIn, checkOut)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Sprintf("Room %s is available from %s to %s.",
			room.RoomNumber, checkIn.Format(longDateLayout), checkOut.Format(longDateLayout))
	}
	if err != nil {
		log.Printf("[Tool Dispatcher] booking lookup failed for %s: %v", roomNumber, err)
		return "Sorry, I ran into a problem checking the booking calendar. Please try again in a moment."
	}

	return fmt.Sprintf("Room %s is already booked from %s to %s.",
		room.RoomNumber, booking.CheckInDate.Format(longDateLayout), booking.CheckOutDate.Format(longDateLayout))
}

// hotelContext builds the general context string: static facts, a live
// per-room listing and derived price aggregates.
func (d *ToolDispatcher) hotelContext(ctx context.Context) string {
	rooms, err := d.rooms.ListRooms(ctx)
	if err != nil {
		log.Printf("[Tool Dispatcher] room listing failed: %v", err)
		return contextDBDown
	}
	if len(rooms) == 0 {
		return contextNoRooms
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Check-in time: %s. Check-out time: %s.\n", d.facts.CheckInTime, d.facts.CheckOutTime)
	fmt.Fprintf(&b, "Hotel amenities: %s.\n", strings.Join(d.facts.Amenities, ", "))
	b.WriteString("Rooms:\n")

	minPrice, maxPrice := rooms[0].Price, rooms[0].Price
	for _, room := range rooms {
		status := "available"
		if !room.IsAvailable {
			status = "occupied"
		}
		fmt.Fprintf(&b, "- Room %s: %s, $%.0f per night, currently %s\n", room.RoomNumber, room.Type, room.Price, status)

		if room.Price < minPrice {
			minPrice = room.Price
		}
		if room.Price > maxPrice {
			maxPrice = room.Price
		}
	}
	fmt.Fprintf(&b, "Nightly prices range from $%.0f to $%.0f.", minPrice, maxPrice)

	return b.String()
}
