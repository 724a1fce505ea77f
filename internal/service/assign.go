package service

import (
	"fmt"
	"strconv"
	"strings"

	"hotel-ai-service/internal/models"
)

// SmartAssign picks the best room for a new guest from the available set.
//
// Scoring, all additive:
//   - +5 when the room's floor already has an occupied room (spreads load
//     onto floors that are staffed anyway)
//   - + the floor digit itself (mild bias toward higher floors)
//   - +5 when the guest prefers high floors and the floor digit is >= 3,
//     or prefers low floors and the digit is <= 2
//   - +3 when the guest wants to be near the elevator and the room number
//     ends in "01", or away from it and the number does not end in "01"
//
// The floor is the first character of the room number, parsed best-effort:
// a non-numeric first character contributes zero rather than failing.
// Ties go to the first room encountered in the available slice; callers
// rely on that ordering being preserved.
func SmartAssign(available, all []models.Room, prefs *models.AssignPreferences) (string, error) {
	if len(available) == 0 {
		return "", fmt.Errorf("no available rooms to choose from")
	}

	occupiedFloors := make(map[string]bool)
	for _, room := range all {
		if !room.IsAvailable && room.RoomNumber != "" {
			occupiedFloors[room.RoomNumber[:1]] = true
		}
	}

	bestID := ""
	bestScore := 0
	scored := false

	for _, room := range available {
		if room.RoomNumber == "" {
			continue
		}

		floorChar := room.RoomNumber[:1]
		floorDigit, err := strconv.Atoi(floorChar)
		if err != nil {
			floorDigit = 0
		}

		score := floorDigit
		if occupiedFloors[floorChar] {
			score += 5
		}

		if prefs != nil {
			switch prefs.PreferredFloor {
			case models.PrefHighFloor:
				if floorDigit >= 3 {
					score += 5
				}
			case models.PrefLowFloor:
				if floorDigit <= 2 {
					score += 5
				}
			}

			nearElevator := strings.HasSuffix(room.RoomNumber, "01")
			switch prefs.ElevatorProximity {
			case models.PrefNearElevator:
				if nearElevator {
					score += 3
				}
			case models.PrefAwayFromElevator:
				if !nearElevator {
					score += 3
				}
			}
		}

		// Strict greater-than keeps the first-encountered winner on ties.
		if !scored || score > bestScore {
			bestID = room.ID
			bestScore = score
			scored = true
		}
	}

	// All candidates lacked a room number; fall back to the first one.
	if !scored {
		return available[0].ID, nil
	}

	return bestID, nil
}
