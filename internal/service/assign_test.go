package service

import (
	"testing"

	"hotel-ai-service/internal/models"
)

func TestSmartAssignHigherFloorWins(t *testing.T) {
	available := []models.Room{
		{ID: "A", RoomNumber: "101"},
		{ID: "B", RoomNumber: "305"},
	}

	got, err := SmartAssign(available, nil, nil)
	if err != nil {
		t.Fatalf("SmartAssign: %v", err)
	}
	if got != "B" {
		t.Errorf("best room = %q, want B (floor 3 beats floor 1)", got)
	}
}

func TestSmartAssignLowFloorPreferenceFlipsWinner(t *testing.T) {
	available := []models.Room{
		{ID: "A", RoomNumber: "101"},
		{ID: "B", RoomNumber: "305"},
	}
	prefs := &models.AssignPreferences{PreferredFloor: models.PrefLowFloor}

	got, err := SmartAssign(available, nil, prefs)
	if err != nil {
		t.Fatalf("SmartAssign: %v", err)
	}
	if got != "A" {
		t.Errorf("best room = %q, want A (+5 low-floor bonus)", got)
	}
}

func TestSmartAssignOccupiedFloorBonus(t *testing.T) {
	available := []models.Room{
		{ID: "A", RoomNumber: "102"},
		{ID: "B", RoomNumber: "202"},
	}
	// Floor 1 already has an occupied room, so A gets +5 and beats B's
	// higher floor digit.
	all := []models.Room{
		{ID: "C", RoomNumber: "103", IsAvailable: false},
		{ID: "A", RoomNumber: "102", IsAvailable: true},
		{ID: "B", RoomNumber: "202", IsAvailable: true},
	}

	got, err := SmartAssign(available, all, nil)
	if err != nil {
		t.Fatalf("SmartAssign: %v", err)
	}
	if got != "A" {
		t.Errorf("best room = %q, want A (occupied-floor bonus)", got)
	}
}

func TestSmartAssignElevatorProximity(t *testing.T) {
	available := []models.Room{
		{ID: "A", RoomNumber: "201"},
		{ID: "B", RoomNumber: "203"},
	}

	near := &models.AssignPreferences{ElevatorProximity: models.PrefNearElevator}
	got, err := SmartAssign(available, nil, near)
	if err != nil {
		t.Fatalf("SmartAssign: %v", err)
	}
	if got != "A" {
		t.Errorf("near-elevator best room = %q, want A (ends in 01)", got)
	}

	away := &models.AssignPreferences{ElevatorProximity: models.PrefAwayFromElevator}
	got, err = SmartAssign(available, nil, away)
	if err != nil {
		t.Fatalf("SmartAssign: %v", err)
	}
	if got != "B" {
		t.Errorf("away-from-elevator best room = %q, want B", got)
	}
}

func TestSmartAssignTieBreakFirstEncountered(t *testing.T) {
	// Identical scores: the first room in slice order must win.
	available := []models.Room{
		{ID: "A", RoomNumber: "202"},
		{ID: "B", RoomNumber: "203"},
	}

	got, err := SmartAssign(available, nil, nil)
	if err != nil {
		t.Fatalf("SmartAssign: %v", err)
	}
	if got != "A" {
		t.Errorf("best room = %q, want A (first encountered wins ties)", got)
	}
}

func TestSmartAssignNonNumericFloorDegrades(t *testing.T) {
	// A non-numeric floor contributes zero, it must not fail the request.
	available := []models.Room{
		{ID: "A", RoomNumber: "X01"},
		{ID: "B", RoomNumber: "201"},
	}

	got, err := SmartAssign(available, nil, nil)
	if err != nil {
		t.Fatalf("SmartAssign: %v", err)
	}
	if got != "B" {
		t.Errorf("best room = %q, want B (numeric floor beats zero contribution)", got)
	}
}

func TestSmartAssignNoAvailableRooms(t *testing.T) {
	if _, err := SmartAssign(nil, nil, nil); err == nil {
		t.Fatal("expected error for empty available set")
	}
}

func TestSmartAssignFallbackWhenNothingScorable(t *testing.T) {
	// Rooms without numbers cannot be scored; fall back to the first one.
	available := []models.Room{
		{ID: "A", RoomNumber: ""},
		{ID: "B", RoomNumber: ""},
	}

	got, err := SmartAssign(available, nil, nil)
	if err != nil {
		t.Fatalf("SmartAssign: %v", err)
	}
	if got != "A" {
		t.Errorf("best room = %q, want first available A", got)
	}
}
