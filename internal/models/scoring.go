package models

// Preference literals accepted by the smart-assign scorer. These are the
// exact strings the booking front-end sends.
const (
	PrefHighFloor        = "High Floor"
	PrefLowFloor         = "Low Floor"
	PrefNearElevator     = "Near Elevator"
	PrefAwayFromElevator = "Away from Elevator"
)

// AssignPreferences is the optional guest preference record for room
// assignment. Empty fields mean "no preference".
type AssignPreferences struct {
	PreferredFloor    string `json:"preferred_floor,omitempty"`
	ElevatorProximity string `json:"elevator_proximity,omitempty"`
}

// SmartAssignRequest is the payload for POST /smart-assign.
type SmartAssignRequest struct {
	AvailableRooms  []Room             `json:"available_rooms"`
	AllRooms        []Room             `json:"all_rooms"`
	UserPreferences *AssignPreferences `json:"user_preferences,omitempty"`
}

// PredictRequest is the payload for POST /predict.
type PredictRequest struct {
	MonthToPredict int `json:"month_to_predict"`
}

// RecommendRequest is the payload for POST /recommend.
type RecommendRequest struct {
	Guests   int    `json:"guests"`
	TripType string `json:"trip_type"`
}

// PriceSuggestionRequest is the payload for POST /dynamic-price-suggestion.
type PriceSuggestionRequest struct {
	PredictedBookings *int `json:"predicted_bookings_next_month"`
	ActiveBookings    *int `json:"active_bookings_next_month"`
	TotalRooms        *int `json:"total_rooms"`
}

// PriceSuggestion is the price suggester's result: a signed percentage
// adjustment and a canned reason string.
type PriceSuggestion struct {
	SuggestionPercent int    `json:"suggestion_percent"`
	Reason            string `json:"reason"`
}

// DashboardStatsRequest is the payload for POST /dashboard-stats.
type DashboardStatsRequest struct {
	MonthToPredict int `json:"month_to_predict"`
	ActiveBookings int `json:"active_bookings_next_month"`
	TotalRooms     int `json:"total_rooms"`
}

// DashboardStats composes the oracle's forecast with the price suggestion.
type DashboardStats struct {
	PredictedBookings int             `json:"predicted_bookings"`
	PriceSuggestion   PriceSuggestion `json:"price_suggestion"`
}

// DemandLevelRequest is the payload for POST /demand-level.
type DemandLevelRequest struct {
	MonthToPredict int `json:"month_to_predict"`
	TotalRooms     int `json:"total_rooms"`
}

// DemandLevel is the demand classifier's result.
type DemandLevel struct {
	Level  string `json:"level"`
	Reason string `json:"reason"`
}
