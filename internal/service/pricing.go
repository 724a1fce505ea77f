package service

import "hotel-ai-service/internal/models"

// AverageBookingsPerMonth is the historical monthly booking average from the
// forecast model's training data. It anchors "normal" demand for both the
// price suggester and the demand classifier.
const AverageBookingsPerMonth = 228

// Demand level labels.
const (
	DemandVeryHigh = "Very High"
	DemandHigh     = "High"
	DemandNormal   = "Normal"
	DemandLow      = "Low"
	DemandUnknown  = "Unknown"
)

// SuggestPrice maps predicted demand and current booking pace onto a signed
// percentage price adjustment with a canned reason.
//
// With no inventory the suggestion is a defined zero result, not an error:
// pricing is simply undefined without rooms.
func SuggestPrice(predictedBookings, activeBookings, totalRooms int) models.PriceSuggestion {
	if totalRooms == 0 {
		return models.PriceSuggestion{
			SuggestionPercent: 0,
			Reason:            "No room inventory available; pricing cannot be assessed.",
		}
	}

	demandFactor := float64(predictedBookings) / AverageBookingsPerMonth
	occupancyFactor := float64(activeBookings) / float64(totalRooms)

	score := 0
	switch {
	case demandFactor > 1.25:
		score += 10
	case demandFactor > 1.1:
		score += 5
	case demandFactor < 0.8:
		score -= 5
	}

	switch {
	case occupancyFactor > 0.6:
		score += 10
	case occupancyFactor > 0.4:
		score += 5
	}

	// Top-down, first match wins. The reason strings are part of the
	// observable contract; do not reword them.
	switch {
	case score >= 15:
		return models.PriceSuggestion{SuggestionPercent: 20, Reason: "Extremely high demand and booking pace. Capitalize on this peak."}
	case score >= 10:
		return models.PriceSuggestion{SuggestionPercent: 15, Reason: "Both predicted demand and current bookings are strong."}
	case score >= 5:
		return models.PriceSuggestion{SuggestionPercent: 10, Reason: "Predicted demand or booking pace is higher than average."}
	case score <= -5:
		return models.PriceSuggestion{SuggestionPercent: -10, Reason: "Demand is low. A promotion could attract more guests."}
	default:
		return models.PriceSuggestion{SuggestionPercent: 0, Reason: "Demand and booking pace are within the normal range."}
	}
}

// ClassifyDemand grades predicted demand against the same baseline, on its
// own threshold table. It is intentionally separate from SuggestPrice: the
// two encode different tolerance bands for the same signal, and merging
// them would change observable outputs.
func ClassifyDemand(predictedBookings, totalRooms int) models.DemandLevel {
	if totalRooms == 0 {
		return models.DemandLevel{
			Level:  DemandUnknown,
			Reason: "No room inventory available; demand cannot be assessed.",
		}
	}

	demandFactor := float64(predictedBookings) / AverageBookingsPerMonth

	switch {
	case demandFactor >= 1.5:
		return models.DemandLevel{Level: DemandVeryHigh, Reason: "Predicted bookings far exceed the historical average."}
	case demandFactor >= 1.1:
		return models.DemandLevel{Level: DemandHigh, Reason: "Predicted bookings are well above the historical average."}
	case demandFactor >= 0.9:
		return models.DemandLevel{Level: DemandNormal, Reason: "Predicted bookings are in line with the historical average."}
	default:
		return models.DemandLevel{Level: DemandLow, Reason: "Predicted bookings are below the historical average."}
	}
}
