package service

import (
	"testing"
)

func TestSuggestPriceTiers(t *testing.T) {
	tests := []struct {
		name        string
		predicted   int
		active      int
		totalRooms  int
		wantPercent int
		wantReason  string
	}{
		{
			// demand factor ~1.32 (+10) and occupancy 0.7 (+10): score 20
			name:        "peak demand and pace",
			predicted:   300,
			active:      7,
			totalRooms:  10,
			wantPercent: 20,
			wantReason:  "Extremely high demand and booking pace. Capitalize on this peak.",
		},
		{
			// demand factor ~1.32 (+10), occupancy 0.5 (+5): score 15 still top tier
			name:        "score fifteen hits top tier",
			predicted:   300,
			active:      5,
			totalRooms:  10,
			wantPercent: 20,
			wantReason:  "Extremely high demand and booking pace. Capitalize on this peak.",
		},
		{
			// demand factor ~1.32 (+10) only: score 10
			name:        "strong demand alone",
			predicted:   300,
			active:      0,
			totalRooms:  10,
			wantPercent: 15,
			wantReason:  "Both predicted demand and current bookings are strong.",
		},
		{
			// demand factor ~1.14 (+5) only: score 5
			name:        "moderately high demand",
			predicted:   260,
			active:      0,
			totalRooms:  10,
			wantPercent: 10,
			wantReason:  "Predicted demand or booking pace is higher than average.",
		},
		{
			// demand factor ~0.66 (-5): score -5
			name:        "low demand promotion",
			predicted:   150,
			active:      0,
			totalRooms:  10,
			wantPercent: -10,
			wantReason:  "Demand is low. A promotion could attract more guests.",
		},
		{
			// demand factor 1.0, occupancy 0.2: nothing fires
			name:        "normal band",
			predicted:   228,
			active:      2,
			totalRooms:  10,
			wantPercent: 0,
			wantReason:  "Demand and booking pace are within the normal range.",
		},
		{
			// low demand (-5) offset by moderate pace (+5): score 0
			name:        "low demand offset by pace",
			predicted:   150,
			active:      5,
			totalRooms:  10,
			wantPercent: 0,
			wantReason:  "Demand and booking pace are within the normal range.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestPrice(tt.predicted, tt.active, tt.totalRooms)
			if got.SuggestionPercent != tt.wantPercent {
				t.Errorf("SuggestionPercent = %d, want %d", got.SuggestionPercent, tt.wantPercent)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.wantReason)
			}
		})
	}
}

func TestSuggestPriceZeroRoomsSentinel(t *testing.T) {
	got := SuggestPrice(300, 5, 0)
	if got.SuggestionPercent != 0 {
		t.Errorf("SuggestionPercent = %d, want 0 sentinel for zero inventory", got.SuggestionPercent)
	}
	if got.Reason == "" {
		t.Error("zero-inventory sentinel must carry a reason")
	}
}

func TestSuggestPriceDeterministic(t *testing.T) {
	first := SuggestPrice(260, 5, 12)
	for i := 0; i < 100; i++ {
		if got := SuggestPrice(260, 5, 12); got != first {
			t.Fatalf("run %d produced %+v, want %+v", i, got, first)
		}
	}
}

func TestClassifyDemandLevels(t *testing.T) {
	tests := []struct {
		name       string
		predicted  int
		totalRooms int
		want       string
	}{
		{"very high at factor 1.5", 342, 10, DemandVeryHigh}, // 342/228 = 1.5 exactly
		{"high below 1.5", 330, 10, DemandHigh},
		{"high at inclusive 1.1 boundary", 251, 10, DemandHigh}, // factor ~1.1009
		{"normal band", 228, 10, DemandNormal},
		{"normal at 0.9 boundary", 206, 10, DemandNormal}, // factor ~0.9035
		{"low", 150, 10, DemandLow},
		{"unknown without inventory", 300, 0, DemandUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDemand(tt.predicted, tt.totalRooms)
			if got.Level != tt.want {
				t.Errorf("Level = %q, want %q", got.Level, tt.want)
			}
			if got.Reason == "" {
				t.Error("Reason must not be empty")
			}
		})
	}
}

// The price suggester and demand classifier read the same baseline but keep
// independent threshold tables; verify they diverge around the 1.25/1.5
// boundaries rather than moving in lockstep.
func TestPricingAndDemandThresholdsDiverge(t *testing.T) {
	// factor ~1.30: top demand contribution for pricing, but not Very High.
	predicted, rooms := 297, 10

	price := SuggestPrice(predicted, 0, rooms)
	if price.SuggestionPercent != 15 {
		t.Errorf("SuggestionPercent = %d, want 15 (+10 demand score alone)", price.SuggestionPercent)
	}

	demand := ClassifyDemand(predicted, rooms)
	if demand.Level != DemandHigh {
		t.Errorf("Level = %q, want %q (1.30 is below the 1.5 Very High bar)", demand.Level, DemandHigh)
	}
}
