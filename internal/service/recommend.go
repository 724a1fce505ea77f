package service

// RecommendRoomType suggests a room type for a party size and trip type.
// Families and parties of three or more get a Suite; couples and pairs a
// Double; everyone else a Single.
func RecommendRoomType(guests int, tripType string) (recommendation, reason string) {
	if tripType == "family" || guests >= 3 {
		return "Suite", "Best for families or larger groups."
	}
	if tripType == "couple" || guests == 2 {
		return "Double", "Ideal for couples."
	}
	return "Single", "A great choice for a solo traveler."
}
