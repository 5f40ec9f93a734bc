package places

// Category is a Places nearby-search type filter.
type Category string

const (
	CategoryAttractions Category = "tourist_attraction"
	CategoryEateries    Category = "restaurant"
	CategoryHotels      Category = "lodging"
)

// Keywords used for the two keyword-mode searches.
const (
	keywordRailwayStation       = "railway station"
	keywordInternationalAirport = "international airport"
	keywordAirport              = "airport"
)
