package types

// TravelLeg is the driving leg returned by the directions provider.
type TravelLeg struct {
	DurationText string `json:"durationText"`
	DistanceText string `json:"distanceText"`
	MapLink      string `json:"mapLink"`
}
