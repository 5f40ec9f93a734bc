package weather

// Reading is the current conditions for a place.
type Reading struct {
	TemperatureCelsius float64
	Description        string
}
