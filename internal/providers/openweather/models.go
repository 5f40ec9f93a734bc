package openweather

// CurrentWeatherAPIResponse mirrors the fields of the OpenWeatherMap
// current-weather payload that the service consumes.
type CurrentWeatherAPIResponse struct {
	Weather []Condition `json:"weather"`
	Main    MainMetrics `json:"main"`
	Name    string      `json:"name"`
	Cod     int         `json:"cod"`
}

// Condition is one entry of the weather[] array.
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainMetrics carries the temperature block, in the requested unit system.
type MainMetrics struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}
