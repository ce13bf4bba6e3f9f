package meteo

// Observation is a single historical reading from a station, as served by
// api.meteo.lt. Timestamps are UTC strings; everything else is optional in
// practice and decoded as plain values.
type Observation struct {
	ObservationTimeUTC   string  `json:"observationTimeUtc" validate:"required"`
	AirTemperature       float64 `json:"airTemperature"`
	FeelsLikeTemperature float64 `json:"feelsLikeTemperature"`
	WindSpeed            float64 `json:"windSpeed"`
	WindGust             float64 `json:"windGust"`
	WindDirection        float64 `json:"windDirection"`
	CloudCover           float64 `json:"cloudCover"`
	SeaLevelPressure     float64 `json:"seaLevelPressure"`
	RelativeHumidity     float64 `json:"relativeHumidity"`
	Precipitation        float64 `json:"precipitation"`
	ConditionCode        string  `json:"conditionCode"`
}

// ForecastStamp is a single forecast point for a place.
type ForecastStamp struct {
	ForecastTimeUTC      string  `json:"forecastTimeUtc" validate:"required"`
	AirTemperature       float64 `json:"airTemperature"`
	FeelsLikeTemperature float64 `json:"feelsLikeTemperature"`
	WindSpeed            float64 `json:"windSpeed"`
	WindGust             float64 `json:"windGust"`
	WindDirection        float64 `json:"windDirection"`
	CloudCover           float64 `json:"cloudCover"`
	SeaLevelPressure     float64 `json:"seaLevelPressure"`
	RelativeHumidity     float64 `json:"relativeHumidity"`
	TotalPrecipitation   float64 `json:"totalPrecipitation"`
	ConditionCode        string  `json:"conditionCode"`
}

// observationsResponse is the body of the per-day observations endpoint.
type observationsResponse struct {
	Observations []Observation `json:"observations"`
}

// forecastResponse is the body of the long-term forecast endpoint.
type forecastResponse struct {
	ForecastTimestamps []ForecastStamp `json:"forecastTimestamps"`
}
