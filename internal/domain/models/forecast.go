package models

// ForecastPeriod is the current entry of the hourly forecast series.
type ForecastPeriod struct {
	Temperature   float64 `json:"temperature"`
	IsDaytime     bool    `json:"isDaytime"`
	ShortForecast string  `json:"shortForecast"`
}
