package weatherservice

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/zanzhit/camera_wall/internal/domain/models"
	"github.com/zanzhit/camera_wall/internal/lib/sl"
)

type WeatherService struct {
	log       *slog.Logger
	forecasts ForecastProvider
}

// ForecastProvider resolves coordinates to the current forecast period and a
// place name, in two dependent steps (grid-point lookup, then forecast fetch).
type ForecastProvider interface {
	CurrentPeriod(latitude, longitude float64) (models.ForecastPeriod, string, error)
}

func New(log *slog.Logger, forecasts ForecastProvider) *WeatherService {
	return &WeatherService{
		log:       log,
		forecasts: forecasts,
	}
}

// Label resolves coordinates to the short label the page shows, e.g.
// "☀️ 72°f in Rochester".
func (s *WeatherService) Label(latitude, longitude float64) (string, error) {
	const op = "service.weather.Label"

	log := s.log.With(
		slog.String("op", op),
	)

	period, place, err := s.forecasts.CurrentPeriod(latitude, longitude)
	if err != nil {
		log.Error("failed to resolve forecast", sl.Err(err))

		return "", fmt.Errorf("%s: %w", op, err)
	}

	emoji := classifyForecast(period.ShortForecast, !period.IsDaytime)
	tempF := int(math.Round(period.Temperature))

	return fmt.Sprintf("%s %d°f in %s", emoji, tempF, place), nil
}
