// Package nws resolves coordinates against a weather.gov style API: a
// grid-point lookup yields the hourly forecast URL, the forecast fetch yields
// the current period.
package nws

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/zanzhit/camera_wall/internal/config"
	"github.com/zanzhit/camera_wall/internal/domain/errs"
	"github.com/zanzhit/camera_wall/internal/domain/models"
)

type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

type pointsResponse struct {
	Properties struct {
		ForecastHourly   string `json:"forecastHourly"`
		RelativeLocation struct {
			Properties struct {
				City  string `json:"city"`
				State string `json:"state"`
			} `json:"properties"`
		} `json:"relativeLocation"`
	} `json:"properties"`
}

type forecastResponse struct {
	Properties struct {
		Periods []models.ForecastPeriod `json:"periods"`
	} `json:"properties"`
}

func New(cfg config.Weather) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *Client) CurrentPeriod(latitude, longitude float64) (models.ForecastPeriod, string, error) {
	const op = "nws.CurrentPeriod"

	pointsURL := fmt.Sprintf("%s/points/%.4f,%.4f", c.baseURL, latitude, longitude)

	var points pointsResponse
	if err := c.get(pointsURL, &points); err != nil {
		return models.ForecastPeriod{}, "", fmt.Errorf("%s: failed to resolve grid point: %w", op, err)
	}

	if points.Properties.ForecastHourly == "" {
		return models.ForecastPeriod{}, "", fmt.Errorf("%s: %w", op, errs.ErrNoForecast)
	}

	var forecast forecastResponse
	if err := c.get(points.Properties.ForecastHourly, &forecast); err != nil {
		return models.ForecastPeriod{}, "", fmt.Errorf("%s: failed to fetch forecast: %w", op, err)
	}

	periods := forecast.Properties.Periods
	if len(periods) == 0 {
		return models.ForecastPeriod{}, "", fmt.Errorf("%s: %w", op, errs.ErrNoForecast)
	}

	return periods[0], points.Properties.RelativeLocation.Properties.City, nil
}

func (c *Client) get(url string, dst interface{}) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/geo+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
