package weatherhandler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/zanzhit/camera_wall/internal/http-server/handlers"
	"github.com/zanzhit/camera_wall/internal/lib/api/response"
	"github.com/zanzhit/camera_wall/internal/lib/sl"
)

// FallbackLabel is shown when any step of the resolution fails; a failed
// lookup is not worth more than that to the page.
const FallbackLabel = "Unable to load temperature"

type Request struct {
	Latitude  float64 `validate:"latitude"`
	Longitude float64 `validate:"longitude"`
}

type Response struct {
	Label string `json:"label"`
}

type WeatherHandler struct {
	log     *slog.Logger
	weather Weather
}

type Weather interface {
	Label(latitude, longitude float64) (string, error)
}

func New(
	log *slog.Logger,
	weather Weather,
) *WeatherHandler {
	return &WeatherHandler{
		log:     log,
		weather: weather,
	}
}

func (h *WeatherHandler) Label(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.weather.Label"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		log.Error("invalid lat", sl.Err(err))

		handlers.Error(w, r, http.StatusBadRequest, response.Error("lat must be a number", ""))

		return
	}

	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		log.Error("invalid lon", sl.Err(err))

		handlers.Error(w, r, http.StatusBadRequest, response.Error("lon must be a number", ""))

		return
	}

	req := Request{Latitude: lat, Longitude: lon}
	if err := validator.New().Struct(req); err != nil {
		validateErr := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		handlers.Error(w, r, http.StatusBadRequest, response.ValidationError(validateErr))

		return
	}

	label, err := h.weather.Label(lat, lon)
	if err != nil {
		log.Error("failed to resolve label", sl.Err(err))

		render.JSON(w, r, Response{Label: FallbackLabel})

		return
	}

	render.JSON(w, r, Response{Label: label})
}
