package feedhandler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/zanzhit/camera_wall/internal/domain/errs"
	"github.com/zanzhit/camera_wall/internal/domain/models"
	"github.com/zanzhit/camera_wall/internal/http-server/handlers"
	"github.com/zanzhit/camera_wall/internal/lib/api/response"
	"github.com/zanzhit/camera_wall/internal/lib/sl"
)

type FeedHandler struct {
	log  *slog.Logger
	feed Feed
}

type Feed interface {
	NewSession() (models.FeedSession, error)
	NextBatch(sessionID string) (models.FeedBatch, error)
}

func New(
	log *slog.Logger,
	feed Feed,
) *FeedHandler {
	return &FeedHandler{
		log:  log,
		feed: feed,
	}
}

func (h *FeedHandler) NewSession(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.feed.NewSession"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sess, err := h.feed.NewSession()
	if err != nil {
		if errors.Is(err, errs.ErrBadFeedFormat) {
			log.Error("feed is malformed", sl.Err(err))

			handlers.Error(w, r, http.StatusBadGateway, response.Error("unable to load cameras", ""))

			return
		}

		log.Error("failed to open feed session", sl.Err(err))

		handlers.Error(w, r, http.StatusBadGateway, response.Error("unable to load cameras", middleware.GetReqID(r.Context())))

		return
	}

	render.JSON(w, r, sess)
}

func (h *FeedHandler) NextBatch(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.feed.NextBatch"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sessionID := chi.URLParam(r, "session_id")
	if sessionID == "" {
		log.Error("session_id is empty")

		handlers.Error(w, r, http.StatusBadRequest, response.Error("session_id is required", ""))

		return
	}

	batch, err := h.feed.NextBatch(sessionID)
	if err != nil {
		if errors.Is(err, errs.ErrSessionNotFound) {
			log.Error("session not found", slog.String("session_id", sessionID))

			handlers.Error(w, r, http.StatusNotFound, response.Error("feed session not found", ""))

			return
		}

		log.Error("failed to load batch", sl.Err(err))

		handlers.Error(w, r, http.StatusInternalServerError, response.Error("failed to load batch", middleware.GetReqID(r.Context())))

		return
	}

	render.JSON(w, r, batch)
}
