package feedservice

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/lithammer/shortuuid/v3"
	"github.com/zanzhit/camera_wall/internal/domain/errs"
	"github.com/zanzhit/camera_wall/internal/domain/models"
	"github.com/zanzhit/camera_wall/internal/lib/sl"
)

type FeedService struct {
	log       *slog.Logger
	feed      FeedProvider
	links     MapLinker
	batchSize int

	mu       sync.Mutex
	sessions map[string]*session
}

// session holds the cameras fetched for one page load and the cursor of how
// many have been handed out. The cursor only advances.
type session struct {
	items  []models.Camera
	loaded int
}

type FeedProvider interface {
	Cameras() ([]models.Camera, error)
}

type MapLinker interface {
	Link(latitude, longitude float64) string
}

func New(log *slog.Logger, feed FeedProvider, links MapLinker, batchSize int) *FeedService {
	return &FeedService{
		log:       log,
		feed:      feed,
		links:     links,
		batchSize: batchSize,
		sessions:  make(map[string]*session),
	}
}

// NewSession fetches the whole feed once and opens a paging session over it.
func (s *FeedService) NewSession() (models.FeedSession, error) {
	const op = "service.feed.NewSession"

	log := s.log.With(
		slog.String("op", op),
	)

	cameras, err := s.feed.Cameras()
	if err != nil {
		log.Error("failed to fetch feed", sl.Err(err))

		return models.FeedSession{}, fmt.Errorf("%s: %w", op, err)
	}

	sessionID := shortuuid.New()

	s.mu.Lock()
	s.sessions[sessionID] = &session{items: cameras}
	s.mu.Unlock()

	log.Info("feed session opened",
		slog.String("session_id", sessionID),
		slog.Int("total", len(cameras)),
	)

	return models.FeedSession{
		SessionID: sessionID,
		Total:     len(cameras),
	}, nil
}

// NextBatch renders the next batch of the session's cameras and advances the
// cursor by the number actually rendered. Past the end it renders zero items.
func (s *FeedService) NextBatch(sessionID string) (models.FeedBatch, error) {
	const op = "service.feed.NextBatch"

	log := s.log.With(
		slog.String("op", op),
		slog.String("session_id", sessionID),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		log.Warn("session not found")

		return models.FeedBatch{}, fmt.Errorf("%s: %w", op, errs.ErrSessionNotFound)
	}

	items := s.loadBatch(sess.items, sess.loaded, s.batchSize)
	sess.loaded += len(items)

	return models.FeedBatch{
		Items:    items,
		Rendered: len(items),
		Loaded:   sess.loaded,
		Total:    len(sess.items),
		HasMore:  sess.loaded < len(sess.items),
	}, nil
}

func (s *FeedService) loadBatch(cameras []models.Camera, startIndex, batchSize int) []models.FeedItem {
	items := make([]models.FeedItem, 0, batchSize)

	for i := startIndex; i < len(cameras) && i < startIndex+batchSize; i++ {
		cam := cameras[i]

		items = append(items, models.FeedItem{
			Name:        cam.Name,
			StreamURL:   cam.StreamURL,
			MapURL:      s.links.Link(cam.Latitude, cam.Longitude),
			Autoplay:    true,
			Muted:       true,
			PlaysInline: true,
		})
	}

	return items
}
