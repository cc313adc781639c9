package feedservice

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/zanzhit/camera_wall/internal/domain/errs"
	"github.com/zanzhit/camera_wall/internal/domain/models"
	"github.com/zanzhit/camera_wall/internal/lib/maplink"
)

type fakeFeed struct {
	cameras []models.Camera
	err     error
}

func (f fakeFeed) Cameras() ([]models.Camera, error) {
	return f.cameras, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCameras(n int) []models.Camera {
	cameras := make([]models.Camera, n)
	for i := range cameras {
		cameras[i] = models.Camera{
			Name:      fmt.Sprintf("cam-%d", i),
			StreamURL: fmt.Sprintf("https://streams.example.com/cam-%d.m3u8", i),
			Latitude:  43.0 + float64(i)*0.01,
			Longitude: -77.0 - float64(i)*0.01,
		}
	}

	return cameras
}

func TestNextBatchPaginatesToExactlyTotal(t *testing.T) {
	const total, batchSize = 20, 9

	s := New(discardLogger(), fakeFeed{cameras: testCameras(total)}, maplink.GoogleMaps{}, batchSize)

	sess, err := s.NewSession()
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if sess.Total != total {
		t.Fatalf("session total = %d, want %d", sess.Total, total)
	}

	var rendered int
	wantBatches := []int{9, 9, 2}

	for i, want := range wantBatches {
		batch, err := s.NextBatch(sess.SessionID)
		if err != nil {
			t.Fatalf("NextBatch() #%d error = %v", i, err)
		}

		if batch.Rendered != want {
			t.Errorf("batch #%d rendered %d items, want %d", i, batch.Rendered, want)
		}

		rendered += batch.Rendered
		if batch.Loaded != rendered {
			t.Errorf("batch #%d loaded = %d, want %d", i, batch.Loaded, rendered)
		}

		wantMore := rendered < total
		if batch.HasMore != wantMore {
			t.Errorf("batch #%d has_more = %v, want %v", i, batch.HasMore, wantMore)
		}
	}

	if rendered != total {
		t.Fatalf("rendered %d items in total, want %d", rendered, total)
	}
}

func TestNextBatchPastEndRendersNothing(t *testing.T) {
	s := New(discardLogger(), fakeFeed{cameras: testCameras(3)}, maplink.GoogleMaps{}, 9)

	sess, err := s.NewSession()
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	if _, err := s.NextBatch(sess.SessionID); err != nil {
		t.Fatalf("NextBatch() error = %v", err)
	}

	batch, err := s.NextBatch(sess.SessionID)
	if err != nil {
		t.Fatalf("NextBatch() past end error = %v", err)
	}
	if batch.Rendered != 0 || len(batch.Items) != 0 {
		t.Errorf("past-end batch rendered %d items, want 0", batch.Rendered)
	}
	if batch.Loaded != 3 || batch.HasMore {
		t.Errorf("past-end batch loaded = %d, has_more = %v, want 3, false", batch.Loaded, batch.HasMore)
	}
}

func TestNextBatchEmptyFeed(t *testing.T) {
	s := New(discardLogger(), fakeFeed{}, maplink.GoogleMaps{}, 9)

	sess, err := s.NewSession()
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	batch, err := s.NextBatch(sess.SessionID)
	if err != nil {
		t.Fatalf("NextBatch() error = %v", err)
	}
	if batch.Rendered != 0 || batch.HasMore {
		t.Errorf("empty feed batch = %+v, want no items and no more", batch)
	}
}

func TestNextBatchBuildsFeedItems(t *testing.T) {
	s := New(discardLogger(), fakeFeed{cameras: testCameras(1)}, maplink.GoogleMaps{}, 9)

	sess, err := s.NewSession()
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	batch, err := s.NextBatch(sess.SessionID)
	if err != nil {
		t.Fatalf("NextBatch() error = %v", err)
	}
	if len(batch.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(batch.Items))
	}

	item := batch.Items[0]
	if item.Name != "cam-0" {
		t.Errorf("item name = %q, want %q", item.Name, "cam-0")
	}
	if item.StreamURL != "https://streams.example.com/cam-0.m3u8" {
		t.Errorf("item stream url = %q", item.StreamURL)
	}
	if item.MapURL == "" {
		t.Error("item map url is empty")
	}
	if !item.Autoplay || !item.Muted || !item.PlaysInline {
		t.Errorf("playback hints = %+v, want autoplay, muted, inline", item)
	}
}

func TestNextBatchUnknownSession(t *testing.T) {
	s := New(discardLogger(), fakeFeed{cameras: testCameras(3)}, maplink.GoogleMaps{}, 9)

	_, err := s.NextBatch("no-such-session")
	if !errors.Is(err, errs.ErrSessionNotFound) {
		t.Fatalf("NextBatch() error = %v, want %v", err, errs.ErrSessionNotFound)
	}
}

func TestNewSessionFeedError(t *testing.T) {
	wantErr := errors.New("feed down")

	s := New(discardLogger(), fakeFeed{err: wantErr}, maplink.GoogleMaps{}, 9)

	_, err := s.NewSession()
	if !errors.Is(err, wantErr) {
		t.Fatalf("NewSession() error = %v, want %v", err, wantErr)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	s := New(discardLogger(), fakeFeed{cameras: testCameras(5)}, maplink.GoogleMaps{}, 3)

	first, err := s.NewSession()
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	second, err := s.NewSession()
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	if _, err := s.NextBatch(first.SessionID); err != nil {
		t.Fatalf("NextBatch() error = %v", err)
	}

	batch, err := s.NextBatch(second.SessionID)
	if err != nil {
		t.Fatalf("NextBatch() error = %v", err)
	}
	if batch.Loaded != 3 {
		t.Errorf("second session loaded = %d, want 3", batch.Loaded)
	}
}
