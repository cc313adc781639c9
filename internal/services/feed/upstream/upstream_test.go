package upstream

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/zanzhit/camera_wall/internal/config"
	"github.com/zanzhit/camera_wall/internal/domain/errs"
)

const feedBody = `[
	{"name": "Main St", "url": "https://streams.example.com/main.m3u8", "latitude": 43.15, "longitude": -77.6},
	{"name": "Broad St", "url": "https://streams.example.com/broad.m3u8", "latitude": 43.16, "longitude": -77.61}
]`

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr error
	}{
		{"bare list", feedBody, 2, nil},
		{"wrapped list", fmt.Sprintf(`{"videos": %s}`, feedBody), 2, nil},
		{"empty list", `[]`, 0, nil},
		{"error object", `{"error": "x"}`, 0, errs.ErrBadFeedFormat},
		{"string", `"nope"`, 0, errs.ErrBadFeedFormat},
		{"not json", `<html>`, 0, errs.ErrBadFeedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cameras, err := Parse([]byte(tt.body))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(cameras) != tt.want {
				t.Errorf("Parse() returned %d cameras, want %d", len(cameras), tt.want)
			}
		})
	}
}

func TestParseShapesMatch(t *testing.T) {
	bare, err := Parse([]byte(feedBody))
	if err != nil {
		t.Fatalf("Parse(bare) error = %v", err)
	}

	wrapped, err := Parse([]byte(fmt.Sprintf(`{"videos": %s}`, feedBody)))
	if err != nil {
		t.Fatalf("Parse(wrapped) error = %v", err)
	}

	if len(bare) != len(wrapped) {
		t.Fatalf("shape mismatch: %d vs %d cameras", len(bare), len(wrapped))
	}
	for i := range bare {
		if bare[i] != wrapped[i] {
			t.Errorf("camera %d differs: %+v vs %+v", i, bare[i], wrapped[i])
		}
	}
}

func TestCameras(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, feedBody)
	}))
	defer ts.Close()

	c := New(config.Feed{URL: ts.URL, Timeout: time.Second})

	cameras, err := c.Cameras()
	if err != nil {
		t.Fatalf("Cameras() error = %v", err)
	}
	if len(cameras) != 2 {
		t.Fatalf("Cameras() returned %d cameras, want 2", len(cameras))
	}
	if cameras[0].Name != "Main St" {
		t.Errorf("first camera name = %q, want %q", cameras[0].Name, "Main St")
	}
}

func TestCamerasUpstreamDown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer ts.Close()

	c := New(config.Feed{URL: ts.URL, Timeout: time.Second})

	if _, err := c.Cameras(); err == nil {
		t.Fatal("Cameras() expected error, got nil")
	}
}
