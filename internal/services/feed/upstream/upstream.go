// Package upstream fetches the camera list from an external feed endpoint.
// The endpoint serves either a bare JSON list or an object with a "videos"
// field; anything else is a contract violation.
package upstream

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/zanzhit/camera_wall/internal/config"
	"github.com/zanzhit/camera_wall/internal/domain/errs"
	"github.com/zanzhit/camera_wall/internal/domain/models"
)

type Client struct {
	url        string
	httpClient *http.Client
}

func New(cfg config.Feed) *Client {
	return &Client{
		url: cfg.URL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *Client) Cameras() ([]models.Camera, error) {
	const op = "upstream.Cameras"

	resp, err := c.httpClient.Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to fetch feed: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: failed to fetch feed: %s", op, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read feed: %w", op, err)
	}

	return Parse(body)
}

// Parse accepts the two shapes the feed is known to serve.
func Parse(body []byte) ([]models.Camera, error) {
	const op = "upstream.Parse"

	var cameras []models.Camera
	if err := json.Unmarshal(body, &cameras); err == nil {
		return cameras, nil
	}

	var wrapped struct {
		Videos []models.Camera `json:"videos"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Videos != nil {
		return wrapped.Videos, nil
	}

	return nil, fmt.Errorf("%s: %w", op, errs.ErrBadFeedFormat)
}
