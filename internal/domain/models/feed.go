package models

// FeedSession is returned on session creation; the whole feed is fetched up
// front, batches are then served from memory.
type FeedSession struct {
	SessionID string `json:"session_id"`
	Total     int    `json:"total"`
}

// FeedItem is a camera prepared for the page: map link built from the
// coordinates, playback hints for the stream element.
type FeedItem struct {
	Name        string `json:"name"`
	StreamURL   string `json:"url"`
	MapURL      string `json:"map_url"`
	Autoplay    bool   `json:"autoplay"`
	Muted       bool   `json:"muted"`
	PlaysInline bool   `json:"plays_inline"`
}

type FeedBatch struct {
	Items    []FeedItem `json:"items"`
	Rendered int        `json:"rendered"`
	Loaded   int        `json:"loaded"`
	Total    int        `json:"total"`
	HasMore  bool       `json:"has_more"`
}
