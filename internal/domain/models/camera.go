package models

// Camera is one record of the feed. Feed JSON uses the same field names the
// public traffic-camera feeds do: name, url, latitude, longitude.
type Camera struct {
	CameraID  string  `json:"camera_id,omitempty" db:"camera_id"`
	Name      string  `json:"name" db:"name" validate:"required"`
	StreamURL string  `json:"url" db:"stream_url" validate:"required,url"`
	Latitude  float64 `json:"latitude" db:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude" validate:"longitude"`
}
