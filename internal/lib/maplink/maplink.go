// Package maplink builds the map link shown next to each camera tile.
package maplink

import "fmt"

type GoogleMaps struct{}

func (GoogleMaps) Link(latitude, longitude float64) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%f,%f", latitude, longitude)
}
