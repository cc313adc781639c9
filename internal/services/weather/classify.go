package weatherservice

import "strings"

const (
	emojiThunder = "⛈️"
	emojiRain    = "🌧️"
	emojiSnow    = "🌨️"
	emojiFog     = "🌫️"

	emojiPartlyCloudyDay = "⛅"
	emojiMostlyCloudyDay = "🌥️"
	emojiCloud           = "☁️"

	emojiSun  = "☀️"
	emojiMoon = "🌙"
)

// classifyForecast maps a short forecast text to one emoji. Rules are
// ordered, first match wins, matching is case-insensitive substring.
func classifyForecast(shortForecast string, isNight bool) string {
	forecast := strings.ToLower(shortForecast)

	switch {
	case strings.Contains(forecast, "thunder"):
		return emojiThunder
	case strings.Contains(forecast, "rain"), strings.Contains(forecast, "shower"):
		return emojiRain
	case strings.Contains(forecast, "snow"):
		return emojiSnow
	case strings.Contains(forecast, "fog"), strings.Contains(forecast, "mist"):
		return emojiFog
	case strings.Contains(forecast, "cloud"), strings.Contains(forecast, "overcast"):
		if isNight {
			// TODO: distinct partly/mostly glyphs at night once product
			// decides; today all cloudy nights share one symbol.
			return emojiCloud
		}

		switch {
		case strings.Contains(forecast, "partly"):
			return emojiPartlyCloudyDay
		case strings.Contains(forecast, "mostly"):
			return emojiMostlyCloudyDay
		default:
			return emojiCloud
		}
	default:
		if isNight {
			return emojiMoon
		}

		return emojiSun
	}
}
