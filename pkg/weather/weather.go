package weather

import (
	"errors"
	"fmt"
	"math"

	owm "github.com/briandowns/openweathermap"

	"github.com/harrisonrobin/homeboard/pkg/model"
)

// ErrNotConfigured is surfaced as a success:false payload rather than an
// HTTP error, so the optional integration never breaks the page.
var ErrNotConfigured = errors.New("weather API key not configured")

// Client reads current conditions for a fixed coordinate pair.
type Client struct {
	apiKey string
	lat    float64
	lon    float64
}

// NewClient builds the weather client. An empty key produces a client that
// always reports ErrNotConfigured.
func NewClient(apiKey string, lat, lon float64) *Client {
	return &Client{apiKey: apiKey, lat: lat, lon: lon}
}

// Current fetches and normalizes the current conditions, metric units,
// temperatures rounded to whole degrees.
func (c *Client) Current() (model.Weather, error) {
	if c.apiKey == "" {
		return model.Weather{}, ErrNotConfigured
	}

	current, err := owm.NewCurrent("C", "en", c.apiKey)
	if err != nil {
		return model.Weather{}, fmt.Errorf("weather client: %w", err)
	}
	if err := current.CurrentByCoordinates(&owm.Coordinates{Latitude: c.lat, Longitude: c.lon}); err != nil {
		return model.Weather{}, fmt.Errorf("weather request failed: %w", err)
	}

	out := model.Weather{
		Temp:      int(math.Round(current.Main.Temp)),
		FeelsLike: int(math.Round(current.Main.FeelsLike)),
		Humidity:  current.Main.Humidity,
		WindSpeed: current.Wind.Speed,
		City:      current.Name,
	}
	if len(current.Weather) > 0 {
		out.Description = current.Weather[0].Description
		out.Icon = current.Weather[0].Icon
	}
	return out, nil
}
