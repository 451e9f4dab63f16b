package frame

import (
	"encoding/json"
	"fmt"

	"github.com/mobil-koeln/flightframe/internal/cache"
	"github.com/mobil-koeln/flightframe/internal/models"
)

// markupVersion is part of every cache key; bump it when the markup changes.
const markupVersion = "1"

// Cache stores rendered frame markup
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
}

// CacheKey identifies the markup produced for an itinerary and options
func CacheKey(it *models.Itinerary, opts Options) (string, error) {
	canonical, err := json.Marshal(it)
	if err != nil {
		return "", fmt.Errorf("failed to encode itinerary: %w", err)
	}
	return cache.Key([]byte(markupVersion), canonical, []byte(opts.Locale), []byte(opts.Children)), nil
}

// RenderHTML renders an itinerary to markup, consulting c first when it is
// non-nil. Cache write failures are not fatal.
func RenderHTML(c Cache, it *models.Itinerary, opts Options) (string, error) {
	var key string
	if c != nil && it != nil {
		k, err := CacheKey(it, opts)
		if err != nil {
			return "", err
		}
		key = k
		if data, ok := c.Get(key); ok {
			return string(data), nil
		}
	}

	v, err := Render(it, opts)
	if err != nil {
		return "", err
	}
	out, err := v.HTML()
	if err != nil {
		return "", err
	}

	if key != "" {
		_ = c.Set(key, []byte(out))
	}
	return out, nil
}
