package upstream

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"

	"cozinha/internal/models"
)

// The backend serves collections either as a bare JSON array or as a
// paginated envelope {count, next, previous, results}. Everything past
// this file only ever sees typed slices; the envelope shape is decided
// here, once.

type ordersEnvelope struct {
	Results []models.Order `json:"results"`
	Next    string         `json:"next"`
}

type itemsEnvelope struct {
	Results []models.Item `json:"results"`
	Next    string        `json:"next"`
}

func isArray(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}

// decodeOrders returns the page's orders and the next-page reference,
// empty when this is the last page.
func decodeOrders(data []byte) ([]models.Order, string, error) {
	if isArray(data) {
		var orders []models.Order
		if err := json.Unmarshal(data, &orders); err != nil {
			return nil, "", fmt.Errorf("failed to decode orders array: %w", err)
		}
		return orders, "", nil
	}
	var env ordersEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, "", fmt.Errorf("failed to decode orders envelope: %w", err)
	}
	return env.Results, env.Next, nil
}

func decodeItems(data []byte) ([]models.Item, string, error) {
	if isArray(data) {
		var items []models.Item
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, "", fmt.Errorf("failed to decode items array: %w", err)
		}
		return items, "", nil
	}
	var env itemsEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, "", fmt.Errorf("failed to decode items envelope: %w", err)
	}
	return env.Results, env.Next, nil
}

// normalizeNext strips scheme and host from a "next" link so the walk
// always goes back through the configured base URL, even when the
// backend advertises links under a different host or scheme.
func normalizeNext(next string) string {
	if next == "" {
		return ""
	}
	u, err := url.Parse(next)
	if err != nil {
		return next
	}
	if u.RawQuery == "" {
		return u.Path
	}
	return u.Path + "?" + u.RawQuery
}
