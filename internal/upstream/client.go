// Package upstream talks to the ordering backend's REST API. The
// backend owns all order and menu state; this client only reads it and
// forwards operator actions.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cozinha/internal/models"

	"go.uber.org/zap"
)

// pageSize is how many orders are requested per page when walking the
// paginated collection.
const pageSize = 200

// Client is a typed HTTP client for the ordering backend.
type Client struct {
	base   *url.URL
	token  string
	client *http.Client
	logger *zap.SugaredLogger
}

// NewClient builds a client for the backend rooted at baseURL
// (e.g. "http://backend:8000/api"). token, when non-empty, is attached
// as a bearer credential to every request.
func NewClient(baseURL, token string, timeout time.Duration, logger *zap.SugaredLogger) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend base URL %q: %w", baseURL, err)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		base:   base,
		token:  token,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}, nil
}

// FetchOrders retrieves the full order collection, walking every page.
// When the backend omits the "next" link it falls back to advancing
// the offset until a short page comes back.
func (c *Client) FetchOrders(ctx context.Context) ([]models.Order, error) {
	all := []models.Order{}
	ref := fmt.Sprintf("orders/?ordering=created_at&limit=%d&offset=0", pageSize)
	offset := 0

	for ref != "" {
		body, err := c.get(ctx, ref)
		if err != nil {
			return nil, err
		}
		page, next, err := decodeOrders(body)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)

		switch {
		case next != "":
			ref = normalizeNext(next)
		case len(page) == pageSize:
			// Backend without pagination links; keep walking offsets.
			offset += pageSize
			ref = fmt.Sprintf("orders/?ordering=created_at&limit=%d&offset=%d", pageSize, offset)
		default:
			ref = ""
		}
	}

	return all, nil
}

// FetchItems retrieves the full menu, inactive items included, so the
// board can still resolve categories for lines referencing retired
// items.
func (c *Client) FetchItems(ctx context.Context) ([]models.Item, error) {
	body, err := c.get(ctx, "items/?all=1")
	if err != nil {
		return nil, err
	}
	items, _, err := decodeItems(body)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus asks the backend to move an order to the given status.
// A rejection comes back as an error; the caller never applies the
// transition locally.
func (c *Client) UpdateStatus(ctx context.Context, orderID int, status models.Status) error {
	return c.patch(ctx, fmt.Sprintf("orders/%d/status/", orderID), map[string]any{"status": status})
}

// SetAntecipado flags or unflags an order as scheduled-ahead.
func (c *Client) SetAntecipado(ctx context.Context, orderID int, antecipado bool) error {
	return c.patch(ctx, fmt.Sprintf("orders/%d/antecipado/", orderID), map[string]any{"antecipado": antecipado})
}

func (c *Client) get(ctx context.Context, ref string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolve(ref), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, ref)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

func (c *Client) patch(ctx context.Context, ref string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.resolve(ref), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("backend rejected %s: %s", ref, rejectionDetail(resp))
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func (c *Client) resolve(ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		c.logger.Debugw("unparsable request ref", "ref", ref, "error", err)
		return c.base.String() + ref
	}
	return c.base.ResolveReference(u).String()
}

// rejectionDetail extracts the backend's error message, falling back
// to the HTTP status line.
func rejectionDetail(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil {
		var payload struct {
			Detail string `json:"detail"`
			Error  string `json:"error"`
		}
		if json.Unmarshal(body, &payload) == nil {
			if payload.Detail != "" {
				return payload.Detail
			}
			if payload.Error != "" {
				return payload.Error
			}
		}
	}
	return resp.Status
}
