package tripreport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ozzus/nextbid/internal/domain/models"
	"github.com/ozzus/nextbid/internal/infrastructures/tripreport/dto"
	"github.com/ozzus/nextbid/internal/infrastructures/tripreport/mappers"
)

// Client reads published trips from the crew-scheduling trip report feed.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "http://localhost:8090"
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      strings.TrimSpace(token),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListTrips(ctx context.Context, period string) ([]models.Trip, error) {
	if c.token == "" {
		return nil, fmt.Errorf("trip report token is empty")
	}

	reqURL, err := c.buildURL(period)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trip report request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("trip report status: %s", resp.Status)
	}

	var payload dto.TripsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode trip report response: %w", err)
	}

	return mappers.ToTrips(payload.Data), nil
}

func (c *Client) buildURL(period string) (string, error) {
	u, err := url.Parse(c.baseURL + "/v1/trips")
	if err != nil {
		return "", fmt.Errorf("parse trip report base url: %w", err)
	}

	if period = strings.TrimSpace(period); period != "" {
		q := u.Query()
		q.Set("period", period)
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}
