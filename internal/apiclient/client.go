// Package apiclient talks to the listing API over HTTP. It implements
// both external collaborators of the page: the listing source (GET
// /data) and the submission transport (POST /).
package apiclient

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"nestmap/internal/form"
	"nestmap/internal/listing"
)

// Client is a listing API client. Safe to share between the page's
// source and transport roles.
type Client struct {
	http *resty.Client
	log  zerolog.Logger
}

// New constructs a client for the API at baseURL.
func New(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout),
		log: logger,
	}
}

// Listings fetches and decodes the listing feed.
func (c *Client) Listings(ctx context.Context) ([]listing.Listing, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/data")
	if err != nil {
		return nil, fmt.Errorf("fetch listings: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch listings: unexpected status %s", resp.Status())
	}
	listings, err := listing.DecodeListings(resp.Body())
	if err != nil {
		return nil, err
	}
	c.log.Debug().Int("count", len(listings)).Msg("listing feed fetched")
	return listings, nil
}

// Submit posts a serialized draft to the API.
func (c *Client) Submit(ctx context.Context, payload form.Payload) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(payload).
		Post("/")
	if err != nil {
		return fmt.Errorf("submit listing: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("submit listing: unexpected status %s", resp.Status())
	}
	return nil
}
