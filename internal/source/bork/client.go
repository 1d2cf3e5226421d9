package bork

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"damsync/internal/domain"
)

const (
	SourceID   = "bork"
	SourceName = "Bork DAM"

	pageToken  = "__page"
	limitToken = "__page_size"
	siteToken  = "zonza_site"
)

// FetchError reports retry exhaustion against the upstream API.
type FetchError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: after %d attempts: %v", e.URL, e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// RetryPolicy controls how transient upstream failures are retried.
// Only 5xx responses and transport errors count as transient.
type RetryPolicy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

func (p RetryPolicy) backoff(attempt int) time.Duration {
	d := p.InitialBackoff
	for i := 1; i < attempt; i++ {
		d *= 2
	}
	if d > p.MaxBackoff {
		d = p.MaxBackoff
	}
	return d
}

// Config holds Bork client configuration. Token and Username are
// required; config.Load enforces their presence before a Client is
// ever constructed.
type Config struct {
	BaseURL  string
	Token    string
	Username string
	Timeout  time.Duration
	Retry    RetryPolicy
}

// Client wraps the Bork search, item detail and shape detail
// endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	username   string
	retry      RetryPolicy
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:  cfg.BaseURL,
		token:    cfg.Token,
		username: cfg.Username,
		retry:    cfg.Retry,
		logger:   logger.With("source", SourceID),
	}
}

// ID returns the source identifier.
func (c *Client) ID() string {
	return SourceID
}

// Name returns human-readable name.
func (c *Client) Name() string {
	return SourceName
}

// Search queries the upstream for items belonging to site, one page at
// a time. Pages are numbered from 1.
func (c *Client) Search(ctx context.Context, site string, page, pageSize int) (*domain.SearchPage, error) {
	params := url.Values{}
	params.Set(siteToken, site)
	params.Set(pageToken, strconv.Itoa(page))
	params.Set(limitToken, strconv.Itoa(pageSize))
	searchURL := fmt.Sprintf("%s/item?%s", c.baseURL, params.Encode())

	body, err := c.get(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := c.decode(body, &resp); err != nil {
		return nil, err
	}

	result := &domain.SearchPage{
		Hits:  resp.Hits,
		Items: make([]domain.ItemRef, 0, len(resp.Items)),
	}
	for _, raw := range resp.Items {
		var item searchItem
		if err := c.decode(raw, &item); err != nil {
			return nil, err
		}
		result.Items = append(result.Items, domain.ItemRef{ID: item.ID, URL: item.URL})
	}

	return result, nil
}

// FetchItem retrieves the full record for one item.
func (c *Client) FetchItem(ctx context.Context, ref domain.ItemRef) (*domain.ItemDetail, error) {
	body, err := c.get(ctx, ref.URL)
	if err != nil {
		return nil, err
	}

	var detail itemDetail
	if err := c.decode(body, &detail); err != nil {
		return nil, err
	}

	return &domain.ItemDetail{
		ID:       detail.ID,
		Metadata: detail.Metadata,
		Raw:      body,
	}, nil
}

// FetchShapeRefs retrieves the rendition list for one item. The
// upstream returns a bare object instead of a list for items with a
// single rendition; the object is normalized into a one-element slice.
func (c *Client) FetchShapeRefs(ctx context.Context, itemID string) ([]domain.ShapeRef, error) {
	listURL := fmt.Sprintf("%s/item/%s/asset", c.baseURL, itemID)

	body, err := c.get(ctx, listURL)
	if err != nil {
		return nil, err
	}

	var resp shapeListResponse
	if err := c.decode(body, &resp); err != nil {
		return nil, err
	}
	// Items without renditions come back with the key absent or
	// explicitly null; both mean no shapes.
	assets := bytes.TrimSpace(resp.Assets)
	if len(assets) == 0 || bytes.Equal(assets, []byte("null")) {
		return nil, nil
	}

	var raws []shapeRef
	if bytes.HasPrefix(assets, []byte("[")) {
		if err := c.decode(resp.Assets, &raws); err != nil {
			return nil, err
		}
	} else {
		var single shapeRef
		if err := c.decode(resp.Assets, &single); err != nil {
			return nil, err
		}
		raws = []shapeRef{single}
	}

	refs := make([]domain.ShapeRef, 0, len(raws))
	for _, r := range raws {
		refs = append(refs, domain.ShapeRef{ItemID: itemID, URL: r.Asset})
	}
	return refs, nil
}

// FetchShape retrieves the full record for one rendition.
func (c *Client) FetchShape(ctx context.Context, ref domain.ShapeRef) (*domain.ShapeDetail, error) {
	body, err := c.get(ctx, ref.URL)
	if err != nil {
		return nil, err
	}

	var detail shapeDetail
	if err := c.decode(body, &detail); err != nil {
		return nil, err
	}

	return &domain.ShapeDetail{
		ID:   detail.ID,
		Size: detail.Size,
		Tag:  detail.Tag,
		Raw:  body,
	}, nil
}

// get performs a GET with the retry policy applied. A non-2xx status
// below 500 fails immediately; 5xx and transport errors are retried
// with exponential backoff until the attempt ceiling.
func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= c.retry.MaxAttempts; attempt++ {
		body, retryable, err := c.doRequest(ctx, reqURL)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}

		if attempt == c.retry.MaxAttempts {
			break
		}

		backoff := c.retry.backoff(attempt)
		c.logger.Warn("request failed, retrying",
			"url", reqURL,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, &FetchError{URL: reqURL, Attempts: c.retry.MaxAttempts, Err: lastErr}
}

func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Bork-Token", c.token)
	req.Header.Set("Bork-Username", c.username)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, true, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	return body, false, nil
}

// decode unmarshals an upstream payload. Malformed JSON is not a
// transient condition, so it is logged with the payload and surfaced
// as a DataShapeError.
func (c *Client) decode(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		c.logger.Error("malformed upstream payload",
			"error", err,
			"payload", string(body),
		)
		return &domain.DataShapeError{Reason: err.Error(), Payload: body}
	}
	return nil
}
