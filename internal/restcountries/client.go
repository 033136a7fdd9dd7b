package restcountries

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/countries/internal/model"
)

const (
	// DefaultBaseURL is the public REST Countries v3.1 endpoint.
	DefaultBaseURL = "https://restcountries.com/v3.1"

	// listFields are the fields requested for the collection. The API
	// rejects /all without an explicit field list.
	listFields = "name,cca3,flags,flag,region,capital,population"

	userAgent = "countries-cli"

	maxErrorBody = 512
)

// Client is a client for the REST Countries API
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// ClientOptions configures the REST Countries client
type ClientOptions struct {
	// BaseURL overrides DefaultBaseURL
	BaseURL string

	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration

	// HTTPClient replaces the default client; Timeout is ignored when set
	HTTPClient *http.Client

	Logger *slog.Logger
}

// NewClient creates a new REST Countries API client
func NewClient(opts ClientOptions) (*Client, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", base, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid API base URL %q: scheme must be http or https", base)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	logger.Debug("creating REST Countries client", slog.String("base_url", base))

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(base, "/"),
		logger:     logger,
	}, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListCountries fetches the whole collection in one request.
func (c *Client) ListCountries(ctx context.Context) ([]model.Country, error) {
	var out []model.Country

	if err := c.get(ctx, "/all?fields="+listFields, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// GetCountry fetches one country by its alpha code. The API answers with a
// list; the first element is returned.
func (c *Client) GetCountry(ctx context.Context, code string) (model.Country, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return model.Country{}, fmt.Errorf("country code is required")
	}

	var out []model.Country

	if err := c.get(ctx, "/alpha/"+url.PathEscape(code), &out); err != nil {
		return model.Country{}, err
	}

	if len(out) == 0 {
		return model.Country{}, &NotFoundError{Code: code}
	}

	return out[0], nil
}

// get performs a GET request and decodes the JSON body into result
func (c *Client) get(ctx context.Context, path string, result any) error {
	reqID := uuid.NewString()
	endpoint := c.baseURL + path
	start := time.Now()

	log := c.logger.With(
		slog.String("request_id", reqID),
		slog.String("path", path),
	)

	log.Debug("making REST Countries API request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", reqID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("request failed", slog.String("error", err.Error()))
		return fmt.Errorf("request failed: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	log.Debug("received response",
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return &StatusError{
			Code:   resp.StatusCode,
			Status: http.StatusText(resp.StatusCode),
			Body:   strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		log.Warn("failed to decode response", slog.String("error", err.Error()))
		return &DecodeError{Err: err}
	}

	return nil
}
