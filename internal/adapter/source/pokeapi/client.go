package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Mondacars0165/PokeTest/internal/domain"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

const (
	DefaultBaseURL = "https://pokeapi.co/api/v2"
	defaultTimeout = 15 * time.Second
	userAgent      = "PokeTest/1.0"
)

// Options configures a Client
type Options struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond int // 0 = unlimited
}

// Client implements domain.CatalogRepository for PokeAPI.
// Each call is exactly one HTTP attempt.
type Client struct {
	baseURL    string
	httpClient *resty.Client
	limiter    ratelimit.Limiter
	logger     *slog.Logger
}

// NewClient creates a new PokeAPI client
func NewClient(opts Options, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	limiter := ratelimit.NewUnlimited()
	if opts.RequestsPerSecond > 0 {
		limiter = ratelimit.New(opts.RequestsPerSecond)
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		limiter:    limiter,
		logger:     logger,
	}
}

// BaseURL returns the catalog root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doGet performs a single GET and returns the raw body of a 2xx response.
// The body is always read to the end and closed so the connection can be reused.
func (c *Client) doGet(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	c.limiter.Take()

	req := c.httpClient.R().
		SetContext(ctx).
		SetDoNotParseResponse(true)
	if query != nil {
		req.SetQueryParams(query)
	}

	c.logger.Debug("catalog request", "path", path, "query", query)

	resp, err := req.Get(path)
	if err != nil {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
		c.logger.Error("catalog request failed", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if !resp.IsSuccess() {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logger.Error("catalog request error", "path", path, "status", resp.StatusCode())
		return nil, &domain.BadStatusError{Code: resp.StatusCode()}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("catalog response read failed", "path", path, "error", err)
		return nil, fmt.Errorf("%w: reading body: %w", domain.ErrTransport, err)
	}
	return body, nil
}

// decode unmarshals body into a freshly allocated T; an empty or null body is malformed
func decode[T any](body []byte) (*T, error) {
	var out *T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformed, err)
	}
	if out == nil {
		return nil, fmt.Errorf("%w: null body", domain.ErrMalformed)
	}
	return out, nil
}

// FetchList returns one page of the listing endpoint
func (c *Client) FetchList(ctx context.Context, cursor domain.PageCursor) (domain.Page, error) {
	body, err := c.doGet(ctx, "/pokemon", map[string]string{
		"offset": strconv.Itoa(cursor.Offset),
		"limit":  strconv.Itoa(cursor.Limit),
	})
	if err != nil {
		return domain.Page{}, err
	}

	resp, err := decode[ListResponse](body)
	if err != nil {
		c.logger.Error("failed to decode list", "offset", cursor.Offset, "error", err)
		return domain.Page{}, err
	}

	return MapPage(*resp, cursor), nil
}

// FetchDetailByName returns the detail record for a catalog slug
func (c *Client) FetchDetailByName(ctx context.Context, name string) (domain.DetailRecord, error) {
	return c.fetchDetail(ctx, name)
}

// FetchDetailByID returns the detail record for a catalog ID
func (c *Client) FetchDetailByID(ctx context.Context, id int) (domain.DetailRecord, error) {
	return c.fetchDetail(ctx, strconv.Itoa(id))
}

func (c *Client) fetchDetail(ctx context.Context, ref string) (domain.DetailRecord, error) {
	// Escaped so user input cannot add path segments or a query
	body, err := c.doGet(ctx, "/pokemon/"+url.PathEscape(ref), nil)
	if err != nil {
		return domain.DetailRecord{}, err
	}

	resp, err := decode[PokemonResponse](body)
	if err != nil {
		c.logger.Error("failed to decode detail", "ref", ref, "error", err)
		return domain.DetailRecord{}, err
	}

	return MapDetail(*resp), nil
}
