package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"vicheka.dev/internal/models"
)

// maxErrorBody bounds how much of a failed response is kept for the error
const maxErrorBody = 512

// Config configures a Client. It is passed explicitly so tests can point
// the client at a local server.
type Config struct {
	BaseURL    string
	StorageURL string
	Timeout    time.Duration
	UserAgent  string
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for request tracing
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// Client talks to the portfolio backend. It is safe for concurrent use.
type Client struct {
	base      *url.URL
	storage   string
	userAgent string
	http      *http.Client
	logger    *zap.Logger
}

// New creates a Client for the backend at cfg.BaseURL
func New(cfg Config, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", cfg.BaseURL)
	}

	storage := strings.TrimRight(cfg.StorageURL, "/")
	if storage == "" {
		storage = base.JoinPath("storage").String()
	}

	c := &Client{
		base:      base,
		storage:   storage,
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: cfg.Timeout},
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ImageURL resolves an image reference against the storage base path.
// Empty references stay empty.
func (c *Client) ImageURL(image string) string {
	if image == "" {
		return ""
	}
	return c.storage + "/" + strings.TrimLeft(image, "/")
}

// Projects fetches all projects
func (c *Client) Projects(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	if err := c.getJSON(ctx, "projects", "api/projects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Tutorials fetches all tutorials
func (c *Client) Tutorials(ctx context.Context) ([]models.Tutorial, error) {
	var out []models.Tutorial
	if err := c.getJSON(ctx, "tutorials", "api/tutorials", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TutorialsByCategory fetches the tutorials the backend files under categoryID
func (c *Client) TutorialsByCategory(ctx context.Context, categoryID int) ([]models.Tutorial, error) {
	q := url.Values{"category": {strconv.Itoa(categoryID)}}
	var out []models.Tutorial
	if err := c.getJSON(ctx, "tutorials by category", "api/tutorials", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Categories fetches all tutorial categories
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.getJSON(ctx, "categories", "api/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ContactMethods fetches all contact methods
func (c *Client) ContactMethods(ctx context.Context) ([]models.ContactMethod, error) {
	var out []models.ContactMethod
	if err := c.getJSON(ctx, "contact methods", "api/contact-methods", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.base.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *Client) getJSON(ctx context.Context, op, path string, query url.Values, out any) error {
	endpoint := c.endpoint(path, query)
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return &NetworkError{Op: op, Method: http.MethodGet, URL: endpoint, Err: err}
	}
	return c.do(op, req, out)
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	reqID := middleware.GetReqID(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", reqID)
	return req, nil
}

// do sends req once and decodes a 2xx JSON body into out. A nil out
// discards the body.
func (c *Client) do(op string, req *http.Request, out any) error {
	start := time.Now()
	fail := func(status int, err error) error {
		nerr := &NetworkError{Op: op, Method: req.Method, URL: req.URL.String(), StatusCode: status, Err: err}
		c.logger.Warn("Backend request failed",
			zap.String("op", op),
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return nerr
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fail(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return fail(resp.StatusCode, errors.New(msg))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
	} else if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fail(resp.StatusCode, fmt.Errorf("decoding response: %w", err))
	}

	c.logger.Debug("Backend request",
		zap.String("op", op),
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))
	return nil
}
