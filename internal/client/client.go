// Package client talks to the remote product service over its REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/inventory-console/internal/apperrors"
	"github.com/rogerio-castellano/inventory-console/internal/models"
	"go.uber.org/zap"
)

const (
	ProductsPath = "/api/products"

	RequestIDHeader = "X-Request-ID"

	maxResponseBytes  = 10 << 20
	maxErrorBodyBytes = 512
)

// ErrMissingID is returned when the service answers a create request with a
// product that carries no identifier.
var ErrMissingID = errors.New("created product has no id")

// Client is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *Limiter
	timeout    time.Duration
	log        *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithTimeout bounds every request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRateLimit spaces outgoing requests. A non-positive rps disables it.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		c.limiter = NewLimiter(rps, burst)
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		limiter:    NewLimiter(0, 0),
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List fetches the whole product collection.
func (c *Client) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, ProductsPath, nil, &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// Create sends the draft and returns the product stored by the service.
func (c *Client) Create(ctx context.Context, draft models.Draft) (models.Product, error) {
	var created models.Product
	if err := c.do(ctx, http.MethodPost, ProductsPath, draft, &created); err != nil {
		return models.Product{}, fmt.Errorf("create product: %w", err)
	}
	if created.ID == 0 {
		return models.Product{}, fmt.Errorf("create product: %w", ErrMissingID)
	}
	return created, nil
}

// Delete removes the product with the given id.
func (c *Client) Delete(ctx context.Context, id int) error {
	path := ProductsPath + "/" + strconv.Itoa(id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.log.Debug("product service request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.String("request_id", requestID),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return apperrors.NewStatusError(method, path, resp.StatusCode, string(snippet))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil
	}

	return readJSON(resp.Body, out)
}

// readJSON decodes a single JSON value from r.
func readJSON(r io.Reader, data any) error {
	dec := json.NewDecoder(io.LimitReader(r, maxResponseBytes))
	if err := dec.Decode(data); err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}
