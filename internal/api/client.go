// internal/api/client.go
package api

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

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Doer is the transport seam. Tests substitute a counting or canned
// implementation for *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a typed consumer of the remote storefront API. It performs no
// automatic retries; every failure is surfaced once and retrying is left to
// the user.
type Client struct {
	baseURL string
	http    Doer
	limiter *rate.Limiter
}

type Option func(*Client)

func WithHTTPClient(d Doer) Option {
	return func(c *Client) { c.http = d }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http = &http.Client{Timeout: d} }
}

// WithRateLimit throttles outgoing requests client-side so rapid UI
// interactions cannot hammer the backend.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var env productListEnvelope
	if err := c.call(ctx, http.MethodGet, "/api/product/list", "", nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, rejection(env.Message)
	}
	return env.Product, nil
}

func (c *Client) SearchProducts(ctx context.Context, query string) ([]Product, error) {
	path := "/api/product/search?query=" + url.QueryEscape(query)
	var env productListEnvelope
	if err := c.call(ctx, http.MethodGet, path, "", nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, rejection(env.Message)
	}
	return env.Product, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var env singleProductEnvelope
	if err := c.call(ctx, http.MethodGet, "/api/product/single/"+url.PathEscape(id), "", nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, rejection(env.Message)
	}
	return &env.Product, nil
}

func (c *Client) CreateOrder(ctx context.Context, token string, req *CreateOrderRequest) error {
	var env ackEnvelope
	if err := c.call(ctx, http.MethodPost, "/api/order/create", token, req, &env); err != nil {
		return err
	}
	if !env.Success {
		return rejection(env.Message)
	}
	return nil
}

func (c *Client) CancelOrder(ctx context.Context, token, orderID string) error {
	body := map[string]string{"orderId": orderID}
	var env ackEnvelope
	if err := c.call(ctx, http.MethodPut, "/api/order/cancel", token, body, &env); err != nil {
		return err
	}
	if !env.Success {
		return rejection(env.Message)
	}
	return nil
}

func (c *Client) ListUserOrders(ctx context.Context, token, userID string) ([]Order, error) {
	var env orderListEnvelope
	if err := c.call(ctx, http.MethodGet, "/api/order/user/"+url.PathEscape(userID), token, nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, rejection(env.Message)
	}
	return env.Orders, nil
}

// Login exchanges credentials for a bearer token. The token's claims carry
// the user identity; session.FromToken turns it into a session object.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var env loginEnvelope
	if err := c.call(ctx, http.MethodPost, "/api/auth/login", "", body, &env); err != nil {
		return "", err
	}
	if !env.Success {
		return "", rejection(env.Message)
	}
	return env.Token, nil
}

func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	body := map[string]string{"message": message}
	var env chatEnvelope
	if err := c.call(ctx, http.MethodPost, "/api/ai/chat", "", body, &env); err != nil {
		return "", err
	}
	if !env.Success {
		return "", rejection(env.Message)
	}
	return env.Reply, nil
}

func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (*GeocodeResult, error) {
	body := map[string]float64{"lat": lat, "lon": lon}
	var env geocodeEnvelope
	if err := c.call(ctx, http.MethodPost, "/api/location/reverse-geocode", "", body, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, rejection(env.Message)
	}
	return &GeocodeResult{Address: env.Address, DisplayName: env.DisplayName}, nil
}

func (c *Client) ListReviews(ctx context.Context, token, productID string) (*ReviewPage, error) {
	var env reviewListEnvelope
	if err := c.call(ctx, http.MethodGet, "/api/review/"+url.PathEscape(productID), token, nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, rejection(env.Message)
	}
	return &ReviewPage{Reviews: env.Reviews, CanReview: env.CanReview}, nil
}

func (c *Client) AddReview(ctx context.Context, token string, req *AddReviewRequest) error {
	var env ackEnvelope
	if err := c.call(ctx, http.MethodPost, "/api/review/add", token, req, &env); err != nil {
		return err
	}
	if !env.Success {
		return rejection(env.Message)
	}
	return nil
}

// call issues a single request and decodes the envelope into out. A non-2xx
// status with a decodable message becomes an ApiRejection carrying the
// server's wording; transport errors become NetworkFailure.
func (c *Client) call(ctx context.Context, method, path, token string, body, out interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return WrapError(KindNetworkFailure, err)
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return WrapError(KindValidationFailure, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return WrapError(KindNetworkFailure, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"error":  err.Error(),
		}).Warn("storefront API request failed")
		return WrapError(KindNetworkFailure, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return WrapError(KindNetworkFailure, err)
	}

	logrus.WithFields(logrus.Fields{
		"method":   method,
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(start).Milliseconds(),
	}).Debug("storefront API request")

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return &Error{Kind: KindNotAuthenticated, Message: serverMessage(data), Status: resp.StatusCode}
	}
	if resp.StatusCode >= 400 {
		return &Error{Kind: KindAPIRejection, Message: serverMessage(data), Status: resp.StatusCode}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return WrapError(KindAPIRejection, fmt.Errorf("malformed response: %w", err))
	}
	return nil
}

func serverMessage(data []byte) string {
	var env ackEnvelope
	if err := json.Unmarshal(data, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return "request rejected by server"
}

func rejection(message string) error {
	if message == "" {
		message = "request rejected by server"
	}
	return NewError(KindAPIRejection, message)
}
