// Package client is a small Go client for the breakroom HTTP API,
// meant for admin tooling and smoke tests.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/breakroom-app/breakroom/internal/domain"
	"github.com/breakroom-app/breakroom/internal/usecase"
)

const defaultTimeout = 3 * time.Second

type Client struct {
	client     *http.Client
	cache      *cache.Cache
	baseURL    string
	userAgent  string
	adminToken string
}

func New(baseURL string, opts ...Option) *Client {
	httpClient := http.Client{
		Timeout: defaultTimeout,
	}

	c := &Client{
		client:    &httpClient,
		cache:     cache.New(10*time.Minute, 15*time.Minute),
		baseURL:   baseURL,
		userAgent: "breakroom-client/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	httpClient.Transport = c
	return c
}

type Option func(*Client)

// WithAdminToken attaches the moderation token to every request.
func WithAdminToken(token string) Option {
	return func(c *Client) {
		c.adminToken = token
	}
}

func (c *Client) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", c.userAgent)
	if c.adminToken != "" {
		req.Header.Set("X-Admin-Token", c.adminToken)
	}
	return http.DefaultTransport.RoundTrip(req)
}

// APIError carries the server's machine-readable error code.
type APIError struct {
	Status  int      `json:"-"`
	Code    string   `json:"error"`
	Reasons []string `json:"reasons,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Code)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode >= 400 {
		apiErr := APIError{Status: res.StatusCode, Code: "unknown"}
		_ = json.Unmarshal(raw, &apiErr)
		return &apiErr
	}

	if out != nil {
		return json.Unmarshal(raw, out)
	}
	return nil
}

// SearchCompanies queries the directory. Results are cached per query
// string; the directory changes rarely.
func (c *Client) SearchCompanies(ctx context.Context, q string) ([]domain.Company, error) {
	key := "companies:" + q
	if cached, ok := c.cache.Get(key); ok {
		return cached.([]domain.Company), nil
	}

	var out struct {
		Companies []domain.Company `json:"companies"`
	}
	err := c.do(ctx, http.MethodGet, "/companies?q="+url.QueryEscape(q), nil, &out)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, out.Companies, cache.DefaultExpiration)
	return out.Companies, nil
}

func (c *Client) CreateCompany(ctx context.Context, input usecase.CreateCompanyInput) (domain.Company, error) {
	var out struct {
		Company domain.Company `json:"company"`
	}
	err := c.do(ctx, http.MethodPost, "/companies", input, &out)
	if err == nil {
		c.cache.Flush()
	}
	return out.Company, err
}

func (c *Client) ListPosts(ctx context.Context, companyID, category string, sort domain.SortMode) ([]domain.PublicPost, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if sort != "" {
		q.Set("sort", string(sort))
	}
	path := "/companies/" + url.PathEscape(companyID) + "/posts"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}

	var out struct {
		Posts []domain.PublicPost `json:"posts"`
	}
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out.Posts, err
}

// Submission is the outcome of a post submission: the stored post plus
// the moderation decision the server took.
type Submission struct {
	Post     domain.PublicPost `json:"post"`
	Decision string            `json:"decision"`
	Reasons  []string          `json:"reasons,omitempty"`
}

func (c *Client) SubmitPost(ctx context.Context, companyID string, input usecase.SubmitInput) (Submission, error) {
	var out Submission
	err := c.do(ctx, http.MethodPost, "/companies/"+url.PathEscape(companyID)+"/posts", input, &out)
	return out, err
}

func (c *Client) GetPost(ctx context.Context, postID string) (domain.PublicPost, error) {
	var out struct {
		Post domain.PublicPost `json:"post"`
	}
	err := c.do(ctx, http.MethodGet, "/posts/"+url.PathEscape(postID), nil, &out)
	return out.Post, err
}

func (c *Client) ReportPost(ctx context.Context, postID, reason string) (domain.Report, error) {
	var out struct {
		Report domain.Report `json:"report"`
	}
	err := c.do(ctx, http.MethodPost, "/posts/"+url.PathEscape(postID)+"/report", map[string]string{
		"reason": reason,
	}, &out)
	return out.Report, err
}

// ListHeld fetches the moderation queue. Requires the admin token.
func (c *Client) ListHeld(ctx context.Context) ([]domain.Post, error) {
	var out struct {
		Posts []domain.Post `json:"posts"`
	}
	err := c.do(ctx, http.MethodGet, "/api/v1/admin/posts/held", nil, &out)
	return out.Posts, err
}
