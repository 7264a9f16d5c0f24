// Package lusha is a client for the Lusha v2 person lookup endpoint.
//
// Lusha charges one credit per lookup attempt, found or not, and its response
// nesting is not stable across call styles. The client therefore returns the
// raw decoded payload and leaves record extraction to the caller.
package lusha

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://api.lusha.com"

// defaultTimeout bounds each lookup call.
const defaultTimeout = 20 * time.Second

// Client performs person lookups against the Lusha API.
type Client interface {
	LookupPerson(ctx context.Context, req PersonLookupRequest) (*PersonLookupResponse, error)
}

// PersonLookupRequest identifies the person to look up. LinkedinURL is
// preferred; otherwise first/last name plus company name are used.
type PersonLookupRequest struct {
	LinkedinURL string
	FirstName   string
	LastName    string
	CompanyName string
}

// PersonLookupResponse carries the HTTP status and the raw JSON payload.
// NotFound is set for an explicit 404 or an empty body; it is not an error.
type PersonLookupResponse struct {
	StatusCode int
	NotFound   bool
	Raw        json.RawMessage
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a Lusha API client authenticated with apiKey.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) LookupPerson(ctx context.Context, req PersonLookupRequest) (*PersonLookupResponse, error) {
	params := url.Values{}
	params.Set("revealPhones", "true")
	params.Set("revealEmails", "true")
	if req.LinkedinURL != "" {
		params.Set("linkedinUrl", req.LinkedinURL)
	}
	if req.FirstName != "" {
		params.Set("firstName", req.FirstName)
	}
	if req.LastName != "" {
		params.Set("lastName", req.LastName)
	}
	if req.CompanyName != "" {
		params.Set("companyName", req.CompanyName)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v2/person?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "lusha: create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api_key", c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, eris.Wrap(err, "lusha: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "lusha: read response")
	}

	// 5xx is a transport-level failure; 4xx (404 especially) is a billable
	// answer the caller must interpret.
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, eris.Errorf("lusha: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	out := &PersonLookupResponse{
		StatusCode: resp.StatusCode,
		Raw:        json.RawMessage(body),
	}
	if resp.StatusCode == http.StatusNotFound || len(body) == 0 {
		out.NotFound = true
	}
	return out, nil
}
