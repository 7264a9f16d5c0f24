// Package apollo is a thin client for the Apollo.io organization and people
// search endpoints.
package apollo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://api.apollo.io/api/v1"

// defaultTimeout bounds each search call. No retries are performed.
const defaultTimeout = 30 * time.Second

// Client performs directory searches against the Apollo API.
type Client interface {
	SearchOrganizations(ctx context.Context, req OrganizationSearchRequest) (*OrganizationSearchResponse, error)
	SearchPeople(ctx context.Context, req PeopleSearchRequest) (*PeopleSearchResponse, error)
}

// OrganizationSearchRequest is the body for POST /mixed_companies/search.
type OrganizationSearchRequest struct {
	Page                           int      `json:"page,omitempty"`
	PerPage                        int      `json:"per_page,omitempty"`
	OrganizationLocations          []string `json:"organization_locations,omitempty"`
	OrganizationNumEmployeesRanges []string `json:"organization_num_employees_ranges,omitempty"`
	QOrganizationKeywordTags       []string `json:"q_organization_keyword_tags,omitempty"`
}

// Organization is a single company record in a search response.
type Organization struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	Country       string  `json:"country"`
	Industry      string  `json:"industry"`
	WebsiteURL    string  `json:"website_url"`
	PrimaryDomain string  `json:"primary_domain"`
	LinkedinURL   string  `json:"linkedin_url"`
	FoundedYear   int     `json:"founded_year"`
	AnnualRevenue float64 `json:"annual_revenue"`
	NumEmployees  int     `json:"estimated_num_employees"`
}

// Pagination is the paging metadata Apollo attaches to search responses.
type Pagination struct {
	Page         int `json:"page"`
	PerPage      int `json:"per_page"`
	TotalEntries int `json:"total_entries"`
	TotalPages   int `json:"total_pages"`
}

// OrganizationSearchResponse is the response from /mixed_companies/search.
type OrganizationSearchResponse struct {
	Organizations []Organization `json:"organizations"`
	Pagination    Pagination     `json:"pagination"`
}

// PeopleSearchRequest is the body for POST /mixed_people/search.
type PeopleSearchRequest struct {
	Page              int      `json:"page,omitempty"`
	PerPage           int      `json:"per_page,omitempty"`
	OrganizationIDs   []string `json:"organization_ids,omitempty"`
	PersonSeniorities []string `json:"person_seniorities,omitempty"`
	PersonTitles      []string `json:"person_titles,omitempty"`
}

// PersonEmail is one entry of a person's nested email collection.
type PersonEmail struct {
	Email       string `json:"email"`
	EmailStatus string `json:"email_status"`
}

// PersonPhone is one entry of a person's nested phone collection.
type PersonPhone struct {
	RawNumber       string `json:"raw_number"`
	SanitizedNumber string `json:"sanitized_number"`
	Type            string `json:"type_cd"`
}

// PersonOrganization is the embedded organization stub on a person record.
type PersonOrganization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Person is a single people record in a search response. Apollo sometimes
// provides contact details flat, sometimes nested, so both forms are kept.
type Person struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	FirstName      string              `json:"first_name"`
	LastName       string              `json:"last_name"`
	Title          string              `json:"title"`
	Seniority      string              `json:"seniority"`
	LinkedinURL    string              `json:"linkedin_url"`
	Email          string              `json:"email"`
	EmailStatus    string              `json:"email_status"`
	PhoneNumbers   []PersonPhone       `json:"phone_numbers"`
	PersonalEmails []string            `json:"personal_emails"`
	ContactEmails  []PersonEmail       `json:"contact_emails"`
	OrganizationID string              `json:"organization_id"`
	Organization   *PersonOrganization `json:"organization,omitempty"`
}

// PeopleSearchResponse is the response from /mixed_people/search.
type PeopleSearchResponse struct {
	People     []Person   `json:"people"`
	Pagination Pagination `json:"pagination"`
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

// NewClient creates an Apollo API client authenticated with apiKey.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) SearchOrganizations(ctx context.Context, req OrganizationSearchRequest) (*OrganizationSearchResponse, error) {
	var resp OrganizationSearchResponse
	if err := c.post(ctx, "/mixed_companies/search", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *httpClient) SearchPeople(ctx context.Context, req PeopleSearchRequest) (*PeopleSearchResponse, error) {
	var resp PeopleSearchResponse
	if err := c.post(ctx, "/mixed_people/search", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *httpClient) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return eris.Wrap(err, "apollo: marshal request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return eris.Wrap(err, "apollo: create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return eris.Wrap(err, "apollo: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrap(err, "apollo: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return eris.Errorf("apollo: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return eris.Wrap(err, "apollo: unmarshal response")
	}

	return nil
}
