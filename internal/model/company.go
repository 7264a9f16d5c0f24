package model

import "strings"

// EmailStatus reports what the directory service knows about a contact's email.
type EmailStatus string

const (
	EmailVerified   EmailStatus = "verified"
	EmailUnverified EmailStatus = "unverified"
	EmailUnknown    EmailStatus = ""
)

// PhoneType tags the kind of phone number a provider returned.
type PhoneType string

const (
	PhoneMobile  PhoneType = "mobile"
	PhoneDirect  PhoneType = "direct"
	PhoneWork    PhoneType = "work"
	PhoneUnknown PhoneType = "unknown"
)

// Phone is a single phone number with its provider-assigned type.
type Phone struct {
	Number string    `json:"number"`
	Type   PhoneType `json:"type"`
}

// Contact is one person at a company. Contacts are owned by their parent
// Company and are never shared across companies, even when the same person
// appears in multiple raw records.
type Contact struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	FirstName   string      `json:"first_name,omitempty"`
	LastName    string      `json:"last_name,omitempty"`
	Title       string      `json:"title,omitempty"`
	Seniority   string      `json:"seniority,omitempty"`
	LinkedinURL string      `json:"linkedin_url,omitempty"`
	Emails      []string    `json:"emails,omitempty"`
	Phones      []Phone     `json:"phones,omitempty"`
	EmailStatus EmailStatus `json:"email_status,omitempty"`

	// Tier is the priority bucket assigned by title/seniority (1 = owner).
	Tier int `json:"tier"`

	NeedsEnrichment bool `json:"needs_enrichment"`
	Enriched        bool `json:"enriched"`
}

// DisplayName returns the contact's name, falling back to first + last.
func (c Contact) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// PrimaryEmail returns the first known email, or "".
func (c Contact) PrimaryEmail() string {
	if len(c.Emails) == 0 {
		return ""
	}
	return c.Emails[0]
}

// FirstNameOrName returns the first name for outreach templating.
func (c Contact) FirstNameOrName() string {
	if c.FirstName != "" {
		return c.FirstName
	}
	parts := strings.Fields(c.Name)
	if len(parts) > 0 {
		return parts[0]
	}
	return ""
}

// Company is one organization returned by discovery, enriched in place with
// its ranked contact list. Nothing here outlives the request that built it.
type Company struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	City          string   `json:"city,omitempty"`
	State         string   `json:"state,omitempty"`
	Country       string   `json:"country,omitempty"`
	EmployeeCount int      `json:"estimated_num_employees,omitempty"`
	Industry      string   `json:"industry,omitempty"`
	WebsiteURL    string   `json:"website_url,omitempty"`
	PrimaryDomain string   `json:"primary_domain,omitempty"`
	LinkedinURL   string   `json:"linkedin_url,omitempty"`
	FoundedYear   int      `json:"founded_year,omitempty"`
	AnnualRevenue float64  `json:"annual_revenue,omitempty"`
	Contacts      []Contact `json:"contacts"`

	HasDecisionMakers bool     `json:"has_decision_makers"`
	TopDecisionMaker  *Contact `json:"top_decision_maker,omitempty"`
}

// HasWebsite reports whether the company has any web presence. Derived, never
// set independently.
func (co Company) HasWebsite() bool {
	return co.WebsiteURL != "" || co.PrimaryDomain != ""
}

// Domain returns the best-known domain or website URL for search queries.
func (co Company) Domain() string {
	if co.PrimaryDomain != "" {
		return co.PrimaryDomain
	}
	return co.WebsiteURL
}
