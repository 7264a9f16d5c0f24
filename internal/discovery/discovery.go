// Package discovery turns a raw directory search into a prioritized
// company/contact list: two Apollo calls, loose region validation,
// per-company contact ranking, and a lexicographic company ordering.
package discovery

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/ventapel/prospect-cli/internal/model"
	"github.com/ventapel/prospect-cli/pkg/apollo"
)

// peoplePerPage is the fixed page size for the people call. One page is
// issued per invocation; the cost contract is exactly two directory calls.
const peoplePerPage = 100

// SearchFilters narrows the organization search.
type SearchFilters struct {
	City     string   `json:"city,omitempty"`
	Size     string   `json:"size,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
	Page     int      `json:"page,omitempty"`
}

// FilterSummary echoes the effective filter back to the caller.
type FilterSummary struct {
	Location   string `json:"location"`
	SizeRange  string `json:"size_range"`
	Industries string `json:"industries"`
}

// SearchResult is the ordered company list plus request metadata.
type SearchResult struct {
	Companies          []model.Company `json:"organizations"`
	Total              int             `json:"total"`
	Page               int             `json:"page"`
	PerPage            int             `json:"per_page"`
	TotalPages         int             `json:"total_pages"`
	TotalContactsFound int             `json:"total_contacts_found"`
	APICallsUsed       int             `json:"api_calls_used"`
	FilterSummary      FilterSummary   `json:"filter_summary"`
	Message            string          `json:"message,omitempty"`
}

// Engine orchestrates directory lookups and ranking.
type Engine struct {
	directory     apollo.Client
	vocab         Vocabulary
	perPage       int
	employeeRange string
}

// NewEngine creates a discovery engine. perPage and employeeRange fall back
// to the production defaults when zero-valued.
func NewEngine(directory apollo.Client, vocab Vocabulary, perPage int, employeeRange string) *Engine {
	if perPage <= 0 {
		perPage = 20
	}
	if employeeRange == "" {
		employeeRange = "11,500"
	}
	return &Engine{
		directory:     directory,
		vocab:         vocab,
		perPage:       perPage,
		employeeRange: employeeRange,
	}
}

// Search runs the two-call discovery flow. Zero matches is a successful,
// empty result; a directory failure on either call aborts the stage.
func (e *Engine) Search(ctx context.Context, filters SearchFilters) (*SearchResult, error) {
	log := zap.L().With(zap.String("stage", "discovery"))

	page := filters.Page
	if page <= 0 {
		page = 1
	}

	location := fmt.Sprintf("%s, %s", e.vocab.Region, e.vocab.Country)
	if filters.City != "" {
		location = fmt.Sprintf("%s, %s, %s", filters.City, e.vocab.Region, e.vocab.Country)
	}

	sizeRange := filters.Size
	if sizeRange == "" {
		sizeRange = e.employeeRange
	}

	keywords := filters.Keywords
	if len(keywords) == 0 {
		keywords = e.vocab.Keywords
	}

	summary := FilterSummary{
		Location:   location,
		SizeRange:  sizeRange,
		Industries: strings.Join(keywords, ", "),
	}

	orgResp, err := e.directory.SearchOrganizations(ctx, apollo.OrganizationSearchRequest{
		Page:                           page,
		PerPage:                        e.perPage,
		OrganizationLocations:          []string{location},
		OrganizationNumEmployeesRanges: []string{sizeRange},
		QOrganizationKeywordTags:       keywords,
	})
	if err != nil {
		return nil, eris.Wrap(err, "discovery: organization search")
	}

	log.Info("organization search complete",
		zap.Int("organizations", len(orgResp.Organizations)),
		zap.Int("total_entries", orgResp.Pagination.TotalEntries),
	)

	if len(orgResp.Organizations) == 0 {
		return &SearchResult{
			Companies:     []model.Company{},
			Page:          page,
			TotalPages:    1,
			PerPage:       e.perPage,
			APICallsUsed:  1,
			FilterSummary: summary,
			Message:       "Nenhuma empresa encontrada com esses filtros",
		}, nil
	}

	// Loose region validation; the upstream service is trusted for finer
	// geography.
	var orgs []apollo.Organization
	for _, org := range orgResp.Organizations {
		if e.matchesRegion(org) {
			orgs = append(orgs, org)
		}
	}
	log.Info("region filter applied", zap.Int("kept", len(orgs)))

	orgIDs := make([]string, 0, len(orgs))
	for _, org := range orgs {
		if org.ID != "" {
			orgIDs = append(orgIDs, org.ID)
		}
	}

	if len(orgIDs) == 0 {
		return &SearchResult{
			Companies:     []model.Company{},
			Page:          page,
			TotalPages:    1,
			PerPage:       e.perPage,
			APICallsUsed:  1,
			FilterSummary: summary,
			Message:       fmt.Sprintf("Nenhuma empresa de %s encontrada", e.vocab.RegionAlias),
		}, nil
	}

	peopleResp, err := e.directory.SearchPeople(ctx, apollo.PeopleSearchRequest{
		Page:              1,
		PerPage:           peoplePerPage,
		OrganizationIDs:   orgIDs,
		PersonSeniorities: e.vocab.Seniorities,
		PersonTitles:      e.vocab.Titles,
	})
	if err != nil {
		return nil, eris.Wrap(err, "discovery: people search")
	}

	log.Info("people search complete", zap.Int("people", len(peopleResp.People)))

	companies := make([]model.Company, 0, len(orgs))
	for _, org := range orgs {
		company := toCompany(org)
		company.Contacts = RankContacts(selectPeople(peopleResp.People, org))
		company.HasDecisionMakers = len(company.Contacts) > 0
		if len(company.Contacts) > 0 {
			top := company.Contacts[0]
			company.TopDecisionMaker = &top
		}
		companies = append(companies, company)
	}

	rankCompanies(companies)

	total := orgResp.Pagination.TotalEntries
	if total == 0 {
		total = len(companies)
	}
	totalPages := orgResp.Pagination.TotalPages
	if totalPages == 0 {
		totalPages = 1
	}
	perPage := orgResp.Pagination.PerPage
	if perPage == 0 {
		perPage = e.perPage
	}

	return &SearchResult{
		Companies:          companies,
		Total:              total,
		Page:               page,
		PerPage:            perPage,
		TotalPages:         totalPages,
		TotalContactsFound: len(peopleResp.People),
		APICallsUsed:       2,
		FilterSummary:      summary,
	}, nil
}

// matchesRegion keeps organizations whose country is empty or matches the
// target, and whose state or city points at the target region when present.
func (e *Engine) matchesRegion(org apollo.Organization) bool {
	if org.Country != "" && !strings.EqualFold(org.Country, e.vocab.Country) {
		return false
	}
	if org.State == "" && org.City == "" {
		return true
	}
	if strings.Contains(org.State, e.vocab.Region) || strings.Contains(org.State, e.vocab.RegionAlias) {
		return true
	}
	for _, city := range e.vocab.Cities {
		if strings.Contains(org.City, city) {
			return true
		}
	}
	return false
}

// selectPeople picks the people records belonging to one organization, by
// organization ID or by embedded organization name.
func selectPeople(people []apollo.Person, org apollo.Organization) []apollo.Person {
	var matched []apollo.Person
	for _, p := range people {
		switch {
		case p.OrganizationID != "" && p.OrganizationID == org.ID:
		case p.Organization != nil && p.Organization.ID == org.ID:
		case p.Organization != nil && p.Organization.Name == org.Name:
		default:
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// rankCompanies sorts with a strict lexicographic multi-key order: website
// presence, any contact, an owner/CEO-titled contact, then employee count
// descending.
func rankCompanies(companies []model.Company) {
	sort.SliceStable(companies, func(i, j int) bool {
		a, b := companies[i], companies[j]

		if a.HasWebsite() != b.HasWebsite() {
			return a.HasWebsite()
		}
		if a.HasDecisionMakers != b.HasDecisionMakers {
			return a.HasDecisionMakers
		}
		aOwner, bOwner := hasOwnerContact(a), hasOwnerContact(b)
		if aOwner != bOwner {
			return aOwner
		}
		return a.EmployeeCount > b.EmployeeCount
	})
}

func hasOwnerContact(c model.Company) bool {
	for _, contact := range c.Contacts {
		if IsOwnerTitle(contact.Title) {
			return true
		}
	}
	return false
}

func toCompany(org apollo.Organization) model.Company {
	return model.Company{
		ID:            org.ID,
		Name:          org.Name,
		City:          org.City,
		State:         org.State,
		Country:       org.Country,
		EmployeeCount: org.NumEmployees,
		Industry:      org.Industry,
		WebsiteURL:    org.WebsiteURL,
		PrimaryDomain: org.PrimaryDomain,
		LinkedinURL:   org.LinkedinURL,
		FoundedYear:   org.FoundedYear,
		AnnualRevenue: org.AnnualRevenue,
		Contacts:      []model.Contact{},
	}
}
