package discovery

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/ventapel/prospect-cli/internal/model"
	"github.com/ventapel/prospect-cli/pkg/apollo"
)

// maxContactsPerCompany caps the ranked contact list.
const maxContactsPerCompany = 8

// noTitleTier sorts contacts without a title after everything else.
const noTitleTier = 999

// folder performs Unicode case folding so Portuguese titles compare
// predictably ("Proprietário" vs "proprietário").
var folder = cases.Fold()

// tierRule maps title substrings to a priority tier. Rules are evaluated in
// order; the first match wins. The terms and tiers are the tuned production
// contract, not values to adjust.
type tierRule struct {
	tier  int
	terms []string
}

var tierRules = []tierRule{
	{1, []string{"owner", "proprietário", "sócio", "ceo", "founder"}},
	{2, []string{"diretor", "director"}},
	{3, []string{"gerente", "manager"}},
	{4, []string{"coordenador", "coordinator"}},
	{5, []string{"supervisor"}},
}

// ContactTier assigns the priority tier for a title/seniority pair.
// Seniority exactly "owner" is tier 1 regardless of title.
func ContactTier(title, seniority string) int {
	if folder.String(strings.TrimSpace(seniority)) == "owner" {
		return 1
	}
	if title == "" {
		return noTitleTier
	}
	folded := folder.String(title)
	for _, rule := range tierRules {
		for _, term := range rule.terms {
			if strings.Contains(folded, term) {
				return rule.tier
			}
		}
	}
	return 10
}

// IsOwnerTitle reports whether a title marks a top decision maker for the
// company-ranking keys and the outreach templates.
func IsOwnerTitle(title string) bool {
	folded := folder.String(title)
	return strings.Contains(folded, "owner") ||
		strings.Contains(folded, "ceo") ||
		strings.Contains(folded, "proprietário")
}

// RankContacts normalizes raw people records into Contacts, assigns tiers,
// stable-sorts ascending by tier, and truncates to the top
// maxContactsPerCompany. Ties keep the source order. A nil or empty input
// yields an empty list.
func RankContacts(people []apollo.Person) []model.Contact {
	contacts := make([]model.Contact, 0, len(people))
	for _, p := range people {
		contacts = append(contacts, normalizeContact(p))
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].Tier < contacts[j].Tier
	})

	if len(contacts) > maxContactsPerCompany {
		contacts = contacts[:maxContactsPerCompany]
	}
	return contacts
}

// normalizeContact converts one directory person record into the Contact
// shape, pulling every email and phone the record carries in any of its
// flat or nested collections.
func normalizeContact(p apollo.Person) model.Contact {
	c := model.Contact{
		ID:          p.ID,
		Name:        p.Name,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Title:       p.Title,
		Seniority:   p.Seniority,
		LinkedinURL: p.LinkedinURL,
		EmailStatus: model.EmailStatus(p.EmailStatus),
		Tier:        ContactTier(p.Title, p.Seniority),
	}
	if c.Name == "" {
		c.Name = c.DisplayName()
	}

	seen := make(map[string]bool)
	addEmail := func(email string) {
		if email == "" || seen[email] {
			return
		}
		seen[email] = true
		c.Emails = append(c.Emails, email)
	}

	addEmail(p.Email)
	for _, e := range p.ContactEmails {
		addEmail(e.Email)
	}
	for _, e := range p.PersonalEmails {
		addEmail(e)
	}

	for _, ph := range p.PhoneNumbers {
		number := ph.SanitizedNumber
		if number == "" {
			number = ph.RawNumber
		}
		if number == "" {
			continue
		}
		c.Phones = append(c.Phones, model.Phone{
			Number: number,
			Type:   phoneType(ph.Type),
		})
	}

	c.NeedsEnrichment = len(c.Emails) == 0 || c.EmailStatus != model.EmailVerified
	return c
}

func phoneType(raw string) model.PhoneType {
	switch strings.ToLower(raw) {
	case "mobile":
		return model.PhoneMobile
	case "direct", "direct_dial":
		return model.PhoneDirect
	case "work", "work_hq", "office":
		return model.PhoneWork
	default:
		return model.PhoneUnknown
	}
}
