// Package enrich implements the cost-gated secondary lookup for contacts
// missing a verified email. Lusha charges per attempt, so the gate in front
// of the call is the cost-control invariant: a contact that already has a
// verified email never reaches the provider.
package enrich

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/ventapel/prospect-cli/internal/model"
	"github.com/ventapel/prospect-cli/pkg/lusha"
)

// PhoneSummary counts enriched phone numbers by type.
type PhoneSummary struct {
	Total  int `json:"total"`
	Mobile int `json:"mobile"`
	Direct int `json:"direct"`
	Work   int `json:"work"`
}

// EnrichedData is the normalized provider payload.
type EnrichedData struct {
	Emails       []string      `json:"emails"`
	Phones       []model.Phone `json:"phones"`
	PrimaryEmail string        `json:"primary_email,omitempty"`
	PrimaryPhone string        `json:"primary_phone,omitempty"`
	PhoneSummary PhoneSummary  `json:"phone_summary"`
}

// Result is the outcome of one enrichment attempt. CreditUsed follows the
// provider's billing: true for any answered lookup, found or not; false only
// when the call itself failed before the provider answered.
type Result struct {
	Success    bool         `json:"success"`
	ContactID  string       `json:"contact_id,omitempty"`
	Data       EnrichedData `json:"enriched_data"`
	CreditUsed bool         `json:"lusha_credit_used"`
	Message    string       `json:"message,omitempty"`

	// Contact is the input contact with any found data merged in.
	Contact model.Contact `json:"contact"`
}

// Enricher runs the enrichment waterfall for individual contacts.
type Enricher struct {
	provider lusha.Client
}

// NewEnricher creates an Enricher backed by the given provider.
func NewEnricher(provider lusha.Client) *Enricher {
	return &Enricher{provider: provider}
}

// Enrich looks up missing contact details for one contact. It is a no-op
// when the contact does not need enrichment. A not-found answer is a
// successful result with empty data and the credit consumed; a transport or
// provider failure returns an error with the credit not consumed.
func (e *Enricher) Enrich(ctx context.Context, contact model.Contact, companyName string) (*Result, error) {
	log := zap.L().With(
		zap.String("stage", "enrich"),
		zap.String("contact", contact.DisplayName()),
	)

	result := &Result{
		ContactID: contact.ID,
		Contact:   contact,
		Data: EnrichedData{
			Emails: []string{},
			Phones: []model.Phone{},
		},
	}

	if !contact.NeedsEnrichment {
		result.Success = true
		result.Message = "contato já possui email verificado"
		return result, nil
	}

	req := lusha.PersonLookupRequest{CompanyName: companyName}
	if contact.LinkedinURL != "" {
		req.LinkedinURL = contact.LinkedinURL
	} else {
		first, last := splitName(contact.DisplayName())
		req.FirstName = first
		req.LastName = last
	}

	resp, err := e.provider.LookupPerson(ctx, req)
	if err != nil {
		result.Message = "falha na consulta Lusha"
		return result, eris.Wrap(err, "enrich: lookup person")
	}

	result.CreditUsed = true

	if resp.NotFound {
		log.Info("person not found", zap.Int("status", resp.StatusCode))
		result.Success = true
		result.Message = "Pessoa não encontrada no Lusha"
		return result, nil
	}

	record := extractPersonRecord(resp.Raw)
	if record == nil {
		log.Info("no person data in response", zap.Int("status", resp.StatusCode))
		result.Success = true
		result.Message = "Contato não encontrado"
		return result, nil
	}

	for _, ph := range record.PhoneNumbers {
		number := ph.InternationalNumber
		if number == "" {
			number = ph.Number
		}
		if number == "" {
			continue
		}
		phone := model.Phone{Number: number, Type: phoneType(ph.PhoneType)}
		result.Data.Phones = append(result.Data.Phones, phone)
		switch phone.Type {
		case model.PhoneMobile:
			result.Data.PhoneSummary.Mobile++
		case model.PhoneDirect:
			result.Data.PhoneSummary.Direct++
		case model.PhoneWork:
			result.Data.PhoneSummary.Work++
		}
	}
	result.Data.PhoneSummary.Total = len(result.Data.Phones)

	for _, em := range record.EmailAddresses {
		if em.Email != "" {
			result.Data.Emails = append(result.Data.Emails, em.Email)
		}
	}

	if len(result.Data.Emails) > 0 {
		result.Data.PrimaryEmail = result.Data.Emails[0]
	}
	if len(result.Data.Phones) > 0 {
		result.Data.PrimaryPhone = result.Data.Phones[0].Number
	}

	result.Success = true
	result.Contact = mergeContact(contact, result.Data)

	log.Info("enrichment complete",
		zap.Int("emails", len(result.Data.Emails)),
		zap.Int("phones", len(result.Data.Phones)),
	)

	return result, nil
}

// mergeContact folds enriched data into the contact and marks it enriched.
func mergeContact(contact model.Contact, data EnrichedData) model.Contact {
	seen := make(map[string]bool, len(contact.Emails))
	for _, e := range contact.Emails {
		seen[e] = true
	}
	for _, e := range data.Emails {
		if !seen[e] {
			seen[e] = true
			contact.Emails = append(contact.Emails, e)
		}
	}

	known := make(map[string]bool, len(contact.Phones))
	for _, p := range contact.Phones {
		known[p.Number] = true
	}
	for _, p := range data.Phones {
		if !known[p.Number] {
			known[p.Number] = true
			contact.Phones = append(contact.Phones, p)
		}
	}

	contact.Enriched = true
	contact.NeedsEnrichment = len(contact.Emails) == 0
	return contact
}

func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	first = parts[0]
	if len(parts) > 1 {
		last = strings.Join(parts[1:], " ")
	}
	return first, last
}

func phoneType(raw string) model.PhoneType {
	switch strings.ToLower(raw) {
	case "mobile":
		return model.PhoneMobile
	case "direct":
		return model.PhoneDirect
	case "work":
		return model.PhoneWork
	default:
		return model.PhoneUnknown
	}
}
