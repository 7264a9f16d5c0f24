package enrich

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventapel/prospect-cli/internal/model"
	"github.com/ventapel/prospect-cli/pkg/lusha"
)

type mockProvider struct {
	resp    *lusha.PersonLookupResponse
	err     error
	calls   int
	lastReq lusha.PersonLookupRequest
}

func (m *mockProvider) LookupPerson(_ context.Context, req lusha.PersonLookupRequest) (*lusha.PersonLookupResponse, error) {
	m.calls++
	m.lastReq = req
	return m.resp, m.err
}

func needyContact() model.Contact {
	return model.Contact{
		ID:              "c-1",
		Name:            "João Silva",
		Title:           "Diretor",
		NeedsEnrichment: true,
	}
}

func TestEnrichSkipsVerifiedContact(t *testing.T) {
	provider := &mockProvider{}
	enricher := NewEnricher(provider)

	contact := model.Contact{
		ID:          "c-1",
		Name:        "Maria Souza",
		Emails:      []string{"maria@acme.com"},
		EmailStatus: model.EmailVerified,
	}

	result, err := enricher.Enrich(context.Background(), contact, "Acme")
	require.NoError(t, err)

	assert.Equal(t, 0, provider.calls)
	assert.True(t, result.Success)
	assert.False(t, result.CreditUsed)
	assert.Equal(t, "contato já possui email verificado", result.Message)
	assert.False(t, result.Contact.Enriched)
}

func TestEnrichFound(t *testing.T) {
	payload := `{"data": {
		"phoneNumbers": [
			{"number": "4799990000", "internationalNumber": "+554799990000", "phoneType": "mobile"},
			{"number": "4733330000", "phoneType": "work"}
		],
		"emailAddresses": [{"email": "joao@acme.com.br"}]
	}}`
	provider := &mockProvider{
		resp: &lusha.PersonLookupResponse{StatusCode: 200, Raw: json.RawMessage(payload)},
	}
	enricher := NewEnricher(provider)

	result, err := enricher.Enrich(context.Background(), needyContact(), "Acme")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.True(t, result.CreditUsed)
	assert.Equal(t, []string{"joao@acme.com.br"}, result.Data.Emails)
	assert.Equal(t, "joao@acme.com.br", result.Data.PrimaryEmail)
	require.Len(t, result.Data.Phones, 2)
	assert.Equal(t, "+554799990000", result.Data.Phones[0].Number)
	assert.Equal(t, "+554799990000", result.Data.PrimaryPhone)
	assert.Equal(t, PhoneSummary{Total: 2, Mobile: 1, Work: 1}, result.Data.PhoneSummary)

	assert.True(t, result.Contact.Enriched)
	assert.False(t, result.Contact.NeedsEnrichment)
	assert.Equal(t, []string{"joao@acme.com.br"}, result.Contact.Emails)
}

func TestEnrichNotFound(t *testing.T) {
	provider := &mockProvider{
		resp: &lusha.PersonLookupResponse{StatusCode: 404, NotFound: true},
	}
	enricher := NewEnricher(provider)

	result, err := enricher.Enrich(context.Background(), needyContact(), "Acme")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.True(t, result.CreditUsed)
	assert.Equal(t, "Pessoa não encontrada no Lusha", result.Message)
	assert.Empty(t, result.Data.Emails)
	assert.Empty(t, result.Data.Phones)

	// Not found leaves the contact unenriched even though the credit is gone.
	assert.False(t, result.Contact.Enriched)
	assert.True(t, result.Contact.NeedsEnrichment)
}

func TestEnrichNoRecognizableRecord(t *testing.T) {
	provider := &mockProvider{
		resp: &lusha.PersonLookupResponse{StatusCode: 200, Raw: json.RawMessage(`{"requestId": "abc"}`)},
	}
	enricher := NewEnricher(provider)

	result, err := enricher.Enrich(context.Background(), needyContact(), "Acme")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.True(t, result.CreditUsed)
	assert.Equal(t, "Contato não encontrado", result.Message)
	assert.False(t, result.Contact.Enriched)
}

func TestEnrichProviderFailure(t *testing.T) {
	provider := &mockProvider{err: eris.New("lusha: unexpected status 500")}
	enricher := NewEnricher(provider)

	result, err := enricher.Enrich(context.Background(), needyContact(), "Acme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lookup person")

	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.False(t, result.CreditUsed)
}

func TestEnrichRequestKeying(t *testing.T) {
	t.Run("prefers_linkedin", func(t *testing.T) {
		provider := &mockProvider{resp: &lusha.PersonLookupResponse{NotFound: true}}
		enricher := NewEnricher(provider)

		contact := needyContact()
		contact.LinkedinURL = "https://linkedin.com/in/joao"

		_, err := enricher.Enrich(context.Background(), contact, "Acme")
		require.NoError(t, err)

		assert.Equal(t, "https://linkedin.com/in/joao", provider.lastReq.LinkedinURL)
		assert.Empty(t, provider.lastReq.FirstName)
		assert.Equal(t, "Acme", provider.lastReq.CompanyName)
	})

	t.Run("splits_name", func(t *testing.T) {
		provider := &mockProvider{resp: &lusha.PersonLookupResponse{NotFound: true}}
		enricher := NewEnricher(provider)

		contact := needyContact()
		contact.Name = "João da Silva Pereira"

		_, err := enricher.Enrich(context.Background(), contact, "Acme")
		require.NoError(t, err)

		assert.Equal(t, "João", provider.lastReq.FirstName)
		assert.Equal(t, "da Silva Pereira", provider.lastReq.LastName)
	})
}

func TestMergeContactDedup(t *testing.T) {
	contact := model.Contact{
		Emails: []string{"a@x.com"},
		Phones: []model.Phone{{Number: "+551"}},
	}
	data := EnrichedData{
		Emails: []string{"a@x.com", "b@x.com"},
		Phones: []model.Phone{{Number: "+551"}, {Number: "+552", Type: model.PhoneMobile}},
	}

	merged := mergeContact(contact, data)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, merged.Emails)
	require.Len(t, merged.Phones, 2)
	assert.Equal(t, "+552", merged.Phones[1].Number)
	assert.True(t, merged.Enriched)
	assert.False(t, merged.NeedsEnrichment)
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		in          string
		first, last string
	}{
		{"João Silva", "João", "Silva"},
		{"Maria", "Maria", ""},
		{"Ana de Souza Lima", "Ana", "de Souza Lima"},
		{"", "", ""},
	}
	for _, tt := range tests {
		first, last := splitName(tt.in)
		assert.Equal(t, tt.first, first)
		assert.Equal(t, tt.last, last)
	}
}
