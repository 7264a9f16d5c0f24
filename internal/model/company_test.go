package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactDisplayName(t *testing.T) {
	tests := []struct {
		name    string
		contact Contact
		want    string
	}{
		{"full_name_set", Contact{Name: "Maria Souza"}, "Maria Souza"},
		{"from_parts", Contact{FirstName: "João", LastName: "Silva"}, "João Silva"},
		{"first_only", Contact{FirstName: "Ana"}, "Ana"},
		{"empty", Contact{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.contact.DisplayName())
		})
	}
}

func TestContactPrimaryEmail(t *testing.T) {
	assert.Empty(t, Contact{}.PrimaryEmail())
	assert.Equal(t, "a@x.com", Contact{Emails: []string{"a@x.com", "b@x.com"}}.PrimaryEmail())
}

func TestContactFirstNameOrName(t *testing.T) {
	assert.Equal(t, "Maria", Contact{FirstName: "Maria", Name: "Maria Souza"}.FirstNameOrName())
	assert.Equal(t, "João", Contact{Name: "João da Silva"}.FirstNameOrName())
	assert.Empty(t, Contact{}.FirstNameOrName())
}

func TestCompanyHasWebsite(t *testing.T) {
	assert.False(t, Company{}.HasWebsite())
	assert.True(t, Company{WebsiteURL: "https://x.com"}.HasWebsite())
	assert.True(t, Company{PrimaryDomain: "x.com"}.HasWebsite())
}

func TestCompanyDomain(t *testing.T) {
	assert.Equal(t, "x.com", Company{PrimaryDomain: "x.com", WebsiteURL: "https://y.com"}.Domain())
	assert.Equal(t, "https://y.com", Company{WebsiteURL: "https://y.com"}.Domain())
	assert.Empty(t, Company{}.Domain())
}
