package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultVocabulary(t *testing.T) {
	vocab := DefaultVocabulary()

	assert.Equal(t, "Santa Catarina", vocab.Region)
	assert.Equal(t, "SC", vocab.RegionAlias)
	assert.Equal(t, "Brazil", vocab.Country)
	assert.Contains(t, vocab.Cities, "Itajaí")
	assert.Contains(t, vocab.Keywords, "embalagens")
	assert.Contains(t, vocab.Seniorities, "owner")
	assert.Contains(t, vocab.Titles, "Proprietário")
}

func TestLoadVocabularyOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	err := os.WriteFile(path, []byte(`
region: Paraná
region_alias: PR
cities:
  - Curitiba
  - Londrina
keywords:
  - madeira
`), 0o600)
	require.NoError(t, err)

	vocab, err := LoadVocabulary(path)
	require.NoError(t, err)

	assert.Equal(t, "Paraná", vocab.Region)
	assert.Equal(t, "PR", vocab.RegionAlias)
	assert.Equal(t, []string{"Curitiba", "Londrina"}, vocab.Cities)
	assert.Equal(t, []string{"madeira"}, vocab.Keywords)

	// Untouched fields keep the defaults.
	assert.Equal(t, "Brazil", vocab.Country)
	assert.Equal(t, DefaultVocabulary().Seniorities, vocab.Seniorities)
	assert.Equal(t, DefaultVocabulary().Titles, vocab.Titles)
}

func TestLoadVocabularyMissingFile(t *testing.T) {
	_, err := LoadVocabulary(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read vocabulary")
}

func TestLoadVocabularyBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("region: [unclosed"), 0o600))

	_, err := LoadVocabulary(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse vocabulary")
}
