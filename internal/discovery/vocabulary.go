package discovery

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Vocabulary is the search vocabulary the engine queries the directory
// service with: target region, default industry keywords, and the
// seniority/title allow-list for people search. The literals in
// DefaultVocabulary are the hand-tuned production set; a YAML file can
// replace them wholesale for other territories.
type Vocabulary struct {
	Region      string   `yaml:"region"`
	RegionAlias string   `yaml:"region_alias"`
	Country     string   `yaml:"country"`
	Cities      []string `yaml:"cities"`
	Keywords    []string `yaml:"keywords"`
	Seniorities []string `yaml:"seniorities"`
	Titles      []string `yaml:"titles"`
}

// DefaultVocabulary returns the built-in Santa Catarina vocabulary.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Region:      "Santa Catarina",
		RegionAlias: "SC",
		Country:     "Brazil",
		Cities:      []string{"Balneário", "Itajaí", "Joinville", "Blumenau"},
		Keywords: []string{
			"ecommerce", "e-commerce", "loja online",
			"distributor", "distribuidora", "distribuição",
			"fulfillment", "3pl", "logistics",
			"manufacturer", "fabricante", "indústria",
			"autopeças", "auto parts",
			"móveis", "furniture",
			"embalagens", "packaging",
			"alimentos", "food",
		},
		Seniorities: []string{"owner", "c_suite", "vp", "director", "manager", "senior", "entry"},
		Titles: []string{
			// Owners and CEOs first.
			"Owner", "Co-owner", "Proprietário", "Sócio",
			"CEO", "Founder", "Co-founder",
			"Diretor Geral", "Diretor Executivo",

			// Managers.
			"Gerente de Operações", "Operations Manager",
			"Gerente de Logística", "Logistics Manager",
			"Gerente de Qualidade", "Quality Manager",
			"Gerente de Produção", "Production Manager",
			"Gerente Geral", "General Manager",
			"Gerente Comercial", "Commercial Manager",
			"Gerente de Compras", "Purchasing Manager",

			// Coordinators and supervisors.
			"Coordenador de Logística", "Logistics Coordinator",
			"Coordenador de Operações", "Operations Coordinator",
			"Supervisor de Produção", "Production Supervisor",
			"Supervisor de Qualidade", "Quality Supervisor",
			"Coordenador de Expedição", "Shipping Coordinator",
		},
	}
}

// LoadVocabulary reads a vocabulary override from a YAML file. Fields left
// empty in the file keep their defaults.
func LoadVocabulary(path string) (Vocabulary, error) {
	vocab := DefaultVocabulary()

	data, err := os.ReadFile(path)
	if err != nil {
		return vocab, eris.Wrapf(err, "discovery: read vocabulary %s", path)
	}

	var override Vocabulary
	if err := yaml.Unmarshal(data, &override); err != nil {
		return vocab, eris.Wrap(err, "discovery: parse vocabulary")
	}

	if override.Region != "" {
		vocab.Region = override.Region
	}
	if override.RegionAlias != "" {
		vocab.RegionAlias = override.RegionAlias
	}
	if override.Country != "" {
		vocab.Country = override.Country
	}
	if len(override.Cities) > 0 {
		vocab.Cities = override.Cities
	}
	if len(override.Keywords) > 0 {
		vocab.Keywords = override.Keywords
	}
	if len(override.Seniorities) > 0 {
		vocab.Seniorities = override.Seniorities
	}
	if len(override.Titles) > 0 {
		vocab.Titles = override.Titles
	}

	return vocab, nil
}
