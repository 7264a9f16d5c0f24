package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"

	"github.com/ventapel/prospect-cli/internal/discovery"
	"github.com/ventapel/prospect-cli/internal/enrich"
	"github.com/ventapel/prospect-cli/internal/intel"
	"github.com/ventapel/prospect-cli/internal/model"
	"github.com/ventapel/prospect-cli/internal/pipeline"
	"github.com/ventapel/prospect-cli/internal/scoring"
	"github.com/ventapel/prospect-cli/pkg/anthropic"
	"github.com/ventapel/prospect-cli/pkg/apollo"
	"github.com/ventapel/prospect-cli/pkg/lusha"
	"github.com/ventapel/prospect-cli/pkg/serper"
)

// stages holds the wired pipeline components. Optional stages are nil when
// their provider credential is absent; only the directory service is
// mandatory.
type stages struct {
	Engine    *discovery.Engine
	Extractor *intel.Extractor
	Enricher  *enrich.Enricher
	Scorer    scoring.Scorer
	Pipeline  *pipeline.Pipeline
}

// initStages builds every stage from config. A missing Apollo key is a
// configuration error; the other providers degrade their stage to nil.
func initStages() (*stages, error) {
	if cfg.Apollo.Key == "" {
		return nil, eris.Wrap(model.ErrConfiguration, "apollo key not configured (set PROSPECT_APOLLO_KEY)")
	}

	vocab := discovery.DefaultVocabulary()
	if cfg.Search.VocabularyPath != "" {
		v, err := discovery.LoadVocabulary(cfg.Search.VocabularyPath)
		if err != nil {
			return nil, err
		}
		vocab = v
	}

	s := &stages{
		Engine: discovery.NewEngine(
			apollo.NewClient(cfg.Apollo.Key),
			vocab,
			cfg.Apollo.PerPage,
			cfg.Search.EmployeeRange,
		),
	}

	if cfg.Serper.Key != "" {
		s.Extractor = intel.NewExtractor(serper.NewClient(cfg.Serper.Key), intel.Options{
			Country:         cfg.Serper.Country,
			Locale:          cfg.Serper.Locale,
			DateRestriction: cfg.Serper.DateRestriction,
			RateLimit:       cfg.Serper.RateLimit,
		})
	}

	if cfg.Lusha.Key != "" {
		s.Enricher = enrich.NewEnricher(lusha.NewClient(cfg.Lusha.Key))
	}

	var primary scoring.Scorer
	if cfg.Anthropic.Key != "" {
		primary = scoring.NewClaudeScorer(
			anthropic.NewClient(cfg.Anthropic.Key),
			cfg.Anthropic.Model,
			cfg.Anthropic.MaxTokens,
			cfg.Anthropic.Temperature,
		)
	}
	s.Scorer = scoring.NewWaterfall(primary, scoring.NewFallbackScorer())

	s.Pipeline = pipeline.New(
		s.Engine,
		s.Extractor,
		s.Enricher,
		s.Scorer,
		cfg.Pipeline.MaxConcurrentCompanies,
		cfg.Pipeline.MaxConcurrentContacts,
	)

	return s, nil
}

// printJSON writes v to stdout, indented.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
