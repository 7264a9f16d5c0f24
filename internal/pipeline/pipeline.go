// Package pipeline runs the full prospecting flow: discovery, per-company
// intelligence, cost-gated enrichment of top decision makers, and lead
// scoring. Each invocation is request-scoped and stateless; concurrent
// branches write only into their own pre-allocated slots.
package pipeline

import (
	"context"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ventapel/prospect-cli/internal/discovery"
	"github.com/ventapel/prospect-cli/internal/enrich"
	"github.com/ventapel/prospect-cli/internal/intel"
	"github.com/ventapel/prospect-cli/internal/model"
	"github.com/ventapel/prospect-cli/internal/scoring"
)

// Options tunes one pipeline run.
type Options struct {
	// Limit caps how many discovered companies continue past discovery.
	// Zero means all.
	Limit int
	// SkipIntel disables signal extraction; scoring then runs without a
	// bundle.
	SkipIntel bool
	// SkipEnrich disables the secondary-provider lookups.
	SkipEnrich bool
}

// CompanyResult is the per-company output slot.
type CompanyResult struct {
	Company    model.Company       `json:"company"`
	Intel      *model.SignalBundle `json:"intel,omitempty"`
	Enrichment *enrich.Result      `json:"enrichment,omitempty"`
	Score      *model.LeadScore    `json:"score,omitempty"`
}

// RunResult is the complete output of one pipeline invocation.
type RunResult struct {
	RunID   string                  `json:"run_id"`
	Search  *discovery.SearchResult `json:"search"`
	Results []CompanyResult         `json:"results"`
}

// Pipeline wires the four stages together.
type Pipeline struct {
	engine       *discovery.Engine
	extractor    *intel.Extractor
	enricher     *enrich.Enricher
	scorer       scoring.Scorer
	maxCompanies int
	maxContacts  int
}

// New creates a Pipeline. extractor and enricher may be nil when their
// providers are not configured; those stages are then skipped.
func New(engine *discovery.Engine, extractor *intel.Extractor, enricher *enrich.Enricher, scorer scoring.Scorer, maxCompanies, maxContacts int) *Pipeline {
	if maxCompanies <= 0 {
		maxCompanies = 5
	}
	if maxContacts <= 0 {
		maxContacts = 4
	}
	return &Pipeline{
		engine:       engine,
		extractor:    extractor,
		enricher:     enricher,
		scorer:       scorer,
		maxCompanies: maxCompanies,
		maxContacts:  maxContacts,
	}
}

// Run executes one end-to-end invocation. Only a discovery failure aborts
// the run; every later stage degrades its own slot and the caller always
// receives a syntactically complete result.
func (p *Pipeline) Run(ctx context.Context, filters discovery.SearchFilters, opts Options) (*RunResult, error) {
	runID := uuid.NewString()
	log := zap.L().With(zap.String("run_id", runID))

	search, err := p.engine.Search(ctx, filters)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: discovery")
	}

	companies := search.Companies
	if opts.Limit > 0 && len(companies) > opts.Limit {
		companies = companies[:opts.Limit]
	}

	results := make([]CompanyResult, len(companies))
	for i, company := range companies {
		results[i] = CompanyResult{Company: company}
	}

	// Stage 2: market intelligence, fanned out per company. Gather never
	// fails; a bad query only empties its bucket.
	if !opts.SkipIntel && p.extractor != nil {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.maxCompanies)
		for i := range results {
			g.Go(func() error {
				results[i].Intel = p.extractor.Gather(gctx, results[i].Company)
				return nil
			})
		}
		_ = g.Wait()
	}

	// Stage 3: enrichment of each company's top decision maker, gated on
	// needs_enrichment. Individual failures are contained.
	if !opts.SkipEnrich && p.enricher != nil {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.maxContacts)
		for i := range results {
			if results[i].Company.TopDecisionMaker == nil {
				continue
			}
			g.Go(func() error {
				slot := &results[i]
				res, enrichErr := p.enricher.Enrich(gctx, *slot.Company.TopDecisionMaker, slot.Company.Name)
				if enrichErr != nil {
					log.Warn("enrichment failed",
						zap.String("company", slot.Company.Name),
						zap.Error(enrichErr),
					)
					return nil
				}
				slot.Enrichment = res
				slot.Company.TopDecisionMaker = &res.Contact
				if len(slot.Company.Contacts) > 0 {
					slot.Company.Contacts[0] = res.Contact
				}
				return nil
			})
		}
		_ = g.Wait()
	}

	// Stage 4: lead scoring per company + top contact. The waterfall scorer
	// always yields a complete score.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxCompanies)
	for i := range results {
		g.Go(func() error {
			slot := &results[i]
			var contact model.Contact
			if slot.Company.TopDecisionMaker != nil {
				contact = *slot.Company.TopDecisionMaker
			}
			score, scoreErr := p.scorer.Score(gctx, slot.Company, contact, slot.Intel)
			if scoreErr != nil {
				log.Warn("scoring failed",
					zap.String("company", slot.Company.Name),
					zap.Error(scoreErr),
				)
				return nil
			}
			slot.Score = score
			return nil
		})
	}
	_ = g.Wait()

	log.Info("pipeline complete",
		zap.Int("companies", len(results)),
		zap.Int("api_calls_used", search.APICallsUsed),
	)

	return &RunResult{
		RunID:   runID,
		Search:  search,
		Results: results,
	}, nil
}
