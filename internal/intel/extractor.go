// Package intel mines public web content for buying-signal evidence and
// aggregates it into a bounded opportunity score. Every query is best-effort:
// a failed search empties its bucket and never aborts the pipeline.
package intel

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ventapel/prospect-cli/internal/model"
	"github.com/ventapel/prospect-cli/pkg/serper"
)

// highSeverityCount is the complaint-figure threshold for HIGH severity.
const highSeverityCount = 100

// Options configures search locale and pacing.
type Options struct {
	Country         string
	Locale          string
	DateRestriction string
	// RateLimit caps Serper queries per second across the extractor.
	RateLimit int
}

// Extractor issues the fixed query sequence for one company and builds its
// SignalBundle.
type Extractor struct {
	search  serper.Client
	limiter *rate.Limiter
	opts    Options
}

// NewExtractor creates an Extractor. The rate limiter is shared across all
// companies processed by this instance.
func NewExtractor(search serper.Client, opts Options) *Extractor {
	if opts.Country == "" {
		opts.Country = "br"
	}
	if opts.Locale == "" {
		opts.Locale = "pt-br"
	}
	if opts.DateRestriction == "" {
		opts.DateRestriction = "d[6]"
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5
	}
	return &Extractor{
		search:  search,
		limiter: rate.NewLimiter(rate.Limit(opts.RateLimit), 1),
		opts:    opts,
	}
}

// Gather runs all signal queries for one company and computes its insights.
// It never returns an error: failed buckets degrade to empty.
func (e *Extractor) Gather(ctx context.Context, company model.Company) *model.SignalBundle {
	log := zap.L().With(
		zap.String("stage", "intel"),
		zap.String("company", company.Name),
	)

	bundle := &model.SignalBundle{
		CompanyName:        company.Name,
		LogisticsProblems:  []model.LogisticsProblem{},
		ExpansionSignals:   []model.ExpansionSignal{},
		FinancialInfo:      []model.FinancialInfo{},
		EcommerceActivity:  []model.EcommerceActivity{},
		TechnologyAdoption: []model.TechnologyAdoption{},
		Competitors:        []model.CompetitorMention{},
	}

	industry := strings.ToLower(company.Industry)

	e.gatherLogistics(ctx, log, company, bundle)
	e.gatherExpansion(ctx, log, company, bundle)
	e.gatherFinancial(ctx, log, company, bundle)
	if strings.Contains(industry, "commerce") || strings.Contains(industry, "retail") {
		e.gatherEcommerce(ctx, log, company, bundle)
	}
	e.gatherTechnology(ctx, log, company, bundle)
	if company.Industry != "" {
		e.gatherCompetitors(ctx, log, company, bundle)
	}

	bundle.Insights = ComputeInsights(bundle)
	bundle.RawIntelligence = BuildRawIntelligence(company, bundle)

	log.Info("intel gathered",
		zap.Int("opportunity_score", bundle.Insights.OpportunityScore),
		zap.String("recommendation", string(bundle.Insights.Recommendation)),
	)

	return bundle
}

// run issues one rate-limited query; a failure yields zero results for the
// bucket being filled.
func (e *Extractor) run(ctx context.Context, log *zap.Logger, query string, num int) []serper.OrganicResult {
	if err := e.limiter.Wait(ctx); err != nil {
		return nil
	}
	resp, err := e.search.Search(ctx, serper.SearchRequest{
		Query:           query,
		Country:         e.opts.Country,
		Locale:          e.opts.Locale,
		Num:             num,
		DateRestriction: e.opts.DateRestriction,
	})
	if err != nil {
		log.Debug("search query failed", zap.String("query", query), zap.Error(err))
		return nil
	}
	return resp.Organic
}

func (e *Extractor) gatherLogistics(ctx context.Context, log *zap.Logger, company model.Company, bundle *model.SignalBundle) {
	query := fmt.Sprintf(`"%s" ("atraso na entrega" OR "problema logístico" OR "reclamação transporte" OR "avaria mercadoria" OR "extravio" OR "devolução" OR "insatisfação cliente" OR "prazo de entrega") site:reclameaqui.com.br OR site:consumidor.gov.br`, company.Name)

	for _, r := range e.run(ctx, log, query, 5) {
		if r.Snippet == "" || !strings.Contains(strings.ToLower(r.Snippet), strings.ToLower(company.Name)) {
			continue
		}
		severity := model.LevelMedium
		if nums := anyNumber.FindString(r.Snippet); nums != "" {
			if n, err := strconv.Atoi(nums); err == nil && n > highSeverityCount {
				severity = model.LevelHigh
			}
		}
		bundle.LogisticsProblems = append(bundle.LogisticsProblems, model.LogisticsProblem{
			Title:    r.Title,
			Snippet:  r.Snippet,
			Link:     r.Link,
			Severity: severity,
			Date:     r.Date,
		})
	}
}

func (e *Extractor) gatherExpansion(ctx context.Context, log *zap.Logger, company model.Company, bundle *model.SignalBundle) {
	query := fmt.Sprintf(`"%s" ("novo centro de distribuição" OR "nova unidade" OR "expansão" OR "investimento" OR "aumento de produção" OR "contratando" OR "vagas abertas" OR "inauguração" OR "aquisição")`, company.Name)

	for _, r := range e.run(ctx, log, query, 5) {
		if r.Snippet == "" {
			continue
		}
		sig := model.ExpansionSignal{
			Title:   r.Title,
			Snippet: r.Snippet,
			Link:    r.Link,
			Type:    model.ExpansionGeneral,
		}
		if strings.Contains(r.Snippet, "distribuição") {
			sig.Type = model.ExpansionLogistics
		}
		sig.Investment = investmentAmount.FindString(r.Snippet)
		if m := headcount.FindStringSubmatch(r.Snippet); m != nil {
			sig.Jobs = m[1]
		}
		bundle.ExpansionSignals = append(bundle.ExpansionSignals, sig)
	}
}

func (e *Extractor) gatherFinancial(ctx context.Context, log *zap.Logger, company model.Company, bundle *model.SignalBundle) {
	query := fmt.Sprintf(`"%s" ("faturamento" OR "receita" OR "lucro" OR "crescimento" OR "market share" OR "líder de mercado")`, company.Name)

	for _, r := range e.run(ctx, log, query, 3) {
		revenue := revenueAmount.FindString(r.Snippet)
		growth := growthPercent.FindString(r.Snippet)
		if revenue == "" && growth == "" {
			continue
		}
		bundle.FinancialInfo = append(bundle.FinancialInfo, model.FinancialInfo{
			Snippet: r.Snippet,
			Revenue: revenue,
			Growth:  growth,
			Link:    r.Link,
		})
	}
}

func (e *Extractor) gatherEcommerce(ctx context.Context, log *zap.Logger, company model.Company, bundle *model.SignalBundle) {
	query := fmt.Sprintf(`"%s" ("marketplace" OR "e-commerce" OR "vendas online" OR "entrega rápida" OR "fulfillment" OR "última milha")`, company.Name)

	for _, r := range e.run(ctx, log, query, 3) {
		bundle.EcommerceActivity = append(bundle.EcommerceActivity, model.EcommerceActivity{
			Snippet:       r.Snippet,
			Link:          r.Link,
			IsMarketplace: strings.Contains(strings.ToLower(r.Snippet), "marketplace"),
		})
	}
}

func (e *Extractor) gatherTechnology(ctx context.Context, log *zap.Logger, company model.Company, bundle *model.SignalBundle) {
	query := fmt.Sprintf(`"%s" ("automação" OR "tecnologia" OR "sistema" OR "ERP" OR "WMS" OR "robô" OR "inteligência artificial")`, company.Name)

	for _, r := range e.run(ctx, log, query, 3) {
		lower := strings.ToLower(r.Snippet)
		if !strings.Contains(lower, "automa") && !strings.Contains(lower, "tecnolog") && !strings.Contains(lower, "sistema") {
			continue
		}
		techType := "GENERAL"
		if strings.Contains(r.Snippet, "WMS") {
			techType = "WAREHOUSE"
		}
		bundle.TechnologyAdoption = append(bundle.TechnologyAdoption, model.TechnologyAdoption{
			Snippet: r.Snippet,
			Link:    r.Link,
			Type:    techType,
		})
	}
}

func (e *Extractor) gatherCompetitors(ctx context.Context, log *zap.Logger, company model.Company, bundle *model.SignalBundle) {
	query := fmt.Sprintf(`"%s" "principais empresas" Brasil -"%s"`, company.Industry, company.Name)

	results := e.run(ctx, log, query, 2)
	if len(results) > 2 {
		results = results[:2]
	}
	for _, r := range results {
		bundle.Competitors = append(bundle.Competitors, model.CompetitorMention{
			Snippet: r.Snippet,
			Link:    r.Link,
		})
	}
}
