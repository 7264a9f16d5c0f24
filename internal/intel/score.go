package intel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ventapel/prospect-cli/internal/model"
)

// Opportunity-score weights. These are the tuned production contract; treat
// them as fixed constants, not values to improve.
const (
	weightLogisticsProblem  = 15
	weightExpansionSignal   = 20
	bonusLogisticsExpansion = 15
	bonusEcommerce          = 15
	bonusMarketplace        = 10
	bonusTechAdoption       = 10
	bonusStrongGrowth       = 10

	// urgencyProblemThreshold elevates urgency to HIGH.
	urgencyProblemThreshold = 2

	// strongGrowthPercent is the minimum growth figure that earns the
	// financial bonus.
	strongGrowthPercent = 10
)

// ComputeInsights aggregates the bundle's buckets into the opportunity score
// and its companion tri-states. The score is clamped to [0, 100].
func ComputeInsights(bundle *model.SignalBundle) model.Insights {
	problems := len(bundle.LogisticsProblems)
	expansions := len(bundle.ExpansionSignals)
	hasEcommerce := len(bundle.EcommerceActivity) > 0
	hasTech := len(bundle.TechnologyAdoption) > 0

	score := 0
	buyingIntent := model.LevelLow
	urgency := model.LevelLow

	if problems > 0 {
		score += problems * weightLogisticsProblem
		urgency = model.LevelMedium
		if problems > urgencyProblemThreshold {
			urgency = model.LevelHigh
		}
	}

	if expansions > 0 {
		score += expansions * weightExpansionSignal
		buyingIntent = model.LevelMedium
		for _, sig := range bundle.ExpansionSignals {
			if sig.Type == model.ExpansionLogistics {
				score += bonusLogisticsExpansion
				buyingIntent = model.LevelHigh
				break
			}
		}
	}

	if hasEcommerce {
		score += bonusEcommerce
		for _, e := range bundle.EcommerceActivity {
			if e.IsMarketplace {
				score += bonusMarketplace
				break
			}
		}
	}

	if hasTech {
		score += bonusTechAdoption
		if buyingIntent == model.LevelLow {
			buyingIntent = model.LevelMedium
		}
	}

	if hasStrongGrowth(bundle.FinancialInfo) {
		score += bonusStrongGrowth
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	recommendation := model.RecommendationCold
	switch {
	case score > 60:
		recommendation = model.RecommendationHot
	case score > 30:
		recommendation = model.RecommendationWarm
	}

	return model.Insights{
		OpportunityScore: score,
		BuyingIntent:     buyingIntent,
		Urgency:          urgency,
		KeyPainPoints:    problems,
		ExpansionSignals: expansions,
		HasEcommerce:     hasEcommerce,
		TechAdoption:     hasTech,
		Recommendation:   recommendation,
	}
}

// hasStrongGrowth reports whether any financial item shows growth above the
// threshold.
func hasStrongGrowth(items []model.FinancialInfo) bool {
	for _, f := range items {
		if f.Growth == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(f.Growth, "%"))
		if err == nil && n > strongGrowthPercent {
			return true
		}
	}
	return false
}

// BuildRawIntelligence assembles the human-readable evidence digest handed
// to the scoring model. It is never parsed back.
func BuildRawIntelligence(company model.Company, bundle *model.SignalBundle) string {
	var b strings.Builder

	fmt.Fprintf(&b, "EMPRESA: %s\n", company.Name)
	fmt.Fprintf(&b, "INDÚSTRIA: %s\n\n", company.Industry)

	fmt.Fprintf(&b, "PROBLEMAS ENCONTRADOS (%d):\n", len(bundle.LogisticsProblems))
	for _, p := range bundle.LogisticsProblems {
		fmt.Fprintf(&b, "- %s [%s]\n", p.Snippet, p.Severity)
	}

	fmt.Fprintf(&b, "\nSINAIS DE EXPANSÃO (%d):\n", len(bundle.ExpansionSignals))
	for _, s := range bundle.ExpansionSignals {
		if s.Investment != "" {
			fmt.Fprintf(&b, "- %s [Investimento: %s]\n", s.Snippet, s.Investment)
		} else {
			fmt.Fprintf(&b, "- %s\n", s.Snippet)
		}
	}

	fmt.Fprintf(&b, "\nATIVIDADE E-COMMERCE: %s\n", simNao(len(bundle.EcommerceActivity) > 0))
	for _, e := range bundle.EcommerceActivity {
		fmt.Fprintf(&b, "- %s\n", e.Snippet)
	}

	fmt.Fprintf(&b, "\nINFORMAÇÃO FINANCEIRA:\n")
	for _, f := range bundle.FinancialInfo {
		fmt.Fprintf(&b, "- Receita: %s, Crescimento: %s\n", orND(f.Revenue), orND(f.Growth))
	}

	fmt.Fprintf(&b, "\nADOÇÃO TECNOLÓGICA: %s\n", simNao(len(bundle.TechnologyAdoption) > 0))

	fmt.Fprintf(&b, "\nSCORE DE OPORTUNIDADE: %d/100\n", bundle.Insights.OpportunityScore)
	fmt.Fprintf(&b, "INTENÇÃO DE COMPRA: %s\n", bundle.Insights.BuyingIntent)
	fmt.Fprintf(&b, "URGÊNCIA: %s\n", bundle.Insights.Urgency)

	return b.String()
}

func simNao(v bool) string {
	if v {
		return "SIM"
	}
	return "NÃO"
}

func orND(v string) string {
	if v == "" {
		return "N/D"
	}
	return v
}
