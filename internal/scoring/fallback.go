package scoring

import (
	"context"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"

	"github.com/ventapel/prospect-cli/internal/model"
)

// defaultEmployees stands in when the directory gave no headcount.
const defaultEmployees = 50

var fold = cases.Fold()

// FallbackScorer is the deterministic scoring path, used when no model
// service is configured or the model reply could not be trusted. Every rule
// here mirrors the production heuristics; the numeric bands are contract.
type FallbackScorer struct{}

// NewFallbackScorer creates the deterministic scorer.
func NewFallbackScorer() *FallbackScorer {
	return &FallbackScorer{}
}

// Score implements Scorer. It never fails.
func (s *FallbackScorer) Score(_ context.Context, company model.Company, contact model.Contact, intel *model.SignalBundle) (*model.LeadScore, error) {
	employees := company.EmployeeCount
	if employees <= 0 {
		employees = defaultEmployees
	}

	painPoints := 0
	expansions := 0
	opportunity := 0
	if intel != nil {
		painPoints = intel.Insights.KeyPainPoints
		expansions = intel.Insights.ExpansionSignals
		opportunity = intel.Insights.OpportunityScore
	}
	hasProblems := painPoints > 0
	hasExpansion := expansions > 0

	title := fold.String(contact.Title)
	seniority := fold.String(contact.Seniority)

	scores := model.DimensionScores{
		Pain:    painScore(hasProblems, painPoints, employees),
		Power:   powerScore(title, seniority),
		Vision:  visionScore(title),
		Value:   valueScore(employees),
		Control: controlScore(hasProblems, hasExpansion),
		Compras: comprasScore(employees),
	}

	total := math.Round(float64(scores.Sum())/6*10) / 10

	priority := model.PriorityCold
	switch {
	case opportunity > 60 || scores.Power >= 9:
		priority = model.PriorityHot
	case opportunity > 30 || scores.Power >= 7:
		priority = model.PriorityWarm
	}

	isOwner := strings.Contains(title, "owner") ||
		strings.Contains(title, "proprietário") ||
		strings.Contains(title, "ceo")

	return &model.LeadScore{
		Scores:            scores,
		TotalScore:        total,
		Priority:          priority,
		Justification:     justification(isOwner, employees, hasProblems, painPoints),
		Approach:          approach(isOwner),
		EstimatedBoxesDay: int(math.Round(float64(employees) / 3)),
		KeyHook:           keyHook(hasProblems, painPoints),
		FirstMessage:      firstMessage(isOwner, contact, company),
		ObjectionHandling: "Preço alto? ROI em 10 meses, implementação em 2 semanas, sem parar operação",
		NextSteps:         nextSteps(isOwner),
		PMEAdvantages: []string{
			"Implementação RÁPIDA: 2 semanas vs 3-6 meses em grandes empresas",
			pmeDecisionAdvantage(isOwner),
			"ROI proporcionalmente MELHOR: impacto direto no resultado",
		},
		EstimatedCloseTime: closeTime(isOwner),
	}, nil
}

// painScore scales with logged problems, else bands by company size: a
// smaller company feels the same problem proportionally harder.
func painScore(hasProblems bool, painPoints, employees int) int {
	if hasProblems {
		score := 5 + painPoints*2
		if score > 9 {
			score = 9
		}
		return score
	}
	if employees < 100 {
		return 6
	}
	return 5
}

func powerScore(title, seniority string) int {
	switch {
	case seniority == "owner",
		strings.Contains(title, "owner"),
		strings.Contains(title, "ceo"),
		strings.Contains(title, "proprietário"):
		return 10
	case strings.Contains(title, "diretor"), strings.Contains(title, "director"):
		return 9
	case strings.Contains(title, "gerente"), strings.Contains(title, "manager"):
		return 8
	case strings.Contains(title, "coordenador"), strings.Contains(title, "coordinator"):
		return 6
	default:
		return 5
	}
}

func visionScore(title string) int {
	switch {
	case strings.Contains(title, "owner"), strings.Contains(title, "ceo"):
		return 10
	case strings.Contains(title, "operaç"),
		strings.Contains(title, "logística"),
		strings.Contains(title, "operations"):
		return 9
	case strings.Contains(title, "gerente"), strings.Contains(title, "manager"):
		return 7
	default:
		return 6
	}
}

func valueScore(employees int) int {
	switch {
	case employees > 200:
		return 8
	case employees > 100:
		return 7
	case employees > 50:
		return 6
	default:
		return 5
	}
}

func controlScore(hasProblems, hasExpansion bool) int {
	switch {
	case hasProblems:
		return 9
	case hasExpansion:
		return 8
	default:
		return 5
	}
}

// comprasScore is inverted: a smaller buying process scores higher.
func comprasScore(employees int) int {
	switch {
	case employees < 100:
		return 10
	case employees < 300:
		return 9
	default:
		return 7
	}
}

func justification(isOwner bool, employees int, hasProblems bool, painPoints int) string {
	if isOwner {
		state := "potencial baseado em porte"
		if hasProblems {
			state = "COM problemas identificados"
		}
		return fmt.Sprintf("OWNER DIRETO - Decisão rápida, empresa %d func, %s", employees, state)
	}
	state := "prospecção baseada em fit"
	if hasProblems {
		state = fmt.Sprintf("%d problemas encontrados", painPoints)
	}
	return fmt.Sprintf("PME %d func, %s", employees, state)
}

func approach(isOwner bool) string {
	if isOwner {
		return "Abordagem direta para owner: ROI claro em R$ e tempo de implementação rápido"
	}
	return "Mostrar case PME similar e agendar call de 15min para diagnóstico"
}

func keyHook(hasProblems bool, painPoints int) string {
	if hasProblems {
		return fmt.Sprintf("%d problemas logísticos - solução em 2 semanas", painPoints)
	}
	return "Empresas similares economizam R$5-15k/mês com nossa solução"
}

func firstMessage(isOwner bool, contact model.Contact, company model.Company) string {
	first := contact.FirstNameOrName()
	if isOwner {
		return fmt.Sprintf("Olá %s, como proprietário da %s, imagino que violação de embalagens te preocupa. Nossos clientes PME economizam R$8-12k/mês. 15min de call?", first, company.Name)
	}
	return fmt.Sprintf("Olá %s, vi a %s e temos solução que reduziu 85%% violações em empresas similares. Podemos conversar 15min?", first, company.Name)
}

func nextSteps(isOwner bool) []string {
	firstStep := "Enviar case PME do mesmo setor"
	if isOwner {
		firstStep = "Call com owner em 24-48h (não deixar esfriar)"
	}
	return []string{
		firstStep,
		"Demo presencial rápida (30min on-site)",
		"Proposta com ROI calculado específico",
	}
}

func pmeDecisionAdvantage(isOwner bool) string {
	if isOwner {
		return "Decisão ÁGIL: Owner decide na hora"
	}
	return "Decisão ÁGIL: Processo simplificado"
}

func closeTime(isOwner bool) string {
	if isOwner {
		return "1-2 semanas"
	}
	return "2-4 semanas"
}
