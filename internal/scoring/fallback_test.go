package scoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventapel/prospect-cli/internal/model"
)

func intelWith(painPoints, expansions, opportunity int) *model.SignalBundle {
	return &model.SignalBundle{
		Insights: model.Insights{
			KeyPainPoints:    painPoints,
			ExpansionSignals: expansions,
			OpportunityScore: opportunity,
		},
	}
}

func TestFallbackOwnerSmallCompany(t *testing.T) {
	scorer := NewFallbackScorer()

	score, err := scorer.Score(context.Background(),
		model.Company{Name: "Embalagens Sul", EmployeeCount: 45},
		model.Contact{Name: "Maria Souza", FirstName: "Maria", Title: "Owner"},
		nil,
	)
	require.NoError(t, err)

	assert.Equal(t, 6, score.Scores.Pain)
	assert.Equal(t, 10, score.Scores.Power)
	assert.Equal(t, 10, score.Scores.Vision)
	assert.Equal(t, 5, score.Scores.Value)
	assert.Equal(t, 5, score.Scores.Control)
	assert.Equal(t, 10, score.Scores.Compras)
	assert.True(t, score.Scores.InRange())

	// Power 10 forces HOT even with no intel.
	assert.Equal(t, model.PriorityHot, score.Priority)
	assert.InDelta(t, 7.7, score.TotalScore, 0.01)
	assert.Equal(t, 15, score.EstimatedBoxesDay)
	assert.Contains(t, score.Justification, "OWNER DIRETO")
	assert.Contains(t, score.FirstMessage, "Olá Maria")
	assert.Contains(t, score.FirstMessage, "Embalagens Sul")
	assert.Equal(t, "1-2 semanas", score.EstimatedCloseTime)
	require.Len(t, score.NextSteps, 3)
	assert.Contains(t, score.NextSteps[0], "owner")
}

func TestFallbackManagerWithProblems(t *testing.T) {
	scorer := NewFallbackScorer()

	score, err := scorer.Score(context.Background(),
		model.Company{Name: "Transportes Norte", EmployeeCount: 250},
		model.Contact{Name: "João Silva", Title: "Gerente de Logística"},
		intelWith(3, 1, 80),
	)
	require.NoError(t, err)

	assert.Equal(t, 9, score.Scores.Pain)
	assert.Equal(t, 8, score.Scores.Power)
	assert.Equal(t, 9, score.Scores.Vision)
	assert.Equal(t, 8, score.Scores.Value)
	assert.Equal(t, 9, score.Scores.Control)
	assert.Equal(t, 9, score.Scores.Compras)

	assert.Equal(t, model.PriorityHot, score.Priority)
	assert.Contains(t, score.Justification, "3 problemas encontrados")
	assert.Contains(t, score.KeyHook, "3 problemas logísticos")
	assert.Equal(t, "2-4 semanas", score.EstimatedCloseTime)
}

func TestFallbackPriorityBands(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		opportunity int
		want        model.Priority
	}{
		{"cold_analyst_no_signals", "Analista", 0, model.PriorityCold},
		{"warm_on_opportunity", "Analista", 40, model.PriorityWarm},
		{"hot_on_opportunity", "Analista", 70, model.PriorityHot},
		{"warm_on_manager_power", "Gerente", 0, model.PriorityWarm},
		{"hot_on_director_power", "Diretor", 0, model.PriorityHot},
		{"hot_on_owner_power", "Proprietário", 0, model.PriorityHot},
		{"opportunity_boundary_30_cold", "Analista", 30, model.PriorityCold},
		{"opportunity_boundary_60_warm", "Analista", 60, model.PriorityWarm},
	}

	scorer := NewFallbackScorer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := scorer.Score(context.Background(),
				model.Company{Name: "Acme", EmployeeCount: 500},
				model.Contact{Name: "X", Title: tt.title},
				intelWith(0, 0, tt.opportunity),
			)
			require.NoError(t, err)
			assert.Equal(t, tt.want, score.Priority)
		})
	}
}

func TestFallbackOwnerSeniorityWithoutTitle(t *testing.T) {
	scorer := NewFallbackScorer()
	score, err := scorer.Score(context.Background(),
		model.Company{Name: "Acme", EmployeeCount: 80},
		model.Contact{Name: "Ana", Seniority: "owner"},
		nil,
	)
	require.NoError(t, err)
	assert.Equal(t, 10, score.Scores.Power)
	assert.Equal(t, model.PriorityHot, score.Priority)
}

func TestFallbackDefaultEmployees(t *testing.T) {
	scorer := NewFallbackScorer()
	score, err := scorer.Score(context.Background(),
		model.Company{Name: "Sem Porte"},
		model.Contact{Name: "X", Title: "Analista"},
		nil,
	)
	require.NoError(t, err)

	// Missing headcount falls back to 50 employees.
	assert.Equal(t, 6, score.Scores.Pain)
	assert.Equal(t, 5, score.Scores.Value)
	assert.Equal(t, 10, score.Scores.Compras)
	assert.Equal(t, 17, score.EstimatedBoxesDay)
}

func TestFallbackPainCapped(t *testing.T) {
	scorer := NewFallbackScorer()
	score, err := scorer.Score(context.Background(),
		model.Company{Name: "Acme", EmployeeCount: 150},
		model.Contact{Name: "X", Title: "Analista"},
		intelWith(8, 0, 0),
	)
	require.NoError(t, err)
	assert.Equal(t, 9, score.Scores.Pain)
}

func TestFallbackScoresAlwaysInRange(t *testing.T) {
	scorer := NewFallbackScorer()
	titles := []string{"", "Owner", "CEO", "Diretor", "Gerente", "Coordenador", "Analista", "Supervisor de Produção"}
	employees := []int{0, 10, 99, 100, 201, 1000}

	for _, title := range titles {
		for _, emp := range employees {
			score, err := scorer.Score(context.Background(),
				model.Company{Name: "Acme", EmployeeCount: emp},
				model.Contact{Name: "X", Title: title},
				intelWith(2, 1, 50),
			)
			require.NoError(t, err)
			assert.True(t, score.Scores.InRange(), "title=%q employees=%d", title, emp)
			assert.GreaterOrEqual(t, score.TotalScore, 0.0)
			assert.LessOrEqual(t, score.TotalScore, 10.0)
			assert.NotEmpty(t, score.Justification)
			assert.NotEmpty(t, score.FirstMessage)
			assert.Len(t, score.PMEAdvantages, 3)
		}
	}
}

func TestFallbackNonOwnerTexture(t *testing.T) {
	scorer := NewFallbackScorer()
	score, err := scorer.Score(context.Background(),
		model.Company{Name: "Acme", EmployeeCount: 120},
		model.Contact{Name: "Carlos Lima", FirstName: "Carlos", Title: "Gerente Comercial"},
		nil,
	)
	require.NoError(t, err)

	assert.Contains(t, score.Justification, "PME 120 func")
	assert.Contains(t, score.Approach, "case PME")
	assert.Contains(t, score.FirstMessage, "Olá Carlos")
	assert.Contains(t, score.NextSteps[0], "case PME")
	assert.Equal(t, "2-4 semanas", score.EstimatedCloseTime)
}
