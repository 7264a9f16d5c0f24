package scoring

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventapel/prospect-cli/internal/model"
	"github.com/ventapel/prospect-cli/pkg/anthropic"
)

type mockModel struct {
	text    string
	err     error
	calls   int
	lastReq anthropic.MessageRequest
}

func (m *mockModel) CreateMessage(_ context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: m.text}},
		Usage:   anthropic.TokenUsage{InputTokens: 1200, OutputTokens: 400},
	}, nil
}

const validScoreJSON = `{
	"scores": {"pain": 8, "power": 10, "vision": 9, "value": 7, "control": 8, "compras": 9},
	"total_score": 8.5,
	"priority": "HOT",
	"justification": "Owner direto com problemas logísticos documentados",
	"approach": "Ligação direta com ROI",
	"estimated_boxes_day": 120,
	"key_hook": "3 reclamações recentes de avaria",
	"first_message": "Olá Maria...",
	"objection_handling": "ROI em 10 meses",
	"next_steps": ["Call em 24h", "Demo on-site", "Proposta"]
}`

func TestClaudeScorerSuccess(t *testing.T) {
	client := &mockModel{text: validScoreJSON}
	scorer := NewClaudeScorer(client, "claude-haiku-4-5-20251001", 2048, 0.3)

	score, err := scorer.Score(context.Background(),
		model.Company{Name: "Embalagens Sul"},
		model.Contact{Name: "Maria Souza", Title: "Owner"},
		nil,
	)
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, model.PriorityHot, score.Priority)
	assert.Equal(t, 8.5, score.TotalScore)
	assert.Equal(t, 10, score.Scores.Power)
	assert.Equal(t, 120, score.EstimatedBoxesDay)

	req := client.lastReq
	assert.Equal(t, "claude-haiku-4-5-20251001", req.Model)
	assert.Equal(t, int64(2048), req.MaxTokens)
	require.NotNil(t, req.Temperature)
	assert.Equal(t, 0.3, *req.Temperature)
	require.Len(t, req.Messages, 1)
	assert.Contains(t, req.Messages[0].Content, "Embalagens Sul")
}

func TestClaudeScorerRequestFailure(t *testing.T) {
	client := &mockModel{err: eris.New("anthropic: create message: timeout")}
	scorer := NewClaudeScorer(client, "claude-haiku-4-5-20251001", 0, 0.3)

	_, err := scorer.Score(context.Background(), model.Company{Name: "Acme"}, model.Contact{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "claude request")
}

func TestParseLeadScore(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"bare_json", validScoreJSON, false},
		{"fenced_json", "```json\n" + validScoreJSON + "\n```", false},
		{"fenced_plain", "```\n" + validScoreJSON + "\n```", false},
		{"with_prose", "Aqui está a análise:\n" + validScoreJSON + "\nEspero que ajude.", false},
		{"empty", "", true},
		{"no_json", "não consegui analisar", true},
		{"malformed", "{scores: oops", true},
		{"truncated", validScoreJSON[:40], true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := parseLeadScore(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, eris.Is(err, model.ErrParse))
				assert.Nil(t, score)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.PriorityHot, score.Priority)
		})
	}
}

func TestParseLeadScoreValidation(t *testing.T) {
	t.Run("dimension_out_of_range", func(t *testing.T) {
		_, err := parseLeadScore(`{
			"scores": {"pain": 15, "power": 10, "vision": 9, "value": 7, "control": 8, "compras": 9},
			"total_score": 8, "priority": "HOT"
		}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dimension out of range")
	})

	t.Run("invalid_priority", func(t *testing.T) {
		_, err := parseLeadScore(`{
			"scores": {"pain": 8, "power": 10, "vision": 9, "value": 7, "control": 8, "compras": 9},
			"total_score": 8, "priority": "URGENT"
		}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid priority")
	})

	t.Run("missing_total_recomputed", func(t *testing.T) {
		score, err := parseLeadScore(`{
			"scores": {"pain": 8, "power": 10, "vision": 9, "value": 7, "control": 8, "compras": 9},
			"priority": "HOT"
		}`)
		require.NoError(t, err)
		assert.InDelta(t, 8.5, score.TotalScore, 0.01)
	})

	t.Run("negative_total_rejected", func(t *testing.T) {
		_, err := parseLeadScore(`{
			"scores": {"pain": 8, "power": 10, "vision": 9, "value": 7, "control": 8, "compras": 9},
			"total_score": -2, "priority": "HOT"
		}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "total out of range")
	})
}

func TestBuildPromptContents(t *testing.T) {
	company := model.Company{Name: "Embalagens Sul", Industry: "Packaging", EmployeeCount: 85, City: "Itajaí"}
	contact := model.Contact{Name: "Maria Souza", Title: "Proprietária"}
	intel := &model.SignalBundle{RawIntelligence: "EMPRESA: Embalagens Sul\nSCORE DE OPORTUNIDADE: 65/100\n"}

	prompt := buildPrompt(company, contact, intel)

	assert.Contains(t, prompt, "Embalagens Sul")
	assert.Contains(t, prompt, "Maria Souza")
	assert.Contains(t, prompt, "Proprietária")
	assert.Contains(t, prompt, "SCORE DE OPORTUNIDADE: 65/100")
	assert.Contains(t, prompt, "PPVVC")
	assert.Contains(t, prompt, "APENAS")
}

func TestBuildPromptWithoutIntel(t *testing.T) {
	prompt := buildPrompt(model.Company{Name: "Acme"}, model.Contact{Name: "X"}, nil)
	assert.Contains(t, prompt, "Dados limitados")
}
