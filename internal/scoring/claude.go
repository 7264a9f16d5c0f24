package scoring

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/ventapel/prospect-cli/internal/model"
	"github.com/ventapel/prospect-cli/pkg/anthropic"
)

// ClaudeScorer is the primary scoring path: a single message to Claude with
// the PPVVC brief, parsed as one strict JSON record. Any parse or validation
// failure is an error so the waterfall can fall back; a malformed response
// is never partially trusted.
type ClaudeScorer struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
}

// NewClaudeScorer creates the Claude-backed scorer.
func NewClaudeScorer(client anthropic.Client, model string, maxTokens int64, temperature float64) *ClaudeScorer {
	if maxTokens <= 0 {
		maxTokens = 2048
	}
	return &ClaudeScorer{
		client:      client,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

// Score implements Scorer.
func (s *ClaudeScorer) Score(ctx context.Context, company model.Company, contact model.Contact, intel *model.SignalBundle) (*model.LeadScore, error) {
	temp := s.temperature
	resp, err := s.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       s.model,
		MaxTokens:   s.maxTokens,
		Temperature: &temp,
		Messages: []anthropic.Message{
			{Role: "user", Content: buildPrompt(company, contact, intel)},
		},
	})
	if err != nil {
		return nil, eris.Wrap(err, "scoring: claude request")
	}
	resp.Usage.LogCost(s.model, "lead_scoring")

	score, err := parseLeadScore(resp.Text())
	if err != nil {
		return nil, err
	}
	return score, nil
}

// parseLeadScore strips formatting noise from the model's reply and decodes
// the single JSON record it must contain.
func parseLeadScore(text string) (*model.LeadScore, error) {
	if text == "" {
		return nil, eris.Wrap(model.ErrParse, "scoring: empty model response")
	}

	clean := strings.ReplaceAll(text, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start < 0 || end <= start {
		return nil, eris.Wrap(model.ErrParse, "scoring: no JSON in model response")
	}

	var score model.LeadScore
	if err := json.Unmarshal([]byte(clean[start:end+1]), &score); err != nil {
		return nil, eris.Wrap(model.ErrParse, "scoring: decode model response: "+err.Error())
	}

	if err := validate(&score); err != nil {
		return nil, err
	}
	return &score, nil
}

// validate rejects structurally valid but semantically incomplete records.
func validate(score *model.LeadScore) error {
	if !score.Scores.InRange() {
		return eris.Wrap(model.ErrParse, "scoring: dimension out of range")
	}
	switch score.Priority {
	case model.PriorityHot, model.PriorityWarm, model.PriorityCold:
	default:
		return eris.Wrap(model.ErrParse, "scoring: invalid priority")
	}
	if score.TotalScore == 0 {
		// The model occasionally omits the mean; recompute rather than
		// rejecting an otherwise complete record.
		score.TotalScore = roundOne(float64(score.Scores.Sum()) / 6)
	}
	if score.TotalScore < 0 || score.TotalScore > 10 {
		return eris.Wrap(model.ErrParse, "scoring: total out of range")
	}
	return nil
}

func roundOne(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
