// Package scoring produces the six-dimension PPVVC lead score for one
// company+contact pair, via Claude when configured and via deterministic
// rules otherwise. Both paths always return a complete, schema-valid score.
package scoring

import (
	"context"

	"go.uber.org/zap"

	"github.com/ventapel/prospect-cli/internal/model"
)

// Scorer produces a LeadScore for a company+contact pair. intel may be nil
// when intelligence gathering was skipped.
type Scorer interface {
	Score(ctx context.Context, company model.Company, contact model.Contact, intel *model.SignalBundle) (*model.LeadScore, error)
}

// Waterfall tries the primary scorer and falls back on any failure. Scores
// from the two paths are never partially merged.
type Waterfall struct {
	primary  Scorer
	fallback Scorer
}

// NewWaterfall composes a primary scorer (may be nil when no model service
// is configured) with the deterministic fallback.
func NewWaterfall(primary Scorer, fallback Scorer) *Waterfall {
	return &Waterfall{primary: primary, fallback: fallback}
}

// Score implements Scorer. It never returns an error: the fallback path is
// total.
func (w *Waterfall) Score(ctx context.Context, company model.Company, contact model.Contact, intel *model.SignalBundle) (*model.LeadScore, error) {
	if w.primary != nil {
		score, err := w.primary.Score(ctx, company, contact, intel)
		if err == nil {
			return score, nil
		}
		zap.L().Warn("primary scorer failed, using fallback",
			zap.String("company", company.Name),
			zap.Error(err),
		)
	}
	return w.fallback.Score(ctx, company, contact, intel)
}
