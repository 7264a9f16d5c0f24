package model

// Priority is the lead-qualification tri-state.
type Priority string

const (
	PriorityHot  Priority = "HOT"
	PriorityWarm Priority = "WARM"
	PriorityCold Priority = "COLD"
)

// DimensionScores holds the six PPVVC dimensions, each 0-10.
// Compras is purchase-ease on an inverted scale: smaller buying process
// scores higher.
type DimensionScores struct {
	Pain    int `json:"pain"`
	Power   int `json:"power"`
	Vision  int `json:"vision"`
	Value   int `json:"value"`
	Control int `json:"control"`
	Compras int `json:"compras"`
}

// Sum returns the total of all six dimensions.
func (d DimensionScores) Sum() int {
	return d.Pain + d.Power + d.Vision + d.Value + d.Control + d.Compras
}

// InRange reports whether every dimension is within [0, 10].
func (d DimensionScores) InRange() bool {
	for _, v := range []int{d.Pain, d.Power, d.Vision, d.Value, d.Control, d.Compras} {
		if v < 0 || v > 10 {
			return false
		}
	}
	return true
}

// LeadScore is the complete qualification produced for one company+contact
// pair. Both scoring paths always fill every field; callers never see a
// partial score.
type LeadScore struct {
	Scores             DimensionScores `json:"scores"`
	TotalScore         float64         `json:"total_score"`
	Priority           Priority        `json:"priority"`
	Justification      string          `json:"justification"`
	Approach           string          `json:"approach"`
	EstimatedBoxesDay  int             `json:"estimated_boxes_day"`
	KeyHook            string          `json:"key_hook"`
	FirstMessage       string          `json:"first_message"`
	ObjectionHandling  string          `json:"objection_handling"`
	NextSteps          []string        `json:"next_steps"`
	PMEAdvantages      []string        `json:"pme_advantages,omitempty"`
	EstimatedCloseTime string          `json:"estimated_close_time,omitempty"`
}
