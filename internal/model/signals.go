package model

// Recommendation buckets a company by opportunity score.
type Recommendation string

const (
	RecommendationHot  Recommendation = "HOT_LEAD"
	RecommendationWarm Recommendation = "WARM_LEAD"
	RecommendationCold Recommendation = "COLD_LEAD"
)

// Level is a LOW/MEDIUM/HIGH tri-state used for buying intent and urgency.
type Level string

const (
	LevelLow    Level = "LOW"
	LevelMedium Level = "MEDIUM"
	LevelHigh   Level = "HIGH"
)

// ExpansionType classifies an expansion signal.
type ExpansionType string

const (
	ExpansionLogistics ExpansionType = "LOGISTICS"
	ExpansionGeneral   ExpansionType = "GENERAL"
)

// LogisticsProblem is a consumer-complaint mention of delivery trouble.
type LogisticsProblem struct {
	Title    string `json:"title"`
	Snippet  string `json:"snippet"`
	Link     string `json:"link"`
	Severity Level  `json:"severity"`
	Date     string `json:"date,omitempty"`
}

// ExpansionSignal is a growth or investment mention.
type ExpansionSignal struct {
	Title      string        `json:"title"`
	Snippet    string        `json:"snippet"`
	Link       string        `json:"link"`
	Investment string        `json:"investment,omitempty"`
	Jobs       string        `json:"jobs,omitempty"`
	Type       ExpansionType `json:"type"`
}

// FinancialInfo is a revenue or growth mention with extracted figures.
type FinancialInfo struct {
	Snippet string `json:"snippet"`
	Revenue string `json:"revenue,omitempty"`
	Growth  string `json:"growth,omitempty"`
	Link    string `json:"link"`
}

// EcommerceActivity is an online-sales or marketplace mention.
type EcommerceActivity struct {
	Snippet       string `json:"snippet"`
	Link          string `json:"link"`
	IsMarketplace bool   `json:"is_marketplace"`
}

// TechnologyAdoption is an automation or systems-investment mention.
type TechnologyAdoption struct {
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
	Type    string `json:"type"` // WAREHOUSE or GENERAL
}

// CompetitorMention is market-landscape context for the company's industry.
type CompetitorMention struct {
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// Insights summarizes a SignalBundle into the opportunity score and its
// companion tri-states. Computed once per bundle, immutable after.
type Insights struct {
	OpportunityScore int            `json:"opportunity_score"`
	BuyingIntent     Level          `json:"buying_intent"`
	Urgency          Level          `json:"urgency"`
	KeyPainPoints    int            `json:"key_pain_points"`
	ExpansionSignals int            `json:"expansion_signals"`
	HasEcommerce     bool           `json:"has_ecommerce"`
	TechAdoption     bool           `json:"tech_adoption"`
	Recommendation   Recommendation `json:"recommendation"`
}

// SignalBundle is the per-company collection of web-search-derived evidence.
type SignalBundle struct {
	CompanyName        string               `json:"company_name"`
	LogisticsProblems  []LogisticsProblem   `json:"logistics_problems"`
	ExpansionSignals   []ExpansionSignal    `json:"expansion_signals"`
	FinancialInfo      []FinancialInfo      `json:"financial_info"`
	EcommerceActivity  []EcommerceActivity  `json:"ecommerce_activity"`
	TechnologyAdoption []TechnologyAdoption `json:"technology_adoption"`
	Competitors        []CompetitorMention  `json:"competitors"`
	Insights           Insights             `json:"insights"`

	// RawIntelligence is a human-readable digest of every bucket, consumed
	// downstream as model context and never parsed back.
	RawIntelligence string `json:"raw_intelligence"`
}
