package model

// FactorScore represents a single factor's scoring result.
type FactorScore struct {
	Name       string  `json:"name"`
	RawScore   float64 `json:"raw_score"`
	Weight     float64 `json:"weight"`
	Weighted   float64 `json:"weighted"`
	Commentary string  `json:"commentary"`
}

// SuggestionTier maps a total score range to a contribution suggestion.
type SuggestionTier struct {
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"` // scale applied to the regular contribution
}

// TechnicalSignal is the output of the strategy scorer.
type TechnicalSignal struct {
	Factors    []FactorScore  `json:"factors"`
	TotalScore float64        `json:"total_score"`
	Tier       SuggestionTier `json:"tier"`
	WarningMsg string         `json:"warning,omitempty"`
}
