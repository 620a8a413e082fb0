package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// RiskTier – qualitative bucket derived from a credit score
// ---------------------------------------------------------------------------

// RiskTier classifies a credit score into a qualitative risk bucket.
type RiskTier struct {
	value string
}

const (
	riskTierExcellent  = "EXCELLENT"
	riskTierGood       = "GOOD"
	riskTierAcceptable = "ACCEPTABLE"
	riskTierRisky      = "RISKY"
)

var (
	RiskTierExcellent  = RiskTier{value: riskTierExcellent}
	RiskTierGood       = RiskTier{value: riskTierGood}
	RiskTierAcceptable = RiskTier{value: riskTierAcceptable}
	RiskTierRisky      = RiskTier{value: riskTierRisky}
)

var validRiskTiers = map[string]RiskTier{
	riskTierExcellent:  RiskTierExcellent,
	riskTierGood:       RiskTierGood,
	riskTierAcceptable: RiskTierAcceptable,
	riskTierRisky:      RiskTierRisky,
}

// NewRiskTier creates a RiskTier from a raw string.
func NewRiskTier(s string) (RiskTier, error) {
	v, ok := validRiskTiers[s]
	if !ok {
		return RiskTier{}, fmt.Errorf("invalid risk tier: %q", s)
	}
	return v, nil
}

// RiskTierForScore maps a credit score onto its tier. Thresholds are
// inclusive lower bounds: >=800 excellent, >=700 good, >=600 acceptable,
// everything below is risky.
func RiskTierForScore(score int) RiskTier {
	switch {
	case score >= 800:
		return RiskTierExcellent
	case score >= 700:
		return RiskTierGood
	case score >= 600:
		return RiskTierAcceptable
	default:
		return RiskTierRisky
	}
}

// String returns the string representation of the tier.
func (t RiskTier) String() string { return t.value }

// IsZero returns true when the tier has not been initialised.
func (t RiskTier) IsZero() bool { return t.value == "" }

// Equal returns true when both tiers carry the same value.
func (t RiskTier) Equal(other RiskTier) bool { return t.value == other.value }
