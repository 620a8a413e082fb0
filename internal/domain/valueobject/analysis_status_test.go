package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credora/credit-analysis-service/internal/domain/valueobject"
)

func TestAnalysisStatus(t *testing.T) {
	t.Run("parses valid statuses", func(t *testing.T) {
		for _, s := range []string{"PENDING", "APPROVED", "REJECTED", "ON_HOLD", "CANCELLED"} {
			status, err := valueobject.NewAnalysisStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		_, err := valueobject.NewAnalysisStatus("DENIED")
		assert.Error(t, err)

		_, err = valueobject.NewAnalysisStatus("pending")
		assert.Error(t, err)
	})

	t.Run("terminal statuses", func(t *testing.T) {
		assert.True(t, valueobject.AnalysisStatusApproved.IsTerminal())
		assert.True(t, valueobject.AnalysisStatusRejected.IsTerminal())
		assert.True(t, valueobject.AnalysisStatusCancelled.IsTerminal())
		assert.False(t, valueobject.AnalysisStatusPending.IsTerminal())
		assert.False(t, valueobject.AnalysisStatusOnHold.IsTerminal())
	})

	t.Run("decidable statuses", func(t *testing.T) {
		assert.True(t, valueobject.AnalysisStatusPending.IsDecidable())
		assert.True(t, valueobject.AnalysisStatusOnHold.IsDecidable())
		assert.False(t, valueobject.AnalysisStatusApproved.IsDecidable())
		assert.False(t, valueobject.AnalysisStatusRejected.IsDecidable())
		assert.False(t, valueobject.AnalysisStatusCancelled.IsDecidable())
	})
}

func TestRiskTierForScore(t *testing.T) {
	cases := []struct {
		want  valueobject.RiskTier
		score int
	}{
		{valueobject.RiskTierExcellent, 850},
		{valueobject.RiskTierExcellent, 800},
		{valueobject.RiskTierGood, 799},
		{valueobject.RiskTierGood, 700},
		{valueobject.RiskTierAcceptable, 699},
		{valueobject.RiskTierAcceptable, 600},
		{valueobject.RiskTierRisky, 599},
		{valueobject.RiskTierRisky, 300},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, valueobject.RiskTierForScore(tc.score),
			"score %d", tc.score)
	}
}
