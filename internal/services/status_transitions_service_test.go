package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"devgate/internal/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to models.Outcome
		want     bool
	}{
		{models.OutcomeNone, models.OutcomePending, true},
		{models.OutcomePending, models.OutcomePending, false},
		{models.OutcomeNone, models.OutcomeVerified, false},
		{models.OutcomePending, models.OutcomeVerified, true},
		{models.OutcomePending, models.OutcomeRejectedWrong, true},
		{models.OutcomePending, models.OutcomeRejectedTimeout, true},
		{models.OutcomeVerified, models.OutcomeRejectedTimeout, false},
		{models.OutcomeRejectedTimeout, models.OutcomePending, false},
		{models.Outcome("unknown"), models.OutcomePending, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, canTransition(tt.from, tt.to))
		})
	}
}
