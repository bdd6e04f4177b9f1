package services

import "devgate/internal/models"

// VerificationTransitions lists the allowed moves of the verification state
// machine. Terminal outcomes have no way out.
var VerificationTransitions = map[models.Outcome]map[models.Outcome]bool{
	models.OutcomeNone: {models.OutcomePending: true},
	models.OutcomePending: {
		models.OutcomeVerified:        true,
		models.OutcomeRejectedWrong:   true,
		models.OutcomeRejectedTimeout: true,
	},
	models.OutcomeVerified:        {},
	models.OutcomeRejectedWrong:   {},
	models.OutcomeRejectedTimeout: {},
}

func canTransition(current, to models.Outcome) bool {
	nexts, ok := VerificationTransitions[current]
	if !ok {
		return false
	}
	return nexts[to]
}
