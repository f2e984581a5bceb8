package usecase

import "voice-task-tracker/internal/model"

// ClassifyPriority returns the priority named by the utterance, or medium.
// Higher tiers are checked first regardless of where words appear.
func ClassifyPriority(text string) model.Priority {
	for _, r := range priorityRules {
		if r.re.MatchString(text) {
			return r.value
		}
	}
	return model.PriorityMedium
}
