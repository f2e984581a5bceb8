package usecase

import "voice-task-tracker/internal/model"

// ClassifyStatus returns the workflow status named by the utterance, or to_do.
func ClassifyStatus(text string) model.Status {
	for _, r := range statusRules {
		if r.re.MatchString(text) {
			return r.value
		}
	}
	return model.StatusToDo
}
