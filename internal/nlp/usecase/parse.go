package usecase

import (
	"context"
	"strings"

	"voice-task-tracker/internal/nlp"
)

// ParseVoiceInput builds task attributes from a transcript. The classifiers
// and extractors all read the raw transcript independently.
func (uc *implUseCase) ParseVoiceInput(ctx context.Context, transcript string) (nlp.ParsedTask, error) {
	if strings.TrimSpace(transcript) == "" {
		return nlp.ParsedTask{}, nlp.ErrEmptyInput
	}

	title := ExtractTitle(transcript)
	if title == "" {
		title = truncateRunes(transcript, maxFallbackTitleRunes)
	}

	parsed := nlp.ParsedTask{
		Title:           title,
		Priority:        ClassifyPriority(transcript),
		Status:          ClassifyStatus(transcript),
		DueDate:         uc.resolveDueDate(ctx, transcript),
		VoiceTranscript: transcript,
		IsVoiceCreated:  true,
	}

	uc.l.Debugf(ctx, "nlp.ParseVoiceInput: title=%q priority=%s status=%s has_due=%t",
		parsed.Title, parsed.Priority, parsed.Status, parsed.DueDate != nil)

	return parsed, nil
}
