package voice

import "voice-task-tracker/internal/nlp"

type TranscribeParseOutput struct {
	Transcript string
	Parsed     nlp.ParsedTask
}
