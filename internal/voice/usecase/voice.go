package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"voice-task-tracker/internal/nlp"
	"voice-task-tracker/internal/voice"
)

// Transcribe converts audio into text.
func (uc *implUseCase) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", voice.ErrEmptyAudio
	}
	if uc.transcriber == nil {
		return "", voice.ErrTranscriptionDisabled
	}

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	transcript, err := uc.transcriber.TranscribeAudio(ctx, audio)
	if err != nil {
		uc.l.Errorf(ctx, "voice.usecase.Transcribe: %v", err)
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %w", voice.ErrTranscriptionTimeout, err)
		}
		return "", fmt.Errorf("%w: %w", voice.ErrTranscriptionFailed, err)
	}

	transcript = strings.TrimSpace(transcript)
	uc.l.Infof(ctx, "voice.usecase.Transcribe: %d bytes -> %d chars", len(audio), len(transcript))
	return transcript, nil
}

// TranscribeAndParse transcribes audio and extracts task attributes from the text.
func (uc *implUseCase) TranscribeAndParse(ctx context.Context, audio []byte) (voice.TranscribeParseOutput, error) {
	transcript, err := uc.Transcribe(ctx, audio)
	if err != nil {
		return voice.TranscribeParseOutput{}, err
	}

	parsed, err := uc.Parse(ctx, transcript)
	if err != nil {
		return voice.TranscribeParseOutput{Transcript: transcript}, err
	}

	return voice.TranscribeParseOutput{
		Transcript: transcript,
		Parsed:     parsed,
	}, nil
}

// Parse extracts task attributes from an already transcribed utterance.
func (uc *implUseCase) Parse(ctx context.Context, transcript string) (nlp.ParsedTask, error) {
	return uc.parser.ParseVoiceInput(ctx, transcript)
}
