package voice

import "errors"

var (
	ErrEmptyAudio            = errors.New("no audio file uploaded")
	ErrTranscriptionDisabled = errors.New("transcription is not configured")
	ErrTranscriptionFailed   = errors.New("transcription failed")
	ErrTranscriptionTimeout  = errors.New("transcription timed out")
)
