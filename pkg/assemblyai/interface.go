package assemblyai

import "context"

// ITranscriber turns speech into text.
// Implementations are safe for concurrent use.
type ITranscriber interface {
	TranscribeAudio(ctx context.Context, audio []byte) (string, error)
	TranscribeURL(ctx context.Context, audioURL string) (string, error)
}
