package http

import (
	"strings"
	"time"

	"voice-task-tracker/internal/nlp"
	"voice-task-tracker/internal/voice"
)

// --- Request DTOs ---

type parseReq struct {
	Transcript string `json:"transcript"`
}

func (r parseReq) validate() error {
	if strings.TrimSpace(r.Transcript) == "" {
		return errTranscriptRequired
	}
	return nil
}

// --- Response DTOs ---

type parsedResp struct {
	Title           string     `json:"title"`
	Priority        string     `json:"priority"`
	Status          string     `json:"status"`
	DueDate         *time.Time `json:"due_date"`
	VoiceTranscript string     `json:"voice_transcript"`
	IsVoiceCreated  bool       `json:"is_voice_created"`
}

func newParsedResp(p nlp.ParsedTask) parsedResp {
	return parsedResp{
		Title:           p.Title,
		Priority:        string(p.Priority),
		Status:          string(p.Status),
		DueDate:         p.DueDate,
		VoiceTranscript: p.VoiceTranscript,
		IsVoiceCreated:  p.IsVoiceCreated,
	}
}

type parseResp struct {
	Original string     `json:"original"`
	Parsed   parsedResp `json:"parsed"`
}

func (h *handler) newParseResp(original string, p nlp.ParsedTask) parseResp {
	return parseResp{Original: original, Parsed: newParsedResp(p)}
}

type transcribeResp struct {
	Transcript string `json:"transcript"`
}

type transcribeParseResp struct {
	Transcript string     `json:"transcript"`
	Parsed     parsedResp `json:"parsed"`
}

func (h *handler) newTranscribeParseResp(out voice.TranscribeParseOutput) transcribeParseResp {
	return transcribeParseResp{
		Transcript: out.Transcript,
		Parsed:     newParsedResp(out.Parsed),
	}
}
