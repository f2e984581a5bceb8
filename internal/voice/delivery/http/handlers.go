package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	pkgErrors "voice-task-tracker/pkg/errors"
	"voice-task-tracker/pkg/response"
)

// Parse godoc
// @Summary     Parse a transcript
// @Description Extracts title, priority, status and due date from a transcribed utterance.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Transcript"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	parsed, err := h.uc.Parse(ctx, req.Transcript)
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(req.Transcript, parsed))
}

// Transcribe godoc
// @Summary     Transcribe audio
// @Description Uploads an audio recording and returns its transcript.
// @Tags        Voice
// @Accept      multipart/form-data
// @Produce     json
// @Param       audio formData file true "Audio file (wav, mp3, m4a, ogg, webm, flac)"
// @Success     200 {object} transcribeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     413 {object} response.Resp "Audio file is too large"
// @Failure     415 {object} response.Resp "Unsupported audio type"
// @Failure     429 {object} response.Resp "Too many requests"
// @Failure     502 {object} response.Resp "Transcription failed"
// @Router      /api/tasks/transcribe [POST]
func (h *handler) Transcribe(c *gin.Context) {
	ctx := c.Request.Context()

	audio, err := h.processAudioReq(c)
	if err != nil {
		response.Error(c, h.uploadError(err))
		return
	}

	transcript, err := h.uc.Transcribe(ctx, audio)
	if err != nil {
		h.l.Errorf(ctx, "uc.Transcribe: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, transcribeResp{Transcript: transcript})
}

// TranscribeAndParse godoc
// @Summary     Transcribe and parse audio
// @Description Uploads an audio recording, transcribes it and extracts task attributes.
// @Tags        Voice
// @Accept      multipart/form-data
// @Produce     json
// @Param       audio formData file true "Audio file (wav, mp3, m4a, ogg, webm, flac)"
// @Success     200 {object} transcribeParseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     413 {object} response.Resp "Audio file is too large"
// @Failure     415 {object} response.Resp "Unsupported audio type"
// @Failure     422 {object} response.Resp "No speech detected"
// @Failure     429 {object} response.Resp "Too many requests"
// @Failure     502 {object} response.Resp "Transcription failed"
// @Router      /api/tasks/transcribe-parse [POST]
func (h *handler) TranscribeAndParse(c *gin.Context) {
	ctx := c.Request.Context()

	audio, err := h.processAudioReq(c)
	if err != nil {
		response.Error(c, h.uploadError(err))
		return
	}

	out, err := h.uc.TranscribeAndParse(ctx, audio)
	if err != nil {
		h.l.Errorf(ctx, "uc.TranscribeAndParse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTranscribeParseResp(out))
}

// uploadError passes request-level HTTP errors through and maps the rest.
func (h *handler) uploadError(err error) error {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}
	return h.mapError(err)
}
