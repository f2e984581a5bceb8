package http

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"voice-task-tracker/internal/voice"
)

const (
	audioField = "audio"
	// room for multipart boundaries and headers on top of the file itself
	multipartOverhead = 1 << 20
)

var allowedAudioTypes = map[string]struct{}{
	"audio/wav":   {},
	"audio/x-wav": {},
	"audio/wave":  {},
	"audio/mpeg":  {},
	"audio/mp3":   {},
	"audio/mp4":   {},
	"audio/m4a":   {},
	"audio/x-m4a": {},
	"audio/webm":  {},
	"audio/ogg":   {},
	"audio/flac":  {},
}

// processParseReq binds and validates the parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processAudioReq reads the uploaded audio file from the multipart form.
func (h *handler) processAudioReq(c *gin.Context) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)

	fh, err := c.FormFile(audioField)
	if err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return nil, errAudioTooLarge
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			return nil, voice.ErrEmptyAudio
		default:
			return nil, errInvalidUpload
		}
	}

	if fh.Size > h.maxUploadBytes {
		return nil, errAudioTooLarge
	}
	if !isAllowedAudioType(fh.Header.Get("Content-Type")) {
		return nil, errInvalidAudioType
	}

	f, err := fh.Open()
	if err != nil {
		return nil, errInvalidUpload
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errInvalidUpload
	}
	if len(data) == 0 {
		return nil, voice.ErrEmptyAudio
	}
	return data, nil
}

func isAllowedAudioType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	_, ok := allowedAudioTypes[mediaType]
	return ok
}
