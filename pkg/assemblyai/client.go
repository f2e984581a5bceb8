package assemblyai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultUploadURL     = "https://api.assemblyai.com/v2/upload"
	DefaultTranscriptURL = "https://api.assemblyai.com/v2/transcript"
	DefaultLanguageCode  = "en"
	DefaultPollInterval  = 3 * time.Second
)

// Client is the AssemblyAI speech-to-text API client.
type Client struct {
	apiKey        string
	uploadURL     string
	transcriptURL string
	languageCode  string
	pollInterval  time.Duration
	httpClient    *http.Client
}

// New creates a new AssemblyAI client.
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	return &Client{
		apiKey:        apiKey,
		uploadURL:     DefaultUploadURL,
		transcriptURL: DefaultTranscriptURL,
		languageCode:  DefaultLanguageCode,
		pollInterval:  DefaultPollInterval,
		httpClient:    &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// WithUploadURL overrides the upload endpoint. Empty keeps the current value.
func (c *Client) WithUploadURL(url string) *Client {
	if url != "" {
		c.uploadURL = url
	}
	return c
}

// WithTranscriptURL overrides the transcript endpoint. Empty keeps the current value.
func (c *Client) WithTranscriptURL(url string) *Client {
	if url != "" {
		c.transcriptURL = strings.TrimRight(url, "/")
	}
	return c
}

// WithLanguageCode sets the spoken language (e.g. "en", "en_us").
func (c *Client) WithLanguageCode(code string) *Client {
	c.languageCode = code
	return c
}

// WithPollInterval sets how often WaitForTranscript checks job status.
func (c *Client) WithPollInterval(d time.Duration) *Client {
	if d > 0 {
		c.pollInterval = d
	}
	return c
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	if hc != nil {
		c.httpClient = hc
	}
	return c
}

// Upload sends raw audio bytes and returns the private URL AssemblyAI stores them at.
func (c *Client) Upload(ctx context.Context, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", ErrEmptyAudio
	}

	var out uploadResponse
	if err := c.do(ctx, http.MethodPost, c.uploadURL, "application/octet-stream", bytes.NewReader(audio), &out); err != nil {
		return "", fmt.Errorf("upload audio: %w", err)
	}
	if out.UploadURL == "" {
		return "", fmt.Errorf("upload audio: response has no upload_url")
	}
	return out.UploadURL, nil
}

// CreateTranscript starts a transcription job for audioURL and returns its ID.
func (c *Client) CreateTranscript(ctx context.Context, audioURL string) (string, error) {
	body, err := json.Marshal(transcriptRequest{AudioURL: audioURL, LanguageCode: c.languageCode})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	var out Transcript
	if err := c.do(ctx, http.MethodPost, c.transcriptURL, "application/json", bytes.NewReader(body), &out); err != nil {
		return "", fmt.Errorf("create transcript: %w", err)
	}
	if out.ID == "" {
		return "", fmt.Errorf("create transcript: response has no id")
	}
	return out.ID, nil
}

// GetTranscript fetches the current state of a transcription job.
func (c *Client) GetTranscript(ctx context.Context, id string) (Transcript, error) {
	var out Transcript
	if err := c.do(ctx, http.MethodGet, c.transcriptURL+"/"+id, "", nil, &out); err != nil {
		return Transcript{}, fmt.Errorf("get transcript %s: %w", id, err)
	}
	return out, nil
}

// WaitForTranscript polls until the job completes, fails or ctx is done.
func (c *Client) WaitForTranscript(ctx context.Context, id string) (string, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		tr, err := c.GetTranscript(ctx, id)
		if err != nil {
			return "", err
		}

		switch tr.Status {
		case StatusCompleted:
			return tr.Text, nil
		case StatusError:
			return "", fmt.Errorf("%w: %s", ErrTranscriptionFailed, tr.Error)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}
	}
}

// TranscribeAudio uploads audio, starts a job and waits for the text.
func (c *Client) TranscribeAudio(ctx context.Context, audio []byte) (string, error) {
	uploadURL, err := c.Upload(ctx, audio)
	if err != nil {
		return "", err
	}
	return c.TranscribeURL(ctx, uploadURL)
}

// TranscribeURL transcribes audio already reachable at audioURL.
func (c *Client) TranscribeURL(ctx context.Context, audioURL string) (string, error) {
	id, err := c.CreateTranscript(ctx, audioURL)
	if err != nil {
		return "", err
	}
	return c.WaitForTranscript(ctx, id)
}

func (c *Client) do(ctx context.Context, method, url, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call AssemblyAI API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp errorResponse
		if jsonErr := json.NewDecoder(resp.Body).Decode(&errResp); jsonErr == nil {
			apiErr.Message = errResp.Error
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
