package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// DefaultWhisperModel is the speech-to-text model served by the same API.
const DefaultWhisperModel = "whisper-large-v3"

// ITranscriber converts an audio file into text.
type ITranscriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

type transcriberImpl struct {
	cfg Config
}

// NewTranscriber creates a speech-to-text client against the audio
// transcriptions endpoint.
func NewTranscriber(cfg Config) (ITranscriber, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &transcriberImpl{cfg: cfg}, nil
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

func (t *transcriberImpl) Transcribe(ctx context.Context, audioPath string) (string, error) {
	audio, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open audio file: %w", err)
	}
	defer audio.Close()

	var body bytes.Buffer
	mpw := multipart.NewWriter(&body)
	fw, err := mpw.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(fw, audio); err != nil {
		return "", fmt.Errorf("read audio file: %w", err)
	}
	if err := mpw.WriteField("model", DefaultWhisperModel); err != nil {
		return "", err
	}
	if err := mpw.Close(); err != nil {
		return "", err
	}

	url := t.cfg.BaseURL + "/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+t.cfg.APIKey)
	req.Header.Set("Content-Type", mpw.FormDataContentType())

	resp, err := t.cfg.HTTPClient.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &BackendError{Status: resp.StatusCode, Body: backendMessage(raw)}
	}

	var out transcriptionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode transcription response: %w", err)
	}
	return strings.TrimSpace(out.Text), nil
}
