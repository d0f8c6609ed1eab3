// Package voice adapts OpenAI-compatible speech endpoints, turning recorded
// audio into text and replies into audio. The browser does the recording and
// playback, this package only talks to the API.
package voice

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/delta/pkg/config"
)

// Client wraps the speech endpoints of an OpenAI-compatible API
type Client struct {
	client *openai.Client
	cfg    config.VoiceConfig
}

// New creates a voice client from the voice config
func New(cfg config.VoiceConfig) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		cfg:    cfg,
	}
}

// Transcribe converts recorded audio to text. The filename matters only for
// its extension, the API uses it to pick a decoder.
func (c *Client) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.cfg.STTModel,
		Reader:   audio,
		FilePath: filename,
	})
	if err != nil {
		return "", fmt.Errorf("transcribe audio: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}

// Speak synthesizes the text and returns the audio stream, mp3 by default.
// The caller owns the returned reader and must close it.
func (c *Client) Speak(ctx context.Context, text string) (io.ReadCloser, error) {
	resp, err := c.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.SpeechModel(c.cfg.TTSModel),
		Input: text,
		Voice: openai.SpeechVoice(c.cfg.TTSVoice),
	})
	if err != nil {
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}
	return resp, nil
}
