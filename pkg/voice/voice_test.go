package voice

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/delta/pkg/config"
)

func TestClient_Transcribe(t *testing.T) {
	// create test server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio/transcriptions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		err := r.ParseMultipartForm(1 << 20)
		require.NoError(t, err)
		assert.Equal(t, "whisper-1", r.FormValue("model"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "command.wav", header.Filename)

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake audio bytes", string(data))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text": "  what time is it  "}`))
	}))
	defer server.Close()

	client := New(config.VoiceConfig{
		Enabled:  true,
		Endpoint: server.URL + "/v1",
		APIKey:   "test-key",
		STTModel: "whisper-1",
		Timeout:  5 * time.Second,
	})

	text, err := client.Transcribe(context.Background(), strings.NewReader("fake audio bytes"), "command.wav")
	require.NoError(t, err)
	assert.Equal(t, "what time is it", text)
}

func TestClient_TranscribeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"message": "whisper is down"}}`))
	}))
	defer server.Close()

	client := New(config.VoiceConfig{Endpoint: server.URL + "/v1", APIKey: "test-key", STTModel: "whisper-1"})

	_, err := client.Transcribe(context.Background(), strings.NewReader("audio"), "a.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transcribe audio")
}

func TestClient_Speak(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio/speech", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("mp3 bytes"))
	}))
	defer server.Close()

	client := New(config.VoiceConfig{
		Enabled:  true,
		Endpoint: server.URL + "/v1",
		APIKey:   "test-key",
		TTSModel: "tts-1",
		TTSVoice: "alloy",
	})

	stream, err := client.Speak(context.Background(), "Good morning")
	require.NoError(t, err)
	defer stream.Close()

	data, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, "mp3 bytes", string(data))
}

func TestClient_SpeakServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"message": "bad voice"}}`))
	}))
	defer server.Close()

	client := New(config.VoiceConfig{Endpoint: server.URL + "/v1", APIKey: "test-key", TTSModel: "tts-1", TTSVoice: "alloy"})

	_, err := client.Speak(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "synthesize speech")
}
