package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test-config.yml")
	err := os.WriteFile(path, []byte(content), 0o644)
	require.NoError(t, err)
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
server:
  listen: ":9090"
  timeout: 45s

assistant:
  name: Jarvis
  wake_words: ["hey jarvis"]
  history_limit: 10

weather:
  api_key: test-key

news:
  source: rss
  feeds:
    - url: https://example.com/feed1.xml
      name: Feed1
    - url: https://example.com/feed2.xml
      name: Feed2
  limit: 3

email:
  provider: smtp
  from: delta@example.com
  smtp:
    host: smtp.example.com
    port: 2525
    username: user
    password: pass
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)

		assert.Equal(t, "Jarvis", cfg.Assistant.Name)
		assert.Equal(t, []string{"hey jarvis"}, cfg.Assistant.WakeWords)
		assert.Equal(t, 10, cfg.Assistant.HistoryLimit)

		assert.True(t, cfg.WeatherEnabled())
		assert.Equal(t, "test-key", cfg.Weather.APIKey)

		assert.Equal(t, "rss", cfg.News.Source)
		require.Len(t, cfg.News.Feeds, 2)
		assert.Equal(t, "https://example.com/feed1.xml", cfg.News.Feeds[0].URL)
		assert.Equal(t, "Feed1", cfg.News.Feeds[0].Name)
		assert.Equal(t, 3, cfg.News.Limit)
		assert.True(t, cfg.NewsEnabled())

		assert.Equal(t, "smtp", cfg.Email.Provider)
		assert.Equal(t, "delta@example.com", cfg.Email.From)
		assert.Equal(t, "smtp.example.com", cfg.Email.SMTP.Host)
		assert.Equal(t, 2525, cfg.Email.SMTP.Port)
		assert.True(t, cfg.EmailEnabled())
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, ""))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)

		assert.Equal(t, "Delta", cfg.Assistant.Name)
		assert.Equal(t, []string{"hey delta", "delta"}, cfg.Assistant.WakeWords)
		assert.Equal(t, 50, cfg.Assistant.HistoryLimit)

		assert.Equal(t, "delta-prefs.yml", cfg.Preferences.File)
		assert.Equal(t, "file:delta.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, time.Second, cfg.Scheduler.Tick)

		assert.Equal(t, "https://api.weatherapi.com/v1", cfg.Weather.Endpoint)
		assert.Equal(t, 10*time.Second, cfg.Weather.Timeout)
		assert.False(t, cfg.WeatherEnabled())

		assert.Equal(t, "newsapi", cfg.News.Source)
		assert.Equal(t, "https://newsapi.org/v2", cfg.News.Endpoint)
		assert.Equal(t, "us", cfg.News.Country)
		assert.Equal(t, 5, cfg.News.Limit)
		assert.False(t, cfg.NewsEnabled())

		assert.Equal(t, "https://en.wikipedia.org/api/rest_v1", cfg.Wikipedia.Endpoint)
		assert.Equal(t, 2, cfg.Wikipedia.Sentences)

		assert.Equal(t, "https://api.dictionaryapi.dev/api/v2", cfg.Dictionary.Endpoint)
		assert.Equal(t, "https://icanhazdadjoke.com", cfg.Jokes.Endpoint)

		assert.Empty(t, cfg.Email.Provider)
		assert.Equal(t, 587, cfg.Email.SMTP.Port)
		assert.False(t, cfg.EmailEnabled())

		assert.False(t, cfg.Voice.Enabled)
		assert.Equal(t, "https://api.openai.com/v1", cfg.Voice.Endpoint)
		assert.Equal(t, "whisper-1", cfg.Voice.STTModel)
		assert.Equal(t, "tts-1", cfg.Voice.TTSModel)
		assert.Equal(t, "alloy", cfg.Voice.TTSVoice)

		assert.False(t, cfg.Extraction.Enabled)
		assert.Equal(t, "Delta/1.0", cfg.Extraction.UserAgent)
		assert.Equal(t, 1200, cfg.Extraction.MaxChars)
	})

	t.Run("environment variable expansion", func(t *testing.T) {
		t.Setenv("TEST_WEATHER_KEY", "secret-from-env")

		configContent := `
weather:
  api_key: ${TEST_WEATHER_KEY}
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		assert.Equal(t, "secret-from-env", cfg.Weather.APIKey)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configContent := `
invalid yaml content
  with bad indentation
    and no structure
`
		cfg, err := Load(writeConfig(t, configContent))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "bad news source",
			content: "news:\n  source: telegraph\n",
			errMsg:  "news.source must be newsapi or rss",
		},
		{
			name:    "rss without feeds",
			content: "news:\n  source: rss\n",
			errMsg:  "news source rss needs at least one feed",
		},
		{
			name:    "rss feed without url",
			content: "news:\n  source: rss\n  feeds:\n    - name: NoURL\n",
			errMsg:  "news feed 0 has no url",
		},
		{
			name:    "bad email provider",
			content: "email:\n  provider: pigeon\n",
			errMsg:  "email.provider must be smtp or sendgrid",
		},
		{
			name:    "smtp without host",
			content: "email:\n  provider: smtp\n  from: a@b.c\n",
			errMsg:  "email provider smtp needs smtp.host",
		},
		{
			name:    "smtp without from",
			content: "email:\n  provider: smtp\n  smtp:\n    host: smtp.example.com\n",
			errMsg:  "email provider smtp needs a from address",
		},
		{
			name:    "sendgrid without key",
			content: "email:\n  provider: sendgrid\n  from: a@b.c\n",
			errMsg:  "email provider sendgrid needs sendgrid_api_key",
		},
		{
			name:    "short server timeout",
			content: "server:\n  timeout: 100ms\n",
			errMsg:  "server timeout must be at least 1 second",
		},
		{
			name:    "short scheduler tick",
			content: "scheduler:\n  tick: 10ms\n",
			errMsg:  "scheduler tick must be at least 100ms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_GetServerConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n  listen: \":9090\"\n  timeout: 45s\n"))
	require.NoError(t, err)

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":9090", listen)
	assert.Equal(t, 45*time.Second, timeout)
}
