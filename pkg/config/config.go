package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Assistant struct {
		Name         string   `yaml:"name" json:"name" jsonschema:"default=Delta,description=Assistant name used in replies"`
		WakeWords    []string `yaml:"wake_words" json:"wake_words" jsonschema:"description=Wake word prefixes stripped before routing"`
		HistoryLimit int      `yaml:"history_limit" json:"history_limit" jsonschema:"default=50,description=Number of transcript entries served to clients"`
	} `yaml:"assistant" json:"assistant" jsonschema:"description=Assistant behavior configuration"`

	Preferences struct {
		File string `yaml:"file" json:"file" jsonschema:"default=delta-prefs.yml,description=Path to the preference store file"`
	} `yaml:"preferences" json:"preferences" jsonschema:"description=Preference store configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:delta.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration for conversation history"`

	Scheduler struct {
		Tick time.Duration `yaml:"tick" json:"tick" jsonschema:"default=1s,description=Reminder scan interval"`
	} `yaml:"scheduler" json:"scheduler" jsonschema:"description=Reminder scheduler configuration"`

	Weather    WeatherConfig    `yaml:"weather" json:"weather" jsonschema:"description=Weather provider configuration"`
	News       NewsConfig       `yaml:"news" json:"news" jsonschema:"description=News provider configuration"`
	Wikipedia  WikipediaConfig  `yaml:"wikipedia" json:"wikipedia" jsonschema:"description=Wikipedia summary configuration"`
	Dictionary DictionaryConfig `yaml:"dictionary" json:"dictionary" jsonschema:"description=Dictionary provider configuration"`
	Jokes      JokesConfig      `yaml:"jokes" json:"jokes" jsonschema:"description=Joke provider configuration"`
	Email      EmailConfig      `yaml:"email" json:"email" jsonschema:"description=Outgoing email configuration"`
	Voice      VoiceConfig      `yaml:"voice" json:"voice" jsonschema:"description=Speech-to-text and text-to-speech configuration"`
	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Article content extraction configuration"`
}

// WeatherConfig holds weather provider settings
type WeatherConfig struct {
	Endpoint string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://api.weatherapi.com/v1,description=WeatherAPI-compatible base URL"`
	APIKey   string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Request timeout"`
}

// FeedConfig is a single RSS/Atom feed for the rss news source
type FeedConfig struct {
	Name string `yaml:"name" json:"name" jsonschema:"description=Display name for the feed"`
	URL  string `yaml:"url" json:"url" jsonschema:"required,description=Feed URL"`
}

// NewsConfig holds news provider settings. Source selects between a
// NewsAPI-compatible endpoint and plain RSS feeds.
type NewsConfig struct {
	Source   string        `yaml:"source" json:"source" jsonschema:"default=newsapi,enum=newsapi,enum=rss,description=Headline source"`
	Endpoint string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://newsapi.org/v2,description=NewsAPI-compatible base URL"`
	APIKey   string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key for the newsapi source"`
	Country  string        `yaml:"country" json:"country" jsonschema:"default=us,description=Country code for top headlines"`
	Feeds    []FeedConfig  `yaml:"feeds" json:"feeds" jsonschema:"description=Feeds for the rss source"`
	Limit    int           `yaml:"limit" json:"limit" jsonschema:"default=5,description=Number of headlines per digest"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Request timeout"`
}

// WikipediaConfig holds encyclopedia summary settings
type WikipediaConfig struct {
	Endpoint  string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://en.wikipedia.org/api/rest_v1,description=MediaWiki REST base URL"`
	Sentences int           `yaml:"sentences" json:"sentences" jsonschema:"default=2,description=Sentences to keep from the summary"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Request timeout"`
}

// DictionaryConfig holds dictionary provider settings
type DictionaryConfig struct {
	Endpoint string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://api.dictionaryapi.dev/api/v2,description=Dictionary API base URL"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Request timeout"`
}

// JokesConfig holds joke provider settings
type JokesConfig struct {
	Endpoint string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://icanhazdadjoke.com,description=Joke API base URL"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Request timeout"`
}

// SMTPConfig holds SMTP transport settings for the smtp email provider
type SMTPConfig struct {
	Host     string `yaml:"host" json:"host" jsonschema:"description=SMTP server host"`
	Port     int    `yaml:"port" json:"port" jsonschema:"default=587,description=SMTP server port"`
	Username string `yaml:"username" json:"username" jsonschema:"description=SMTP auth username"`
	Password string `yaml:"password" json:"password" jsonschema:"description=SMTP auth password (can use environment variable)"`
}

// EmailConfig holds outgoing email settings. Provider selects the transport,
// empty disables email entirely.
type EmailConfig struct {
	Provider       string        `yaml:"provider" json:"provider" jsonschema:"enum=,enum=smtp,enum=sendgrid,description=Email transport (empty disables email)"`
	From           string        `yaml:"from" json:"from" jsonschema:"description=Sender address"`
	SMTP           SMTPConfig    `yaml:"smtp" json:"smtp" jsonschema:"description=SMTP transport settings"`
	SendGridAPIKey string        `yaml:"sendgrid_api_key" json:"sendgrid_api_key" jsonschema:"description=SendGrid API key (can use environment variable)"`
	Timeout        time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Send timeout"`
}

// VoiceConfig holds speech endpoints settings, OpenAI-compatible
type VoiceConfig struct {
	Enabled  bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable transcription and speech endpoints"`
	Endpoint string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://api.openai.com/v1,description=OpenAI-compatible API endpoint"`
	APIKey   string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	STTModel string        `yaml:"stt_model" json:"stt_model" jsonschema:"default=whisper-1,description=Transcription model"`
	TTSModel string        `yaml:"tts_model" json:"tts_model" jsonschema:"default=tts-1,description=Speech synthesis model"`
	TTSVoice string        `yaml:"tts_voice" json:"tts_voice" jsonschema:"default=alloy,description=Speech synthesis voice"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Request timeout"`
}

// ExtractionConfig holds article content extraction settings
type ExtractionConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable article extraction for headline follow-ups"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per article"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Delta/1.0,description=User agent for HTTP requests"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=100,description=Minimum text length to consider valid"`
	MaxChars      int           `yaml:"max_chars" json:"max_chars" jsonschema:"default=1200,description=Cut extracted text to this many characters"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for assistant
	if cfg.Assistant.Name == "" {
		cfg.Assistant.Name = "Delta"
	}
	if len(cfg.Assistant.WakeWords) == 0 {
		cfg.Assistant.WakeWords = []string{"hey delta", "delta"}
	}
	if cfg.Assistant.HistoryLimit == 0 {
		cfg.Assistant.HistoryLimit = 50
	}

	// set defaults for preferences
	if cfg.Preferences.File == "" {
		cfg.Preferences.File = "delta-prefs.yml"
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:delta.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for scheduler
	if cfg.Scheduler.Tick == 0 {
		cfg.Scheduler.Tick = time.Second
	}

	// set defaults for providers
	if cfg.Weather.Endpoint == "" {
		cfg.Weather.Endpoint = "https://api.weatherapi.com/v1"
	}
	if cfg.Weather.Timeout == 0 {
		cfg.Weather.Timeout = 10 * time.Second
	}

	if cfg.News.Source == "" {
		cfg.News.Source = "newsapi"
	}
	if cfg.News.Endpoint == "" {
		cfg.News.Endpoint = "https://newsapi.org/v2"
	}
	if cfg.News.Country == "" {
		cfg.News.Country = "us"
	}
	if cfg.News.Limit == 0 {
		cfg.News.Limit = 5
	}
	if cfg.News.Timeout == 0 {
		cfg.News.Timeout = 10 * time.Second
	}

	if cfg.Wikipedia.Endpoint == "" {
		cfg.Wikipedia.Endpoint = "https://en.wikipedia.org/api/rest_v1"
	}
	if cfg.Wikipedia.Sentences == 0 {
		cfg.Wikipedia.Sentences = 2
	}
	if cfg.Wikipedia.Timeout == 0 {
		cfg.Wikipedia.Timeout = 10 * time.Second
	}

	if cfg.Dictionary.Endpoint == "" {
		cfg.Dictionary.Endpoint = "https://api.dictionaryapi.dev/api/v2"
	}
	if cfg.Dictionary.Timeout == 0 {
		cfg.Dictionary.Timeout = 10 * time.Second
	}

	if cfg.Jokes.Endpoint == "" {
		cfg.Jokes.Endpoint = "https://icanhazdadjoke.com"
	}
	if cfg.Jokes.Timeout == 0 {
		cfg.Jokes.Timeout = 10 * time.Second
	}

	// set defaults for email
	if cfg.Email.SMTP.Port == 0 {
		cfg.Email.SMTP.Port = 587
	}
	if cfg.Email.Timeout == 0 {
		cfg.Email.Timeout = 30 * time.Second
	}

	// set defaults for voice
	if cfg.Voice.Endpoint == "" {
		cfg.Voice.Endpoint = "https://api.openai.com/v1"
	}
	if cfg.Voice.STTModel == "" {
		cfg.Voice.STTModel = "whisper-1"
	}
	if cfg.Voice.TTSModel == "" {
		cfg.Voice.TTSModel = "tts-1"
	}
	if cfg.Voice.TTSVoice == "" {
		cfg.Voice.TTSVoice = "alloy"
	}
	if cfg.Voice.Timeout == 0 {
		cfg.Voice.Timeout = 60 * time.Second
	}

	// set defaults for extraction
	if cfg.Extraction.Timeout == 0 {
		cfg.Extraction.Timeout = 30 * time.Second
	}
	if cfg.Extraction.UserAgent == "" {
		cfg.Extraction.UserAgent = "Delta/1.0"
	}
	if cfg.Extraction.MinTextLength == 0 {
		cfg.Extraction.MinTextLength = 100
	}
	if cfg.Extraction.MaxChars == 0 {
		cfg.Extraction.MaxChars = 1200
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate assistant config
	if cfg.Assistant.HistoryLimit < 1 {
		return fmt.Errorf("assistant history_limit must be at least 1")
	}

	// validate scheduler config
	if cfg.Scheduler.Tick < 100*time.Millisecond {
		return fmt.Errorf("scheduler tick must be at least 100ms")
	}

	// validate news config
	switch cfg.News.Source {
	case "newsapi":
	case "rss":
		if len(cfg.News.Feeds) == 0 {
			return fmt.Errorf("news source rss needs at least one feed")
		}
		for i, f := range cfg.News.Feeds {
			if f.URL == "" {
				return fmt.Errorf("news feed %d has no url", i)
			}
		}
	default:
		return fmt.Errorf("news.source must be newsapi or rss, got %q", cfg.News.Source)
	}
	if cfg.News.Limit < 1 {
		return fmt.Errorf("news.limit must be at least 1")
	}

	// validate wikipedia config
	if cfg.Wikipedia.Sentences < 1 {
		return fmt.Errorf("wikipedia.sentences must be at least 1")
	}

	// validate email config
	switch cfg.Email.Provider {
	case "":
	case "smtp":
		if cfg.Email.SMTP.Host == "" {
			return fmt.Errorf("email provider smtp needs smtp.host")
		}
		if cfg.Email.From == "" {
			return fmt.Errorf("email provider smtp needs a from address")
		}
	case "sendgrid":
		if cfg.Email.SendGridAPIKey == "" {
			return fmt.Errorf("email provider sendgrid needs sendgrid_api_key")
		}
		if cfg.Email.From == "" {
			return fmt.Errorf("email provider sendgrid needs a from address")
		}
	default:
		return fmt.Errorf("email.provider must be smtp or sendgrid, got %q", cfg.Email.Provider)
	}

	// validate extraction config
	if cfg.Extraction.Enabled {
		if cfg.Extraction.Timeout < time.Second {
			return fmt.Errorf("extraction timeout must be at least 1 second")
		}
		if cfg.Extraction.MinTextLength < 0 {
			return fmt.Errorf("extraction min_text_length must be non-negative")
		}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetVoiceConfig returns voice configuration
func (c *Config) GetVoiceConfig() VoiceConfig {
	return c.Voice
}

// GetExtractionConfig returns content extraction configuration
func (c *Config) GetExtractionConfig() ExtractionConfig {
	return c.Extraction
}

// WeatherEnabled tells whether the weather provider is usable
func (c *Config) WeatherEnabled() bool {
	return c.Weather.APIKey != ""
}

// NewsEnabled tells whether a headline source is usable
func (c *Config) NewsEnabled() bool {
	if c.News.Source == "rss" {
		return len(c.News.Feeds) > 0
	}
	return c.News.APIKey != ""
}

// EmailEnabled tells whether an email transport is configured
func (c *Config) EmailEnabled() bool {
	return c.Email.Provider != ""
}
