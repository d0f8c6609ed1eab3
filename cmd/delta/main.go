package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/delta/pkg/assistant"
	"github.com/umputun/delta/pkg/config"
	"github.com/umputun/delta/pkg/content"
	"github.com/umputun/delta/pkg/dict"
	"github.com/umputun/delta/pkg/domain"
	"github.com/umputun/delta/pkg/email"
	"github.com/umputun/delta/pkg/jokes"
	"github.com/umputun/delta/pkg/news"
	"github.com/umputun/delta/pkg/prefs"
	"github.com/umputun/delta/pkg/repository"
	"github.com/umputun/delta/pkg/router"
	"github.com/umputun/delta/pkg/scheduler"
	"github.com/umputun/delta/pkg/voice"
	"github.com/umputun/delta/pkg/weather"
	"github.com/umputun/delta/pkg/wiki"
	"github.com/umputun/delta/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"DELTA_CONFIG" default:"delta.yml" description:"config file path"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address override"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	// .env is optional, a missing file is fine
	_ = godotenv.Load()

	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)

	log.Printf("[INFO] starting delta version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] delta failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires the application together and blocks until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	// re-setup logging with secrets masked now that the config is known
	setupLog(opts.Debug, secrets(cfg)...)

	store, err := prefs.Load(cfg.Preferences.File)
	if err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}

	repo, err := repository.New(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("open history database: %w", err)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			log.Printf("[WARN] failed to close database: %v", closeErr)
		}
	}()

	// scheduler notify closes over svc, set after the service is built
	var svc *assistant.Service
	sched := scheduler.New(cfg.Scheduler.Tick, func(r domain.Reminder) { svc.HandleReminder(r) })

	svc = assistant.New(assistant.Params{
		Router:       router.New(),
		Prefs:        store,
		History:      repo.History,
		Reminders:    sched,
		Weather:      weatherProvider(cfg),
		News:         newsProvider(cfg),
		Extractor:    extractorProvider(cfg),
		Wiki:         wiki.New(cfg.Wikipedia.Endpoint, cfg.Wikipedia.Sentences, cfg.Wikipedia.Timeout),
		Dict:         &dictAdapter{client: dict.New(cfg.Dictionary.Endpoint, cfg.Dictionary.Timeout)},
		Jokes:        jokes.New(cfg.Jokes.Endpoint, cfg.Jokes.Timeout),
		Email:        emailProvider(cfg),
		Name:         cfg.Assistant.Name,
		WakeWords:    cfg.Assistant.WakeWords,
		NewsLimit:    cfg.News.Limit,
		HistoryLimit: cfg.Assistant.HistoryLimit,
	})

	srv := server.New(cfg, svc, voiceProvider(cfg), store, sched, revision, opts.Debug)
	svc.Publisher = srv.Hub() // reminder events go to connected chat clients

	sched.Start(ctx)
	defer sched.Stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error { return srv.Run(ctx) })
	return group.Wait()
}

// weatherProvider returns nil when no API key is configured, the assistant
// then answers with a "not configured" reply
func weatherProvider(cfg *config.Config) assistant.WeatherProvider {
	if !cfg.WeatherEnabled() {
		log.Print("[WARN] weather is disabled until an API key is configured")
		return nil
	}
	return weather.New(cfg.Weather.Endpoint, cfg.Weather.APIKey, cfg.Weather.Timeout)
}

func newsProvider(cfg *config.Config) assistant.NewsProvider {
	if !cfg.NewsEnabled() {
		log.Print("[WARN] news is disabled until an API key or feeds are configured")
		return nil
	}
	if cfg.News.Source == "rss" {
		feeds := make([]news.Feed, 0, len(cfg.News.Feeds))
		for _, f := range cfg.News.Feeds {
			feeds = append(feeds, news.Feed{Name: f.Name, URL: f.URL})
		}
		return news.NewFeedClient(feeds, "Delta/"+revision, cfg.News.Timeout)
	}
	return news.NewAPIClient(cfg.News.Endpoint, cfg.News.APIKey, cfg.News.Country, cfg.News.Timeout)
}

func extractorProvider(cfg *config.Config) assistant.Extractor {
	if !cfg.Extraction.Enabled {
		return nil
	}
	return content.NewExtractor(cfg.Extraction.Timeout, cfg.Extraction.UserAgent,
		cfg.Extraction.MinTextLength, cfg.Extraction.MaxChars)
}

func emailProvider(cfg *config.Config) assistant.EmailSender {
	if !cfg.EmailEnabled() {
		log.Print("[WARN] email is disabled until a provider is configured")
		return nil
	}
	provider, err := email.New(cfg.Email)
	if err != nil {
		log.Printf("[WARN] email is disabled: %v", err)
		return nil
	}
	return provider
}

func voiceProvider(cfg *config.Config) server.VoiceService {
	if !cfg.Voice.Enabled {
		return nil
	}
	if cfg.Voice.APIKey == "" {
		log.Print("[WARN] voice is disabled until an API key is configured")
		return nil
	}
	return voice.New(cfg.Voice)
}

// secrets collects configured credentials for log masking
func secrets(cfg *config.Config) []string {
	var res []string
	for _, s := range []string{cfg.Weather.APIKey, cfg.News.APIKey, cfg.Email.SMTP.Password,
		cfg.Email.SendGridAPIKey, cfg.Voice.APIKey} {
		if s != "" {
			res = append(res, s)
		}
	}
	return res
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
