// Package server is the HTTP surface of the assistant: a JSON API for
// commands, transcript, preferences and email, optional voice endpoints, a
// websocket for pushed events and the embedded chat page.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/delta/pkg/domain"
	"github.com/umputun/delta/pkg/email"
)

//go:generate moq -out mocks/assistant.go -pkg mocks -skip-ensure -fmt goimports . Assistant
//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/voice.go -pkg mocks -skip-ensure -fmt goimports . VoiceService
//go:generate moq -out mocks/prefs.go -pkg mocks -skip-ensure -fmt goimports . PreferenceStore
//go:generate moq -out mocks/reminders.go -pkg mocks -skip-ensure -fmt goimports . ReminderLister

//go:embed web
var webFS embed.FS

// Assistant handles utterances and the chat session lifecycle
type Assistant interface {
	Respond(ctx context.Context, utterance string) domain.Reply
	Greeting() string
	Transcript(ctx context.Context) ([]domain.HistoryEntry, error)
	ClearTranscript(ctx context.Context) error
	SendEmail(ctx context.Context, msg email.Message) error
}

// VoiceService transcribes uploaded audio and synthesizes speech
type VoiceService interface {
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
	Speak(ctx context.Context, text string) (io.ReadCloser, error)
}

// PreferenceStore exposes stored preferences to the API
type PreferenceStore interface {
	All() map[string]string
	Set(key, value string) error
}

// ReminderLister reports pending reminders
type ReminderLister interface {
	List() []domain.Reminder
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	assistant Assistant
	voice     VoiceService // nil when voice is disabled
	prefs     PreferenceStore
	reminders ReminderLister
	hub       *Hub
	version   string
	debug     bool

	page *template.Template

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// New initializes a new server instance
func New(cfg ConfigProvider, assistant Assistant, voice VoiceService, prefs PreferenceStore, reminders ReminderLister, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		assistant: assistant,
		voice:     voice,
		prefs:     prefs,
		reminders: reminders,
		hub:       NewHub(),
		version:   version,
		debug:     debug,
		page:      template.Must(template.ParseFS(webFS, "web/index.html")),
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Hub returns the websocket hub, the assistant publishes events through it
func (s *Server) Hub() *Hub { return s.hub }

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.hub.CloseAll()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("delta", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(10 * 1024 * 1024)) // 10MB, voice uploads included
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /command", s.commandHandler)
		r.HandleFunc("GET /history", s.historyHandler)
		r.HandleFunc("DELETE /history", s.clearHistoryHandler)
		r.HandleFunc("GET /preferences", s.preferencesHandler)
		r.HandleFunc("PUT /preferences/{key}", s.setPreferenceHandler)
		r.HandleFunc("GET /reminders", s.remindersHandler)
		r.HandleFunc("POST /email", s.emailHandler)
		r.HandleFunc("POST /voice/transcribe", s.transcribeHandler)
		r.HandleFunc("POST /voice/speak", s.speakHandler)
	})

	s.router.HandleFunc("GET /ws", s.wsHandler)
	s.router.HandleFunc("GET /{$}", s.indexHandler)
}
