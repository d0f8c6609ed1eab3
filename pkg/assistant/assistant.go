// Package assistant turns utterances into replies. It routes the text to an
// intent, runs the matching handler and records both sides of the exchange in
// the transcript. Handler failures never escape, they become friendly reply
// strings.
package assistant

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/delta/pkg/domain"
	"github.com/umputun/delta/pkg/email"
	"github.com/umputun/delta/pkg/prefs"
	"github.com/umputun/delta/pkg/router"
	"github.com/umputun/delta/pkg/scheduler"
)

//go:generate moq -out mocks/weather.go -pkg mocks -skip-ensure -fmt goimports . WeatherProvider
//go:generate moq -out mocks/news.go -pkg mocks -skip-ensure -fmt goimports . NewsProvider
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/wiki.go -pkg mocks -skip-ensure -fmt goimports . WikiProvider
//go:generate moq -out mocks/dict.go -pkg mocks -skip-ensure -fmt goimports . DictProvider
//go:generate moq -out mocks/jokes.go -pkg mocks -skip-ensure -fmt goimports . JokeProvider
//go:generate moq -out mocks/email.go -pkg mocks -skip-ensure -fmt goimports . EmailSender
//go:generate moq -out mocks/history.go -pkg mocks -skip-ensure -fmt goimports . HistoryStore
//go:generate moq -out mocks/publisher.go -pkg mocks -skip-ensure -fmt goimports . Publisher

// WeatherProvider returns current conditions for a city
type WeatherProvider interface {
	Current(ctx context.Context, city string) (*domain.WeatherReport, error)
}

// NewsProvider delivers top headlines
type NewsProvider interface {
	TopHeadlines(ctx context.Context, limit int) ([]domain.Headline, error)
}

// Extractor pulls readable article text from a URL
type Extractor interface {
	Extract(ctx context.Context, urlStr string) (string, error)
}

// WikiProvider returns an encyclopedia summary for a topic
type WikiProvider interface {
	Summary(ctx context.Context, topic string) (*domain.WikiSummary, error)
}

// DictDefinition is the dictionary lookup result the assistant formats
type DictDefinition struct {
	Word         string
	PartOfSpeech string
	Meaning      string
}

// DictProvider returns the first definition of a word
type DictProvider interface {
	Define(ctx context.Context, word string) (*DictDefinition, error)
}

// JokeProvider returns a random joke
type JokeProvider interface {
	Random(ctx context.Context) (string, error)
}

// EmailSender sends an outgoing message
type EmailSender interface {
	Send(ctx context.Context, msg email.Message) error
}

// HistoryStore persists the conversation transcript
type HistoryStore interface {
	Add(ctx context.Context, entry *domain.HistoryEntry) error
	Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
	Clear(ctx context.Context) error
}

// Publisher pushes asynchronous events to connected chat clients
type Publisher interface {
	Publish(event domain.Event)
}

// Params collects the assistant dependencies. Any provider may be nil, the
// matching feature then answers with a "not configured" reply instead of
// failing. A nil Router or Prefs is replaced with a default in New.
type Params struct {
	Router    *router.Router
	Prefs     *prefs.Store
	History   HistoryStore
	Reminders *scheduler.Scheduler
	Publisher Publisher

	Weather   WeatherProvider
	News      NewsProvider
	Extractor Extractor
	Wiki      WikiProvider
	Dict      DictProvider
	Jokes     JokeProvider
	Email     EmailSender

	Name         string   // assistant's own name, used in identity replies
	WakeWords    []string // stripped from the start of utterances
	NewsLimit    int      // headlines per digest
	HistoryLimit int      // transcript entries served to clients
}

// Service is the assistant. Safe for concurrent use, though commands are
// normally handled one at a time.
type Service struct {
	Params

	mu            sync.Mutex
	lastHeadlines []domain.Headline // kept so "tell me more about headline 2" can resolve
}

// New creates the assistant service
func New(p Params) *Service {
	if p.Router == nil {
		p.Router = router.New()
	}
	if p.Prefs == nil {
		p.Prefs = prefs.NewMemory()
	}
	if p.Name == "" {
		p.Name = "Delta"
	}
	if p.NewsLimit <= 0 {
		p.NewsLimit = 5
	}
	if p.HistoryLimit <= 0 {
		p.HistoryLimit = 50
	}
	return &Service{Params: p}
}

// Respond handles one utterance end to end and returns the reply. The
// exchange is appended to the transcript, transcript write failures are
// logged but do not affect the reply.
func (s *Service) Respond(ctx context.Context, utterance string) domain.Reply {
	text := router.StripWake(utterance, s.WakeWords)
	if text == "" {
		return domain.Reply{Text: "I didn't hear anything. Say it again?", Intent: domain.IntentUnknown}
	}

	match := s.Router.Route(text)
	reply := s.handle(ctx, match)
	reply.Intent = match.Intent

	s.record(ctx, domain.HistoryEntry{Role: domain.RoleUser, Text: utterance, Intent: string(match.Intent)})
	s.record(ctx, domain.HistoryEntry{Role: domain.RoleAssistant, Text: reply.Text, Intent: string(match.Intent)})

	return reply
}

// Greeting is the time-of-day dependent opening line for a fresh session
func (s *Service) Greeting() string {
	var part string
	switch h := time.Now().Hour(); {
	case h < 12:
		part = "Good morning"
	case h < 18:
		part = "Good afternoon"
	default:
		part = "Good evening"
	}

	if name := s.Prefs.Name(); name != "" {
		return part + ", " + name + "! I'm " + s.Name + ", your personal AI assistant. How can I help?"
	}
	return part + "! I'm " + s.Name + ", your personal AI assistant. How can I help?"
}

// SendEmail validates and sends a composed message. Used by the compose form
// endpoint, the voice path only points the user at the form.
func (s *Service) SendEmail(ctx context.Context, msg email.Message) error {
	if s.Email == nil {
		return &NotConfiguredError{Feature: "email"}
	}
	return s.Email.Send(ctx, msg)
}

// HandleReminder is the scheduler notify callback. Runs on the scheduler
// goroutine, so it only appends to the transcript and pushes an event.
func (s *Service) HandleReminder(r domain.Reminder) {
	text := "Reminder: " + r.Message
	lgr.Printf("[INFO] delivering reminder %s", r.ID)

	s.record(context.Background(), domain.HistoryEntry{Role: domain.RoleAssistant, Text: text, Intent: string(domain.IntentReminder)})

	if s.Publisher != nil {
		s.Publisher.Publish(domain.Event{Type: domain.EventReminder, Text: text, Time: time.Now()})
	}
}

// Transcript returns the recent conversation, empty when no store configured
func (s *Service) Transcript(ctx context.Context) ([]domain.HistoryEntry, error) {
	if s.History == nil {
		return nil, nil
	}
	return s.History.Recent(ctx, s.HistoryLimit)
}

// ClearTranscript wipes the stored conversation
func (s *Service) ClearTranscript(ctx context.Context) error {
	if s.History == nil {
		return nil
	}
	return s.History.Clear(ctx)
}

// NotConfiguredError marks a feature disabled by missing configuration
type NotConfiguredError struct {
	Feature string
}

func (e *NotConfiguredError) Error() string {
	return e.Feature + " is not configured"
}

func (s *Service) record(ctx context.Context, entry domain.HistoryEntry) {
	if s.History == nil {
		return
	}
	if err := s.History.Add(ctx, &entry); err != nil {
		lgr.Printf("[WARN] failed to record transcript entry: %v", err)
	}
}

func (s *Service) setHeadlines(headlines []domain.Headline) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastHeadlines = headlines
}

func (s *Service) headline(n int) (domain.Headline, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 1 || n > len(s.lastHeadlines) {
		return domain.Headline{}, false
	}
	return s.lastHeadlines[n-1], true
}
