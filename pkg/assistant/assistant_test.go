package assistant_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/umputun/delta/pkg/assistant"
	"github.com/umputun/delta/pkg/assistant/mocks"
	"github.com/umputun/delta/pkg/domain"
	"github.com/umputun/delta/pkg/email"
	"github.com/umputun/delta/pkg/prefs"
	"github.com/umputun/delta/pkg/scheduler"
	"github.com/umputun/delta/pkg/weather"
)

func testPrefs(t *testing.T) *prefs.Store {
	t.Helper()
	store, err := prefs.Load(filepath.Join(t.TempDir(), "prefs.yml"))
	require.NoError(t, err)
	return store
}

func testService(t *testing.T, p Params) *Service {
	t.Helper()
	if p.Prefs == nil {
		p.Prefs = testPrefs(t)
	}
	return New(p)
}

func TestService_RespondTimeAndDate(t *testing.T) {
	svc := testService(t, Params{})

	reply := svc.Respond(context.Background(), "what time is it")
	assert.Equal(t, domain.IntentTime, reply.Intent)
	assert.Contains(t, reply.Text, "It's ")

	reply = svc.Respond(context.Background(), "what is the date today")
	assert.Equal(t, domain.IntentDate, reply.Intent)
	assert.Contains(t, reply.Text, "Today is ")
}

func TestService_RespondUnknown(t *testing.T) {
	svc := testService(t, Params{})

	reply := svc.Respond(context.Background(), "flarb the gromit")
	assert.Equal(t, domain.IntentUnknown, reply.Intent)
	assert.Contains(t, reply.Text, "didn't understand")
}

func TestService_RespondEmpty(t *testing.T) {
	svc := testService(t, Params{WakeWords: []string{"hey delta", "delta"}})

	reply := svc.Respond(context.Background(), "   ")
	assert.Contains(t, reply.Text, "didn't hear")

	// wake word alone carries no command
	reply = svc.Respond(context.Background(), "hey delta")
	assert.Contains(t, reply.Text, "didn't hear")
}

func TestService_WakeWordStripped(t *testing.T) {
	svc := testService(t, Params{WakeWords: []string{"hey delta", "delta"}})

	reply := svc.Respond(context.Background(), "Hey Delta, what time is it?")
	assert.Equal(t, domain.IntentTime, reply.Intent)
}

func TestService_Weather(t *testing.T) {
	t.Run("city from utterance", func(t *testing.T) {
		mockWeather := &mocks.WeatherProviderMock{
			CurrentFunc: func(ctx context.Context, city string) (*domain.WeatherReport, error) {
				return &domain.WeatherReport{City: "London", Condition: "Partly cloudy", TempC: 21, Humidity: 60, WindKPH: 14}, nil
			},
		}
		svc := testService(t, Params{Weather: mockWeather})

		reply := svc.Respond(context.Background(), "what's the weather in London")
		assert.Equal(t, domain.IntentWeather, reply.Intent)
		assert.Contains(t, reply.Text, "21°C")
		assert.Contains(t, reply.Text, "partly cloudy")
		assert.Contains(t, reply.Text, "London")

		calls := mockWeather.CurrentCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "london", calls[0].City)
	})

	t.Run("falls back to home city", func(t *testing.T) {
		store := testPrefs(t)
		require.NoError(t, store.Set(prefs.KeyCity, "Paris"))

		mockWeather := &mocks.WeatherProviderMock{
			CurrentFunc: func(ctx context.Context, city string) (*domain.WeatherReport, error) {
				return &domain.WeatherReport{City: city, Condition: "Clear", TempC: 18, Humidity: 50, WindKPH: 5}, nil
			},
		}
		svc := testService(t, Params{Weather: mockWeather, Prefs: store})

		reply := svc.Respond(context.Background(), "how is the weather")
		assert.Contains(t, reply.Text, "Paris")
	})

	t.Run("no city at all prompts", func(t *testing.T) {
		svc := testService(t, Params{Weather: &mocks.WeatherProviderMock{}})

		reply := svc.Respond(context.Background(), "what's the weather")
		assert.Contains(t, reply.Text, "Which city")
	})

	t.Run("service failure is graceful", func(t *testing.T) {
		mockWeather := &mocks.WeatherProviderMock{
			CurrentFunc: func(ctx context.Context, city string) (*domain.WeatherReport, error) {
				return nil, errors.New("connection refused")
			},
		}
		svc := testService(t, Params{Weather: mockWeather})

		reply := svc.Respond(context.Background(), "weather in London")
		assert.Equal(t, domain.IntentWeather, reply.Intent)
		assert.Contains(t, reply.Text, "couldn't reach the weather service")
	})

	t.Run("api error message surfaces", func(t *testing.T) {
		mockWeather := &mocks.WeatherProviderMock{
			CurrentFunc: func(ctx context.Context, city string) (*domain.WeatherReport, error) {
				return nil, &weather.APIError{Code: 1006, Message: "No matching location found."}
			},
		}
		svc := testService(t, Params{Weather: mockWeather})

		reply := svc.Respond(context.Background(), "weather in Atlantis")
		assert.Contains(t, reply.Text, "No matching location found.")
	})

	t.Run("not configured", func(t *testing.T) {
		svc := testService(t, Params{})

		reply := svc.Respond(context.Background(), "weather in London")
		assert.Contains(t, reply.Text, "aren't configured")
	})
}

func TestService_NewsAndDetail(t *testing.T) {
	headlines := []domain.Headline{
		{Title: "First story", Source: "BBC", Link: "https://example.com/1"},
		{Title: "Second story", Source: "CNN", Link: "https://example.com/2", Description: "More on the second story."},
	}
	mockNews := &mocks.NewsProviderMock{
		TopHeadlinesFunc: func(ctx context.Context, limit int) ([]domain.Headline, error) {
			return headlines, nil
		},
	}
	mockExtractor := &mocks.ExtractorMock{
		ExtractFunc: func(ctx context.Context, urlStr string) (string, error) {
			return "extracted article text", nil
		},
	}
	svc := testService(t, Params{News: mockNews, Extractor: mockExtractor, NewsLimit: 5})

	reply := svc.Respond(context.Background(), "tell me the news")
	assert.Equal(t, domain.IntentNews, reply.Intent)
	assert.Contains(t, reply.Text, "1. First story (BBC)")
	assert.Contains(t, reply.Text, "2. Second story (CNN)")

	reply = svc.Respond(context.Background(), "tell me more about headline 2")
	assert.Equal(t, domain.IntentNewsDetail, reply.Intent)
	assert.Contains(t, reply.Text, "Second story")
	assert.Contains(t, reply.Text, "extracted article text")
	assert.Equal(t, "https://example.com/2", reply.Link)

	calls := mockExtractor.ExtractCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "https://example.com/2", calls[0].URLStr)
}

func TestService_NewsDetailWithoutDigest(t *testing.T) {
	svc := testService(t, Params{News: &mocks.NewsProviderMock{}})

	reply := svc.Respond(context.Background(), "read headline 3")
	assert.Contains(t, reply.Text, "Ask for the news first")
}

func TestService_NewsDetailExtractionFails(t *testing.T) {
	mockNews := &mocks.NewsProviderMock{
		TopHeadlinesFunc: func(ctx context.Context, limit int) ([]domain.Headline, error) {
			return []domain.Headline{{Title: "Story", Link: "https://example.com/1"}}, nil
		},
	}
	mockExtractor := &mocks.ExtractorMock{
		ExtractFunc: func(ctx context.Context, urlStr string) (string, error) {
			return "", errors.New("paywalled")
		},
	}
	svc := testService(t, Params{News: mockNews, Extractor: mockExtractor})

	svc.Respond(context.Background(), "news please")
	reply := svc.Respond(context.Background(), "headline 1")
	assert.Contains(t, reply.Text, "couldn't read the full article")
	assert.Equal(t, "https://example.com/1", reply.Link)
}

func TestService_NewsFailure(t *testing.T) {
	mockNews := &mocks.NewsProviderMock{
		TopHeadlinesFunc: func(ctx context.Context, limit int) ([]domain.Headline, error) {
			return nil, errors.New("rate limited")
		},
	}
	svc := testService(t, Params{News: mockNews})

	reply := svc.Respond(context.Background(), "what's in the news")
	assert.Contains(t, reply.Text, "couldn't fetch the news")
}

func TestService_Wiki(t *testing.T) {
	mockWiki := &mocks.WikiProviderMock{
		SummaryFunc: func(ctx context.Context, topic string) (*domain.WikiSummary, error) {
			return &domain.WikiSummary{Title: "Alan Turing", Extract: "Alan Turing was a mathematician.", URL: "https://en.wikipedia.org/wiki/Alan_Turing"}, nil
		},
	}
	svc := testService(t, Params{Wiki: mockWiki})

	reply := svc.Respond(context.Background(), "search wikipedia for alan turing")
	assert.Equal(t, domain.IntentWiki, reply.Intent)
	assert.Contains(t, reply.Text, "Alan Turing was a mathematician.")
	assert.NotEmpty(t, reply.Link)

	calls := mockWiki.SummaryCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "alan turing", calls[0].Topic)
}

func TestService_Math(t *testing.T) {
	svc := testService(t, Params{})

	tests := []struct {
		utterance string
		want      string
	}{
		{"what is 2 + 2", "= 4"},
		{"calculate sin(0)", "= 0"},
		{"what's 10 / 4", "= 2.5"},
	}
	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			reply := svc.Respond(context.Background(), tt.utterance)
			assert.Equal(t, domain.IntentMath, reply.Intent)
			assert.Contains(t, reply.Text, tt.want)
		})
	}

	reply := svc.Respond(context.Background(), "calculate __import__('os')")
	assert.Contains(t, reply.Text, "couldn't work that out")
}

func TestService_RememberNameAndCity(t *testing.T) {
	store := testPrefs(t)
	svc := testService(t, Params{Prefs: store})

	reply := svc.Respond(context.Background(), "call me Alex")
	assert.Equal(t, domain.IntentRememberName, reply.Intent)
	assert.Contains(t, reply.Text, "alex")
	assert.Equal(t, "alex", store.Name())

	reply = svc.Respond(context.Background(), "I live in Berlin")
	assert.Equal(t, domain.IntentRememberCity, reply.Intent)
	assert.Equal(t, "berlin", store.City())

	reply = svc.Respond(context.Background(), "what is my name")
	assert.Equal(t, domain.IntentMyName, reply.Intent)
	assert.Contains(t, reply.Text, "alex")
}

func TestService_MyNameUnset(t *testing.T) {
	svc := testService(t, Params{})

	reply := svc.Respond(context.Background(), "do you know my name")
	assert.Contains(t, reply.Text, "haven't told me")
}

func TestService_RemindersAndAlarms(t *testing.T) {
	sched := scheduler.New(time.Second, nil)
	svc := testService(t, Params{Reminders: sched})

	reply := svc.Respond(context.Background(), "remind me to stretch in 10 minutes")
	assert.Equal(t, domain.IntentReminder, reply.Intent)
	assert.Contains(t, reply.Text, "stretch")
	assert.Contains(t, reply.Text, "10 minutes")

	reply = svc.Respond(context.Background(), "set alarm 07:30")
	assert.Equal(t, domain.IntentAlarm, reply.Intent)
	assert.Contains(t, reply.Text, "Alarm set for")

	require.Len(t, sched.List(), 2)

	reply = svc.Respond(context.Background(), "remind me to do stuff")
	assert.Contains(t, reply.Text, "remind me to")
}

func TestService_LinksForSearchOpenPlay(t *testing.T) {
	svc := testService(t, Params{})

	reply := svc.Respond(context.Background(), "search for golang tutorials")
	assert.Equal(t, domain.IntentSearch, reply.Intent)
	assert.Contains(t, reply.Link, "google.com/search?q=golang+tutorials")

	reply = svc.Respond(context.Background(), "play jazz beats on youtube")
	assert.Equal(t, domain.IntentPlay, reply.Intent)
	assert.Contains(t, reply.Link, "youtube.com/results")

	reply = svc.Respond(context.Background(), "open youtube")
	assert.Equal(t, "https://www.youtube.com", reply.Link)

	reply = svc.Respond(context.Background(), "open example.com")
	assert.Equal(t, "https://example.com", reply.Link)

	reply = svc.Respond(context.Background(), "open notepad")
	assert.Contains(t, reply.Text, "can't open desktop applications")
	assert.Empty(t, reply.Link)
}

func TestService_ExitAndIdentity(t *testing.T) {
	svc := testService(t, Params{Name: "Delta"})

	reply := svc.Respond(context.Background(), "goodbye")
	assert.Equal(t, domain.IntentExit, reply.Intent)
	assert.True(t, reply.Exit)

	reply = svc.Respond(context.Background(), "who are you")
	assert.Equal(t, domain.IntentIdentity, reply.Intent)
	assert.Contains(t, reply.Text, "Delta")
}

func TestService_Joke(t *testing.T) {
	mockJokes := &mocks.JokeProviderMock{
		RandomFunc: func(ctx context.Context) (string, error) {
			return "Why did the gopher cross the road?", nil
		},
	}
	svc := testService(t, Params{Jokes: mockJokes})

	reply := svc.Respond(context.Background(), "tell me a joke")
	assert.Equal(t, domain.IntentJoke, reply.Intent)
	assert.Equal(t, "Why did the gopher cross the road?", reply.Text)
}

func TestService_Define(t *testing.T) {
	mockDict := &mocks.DictProviderMock{
		DefineFunc: func(ctx context.Context, word string) (*DictDefinition, error) {
			return &DictDefinition{Word: "serendipity", PartOfSpeech: "noun", Meaning: "a happy accident"}, nil
		},
	}
	svc := testService(t, Params{Dict: mockDict})

	reply := svc.Respond(context.Background(), "define serendipity")
	assert.Equal(t, domain.IntentDefine, reply.Intent)
	assert.Contains(t, reply.Text, "serendipity (noun): a happy accident")
}

func TestService_EmailGuidance(t *testing.T) {
	svc := testService(t, Params{Email: &mocks.EmailSenderMock{}})

	reply := svc.Respond(context.Background(), "send an email to mom")
	assert.Equal(t, domain.IntentEmail, reply.Intent)
	assert.Contains(t, reply.Text, "compose form")
}

func TestService_SendEmail(t *testing.T) {
	mockEmail := &mocks.EmailSenderMock{
		SendFunc: func(ctx context.Context, msg email.Message) error { return nil },
	}
	svc := testService(t, Params{Email: mockEmail})

	err := svc.SendEmail(context.Background(), email.Message{To: "a@example.com", Subject: "hi", Body: "hello"})
	require.NoError(t, err)
	require.Len(t, mockEmail.SendCalls(), 1)
	assert.Equal(t, "a@example.com", mockEmail.SendCalls()[0].Msg.To)

	// not configured
	svc = testService(t, Params{})
	err = svc.SendEmail(context.Background(), email.Message{To: "a@example.com"})
	var ncErr *NotConfiguredError
	require.ErrorAs(t, err, &ncErr)
	assert.Equal(t, "email", ncErr.Feature)
}

func TestService_TranscriptRecorded(t *testing.T) {
	mockHistory := &mocks.HistoryStoreMock{
		AddFunc: func(ctx context.Context, entry *domain.HistoryEntry) error { return nil },
	}
	svc := testService(t, Params{History: mockHistory})

	svc.Respond(context.Background(), "what time is it")

	calls := mockHistory.AddCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, domain.RoleUser, calls[0].Entry.Role)
	assert.Equal(t, domain.RoleAssistant, calls[1].Entry.Role)
	assert.Equal(t, string(domain.IntentTime), calls[1].Entry.Intent)
}

func TestService_TranscriptFailureIgnored(t *testing.T) {
	mockHistory := &mocks.HistoryStoreMock{
		AddFunc: func(ctx context.Context, entry *domain.HistoryEntry) error { return errors.New("disk full") },
	}
	svc := testService(t, Params{History: mockHistory})

	reply := svc.Respond(context.Background(), "what time is it")
	assert.Equal(t, domain.IntentTime, reply.Intent, "reply unaffected by transcript failure")
}

func TestService_HandleReminder(t *testing.T) {
	mockHistory := &mocks.HistoryStoreMock{
		AddFunc: func(ctx context.Context, entry *domain.HistoryEntry) error { return nil },
	}
	mockPublisher := &mocks.PublisherMock{
		PublishFunc: func(event domain.Event) {},
	}
	svc := testService(t, Params{History: mockHistory, Publisher: mockPublisher})

	svc.HandleReminder(domain.Reminder{ID: "r1", Message: "stand up", At: time.Now()})

	require.Len(t, mockPublisher.PublishCalls(), 1)
	event := mockPublisher.PublishCalls()[0].Event
	assert.Equal(t, domain.EventReminder, event.Type)
	assert.Equal(t, "Reminder: stand up", event.Text)

	require.Len(t, mockHistory.AddCalls(), 1)
	assert.Equal(t, "Reminder: stand up", mockHistory.AddCalls()[0].Entry.Text)
}

func TestService_Greeting(t *testing.T) {
	store := testPrefs(t)
	svc := testService(t, Params{Prefs: store, Name: "Delta"})

	greeting := svc.Greeting()
	assert.Contains(t, greeting, "I'm Delta")
	assert.True(t, strings.HasPrefix(greeting, "Good "))

	require.NoError(t, store.Set(prefs.KeyName, "Alex"))
	assert.Contains(t, svc.Greeting(), "Alex")
}

func TestService_NilPrefsDefaultsToMemory(t *testing.T) {
	svc := New(Params{Name: "Delta"})

	assert.True(t, strings.HasPrefix(svc.Greeting(), "Good "))

	reply := svc.Respond(context.Background(), "call me ada")
	assert.Equal(t, domain.IntentRememberName, reply.Intent)
	assert.Contains(t, reply.Text, "ada")

	reply = svc.Respond(context.Background(), "what's my name")
	assert.Contains(t, reply.Text, "ada")
}
