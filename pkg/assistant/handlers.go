package assistant

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/delta/pkg/domain"
	"github.com/umputun/delta/pkg/mathexpr"
	"github.com/umputun/delta/pkg/prefs"
	"github.com/umputun/delta/pkg/router"
	"github.com/umputun/delta/pkg/weather"
	"github.com/umputun/delta/pkg/wiki"
)

const unknownReply = "I'm sorry, I didn't understand that. Try asking about the weather, the news, or say \"help me with math\" like \"what is 2 + 2\"."

func (s *Service) handle(ctx context.Context, m router.Match) domain.Reply {
	switch m.Intent {
	case domain.IntentTime:
		return domain.Reply{Text: "It's " + time.Now().Format("3:04 PM") + "."}
	case domain.IntentDate:
		return domain.Reply{Text: "Today is " + time.Now().Format("Monday, January 2, 2006") + "."}
	case domain.IntentWiki:
		return s.handleWiki(ctx, m.Text)
	case domain.IntentSearch:
		return s.handleSearch(m.Text)
	case domain.IntentOpen:
		return s.handleOpen(m.Text)
	case domain.IntentWeather:
		return s.handleWeather(ctx, m.Text)
	case domain.IntentNewsDetail:
		return s.handleNewsDetail(ctx, m.Text)
	case domain.IntentNews:
		return s.handleNews(ctx)
	case domain.IntentEmail:
		return s.handleEmail()
	case domain.IntentJoke:
		return s.handleJoke(ctx)
	case domain.IntentIdentity:
		return domain.Reply{Text: "I'm " + s.Name + ", your personal AI assistant."}
	case domain.IntentMyName:
		return s.handleMyName()
	case domain.IntentRememberName:
		return s.handleRememberName(m.Text)
	case domain.IntentRememberCity:
		return s.handleRememberCity(m.Text)
	case domain.IntentExit:
		return domain.Reply{Text: "Goodbye! Talk to you later.", Exit: true}
	case domain.IntentMath:
		return s.handleMath(m.Text)
	case domain.IntentAlarm:
		return s.handleAlarm(m.Text)
	case domain.IntentReminder:
		return s.handleReminderRequest(m.Text)
	case domain.IntentDefine:
		return s.handleDefine(ctx, m.Text)
	case domain.IntentPlay:
		return s.handlePlay(m.Text)
	default:
		return domain.Reply{Text: unknownReply}
	}
}

func (s *Service) handleWeather(ctx context.Context, text string) domain.Reply {
	if s.Weather == nil {
		return domain.Reply{Text: "Weather lookups aren't configured. Set a weather API key to enable them."}
	}

	city := router.City(text)
	if city == "" {
		city = s.Prefs.City()
	}
	if city == "" {
		return domain.Reply{Text: "Which city? Say \"weather in London\", or tell me where you live with \"I live in London\"."}
	}

	report, err := s.Weather.Current(ctx, city)
	if err != nil {
		lgr.Printf("[WARN] weather lookup for %q failed: %v", city, err)
		var apiErr *weather.APIError
		if errors.As(err, &apiErr) {
			return domain.Reply{Text: "The weather service says: " + apiErr.Message}
		}
		return domain.Reply{Text: "I couldn't reach the weather service right now. Try again in a bit."}
	}

	text = fmt.Sprintf("It's currently %s and %s in %s. Humidity is %s%% and wind speed is %s km/h.",
		trimFloat(report.TempC)+"°C", strings.ToLower(report.Condition), report.City,
		trimFloat(report.Humidity), trimFloat(report.WindKPH))
	return domain.Reply{Text: text}
}

func (s *Service) handleNews(ctx context.Context) domain.Reply {
	if s.News == nil {
		return domain.Reply{Text: "News headlines aren't configured. Set a news API key or RSS feeds to enable them."}
	}

	headlines, err := s.News.TopHeadlines(ctx, s.NewsLimit)
	if err != nil {
		lgr.Printf("[WARN] news fetch failed: %v", err)
		return domain.Reply{Text: "I couldn't fetch the news right now. Try again in a bit."}
	}
	if len(headlines) == 0 {
		return domain.Reply{Text: "No headlines right now, the news desk is quiet."}
	}

	s.setHeadlines(headlines)

	var b strings.Builder
	b.WriteString("Here are today's top headlines:\n")
	for i, h := range headlines {
		fmt.Fprintf(&b, "%d. %s", i+1, h.Title)
		if h.Source != "" {
			fmt.Fprintf(&b, " (%s)", h.Source)
		}
		b.WriteString("\n")
	}
	b.WriteString("Say \"tell me more about headline 2\" for details.")
	return domain.Reply{Text: b.String()}
}

func (s *Service) handleNewsDetail(ctx context.Context, text string) domain.Reply {
	n := router.HeadlineOrdinal(text)
	if n == 0 {
		return domain.Reply{Text: "Which headline? Say something like \"tell me more about headline 2\"."}
	}

	h, ok := s.headline(n)
	if !ok {
		return domain.Reply{Text: "I don't have that headline. Ask for the news first, then pick a number from the list."}
	}

	if s.Extractor == nil || h.Link == "" {
		reply := domain.Reply{Text: h.Title, Link: h.Link}
		if h.Description != "" {
			reply.Text = h.Title + ": " + h.Description
		}
		return reply
	}

	excerpt, err := s.Extractor.Extract(ctx, h.Link)
	if err != nil {
		lgr.Printf("[WARN] article extraction for %s failed: %v", h.Link, err)
		reply := domain.Reply{Text: h.Title + ". I couldn't read the full article, here is the link instead.", Link: h.Link}
		return reply
	}
	return domain.Reply{Text: h.Title + "\n\n" + excerpt, Link: h.Link}
}

func (s *Service) handleWiki(ctx context.Context, text string) domain.Reply {
	if s.Wiki == nil {
		return domain.Reply{Text: "Wikipedia lookups aren't configured."}
	}

	topic := router.WikiTopic(text)
	if topic == "" {
		return domain.Reply{Text: "What should I look up? Say \"wikipedia Alan Turing\"."}
	}

	summary, err := s.Wiki.Summary(ctx, topic)
	if err != nil {
		if errors.Is(err, wiki.ErrNotFound) {
			return domain.Reply{Text: "I couldn't find anything on Wikipedia about " + topic + "."}
		}
		lgr.Printf("[WARN] wikipedia lookup for %q failed: %v", topic, err)
		return domain.Reply{Text: "I couldn't reach Wikipedia right now. Try again in a bit."}
	}
	return domain.Reply{Text: "According to Wikipedia: " + summary.Extract, Link: summary.URL}
}

func (s *Service) handleDefine(ctx context.Context, text string) domain.Reply {
	if s.Dict == nil {
		return domain.Reply{Text: "Dictionary lookups aren't configured."}
	}

	word := router.DefineWord(text)
	if word == "" {
		return domain.Reply{Text: "Which word? Say \"define serendipity\"."}
	}

	def, err := s.Dict.Define(ctx, word)
	if err != nil {
		lgr.Printf("[WARN] dictionary lookup for %q failed: %v", word, err)
		return domain.Reply{Text: "I couldn't find a definition for " + word + "."}
	}

	reply := def.Word
	if def.PartOfSpeech != "" {
		reply += " (" + def.PartOfSpeech + ")"
	}
	reply += ": " + def.Meaning
	return domain.Reply{Text: reply}
}

func (s *Service) handleJoke(ctx context.Context) domain.Reply {
	if s.Jokes == nil {
		return domain.Reply{Text: "The joke service isn't configured. That's the real joke."}
	}

	joke, err := s.Jokes.Random(ctx)
	if err != nil {
		lgr.Printf("[WARN] joke fetch failed: %v", err)
		return domain.Reply{Text: "I couldn't think of a joke right now. Try again in a bit."}
	}
	return domain.Reply{Text: joke}
}

func (s *Service) handleEmail() domain.Reply {
	if s.Email == nil {
		return domain.Reply{Text: "Email isn't configured. Set an email provider to enable sending."}
	}
	return domain.Reply{Text: "Sure, use the compose form to write your email and I'll send it."}
}

func (s *Service) handleMyName() domain.Reply {
	if name := s.Prefs.Name(); name != "" {
		return domain.Reply{Text: "Your name is " + name + "."}
	}
	return domain.Reply{Text: "You haven't told me your name yet. Say \"call me\" followed by your name."}
}

func (s *Service) handleRememberName(text string) domain.Reply {
	name := router.Name(text)
	if name == "" {
		return domain.Reply{Text: "What should I call you? Say \"call me\" followed by your name."}
	}

	if err := s.Prefs.Set(prefs.KeyName, name); err != nil {
		lgr.Printf("[WARN] failed to persist name preference: %v", err)
		return domain.Reply{Text: "Nice to meet you, " + name + "! I couldn't save that though, so I may forget after a restart."}
	}
	return domain.Reply{Text: "Nice to meet you, " + name + "! I'll remember that."}
}

func (s *Service) handleRememberCity(text string) domain.Reply {
	city := router.HomeCity(text)
	if city == "" {
		return domain.Reply{Text: "Where do you live? Say \"I live in\" followed by your city."}
	}

	if err := s.Prefs.Set(prefs.KeyCity, city); err != nil {
		lgr.Printf("[WARN] failed to persist city preference: %v", err)
		return domain.Reply{Text: "Got it, " + city + ". I couldn't save that though, so I may forget after a restart."}
	}
	return domain.Reply{Text: "Got it, I'll use " + city + " as your home city."}
}

func (s *Service) handleMath(text string) domain.Reply {
	expr := router.MathExpression(text)
	if expr == "" {
		return domain.Reply{Text: "What should I calculate? Say something like \"what is 2 + 2\"."}
	}

	result, err := mathexpr.Eval(expr)
	if err != nil {
		return domain.Reply{Text: "I couldn't work that out. I can do arithmetic and things like sin, sqrt and factorial."}
	}
	return domain.Reply{Text: expr + " = " + trimFloat(result)}
}

func (s *Service) handleAlarm(text string) domain.Reply {
	if s.Reminders == nil {
		return domain.Reply{Text: "Alarms aren't available right now."}
	}

	hour, minute, ok := router.AlarmTime(text)
	if !ok {
		return domain.Reply{Text: "When? Say \"set alarm 07:30\" with the time as HH:MM."}
	}

	r := s.Reminders.AddAt("Alarm! It's "+fmt.Sprintf("%02d:%02d", hour, minute)+".", hour, minute)
	return domain.Reply{Text: "Alarm set for " + r.At.Format("3:04 PM") + "."}
}

func (s *Service) handleReminderRequest(text string) domain.Reply {
	if s.Reminders == nil {
		return domain.Reply{Text: "Reminders aren't available right now."}
	}

	action, minutes, ok := router.ReminderSpec(text)
	if !ok {
		return domain.Reply{Text: "Say \"remind me to\" something \"in 10 minutes\" and I'll set it up."}
	}

	s.Reminders.AddIn(action, time.Duration(minutes)*time.Minute)
	unit := "minutes"
	if minutes == 1 {
		unit = "minute"
	}
	return domain.Reply{Text: fmt.Sprintf("Okay, I'll remind you to %s in %d %s.", action, minutes, unit)}
}

func (s *Service) handleSearch(text string) domain.Reply {
	query := router.SearchQuery(text)
	if query == "" {
		return domain.Reply{Text: "What should I search for?"}
	}
	link := "https://www.google.com/search?q=" + url.QueryEscape(query)
	return domain.Reply{Text: "Here's a search for " + query + ".", Link: link}
}

func (s *Service) handlePlay(text string) domain.Reply {
	query := router.PlayQuery(text)
	if query == "" {
		return domain.Reply{Text: "What should I play?"}
	}
	link := "https://www.youtube.com/results?search_query=" + url.QueryEscape(query)
	return domain.Reply{Text: "Here's " + query + " on YouTube.", Link: link}
}

// sites the open intent resolves by name
var knownSites = map[string]string{
	"youtube":   "https://www.youtube.com",
	"google":    "https://www.google.com",
	"gmail":     "https://mail.google.com",
	"wikipedia": "https://www.wikipedia.org",
	"github":    "https://github.com",
	"maps":      "https://maps.google.com",
	"reddit":    "https://www.reddit.com",
	"twitter":   "https://twitter.com",
}

func (s *Service) handleOpen(text string) domain.Reply {
	target := router.OpenTarget(text)
	if target == "" {
		return domain.Reply{Text: "What should I open?"}
	}

	if link, ok := knownSites[target]; ok {
		return domain.Reply{Text: "Opening " + target + ".", Link: link}
	}

	// anything with a dot is treated as a site address
	if strings.Contains(target, ".") && !strings.Contains(target, " ") {
		link := target
		if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
			link = "https://" + link
		}
		return domain.Reply{Text: "Opening " + target + ".", Link: link}
	}

	return domain.Reply{Text: "I can't open desktop applications here, but I can open websites. Try \"open youtube\" or \"open example.com\"."}
}

// trimFloat formats a float without trailing zeros, 21.0 prints as 21
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
