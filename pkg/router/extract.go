package router

import (
	"regexp"
	"strconv"
	"strings"
)

// extraction regexes, compiled once
var (
	reCity     = regexp.MustCompile(`weather(?: in| at| for)? ([a-zA-Z][a-zA-Z\s\-]*)`)
	reReminder = regexp.MustCompile(`remind me to (.+?) in (\d+)\s*minutes?`)
	reAlarm    = regexp.MustCompile(`\b(\d{1,2}:\d{2})\b`)
	reOrdinal  = regexp.MustCompile(`(?:headline|number|story)\s+(?:number\s+)?(\d+)`)
)

// City pulls the city out of "what's the weather in london". Empty string
// means the utterance named no city and the stored home city should be used.
func City(text string) string {
	m := reCity.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	city := strings.TrimSpace(m[1])
	// drop trailing filler like "weather in london right now"
	for _, cut := range []string{" right now", " today", " now", " please"} {
		city = strings.TrimSuffix(city, cut)
	}
	return strings.TrimSpace(city)
}

// ReminderSpec pulls the action and delay from "remind me to X in N minutes".
// The ok result is false when the utterance does not fit the pattern.
func ReminderSpec(text string) (action string, minutes int, ok bool) {
	m := reReminder.FindStringSubmatch(text)
	if m == nil {
		return "", 0, false
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil || minutes <= 0 {
		return "", 0, false
	}
	return strings.TrimSpace(m[1]), minutes, true
}

// AlarmTime pulls an HH:MM clock time from the utterance and validates the
// ranges, 0-23 hours and 0-59 minutes.
func AlarmTime(text string) (hour, minute int, ok bool) {
	m := reAlarm.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	parts := strings.SplitN(m[1], ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// Name pulls the preferred name from "call me X" or "my name is X"
func Name(text string) string {
	for _, p := range []string{"call me ", "my name is "} {
		if strings.HasPrefix(text, p) {
			return strings.TrimSpace(strings.TrimPrefix(text, p))
		}
	}
	return ""
}

// HomeCity pulls the home city from "i live in X" or "my city is X"
func HomeCity(text string) string {
	for _, p := range []string{"i live in ", "my city is "} {
		if idx := strings.Index(text, p); idx >= 0 {
			return strings.TrimSpace(text[idx+len(p):])
		}
	}
	return ""
}

// WikiTopic strips the wikipedia boilerplate and returns the topic to look up
func WikiTopic(text string) string {
	topic := text
	for _, cut := range []string{"according to wikipedia", "search wikipedia for", "wikipedia for", "on wikipedia", "wikipedia", "tell me about", "who is", "what is", "search for"} {
		topic = strings.ReplaceAll(topic, cut, " ")
	}
	return strings.TrimSpace(strings.Join(strings.Fields(topic), " "))
}

// SearchQuery strips the search boilerplate and returns the query
func SearchQuery(text string) string {
	q := text
	for _, cut := range []string{"search for", "search google for", "google for", "search", "google"} {
		q = strings.ReplaceAll(q, cut, " ")
	}
	return strings.TrimSpace(strings.Join(strings.Fields(q), " "))
}

// DefineWord pulls the word from "define X" or "definition of X"
func DefineWord(text string) string {
	for _, p := range []string{"definition of ", "meaning of ", "define "} {
		if idx := strings.Index(text, p); idx >= 0 {
			word := strings.TrimSpace(text[idx+len(p):])
			word = strings.TrimPrefix(word, "the word ")
			if i := strings.IndexByte(word, ' '); i > 0 {
				word = word[:i]
			}
			return word
		}
	}
	return ""
}

// PlayQuery pulls the video query from "play X on youtube"
func PlayQuery(text string) string {
	q := text
	for _, cut := range []string{"on youtube", "youtube", "play"} {
		q = strings.ReplaceAll(q, cut, " ")
	}
	return strings.TrimSpace(strings.Join(strings.Fields(q), " "))
}

// MathExpression strips the question phrasing around an arithmetic expression
func MathExpression(text string) string {
	e := text
	for _, cut := range []string{"calculate", "what is", "what's", "how much is", "equals", "?"} {
		e = strings.ReplaceAll(e, cut, " ")
	}
	return strings.TrimSpace(e)
}

// OpenTarget pulls the site name from "open youtube"
func OpenTarget(text string) string {
	if idx := strings.Index(text, "open "); idx >= 0 {
		return strings.TrimSpace(text[idx+len("open "):])
	}
	return ""
}

// HeadlineOrdinal pulls the 1-based headline number from a follow-up like
// "tell me more about headline 2". Zero means no ordinal was found.
func HeadlineOrdinal(text string) int {
	m := reOrdinal.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
