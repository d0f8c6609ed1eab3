// Package router maps free-form utterances to intents with an ordered rule
// table. Matching is case-insensitive substring and prefix checks, first rule
// wins, and anything that falls through resolves to the unknown intent.
package router

import (
	"strings"

	"github.com/umputun/delta/pkg/domain"
)

// Rule matches an utterance against keyword patterns. A rule fires when any
// of Contains appears in the text, or any of Prefixes starts it, or all of
// All appear, or any single character from Chars occurs. NotPrefixes veto the
// match even when another pattern hit.
type Rule struct {
	Intent      domain.Intent
	Contains    []string // any substring match fires
	Prefixes    []string // any prefix match fires
	All         []string // all substrings must be present
	Chars       string   // any single rune from this set fires
	NotPrefixes []string // suppress the rule when the text starts with one of these
}

// Match is the routing result, the resolved intent plus the normalized text
// the extraction helpers operate on.
type Match struct {
	Intent domain.Intent
	Text   string
}

// Router routes utterances through its rule list in order
type Router struct {
	rules []Rule
}

// New creates a router with the default rule table. Order matters: earlier
// rules shadow later ones, e.g. "news" has to come after "headline" or a
// follow-up question about one headline would route to the full digest.
func New() *Router {
	return &Router{rules: defaultRules()}
}

// NewWithRules creates a router with a custom rule table, first match wins
func NewWithRules(rules []Rule) *Router { return &Router{rules: rules} }

func defaultRules() []Rule {
	return []Rule{
		{Intent: domain.IntentRememberName, Prefixes: []string{"call me ", "my name is "}},
		{Intent: domain.IntentRememberCity, Contains: []string{"i live in", "my city is"}},
		{Intent: domain.IntentTime, Contains: []string{"time"}, NotPrefixes: []string{"time in"}},
		// "today" is not a trigger on its own, it shows up in weather, news
		// and reminder phrasing ("what's the weather today")
		{Intent: domain.IntentDate, Contains: []string{"date", "day is it"}},
		{Intent: domain.IntentWiki, Contains: []string{"wikipedia"}},
		{Intent: domain.IntentSearch, Prefixes: []string{"search "}, Contains: []string{"google"}},
		{Intent: domain.IntentOpen, Contains: []string{"open"}},
		{Intent: domain.IntentWeather, Contains: []string{"weather"}},
		{Intent: domain.IntentNewsDetail, Contains: []string{"headline"}},
		{Intent: domain.IntentNews, Contains: []string{"news"}},
		{Intent: domain.IntentEmail, Contains: []string{"email", "mail"}},
		{Intent: domain.IntentJoke, Contains: []string{"joke"}},
		{Intent: domain.IntentIdentity, Contains: []string{"your name", "who are you"}},
		{Intent: domain.IntentMyName, Contains: []string{"my name"}},
		{Intent: domain.IntentExit, Contains: []string{"exit", "stop", "quit", "goodbye"}},
		{Intent: domain.IntentMath, Contains: []string{"calculate"}, Prefixes: []string{"what is ", "what's "}, Chars: "+-*/%^"},
		{Intent: domain.IntentAlarm, Contains: []string{"alarm"}},
		{Intent: domain.IntentReminder, Contains: []string{"remind me"}},
		{Intent: domain.IntentDefine, Prefixes: []string{"define "}, Contains: []string{"definition of", "meaning of"}},
		{Intent: domain.IntentPlay, All: []string{"play", "youtube"}},
	}
}

// Route normalizes the utterance and walks the rule table in order. The
// returned Match carries the lowercased trimmed text for extraction.
func (r *Router) Route(text string) Match {
	norm := normalize(text)
	for _, rule := range r.rules {
		if rule.matches(norm) {
			return Match{Intent: rule.Intent, Text: norm}
		}
	}
	return Match{Intent: domain.IntentUnknown, Text: norm}
}

func (rl Rule) matches(text string) bool {
	for _, p := range rl.NotPrefixes {
		if strings.HasPrefix(text, p) {
			return false
		}
	}

	for _, p := range rl.Prefixes {
		if strings.HasPrefix(text, p) {
			return true
		}
	}

	for _, s := range rl.Contains {
		if strings.Contains(text, s) {
			return true
		}
	}

	if len(rl.All) > 0 {
		matched := true
		for _, s := range rl.All {
			if !strings.Contains(text, s) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}

	if rl.Chars != "" && strings.ContainsAny(text, rl.Chars) {
		return true
	}

	return false
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// StripWake removes a leading wake word ("hey delta", "delta") and any
// punctuation right after it. Matching is case-insensitive; text without a
// wake word passes through unchanged.
func StripWake(text string, wakeWords []string) string {
	norm := strings.TrimSpace(text)
	lower := strings.ToLower(norm)
	for _, w := range wakeWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if lower == w {
			return ""
		}
		if strings.HasPrefix(lower, w+" ") || strings.HasPrefix(lower, w+",") ||
			strings.HasPrefix(lower, w+".") || strings.HasPrefix(lower, w+"!") {
			rest := norm[len(w):]
			return strings.TrimSpace(strings.TrimLeft(rest, " ,.!"))
		}
	}
	return norm
}
