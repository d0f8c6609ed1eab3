package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCity(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "weather in", in: "what's the weather in london", want: "london"},
		{name: "weather at", in: "weather at new york", want: "new york"},
		{name: "weather for", in: "weather for san francisco today", want: "san francisco"},
		{name: "trailing filler", in: "weather in paris right now", want: "paris"},
		{name: "no city", in: "what's the weather", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, City(tt.in))
		})
	}
}

func TestReminderSpec(t *testing.T) {
	t.Run("well formed", func(t *testing.T) {
		action, minutes, ok := ReminderSpec("remind me to take a break in 15 minutes")
		assert.True(t, ok)
		assert.Equal(t, "take a break", action)
		assert.Equal(t, 15, minutes)
	})

	t.Run("single minute", func(t *testing.T) {
		action, minutes, ok := ReminderSpec("remind me to check the oven in 1 minute")
		assert.True(t, ok)
		assert.Equal(t, "check the oven", action)
		assert.Equal(t, 1, minutes)
	})

	t.Run("no delay", func(t *testing.T) {
		_, _, ok := ReminderSpec("remind me to call mom")
		assert.False(t, ok)
	})

	t.Run("zero minutes rejected", func(t *testing.T) {
		_, _, ok := ReminderSpec("remind me to blink in 0 minutes")
		assert.False(t, ok)
	})
}

func TestAlarmTime(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		hour   int
		minute int
		ok     bool
	}{
		{name: "morning", in: "set an alarm for 07:30", hour: 7, minute: 30, ok: true},
		{name: "single digit hour", in: "alarm at 9:05", hour: 9, minute: 5, ok: true},
		{name: "evening", in: "wake me at 23:59", hour: 23, minute: 59, ok: true},
		{name: "hour out of range", in: "alarm for 25:00", ok: false},
		{name: "minute out of range", in: "alarm for 10:75", ok: false},
		{name: "no time at all", in: "set an alarm", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m, ok := AlarmTime(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.hour, h)
				assert.Equal(t, tt.minute, m)
			}
		})
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "alex", Name("call me alex"))
	assert.Equal(t, "ada lovelace", Name("my name is ada lovelace"))
	assert.Equal(t, "", Name("what's my name"))
}

func TestHomeCity(t *testing.T) {
	assert.Equal(t, "berlin", HomeCity("i live in berlin"))
	assert.Equal(t, "rio de janeiro", HomeCity("my city is rio de janeiro"))
	assert.Equal(t, "", HomeCity("where do i live"))
}

func TestWikiTopic(t *testing.T) {
	assert.Equal(t, "alan turing", WikiTopic("search wikipedia for alan turing"))
	assert.Equal(t, "the moon", WikiTopic("tell me about the moon according to wikipedia"))
	assert.Equal(t, "go language", WikiTopic("wikipedia go language"))
}

func TestSearchQuery(t *testing.T) {
	assert.Equal(t, "best pizza near me", SearchQuery("search for best pizza near me"))
	assert.Equal(t, "weather radar", SearchQuery("google weather radar"))
}

func TestDefineWord(t *testing.T) {
	assert.Equal(t, "serendipity", DefineWord("define serendipity"))
	assert.Equal(t, "ephemeral", DefineWord("what is the definition of ephemeral"))
	assert.Equal(t, "laconic", DefineWord("define the word laconic"))
	assert.Equal(t, "", DefineWord("dictionary please"))
}

func TestPlayQuery(t *testing.T) {
	assert.Equal(t, "lofi beats", PlayQuery("play lofi beats on youtube"))
	assert.Equal(t, "daft punk", PlayQuery("play daft punk"))
}

func TestMathExpression(t *testing.T) {
	assert.Equal(t, "2 + 2", MathExpression("what is 2 + 2?"))
	assert.Equal(t, "17 * 4", MathExpression("calculate 17 * 4"))
	assert.Equal(t, "3 ^ 2", MathExpression("what's 3 ^ 2"))
}

func TestOpenTarget(t *testing.T) {
	assert.Equal(t, "youtube", OpenTarget("open youtube"))
	assert.Equal(t, "google", OpenTarget("please open google"))
	assert.Equal(t, "", OpenTarget("nothing to do"))
}

func TestHeadlineOrdinal(t *testing.T) {
	assert.Equal(t, 2, HeadlineOrdinal("tell me more about headline 2"))
	assert.Equal(t, 3, HeadlineOrdinal("read story 3"))
	assert.Equal(t, 1, HeadlineOrdinal("headline number 1"))
	assert.Equal(t, 0, HeadlineOrdinal("tell me more"))
}
