package domain

// Intent is the classified purpose of a user utterance, drawn from a fixed
// enumeration. Routing never produces values outside this set.
type Intent string

// the full set of intents the router can produce
const (
	IntentTime         Intent = "time"
	IntentDate         Intent = "date"
	IntentWiki         Intent = "wiki"
	IntentSearch       Intent = "search"
	IntentOpen         Intent = "open"
	IntentWeather      Intent = "weather"
	IntentNewsDetail   Intent = "news-detail"
	IntentNews         Intent = "news"
	IntentEmail        Intent = "email"
	IntentJoke         Intent = "joke"
	IntentIdentity     Intent = "identity"
	IntentMyName       Intent = "my-name"
	IntentRememberName Intent = "remember-name"
	IntentRememberCity Intent = "remember-city"
	IntentExit         Intent = "exit"
	IntentMath         Intent = "math"
	IntentAlarm        Intent = "alarm"
	IntentReminder     Intent = "reminder"
	IntentDefine       Intent = "define"
	IntentPlay         Intent = "play"
	IntentUnknown      Intent = "unknown"
)
