package domain

import "time"

// Reply is what the assistant says back for a single utterance
type Reply struct {
	Text   string `json:"text"`
	Intent Intent `json:"intent"`
	Link   string `json:"link,omitempty"` // optional URL for the client to open
	Exit   bool   `json:"exit,omitempty"` // set on the exit intent, client decides what to do
}

// Event is pushed to connected chat clients over the websocket. Replies to
// direct commands travel in the HTTP response; events carry asynchronous
// notifications such as reminder firings.
type Event struct {
	Type string    `json:"type"` // "reminder" or "reply"
	Text string    `json:"text"`
	Link string    `json:"link,omitempty"`
	Time time.Time `json:"time"`
}

// event types
const (
	EventReminder = "reminder"
	EventReply    = "reply"
)
