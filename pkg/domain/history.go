package domain

import "time"

// conversation roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// HistoryEntry is one line of the conversation transcript
type HistoryEntry struct {
	ID        int64     `db:"id" json:"id"`
	Role      string    `db:"role" json:"role"`
	Text      string    `db:"text" json:"text"`
	Intent    string    `db:"intent" json:"intent,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
