package domain

// Message is one turn in a conversation. Order is chronological and
// semantically meaningful.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ConversationRecord is the append-only log entry written after every chat
// exchange. The core never mutates or deletes records; removal happens only
// through the user-initiated bulk delete.
type ConversationRecord struct {
	ID         RecordID
	UserID     UserID
	Input      string
	Output     string
	CrisisFlag bool
	CreatedAt  Timestamp
}

// UserContext is the transient per-request view used to bias generation.
// Recomputed from the store each turn; never authoritative.
type UserContext struct {
	DisplayName     string
	RecentMoods     []MoodEntry // most-recent-first, at most 3
	WellnessSummary string
}

// DefaultUserContext is what anonymous callers get, and what any failed
// lookup degrades to.
func DefaultUserContext() UserContext {
	return UserContext{DisplayName: "Friend"}
}
