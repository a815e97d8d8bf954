package domain

// User is the account record. WellnessSummary is the only derived field:
// it is owned by the chat summarizer and overwritten on each refresh
// (last-write-wins, no versioning).
type User struct {
	ID              UserID
	Email           string
	DisplayName     string
	PasswordHash    string
	WellnessSummary string
	CreatedAt       Timestamp
}

// MoodEntry is a single mood log point.
type MoodEntry struct {
	ID        EntryID
	UserID    UserID
	Mood      string
	Intensity int // 1..10
	Note      string
	CreatedAt Timestamp
}
