package domain

// JournalEntry is a private free-form entry, optionally tagged with a mood.
type JournalEntry struct {
	ID        EntryID
	UserID    UserID
	Title     string
	Content   string
	Mood      string
	CreatedAt Timestamp
	UpdatedAt Timestamp
}
