package domain

import "context"

// LLMClient defines how the application talks to the completion service.
type LLMClient interface {
	// GenerateReply produces the assistant reply for a history ending in the
	// current user turn, biased by the user context.
	GenerateReply(ctx context.Context, history []Message, userCtx UserContext) (string, error)

	// Summarize compresses recent turns plus the previous summary into an
	// updated wellness summary.
	Summarize(ctx context.Context, recent []Message, previous string) (string, error)
}

// UserStore defines account persistence.
type UserStore interface {
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, id UserID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, id UserID, displayName string) error
	UpdateWellnessSummary(ctx context.Context, id UserID, summary string) error
}

// ConversationStore defines the append-only exchange log.
type ConversationStore interface {
	AppendRecord(ctx context.Context, rec *ConversationRecord) error
	ListRecentRecords(ctx context.Context, userID UserID, limit int) ([]*ConversationRecord, error)
	DeleteRecordsByUser(ctx context.Context, userID UserID) (int, error)
}

// MoodStore defines mood log persistence.
type MoodStore interface {
	AppendMood(ctx context.Context, entry *MoodEntry) error
	ListRecentMoods(ctx context.Context, userID UserID, limit int) ([]*MoodEntry, error)
	DeleteMoodsByUser(ctx context.Context, userID UserID) (int, error)
}

// JournalStore defines journal entry persistence.
type JournalStore interface {
	CreateEntry(ctx context.Context, entry *JournalEntry) error
	GetEntry(ctx context.Context, id EntryID) (*JournalEntry, error)
	ListEntriesByUser(ctx context.Context, userID UserID, limit int) ([]*JournalEntry, error)
	UpdateEntry(ctx context.Context, entry *JournalEntry) error
	DeleteEntry(ctx context.Context, id EntryID) error
	DeleteEntriesByUser(ctx context.Context, userID UserID) (int, error)
}

// PostStore defines community post persistence.
type PostStore interface {
	CreatePost(ctx context.Context, post *Post) error
	GetPost(ctx context.Context, id PostID) (*Post, error)
	ListPosts(ctx context.Context, limit int) ([]*Post, error)
	DeletePost(ctx context.Context, id PostID) error
	// LikePost adds userID to the post's likes exactly once, using an atomic
	// read-modify-write on the single post document.
	LikePost(ctx context.Context, id PostID, userID UserID) (*Post, error)
	// SetComments replaces the post's comment tree.
	SetComments(ctx context.Context, id PostID, comments []Comment) error
	DeletePostsByUser(ctx context.Context, userID UserID) (int, error)
}

// ActivityStore defines the activities catalog.
type ActivityStore interface {
	ListActivities(ctx context.Context) ([]*Activity, error)
	GetActivity(ctx context.Context, id string) (*Activity, error)
}
