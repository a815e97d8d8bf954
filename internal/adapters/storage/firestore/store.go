package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/solacehq/solace-api/internal/domain"
)

// maxBatchSize is the Firestore write-batch ceiling. Bulk deletes chunk their
// work to stay under it.
const maxBatchSize = 500

type Store struct {
	client *firestore.Client
}

// NewStore creates a Firestore store for the given project
// (SOLACE_GCP_PROJECT).
func NewStore(ctx context.Context, projectID string) (*Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID is required for Firestore store")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	return &Store{client: client}, nil
}

// ─────────────────────────────────────────
// Collection helpers
// ─────────────────────────────────────────

func (s *Store) usersCol() *firestore.CollectionRef {
	return s.client.Collection("users")
}

func (s *Store) userDoc(id domain.UserID) *firestore.DocumentRef {
	return s.usersCol().Doc(string(id))
}

func (s *Store) postsCol() *firestore.CollectionRef {
	return s.client.Collection("posts")
}

func (s *Store) postDoc(id domain.PostID) *firestore.DocumentRef {
	return s.postsCol().Doc(string(id))
}

func (s *Store) journalCol() *firestore.CollectionRef {
	return s.client.Collection("journalEntries")
}

func (s *Store) moodCol() *firestore.CollectionRef {
	return s.client.Collection("moodEntries")
}

func (s *Store) chatConversationsCol() *firestore.CollectionRef {
	return s.client.Collection("chatConversations")
}

// legacyConversationsCol holds records written by earlier app versions. Only
// the bulk delete touches it.
func (s *Store) legacyConversationsCol() *firestore.CollectionRef {
	return s.client.Collection("conversations")
}

func (s *Store) activitiesCol() *firestore.CollectionRef {
	return s.client.Collection("activities")
}

// ─────────────────────────────────────────
// Firestore document types
// ─────────────────────────────────────────

type userDoc struct {
	Email           string    `firestore:"email"`
	DisplayName     string    `firestore:"display_name"`
	PasswordHash    string    `firestore:"password_hash"`
	WellnessSummary string    `firestore:"wellness_summary"`
	CreatedAt       time.Time `firestore:"created_at"`
}

type recordDoc struct {
	UserID     string    `firestore:"user_id"`
	Input      string    `firestore:"input_message"`
	Output     string    `firestore:"output_response"`
	CrisisFlag bool      `firestore:"crisis_flag"`
	CreatedAt  time.Time `firestore:"created_at"`
}

type moodDoc struct {
	UserID    string    `firestore:"user_id"`
	Mood      string    `firestore:"mood"`
	Intensity int       `firestore:"intensity"`
	Note      string    `firestore:"note"`
	CreatedAt time.Time `firestore:"created_at"`
}

type journalDoc struct {
	UserID    string    `firestore:"user_id"`
	Title     string    `firestore:"title"`
	Content   string    `firestore:"content"`
	Mood      string    `firestore:"mood"`
	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

type postDoc struct {
	AuthorID   string           `firestore:"author_id"`
	AuthorName string           `firestore:"author_name"`
	Content    string           `firestore:"content"`
	Likes      []string         `firestore:"likes"`
	Comments   []domain.Comment `firestore:"comments"`
	CreatedAt  time.Time        `firestore:"created_at"`
}

type activityDoc struct {
	Title       string `firestore:"title"`
	Description string `firestore:"description"`
	Category    string `firestore:"category"`
	Link        string `firestore:"link"`
}

func mapNotFound(err error, wrap string) error {
	if status.Code(err) == codes.NotFound {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%s: %w", wrap, err)
}
