package domain

import "time"

type UserID string
type PostID string
type CommentID string
type EntryID string
type RecordID string

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Timestamp = time.Time
