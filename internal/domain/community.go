package domain

// Post is a community post. Likes holds user ids, each at most once.
type Post struct {
	ID         PostID
	AuthorID   UserID
	AuthorName string
	Content    string
	Likes      []UserID
	Comments   []Comment
	CreatedAt  Timestamp
}

// Comment is an explicit tagged record with an ordered reply tree.
type Comment struct {
	ID         CommentID `json:"id" firestore:"id"`
	AuthorID   UserID    `json:"author_id" firestore:"author_id"`
	AuthorName string    `json:"author_name" firestore:"author_name"`
	Content    string    `json:"content" firestore:"content"`
	CreatedAt  Timestamp `json:"created_at" firestore:"created_at"`
	Replies    []Comment `json:"replies,omitempty" firestore:"replies"`
}

// FindComment walks the tree depth-first and returns the comment with the
// given id, or nil.
func FindComment(tree []Comment, id CommentID) *Comment {
	for i := range tree {
		if tree[i].ID == id {
			return &tree[i]
		}
		if found := FindComment(tree[i].Replies, id); found != nil {
			return found
		}
	}
	return nil
}

// RemoveComment returns the tree without the identified comment (and its
// subtree). The second result reports whether anything was removed.
func RemoveComment(tree []Comment, id CommentID) ([]Comment, bool) {
	for i := range tree {
		if tree[i].ID == id {
			out := make([]Comment, 0, len(tree)-1)
			out = append(out, tree[:i]...)
			out = append(out, tree[i+1:]...)
			return out, true
		}
		if replies, removed := RemoveComment(tree[i].Replies, id); removed {
			tree[i].Replies = replies
			return tree, true
		}
	}
	return tree, false
}
