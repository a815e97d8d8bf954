package httpadapter_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "github.com/solacehq/solace-api/internal/adapters/http"
	"github.com/solacehq/solace-api/internal/adapters/llm"
	memstore "github.com/solacehq/solace-api/internal/adapters/storage/memory"
	"github.com/solacehq/solace-api/internal/app/activity"
	"github.com/solacehq/solace-api/internal/app/auth"
	"github.com/solacehq/solace-api/internal/app/chat"
	"github.com/solacehq/solace-api/internal/app/community"
	"github.com/solacehq/solace-api/internal/app/journal"
	"github.com/solacehq/solace-api/internal/app/profile"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	users := memstore.NewUserStore()
	records := memstore.NewConversationStore()
	moods := memstore.NewMoodStore()
	entries := memstore.NewJournalStore()
	posts := memstore.NewPostStore()
	activities := memstore.NewActivityStore()

	authSvc := auth.NewService(users, "test-secret")
	activitySvc := activity.NewService(activities)
	chatSvc := chat.NewService(llm.NewMockLLM(), users, moods, records, activitySvc)
	communitySvc := community.NewService(posts)
	journalSvc := journal.NewService(entries, moods)
	profileSvc := profile.NewService(users, records, entries, moods, posts)

	srv := httptest.NewServer(httpadapter.NewServer(
		authSvc, chatSvc, communitySvc, journalSvc, activitySvc, profileSvc,
	))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer res.Body.Close()

	var decoded map[string]any
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return res, decoded
}

func registerUser(t *testing.T, srv *httptest.Server, email string) string {
	t.Helper()

	res, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", "", map[string]string{
		"email":        email,
		"password":     "password123",
		"display_name": "Ada",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %v", res.StatusCode, body)
	}

	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("register returned no token: %v", body)
	}
	return token
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	res, body := doJSON(t, http.MethodGet, srv.URL+"/healthz", "", nil)
	if res.StatusCode != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("unexpected health response: %d %v", res.StatusCode, body)
	}
}

func TestRegisterValidation(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		name string
		req  map[string]string
	}{
		{"missing email", map[string]string{"password": "password123"}},
		{"malformed email", map[string]string{"email": "not-an-address", "password": "password123"}},
		{"short password", map[string]string{"email": "a@b.com", "password": "short"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, _ := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", "", tc.req)
			if res.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", res.StatusCode)
			}
		})
	}
}

func TestRegisterLoginFlow(t *testing.T) {
	srv := newTestServer(t)
	registerUser(t, srv, "ada@example.com")

	// Duplicate registration conflicts.
	res, _ := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", "", map[string]string{
		"email": "ada@example.com", "password": "password123",
	})
	if res.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d", res.StatusCode)
	}

	res, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", "", map[string]string{
		"email": "ada@example.com", "password": "password123",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %v", res.StatusCode, body)
	}
	user, _ := body["user"].(map[string]any)
	if user["email"] != "ada@example.com" {
		t.Fatalf("unexpected login user: %v", user)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash must never be serialized")
	}

	res, _ = doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", "", map[string]string{
		"email": "ada@example.com", "password": "wrong-password",
	})
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad login: expected 401, got %d", res.StatusCode)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/posts", "/api/journal", "/api/mood", "/api/profile"} {
		res, body := doJSON(t, http.MethodGet, srv.URL+path, "", nil)
		if res.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, res.StatusCode)
		}
		if body["error"] != "unauthorized" {
			t.Fatalf("%s: auth failures must share one message, got %v", path, body)
		}
	}

	// A garbage token gets the same answer.
	res, body := doJSON(t, http.MethodGet, srv.URL+"/api/profile", "garbage", nil)
	if res.StatusCode != http.StatusUnauthorized || body["error"] != "unauthorized" {
		t.Fatalf("garbage token: expected uniform 401, got %d %v", res.StatusCode, body)
	}
}

func TestChatAnonymous(t *testing.T) {
	srv := newTestServer(t)

	res, body := doJSON(t, http.MethodPost, srv.URL+"/api/chat", "", map[string]string{
		"message": "I had a decent day",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("chat: expected 200, got %d: %v", res.StatusCode, body)
	}
	if body["crisis"] != false {
		t.Fatalf("expected crisis=false, got %v", body)
	}
	if reply, _ := body["reply"].(string); !strings.Contains(reply, "Friend") {
		t.Fatalf("anonymous chat must use the default display name, got %v", body["reply"])
	}
	if body["timestamp"] == nil {
		t.Fatalf("expected a timestamp")
	}
	if _, present := body["helplines"]; present {
		t.Fatalf("helplines must be omitted on normal turns: %v", body)
	}
}

func TestChatCrisis(t *testing.T) {
	srv := newTestServer(t)

	res, body := doJSON(t, http.MethodPost, srv.URL+"/api/chat", "", map[string]string{
		"message": "I want to die",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("chat: expected 200, got %d: %v", res.StatusCode, body)
	}
	if body["crisis"] != true {
		t.Fatalf("expected crisis=true, got %v", body)
	}

	helplines, _ := body["helplines"].(map[string]any)
	if helplines == nil || helplines["phone"] == "" || helplines["global"] == "" {
		t.Fatalf("expected helpline block, got %v", body["helplines"])
	}
	if reply, _ := body["reply"].(string); reply == "" {
		t.Fatalf("expected the fixed supportive message")
	}
}

func TestChatPersonalized(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "ada@example.com")

	res, body := doJSON(t, http.MethodPost, srv.URL+"/api/chat", token, map[string]string{
		"message": "work was stressful",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("chat: expected 200, got %d: %v", res.StatusCode, body)
	}
	if reply, _ := body["reply"].(string); !strings.Contains(reply, "Ada") {
		t.Fatalf("authenticated chat must address the user by name, got %v", body["reply"])
	}
}

func TestChatValidation(t *testing.T) {
	srv := newTestServer(t)

	res, _ := doJSON(t, http.MethodPost, srv.URL+"/api/chat", "", map[string]string{"message": "   "})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("blank message: expected 400, got %d", res.StatusCode)
	}
}

func TestPostLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	author := registerUser(t, srv, "author@example.com")
	other := registerUser(t, srv, "other@example.com")

	res, body := doJSON(t, http.MethodPost, srv.URL+"/api/posts", author, map[string]string{
		"content": "feeling hopeful today",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create post: expected 201, got %d: %v", res.StatusCode, body)
	}
	postID, _ := body["id"].(string)
	if postID == "" {
		t.Fatalf("post has no id: %v", body)
	}

	// Like twice: idempotent.
	for i := 0; i < 2; i++ {
		res, body = doJSON(t, http.MethodPost, srv.URL+"/api/posts/"+postID+"/like", other, nil)
		if res.StatusCode != http.StatusOK {
			t.Fatalf("like: expected 200, got %d", res.StatusCode)
		}
	}
	if body["like_count"] != float64(1) {
		t.Fatalf("expected like_count 1, got %v", body["like_count"])
	}

	// Comment, then reply to it.
	res, body = doJSON(t, http.MethodPost, srv.URL+"/api/posts/"+postID+"/comments", other, map[string]string{
		"content": "glad to hear it",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("comment: expected 201, got %d: %v", res.StatusCode, body)
	}
	comments, _ := body["comments"].([]any)
	if len(comments) != 1 {
		t.Fatalf("expected one comment, got %v", body["comments"])
	}
	parent, _ := comments[0].(map[string]any)
	parentID, _ := parent["id"].(string)

	res, body = doJSON(t, http.MethodPost, srv.URL+"/api/posts/"+postID+"/comments", author, map[string]string{
		"content":   "thanks!",
		"parent_id": parentID,
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("reply: expected 201, got %d: %v", res.StatusCode, body)
	}

	// Only the comment author may delete it.
	res, _ = doJSON(t, http.MethodDelete,
		fmt.Sprintf("%s/api/posts/%s/comments/%s", srv.URL, postID, parentID), author, nil)
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("foreign comment delete: expected 403, got %d", res.StatusCode)
	}

	// Only the post author may delete the post.
	res, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/posts/"+postID, other, nil)
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("foreign post delete: expected 403, got %d", res.StatusCode)
	}
	res, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/posts/"+postID, author, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("post delete: expected 200, got %d", res.StatusCode)
	}
	res, _ = doJSON(t, http.MethodGet, srv.URL+"/api/posts/"+postID, author, nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("deleted post: expected 404, got %d", res.StatusCode)
	}
}

func TestMoodValidation(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "ada@example.com")

	for _, intensity := range []int{0, 11, -3} {
		res, body := doJSON(t, http.MethodPost, srv.URL+"/api/mood", token, map[string]any{
			"mood": "anxious", "intensity": intensity,
		})
		if res.StatusCode != http.StatusBadRequest {
			t.Fatalf("intensity %d: expected 400, got %d %v", intensity, res.StatusCode, body)
		}
	}

	res, body := doJSON(t, http.MethodPost, srv.URL+"/api/mood", token, map[string]any{
		"mood": "anxious", "intensity": 7, "note": "big meeting",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("log mood: expected 201, got %d %v", res.StatusCode, body)
	}
	if body["intensity"] != float64(7) {
		t.Fatalf("unexpected mood body: %v", body)
	}
}

func TestDeleteAllData(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "ada@example.com")

	// Seed some data through the API itself.
	doJSON(t, http.MethodPost, srv.URL+"/api/chat", token, map[string]string{"message": "hello there"})
	doJSON(t, http.MethodPost, srv.URL+"/api/journal", token, map[string]string{"content": "dear diary"})
	doJSON(t, http.MethodPost, srv.URL+"/api/mood", token, map[string]any{"mood": "okay", "intensity": 5})
	doJSON(t, http.MethodPost, srv.URL+"/api/posts", token, map[string]string{"content": "hi all"})

	res, body := doJSON(t, http.MethodDelete, srv.URL+"/api/profile/data", token, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("wipe: expected 200, got %d %v", res.StatusCode, body)
	}
	if body["status"] != "deleted" {
		t.Fatalf("unexpected wipe body: %v", body)
	}
	if deleted, _ := body["deleted"].(float64); deleted < 4 {
		t.Fatalf("expected at least 4 deletions, got %v", body["deleted"])
	}

	// The account itself survives; its data is gone.
	res, body = doJSON(t, http.MethodGet, srv.URL+"/api/journal", token, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("list after wipe: expected 200, got %d", res.StatusCode)
	}
	if entries, _ := body["entries"].([]any); len(entries) != 0 {
		t.Fatalf("journal must be empty after wipe, got %v", entries)
	}
}

func TestActivitiesCatalog(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "ada@example.com")

	res, body := doJSON(t, http.MethodGet, srv.URL+"/api/activities", token, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("activities: expected 200, got %d", res.StatusCode)
	}
	activities, _ := body["activities"].([]any)
	if len(activities) == 0 {
		t.Fatalf("catalog must not be empty: %v", body)
	}
}

func TestProfileUpdate(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "ada@example.com")

	res, body := doJSON(t, http.MethodPut, srv.URL+"/api/profile", token, map[string]string{
		"display_name": "Grace",
	})
	if res.StatusCode != http.StatusOK || body["display_name"] != "Grace" {
		t.Fatalf("profile update failed: %d %v", res.StatusCode, body)
	}

	res, _ = doJSON(t, http.MethodPut, srv.URL+"/api/profile", token, map[string]string{
		"display_name": "   ",
	})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("blank name: expected 400, got %d", res.StatusCode)
	}
}
