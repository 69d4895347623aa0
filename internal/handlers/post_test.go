// post_test.go contains handler integration tests for the published
// post endpoints: category validation, ownership scoping, and the
// publish-deletes-draft policy. Skipped when the database is unavailable.
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestPostCreateAndGet(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env, "correct-horse")
	category := createTestCategory(t, env)

	rec := httptest.NewRecorder()
	env.Posts.Create(rec, withIdentity(postJSON("/complete_posts",
		`{"title":" First Post ","tags":"go","content":" hello world ","category_id":"`+category.ID.String()+`"}`),
		identityFor(user)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("create: got %d, want 201 (body: %s)", rec.Code, rec.Body.String())
	}

	var created struct {
		Post struct {
			ID           string `json:"id"`
			Title        string `json:"title"`
			Content      string `json:"content"`
			CategoryName string `json:"category_name"`
		} `json:"post"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode create: %v", err)
	}
	if created.Post.Title != "First Post" {
		t.Errorf("title: got %q, want trimmed", created.Post.Title)
	}
	if created.Post.CategoryName != category.Name {
		t.Errorf("category_name: got %q, want %q", created.Post.CategoryName, category.Name)
	}

	req := httptest.NewRequest(http.MethodGet, "/posts/"+created.Post.ID, nil)
	req = withURLParam(req, "id", created.Post.ID)
	rec = httptest.NewRecorder()
	env.Posts.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("get: got %d, want 200", rec.Code)
	}

	var fetched struct {
		Post struct {
			Content      string `json:"content"`
			CategoryName string `json:"category_name"`
		} `json:"post"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode get: %v", err)
	}
	if fetched.Post.Content != "hello world" {
		t.Errorf("content: got %q, want trimmed", fetched.Post.Content)
	}
	if fetched.Post.CategoryName != category.Name {
		t.Errorf("get category_name: got %q, want %q", fetched.Post.CategoryName, category.Name)
	}
}

func TestPostCreateInvalidCategory(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env, "correct-horse")

	title := "orphan-" + uuid.NewString()[:8]
	rec := httptest.NewRecorder()
	env.Posts.Create(rec, withIdentity(postJSON("/complete_posts",
		`{"title":"`+title+`","content":"body","category_id":"`+uuid.NewString()+`"}`),
		identityFor(user)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("create: got %d, want 400", rec.Code)
	}

	// The failed publish must not leave a row behind.
	var count int
	if err := env.DB.QueryRow("SELECT COUNT(*) FROM posts WHERE title = $1", title).Scan(&count); err != nil {
		t.Fatalf("count posts: %v", err)
	}
	if count != 0 {
		t.Errorf("posts with title %q: got %d, want 0", title, count)
	}
}

func TestPostCreateMissingFields(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env, "correct-horse")
	category := createTestCategory(t, env)
	identity := identityFor(user)

	for _, body := range []string{
		`{"content":"body","category_id":"` + category.ID.String() + `"}`,
		`{"title":"Post","category_id":"` + category.ID.String() + `"}`,
		`{"title":"Post","content":"body"}`,
	} {
		rec := httptest.NewRecorder()
		env.Posts.Create(rec, withIdentity(postJSON("/complete_posts", body), identity))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: got %d, want 400", body, rec.Code)
		}
	}
}

func TestPostUpdateByOwner(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env, "correct-horse")
	category := createTestCategory(t, env)

	post, err := env.PostStore.Create(user.ID, "Original", nil, "original body", category.ID)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	req := postJSON("/posts/"+post.ID.String(),
		`{"title":"Edited","content":"edited body","category_id":"`+category.ID.String()+`"}`)
	req.Method = http.MethodPut
	req = withURLParamAndIdentity(req, "id", post.ID.String(), identityFor(user))
	rec := httptest.NewRecorder()
	env.Posts.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("update: got %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	updated, err := env.PostStore.FindByID(post.ID)
	if err != nil {
		t.Fatalf("find post: %v", err)
	}
	if updated.Title != "Edited" || updated.Content != "edited body" {
		t.Errorf("post not overwritten: %+v", updated)
	}
}

func TestPostMutationsByNonOwnerAreNotFound(t *testing.T) {
	env := newTestEnv(t)
	alice := createTestUser(t, env, "alice-pass")
	bob := createTestUser(t, env, "bob-pass")
	category := createTestCategory(t, env)

	post, err := env.PostStore.Create(alice.ID, "Alice Post", nil, "alice body", category.ID)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	// Bob updates Alice's post: 404, row unchanged.
	req := postJSON("/posts/"+post.ID.String(),
		`{"title":"Hijacked","content":"bob body","category_id":"`+category.ID.String()+`"}`)
	req.Method = http.MethodPut
	req = withURLParamAndIdentity(req, "id", post.ID.String(), identityFor(bob))
	rec := httptest.NewRecorder()
	env.Posts.Update(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("cross-owner update: got %d, want 404", rec.Code)
	}

	// Bob deletes Alice's post: 404, row survives.
	req = httptest.NewRequest(http.MethodDelete, "/posts/"+post.ID.String(), nil)
	req = withURLParamAndIdentity(req, "id", post.ID.String(), identityFor(bob))
	rec = httptest.NewRecorder()
	env.Posts.Delete(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("cross-owner delete: got %d, want 404", rec.Code)
	}

	remaining, err := env.PostStore.FindByID(post.ID)
	if err != nil {
		t.Fatalf("find post: %v", err)
	}
	if remaining == nil {
		t.Fatal("post should survive cross-owner mutations")
	}
	if remaining.Title != "Alice Post" || remaining.Content != "alice body" {
		t.Errorf("post changed by non-owner: %+v", remaining)
	}
}

func TestPostDeleteByOwner(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env, "correct-horse")
	category := createTestCategory(t, env)

	post, err := env.PostStore.Create(user.ID, "Doomed", nil, "body", category.ID)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/posts/"+post.ID.String(), nil)
	req = withURLParamAndIdentity(req, "id", post.ID.String(), identityFor(user))
	rec := httptest.NewRecorder()
	env.Posts.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("delete: got %d, want 200", rec.Code)
	}

	gone, err := env.PostStore.FindByID(post.ID)
	if err != nil {
		t.Fatalf("find post: %v", err)
	}
	if gone != nil {
		t.Error("post should be gone after owner delete")
	}
}

func TestPostGetUnknownIsNotFound(t *testing.T) {
	env := newTestEnv(t)

	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		req := httptest.NewRequest(http.MethodGet, "/posts/"+id, nil)
		req = withURLParam(req, "id", id)
		rec := httptest.NewRecorder()
		env.Posts.Get(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("id %q: got %d, want 404", id, rec.Code)
		}
	}
}

func TestPublishDeletesDraftWhenPolicyEnabled(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env, "correct-horse")
	category := createTestCategory(t, env)

	draft, err := env.DraftStore.Create(user.ID, "To Publish", nil, "draft body")
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}

	// Policy on: publishing with a draft_id removes the source draft.
	posts := NewPosts(env.PostStore, env.CatStore, env.DraftStore, true)

	rec := httptest.NewRecorder()
	posts.Create(rec, withIdentity(postJSON("/complete_posts",
		`{"title":"To Publish","content":"draft body","category_id":"`+category.ID.String()+`","draft_id":"`+draft.ID.String()+`"}`),
		identityFor(user)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("publish: got %d, want 201 (body: %s)", rec.Code, rec.Body.String())
	}

	gone, err := env.DraftStore.FindByID(draft.ID, user.ID)
	if err != nil {
		t.Fatalf("find draft: %v", err)
	}
	if gone != nil {
		t.Error("source draft should be deleted when the policy is enabled")
	}
}

func TestPublishKeepsDraftWhenPolicyDisabled(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env, "correct-horse")
	category := createTestCategory(t, env)

	draft, err := env.DraftStore.Create(user.ID, "To Keep", nil, "draft body")
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}

	// env.Posts carries the default policy (off).
	rec := httptest.NewRecorder()
	env.Posts.Create(rec, withIdentity(postJSON("/complete_posts",
		`{"title":"To Keep","content":"draft body","category_id":"`+category.ID.String()+`","draft_id":"`+draft.ID.String()+`"}`),
		identityFor(user)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("publish: got %d, want 201", rec.Code)
	}

	kept, err := env.DraftStore.FindByID(draft.ID, user.ID)
	if err != nil {
		t.Fatalf("find draft: %v", err)
	}
	if kept == nil {
		t.Error("source draft should survive when the policy is disabled")
	}
}
