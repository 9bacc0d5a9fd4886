package handlers_test

import (
	"net/http"
	"testing"

	"homeharbor/internal/domain"
)

func TestBlogListAndDetail(t *testing.T) {
	app, _ := newAPIApp(t, true)

	resp := doJSON(t, app, "GET", "/api/blog", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: want 200, got %d", resp.StatusCode)
	}
	var posts []domain.Post
	decode(t, resp, &posts)
	if len(posts) != 3 || posts[1].Author != "Sarah Johnson" {
		t.Fatalf("unexpected posts: %+v", posts)
	}

	if resp := doJSON(t, app, "GET", "/api/blog/99", ""); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unused id: want 404, got %d", resp.StatusCode)
	}
	if resp := doJSON(t, app, "GET", "/api/blog/nope", ""); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad id: want 400, got %d", resp.StatusCode)
	}
}

func TestBlogCRUD(t *testing.T) {
	app, _ := newAPIApp(t, false)

	body := `{
		"title": "Staging a Home",
		"content": "Make it bright.",
		"author": "Ana Reyes",
		"excerpt": "Small touches sell houses.",
		"imageUrl": "https://example.com/staging.jpg"
	}`
	resp := doJSON(t, app, "POST", "/api/blog", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: want 201, got %d", resp.StatusCode)
	}
	var created domain.Post
	decode(t, resp, &created)
	if created.ID != 1 || created.CreatedAt.IsZero() {
		t.Fatalf("unexpected created post: %+v", created)
	}

	resp = doJSON(t, app, "PUT", "/api/blog/1", `{"title": "Staging a Home, Cheaply"}`)
	var updated domain.Post
	decode(t, resp, &updated)
	if updated.Title != "Staging a Home, Cheaply" || updated.Author != "Ana Reyes" {
		t.Fatalf("partial update touched wrong fields: %+v", updated)
	}

	if resp := doJSON(t, app, "POST", "/api/blog", `{"title": ""}`); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid payload: want 400, got %d", resp.StatusCode)
	}

	if resp := doJSON(t, app, "DELETE", "/api/blog/1", ""); resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: want 204, got %d", resp.StatusCode)
	}
	if resp := doJSON(t, app, "GET", "/api/blog/1", ""); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("deleted post still served: %d", resp.StatusCode)
	}
}
