package handlers_test

import (
	"net/http"
	"testing"

	"homeharbor/internal/domain"
)

func TestContactFormSubmission(t *testing.T) {
	app, _ := newAPIApp(t, false)

	resp := doJSON(t, app, "GET", "/api/messages", "")
	var empty []domain.Message
	decode(t, resp, &empty)
	if len(empty) != 0 {
		t.Fatalf("fresh inbox should be empty, got %d", len(empty))
	}

	body := `{
		"name": "Jane Prospect",
		"email": "jane@example.com",
		"phone": "555-0101",
		"subject": "Viewing request",
		"message": "Is the villa still available?"
	}`
	resp = doJSON(t, app, "POST", "/api/messages", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("submit: want 201, got %d", resp.StatusCode)
	}
	var created domain.Message
	decode(t, resp, &created)
	if created.ID != 1 || created.Read || created.CreatedAt.IsZero() {
		t.Fatalf("unexpected message record: %+v", created)
	}

	// schema failures never reach the store
	if resp := doJSON(t, app, "POST", "/api/messages", `{"name": "x", "email": "not-an-email", "subject": "s", "message": "m"}`); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad email: want 400, got %d", resp.StatusCode)
	}
	resp = doJSON(t, app, "GET", "/api/messages", "")
	var all []domain.Message
	decode(t, resp, &all)
	if len(all) != 1 {
		t.Fatalf("rejected submission leaked into store: %d", len(all))
	}
}

func TestMarkReadAndDelete(t *testing.T) {
	app, st := newAPIApp(t, false)
	m := st.CreateMessage(domain.NewMessage{Name: "Jo", Email: "jo@example.com", Subject: "Hi", Message: "Hello"})

	resp := doJSON(t, app, "PUT", "/api/messages/1/read", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("mark read: want 200, got %d", resp.StatusCode)
	}
	var read domain.Message
	decode(t, resp, &read)
	if !read.Read || read.ID != m.ID {
		t.Fatalf("mark read result: %+v", read)
	}

	// idempotent
	resp = doJSON(t, app, "PUT", "/api/messages/1/read", "")
	var again domain.Message
	decode(t, resp, &again)
	if again != read {
		t.Fatalf("second mark read changed record: %+v vs %+v", again, read)
	}

	if resp := doJSON(t, app, "PUT", "/api/messages/9/read", ""); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("mark read unused id: want 404, got %d", resp.StatusCode)
	}

	if resp := doJSON(t, app, "DELETE", "/api/messages/1", ""); resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: want 204, got %d", resp.StatusCode)
	}
	if resp := doJSON(t, app, "GET", "/api/messages/1", ""); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("deleted message still served: %d", resp.StatusCode)
	}
}
