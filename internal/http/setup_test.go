package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"homeharbor/internal/http/handlers"
	"homeharbor/internal/store"
)

// newAPIApp builds a fiber app with the full /api route table over a fresh
// store, optionally loaded with the demo seed.
func newAPIApp(t *testing.T, seed bool) (*fiber.App, *store.MemStore) {
	t.Helper()
	st := store.New()
	if seed {
		store.Seed(st)
	}
	app := fiber.New()
	handlers.NewDeps(st).Register(app.Group("/api"))
	return app, st
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
