package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kgw94/go-liteflare/framework/container"
	gohttp "github.com/kgw94/go-liteflare/http"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func newResponse(t *testing.T) (*gohttp.Response, *httptest.ResponseRecorder) {
	t.Helper()
	rr := httptest.NewRecorder()
	return gohttp.NewResponse(rr), rr
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&m); err != nil {
		t.Fatalf("decodeJSON: %v", err)
	}
	return m
}

// ── JSON ──────────────────────────────────────────────────────────────────────

func TestResponse_JSON(t *testing.T) {
	res, rr := newResponse(t)
	res.JSON(http.StatusOK, map[string]any{"key": "val"})

	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q want application/json", ct)
	}
	if m := decodeJSON(t, rr); m["key"] != "val" {
		t.Errorf("body key: got %v want val", m["key"])
	}
}

func TestResponse_Success(t *testing.T) {
	res, rr := newResponse(t)
	res.Success(map[string]any{"id": float64(1)})

	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d want 200", rr.Code)
	}
	m := decodeJSON(t, rr)
	data, ok := m["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data envelope, got %T", m["data"])
	}
	if data["id"] != float64(1) {
		t.Errorf("data.id: got %v want 1", data["id"])
	}
}

func TestResponse_Created(t *testing.T) {
	res, rr := newResponse(t)
	res.Created(map[string]any{"name": "Alice"})

	if rr.Code != http.StatusCreated {
		t.Errorf("status: got %d want 201", rr.Code)
	}
	if m := decodeJSON(t, rr); m["data"] == nil {
		t.Error("expected 'data' key in response")
	}
}

func TestResponse_NoContent(t *testing.T) {
	res, rr := newResponse(t)
	res.NoContent()

	if rr.Code != http.StatusNoContent {
		t.Errorf("status: got %d want 204", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Error("204 must carry no body")
	}
}

func TestResponse_Error(t *testing.T) {
	res, rr := newResponse(t)
	res.Error(http.StatusBadRequest, "bad input")

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d want 400", rr.Code)
	}
	if m := decodeJSON(t, rr); m["message"] != "bad input" {
		t.Errorf("message: got %v", m["message"])
	}
}

func TestResponse_NotFoundDefaultMessage(t *testing.T) {
	res, rr := newResponse(t)
	res.NotFound()

	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d want 404", rr.Code)
	}
	if m := decodeJSON(t, rr); m["message"] != "Not found." {
		t.Errorf("message: got %v", m["message"])
	}
}

// ── Container failures ────────────────────────────────────────────────────────

func TestResponse_ResolutionFailure_Kinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind string
	}{
		{"circular", &container.CircularDependencyError{Abstract: "A", Path: []string{"A", "B"}}, "circular_dependency"},
		{"instantiation", &container.InstantiationError{Type: "X", Reason: "no blueprint registered"}, "instantiation"},
		{"unresolvable", &container.UnresolvableDependencyError{Type: "X", Param: "dsn"}, "unresolvable_dependency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, rr := newResponse(t)
			res.ResolutionFailure(tt.err)

			if rr.Code != http.StatusInternalServerError {
				t.Errorf("status: got %d want 500", rr.Code)
			}
			m := decodeJSON(t, rr)
			if m["kind"] != tt.kind {
				t.Errorf("kind: got %v want %v", m["kind"], tt.kind)
			}
			if m["message"] != tt.err.Error() {
				t.Errorf("message: got %v", m["message"])
			}
		})
	}
}
