// Package http provides LiteFlare's JSON response helpers, including the
// mapping from container resolution failures to HTTP error payloads.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kgw94/go-liteflare/framework/container"
)

// ── Response ─────────────────────────────────────────────────────────────────

// Response wraps http.ResponseWriter with Laravel-style helpers.
type Response struct {
	w http.ResponseWriter
}

// NewResponse wraps a ResponseWriter.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w}
}

// Raw returns the underlying ResponseWriter.
func (res *Response) Raw() http.ResponseWriter { return res.w }

// ── JSON responses ────────────────────────────────────────────────────────────

// JSON sends a JSON response.
//
//	res.JSON(http.StatusOK, map[string]any{"message": "ok"})
func (res *Response) JSON(status int, data any) {
	res.w.Header().Set("Content-Type", "application/json")
	res.w.WriteHeader(status)
	_ = json.NewEncoder(res.w).Encode(data)
}

// Success sends 200 JSON: {"data": v}
func (res *Response) Success(v any) {
	res.JSON(http.StatusOK, envelope{"data": v})
}

// Created sends 201 JSON: {"data": v}
func (res *Response) Created(v any) {
	res.JSON(http.StatusCreated, envelope{"data": v})
}

// NoContent sends 204 with no body.
func (res *Response) NoContent() {
	res.w.WriteHeader(http.StatusNoContent)
}

// Error sends a JSON error response.
//
//	res.Error(http.StatusNotFound, "Resource not found")
func (res *Response) Error(status int, message string) {
	res.JSON(status, envelope{"message": message})
}

// NotFound sends 404.
func (res *Response) NotFound(message ...string) {
	msg := first(message, "Not found.")
	res.JSON(http.StatusNotFound, envelope{"message": msg})
}

// ServerError sends 500.
func (res *Response) ServerError(message ...string) {
	msg := first(message, "Server Error.")
	res.JSON(http.StatusInternalServerError, envelope{"message": msg})
}

// ── Container failures ────────────────────────────────────────────────────────

// ResolutionFailure sends 500 with the container error kind attached, so a
// misconfigured binding is diagnosable straight from the response body.
//
//	// {"message": "container: ...", "kind": "circular_dependency"}
func (res *Response) ResolutionFailure(err error) {
	res.JSON(http.StatusInternalServerError, envelope{
		"message": err.Error(),
		"kind":    errorKind(err),
	})
}

func errorKind(err error) string {
	var (
		cycErr  *container.CircularDependencyError
		instErr *container.InstantiationError
		depErr  *container.UnresolvableDependencyError
	)
	switch {
	case errors.As(err, &cycErr):
		return "circular_dependency"
	case errors.As(err, &instErr):
		return "instantiation"
	case errors.As(err, &depErr):
		return "unresolvable_dependency"
	}
	return "resolution"
}

// ── Helpers ──────────────────────────────────────────────────────────────────

type envelope map[string]any

func first(ss []string, fallback string) string {
	if len(ss) > 0 && ss[0] != "" {
		return ss[0]
	}
	return fallback
}
