// Package handlers exposes the REST controllers: request decoding, per-field
// validation, ownership checks, and projection of models into views. Business
// rules live in the services.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/solifood/foodlink/internal/apperr"
	"github.com/solifood/foodlink/internal/auth"
	"github.com/solifood/foodlink/internal/httpx"
)

// respondErr translates a domain error into its HTTP status and message body.
func respondErr(w http.ResponseWriter, err error) {
	httpx.Message(w, apperr.Status(err), err.Error())
}

// pathID parses a numeric path value such as {user_id}.
func pathID(r *http.Request, name string) (uint, bool) {
	raw := r.PathValue(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func badParam(w http.ResponseWriter, name string) {
	httpx.Message(w, http.StatusBadRequest, fmt.Sprintf("Invalid or missing parameter '%s'.", name))
}

// pathPage parses the {page} path value; pages start at 1.
func pathPage(r *http.Request) (int, bool) {
	page, err := strconv.Atoi(r.PathValue("page"))
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}

func decode(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func badBody(w http.ResponseWriter) {
	httpx.Message(w, http.StatusBadRequest, "Invalid request body.")
}

// noneFound is the shared empty-result response of list and page endpoints.
// An empty listing or an out-of-range page is not an error, so the status
// stays 200; only missing ids answer 404.
func noneFound(w http.ResponseWriter, plural string) {
	httpx.Message(w, http.StatusOK, fmt.Sprintf("No %s found.", plural))
}

// listPayload wraps a full listing under its entity key.
func listPayload(plural string, items any) map[string]any {
	return map[string]any{plural: items}
}

// pagePayload wraps one page of a listing with its page count.
func pagePayload(plural string, maxPages int, items any) map[string]any {
	return map[string]any{"max_pages": maxPages, plural: items}
}

// selfOrAdmin reports whether the authenticated caller is the given user or an
// administrator.
func selfOrAdmin(r *http.Request, userID uint) bool {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		return false
	}
	return claims.UserID == userID || claims.IsAdmin()
}
