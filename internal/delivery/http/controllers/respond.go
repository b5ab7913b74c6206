package controllers

import (
	"log/slog"
	"net/http"

	"github.com/pc0808/easel/internal/delivery/http/helpers"
	"github.com/pc0808/easel/internal/delivery/http/middleware"
	"github.com/pc0808/easel/internal/domain"
)

// respondError maps a service error onto the response envelope, logging only
// the errors that surface as 500s.
func respondError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	if helpers.IsInternal(err) {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
	helpers.WriteDomainError(w, err)
}

// pathID parses the named path segment as an ID. On failure it writes a 400
// and returns false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (domain.ID, bool) {
	id, err := domain.ParseID(r.PathValue(name))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid "+name)
		return domain.ID{}, false
	}
	return id, true
}

// authedUser returns the user ID placed in the context by RequireAuth. On
// absence it writes a 401 and returns false.
func authedUser(w http.ResponseWriter, r *http.Request) (domain.ID, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return domain.ID{}, false
	}
	return userID, true
}
