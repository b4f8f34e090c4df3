package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"newsboard/internal/apperr"
	"newsboard/internal/logging"
)

// errorBody is the wire shape for every failed request.
type errorBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Headers are gone; nothing useful left to send.
		slog.Default().Error("failed to encode response body", slog.String("error", err.Error()))
	}
}

// writeError maps a classified error onto its status code and client-safe
// message. Server-side detail for 5xx failures goes to the request logger
// only.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
	writeJSON(w, status, errorBody{Message: apperr.ClientMessage(err)})
}

// decodeStrict decodes a JSON request body, rejecting unknown fields and
// trailing content.
func decodeStrict(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apperr.BadRequest("invalid request body")
	}
	return nil
}

// pathID parses a numeric path segment. Anything that is not a base-10
// integer fails before the store is touched.
func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		return 0, apperr.BadRequest(fmt.Sprintf("%s must be an integer", name))
	}
	return id, nil
}
