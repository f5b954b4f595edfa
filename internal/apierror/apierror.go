// Package apierror implements the error taxonomy: the mapping from
// internal failure kinds to the two public response shapes. The "code"
// envelope ({"error":...,"code":N}) is used for validation failures and
// the error-trap middleware's generic 500; the "success" envelope
// ({"success":false,"error":...}) is used for resolution and adapter
// failures, which are reported on the endpoint's own response shape
// rather than a bare error body. Grounded on the prior
// internal/server/handlers.go response-shaping helpers, generalized from
// MCP tool-result wrapping to a plain HTTP JSON envelope.
package apierror

import (
	"encoding/json"
	"net/http"
)

// codeEnvelope is the {"error":...,"code":N} shape used by validation
// failures and the error-trap middleware.
type codeEnvelope struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// Failure is the {"success":false,"error":...} shape used by resolution
// and adapter failures, embedded into a handler's own response struct
// when the handler needs no extra fields beyond it.
type Failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// WriteJSON encodes v as the response body with the given status and a
// JSON content type.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteValidation writes a Validation-kind error: HTTP 400 (or another
// caller-chosen 4xx) with the {"error":...,"code":N} envelope.
func WriteValidation(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, codeEnvelope{Error: message, Code: status})
}

// WriteInternal writes the error-trap middleware's generic Unexpected-kind
// body: HTTP 500 with a fixed message, never the underlying error text
// (which is logged server-side instead).
func WriteInternal(w http.ResponseWriter) {
	WriteJSON(w, http.StatusInternalServerError, codeEnvelope{Error: "Internal server error", Code: http.StatusInternalServerError})
}

// WriteFailure writes a Resolution- or Adapter-kind error on the
// endpoint's own envelope: {"success":false,"error":message}, HTTP status
// as given (400 for resolution, 500 for adapter failures).
func WriteFailure(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Failure{Success: false, Error: message})
}
