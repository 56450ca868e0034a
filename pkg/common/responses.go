package common

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// Envelope is the standard response wrapper. Every successful query
// answer is delivered under the "response" key.
type Envelope struct {
	Response interface{} `json:"response"`
}

// RespondJSON sends a JSON response wrapped in the standard envelope
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Envelope{Response: data})
}

// RespondDetail sends a bare {status, detail} message, used for
// informational endpoints that carry no query result.
func RespondDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": status,
		"detail": detail,
	})
}

// ExtractRequestID extracts the request ID from the request, generating
// one when no upstream component supplied it
func ExtractRequestID(r *http.Request) string {
	if id := r.Header.Get("X-Request-ID"); id != "" {
		return id
	}
	if id := r.Header.Get("X-Request-Id"); id != "" {
		return id
	}
	if id, ok := r.Context().Value("request_id").(string); ok {
		return id
	}
	return uuid.New().String()
}

// ParseJSONBody parses JSON request body with size limit
func ParseJSONBody(r *http.Request, v interface{}, maxBytes int64) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		return err
	}

	return nil
}
