package handlers

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// writeError emits the uniform error body {"error": "..."}.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// decodeJSON parses the request body into dst and reports failure to the
// client itself; callers just return on false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return false
	}
	return true
}

// stringFields keeps the allow-listed string-valued entries of a decoded
// JSON object. Everything else is silently dropped.
func stringFields(payload map[string]any, allowed ...string) map[string]string {
	fields := make(map[string]string)
	for _, key := range allowed {
		if v, ok := payload[key].(string); ok {
			fields[key] = v
		}
	}
	return fields
}
