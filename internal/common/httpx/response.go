package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"kitchen-pos/internal/common/logger"
	"kitchen-pos/internal/domain"
)

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteProblem writes a simplified RFC 7807 body.
func WriteProblem(w http.ResponseWriter, code int, typ, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"type":   typ,
		"title":  http.StatusText(code),
		"status": code,
		"detail": detail,
	})
}

// WriteError maps a domain error kind to its status. Anything unmarked is
// logged and answered with 500.
func WriteError(w http.ResponseWriter, r *http.Request, log *logger.Logger, err error) {
	kind := domain.Kind(err)
	var code int
	switch kind {
	case "validation", "reference":
		code = http.StatusBadRequest
	case "not_found":
		code = http.StatusNotFound
	case "conflict":
		code = http.StatusConflict
	default:
		log.WithRequestID(RequestID(r.Context())).Error("request_failed", err, map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
		})
		WriteProblem(w, http.StatusInternalServerError, "internal", "internal server error")
		return
	}
	WriteProblem(w, code, kind, err.Error())
}

// DecodeJSON reads the request body into v. Malformed bodies are validation
// errors.
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if domain.Kind(err) != "internal" {
			return err
		}
		return domain.Validationf("invalid JSON body: %s", err.Error())
	}
	return nil
}

// PathID parses the {key} path segment as a positive id.
func PathID(r *http.Request, key string) (int64, error) {
	raw := r.PathValue(key)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, domain.Validationf("invalid %s %q", key, raw)
	}
	return id, nil
}
