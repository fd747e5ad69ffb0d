package openapi

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// MarshalJSON serializes the spec as indented JSON without HTML escaping.
func MarshalJSON(spec *Spec) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(spec); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ServeSpec returns a handler that serves pre-marshaled spec bytes.
func ServeSpec(spec []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(spec)
	}
}
