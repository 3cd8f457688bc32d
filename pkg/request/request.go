// Package request holds helpers for reading JSON bodies and optional query parameters.
package request

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/a48zhang/AIditor/pkg/apperror"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 4 << 20

// DecodeJSON decodes the request body into v. Any decode failure is a validation error.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperror.Validation("Invalid request body")
	}
	return nil
}

// String returns the query value for key, or nil when missing or empty.
func String(q url.Values, key string) *string {
	v := q.Get(key)
	if v == "" {
		return nil
	}
	return &v
}

// Int64 returns the query value for key parsed as an integer. Missing, malformed
// and zero values are treated as absent.
func Int64(q url.Values, key string) *int64 {
	n, err := strconv.ParseInt(q.Get(key), 10, 64)
	if err != nil || n == 0 {
		return nil
	}
	return &n
}

// Uint64 returns the query value for key when it is a positive integer.
func Uint64(q url.Values, key string) *uint64 {
	n, err := strconv.ParseUint(q.Get(key), 10, 64)
	if err != nil || n == 0 {
		return nil
	}
	return &n
}
