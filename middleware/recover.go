package middleware

import (
	"fmt"
	"net/http"

	"github.com/a48zhang/AIditor/pkg/logger"
	"github.com/a48zhang/AIditor/pkg/response"
)

// Recoverer turns a panicking handler into a 500 failure envelope.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.Sugar.Errorf("Panic serving %s %s: %v", r.Method, r.URL.Path, rec)
			msg := fmt.Sprint(rec)
			if err, ok := rec.(error); ok {
				msg = err.Error()
			}
			response.Fail(w, http.StatusInternalServerError, msg)
		}()
		next.ServeHTTP(w, r)
	})
}
