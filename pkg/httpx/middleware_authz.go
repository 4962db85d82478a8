package httpx

import (
	"net/http"
	"strings"
)

// RequireAnyScope rejects callers holding none of the required scopes.
func RequireAnyScope(required ...string) Middleware {
	want := make(map[string]struct{}, len(required))
	for _, s := range required {
		want[s] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, s := range scopesFromCtx(r.Context()) {
				if _, ok := want[s]; ok {
					next.ServeHTTP(w, r)
					return
				}
			}

			w.Header().Set("WWW-Authenticate",
				`Bearer error="insufficient_scope", scope="`+strings.Join(required, " ")+`"`)
			WriteJSON(w, http.StatusForbidden, map[string]any{
				"success": false,
				"message": "insufficient scope",
			})
		})
	}
}
