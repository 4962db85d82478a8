package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/partsdash/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mark("outer"), mark("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestAuthnMiddleware(t *testing.T) {
	t.Parallel()

	verifier, err := jwtx.NewHS256([]byte("0123456789abcdef0123456789abcdef"), "partsdash")
	require.NoError(t, err)

	var gotUser string
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = UserIDFromContext(r.Context())
	}), AuthnMiddleware(verifier))

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/settings", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("bad token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := verifier.Sign(jwtx.NewAccessClaims("user-42", "partsdash", nil, time.Minute, time.Now()))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "user-42", gotUser)
	})
}

func TestRequireAnyScope(t *testing.T) {
	t.Parallel()

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
		RequireAnyScope("settings:write"))

	req := httptest.NewRequest(http.MethodPut, "/v1/settings", nil)
	req = req.WithContext(contextWithAuth(req.Context(), jwtx.Claims{Scopes: []string{"settings:read"}}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodPut, "/v1/settings", nil)
	req = req.WithContext(contextWithAuth(req.Context(), jwtx.Claims{Scopes: []string{"settings:write"}}))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Parallel()

	cfg := RateLimitConfig{RequestsPerWindow: 2, Window: time.Hour, Burst: 2}
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}), RateLimitByIP(cfg))

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/livez", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, send("10.0.0.1").Code)
	require.Equal(t, http.StatusOK, send("10.0.0.1").Code)

	limited := send("10.0.0.1")
	require.Equal(t, http.StatusTooManyRequests, limited.Code)
	require.NotEmpty(t, limited.Header().Get("Retry-After"))

	// Other clients have their own bucket.
	require.Equal(t, http.StatusOK, send("10.0.0.2").Code)
}

func TestIPKeyExtractor(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	require.Equal(t, "203.0.113.7", IPKeyExtractor(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:5555"
	require.Equal(t, "192.0.2.1", IPKeyExtractor(req))
}

func TestParseRateLimitFromEnv(t *testing.T) {
	t.Setenv("RATELIMIT_TEST_REQUESTS", "7")
	t.Setenv("RATELIMIT_TEST_WINDOW_SEC", "30")
	t.Setenv("RATELIMIT_TEST_BURST", "-1")

	cfg := ParseRateLimitFromEnv("TEST", RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 3})
	require.Equal(t, 7, cfg.RequestsPerWindow)
	require.Equal(t, 30*time.Second, cfg.Window)
	require.Equal(t, 3, cfg.Burst)
}
