package settingssdk

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/partsdash/pkg/cryptox"
)

// DefaultLoginPath is where the Gateway sends the user after a 401.
const DefaultLoginPath = "/login"

// Gateway is the single choke point for outbound API calls. It attaches the
// stored bearer token and, when the server answers 401, signs the user out
// and hands the login path to the host's Navigator.
//
// The Gateway makes exactly one attempt per call. It does not serialize
// sign-in against 401 handling: a 401 from a request that was already in
// flight when a newer sign-in happened will clear the newer token.
type Gateway struct {
	Tokens     TokenStore
	HTTPClient *http.Client

	// Navigator is invoked with LoginPath after a 401. May be nil.
	Navigator func(path string)
	LoginPath string

	Logger *slog.Logger
}

// NewGateway returns a Gateway with a default HTTP client and login path.
func NewGateway(tokens TokenStore, navigator func(path string), logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		Tokens:     tokens,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Navigator:  navigator,
		LoginPath:  DefaultLoginPath,
		Logger:     logger,
	}
}

// Send performs req. The response is returned exactly as received, including
// a 401, and transport errors are passed through untouched.
func (g *Gateway) Send(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	if out.Header == nil {
		out.Header = make(http.Header)
	}

	creds, err := g.Tokens.Get()
	if err != nil {
		g.logger().Warn("token store read failed, sending unauthenticated",
			"error", err,
			"method", req.Method,
			"url", req.URL.String(),
		)
	}
	if creds.AuthToken != "" {
		out.Header.Set("Authorization", "Bearer "+creds.AuthToken)
	} else {
		out.Header.Del("Authorization")
		g.logger().Warn("no auth token available, sending unauthenticated request",
			"method", req.Method,
			"url", req.URL.String(),
		)
	}

	resp, err := g.client().Do(out)
	if err != nil {
		return resp, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		g.invalidate(req, creds.AuthToken)
	}
	return resp, nil
}

func (g *Gateway) invalidate(req *http.Request, sentToken string) {
	g.logger().Warn("request rejected as unauthorized, clearing session",
		"method", req.Method,
		"url", req.URL.String(),
		"token_fp", cryptox.Fingerprint(sentToken),
	)

	if err := g.Tokens.Clear(); err != nil {
		g.logger().Error("failed to clear token store", "error", err)
	}

	if g.Navigator != nil {
		path := g.LoginPath
		if path == "" {
			path = DefaultLoginPath
		}
		g.Navigator(path)
	}
}

func (g *Gateway) client() *http.Client {
	if g.HTTPClient != nil {
		return g.HTTPClient
	}
	return http.DefaultClient
}

func (g *Gateway) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}
