// Command tokengen mints HS256 access tokens for local development and can
// sign a settingsctl session in with the result.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aussiebroadwan/partsdash/pkg/cryptox"
	"github.com/aussiebroadwan/partsdash/pkg/idx"
	"github.com/aussiebroadwan/partsdash/pkg/jwtx"
	"github.com/aussiebroadwan/partsdash/pkg/settingssdk"
)

const defaultScopes = "settings:read settings:write"

type tokenOutput struct {
	Token     string   `json:"token"`
	Type      string   `json:"type"`
	Subject   string   `json:"subject"`
	Scopes    []string `json:"scopes"`
	ExpiresAt string   `json:"expires_at"`
}

func main() {
	userID := flag.String("user-id", "", "Subject of the token. A new ULID is generated if empty.")
	secret := flag.String("secret", os.Getenv("SETTINGS_JWT_SECRET"), "HS256 secret (default: $SETTINGS_JWT_SECRET)")
	issuer := flag.String("issuer", envOr("SETTINGS_ISSUER", "partsdash"), "Issuer claim")
	ttl := flag.Duration("ttl", jwtx.DefaultAccessTokenTTL, "Token time-to-live")
	scopes := flag.String("scopes", defaultScopes, "Space or comma separated scopes")
	sessionFile := flag.String("session-file", "", "If set, store the token in this settingsctl session file")
	asJSON := flag.Bool("json", false, "Output as JSON")
	newSecret := flag.Bool("new-secret", false, "Print a fresh random secret for SETTINGS_JWT_SECRET and exit")
	flag.Parse()

	if *newSecret {
		secret, err := cryptox.NewSecret()
		if err != nil {
			fmt.Fprintf(os.Stderr, "tokengen: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(secret)
		return
	}

	if err := run(*userID, *secret, *issuer, *ttl, *scopes, *sessionFile, *asJSON); err != nil {
		fmt.Fprintf(os.Stderr, "tokengen: %v\n", err)
		os.Exit(1)
	}
}

func run(userID, secret, issuer string, ttl time.Duration, scopes, sessionFile string, asJSON bool) error {
	signer, err := jwtx.NewHS256([]byte(secret), issuer)
	if err != nil {
		return fmt.Errorf("signer: %w", err)
	}

	if userID == "" {
		userID = idx.New().String()
	}

	now := time.Now()
	claims := jwtx.NewAccessClaims(userID, issuer, parseScopes(scopes), ttl, now)
	token, err := signer.Sign(claims)
	if err != nil {
		return fmt.Errorf("sign: %w", err)
	}

	if sessionFile != "" {
		// the refresh token is stored alongside but nothing redeems it
		refresh, err := cryptox.NewRefreshToken()
		if err != nil {
			return err
		}
		store := settingssdk.NewFileTokenStore(sessionFile)
		if err := store.Set(settingssdk.Credentials{AuthToken: token, RefreshToken: refresh}); err != nil {
			return err
		}
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tokenOutput{
			Token:     token,
			Type:      "Bearer",
			Subject:   userID,
			Scopes:    claims.Scopes,
			ExpiresAt: claims.ExpiresAt.Time.Format(time.RFC3339),
		})
	}

	fmt.Println(token)
	return nil
}

func parseScopes(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
