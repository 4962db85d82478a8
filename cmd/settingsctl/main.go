// Command settingsctl reads and edits the caller's dashboard settings.
//
// The session lives in a local file (see tokengen -session-file). When the
// server rejects the token the session is cleared and the login path is
// printed, the same way the dashboard redirects to its login page.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aussiebroadwan/partsdash/pkg/settingssdk"
	"github.com/aussiebroadwan/partsdash/pkg/slogx"
)

func main() {
	server := flag.String("server", envOr("SETTINGS_URL", "http://localhost:8080"), "Settings API base URL")
	session := flag.String("session", defaultSessionPath(), "Session file holding authToken/refreshToken")
	timeout := flag.Duration("timeout", 10*time.Second, "Request timeout")
	verbose := flag.Bool("v", false, "Log requests to stderr")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	logger := slogx.Discard()
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	tokens := settingssdk.NewFileTokenStore(*session)
	gw := settingssdk.NewGateway(tokens, func(path string) {
		fmt.Fprintf(os.Stderr, "session expired, sign in again: %s\n", path)
	}, logger)
	gw.HTTPClient.Timeout = *timeout
	client := settingssdk.NewSDKClient(*server, gw)

	ctx := context.Background()
	if err := run(ctx, client, flag.Arg(0), flag.Args()[1:], os.Stdout); err != nil {
		if !settingssdk.IsUnauthorized(err) {
			fmt.Fprintf(os.Stderr, "settingsctl: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, client *settingssdk.SDKClient, cmd string, args []string, out io.Writer) error {
	switch cmd {
	case "get":
		doc, err := client.GetSettings(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, doc)

	case "update":
		fs := flag.NewFlagSet("update", flag.ContinueOnError)
		file := fs.String("f", "-", "JSON file with the sections to replace (- for stdin)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		update, err := readUpdate(*file)
		if err != nil {
			return err
		}
		doc, err := client.UpdateSettings(ctx, update)
		if err != nil {
			return err
		}
		return printJSON(out, doc)

	case "reset":
		doc, err := client.ResetSettings(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, doc)

	case "health":
		h, err := client.GetLiveness(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, h)

	case "logout":
		return client.SignOut()

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func readUpdate(path string) (settingssdk.SettingsUpdate, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return settingssdk.SettingsUpdate{}, err
		}
		defer f.Close()
		r = f
	}

	var update settingssdk.SettingsUpdate
	if err := json.NewDecoder(r).Decode(&update); err != nil && !errors.Is(err, io.EOF) {
		return settingssdk.SettingsUpdate{}, fmt.Errorf("decode update: %w", err)
	}
	return update, nil
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".partsdash-session.json"
	}
	return filepath.Join(dir, "partsdash", "session.json")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func usage() {
	fmt.Fprint(os.Stderr, `settingsctl - manage your partsdash dashboard settings

Usage:
  settingsctl [flags] <command>

Commands:
  get                 Print your settings (defaults are created on first use)
  update [-f file]    Replace the sections in file (JSON, - for stdin)
  reset               Restore the default settings
  health              Check the server is up
  logout              Clear the local session

Flags:
`)
	flag.PrintDefaults()
}
