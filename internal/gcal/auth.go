package gcal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// LoadClientSecret resolves the OAuth client secret JSON. An inline JSON
// value (environment) takes priority over the file path; both missing is
// not an error, it just leaves the adapter unauthenticated.
func LoadClientSecret(inlineJSON, file string) ([]byte, error) {
	if inlineJSON != "" {
		return []byte(inlineJSON), nil
	}
	b, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read client secret %s: %w", file, err)
	}
	return b, nil
}

// OAuthConfig parses a client secret JSON into an oauth2 config scoped to
// calendar access.
func OAuthConfig(secretJSON []byte, redirectURL string) (*oauth2.Config, error) {
	conf, err := google.ConfigFromJSON(secretJSON, calendar.CalendarScope, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("parse client secret: %w", err)
	}
	if redirectURL != "" {
		conf.RedirectURL = redirectURL
	}
	return conf, nil
}

// LoadToken resolves a previously authorized token, preferring inline JSON
// over the token file. A missing token is not an error.
func LoadToken(inlineJSON, file string) (*oauth2.Token, error) {
	var raw []byte
	if inlineJSON != "" {
		raw = []byte(inlineJSON)
	} else {
		b, err := os.ReadFile(file)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, nil
			}
			return nil, fmt.Errorf("read token %s: %w", file, err)
		}
		raw = b
	}

	var tok oauth2.Token
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	return &tok, nil
}

// SaveToken persists the token so the next process start can refresh
// silently instead of re-running the consent flow.
func SaveToken(file string, tok *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(file), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	b, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}
	if err := os.WriteFile(file, b, 0o600); err != nil {
		return fmt.Errorf("write token %s: %w", file, err)
	}
	return nil
}

// ExchangeCode trades an authorization code for a token.
func ExchangeCode(ctx context.Context, conf *oauth2.Config, code string) (*oauth2.Token, error) {
	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("token exchange: %w", err)
	}
	return tok, nil
}
