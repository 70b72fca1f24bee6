// Package auth performs the OAuth authorization-code exchange against
// Google's token endpoint and builds the consent URL for the initial screen.
package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
)

// ScopeYouTubeForceSSL is the scope required to read comment threads on
// behalf of the authorizing user.
const ScopeYouTubeForceSSL = "https://www.googleapis.com/auth/youtube.force-ssl"

// Exchanger wraps an oauth2 configuration for the authorization-code flow.
type Exchanger struct {
	cfg *oauth2.Config
}

// Token carries the credentials obtained from a successful exchange.
type Token struct {
	AccessToken  string
	RefreshToken string
}

func NewExchanger(clientID, clientSecret, redirectURI string) *Exchanger {
	return &Exchanger{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Scopes:       []string{ScopeYouTubeForceSSL},
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://accounts.google.com/o/oauth2/auth",
				TokenURL: "https://oauth2.googleapis.com/token",
			},
		},
	}
}

// SetEndpoint overrides the authorization and token endpoints after
// construction. Used by configuration and by tests that stand in for Google.
func (e *Exchanger) SetEndpoint(authURL, tokenURL string) *Exchanger {
	e.cfg.Endpoint = oauth2.Endpoint{AuthURL: authURL, TokenURL: tokenURL}
	return e
}

// AuthCodeURL returns the consent URL the user visits to authorize access.
// Offline access is requested so the exchange also yields a refresh token.
func (e *Exchanger) AuthCodeURL() string {
	return e.cfg.AuthCodeURL("",
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange trades an authorization code for tokens. A refused exchange
// yields an *ExchangeError carrying whatever the token endpoint reported.
func (e *Exchanger) Exchange(ctx context.Context, code string) (*Token, error) {
	if code == "" {
		return nil, NewExchangeError(0, "authorization code is empty", nil)
	}

	tok, err := e.cfg.Exchange(ctx, code)
	if err != nil {
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) {
			return nil, NewExchangeError(rerr.Response.StatusCode, string(rerr.Body), err)
		}
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}

	return &Token{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
	}, nil
}
