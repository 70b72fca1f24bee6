package config

import (
	"fmt"
	"net/url"
	"strings"
)

func (c *Config) Validate() error {
	if err := c.validateGoogle(); err != nil {
		return fmt.Errorf("Google config validation failed: %w", err)
	}

	if err := c.validateYouTube(); err != nil {
		return fmt.Errorf("YouTube config validation failed: %w", err)
	}

	if err := c.validateExport(); err != nil {
		return fmt.Errorf("export config validation failed: %w", err)
	}

	if c.Server.Addr == "" {
		return NewConfigurationError("HTTP_ADDR", "listen address must be configured")
	}

	return nil
}

func (c *Config) validateGoogle() error {
	if c.Google.ClientID == "" {
		return NewConfigurationError("GOOGLE_CLIENT_ID", "OAuth client ID must be configured")
	}

	if c.Google.ClientSecret == "" {
		return NewConfigurationError("GOOGLE_CLIENT_SECRET", "OAuth client secret must be configured")
	}

	if c.Google.RedirectURI == "" {
		return NewConfigurationError("GOOGLE_REDIRECT_URI", "OAuth redirect URI must be configured")
	}

	if err := validateHTTPURL(c.Google.RedirectURI); err != nil {
		return NewConfigurationErrorWithCause("GOOGLE_REDIRECT_URI", "invalid redirect URI", err)
	}

	if err := validateHTTPURL(c.Google.AuthURL); err != nil {
		return NewConfigurationErrorWithCause("OAUTH_AUTH_URL", "invalid authorization endpoint", err)
	}

	if err := validateHTTPURL(c.Google.TokenURL); err != nil {
		return NewConfigurationErrorWithCause("OAUTH_TOKEN_URL", "invalid token endpoint", err)
	}

	return nil
}

func (c *Config) validateYouTube() error {
	if err := validateHTTPURL(c.YouTube.APIURL); err != nil {
		return NewConfigurationErrorWithCause("YOUTUBE_API_URL", "invalid API base URL", err)
	}

	if c.YouTube.Timeout <= 0 {
		return NewConfigurationError("HTTP_TIMEOUT", "timeout must be positive")
	}

	return nil
}

func (c *Config) validateExport() error {
	if c.Export.RecordLimit <= 0 {
		return NewConfigurationError("RECORD_LIMIT", "record limit must be positive")
	}

	for _, id := range c.Export.AllowedChannels {
		if strings.TrimSpace(id) == "" {
			return NewConfigurationError("ALLOWED_CHANNELS", "allowlist entries cannot be blank")
		}
	}

	return nil
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL must use http or https scheme: %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("URL must include a host: %q", raw)
	}
	return nil
}
