package export

import "errors"

// Sentinel errors for export job validation
var (
	// ErrMissingAccessToken indicates the job was started without a token
	ErrMissingAccessToken = errors.New("access token is required")

	// ErrMissingChannelID indicates the job was started without a channel
	ErrMissingChannelID = errors.New("channel ID is required")

	// ErrChannelNotAllowed indicates the channel is not on the allowlist
	ErrChannelNotAllowed = errors.New("channel is not allowed")
)
