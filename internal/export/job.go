// Package export implements the comment export job: it pages through the
// comment threads of a channel, buffers the rows to a scratch file, and
// returns the accumulated CSV text.
package export

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/exileum/youtube-comments-to-csv/internal/youtube"
)

// CommentLister fetches one page of comment threads. Satisfied by
// *youtube.Client and mocked in tests.
type CommentLister interface {
	ListCommentThreads(ctx context.Context, accessToken, channelID, pageToken string) (*youtube.CommentThreadsResponse, error)
}

type Job struct {
	lister  CommentLister
	limit   int
	allowed map[string]bool
	lg      *slog.Logger
}

// NewJob creates an export job. limit is the record count past which no
// further pages are requested. allowedChannels restricts which channels may
// be exported; empty means no restriction.
func NewJob(lister CommentLister, limit int, allowedChannels []string) *Job {
	var allowed map[string]bool
	if len(allowedChannels) > 0 {
		allowed = make(map[string]bool, len(allowedChannels))
		for _, id := range allowedChannels {
			allowed[id] = true
		}
	}

	return &Job{
		lister:  lister,
		limit:   limit,
		allowed: allowed,
		lg:      slog.Default(),
	}
}

// Run fetches all comment threads for the channel and returns them as CSV
// text. Pages are appended to a scratch file as they arrive; the file is
// removed before Run returns, whatever the outcome.
func (j *Job) Run(ctx context.Context, accessToken, channelID string) (string, error) {
	if accessToken == "" {
		return "", ErrMissingAccessToken
	}
	if channelID == "" {
		return "", ErrMissingChannelID
	}
	if j.allowed != nil && !j.allowed[channelID] {
		return "", fmt.Errorf("channel %q: %w", channelID, ErrChannelNotAllowed)
	}

	scratch, err := os.CreateTemp("", "comments-*.csv")
	if err != nil {
		return "", fmt.Errorf("failed to create scratch file: %w", err)
	}
	defer func() {
		_ = scratch.Close()
		_ = os.Remove(scratch.Name())
	}()

	buf := bufio.NewWriter(scratch)
	total := 0
	pageToken := ""

	for {
		page, err := j.lister.ListCommentThreads(ctx, accessToken, channelID, pageToken)
		if err != nil {
			return "", err
		}

		for _, thread := range page.Items {
			snippet := thread.Snippet.TopLevelComment.Snippet
			if _, err := buf.WriteString(formatRecord(snippet.PublishedAt, snippet.AuthorDisplayName, snippet.TextOriginal)); err != nil {
				return "", fmt.Errorf("failed to write record: %w", err)
			}
			total++
		}
		if err := buf.Flush(); err != nil {
			return "", fmt.Errorf("failed to flush scratch file: %w", err)
		}

		j.lg.DebugContext(ctx, "fetched page", "channel", channelID, "records", len(page.Items), "total", total)

		pageToken = page.NextPageToken
		if pageToken == "" || total > j.limit {
			break
		}
	}

	if _, err := scratch.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind scratch file: %w", err)
	}
	out, err := io.ReadAll(scratch)
	if err != nil {
		return "", fmt.Errorf("failed to read scratch file: %w", err)
	}

	j.lg.InfoContext(ctx, "export finished", "channel", channelID, "records", total)
	return string(out), nil
}
