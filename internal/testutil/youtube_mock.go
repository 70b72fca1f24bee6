package testutil

import (
	"context"
	"errors"

	"github.com/exileum/youtube-comments-to-csv/internal/youtube"
)

type CommentLister struct {
	ListCommentThreadsFunc func(ctx context.Context, accessToken, channelID, pageToken string) (*youtube.CommentThreadsResponse, error)
}

func (m *CommentLister) ListCommentThreads(ctx context.Context, accessToken, channelID, pageToken string) (*youtube.CommentThreadsResponse, error) {
	if m.ListCommentThreadsFunc != nil {
		return m.ListCommentThreadsFunc(ctx, accessToken, channelID, pageToken)
	}
	return nil, errors.New("ListCommentThreadsFunc not set - test must explicitly set mock behavior")
}

// Thread builds a single-comment thread for test fixtures.
func Thread(published, author, text string) youtube.CommentThread {
	return youtube.CommentThread{
		Snippet: youtube.ThreadSnippet{
			TopLevelComment: youtube.Comment{
				Snippet: youtube.CommentSnippet{
					PublishedAt:       published,
					AuthorDisplayName: author,
					TextOriginal:      text,
				},
			},
		},
	}
}
