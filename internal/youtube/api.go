package youtube

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListCommentThreads fetches a single page of comment threads related to the
// given channel. Pass the previous page's NextPageToken to continue; an empty
// pageToken fetches the first page. Any non-200 response becomes an *APIError.
func (c *Client) ListCommentThreads(ctx context.Context, accessToken, channelID, pageToken string) (*CommentThreadsResponse, error) {
	req := c.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetQueryParams(map[string]string{
			"part":                         "snippet",
			"allThreadsRelatedToChannelId": channelID,
			"textFormat":                   "plainText",
			"maxResults":                   maxResults,
		})
	if pageToken != "" {
		req.SetQueryParam("pageToken", pageToken)
	}

	resp, err := req.Get(c.baseURL + "/commentThreads")
	if err != nil {
		return nil, fmt.Errorf("commentThreads request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, NewAPIError(resp.StatusCode(), resp.String())
	}

	var result CommentThreadsResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse commentThreads response: %w", err)
	}

	return &result, nil
}
