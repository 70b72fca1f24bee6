package youtube

// CommentThreadsResponse is one page of the commentThreads list call.
// NextPageToken is empty on the last page.
type CommentThreadsResponse struct {
	NextPageToken string          `json:"nextPageToken,omitempty"`
	PageInfo      PageInfo        `json:"pageInfo"`
	Items         []CommentThread `json:"items"`
}

type PageInfo struct {
	TotalResults   int `json:"totalResults"`
	ResultsPerPage int `json:"resultsPerPage"`
}

// CommentThread is a top-level comment plus reply metadata. Only the
// top-level comment's snippet is consumed here.
type CommentThread struct {
	ID      string        `json:"id"`
	Snippet ThreadSnippet `json:"snippet"`
}

type ThreadSnippet struct {
	ChannelID       string  `json:"channelId"`
	VideoID         string  `json:"videoId,omitempty"`
	TopLevelComment Comment `json:"topLevelComment"`
	TotalReplyCount int     `json:"totalReplyCount"`
}

type Comment struct {
	ID      string         `json:"id"`
	Snippet CommentSnippet `json:"snippet"`
}

// CommentSnippet carries the three fields that end up in the CSV output.
type CommentSnippet struct {
	AuthorDisplayName string `json:"authorDisplayName"`
	TextOriginal      string `json:"textOriginal"`
	PublishedAt       string `json:"publishedAt"`
	UpdatedAt         string `json:"updatedAt,omitempty"`
	LikeCount         int    `json:"likeCount"`
}
