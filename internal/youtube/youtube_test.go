package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	client := NewClient("https://www.googleapis.com/youtube/v3")
	if client == nil {
		t.Fatal("Expected client to be created, got nil")
	}

	chained := client.SetTimeout(10 * time.Second)
	if chained != client {
		t.Error("SetTimeout should return the same client instance for method chaining")
	}
}

func TestListCommentThreads(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/commentThreads" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Expected bearer token header, got %q", got)
		}

		q := r.URL.Query()
		if q.Get("part") != "snippet" {
			t.Errorf("Expected part=snippet, got %q", q.Get("part"))
		}
		if q.Get("allThreadsRelatedToChannelId") != "UCtest" {
			t.Errorf("Expected channel query param, got %q", q.Get("allThreadsRelatedToChannelId"))
		}
		if q.Get("textFormat") != "plainText" {
			t.Errorf("Expected textFormat=plainText, got %q", q.Get("textFormat"))
		}

		w.Header().Set("Content-Type", "application/json")
		if q.Get("pageToken") == "" {
			fmt.Fprint(w, `{
				"nextPageToken": "PAGE2",
				"pageInfo": {"totalResults": 3, "resultsPerPage": 2},
				"items": [
					{"id": "t1", "snippet": {"topLevelComment": {"id": "c1", "snippet": {
						"authorDisplayName": "alice", "textOriginal": "first", "publishedAt": "2023-01-07T10:00:00Z"}}}},
					{"id": "t2", "snippet": {"topLevelComment": {"id": "c2", "snippet": {
						"authorDisplayName": "bob", "textOriginal": "second", "publishedAt": "2023-01-07T11:00:00Z"}}}}
				]
			}`)
			return
		}
		fmt.Fprint(w, `{
			"pageInfo": {"totalResults": 3, "resultsPerPage": 2},
			"items": [
				{"id": "t3", "snippet": {"topLevelComment": {"id": "c3", "snippet": {
					"authorDisplayName": "carol", "textOriginal": "third", "publishedAt": "2023-01-07T12:00:00Z"}}}}
			]
		}`)
	}))
	defer ts.Close()

	client := NewClient(ts.URL)

	first, err := client.ListCommentThreads(context.Background(), "test-token", "UCtest", "")
	if err != nil {
		t.Fatalf("First page fetch failed: %v", err)
	}
	if first.NextPageToken != "PAGE2" {
		t.Errorf("Expected next page token PAGE2, got %q", first.NextPageToken)
	}
	if len(first.Items) != 2 {
		t.Fatalf("Expected 2 items on first page, got %d", len(first.Items))
	}
	if got := first.Items[0].Snippet.TopLevelComment.Snippet.AuthorDisplayName; got != "alice" {
		t.Errorf("Expected author alice, got %q", got)
	}

	second, err := client.ListCommentThreads(context.Background(), "test-token", "UCtest", first.NextPageToken)
	if err != nil {
		t.Fatalf("Second page fetch failed: %v", err)
	}
	if second.NextPageToken != "" {
		t.Errorf("Expected no next page token on last page, got %q", second.NextPageToken)
	}
	if len(second.Items) != 1 {
		t.Fatalf("Expected 1 item on last page, got %d", len(second.Items))
	}
}

func TestListCommentThreadsAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error": {"code": 403, "message": "quotaExceeded"}}`)
	}))
	defer ts.Close()

	client := NewClient(ts.URL)

	_, err := client.ListCommentThreads(context.Background(), "test-token", "UCtest", "")
	if err == nil {
		t.Fatal("Expected API error, got nil")
	}

	if !IsAPIError(err) {
		t.Fatalf("Expected *APIError, got %T: %v", err, err)
	}
	if StatusCodeOf(err) != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", StatusCodeOf(err))
	}
	if !strings.Contains(err.Error(), "quotaExceeded") {
		t.Errorf("Expected upstream body in error message, got %q", err.Error())
	}
}

func TestListCommentThreadsBadJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json at all`)
	}))
	defer ts.Close()

	client := NewClient(ts.URL)

	_, err := client.ListCommentThreads(context.Background(), "test-token", "UCtest", "")
	if err == nil {
		t.Fatal("Expected parse error, got nil")
	}
	if IsAPIError(err) {
		t.Error("A decode failure is not an API error")
	}
}

func TestListCommentThreadsContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	client := NewClient(ts.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.ListCommentThreads(ctx, "test-token", "UCtest", "")
	if err == nil {
		t.Fatal("Expected error from cancelled context, got nil")
	}
}
