// Package reddit is a minimal read-only Reddit API client: app-only OAuth,
// subreddit search and full comment-tree retrieval. It covers exactly the
// surface the prediction and mention scans need, nothing more.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"github.com/shanelightowler/crypto-daily-mentions/models"
)

const (
	// DefaultBaseURL is the authenticated API host.
	DefaultBaseURL = "https://oauth.reddit.com"

	// tokenURL is Reddit's app-only token endpoint.
	tokenURL = "https://www.reddit.com/api/v1/access_token"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// Reddit permits 100 queries per minute per OAuth client; one per
	// second keeps a comfortable margin.
	requestsPerSecond = 1

	// morechildrenBatch is the API's cap on IDs per morechildren call.
	morechildrenBatch = 100
)

// Client talks to the Reddit data API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL points the client at a custom host, used by tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client, bypassing OAuth. Used by tests.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a client using Reddit's application-only OAuth grant.
// The credentials are a registered script app's client ID and secret.
func NewClient(ctx context.Context, clientID, clientSecret, userAgent string, opts ...ClientOption) *Client {
	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: userAgent,
		limiter:   rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = conf.Client(ctx)
		c.httpClient.Timeout = DefaultTimeout
	}
	return c
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d for %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// FindLatestDailyThread returns the newest thread in the subreddit whose
// title contains query.
func (c *Client) FindLatestDailyThread(ctx context.Context, subreddit, query string) (*models.Thread, error) {
	q := url.Values{
		"q":           {query},
		"restrict_sr": {"1"},
		"sort":        {"new"},
		"t":           {"day"},
		"limit":       {"25"},
	}
	var result listing
	if err := c.getJSON(ctx, "/r/"+subreddit+"/search.json", q, &result); err != nil {
		return nil, fmt.Errorf("thread search failed: %w", err)
	}
	needle := strings.ToLower(query)
	for _, child := range result.Data.Children {
		if strings.Contains(strings.ToLower(child.Data.Title), needle) {
			return &models.Thread{
				ID:        child.Data.ID,
				Title:     child.Data.Title,
				Permalink: child.Data.Permalink,
			}, nil
		}
	}
	return nil, fmt.Errorf("no thread matching %q found in r/%s", query, subreddit)
}

// FindDailyThreadByDate locates a dated daily thread. Daily threads carry
// their date spelled out in the title ("January 2, 2006"), so the search is
// a title-contains scan over historical results.
func (c *Client) FindDailyThreadByDate(ctx context.Context, subreddit, query string, date time.Time) (*models.Thread, error) {
	needle := strings.ToLower(date.Format("January 2, 2006"))
	titleNeedle := strings.ToLower(query)

	q := url.Values{
		"q":           {query + " " + date.Format("January 2, 2006")},
		"restrict_sr": {"1"},
		"sort":        {"new"},
		"t":           {"all"},
		"limit":       {"100"},
	}
	after := ""
	for page := 0; page < 5; page++ {
		if after != "" {
			q.Set("after", after)
		}
		var result listing
		if err := c.getJSON(ctx, "/r/"+subreddit+"/search.json", q, &result); err != nil {
			return nil, fmt.Errorf("thread search failed: %w", err)
		}
		for _, child := range result.Data.Children {
			title := strings.ToLower(child.Data.Title)
			if strings.Contains(title, titleNeedle) && strings.Contains(title, needle) {
				return &models.Thread{
					ID:        child.Data.ID,
					Title:     child.Data.Title,
					Permalink: child.Data.Permalink,
				}, nil
			}
		}
		after = result.Data.After
		if after == "" {
			break
		}
	}
	return nil, fmt.Errorf("no %q thread for %s in r/%s", query, date.Format("2006-01-02"), subreddit)
}

// Comments fetches the full comment tree of a thread, flattening nested
// replies and resolving collapsed "more" stubs in batches.
func (c *Client) Comments(ctx context.Context, threadID string) ([]models.Comment, error) {
	q := url.Values{
		"limit": {"500"},
		"sort":  {"new"},
	}
	var pages []listing
	if err := c.getJSON(ctx, "/comments/"+threadID+".json", q, &pages); err != nil {
		return nil, fmt.Errorf("comment fetch failed: %w", err)
	}
	if len(pages) < 2 {
		return nil, fmt.Errorf("malformed comment listing for thread %s", threadID)
	}

	var comments []models.Comment
	var more []string
	collect(pages[1].Data.Children, &comments, &more)

	for len(more) > 0 {
		batch := more
		if len(batch) > morechildrenBatch {
			batch = batch[:morechildrenBatch]
		}
		more = more[len(batch):]

		mq := url.Values{
			"link_id":  {"t3_" + threadID},
			"children": {strings.Join(batch, ",")},
			"api_type": {"json"},
		}
		var mc moreChildrenResponse
		if err := c.getJSON(ctx, "/api/morechildren.json", mq, &mc); err != nil {
			return nil, fmt.Errorf("morechildren fetch failed: %w", err)
		}
		collect(mc.JSON.Data.Things, &comments, &more)
	}
	return comments, nil
}

type moreChildrenResponse struct {
	JSON struct {
		Data struct {
			Things []thing `json:"things"`
		} `json:"data"`
	} `json:"json"`
}

// collect walks a comment forest depth-first, appending real comments and
// queueing the IDs held by "more" stubs.
func collect(things []thing, comments *[]models.Comment, more *[]string) {
	for _, t := range things {
		switch t.Kind {
		case "t1":
			*comments = append(*comments, t.Data.comment())
			if len(t.Data.Replies) > 0 && string(t.Data.Replies) != `""` {
				var replies listing
				if err := json.Unmarshal(t.Data.Replies, &replies); err == nil {
					collect(replies.Data.Children, comments, more)
				}
			}
		case "more":
			*more = append(*more, t.Data.Children...)
		}
	}
}
