package models

// Comment is a single comment from a discussion thread, as supplied by the
// Reddit collaborator. Author is empty when the account has been deleted.
type Comment struct {
	ID       string `json:"id"`
	Author   string `json:"author,omitempty"`
	Body     string `json:"body"`
	BodyHTML string `json:"body_html,omitempty"`
}

// Thread identifies the daily discussion thread a batch of comments came from.
type Thread struct {
	ID        string
	Title     string
	Permalink string
}

// URL returns the full reddit.com URL for the thread.
func (t Thread) URL() string {
	return "https://www.reddit.com" + t.Permalink
}
