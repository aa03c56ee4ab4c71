package blogpub

// Post lifecycle statuses as returned by the Blogger API. The API reports
// them uppercase; this package compares them case-insensitively.
const (
	StatusDraft     = "DRAFT"
	StatusScheduled = "SCHEDULED"
	StatusLive      = "LIVE"
)

// Post is the remote blog post record. The ID is assigned by Blogger and
// URL is populated once a post has been created or updated.
type Post struct {
	ID      string
	Title   string
	Content string
	Status  string
	Labels  []string
	URL     string
}

// PostList is one page of a paginated posts listing. An empty NextPageToken
// means the listing is exhausted.
type PostList struct {
	Items         []*Post
	NextPageToken string
}

// PublishRequest describes one publish invocation.
type PublishRequest struct {
	Title   string
	Content string   // raw HTML, possibly a full document
	Labels  []string // omitted from the post body when empty

	// SourcePath is the file Content was read from. Its directory is used
	// to resolve relative image references; when empty, relative references
	// resolve against the working directory.
	SourcePath string

	// Live creates the post live instead of as a draft. Only meaningful
	// when no existing post matches the title; updates never change the
	// draft/live status of a post.
	Live bool
}
