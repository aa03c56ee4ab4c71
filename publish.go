// Package blogpub publishes HTML content to a Blogger blog. It inlines local
// images as data URIs so posts are self-contained, and it creates or updates
// a post matching the title idempotently: a new title becomes a draft, an
// existing draft is updated in place, and a scheduled or live post is left
// untouched.
package blogpub

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Publisher drives the publish flow against a PostsService. Construct with
// NewPublisher; the zero value is not usable.
type Publisher struct {
	posts PostsService
	log   *zap.Logger
}

// NewPublisher returns a Publisher using the given posts service.
func NewPublisher(posts PostsService, opts ...Option) *Publisher {
	p := &Publisher{
		posts: posts,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish creates or updates the post described by req on the given blog and
// returns the resulting remote record.
//
// The content is transformed first (header stripping, image inlining), then
// the blog is searched for a post with the same title. No match inserts a
// new post (a draft unless req.Live is set). A matching draft is updated in
// place. A matching scheduled or live post is never modified: the existing
// record is returned as-is and a warning logged.
//
// Individual image failures are skipped during transformation; every other
// failure, including authentication, aborts the publish with no partial
// state left behind.
func (p *Publisher) Publish(ctx context.Context, blogID string, req PublishRequest) (*Post, error) {
	baseDir := ""
	if req.SourcePath != "" {
		baseDir = filepath.Dir(req.SourcePath)
	}
	content, err := p.transformContent(req.Content, baseDir)
	if err != nil {
		return nil, err
	}
	p.log.Debug("processed content", zap.Int("bytes", len(content)))

	existing, err := p.FindPostByTitle(ctx, blogID, req.Title)
	if err != nil {
		return nil, err
	}

	body := &Post{Title: req.Title, Content: content}
	if len(req.Labels) > 0 {
		body.Labels = req.Labels
	}

	if existing == nil {
		p.log.Info("creating new post",
			zap.String("title", req.Title),
			zap.Bool("draft", !req.Live))
		created, err := p.posts.Insert(ctx, blogID, body, !req.Live)
		if err != nil {
			p.log.Error("failed to create post", zap.Error(err))
			return nil, fmt.Errorf("create post: %w", err)
		}
		return created, nil
	}

	if !isDraftStatus(existing.Status) {
		p.log.Warn("post is not a draft, skipping",
			zap.String("title", req.Title),
			zap.String("status", existing.Status))
		return existing, nil
	}

	p.log.Info("updating existing draft", zap.String("id", existing.ID))
	updated, err := p.posts.Update(ctx, blogID, existing.ID, body)
	if err != nil {
		p.log.Error("failed to update post", zap.Error(err))
		return nil, fmt.Errorf("update post: %w", err)
	}
	return updated, nil
}

// isDraftStatus reports whether status names the draft lifecycle state.
// The comparison is case-insensitive; the API has returned both cases.
func isDraftStatus(status string) bool {
	return strings.EqualFold(strings.TrimSpace(status), StatusDraft)
}
