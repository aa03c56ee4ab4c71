package blogpub

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// statusSearchOrder fixes the lookup order so a draft copy of a post is
// found before a scheduled or live one with the same title.
var statusSearchOrder = []string{StatusDraft, StatusScheduled, StatusLive}

// FindPostByTitle returns the first post in the blog whose title matches
// title under case-insensitive, whitespace-trimmed comparison, searching
// drafts, then scheduled posts, then live posts. It returns nil when no post
// matches; listing failures propagate.
func (p *Publisher) FindPostByTitle(ctx context.Context, blogID, title string) (*Post, error) {
	target := normalizeTitle(title)

	for _, status := range statusSearchOrder {
		pageToken := ""
		for {
			page, err := p.posts.List(ctx, blogID, status, pageToken)
			if err != nil {
				p.log.Error("post search failed",
					zap.String("status", status),
					zap.Error(err))
				return nil, fmt.Errorf("list %s posts: %w", strings.ToLower(status), err)
			}
			for _, post := range page.Items {
				if normalizeTitle(post.Title) == target {
					p.log.Info("found existing post",
						zap.String("title", title),
						zap.String("id", post.ID),
						zap.String("status", statusOrUnknown(post.Status)))
					return post, nil
				}
			}
			if page.NextPageToken == "" {
				break
			}
			pageToken = page.NextPageToken
		}
	}
	return nil, nil
}

// normalizeTitle trims and lowercases a title for comparison.
func normalizeTitle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func statusOrUnknown(status string) string {
	if status == "" {
		return "UNKNOWN"
	}
	return status
}
