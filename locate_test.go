package blogpub

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFindPostByTitleFound(t *testing.T) {
	fake := &fakePosts{
		byStatus: map[string][]*Post{
			StatusDraft: {
				{ID: "123", Title: "My Post", Status: StatusDraft},
				{ID: "456", Title: "Other Post", Status: StatusDraft},
			},
		},
	}
	pub := NewPublisher(fake)

	post, err := pub.FindPostByTitle(context.Background(), "blog1", "My Post")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "123", post.ID)
}

func TestFindPostByTitleNotFound(t *testing.T) {
	fake := &fakePosts{
		byStatus: map[string][]*Post{
			StatusDraft: {{ID: "123", Title: "Other Post", Status: StatusDraft}},
		},
	}
	pub := NewPublisher(fake)

	post, err := pub.FindPostByTitle(context.Background(), "blog1", "My Post")
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestFindPostByTitleCaseAndWhitespace(t *testing.T) {
	fake := &fakePosts{
		byStatus: map[string][]*Post{
			StatusDraft: {{ID: "123", Title: "My Post", Status: StatusDraft}},
		},
	}
	pub := NewPublisher(fake)

	for _, title := range []string{"My Post", " my post ", "MY POST"} {
		t.Run(title, func(t *testing.T) {
			post, err := pub.FindPostByTitle(context.Background(), "blog1", title)
			require.NoError(t, err)
			require.NotNil(t, post)
			assert.Equal(t, "123", post.ID)
		})
	}
}

func TestFindPostByTitleScheduled(t *testing.T) {
	fake := &fakePosts{
		byStatus: map[string][]*Post{
			StatusScheduled: {{ID: "123", Title: "My Post", Status: StatusScheduled}},
		},
	}
	pub := NewPublisher(fake)

	post, err := pub.FindPostByTitle(context.Background(), "blog1", "My Post")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, StatusScheduled, post.Status)
}

// A draft copy wins over a live post with the same title.
func TestFindPostByTitleDraftFirst(t *testing.T) {
	fake := &fakePosts{
		byStatus: map[string][]*Post{
			StatusDraft: {{ID: "draft-1", Title: "My Post", Status: StatusDraft}},
			StatusLive:  {{ID: "live-1", Title: "My Post", Status: StatusLive}},
		},
	}
	pub := NewPublisher(fake)

	post, err := pub.FindPostByTitle(context.Background(), "blog1", "My Post")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "draft-1", post.ID)
}

func TestFindPostByTitleFollowsPagination(t *testing.T) {
	fake := &fakePosts{
		pageSize: 2,
		byStatus: map[string][]*Post{
			StatusLive: {
				{ID: "1", Title: "a", Status: StatusLive},
				{ID: "2", Title: "b", Status: StatusLive},
				{ID: "3", Title: "c", Status: StatusLive},
				{ID: "4", Title: "d", Status: StatusLive},
				{ID: "5", Title: "Target", Status: StatusLive},
			},
		},
	}
	pub := NewPublisher(fake)

	post, err := pub.FindPostByTitle(context.Background(), "blog1", "Target")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "5", post.ID)
	// Two empty statuses plus three pages of live posts.
	assert.Equal(t, 5, fake.listCalls)
}

func TestFindPostByTitlePropagatesError(t *testing.T) {
	listErr := errors.New("googleapi: Error 401")
	pub := NewPublisher(&fakePosts{listErr: listErr})

	_, err := pub.FindPostByTitle(context.Background(), "blog1", "My Post")
	assert.ErrorIs(t, err, listErr)
}

func TestFindPostByTitleLogsUnknownStatus(t *testing.T) {
	fake := &fakePosts{
		byStatus: map[string][]*Post{
			StatusDraft: {{ID: "123", Title: "My Post"}},
		},
	}
	core, logs := observer.New(zap.InfoLevel)
	pub := NewPublisher(fake, WithLogger(zap.New(core)))

	post, err := pub.FindPostByTitle(context.Background(), "blog1", "My Post")
	require.NoError(t, err)
	require.NotNil(t, post)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "found existing post", entry.Message)
	assert.Equal(t, "UNKNOWN", entry.ContextMap()["status"])
}
