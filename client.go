package blogpub

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/blogger/v3"
	"google.golang.org/api/option"
)

const (
	tokenEndpoint = "https://oauth2.googleapis.com/token"
	bloggerScope  = "https://www.googleapis.com/auth/blogger"
)

// Credentials holds a pre-obtained OAuth refresh token and the client it was
// issued to. Access tokens are refreshed transparently on first use; an
// invalid or revoked refresh token surfaces as an error from the first API
// call that needs one.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// PostsService is the narrow surface of the remote blog API this package
// needs: paginated listing by lifecycle status, insert, and update, all
// scoped to a blog ID.
type PostsService interface {
	List(ctx context.Context, blogID, status, pageToken string) (*PostList, error)
	Insert(ctx context.Context, blogID string, post *Post, isDraft bool) (*Post, error)
	Update(ctx context.Context, blogID, postID string, post *Post) (*Post, error)
}

// bloggerPosts adapts the official Blogger v3 client to PostsService.
type bloggerPosts struct {
	svc *blogger.Service
}

// NewPostsService builds a PostsService backed by the Blogger v3 API,
// authenticated with creds via the standard refresh-token flow.
func NewPostsService(ctx context.Context, creds Credentials) (PostsService, error) {
	conf := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: tokenEndpoint},
		Scopes:       []string{bloggerScope},
	}
	ts := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: creds.RefreshToken})

	svc, err := blogger.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create blogger service: %w", err)
	}
	return &bloggerPosts{svc: svc}, nil
}

func (b *bloggerPosts) List(ctx context.Context, blogID, status, pageToken string) (*PostList, error) {
	call := b.svc.Posts.List(blogID).Status(status).Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	res, err := call.Do()
	if err != nil {
		return nil, err
	}
	list := &PostList{NextPageToken: res.NextPageToken}
	for _, item := range res.Items {
		list.Items = append(list.Items, fromAPI(item))
	}
	return list, nil
}

func (b *bloggerPosts) Insert(ctx context.Context, blogID string, post *Post, isDraft bool) (*Post, error) {
	res, err := b.svc.Posts.Insert(blogID, toAPI(post)).IsDraft(isDraft).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return fromAPI(res), nil
}

func (b *bloggerPosts) Update(ctx context.Context, blogID, postID string, post *Post) (*Post, error) {
	res, err := b.svc.Posts.Update(blogID, postID, toAPI(post)).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return fromAPI(res), nil
}

func fromAPI(p *blogger.Post) *Post {
	return &Post{
		ID:      p.Id,
		Title:   p.Title,
		Content: p.Content,
		Status:  p.Status,
		Labels:  p.Labels,
		URL:     p.Url,
	}
}

func toAPI(p *Post) *blogger.Post {
	return &blogger.Post{
		Title:   p.Title,
		Content: p.Content,
		Labels:  p.Labels,
	}
}
