package upstream

import (
	"context"
	"fmt"
)

// Content is the typed client for the read-only content service. The service
// is public: the gateway behind it never attaches credentials.
type Content struct {
	gw *Gateway
}

func NewContentClient(gw *Gateway) *Content {
	return &Content{gw: gw}
}

// Post is the content service's record shape.
type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

func (c *Content) ListPosts(ctx context.Context, limit int) ([]Post, error) {
	var posts []Post
	if err := c.gw.Get(ctx, fmt.Sprintf("/posts?_limit=%d", limit), &posts); err != nil {
		return nil, err
	}
	if posts == nil {
		posts = make([]Post, 0)
	}
	return posts, nil
}

func (c *Content) GetPost(ctx context.Context, id int) (Post, error) {
	var post Post
	if err := c.gw.Get(ctx, fmt.Sprintf("/posts/%d", id), &post); err != nil {
		return Post{}, err
	}
	return post, nil
}
