package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/vidhub/internal/client/models"
)

func videoCommentsPath(videoID string) string { return "/comments/videos/" + url.PathEscape(videoID) }
func addCommentPath(videoID string) string    { return "/comments/v/" + url.PathEscape(videoID) }
func commentRepliesPath(commentID string) string {
	return "/comments/c/" + url.PathEscape(commentID)
}

type contentBody struct {
	Content string `json:"content"`
}

// VideoComments returns the top-level comments of a video.
func (c *APIClient) VideoComments(ctx context.Context, videoID string) ([]models.Comment, error) {
	return c.commentPage(ctx, videoCommentsPath(videoID))
}

// CommentReplies returns the direct replies of a comment. The payload has
// the same shape as VideoComments.
func (c *APIClient) CommentReplies(ctx context.Context, commentID string) ([]models.Comment, error) {
	return c.commentPage(ctx, commentRepliesPath(commentID))
}

func (c *APIClient) commentPage(ctx context.Context, path string) ([]models.Comment, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, path, nil, &raw); err != nil {
		return nil, err
	}
	var page models.CommentPage
	if err := decodeFirst(raw, &page); err != nil {
		if errors.Is(err, ErrEmptyResponse) {
			return []models.Comment{}, nil
		}
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if page.Comments == nil {
		page.Comments = []models.Comment{}
	}
	return page.Comments, nil
}

func (c *APIClient) AddComment(ctx context.Context, videoID, content string) error {
	return c.postJSON(ctx, addCommentPath(videoID), contentBody{Content: content}, nil)
}

func (c *APIClient) AddReply(ctx context.Context, commentID, content string) error {
	return c.postJSON(ctx, commentRepliesPath(commentID), contentBody{Content: content}, nil)
}
