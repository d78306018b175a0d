package client

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/vidhub/internal/client/models"
)

const PathLikedVideos = "/likes/"

// The toggle endpoints mutate through GET; that is the backend's contract.
func videoLikePath(videoID string) string     { return "/likes/v/" + url.PathEscape(videoID) }
func commentLikePath(commentID string) string { return "/likes/c/" + url.PathEscape(commentID) }

func (c *APIClient) ToggleVideoLike(ctx context.Context, videoID string) (models.LikeStatus, error) {
	var st models.LikeStatus
	err := c.getJSON(ctx, videoLikePath(videoID), nil, &st)
	return st, err
}

func (c *APIClient) ToggleCommentLike(ctx context.Context, commentID string) (models.LikeStatus, error) {
	var st models.LikeStatus
	err := c.getJSON(ctx, commentLikePath(commentID), nil, &st)
	return st, err
}

func (c *APIClient) LikedVideos(ctx context.Context) ([]models.Video, error) {
	var videos []models.Video
	if err := c.getJSON(ctx, PathLikedVideos, nil, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}
