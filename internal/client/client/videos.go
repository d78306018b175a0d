package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/vidhub/internal/client/models"
)

const PathVideos = "/videos/"

func videoPath(id string) string { return "/videos/video/" + url.PathEscape(id) }

func (c *APIClient) VideoByID(ctx context.Context, videoID string) (*models.Video, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, videoPath(videoID), nil, &raw); err != nil {
		return nil, err
	}
	var v models.Video
	if err := decodeFirst(raw, &v); err != nil {
		return nil, fmt.Errorf("video %s: %w", videoID, err)
	}
	return &v, nil
}

// Videos lists videos matching q. The backend answers {videos: [...]}.
func (c *APIClient) Videos(ctx context.Context, q models.VideoQuery) ([]models.Video, error) {
	var page struct {
		Videos []models.Video `json:"videos"`
	}
	if err := c.getJSON(ctx, PathVideos, q.Values(), &page); err != nil {
		return nil, err
	}
	return page.Videos, nil
}
