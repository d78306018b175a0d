package models

import (
	"net/url"
	"strconv"
	"time"
)

type Video struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	VideoFile   string    `json:"videoFile"`
	Duration    float64   `json:"duration"`
	Views       int       `json:"views"`
	LikesCount  int       `json:"likesCount"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	Owner       Owner     `json:"ownerDetails"`
}

// VideoQuery selects a listing of GET /videos/. Zero fields are omitted.
type VideoQuery struct {
	Category   string
	UserID     string
	History    bool
	WatchLater bool
}

func (q VideoQuery) Values() url.Values {
	v := url.Values{}
	if q.Category != "" && q.Category != "all" {
		v.Set("category", q.Category)
	}
	if q.UserID != "" {
		v.Set("userId", q.UserID)
	}
	if q.History {
		v.Set("history", strconv.FormatBool(true))
	}
	if q.WatchLater {
		v.Set("watchLater", strconv.FormatBool(true))
	}
	return v
}
