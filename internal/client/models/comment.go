package models

import "time"

// Owner is the embedded author summary of a comment or video.
type Owner struct {
	ID       string   `json:"_id"`
	UserName string   `json:"userName"`
	Avatar   []string `json:"avatar,omitempty"`
}

// AvatarRef returns the primary avatar reference, or "".
func (o Owner) AvatarRef() string {
	if len(o.Avatar) == 0 {
		return ""
	}
	return o.Avatar[0]
}

// Comment is one node of a video's comment tree. Replies is the
// server-reported number of direct replies and does not depend on whether
// they have been fetched.
type Comment struct {
	ID        string    `json:"_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Owner     Owner     `json:"ownerDetails"`
	Likes     int       `json:"likes"`
	Replies   int       `json:"replies"`
}

// CommentPage is one element of the comments endpoints' data array.
type CommentPage struct {
	Comments []Comment `json:"comments"`
}

// LikeStatus is the answer of a like toggle. Liked is nil when the backend
// did not report the resulting state.
type LikeStatus struct {
	Liked *bool `json:"isLiked"`
}
