package services

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/vidhub/internal/client/client"
	"github.com/dmitrijs2005/vidhub/internal/client/models"
	"github.com/dmitrijs2005/vidhub/internal/client/notify"
	"github.com/dmitrijs2005/vidhub/internal/logging"
)

// CommentAPI is the slice of the backend the comment thread needs.
type CommentAPI interface {
	VideoComments(ctx context.Context, videoID string) ([]models.Comment, error)
	CommentReplies(ctx context.Context, commentID string) ([]models.Comment, error)
	AddComment(ctx context.Context, videoID, content string) error
	ToggleCommentLike(ctx context.Context, commentID string) (models.LikeStatus, error)
}

// ReplySubmitter receives a composed reply. The thread does not insert the
// reply itself; the submitter is expected to refresh what it needs.
type ReplySubmitter func(ctx context.Context, parentID, text string) error

// ReplyGroup is the per-parent cache of loaded replies.
//
// A missing group means the replies were never requested. Open implies
// Comments holds the result of the last successful fetch.
type ReplyGroup struct {
	Loading  bool
	Open     bool
	Comments []models.Comment
	Err      string

	fetched bool
}

// Thread holds the comment section of one video: the top-level list, the
// reply groups keyed by parent id and the single armed reply composer.
type Thread struct {
	api      CommentAPI
	viewer   Viewer
	notifier notify.Notifier
	log      logging.Logger
	submit   ReplySubmitter

	mu       sync.Mutex
	videoID  string
	comments []models.Comment
	groups   map[string]*ReplyGroup
	target   string
	draft    string
}

func NewThread(api CommentAPI, viewer Viewer, n notify.Notifier, log logging.Logger) *Thread {
	return &Thread{
		api:      api,
		viewer:   viewer,
		notifier: n,
		log:      log.With("component", "thread"),
		groups:   map[string]*ReplyGroup{},
	}
}

// OnSubmitReply installs the reply submission callback.
func (t *Thread) OnSubmitReply(fn ReplySubmitter) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.submit = fn
}

// SetVideo attaches the thread to another video and drops all state of the
// previous one. Fetches still in flight for the old video complete into
// groups that are no longer reachable.
func (t *Thread) SetVideo(videoID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.videoID = videoID
	t.comments = nil
	t.groups = map[string]*ReplyGroup{}
	t.target = ""
	t.draft = ""
}

func (t *Thread) VideoID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.videoID
}

// Comments returns a copy of the top-level list.
func (t *Thread) Comments() []models.Comment {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]models.Comment(nil), t.comments...)
}

// Group returns a copy of the reply group of parentID.
func (t *Thread) Group(parentID string) (ReplyGroup, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	g, ok := t.groups[parentID]
	if !ok {
		return ReplyGroup{}, false
	}
	cp := *g
	cp.Comments = append([]models.Comment(nil), g.Comments...)
	return cp, true
}

// ReplyTarget returns the armed comment id and its draft.
func (t *Thread) ReplyTarget() (id, draft string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.target, t.draft
}

// Load fetches the top-level comments. On failure the previous list stays.
func (t *Thread) Load(ctx context.Context) error {
	videoID := t.VideoID()
	if videoID == "" {
		return ErrNoVideo
	}

	list, err := t.api.VideoComments(ctx, videoID)
	if err != nil {
		t.log.Warn(ctx, "loading comments failed", "video_id", videoID, "error", err)
		t.notifier.Error(MsgCommentsFailed)
		return err
	}

	t.mu.Lock()
	if t.videoID == videoID {
		t.comments = list
	}
	t.mu.Unlock()

	t.log.Debug(ctx, "comments loaded", "video_id", videoID, "count", len(list))
	return nil
}

// Refresh reloads the top-level list.
func (t *Thread) Refresh(ctx context.Context) error {
	return t.Load(ctx)
}

// findLocked locates a comment anywhere in the loaded tree and reports its
// depth, top-level comments being at depth 0.
func (t *Thread) findLocked(id string) (*models.Comment, int, bool) {
	return t.findIn(t.comments, id, 0)
}

func (t *Thread) findIn(list []models.Comment, id string, depth int) (*models.Comment, int, bool) {
	if depth > MaxDepth {
		return nil, 0, false
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], depth, true
		}
	}
	for i := range list {
		g, ok := t.groups[list[i].ID]
		if !ok {
			continue
		}
		if c, d, found := t.findIn(g.Comments, id, depth+1); found {
			return c, d, true
		}
	}
	return nil, 0, false
}

// Expandable reports whether a comment at depth may show its replies.
func Expandable(replyCount, depth int) bool {
	return replyCount > 0 && depth < MaxDepth
}

// ToggleReplies opens or closes the replies of a comment. Replies are
// fetched only the first time the group is opened; later toggles reuse the
// cached list.
func (t *Thread) ToggleReplies(ctx context.Context, commentID string) error {
	t.mu.Lock()
	c, depth, ok := t.findLocked(commentID)
	if !ok {
		t.mu.Unlock()
		return ErrUnknownComment
	}
	if !Expandable(c.Replies, depth) {
		t.mu.Unlock()
		return ErrNotExpandable
	}

	g := t.groups[commentID]
	switch {
	case g != nil && g.Loading:
		t.mu.Unlock()
		return ErrRepliesLoading
	case g != nil && g.Open:
		g.Open = false
		t.mu.Unlock()
		return nil
	case g != nil && g.fetched:
		g.Open = true
		t.mu.Unlock()
		return nil
	}

	if g == nil {
		g = &ReplyGroup{}
		t.groups[commentID] = g
	}
	g.Loading = true
	t.mu.Unlock()

	return t.fetchReplies(ctx, commentID, g)
}

// RefreshReplies refetches the replies of parentID and opens the group.
// A group that is already loading is left alone.
func (t *Thread) RefreshReplies(ctx context.Context, parentID string) error {
	t.mu.Lock()
	g := t.groups[parentID]
	if g != nil && g.Loading {
		t.mu.Unlock()
		return ErrRepliesLoading
	}
	if g == nil {
		g = &ReplyGroup{}
		t.groups[parentID] = g
	}
	g.Loading = true
	t.mu.Unlock()

	return t.fetchReplies(ctx, parentID, g)
}

// fetchReplies writes only into g, so concurrent fetches for different
// parents never touch each other's slot.
func (t *Thread) fetchReplies(ctx context.Context, parentID string, g *ReplyGroup) error {
	list, err := t.api.CommentReplies(ctx, parentID)

	t.mu.Lock()
	defer t.mu.Unlock()

	g.Loading = false
	if err != nil {
		g.Err = client.MessageOf(err, MsgRepliesFailed)
		t.log.Warn(ctx, "loading replies failed", "comment_id", parentID, "error", err)
		return err
	}

	g.Comments = list
	g.Open = true
	g.Err = ""
	g.fetched = true

	if t.groups[parentID] == g {
		if c, _, ok := t.findLocked(parentID); ok && len(list) > c.Replies {
			c.Replies = len(list)
		}
	}
	return nil
}

// ToggleReplyComposer arms the composer on commentID, or disarms it when it
// is already armed there. Arming another comment drops the previous draft.
func (t *Thread) ToggleReplyComposer(commentID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.target == commentID {
		t.target = ""
		t.draft = ""
		return nil
	}
	if _, _, ok := t.findLocked(commentID); !ok {
		return ErrUnknownComment
	}
	t.target = commentID
	t.draft = ""
	return nil
}

func (t *Thread) CancelReply() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.target = ""
	t.draft = ""
}

// SetReplyDraft replaces the text of the armed composer.
func (t *Thread) SetReplyDraft(text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.target == "" {
		return ErrNoReplyTarget
	}
	t.draft = text
	return nil
}

// SubmitReply hands the armed draft to the submission callback and then
// closes the composer. Blank drafts never reach the callback.
func (t *Thread) SubmitReply(ctx context.Context) error {
	t.mu.Lock()
	target, text, submit := t.target, strings.TrimSpace(t.draft), t.submit
	t.mu.Unlock()

	if target == "" {
		return ErrNoReplyTarget
	}
	if !t.viewer.IsAuthenticated() {
		t.notifier.Error(MsgSignInToReply)
		return ErrNotAuthenticated
	}
	if text == "" {
		return ErrEmptyReply
	}

	var err error
	if submit != nil {
		err = submit(ctx, target, text)
	}

	t.mu.Lock()
	if t.target == target {
		t.target = ""
		t.draft = ""
	}
	t.mu.Unlock()
	return err
}

// SubmitComment posts a top-level comment and reloads the list.
func (t *Thread) SubmitComment(ctx context.Context, text string) error {
	if !t.viewer.IsAuthenticated() {
		t.notifier.Error(MsgSignInToComment)
		return ErrNotAuthenticated
	}
	text = strings.TrimSpace(text)
	if text == "" {
		t.notifier.Error(MsgEnterComment)
		return ErrEmptyComment
	}
	videoID := t.VideoID()
	if videoID == "" {
		return ErrNoVideo
	}

	if err := t.api.AddComment(ctx, videoID, text); err != nil {
		t.log.Warn(ctx, "adding comment failed", "video_id", videoID, "error", err)
		t.notifier.Error(client.MessageOf(err, MsgAddCommentFailed))
		return err
	}
	t.notifier.Success(MsgCommentAdded)
	return t.Refresh(ctx)
}

// LikeComment toggles the viewer's like on a comment at any depth. When the
// backend reports the new state the count is adjusted in place, otherwise
// the top-level list is reloaded.
func (t *Thread) LikeComment(ctx context.Context, commentID string) error {
	if !t.viewer.IsAuthenticated() {
		t.notifier.Error(MsgSignInToLikeCmt)
		return ErrNotAuthenticated
	}

	status, err := t.api.ToggleCommentLike(ctx, commentID)
	if err != nil {
		t.log.Warn(ctx, "toggling comment like failed", "comment_id", commentID, "error", err)
		t.notifier.Error(client.MessageOf(err, MsgLikeFailed))
		return err
	}

	if status.Liked == nil {
		return t.Refresh(ctx)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if c, _, ok := t.findLocked(commentID); ok {
		if *status.Liked {
			c.Likes++
		} else if c.Likes > 0 {
			c.Likes--
		}
	}
	return nil
}
