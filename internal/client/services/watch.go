package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/vidhub/internal/client/client"
	"github.com/dmitrijs2005/vidhub/internal/client/models"
	"github.com/dmitrijs2005/vidhub/internal/client/notify"
	"github.com/dmitrijs2005/vidhub/internal/logging"
)

// VideoAPI is the slice of the backend the watch view needs besides the
// comment endpoints.
type VideoAPI interface {
	VideoByID(ctx context.Context, videoID string) (*models.Video, error)
	ToggleVideoLike(ctx context.Context, videoID string) (models.LikeStatus, error)
	AddReply(ctx context.Context, commentID, content string) error
}

// WatchState is what the watch view shows next to the comments. Disliked,
// Saved and Subscribed live only in this process.
type WatchState struct {
	Video      *models.Video
	Likes      int
	Liked      bool
	Disliked   bool
	Saved      bool
	Subscribed bool
}

// WatchPage hosts one video and its comment thread.
type WatchPage struct {
	api      VideoAPI
	thread   *Thread
	viewer   Viewer
	notifier notify.Notifier
	log      logging.Logger

	mu    sync.Mutex
	state WatchState
}

func NewWatchPage(api VideoAPI, thread *Thread, viewer Viewer, n notify.Notifier, log logging.Logger) *WatchPage {
	w := &WatchPage{
		api:      api,
		thread:   thread,
		viewer:   viewer,
		notifier: n,
		log:      log.With("component", "watch"),
	}
	thread.OnSubmitReply(w.submitReply)
	return w
}

func (w *WatchPage) Thread() *Thread { return w.thread }

func (w *WatchPage) State() WatchState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Open loads a video and, once it is available, its comments. A failed
// comment load leaves the video open with an empty thread.
func (w *WatchPage) Open(ctx context.Context, videoID string) error {
	v, err := w.api.VideoByID(ctx, videoID)
	if err != nil {
		w.log.Warn(ctx, "loading video failed", "video_id", videoID, "error", err)
		w.notifier.Error(MsgVideoFailed)
		return err
	}

	w.mu.Lock()
	w.state = WatchState{Video: v, Likes: v.LikesCount}
	w.mu.Unlock()

	w.thread.SetVideo(v.ID)
	if err := w.thread.Load(ctx); err != nil {
		w.log.Debug(ctx, "comments unavailable", "video_id", v.ID)
	}
	return nil
}

// Close drops the current video.
func (w *WatchPage) Close() {
	w.mu.Lock()
	w.state = WatchState{}
	w.mu.Unlock()
	w.thread.SetVideo("")
}

func (w *WatchPage) submitReply(ctx context.Context, parentID, text string) error {
	if err := w.api.AddReply(ctx, parentID, text); err != nil {
		w.log.Warn(ctx, "adding reply failed", "comment_id", parentID, "error", err)
		w.notifier.Error(client.MessageOf(err, MsgAddReplyFailed))
		return err
	}
	w.notifier.Success(MsgReplyAdded)

	if err := w.thread.RefreshReplies(ctx, parentID); err != nil && !errors.Is(err, ErrRepliesLoading) {
		return err
	}
	return nil
}

func (w *WatchPage) videoID() (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state.Video == nil {
		return "", ErrNoVideo
	}
	return w.state.Video.ID, nil
}

// LikeVideo toggles the viewer's like on the open video.
func (w *WatchPage) LikeVideo(ctx context.Context) error {
	if !w.viewer.IsAuthenticated() {
		w.notifier.Error(MsgSignInToLike)
		return ErrNotAuthenticated
	}
	id, err := w.videoID()
	if err != nil {
		return err
	}

	status, err := w.api.ToggleVideoLike(ctx, id)
	if err != nil {
		w.log.Warn(ctx, "toggling video like failed", "video_id", id, "error", err)
		w.notifier.Error(client.MessageOf(err, MsgLikeFailed))
		return err
	}

	w.mu.Lock()
	liked := !w.state.Liked
	if status.Liked != nil {
		liked = *status.Liked
	}
	w.state.Liked = liked
	w.state.Disliked = false
	if liked {
		w.state.Likes++
	} else if w.state.Likes > 0 {
		w.state.Likes--
	}
	w.mu.Unlock()

	if liked {
		w.notifier.Success(MsgLikeAdded)
	} else {
		w.notifier.Success(MsgLikeRemoved)
	}
	return nil
}

// toggleLocal flips a process-local flag behind the usual sign-in gate.
func (w *WatchPage) toggleLocal(signIn, on, off string, flip func(*WatchState) bool) error {
	if !w.viewer.IsAuthenticated() {
		w.notifier.Error(signIn)
		return ErrNotAuthenticated
	}

	w.mu.Lock()
	if w.state.Video == nil {
		w.mu.Unlock()
		return ErrNoVideo
	}
	now := flip(&w.state)
	w.mu.Unlock()

	if now {
		w.notifier.Success(on)
	} else {
		w.notifier.Success(off)
	}
	return nil
}

// Dislike is not sent to the backend. Disliking a liked video takes the
// like back locally.
func (w *WatchPage) Dislike() error {
	return w.toggleLocal(MsgSignInToDislike, MsgDislikeAdded, MsgDislikeRemoved, func(s *WatchState) bool {
		s.Disliked = !s.Disliked
		if s.Disliked && s.Liked {
			s.Liked = false
			if s.Likes > 0 {
				s.Likes--
			}
		}
		return s.Disliked
	})
}

func (w *WatchPage) Save() error {
	return w.toggleLocal(MsgSignInToSave, MsgSaved, MsgUnsaved, func(s *WatchState) bool {
		s.Saved = !s.Saved
		return s.Saved
	})
}

func (w *WatchPage) Subscribe() error {
	return w.toggleLocal(MsgSignInToSub, MsgSubscribed, MsgUnsubscribed, func(s *WatchState) bool {
		s.Subscribed = !s.Subscribed
		return s.Subscribed
	})
}
