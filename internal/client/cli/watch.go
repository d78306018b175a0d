package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vidhub/internal/client/services"
)

// Watch opens a video and shows it with its comments.
func (a *App) Watch(ctx context.Context, id string) error {
	if err := a.watch.Open(ctx, id); err != nil {
		return err
	}
	st := a.watch.State()
	a.setTitle(st.Video.Title)
	renderVideo(a.out, st)
	renderTree(a.out, a.watch.Thread().Tree())
	return nil
}

func (a *App) requireVideo() error {
	if !a.watching() {
		fmt.Fprintln(a.out, "Open a video first: watch <id>")
		return services.ErrNoVideo
	}
	return nil
}

// Comments reloads the top-level comments. Open reply groups stay open.
func (a *App) Comments(ctx context.Context) error {
	if err := a.requireVideo(); err != nil {
		return err
	}
	th := a.watch.Thread()
	err := th.Refresh(ctx)
	renderTree(a.out, th.Tree())
	return err
}

// Replies shows or hides the replies of a comment.
func (a *App) Replies(ctx context.Context, commentID string) error {
	if err := a.requireVideo(); err != nil {
		return err
	}
	th := a.watch.Thread()

	err := th.ToggleReplies(ctx, commentID)
	switch {
	case errors.Is(err, services.ErrUnknownComment):
		fmt.Fprintf(a.out, "No comment %s on this page.\n", commentID)
		return err
	case errors.Is(err, services.ErrNotExpandable):
		fmt.Fprintf(a.out, "Comment %s has no replies to show.\n", commentID)
		return err
	case errors.Is(err, services.ErrRepliesLoading):
		fmt.Fprintln(a.out, "Replies are still loading…")
		return err
	}

	renderTree(a.out, th.Tree())
	return err
}

// Reply opens the composer under a comment, reads the reply and submits
// it. A blank reply keeps the composer open; "cancel" closes it.
func (a *App) Reply(ctx context.Context, commentID string) error {
	if err := a.requireVideo(); err != nil {
		return err
	}
	th := a.watch.Thread()

	if target, _ := th.ReplyTarget(); target != commentID {
		if err := th.ToggleReplyComposer(commentID); err != nil {
			fmt.Fprintf(a.out, "No comment %s on this page.\n", commentID)
			return err
		}
	}

	text, err := getMultiline(a.in, "Add a reply", a.out)
	if err != nil {
		return err
	}
	if err := th.SetReplyDraft(text); err != nil {
		return err
	}

	err = th.SubmitReply(ctx)
	if errors.Is(err, services.ErrEmptyReply) {
		fmt.Fprintln(a.out, "Reply is empty, nothing sent.")
	}
	renderTree(a.out, th.Tree())
	return err
}

func (a *App) CancelReply(context.Context) error {
	if err := a.requireVideo(); err != nil {
		return err
	}
	a.watch.Thread().CancelReply()
	return nil
}

func (a *App) Comment(ctx context.Context) error {
	if err := a.requireVideo(); err != nil {
		return err
	}
	th := a.watch.Thread()
	if !a.isLoggedIn() {
		return th.SubmitComment(ctx, "")
	}

	text, err := getMultiline(a.in, "Add a comment", a.out)
	if err != nil {
		return err
	}
	if err := th.SubmitComment(ctx, text); err != nil {
		return err
	}
	renderTree(a.out, th.Tree())
	return nil
}

func (a *App) LikeComment(ctx context.Context, commentID string) error {
	if err := a.requireVideo(); err != nil {
		return err
	}
	th := a.watch.Thread()
	if err := th.LikeComment(ctx, commentID); err != nil {
		return err
	}
	renderTree(a.out, th.Tree())
	return nil
}

func (a *App) LikeVideo(ctx context.Context) error {
	if err := a.requireVideo(); err != nil {
		return err
	}
	return a.afterToggle(a.watch.LikeVideo(ctx))
}

func (a *App) Dislike(context.Context) error {
	if err := a.requireVideo(); err != nil {
		return err
	}
	return a.afterToggle(a.watch.Dislike())
}

func (a *App) Save(context.Context) error {
	if err := a.requireVideo(); err != nil {
		return err
	}
	return a.afterToggle(a.watch.Save())
}

func (a *App) Subscribe(context.Context) error {
	if err := a.requireVideo(); err != nil {
		return err
	}
	return a.afterToggle(a.watch.Subscribe())
}

func (a *App) afterToggle(err error) error {
	if err == nil {
		renderVideoActions(a.out, a.watch.State())
	}
	return err
}
