package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vidhub/internal/client/models"
	"github.com/dmitrijs2005/vidhub/internal/client/services"
)

func (a *App) Home(ctx context.Context, category string) error {
	videos, err := a.catalog.Home(ctx, category)
	if err != nil {
		return err
	}
	renderVideos(a.out, videos)
	return nil
}

func (a *App) History(ctx context.Context) error {
	videos, err := a.catalog.History(ctx)
	if err != nil {
		return err
	}
	renderVideos(a.out, videos)
	return nil
}

func (a *App) WatchLater(ctx context.Context) error {
	videos, err := a.catalog.WatchLater(ctx)
	if err != nil {
		return err
	}
	renderVideos(a.out, videos)
	return nil
}

func (a *App) Liked(ctx context.Context) error {
	videos, err := a.catalog.Liked(ctx)
	if err != nil {
		return err
	}
	renderVideos(a.out, videos)
	return nil
}

func (a *App) Channel(ctx context.Context, id string) error {
	page, err := a.catalog.Channel(ctx, id)
	if err != nil {
		return err
	}
	renderChannel(a.out, page)
	return nil
}

// Profile prompts for the editable profile fields. Blank answers keep the
// current value.
func (a *App) Profile(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		a.notifier.Error(services.MsgSettingsAuth)
		return services.ErrNotAuthenticated
	}

	var upd models.ProfileUpdate
	var err error
	if upd.FullName, err = getSimpleText(a.in, fmt.Sprintf("Full name [%s]", u.FullName), a.out); err != nil {
		return err
	}
	if upd.Email, err = getSimpleText(a.in, fmt.Sprintf("Email [%s]", u.Email), a.out); err != nil {
		return err
	}
	if upd == (models.ProfileUpdate{}) {
		fmt.Fprintln(a.out, "Nothing to update.")
		return nil
	}

	return a.catalog.UpdateProfile(ctx, upd)
}

func (a *App) Avatar(ctx context.Context, path string) error {
	return a.catalog.UpdateAvatar(ctx, path)
}

func (a *App) Cover(ctx context.Context, path string) error {
	return a.catalog.UpdateCover(ctx, path)
}
