package services

import (
	"context"

	"github.com/dmitrijs2005/vidhub/internal/client/client"
	"github.com/dmitrijs2005/vidhub/internal/client/models"
	"github.com/dmitrijs2005/vidhub/internal/client/notify"
	"github.com/dmitrijs2005/vidhub/internal/logging"
	"golang.org/x/sync/errgroup"
)

// CatalogAPI is the slice of the backend behind the listing views and the
// profile settings.
type CatalogAPI interface {
	Videos(ctx context.Context, q models.VideoQuery) ([]models.Video, error)
	LikedVideos(ctx context.Context) ([]models.Video, error)
	ChannelProfile(ctx context.Context, channelID string) (*models.Channel, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
	UpdateAvatar(ctx context.Context, imagePath string) (*models.User, error)
	UpdateCover(ctx context.Context, imagePath string) (*models.User, error)
}

// ProfileHolder is the part of the session a profile update writes back to.
type ProfileHolder interface {
	Viewer
	ReplaceUser(u *models.User)
}

// Catalog serves the video listings, channel pages and profile settings.
type Catalog struct {
	api      CatalogAPI
	session  ProfileHolder
	notifier notify.Notifier
	log      logging.Logger
}

func NewCatalog(api CatalogAPI, session ProfileHolder, n notify.Notifier, log logging.Logger) *Catalog {
	return &Catalog{
		api:      api,
		session:  session,
		notifier: n,
		log:      log.With("component", "catalog"),
	}
}

// ChannelPage is a channel profile with its uploads.
type ChannelPage struct {
	Channel *models.Channel
	Videos  []models.Video
}

func (c *Catalog) listing(ctx context.Context, q models.VideoQuery) ([]models.Video, error) {
	videos, err := c.api.Videos(ctx, q)
	if err != nil {
		c.log.Warn(ctx, "loading videos failed", "query", q.Values().Encode(), "error", err)
		c.notifier.Error(MsgVideosFailed)
		return nil, err
	}
	return videos, nil
}

func (c *Catalog) requireViewer(msg string) error {
	if !c.session.IsAuthenticated() {
		c.notifier.Error(msg)
		return ErrNotAuthenticated
	}
	return nil
}

// Home lists videos, optionally narrowed to a category. "all" and "" mean
// no filter.
func (c *Catalog) Home(ctx context.Context, category string) ([]models.Video, error) {
	return c.listing(ctx, models.VideoQuery{Category: category})
}

func (c *Catalog) History(ctx context.Context) ([]models.Video, error) {
	if err := c.requireViewer(MsgHistoryAuth); err != nil {
		return nil, err
	}
	return c.listing(ctx, models.VideoQuery{History: true})
}

func (c *Catalog) WatchLater(ctx context.Context) ([]models.Video, error) {
	if err := c.requireViewer(MsgWatchLaterAuth); err != nil {
		return nil, err
	}
	return c.listing(ctx, models.VideoQuery{WatchLater: true})
}

func (c *Catalog) Liked(ctx context.Context) ([]models.Video, error) {
	if err := c.requireViewer(MsgLikedAuth); err != nil {
		return nil, err
	}
	videos, err := c.api.LikedVideos(ctx)
	if err != nil {
		c.log.Warn(ctx, "loading liked videos failed", "error", err)
		c.notifier.Error(MsgVideosFailed)
		return nil, err
	}
	return videos, nil
}

// Channel loads a channel profile and its uploads in parallel. Failing
// uploads still return the profile.
func (c *Catalog) Channel(ctx context.Context, channelID string) (*ChannelPage, error) {
	var (
		page      ChannelPage
		videosErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ch, err := c.api.ChannelProfile(gctx, channelID)
		if err != nil {
			return err
		}
		page.Channel = ch
		return nil
	})
	g.Go(func() error {
		page.Videos, videosErr = c.api.Videos(gctx, models.VideoQuery{UserID: channelID})
		return nil
	})

	if err := g.Wait(); err != nil {
		c.log.Warn(ctx, "loading channel failed", "channel_id", channelID, "error", err)
		c.notifier.Error(client.MessageOf(err, MsgChannelFailed))
		return nil, err
	}
	if videosErr != nil {
		c.log.Warn(ctx, "loading channel videos failed", "channel_id", channelID, "error", videosErr)
		c.notifier.Error(MsgVideosFailed)
		page.Videos = nil
	}
	return &page, nil
}

func (c *Catalog) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) error {
	return c.updateUser(ctx, MsgProfileUpdated, func() (*models.User, error) {
		return c.api.UpdateProfile(ctx, upd)
	})
}

func (c *Catalog) UpdateAvatar(ctx context.Context, imagePath string) error {
	return c.updateUser(ctx, MsgAvatarUpdated, func() (*models.User, error) {
		return c.api.UpdateAvatar(ctx, imagePath)
	})
}

func (c *Catalog) UpdateCover(ctx context.Context, imagePath string) error {
	return c.updateUser(ctx, MsgCoverUpdated, func() (*models.User, error) {
		return c.api.UpdateCover(ctx, imagePath)
	})
}

func (c *Catalog) updateUser(ctx context.Context, success string, call func() (*models.User, error)) error {
	if err := c.requireViewer(MsgSettingsAuth); err != nil {
		return err
	}

	u, err := call()
	if err != nil {
		c.log.Warn(ctx, "profile update failed", "error", err)
		c.notifier.Error(client.MessageOf(err, MsgUpdateFailed))
		return err
	}

	c.session.ReplaceUser(u)
	c.notifier.Success(success)
	return nil
}
