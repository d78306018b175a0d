package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/vidhub/internal/client/config"
	"github.com/dmitrijs2005/vidhub/internal/client/models"
	"github.com/dmitrijs2005/vidhub/internal/client/services"
)

const testToken = "opaque-test-token"

// backend is an in-memory stand-in for the video REST API.
type backend struct {
	mu       sync.Mutex
	comments []models.Comment
	replies  map[string][]models.Comment
	posted   []string
}

func reply(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"statusCode": status,
		"data":       data,
		"message":    message,
		"success":    status < 300,
	})
}

func (b *backend) authorized(r *http.Request) bool {
	return r.Header.Get("Authorization") == "Bearer "+testToken
}

func (b *backend) routes() http.Handler {
	alice := &models.User{ID: "u1", UserName: "alice", Email: "alice@example.com", FullName: "Alice"}

	r := chi.NewRouter()
	r.Post("/users/login", func(w http.ResponseWriter, r *http.Request) {
		var form models.LoginForm
		_ = json.NewDecoder(r.Body).Decode(&form)
		if form.Password != "secret1" {
			reply(w, http.StatusUnauthorized, nil, "Invalid credentials")
			return
		}
		reply(w, http.StatusOK, map[string]any{"accessToken": testToken, "user": alice}, "ok")
	})
	r.Get("/users/get-current-user", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(r) {
			reply(w, http.StatusUnauthorized, nil, "Unauthorized")
			return
		}
		reply(w, http.StatusOK, alice, "ok")
	})
	r.Get("/videos/", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, map[string]any{"videos": []models.Video{
			{ID: "v1", Title: "Go in practice", Duration: 90, Views: 2100, Owner: models.Owner{UserName: "alice"}},
		}}, "ok")
	})
	r.Get("/videos/video/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id != "v1" {
			reply(w, http.StatusNotFound, nil, "Video not found")
			return
		}
		reply(w, http.StatusOK, []models.Video{{ID: "v1", Title: "Go in practice", LikesCount: 4}}, "ok")
	})
	r.Get("/comments/videos/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		reply(w, http.StatusOK, []any{map[string]any{"comments": b.comments}}, "ok")
	})
	r.Get("/comments/c/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		reply(w, http.StatusOK, []any{map[string]any{"comments": b.replies[chi.URLParam(r, "id")]}}, "ok")
	})
	r.Post("/comments/c/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(r) {
			reply(w, http.StatusUnauthorized, nil, "Unauthorized")
			return
		}
		var body struct {
			Content string `json:"content"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		b.mu.Lock()
		defer b.mu.Unlock()
		id := chi.URLParam(r, "id")
		b.posted = append(b.posted, id+":"+body.Content)
		b.replies[id] = append(b.replies[id], models.Comment{ID: "r-new", Content: body.Content})
		reply(w, http.StatusCreated, nil, "Reply added")
	})
	r.Get("/likes/c/{id}", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, map[string]any{"isLiked": true}, "ok")
	})
	return r
}

func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer, *backend, context.Context) {
	t.Helper()
	capturePrints(t)
	stubTerminal(t, false, nil, nil)

	b := &backend{
		comments: []models.Comment{
			{ID: "c1", Content: "nice video", Replies: 1, Likes: 2, CreatedAt: time.Now().Add(-time.Hour)},
			{ID: "c2", Content: "no replies here"},
		},
		replies: map[string][]models.Comment{
			"c1": {{ID: "r1", Content: "agreed"}},
		},
	}
	srv := httptest.NewServer(b.routes())
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.APIBaseURL = srv.URL
	cfg.DataDir = t.TempDir()
	cfg.RequestTimeout = 5 * time.Second
	cfg.LogLevel = "error"

	var out bytes.Buffer
	ctx := context.Background()
	a, err := newApp(ctx, cfg, strings.NewReader(input), &out)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.db.Close() })

	ctx = services.WithSession(ctx, a.session)
	a.session.Restore(ctx)
	return a, &out, b, ctx
}

func TestApp_LoginWatchAndReply(t *testing.T) {
	a, out, b, ctx := newTestApp(t, strings.Join([]string{
		"alice@example.com", "secret1",
		"thanks!", "",
	}, "\n"))

	require.NoError(t, a.Login(ctx))
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "(alice)", a.status())

	require.NoError(t, a.Watch(ctx, "v1"))
	assert.Equal(t, "(alice | Go in practice)", a.status())
	assert.Contains(t, out.String(), "[c1]")
	assert.Contains(t, out.String(), "View 1 replies")

	require.NoError(t, a.Replies(ctx, "c1"))
	assert.Contains(t, out.String(), "Hide 1 replies")
	assert.Contains(t, out.String(), "    [r1]")

	require.NoError(t, a.Reply(ctx, "c1"))
	assert.Equal(t, []string{"c1:thanks!"}, b.posted)
	assert.Contains(t, out.String(), "✔ Reply added")

	g, ok := a.watch.Thread().Group("c1")
	require.True(t, ok)
	assert.Len(t, g.Comments, 2)
	target, _ := a.watch.Thread().ReplyTarget()
	assert.Empty(t, target)
}

func TestApp_LoginRejected(t *testing.T) {
	a, out, _, ctx := newTestApp(t, "alice@example.com\nwrong-pw\n")

	require.Error(t, a.Login(ctx))
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "✖")
}

func TestApp_LoginValidationStaysLocal(t *testing.T) {
	a, out, _, ctx := newTestApp(t, "not-an-email\n\n")

	require.Error(t, a.Login(ctx))
	assert.Contains(t, out.String(), "✖ ")
	assert.False(t, a.isLoggedIn())
}

func TestApp_CommandsNeedVideo(t *testing.T) {
	a, out, _, ctx := newTestApp(t, "")

	assert.ErrorIs(t, a.Comments(ctx), services.ErrNoVideo)
	assert.ErrorIs(t, a.LikeVideo(ctx), services.ErrNoVideo)
	assert.Contains(t, out.String(), "Open a video first: watch <id>")
}

func TestApp_AnonymousReplyIsRefused(t *testing.T) {
	a, out, b, ctx := newTestApp(t, "hello\n\n")

	require.NoError(t, a.Watch(ctx, "v1"))
	assert.ErrorIs(t, a.Reply(ctx, "c1"), services.ErrNotAuthenticated)
	assert.Contains(t, out.String(), services.MsgSignInToReply)
	assert.Empty(t, b.posted)
}

func TestApp_RepliesOnLeafComment(t *testing.T) {
	a, out, _, ctx := newTestApp(t, "")

	require.NoError(t, a.Watch(ctx, "v1"))
	assert.ErrorIs(t, a.Replies(ctx, "c2"), services.ErrNotExpandable)
	assert.ErrorIs(t, a.Replies(ctx, "zzz"), services.ErrUnknownComment)
	assert.Contains(t, out.String(), "Comment c2 has no replies to show.")
}

func TestApp_LikeCommentPatchesCount(t *testing.T) {
	a, _, _, ctx := newTestApp(t, "alice@example.com\nsecret1\n")

	require.NoError(t, a.Login(ctx))
	require.NoError(t, a.Watch(ctx, "v1"))
	require.NoError(t, a.LikeComment(ctx, "c1"))

	assert.Equal(t, 3, a.watch.Thread().Comments()[0].Likes)
}

func TestApp_WatchMissingVideo(t *testing.T) {
	a, out, _, ctx := newTestApp(t, "")

	require.Error(t, a.Watch(ctx, "nope"))
	assert.False(t, a.watching())
	assert.Contains(t, out.String(), services.MsgVideoFailed)
}

func TestApp_LogoutReturnsHome(t *testing.T) {
	a, out, _, ctx := newTestApp(t, "alice@example.com\nsecret1\n")

	require.NoError(t, a.Login(ctx))
	require.NoError(t, a.Watch(ctx, "v1"))
	require.NoError(t, a.Logout(ctx))

	assert.False(t, a.isLoggedIn())
	assert.False(t, a.watching())
	assert.Equal(t, "(guest)", a.status())
	assert.Contains(t, out.String(), "Returned to home.")
}

func TestApp_HomeListsVideos(t *testing.T) {
	a, out, _, ctx := newTestApp(t, "")

	require.NoError(t, a.Home(ctx, ""))
	assert.Contains(t, out.String(), "[v1] Go in practice (1:30)")
	assert.Contains(t, out.String(), "2.1K views")
}

func TestApp_ProfileRequiresLogin(t *testing.T) {
	a, out, _, ctx := newTestApp(t, "")

	assert.ErrorIs(t, a.Profile(ctx), services.ErrNotAuthenticated)
	assert.Contains(t, out.String(), services.MsgSettingsAuth)
}

func TestApp_LogoutDisarmsReply(t *testing.T) {
	a, _, _, ctx := newTestApp(t, "alice@example.com\nsecret1\n")

	require.NoError(t, a.Login(ctx))
	require.NoError(t, a.Watch(ctx, "v1"))
	require.NoError(t, a.watch.Thread().ToggleReplyComposer("c1"))

	services.SessionFrom(ctx).Logout(ctx)

	target, _ := a.watch.Thread().ReplyTarget()
	assert.Empty(t, target)
}
