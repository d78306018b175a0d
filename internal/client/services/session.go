// Package services contains the application services of the vidhub client:
// the viewer session, the comment thread of a watch view, the watch view
// itself and the catalog listings.
package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/vidhub/internal/client/client"
	"github.com/dmitrijs2005/vidhub/internal/client/models"
	"github.com/dmitrijs2005/vidhub/internal/client/notify"
	"github.com/dmitrijs2005/vidhub/internal/common"
	"github.com/dmitrijs2005/vidhub/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// AuthAPI is the slice of the backend the session needs.
type AuthAPI interface {
	CurrentUser(ctx context.Context) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, form models.RegisterForm) (*models.Session, error)
}

// CredentialStorage persists the bearer credential across runs.
type CredentialStorage interface {
	Token(ctx context.Context) (string, error)
	Save(ctx context.Context, token, userID string) error
	Clear(ctx context.Context) error
}

// Navigator moves the UI to another route.
type Navigator interface {
	Navigate(route string)
}

// Viewer answers who is looking at the page.
type Viewer interface {
	IsAuthenticated() bool
	CurrentUser() *models.User
}

type SessionState int

const (
	StateIdle SessionState = iota
	StateLoading
	StateReady
)

func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// SessionSnapshot is what subscribers observe after every transition.
type SessionSnapshot struct {
	State SessionState
	User  *models.User
}

func (s SessionSnapshot) IsAuthenticated() bool { return s.User != nil }

// IsLoading is true until the first restore finished and while a login or
// registration is in flight.
func (s SessionSnapshot) IsLoading() bool { return s.State != StateReady }

// Session is the single source of truth for the viewer's identity.
//
// The user record is held in memory only. It is set after the backend
// validated the stored credential (Restore) or issued a new one
// (Login/Register), and dropped on Logout or on any 401.
type Session struct {
	api      AuthAPI
	creds    CredentialStorage
	notifier notify.Notifier
	nav      Navigator
	log      logging.Logger
	now      func() time.Time

	mu          sync.Mutex
	state       SessionState
	user        *models.User
	epoch       uint64
	restoreOnce sync.Once
	subscribers []func(SessionSnapshot)
}

func NewSession(api AuthAPI, creds CredentialStorage, n notify.Notifier, nav Navigator, log logging.Logger) *Session {
	return &Session{
		api:      api,
		creds:    creds,
		notifier: n,
		nav:      nav,
		log:      log.With("component", "session"),
		now:      time.Now,
	}
}

// Subscribe registers fn to receive a snapshot after every state change.
// fn runs on the goroutine that caused the change.
func (s *Session) Subscribe(fn func(SessionSnapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Session) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() SessionSnapshot {
	return SessionSnapshot{State: s.state, User: s.user}
}

func (s *Session) State() SessionState       { return s.Snapshot().State }
func (s *Session) IsLoading() bool           { return s.Snapshot().IsLoading() }
func (s *Session) IsAuthenticated() bool     { return s.Snapshot().IsAuthenticated() }
func (s *Session) CurrentUser() *models.User { return s.Snapshot().User }

// update applies fn under the lock and publishes the resulting snapshot.
func (s *Session) update(fn func()) {
	s.mu.Lock()
	fn()
	s.unlockAndPublish()
}

// unlockAndPublish releases s.mu and hands the current snapshot to every
// subscriber outside the lock. s.mu must be held.
func (s *Session) unlockAndPublish() {
	snap := s.snapshotLocked()
	subs := slices.Clone(s.subscribers)
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snap)
	}
}

// drop forgets the current user and invalidates any user captured by an
// operation in flight.
func (s *Session) drop() {
	s.update(func() {
		s.epoch++
		s.user = nil
	})
}

func (s *Session) finish(u *models.User) {
	s.update(func() {
		s.state = StateReady
		s.user = u
	})
}

// Restore validates a stored credential once per process. It never notifies
// the user: a missing, expired or rejected credential just leaves the viewer
// logged out.
func (s *Session) Restore(ctx context.Context) {
	s.restoreOnce.Do(func() { s.restore(ctx) })
}

func (s *Session) restore(ctx context.Context) {
	token, err := s.creds.Token(ctx)
	if err != nil {
		s.log.Warn(ctx, "reading stored credential failed", "error", err)
		s.finish(nil)
		return
	}
	if token == "" {
		s.finish(nil)
		return
	}

	if credentialExpired(token, s.now()) {
		s.log.Info(ctx, "stored credential expired, discarding")
		s.discardCredential(ctx)
		s.finish(nil)
		return
	}

	s.update(func() { s.state = StateLoading })

	u, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.log.Info(ctx, "stored credential rejected", "error", err)
		s.discardCredential(ctx)
		s.finish(nil)
		return
	}

	s.log.Info(ctx, "session restored", "user_id", u.ID)
	s.finish(u)
}

// credentialExpired reports whether token is a JWT whose exp claim has
// passed. Tokens that do not parse as JWTs are left to the backend.
func credentialExpired(token string, now time.Time) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && !claims.ExpiresAt.After(now)
}

func (s *Session) discardCredential(ctx context.Context) {
	if err := s.creds.Clear(ctx); err != nil {
		s.log.Error(ctx, "clearing stored credential failed", "error", err)
	}
}

// attempt is a login or registration in flight. It remembers who was
// signed in when it started so a failure can put them back.
type attempt struct {
	prev  *models.User
	epoch uint64
}

// begin moves the session into StateLoading for a login or registration.
func (s *Session) begin() (attempt, error) {
	s.mu.Lock()
	if s.state == StateLoading {
		s.mu.Unlock()
		return attempt{}, ErrBusy
	}
	a := attempt{prev: s.user, epoch: s.epoch}
	s.state = StateLoading
	s.unlockAndPublish()
	return a, nil
}

// fail ends a failed attempt. The previous user is restored only if
// nothing dropped the session meanwhile; otherwise its credential is gone.
func (s *Session) fail(a attempt) {
	s.update(func() {
		s.state = StateReady
		if s.epoch == a.epoch {
			s.user = a.prev
		} else {
			s.user = nil
		}
	})
}

// establish persists a freshly issued credential and makes its owner the
// current user. A response without a user record is completed with an
// identity lookup.
func (s *Session) establish(ctx context.Context, issued *models.Session) (*models.User, error) {
	token := issued.Credential()
	if token == "" {
		return nil, fmt.Errorf("no credential issued: %w", client.ErrEmptyResponse)
	}

	u := issued.User
	if err := s.creds.Save(ctx, token, userID(u)); err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	u, err := s.api.CurrentUser(ctx)
	if err != nil {
		// the previous credential was overwritten by Save
		s.discardCredential(ctx)
		s.drop()
		return nil, err
	}
	return u, nil
}

func userID(u *models.User) string {
	if u == nil {
		return ""
	}
	return u.ID
}

// Login authenticates with email and password. On failure the server
// message (or a generic one) is shown and the error is returned so the
// caller can keep its form open.
func (s *Session) Login(ctx context.Context, email, password string) error {
	at, err := s.begin()
	if err != nil {
		return err
	}

	issued, err := s.api.Login(ctx, email, password)
	if err == nil {
		var u *models.User
		if u, err = s.establish(ctx, issued); err == nil {
			s.finish(u)
			s.log.Info(ctx, "logged in", "user_id", u.ID)
			s.notifier.Success(MsgLoggedIn)
			return nil
		}
	}

	s.log.Warn(ctx, "login failed", "error", err)
	s.fail(at)
	s.notifier.Error(client.MessageOf(err, MsgLoginFailed))
	return err
}

// Register creates an account and signs it in. It does not navigate;
// onDone, when set, runs after success (e.g. to close a dialog).
func (s *Session) Register(ctx context.Context, form models.RegisterForm, onDone func()) error {
	at, err := s.begin()
	if err != nil {
		return err
	}

	issued, err := s.api.Register(ctx, form)
	if err == nil {
		var u *models.User
		if u, err = s.establish(ctx, issued); err == nil {
			s.finish(u)
			s.log.Info(ctx, "registered", "user_id", u.ID)
			s.notifier.Success(MsgRegistered)
			if onDone != nil {
				onDone()
			}
			return nil
		}
	}

	s.log.Warn(ctx, "registration failed", "error", err)
	s.fail(at)
	s.notifier.Error(client.MessageOf(err, MsgRegisterFailed))
	return err
}

// Logout forgets the credential locally. The backend is not told.
func (s *Session) Logout(ctx context.Context) {
	s.discardCredential(ctx)
	s.update(func() {
		s.epoch++
		s.user = nil
		if s.state == StateIdle {
			s.state = StateReady
		}
	})
	s.notifier.Success(MsgLoggedOut)
}

// ReplaceUser swaps the in-memory profile after a successful profile
// update. It is ignored when nobody is signed in.
func (s *Session) ReplaceUser(u *models.User) {
	if u == nil {
		return
	}
	s.update(func() {
		if s.user != nil {
			s.user = u
		}
	})
}

// HandleUnauthorized reacts to a 401 from any endpoint: the credential and
// user are always dropped; unless the rejected call was the silent identity
// check, the viewer is told and sent back to the root route.
func (s *Session) HandleUnauthorized(ctx context.Context, path string) {
	s.discardCredential(ctx)
	s.drop()

	if path == client.PathCurrentUser {
		return
	}
	s.log.Info(ctx, "session expired", "path", path)
	s.notifier.Error(MsgSessionExpired)
	s.nav.Navigate(common.RootRoute)
}

type sessionKey struct{}

// WithSession scopes s to ctx.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session scoped to ctx and panics when there is
// none: reaching for the viewer outside a session scope is a wiring bug.
func SessionFrom(ctx context.Context) *Session {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	if !ok || s == nil {
		panic(errors.New("services: SessionFrom used outside of a session scope"))
	}
	return s
}
