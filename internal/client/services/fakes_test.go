package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/vidhub/internal/client/models"
)

var errBoom = errors.New("boom")

type fakeAuthAPI struct {
	mu sync.Mutex

	user    *models.User
	userErr error

	loginSess *models.Session
	loginErr  error
	loginGate chan struct{}

	registerSess *models.Session
	registerErr  error

	currentUserCalls int
	loginCalls       int
	registerForms    []models.RegisterForm
}

func (f *fakeAuthAPI) CurrentUser(context.Context) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.currentUserCalls++
	return f.user, f.userErr
}

func (f *fakeAuthAPI) Login(context.Context, string, string) (*models.Session, error) {
	f.mu.Lock()
	f.loginCalls++
	gate := f.loginGate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return f.loginSess, f.loginErr
}

func (f *fakeAuthAPI) Register(_ context.Context, form models.RegisterForm) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registerForms = append(f.registerForms, form)
	return f.registerSess, f.registerErr
}

func (f *fakeAuthAPI) calls() (current, login int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.currentUserCalls, f.loginCalls
}

type memCreds struct {
	mu       sync.Mutex
	token    string
	userID   string
	saveErr  error
	clearErr error
	clears   int
}

func (m *memCreds) Token(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *memCreds) Save(_ context.Context, token, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.token, m.userID = token, userID
	return nil
}

func (m *memCreds) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clears++
	if m.clearErr != nil {
		return m.clearErr
	}
	m.token, m.userID = "", ""
	return nil
}

func (m *memCreds) stored() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

type recordingNav struct {
	mu     sync.Mutex
	routes []string
}

func (n *recordingNav) Navigate(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, route)
}

func (n *recordingNav) visited() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.routes...)
}

// viewerStub is a signed-in or anonymous viewer with a replaceable profile.
type viewerStub struct {
	mu       sync.Mutex
	user     *models.User
	replaced []*models.User
}

func signedIn() *viewerStub { return &viewerStub{user: &models.User{ID: "me", UserName: "me"}} }

func anonymous() *viewerStub { return &viewerStub{} }

func (v *viewerStub) IsAuthenticated() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.user != nil
}

func (v *viewerStub) CurrentUser() *models.User {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.user
}

func (v *viewerStub) ReplaceUser(u *models.User) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.replaced = append(v.replaced, u)
	v.user = u
}

type fakeCommentAPI struct {
	mu sync.Mutex

	comments    []models.Comment
	commentsErr error

	replies    map[string][]models.Comment
	repliesErr map[string]error
	// beforeReplies runs inside CommentReplies before it answers.
	beforeReplies func(commentID string)

	addErr  error
	added   []string
	likes   map[string]models.LikeStatus
	likeErr error
	likeIDs []string

	commentCalls int
	replyCalls   map[string]int
}

func newFakeCommentAPI() *fakeCommentAPI {
	return &fakeCommentAPI{
		replies:    map[string][]models.Comment{},
		repliesErr: map[string]error{},
		likes:      map[string]models.LikeStatus{},
		replyCalls: map[string]int{},
	}
}

func (f *fakeCommentAPI) VideoComments(context.Context, string) ([]models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commentCalls++
	if f.commentsErr != nil {
		return nil, f.commentsErr
	}
	return append([]models.Comment(nil), f.comments...), nil
}

func (f *fakeCommentAPI) CommentReplies(_ context.Context, commentID string) ([]models.Comment, error) {
	f.mu.Lock()
	hook := f.beforeReplies
	f.replyCalls[commentID]++
	f.mu.Unlock()

	if hook != nil {
		hook(commentID)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.repliesErr[commentID]; err != nil {
		return nil, err
	}
	return append([]models.Comment(nil), f.replies[commentID]...), nil
}

func (f *fakeCommentAPI) AddComment(_ context.Context, _ string, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, content)
	return nil
}

func (f *fakeCommentAPI) ToggleCommentLike(_ context.Context, commentID string) (models.LikeStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.likeIDs = append(f.likeIDs, commentID)
	if f.likeErr != nil {
		return models.LikeStatus{}, f.likeErr
	}
	return f.likes[commentID], nil
}

func (f *fakeCommentAPI) repliesFetched(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.replyCalls[id]
}

func (f *fakeCommentAPI) topLevelFetched() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.commentCalls
}

func (f *fakeCommentAPI) setReplies(id string, list []models.Comment, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies[id] = list
	f.repliesErr[id] = err
}

func comment(id string, replies int) models.Comment {
	return models.Comment{ID: id, Content: "text of " + id, Replies: replies, Owner: models.Owner{ID: "u-" + id, UserName: "user-" + id}}
}

func boolPtr(b bool) *bool { return &b }
