package test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	handlers "goblog/internal/handler"
	"goblog/internal/models"
	"goblog/internal/service"
	"goblog/internal/session"
	"goblog/internal/view"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	args := m.Called(ctx, name, email, password)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) List(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	posts, _ := args.Get(0).([]models.Post)
	return posts, args.Error(1)
}

func (m *MockPostService) Get(ctx context.Context, id int) (*models.Post, error) {
	args := m.Called(ctx, id)
	post, _ := args.Get(0).(*models.Post)
	return post, args.Error(1)
}

func (m *MockPostService) Create(ctx context.Context, req service.CreatePostRequest, author *models.User) (*models.Post, error) {
	args := m.Called(ctx, req, author)
	post, _ := args.Get(0).(*models.Post)
	return post, args.Error(1)
}

func (m *MockPostService) Update(ctx context.Context, id int, req service.CreatePostRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockPostService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) Add(ctx context.Context, text string, author *models.User, postID int) (*models.Comment, error) {
	args := m.Called(ctx, text, author, postID)
	comment, _ := args.Get(0).(*models.Comment)
	return comment, args.Error(1)
}

func (m *MockCommentService) ListByPost(ctx context.Context, postID int) ([]models.Comment, error) {
	args := m.Called(ctx, postID)
	comments, _ := args.Get(0).([]models.Comment)
	return comments, args.Error(1)
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Send(ctx context.Context, msg service.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Issue(ctx context.Context, w http.ResponseWriter, user *models.User) error {
	args := m.Called(ctx, w, user)
	return args.Error(0)
}

func (m *MockSessionService) CurrentUser(ctx context.Context, r *http.Request) (*models.User, error) {
	args := m.Called(ctx, r)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockSessionService) Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	args := m.Called(ctx, w, r)
	return args.Error(0)
}

type testMocks struct {
	auth     *MockAuthService
	post     *MockPostService
	comment  *MockCommentService
	contact  *MockContactService
	sessions *MockSessionService
}

func newTestHandlers(t *testing.T) (*handlers.Handlers, *testMocks) {
	t.Helper()

	renderer, err := view.New()
	require.NoError(t, err)

	m := &testMocks{
		auth:     new(MockAuthService),
		post:     new(MockPostService),
		comment:  new(MockCommentService),
		contact:  new(MockContactService),
		sessions: new(MockSessionService),
	}

	svc := &service.Service{
		Auth:    m.auth,
		Post:    m.post,
		Comment: m.comment,
		Contact: m.contact,
	}

	return handlers.NewHandlers(svc, m.sessions, renderer), m
}

// formRequest builds a POST with an urlencoded body, the way a browser
// submits the page forms.
func formRequest(path string, values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// asUser attaches a resolved user to the request context, standing in for
// the session middleware.
func asUser(r *http.Request, user *models.User) *http.Request {
	return r.WithContext(session.WithUser(r.Context(), user))
}

// flashMessage extracts the decoded flash cookie set on the response.
func flashMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	for _, c := range w.Result().Cookies() {
		if c.Name == "flash" {
			decoded, err := url.QueryUnescape(c.Value)
			require.NoError(t, err)
			return decoded
		}
	}
	return ""
}
