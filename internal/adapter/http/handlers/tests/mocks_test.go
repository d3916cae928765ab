package tests

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	httpadapter "taskflow/internal/adapter/http"
	"taskflow/internal/adapter/http/handlers"
	"taskflow/internal/adapter/http/middleware"
	"taskflow/internal/adapter/memory"
	"taskflow/internal/app/service"
	"taskflow/internal/core/domain"
	"taskflow/pkg/clock"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, id uint64) (domain.Task, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Bool(1), args.Error(2)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *taskServiceMock) MoveTask(ctx context.Context, id uint64, status domain.TaskStatus) (domain.Task, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ListTasks(ctx context.Context, userID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) Register(ctx context.Context, input domain.RegisterInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (domain.AuthResult, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.AuthResult), args.Error(1)
}

func (m *authServiceMock) ResolvePrincipal(rawUserID string) (domain.Principal, error) {
	args := m.Called(rawUserID)
	return args.Get(0).(domain.Principal), args.Error(1)
}

type pingerStub struct {
	err error
}

func (p pingerStub) PingContext(context.Context) error { return p.err }

// newRouter mounts every route with the given services. Identity is
// resolved by the real AuthService, which never touches storage for it.
func newRouter(tasks *taskServiceMock, users *userServiceMock, auth *authServiceMock) *gin.Engine {
	router := gin.New()
	identity := service.NewAuthService(memory.NewUserRepository())
	httpadapter.RegisterRoutes(router, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(pingerStub{}, handlers.AppInfo{Name: "taskflow", Version: "test", Driver: "memory"}, clock.Real()),
		Users:    handlers.NewUserHandler(users),
		Auth:     handlers.NewAuthHandler(auth),
		Tasks:    handlers.NewTaskHandler(tasks),
		Identity: middleware.IdentityMiddleware(identity),
	})
	return router
}

func doRequest(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func asUser(id string) map[string]string {
	return map[string]string{middleware.UserIDHeader: id}
}
