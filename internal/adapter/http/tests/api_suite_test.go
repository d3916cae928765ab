package tests

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	dbadapter "taskflow/internal/adapter/db"
	httpadapter "taskflow/internal/adapter/http"
	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/adapter/http/handlers"
	"taskflow/internal/adapter/http/middleware"
	appservice "taskflow/internal/app/service"
	"taskflow/pkg/apierrors"
	"taskflow/pkg/clock"
)

// APISuite drives the HTTP surface end to end against a real SQL store.
// Driver-specific suites embed it and set DB in SetupSuite.
type APISuite struct {
	suite.Suite

	Driver string
	DB     *sqlx.DB
	router *gin.Engine
}

func (s *APISuite) SetupTest() {
	s.resetDatabase()

	authService := appservice.NewAuthService(dbadapter.NewUserRepository(s.DB))
	router := gin.New()
	httpadapter.RegisterRoutes(router, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(s.DB, handlers.AppInfo{Name: "taskflow", Version: "test", Driver: s.Driver}, nil),
		Users:    handlers.NewUserHandler(appservice.NewUserService(dbadapter.NewUserRepository(s.DB))),
		Auth:     handlers.NewAuthHandler(authService),
		Tasks:    handlers.NewTaskHandler(appservice.NewTaskService(dbadapter.NewTaskRepository(s.DB), clock.Real())),
		Identity: middleware.IdentityMiddleware(authService),
	})
	s.router = router
}

func (s *APISuite) resetDatabase() {
	for _, table := range []string{"tasks", "users"} {
		_, err := s.DB.Exec("DROP TABLE IF EXISTS " + table)
		s.Require().NoError(err)
	}
	s.Require().NoError(dbadapter.Migrate(context.Background(), s.DB, s.Driver))
}

func (s *APISuite) do(method, path, body string, userID uint64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set(middleware.UserIDHeader, fmt.Sprint(userID))
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *APISuite) register(email string) dto.UserItem {
	rec := s.do(http.MethodPost, "/api/users",
		fmt.Sprintf(`{"name":"A","email":%q,"password":"abcdef","confirmPassword":"abcdef"}`, email), 0)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var user dto.UserItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &user))
	return user
}

func (s *APISuite) createTask(userID uint64, body string) dto.TaskItem {
	rec := s.do(http.MethodPost, "/api/tasks", body, userID)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var task dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &task))
	return task
}

func (s *APISuite) errorMessage(rec *httptest.ResponseRecorder) string {
	var got apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal(rec.Code, got.ErrDetails.Code)
	return got.ErrDetails.Message
}

func (s *APISuite) TestRegisterThenLogin() {
	user := s.register("a@b.com")
	s.Equal("A", user.Name)
	s.Equal("a@b.com", user.Email)

	rec := s.do(http.MethodPost, "/api/auth/login", `{"email":"a@b.com","password":"abcdef"}`, 0)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.LoginResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal(dto.LoginResponse{
		ID:    user.ID,
		Name:  "A",
		Email: "a@b.com",
		Token: fmt.Sprintf("fake-token-%d", user.ID),
	}, got)

	rec = s.do(http.MethodPost, "/api/auth/login", `{"email":"a@b.com","password":"abcdeX"}`, 0)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("Incorrect password", s.errorMessage(rec))

	rec = s.do(http.MethodPost, "/api/auth/login", `{"email":"A@b.com","password":"abcdef"}`, 0)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Invalid email or password", s.errorMessage(rec))
}

func (s *APISuite) TestRegister_EmailIsCaseSensitive() {
	s.register("a@b.com")

	rec := s.do(http.MethodPost, "/api/users",
		`{"name":"B","email":"a@b.com","password":"abcdef","confirmPassword":"abcdef"}`, 0)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Email already registered", s.errorMessage(rec))

	s.register("A@b.com")
}

func (s *APISuite) TestTaskLifecycle() {
	user := s.register("a@b.com")

	created := s.createTask(user.ID, `{"title":"  Buy milk  "}`)
	s.Equal("Buy milk", created.Title)
	s.Equal("todo", created.Status)
	s.Equal(user.ID, created.UserID)
	s.Nil(created.Description)
	s.Equal(created.CreatedAt, created.UpdatedAt)

	path := fmt.Sprintf("/api/tasks/%d", created.ID)

	rec := s.do(http.MethodPatch, path+"/status", `{"status":"doing"}`, user.ID)
	s.Require().Equal(http.StatusOK, rec.Code)
	rec = s.do(http.MethodPatch, path+"/status", `{"status":"todo"}`, user.ID)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPatch, path+"/status", `{"status":"archived"}`, user.ID)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Invalid status", s.errorMessage(rec))

	rec = s.do(http.MethodPut, path, `{"title":""}`, user.ID)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Title is required", s.errorMessage(rec))

	rec = s.do(http.MethodPut, path, `{"description":"2 liters"}`, user.ID)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, path, "", user.ID)
	s.Require().Equal(http.StatusOK, rec.Code)
	var current dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &current))
	s.Equal("Buy milk", current.Title)
	s.Equal("todo", current.Status)
	s.Require().NotNil(current.Description)
	s.Equal("2 liters", *current.Description)
	s.Equal(created.CreatedAt, current.CreatedAt)

	rec = s.do(http.MethodPut, path, `{"description":null}`, user.ID)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &current))
	s.Nil(current.Description)

	rec = s.do(http.MethodDelete, path, "", user.ID)
	s.Equal(http.StatusNoContent, rec.Code)
	rec = s.do(http.MethodDelete, path, "", user.ID)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("Task not found", s.errorMessage(rec))

	rec = s.do(http.MethodPatch, path+"/status", `{"status":"bogus"}`, user.ID)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *APISuite) TestListTasks_ScopedToPrincipal() {
	owner := s.register("a@b.com")
	other := s.register("c@d.com")

	first := s.createTask(owner.ID, `{"title":"first"}`)
	s.createTask(other.ID, `{"title":"foreign"}`)
	second := s.createTask(owner.ID, `{"title":"second","description":"d"}`)

	rec := s.do(http.MethodGet, "/api/tasks", "", owner.ID)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got, 2)
	s.Equal(first.ID, got[0].ID)
	s.Equal(second.ID, got[1].ID)

	rec = s.do(http.MethodGet, "/api/tasks", "", 0)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("Unauthorized access", s.errorMessage(rec))
}

func (s *APISuite) TestListTasks_EmptyArray() {
	user := s.register("a@b.com")

	rec := s.do(http.MethodGet, "/api/tasks", "", user.ID)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())
}

func (s *APISuite) TestListTasks_StorageFailure() {
	user := s.register("a@b.com")
	_, err := s.DB.Exec("DROP TABLE tasks")
	s.Require().NoError(err)

	rec := s.do(http.MethodGet, "/api/tasks", "", user.ID)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("Failed to list tasks", s.errorMessage(rec))
}

func (s *APISuite) TestHealthReport() {
	rec := s.do(http.MethodGet, "/api/health/report", "", 0)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got handlers.HealthAdvanced
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal(handlers.HealthServices{Driver: s.Driver, Store: handlers.StatusOk}, got.Status)
}
