package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/models"
)

// mockUserManager implements service.UserManager. Each method field can be
// overridden per test case; an unset field panics when called.
type mockUserManager struct {
	registerFn   func(ctx context.Context, candidate models.User) (models.User, error)
	loginFn      func(ctx context.Context, username, password string) (models.User, error)
	updateFn     func(ctx context.Context, candidate models.User) (models.User, error)
	deleteByIDFn func(ctx context.Context, id int64) error
	findByIDFn   func(ctx context.Context, id int64) (models.User, error)
	findAllFn    func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserManager) Register(ctx context.Context, candidate models.User) (models.User, error) {
	return m.registerFn(ctx, candidate)
}

func (m *mockUserManager) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockUserManager) Update(ctx context.Context, candidate models.User) (models.User, error) {
	return m.updateFn(ctx, candidate)
}

func (m *mockUserManager) DeleteByID(ctx context.Context, id int64) error {
	return m.deleteByIDFn(ctx, id)
}

func (m *mockUserManager) FindByID(ctx context.Context, id int64) (models.User, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockUserManager) FindAll(ctx context.Context) ([]models.User, error) {
	return m.findAllFn(ctx)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// newTestRouter builds the full router around the given UserManager mock.
func newTestRouter(t *testing.T, users service.UserManager) http.Handler {
	t.Helper()
	svcs := &service.Services{
		UserManager:    users,
		AppInfoService: &mockAppInfoService{version: "1.2.3"},
	}
	return NewHandler(svcs, config.Server{}, logger.Nop()).Init()
}

// serve sends a request with an optional body through router.
func serve(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func decodeUser(t *testing.T, rr *httptest.ResponseRecorder) models.User {
	t.Helper()
	var user models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	return user
}

func storedUser() models.User {
	return models.User{
		ID:       7,
		Name:     "Ana",
		Email:    "ana@example.com",
		Username: "ana",
		Password: "$2a$10$digest",
		Role:     models.DefaultRole,
		RUT:      "12345678-5",
	}
}
