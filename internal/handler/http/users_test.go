package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-service/internal/app"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/models"
)

func TestListUsers(t *testing.T) {
	t.Run("strips digests", func(t *testing.T) {
		users := &mockUserManager{
			findAllFn: func(context.Context) ([]models.User, error) {
				second := storedUser()
				second.ID, second.Username, second.Email = 8, "bob", "bob@example.com"
				return []models.User{storedUser(), second}, nil
			},
		}

		rr := serve(t, newTestRouter(t, users), http.MethodGet, "/users", "")
		require.Equal(t, http.StatusOK, rr.Code)

		var got []models.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, int64(7), got[0].ID)
		assert.Equal(t, int64(8), got[1].ID)
		assert.NotContains(t, rr.Body.String(), "$2a$")
	})

	t.Run("empty list is an empty array", func(t *testing.T) {
		users := &mockUserManager{
			findAllFn: func(context.Context) ([]models.User, error) { return nil, nil },
		}

		rr := serve(t, newTestRouter(t, users), http.MethodGet, "/users", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})
}

func TestGetUser(t *testing.T) {
	users := &mockUserManager{
		findByIDFn: func(_ context.Context, id int64) (models.User, error) {
			if id == 7 {
				return storedUser(), nil
			}
			return models.User{}, &service.NotFoundError{ID: id}
		},
	}
	router := newTestRouter(t, users)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantError  string
	}{
		{name: "found", path: "/users/7", wantStatus: http.StatusOK},
		{name: "not found", path: "/users/99", wantStatus: http.StatusNotFound, wantError: "Usuario no encontrado con id: 99"},
		{name: "non numeric id", path: "/users/abc", wantStatus: http.StatusBadRequest, wantError: app.MsgInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(t, router, http.MethodGet, tt.path, "")
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantStatus == http.StatusOK {
				user := decodeUser(t, rr)
				assert.Equal(t, "ana", user.Username)
				assert.Empty(t, user.Password)
				return
			}

			resp := decodeErrorResponse(t, rr)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.Equal(t, tt.path, resp.Path)
		})
	}
}

func TestUpdateUser(t *testing.T) {
	var received models.User
	users := &mockUserManager{
		updateFn: func(_ context.Context, candidate models.User) (models.User, error) {
			received = candidate
			switch candidate.ID {
			case 7:
				u := storedUser()
				u.Name = candidate.Name
				return u, nil
			case 8:
				return models.User{}, service.ErrDuplicateUsername
			default:
				return models.User{}, &service.NotFoundError{ID: candidate.ID}
			}
		},
	}
	router := newTestRouter(t, users)

	t.Run("success", func(t *testing.T) {
		rr := serve(t, router, http.MethodPut, "/users", `{"id":7,"name":"Ana María","username":"ana","password":""}`)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Ana María", decodeUser(t, rr).Name)
		assert.Equal(t, int64(7), received.ID)
		assert.Empty(t, received.Password)
	})

	t.Run("duplicate", func(t *testing.T) {
		rr := serve(t, router, http.MethodPut, "/users", `{"id":8,"username":"ana"}`)
		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, app.MsgUsernameAlreadyRegistered, decodeErrorResponse(t, rr).Error)
	})

	t.Run("missing", func(t *testing.T) {
		rr := serve(t, router, http.MethodPut, "/users", `{"id":42}`)
		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Usuario no encontrado con id: 42", decodeErrorResponse(t, rr).Error)
	})

	t.Run("invalid json", func(t *testing.T) {
		rr := serve(t, router, http.MethodPut, "/users", `[`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteUser(t *testing.T) {
	var deleted []int64
	users := &mockUserManager{
		deleteByIDFn: func(_ context.Context, id int64) error {
			deleted = append(deleted, id)
			return nil
		},
	}
	router := newTestRouter(t, users)

	rr := serve(t, router, http.MethodDelete, "/users/7", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = serve(t, router, http.MethodDelete, "/users/7", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = serve(t, router, http.MethodDelete, "/users/x", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	assert.Equal(t, []int64{7, 7}, deleted)
}
