package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"todolist/internal/domain/apperror"
	"todolist/internal/domain/session"
)

type MockSession struct {
	mock.Mock
}

func (m *MockSession) Issue(ctx context.Context, id session.Identity) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockSession) Validate(ctx context.Context, token string) (session.Identity, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(session.Identity), args.Error(1)
}

type whoamiOutput struct {
	Body session.Identity
}

func newTestAPI(t *testing.T, svc session.Servicer) humatest.TestAPI {
	t.Helper()

	_, api := humatest.New(t)
	a := New(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	huma.Register(api, huma.Operation{
		OperationID: "whoami",
		Method:      http.MethodGet,
		Path:        "/whoami",
		Middlewares: huma.Middlewares{a.Middleware()},
	}, func(ctx context.Context, _ *struct{}) (*whoamiOutput, error) {
		identity, ok := GetIdentity(ctx)
		if !ok {
			return nil, huma.Error500InternalServerError("identity missing")
		}
		return &whoamiOutput{Body: identity}, nil
	})

	return api
}

func TestMiddleware_AcceptsSchemes(t *testing.T) {
	alice := session.Identity{ID: "u1", Username: "alice"}

	for _, header := range []string{"Authorization: Bearer good", "Authorization: JWT good", "Authorization: jwt good"} {
		t.Run(header, func(t *testing.T) {
			svc := new(MockSession)
			svc.On("Validate", mock.Anything, "good").Return(alice, nil)
			api := newTestAPI(t, svc)

			resp := api.Get("/whoami", header)

			require.Equal(t, http.StatusOK, resp.Code)
			var got session.Identity
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
			assert.Equal(t, alice, got)
			svc.AssertExpectations(t)
		})
	}
}

func TestMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		headers []any
	}{
		{name: "no header"},
		{name: "unknown scheme", headers: []any{"Authorization: Basic Zm9vOmJhcg=="}},
		{name: "empty token", headers: []any{"Authorization: Bearer "}},
		{name: "invalid token", headers: []any{"Authorization: Bearer bad"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockSession)
			svc.On("Validate", mock.Anything, "bad").Return(session.Identity{}, apperror.Auth("invalid token"))
			api := newTestAPI(t, svc)

			resp := api.Get("/whoami", tt.headers...)

			assert.Equal(t, http.StatusUnauthorized, resp.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, float64(http.StatusUnauthorized), body["status"])
			assert.Equal(t, "Unauthorized", body["error"])
		})
	}
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"JWT abc", "abc", true},
		{"  JWT   abc ", "abc", true},
		{"Bearer", "", false},
		{"abc", "", false},
		{"Token abc", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		token, ok := extractToken(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.token, token, tt.header)
	}
}

func TestGetIdentity(t *testing.T) {
	_, ok := GetIdentity(context.Background())
	assert.False(t, ok)

	_, ok = GetIdentity(WithIdentity(context.Background(), session.Identity{}))
	assert.False(t, ok)

	id, ok := GetIdentity(WithIdentity(context.Background(), session.Identity{ID: "u1", Username: "alice"}))
	assert.True(t, ok)
	assert.Equal(t, "u1", id.ID)
}
