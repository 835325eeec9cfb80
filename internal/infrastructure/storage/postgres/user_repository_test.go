package postgres

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"todolist/internal/domain/user"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestUserRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock, testLogger())
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), "alice", "hash").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(created))

	u := &user.User{Username: "alice", PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), u))
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, created, u.CreatedAt)
}

func TestUserRepository_Create_UsernameTaken(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock, testLogger())

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), "alice", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	u := &user.User{Username: "alice", PasswordHash: "hash"}
	err := repo.Create(context.Background(), u)
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
	assert.Empty(t, u.ID)
}

func TestUserRepository_Create_Error(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock, testLogger())

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), "alice", "hash").
		WillReturnError(errors.New("connection reset"))

	err := repo.Create(context.Background(), &user.User{Username: "alice", PasswordHash: "hash"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, user.ErrUsernameTaken)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestUserRepository_FindByUsername(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock, testLogger())
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, username, password_hash, created_at FROM users").
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow("u-1", "alice", "hash", created))

	u, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, user.User{ID: "u-1", Username: "alice", PasswordHash: "hash", CreatedAt: created}, u)
}

func TestUserRepository_FindByUsername_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock, testLogger())

	mock.ExpectQuery("SELECT id, username, password_hash, created_at FROM users").
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestUserRepository_FindByUsername_Error(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock, testLogger())

	mock.ExpectQuery("SELECT id, username, password_hash, created_at FROM users").
		WithArgs("alice").
		WillReturnError(errors.New("timeout"))

	_, err := repo.FindByUsername(context.Background(), "alice")
	require.Error(t, err)
	assert.NotErrorIs(t, err, user.ErrNotFound)
}
