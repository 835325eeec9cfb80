package sqlite

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/internal/domain/apperror"
	"todolist/internal/domain/item"
)

func newItem(userID, name string, due time.Time) *item.Item {
	return &item.Item{UserID: userID, Name: name, Due: due, Severity: 1}
}

func TestItemRepository_CreateGetList(t *testing.T) {
	st := newTestStorage(t)
	repo := NewItemRepository(st.DB(), testLogger())
	ctx := context.Background()

	later := newItem("u1", "later", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	sooner := newItem("u1", "sooner", time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC))
	foreign := newItem("u2", "foreign", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	for _, it := range []*item.Item{later, sooner, foreign} {
		require.NoError(t, repo.Create(ctx, it))
		assert.NotEmpty(t, it.ID)
	}

	got, err := repo.Get(ctx, sooner.ID)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "sooner", got.Name)
	assert.True(t, sooner.Due.Equal(got.Due))
	assert.False(t, got.Complete)

	items, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "sooner", items[0].Name)
	assert.Equal(t, "later", items[1].Name)
}

func TestItemRepository_ListEmpty(t *testing.T) {
	st := newTestStorage(t)
	repo := NewItemRepository(st.DB(), testLogger())

	items, err := repo.ListByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestItemRepository_SetCompleteIsIdempotent(t *testing.T) {
	st := newTestStorage(t)
	repo := NewItemRepository(st.DB(), testLogger())
	ctx := context.Background()

	it := newItem("u1", "milk", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, it))

	require.NoError(t, repo.SetComplete(ctx, it.ID, true))
	require.NoError(t, repo.SetComplete(ctx, it.ID, true))
	got, err := repo.Get(ctx, it.ID)
	require.NoError(t, err)
	assert.True(t, got.Complete)

	require.NoError(t, repo.SetComplete(ctx, it.ID, false))
	got, err = repo.Get(ctx, it.ID)
	require.NoError(t, err)
	assert.False(t, got.Complete)
}

// Конкурирующие complete/reset не блокируются: побеждает последняя запись.
func TestItemRepository_LastWriteWins(t *testing.T) {
	st := newTestStorage(t)
	repo := NewItemRepository(st.DB(), testLogger())
	ctx := context.Background()

	it := newItem("u1", "milk", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, it))

	require.NoError(t, repo.SetComplete(ctx, it.ID, true))
	require.NoError(t, repo.SetComplete(ctx, it.ID, false))

	got, err := repo.Get(ctx, it.ID)
	require.NoError(t, err)
	assert.False(t, got.Complete)
}

func TestItemRepository_MissingRows(t *testing.T) {
	st := newTestStorage(t)
	repo := NewItemRepository(st.DB(), testLogger())
	ctx := context.Background()

	_, err := repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, item.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "missing"), item.ErrNotFound)
	assert.ErrorIs(t, repo.SetComplete(ctx, "missing", true), item.ErrNotFound)
}

func TestItemRepository_Delete(t *testing.T) {
	st := newTestStorage(t)
	repo := NewItemRepository(st.DB(), testLogger())
	ctx := context.Background()

	it := newItem("u1", "milk", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, it))
	require.NoError(t, repo.Delete(ctx, it.ID))

	_, err := repo.Get(ctx, it.ID)
	assert.ErrorIs(t, err, item.ErrNotFound)
}

func TestItemRepository_StorageFailures(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewItemRepository(db, testLogger())
	ctx := context.Background()
	boom := errors.New("database is locked")

	mock.ExpectQuery(regexp.QuoteMeta(`FROM items`)).WithArgs("u1").WillReturnError(boom)
	_, err = repo.ListByUser(ctx, "u1")
	assert.ErrorIs(t, err, boom)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO items`)).WillReturnError(boom)
	err = repo.Create(ctx, newItem("u1", "milk", time.Now()))
	assert.ErrorIs(t, err, boom)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM items`)).WithArgs("i1").WillReturnError(boom)
	_, err = repo.Get(ctx, "i1")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, item.ErrNotFound)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM items`)).WithArgs("i1").WillReturnError(boom)
	assert.ErrorIs(t, repo.Delete(ctx, "i1"), boom)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE items SET complete`)).
		WithArgs(true, "i1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.SetComplete(ctx, "i1", true), item.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemService_ForeignOwnerLeavesRow(t *testing.T) {
	st := newTestStorage(t)
	repo := NewItemRepository(st.DB(), testLogger())
	svc := item.NewService(repo, testLogger())
	ctx := context.Background()

	_, err := svc.Add(ctx, "alice", item.Draft{Name: "milk", Due: "2024-01-01", Severity: 1})
	require.NoError(t, err)
	items, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, items, 1)
	id := items[0].ID

	_, err = svc.Remove(ctx, "bob", id)
	assert.ErrorIs(t, err, apperror.ErrAuthorization)
	_, err = svc.Complete(ctx, "bob", id)
	assert.ErrorIs(t, err, apperror.ErrAuthorization)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.UserID)
	assert.False(t, got.Complete)
}
