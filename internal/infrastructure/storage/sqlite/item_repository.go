package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"todolist/internal/domain/item"
)

type ItemRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewItemRepository(db *sql.DB, log *slog.Logger) *ItemRepository {
	return &ItemRepository{
		db:  db,
		log: log.With("component", "item_repository"),
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *ItemRepository) ListByUser(ctx context.Context, userID string) ([]item.Item, error) {
	const query = `
		SELECT id, user_id, name, due, severity, complete, created_at
		FROM items
		WHERE user_id = ?
		ORDER BY due, created_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]item.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	return items, nil
}

func (r *ItemRepository) Create(ctx context.Context, it *item.Item) error {
	const query = `
		INSERT INTO items (id, user_id, name, due, severity, complete, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	id := uuid.NewString()
	createdAt := time.Now().UTC()
	if _, err := r.db.ExecContext(ctx, query,
		id, it.UserID, it.Name, it.Due.UTC(), it.Severity, it.Complete, createdAt); err != nil {
		return fmt.Errorf("insert item: %w", err)
	}

	it.ID = id
	it.CreatedAt = createdAt
	return nil
}

func (r *ItemRepository) Get(ctx context.Context, itemID string) (*item.Item, error) {
	const query = `
		SELECT id, user_id, name, due, severity, complete, created_at
		FROM items
		WHERE id = ?`

	it, err := scanItem(r.db.QueryRowContext(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, item.ErrNotFound
		}
		return nil, fmt.Errorf("get item: %w", err)
	}

	return it, nil
}

func (r *ItemRepository) Delete(ctx context.Context, itemID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, itemID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return checkAffected(res)
}

func (r *ItemRepository) SetComplete(ctx context.Context, itemID string, complete bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE items SET complete = ? WHERE id = ?`, complete, itemID)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return item.ErrNotFound
	}
	return nil
}

func scanItem(row scanner) (*item.Item, error) {
	var it item.Item
	if err := row.Scan(&it.ID, &it.UserID, &it.Name, &it.Due, &it.Severity, &it.Complete, &it.CreatedAt); err != nil {
		return nil, err
	}
	it.Due = it.Due.UTC()
	it.CreatedAt = it.CreatedAt.UTC()
	return &it, nil
}
