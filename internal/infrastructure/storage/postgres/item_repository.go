package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"todolist/internal/domain/item"
)

type ItemRepository struct {
	db  Querier
	log *slog.Logger
}

func NewItemRepository(db Querier, log *slog.Logger) *ItemRepository {
	return &ItemRepository{
		db:  db,
		log: log.With("component", "item_repository"),
	}
}

func (r *ItemRepository) ListByUser(ctx context.Context, userID string) ([]item.Item, error) {
	const query = `
		SELECT id, user_id, name, due, severity, complete, created_at
		FROM items
		WHERE user_id = $1
		ORDER BY due, created_at`

	rows, err := r.db.Query(ctx, query, userID)
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
		INSERT INTO items (id, user_id, name, due, severity, complete)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	id := uuid.NewString()
	if err := r.db.QueryRow(ctx, query, id, it.UserID, it.Name, it.Due, it.Severity, it.Complete).
		Scan(&it.CreatedAt); err != nil {
		return fmt.Errorf("insert item: %w", err)
	}

	it.ID = id
	it.CreatedAt = it.CreatedAt.UTC()
	return nil
}

func (r *ItemRepository) Get(ctx context.Context, itemID string) (*item.Item, error) {
	const query = `
		SELECT id, user_id, name, due, severity, complete, created_at
		FROM items
		WHERE id = $1`

	it, err := scanItem(r.db.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, item.ErrNotFound
		}
		return nil, fmt.Errorf("get item: %w", err)
	}

	return it, nil
}

func (r *ItemRepository) Delete(ctx context.Context, itemID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return item.ErrNotFound
	}
	return nil
}

func (r *ItemRepository) SetComplete(ctx context.Context, itemID string, complete bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE items SET complete = $2 WHERE id = $1`, itemID, complete)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return item.ErrNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (*item.Item, error) {
	var it item.Item
	if err := row.Scan(&it.ID, &it.UserID, &it.Name, &it.Due, &it.Severity, &it.Complete, &it.CreatedAt); err != nil {
		return nil, err
	}
	it.Due = it.Due.UTC()
	it.CreatedAt = it.CreatedAt.UTC()
	return &it, nil
}
