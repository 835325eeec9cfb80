package item

import (
	"context"
)

// Repository хранит дела. Проверку владельца выполняет сервис, поэтому
// методы работают по первичному ключу.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Item, error)
	// Create заполняет ID и CreatedAt.
	Create(ctx context.Context, it *Item) error
	Get(ctx context.Context, itemID string) (*Item, error)
	Delete(ctx context.Context, itemID string) error
	SetComplete(ctx context.Context, itemID string, complete bool) error
}
