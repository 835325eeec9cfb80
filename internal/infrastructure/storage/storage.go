package storage

import (
	"context"
)

// Storage - общий контракт бэкендов хранения для сборки приложения.
type Storage interface {
	Ping(ctx context.Context) error
	Close() error
}
