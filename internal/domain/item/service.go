package item

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"

	"todolist/internal/domain/apperror"
)

type Servicer interface {
	List(ctx context.Context, userID string) ([]Item, error)
	Add(ctx context.Context, userID string, draft Draft) (string, error)
	Remove(ctx context.Context, userID, itemID string) (string, error)
	Complete(ctx context.Context, userID, itemID string) (string, error)
	Reset(ctx context.Context, userID, itemID string) (string, error)
}

// Service defines the business logic for item operations
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService creates a new item service
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "item_service"),
	}
}

// List returns all items of a user. No items is an empty slice, not an error.
func (s *Service) List(ctx context.Context, userID string) ([]Item, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.log.Error("failed to list items", "user_id", userID, "error", err)
		return nil, apperror.Storage("Unable to get items for user with id: "+userID, err)
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

// Add creates a new item owned by userID
func (s *Service) Add(ctx context.Context, userID string, draft Draft) (string, error) {
	if userID == "" {
		return "", apperror.Validation("Require a User id to add an item.")
	}
	if strings.TrimSpace(draft.Name) == "" {
		return "", apperror.Validation("Require a name to add an item.")
	}

	due, err := ParseDue(draft.Due)
	if err != nil {
		return "", apperror.Validation(fmt.Sprintf("Invalid due date %q: expected YYYY-MM-DD or RFC 3339.", draft.Due))
	}

	it := &Item{
		UserID:   userID,
		Name:     draft.Name,
		Due:      due,
		Severity: draft.Severity,
	}
	if err := s.repo.Create(ctx, it); err != nil {
		s.log.Error("failed to create item", "user_id", userID, "error", err)
		return "", apperror.Storage("There was an error creating the item", err)
	}

	s.log.Info("item created", "item_id", it.ID, "user_id", userID)

	return "Item " + it.Name + " successfully added.", nil
}

// Remove permanently deletes an item owned by userID
func (s *Service) Remove(ctx context.Context, userID, itemID string) (string, error) {
	if userID == "" || itemID == "" {
		return "", apperror.Validation("Require a valid user ID and item ID to remove an item.")
	}
	if err := s.authorize(ctx, userID, itemID, "removal"); err != nil {
		return "", err
	}

	if err := s.repo.Delete(ctx, itemID); err != nil {
		return "", s.mutationError(err, userID, itemID, "Error deleting item: "+itemID)
	}

	s.log.Info("item deleted", "item_id", itemID, "user_id", userID)
	return "Successfully deleted item with id: " + itemID, nil
}

// Complete marks an item as done
func (s *Service) Complete(ctx context.Context, userID, itemID string) (string, error) {
	if userID == "" || itemID == "" {
		return "", apperror.Validation("Require a valid user ID and item ID to update an item.")
	}
	return s.setComplete(ctx, userID, itemID, true, "update")
}

// Reset marks an item as pending again
func (s *Service) Reset(ctx context.Context, userID, itemID string) (string, error) {
	if userID == "" || itemID == "" {
		return "", apperror.Validation("Require a valid user ID and item ID to reset an item.")
	}
	return s.setComplete(ctx, userID, itemID, false, "reset")
}

func (s *Service) setComplete(ctx context.Context, userID, itemID string, complete bool, action string) (string, error) {
	if err := s.authorize(ctx, userID, itemID, action); err != nil {
		return "", err
	}

	if err := s.repo.SetComplete(ctx, itemID, complete); err != nil {
		return "", s.mutationError(err, userID, itemID, "Unable to update completion status of item: "+itemID)
	}

	s.log.Info("item completion changed", "item_id", itemID, "user_id", userID, "complete", complete)
	return "Successfully updated completion status of item: " + itemID, nil
}

// authorize loads the item and fails unless it belongs to userID.
// The caller must not mutate anything when it returns an error.
func (s *Service) authorize(ctx context.Context, userID, itemID, action string) error {
	it, err := s.repo.Get(ctx, itemID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperror.NotFound("Unable to find item: " + itemID)
		}
		s.log.Error("failed to get item", "item_id", itemID, "user_id", userID, "error", err)
		return apperror.Storage("Unable to find item: "+itemID, err)
	}

	if it.UserID != userID {
		s.log.Warn("item ownership mismatch", "item_id", itemID, "user_id", userID)
		return apperror.Authorization("Item is not owned by user requesting " + action + ".")
	}

	return nil
}

func (s *Service) mutationError(err error, userID, itemID, msg string) error {
	// запись могли удалить между чтением и изменением
	if errors.Is(err, ErrNotFound) {
		return apperror.NotFound("Unable to find item: " + itemID)
	}
	s.log.Error("failed to mutate item", "item_id", itemID, "user_id", userID, "error", err)
	return apperror.Storage(msg, err)
}
