package service

import (
	"context"
	"errors"

	"github.com/shoplist/shoplist-go/internal/model"
	"github.com/shoplist/shoplist-go/internal/repository"
)

var (
	ErrNameRequired = errors.New("item name is required")
	ErrItemNotFound = errors.New("item not found")
)

// ItemStore is the item persistence surface the item service depends on.
// Every method is scoped by the owning user's ID. *repository.ItemRepository
// satisfies it.
type ItemStore interface {
	Create(ctx context.Context, item *model.Item) error
	GetByID(ctx context.Context, userID, itemID string) (*model.Item, error)
	ListByUser(ctx context.Context, userID string) ([]model.Item, error)
	Update(ctx context.Context, userID, itemID string, req model.UpdateItemRequest) error
	Delete(ctx context.Context, userID, itemID string) error
}

// ItemService handles shopping-list item business logic. Every operation is
// scoped to the acting user's ID resolved by the session guard; item IDs
// supplied by the request are never trusted on their own.
type ItemService struct {
	repo ItemStore
}

// NewItemService creates a new ItemService.
func NewItemService(repo ItemStore) *ItemService {
	return &ItemService{repo: repo}
}

// List returns all items owned by the user, newest-created first.
func (s *ItemService) List(ctx context.Context, userID string) ([]model.Item, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// Create adds an item to the user's list. Quantity defaults to 1 when omitted
// or below 1; purchased starts false.
func (s *ItemService) Create(ctx context.Context, userID string, req model.CreateItemRequest) (model.Item, error) {
	if req.Name == "" {
		return model.Item{}, ErrNameRequired
	}

	item := model.Item{
		Name:     req.Name,
		Quantity: defaultQuantity(req.Quantity),
		Category: req.Category,
		UserID:   userID,
	}

	if err := s.repo.Create(ctx, &item); err != nil {
		return model.Item{}, err
	}

	return item, nil
}

// Update applies the supplied fields to the user's item and returns the
// updated row. A supplied quantity below 1 is clamped to 1 so the stored
// quantity never violates the minimum. A missing item and another user's
// item both yield ErrItemNotFound.
func (s *ItemService) Update(ctx context.Context, userID, itemID string, req model.UpdateItemRequest) (model.Item, error) {
	if req.Quantity != nil {
		q := defaultQuantity(*req.Quantity)
		req.Quantity = &q
	}

	if err := s.repo.Update(ctx, userID, itemID, req); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return model.Item{}, ErrItemNotFound
		}
		return model.Item{}, err
	}

	item, err := s.repo.GetByID(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return model.Item{}, ErrItemNotFound
		}
		return model.Item{}, err
	}

	return *item, nil
}

// Delete removes the user's item. Deletion is terminal: any later operation
// on the same ID yields ErrItemNotFound.
func (s *ItemService) Delete(ctx context.Context, userID, itemID string) error {
	err := s.repo.Delete(ctx, userID, itemID)
	if errors.Is(err, repository.ErrItemNotFound) {
		return ErrItemNotFound
	}
	return err
}

// defaultQuantity returns q clamped to the minimum of 1.
func defaultQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}
