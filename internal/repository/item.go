package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shoplist/shoplist-go/internal/model"
)

var ErrItemNotFound = errors.New("item not found")

const itemColumns = `id, name, quantity, category, purchased, user_id, created_at, updated_at`

// ItemRepository handles shopping-list item persistence operations.
// Every query filters by user_id so an item is only ever visible to its owner.
type ItemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new ItemRepository.
func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// Create inserts a new item owned by item.UserID and re-reads the stored row
// so the caller sees the store-assigned timestamps.
func (r *ItemRepository) Create(ctx context.Context, item *model.Item) error {
	item.ID = uuid.NewString()

	query := `INSERT INTO items (id, name, quantity, category, purchased, user_id) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.Name, item.Quantity, item.Category, item.Purchased, item.UserID,
	)
	if err != nil {
		return err
	}

	stored, err := r.GetByID(ctx, item.UserID, item.ID)
	if err != nil {
		return err
	}
	*item = *stored

	return nil
}

// GetByID retrieves an item by ID, scoped to the owning user.
func (r *ItemRepository) GetByID(ctx context.Context, userID, itemID string) (*model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ? AND user_id = ?`

	item := &model.Item{}
	err := r.db.QueryRowContext(ctx, query, itemID, userID).Scan(
		&item.ID, &item.Name, &item.Quantity, &item.Category,
		&item.Purchased, &item.UserID, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	return item, nil
}

// ListByUser retrieves all items owned by a user, newest-created first.
func (r *ItemRepository) ListByUser(ctx context.Context, userID string) ([]model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE user_id = ? ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Quantity, &item.Category,
			&item.Purchased, &item.UserID, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// Update applies the non-nil fields of req to the item, conditioned on
// ownership. Returns ErrItemNotFound when no row matches (missing item or
// a different owner) so cross-user probes are indistinguishable from absence.
func (r *ItemRepository) Update(ctx context.Context, userID, itemID string, req model.UpdateItemRequest) error {
	if req.IsEmpty() {
		// Nothing to change; ownership is still checked.
		_, err := r.GetByID(ctx, userID, itemID)
		return err
	}

	setClause, args := buildItemUpdate(req)
	query := `UPDATE items SET ` + setClause + ` WHERE id = ? AND user_id = ?`
	args = append(args, itemID, userID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// Delete removes an item, conditioned on ownership.
func (r *ItemRepository) Delete(ctx context.Context, userID, itemID string) error {
	query := `DELETE FROM items WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, itemID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// buildItemUpdate turns the non-nil fields of req into a SET clause and its
// arguments. Returns an empty clause when the request carries no fields.
func buildItemUpdate(req model.UpdateItemRequest) (string, []any) {
	var sets []string
	var args []any

	if req.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *req.Name)
	}
	if req.Quantity != nil {
		sets = append(sets, "quantity = ?")
		args = append(args, *req.Quantity)
	}
	if req.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *req.Category)
	}
	if req.Purchased != nil {
		sets = append(sets, "purchased = ?")
		args = append(args, *req.Purchased)
	}

	return strings.Join(sets, ", "), args
}
