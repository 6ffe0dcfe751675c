package model

import "time"

// Item represents a shopping-list item in the database.
// JSON field names match the wire contract the client depends on.
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Category  *string   `json:"category"`
	Purchased bool      `json:"purchased"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateItemRequest represents a request to add an item to the list.
type CreateItemRequest struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Category *string `json:"category"`
}

// UpdateItemRequest represents a partial item update.
// Pointer fields distinguish "not supplied" (nil) from a zero value,
// so a client can flip purchased without touching name or quantity.
type UpdateItemRequest struct {
	Name      *string `json:"name"`
	Quantity  *int    `json:"quantity"`
	Category  *string `json:"category"`
	Purchased *bool   `json:"purchased"`
}

// IsEmpty reports whether the update carries no fields at all.
func (r UpdateItemRequest) IsEmpty() bool {
	return r.Name == nil && r.Quantity == nil && r.Category == nil && r.Purchased == nil
}

// ItemsResponse represents the list endpoint envelope.
type ItemsResponse struct {
	Success bool   `json:"success"`
	Items   []Item `json:"items"`
}

// ItemResponse represents a single-item envelope. The payload key is
// "items" even for one item; existing clients depend on it.
type ItemResponse struct {
	Success bool `json:"success"`
	Items   Item `json:"items"`
}

// MessageResponse represents a success envelope with a human-readable message.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
