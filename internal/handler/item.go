package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shoplist/shoplist-go/internal/middleware"
	"github.com/shoplist/shoplist-go/internal/model"
	"github.com/shoplist/shoplist-go/internal/service"
)

// ItemHandler handles HTTP requests for shopping-list item operations.
type ItemHandler struct {
	service *service.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(svc *service.ItemService) *ItemHandler {
	return &ItemHandler{service: svc}
}

// HandleListItems handles GET /api/items requests.
func (h *ItemHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Authentication required"))
		return
	}

	items, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("Server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.ItemsResponse{Success: true, Items: items})
}

// HandleCreateItem handles POST /api/items requests.
func (h *ItemHandler) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Authentication required"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	item, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse("Item name is required"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("Server error"))
		return
	}

	writeJSON(w, http.StatusCreated, model.ItemResponse{Success: true, Items: item})
}

// HandleUpdateItem handles PUT /api/items/{id} requests.
func (h *ItemHandler) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Authentication required"))
		return
	}

	itemID := chi.URLParam(r, "id")
	if itemID == "" || len(itemID) > 36 {
		writeJSON(w, http.StatusNotFound, errorResponse("Item not found"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	item, err := h.service.Update(r.Context(), userID, itemID, req)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse("Item not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("Server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.ItemResponse{Success: true, Items: item})
}

// HandleDeleteItem handles DELETE /api/items/{id} requests. On a zero-row
// delete it short-circuits with 404; exactly one response is ever written.
func (h *ItemHandler) HandleDeleteItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Authentication required"))
		return
	}

	itemID := chi.URLParam(r, "id")
	if itemID == "" || len(itemID) > 36 {
		writeJSON(w, http.StatusNotFound, errorResponse("Item not found"))
		return
	}

	if err := h.service.Delete(r.Context(), userID, itemID); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse("Item not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("Server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Success: true, Message: "Item deleted"})
}
