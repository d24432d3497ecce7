package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/md-rashed-zaman/bookinglite/internal/model"
	"github.com/md-rashed-zaman/bookinglite/internal/storage"
)

type BusinessHandler struct {
	businesses storage.BusinessStore
}

func NewBusinessHandler(businesses storage.BusinessStore) *BusinessHandler {
	return &BusinessHandler{businesses: businesses}
}

func (h *BusinessHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := strings.TrimSpace(r.URL.Query().Get("customer_id"))
	businesses, err := h.businesses.List(r.Context(), ownerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list businesses")
		return
	}
	if businesses == nil {
		businesses = []model.Business{}
	}
	writeJSON(w, http.StatusOK, businesses)
}

func (h *BusinessHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OwnerID  string `json:"customer_id"`
		Name     string `json:"name"`
		Image    string `json:"image"`
		Category string `json:"category"`
		Address  string `json:"address"`
		Phone    string `json:"phone"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.OwnerID = strings.TrimSpace(req.OwnerID)
	req.Image = strings.TrimSpace(req.Image)
	if req.Name == "" || req.OwnerID == "" || req.Image == "" {
		writeError(w, http.StatusBadRequest, "Name, customer ID and image are required")
		return
	}

	exists, err := h.businesses.NameExists(r.Context(), req.Name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to lookup business")
		return
	}
	if exists {
		writeError(w, http.StatusConflict, "Business already exists")
		return
	}

	business := model.Business{
		ID:        uuid.NewString(),
		OwnerID:   req.OwnerID,
		Name:      req.Name,
		Image:     req.Image,
		Category:  req.Category,
		Address:   req.Address,
		Phone:     req.Phone,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.businesses.Create(r.Context(), business); err != nil {
		if storage.IsConflict(err) {
			writeError(w, http.StatusConflict, "Business already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create business")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message":     "Business created successfully",
		"business_id": business.ID,
	})
}

func (h *BusinessHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid business ID")
		return
	}

	var payload map[string]any
	if !decodeJSON(w, r, &payload) {
		return
	}
	fields := stringFields(payload, "name", "image", "category", "address", "phone")

	if err := h.businesses.Update(r.Context(), id, fields); err != nil {
		if storage.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Business not found")
			return
		}
		if storage.IsConflict(err) {
			writeError(w, http.StatusConflict, "Business already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update business")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Business updated successfully"})
}

func (h *BusinessHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid business ID")
		return
	}

	if err := h.businesses.Delete(r.Context(), id); err != nil {
		if storage.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Business not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete business")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Business deleted successfully"})
}
