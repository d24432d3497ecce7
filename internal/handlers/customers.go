package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/md-rashed-zaman/bookinglite/internal/model"
	"github.com/md-rashed-zaman/bookinglite/internal/storage"
)

type CustomerHandler struct {
	customers storage.CustomerStore
}

func NewCustomerHandler(customers storage.CustomerStore) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := strings.TrimSpace(r.URL.Query().Get("customer_id"))
	customers, err := h.customers.List(r.Context(), ownerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list customers")
		return
	}
	if customers == nil {
		customers = []model.Customer{}
	}
	writeJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OwnerID string `json:"customer_id"`
		Name    string `json:"name"`
		Phone   string `json:"phone"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Name == "" || req.Phone == "" {
		writeError(w, http.StatusBadRequest, "Name and phone are required")
		return
	}

	exists, err := h.customers.PhoneExists(r.Context(), req.Phone)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to lookup customer")
		return
	}
	if exists {
		writeError(w, http.StatusConflict, "Customer already exists")
		return
	}

	customer := model.Customer{
		ID:        uuid.NewString(),
		OwnerID:   strings.TrimSpace(req.OwnerID),
		Name:      req.Name,
		Phone:     req.Phone,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.customers.Create(r.Context(), customer); err != nil {
		if storage.IsConflict(err) {
			writeError(w, http.StatusConflict, "Customer already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create customer")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message":     "Customer added successfully",
		"customer_id": customer.ID,
	})
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	var payload map[string]any
	if !decodeJSON(w, r, &payload) {
		return
	}
	fields := stringFields(payload, "name", "phone", "time")

	if err := h.customers.Update(r.Context(), id, fields); err != nil {
		if storage.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Customer not found")
			return
		}
		if storage.IsConflict(err) {
			writeError(w, http.StatusConflict, "Customer already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update customer")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Customer updated successfully"})
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	if err := h.customers.Delete(r.Context(), id); err != nil {
		if storage.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Customer not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete customer")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Customer deleted successfully"})
}
