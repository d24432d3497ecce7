package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/md-rashed-zaman/bookinglite/internal/storage"
)

type UserHandler struct {
	accounts storage.AccountStore
}

func NewUserHandler(accounts storage.AccountStore) *UserHandler {
	return &UserHandler{accounts: accounts}
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	account, err := h.accounts.GetByID(r.Context(), id)
	if err != nil {
		if storage.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to lookup user")
		return
	}
	writeJSON(w, http.StatusOK, account)
}

// Update merges only the profile fields. Credential fields such as the
// password hash cannot be overwritten here.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var payload map[string]any
	if !decodeJSON(w, r, &payload) {
		return
	}
	fields := stringFields(payload, "email", "name", "phone")

	if err := h.accounts.Update(r.Context(), id, fields); err != nil {
		if storage.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		if storage.IsConflict(err) {
			writeError(w, http.StatusConflict, "User already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User updated successfully"})
}
