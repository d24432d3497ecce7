package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/md-rashed-zaman/bookinglite/internal/events"
	"github.com/md-rashed-zaman/bookinglite/internal/model"
	"github.com/md-rashed-zaman/bookinglite/internal/storage"
)

type AppointmentHandler struct {
	appointments storage.AppointmentStore
	customers    storage.CustomerStore
	events       *events.Publisher
}

func NewAppointmentHandler(appointments storage.AppointmentStore, customers storage.CustomerStore, publisher *events.Publisher) *AppointmentHandler {
	return &AppointmentHandler{
		appointments: appointments,
		customers:    customers,
		events:       publisher,
	}
}

// List returns scheduled appointments by default; type=history selects
// completed ones. customer_id optionally narrows to one customer.
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	status := model.StatusScheduled
	if r.URL.Query().Get("type") == "history" {
		status = model.StatusCompleted
	}
	customerID := strings.TrimSpace(r.URL.Query().Get("customer_id"))

	appts, err := h.appointments.List(r.Context(), status, customerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list appointments")
		return
	}
	if appts == nil {
		appts = []model.Appointment{}
	}
	writeJSON(w, http.StatusOK, appts)
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerID string `json:"customer_id"`
		Date       string `json:"date"`
		Time       string `json:"time"`
		Category   string `json:"category"`
		Location   string `json:"location"`
		Status     string `json:"status"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	req.CustomerID = strings.TrimSpace(req.CustomerID)
	req.Date = strings.TrimSpace(req.Date)
	if req.CustomerID == "" || req.Date == "" {
		writeError(w, http.StatusBadRequest, "Customer ID and date are required")
		return
	}
	if _, err := uuid.Parse(req.CustomerID); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	// The referenced customer must exist. Deleting it later does not
	// cascade to appointments already created.
	if _, err := h.customers.GetByID(r.Context(), req.CustomerID); err != nil {
		if storage.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Customer not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to lookup customer")
		return
	}

	status := req.Status
	if status == "" {
		status = model.StatusScheduled
	}
	appt := model.Appointment{
		ID:         uuid.NewString(),
		CustomerID: req.CustomerID,
		Date:       req.Date,
		Time:       req.Time,
		Category:   req.Category,
		Location:   req.Location,
		Status:     status,
		CreatedAt:  time.Now().UTC(),
	}
	if err := h.appointments.Create(r.Context(), appt); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create appointment")
		return
	}

	h.events.Publish(r.Context(), events.AppointmentCreated, appt.ID, map[string]any{
		"appointment_id": appt.ID,
		"customer_id":    appt.CustomerID,
		"date":           appt.Date,
		"time":           appt.Time,
		"status":         appt.Status,
		"created_at":     appt.CreatedAt.Format(time.RFC3339),
	})

	writeJSON(w, http.StatusCreated, map[string]string{
		"message":        "Appointment added successfully",
		"appointment_id": appt.ID,
	})
}

func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	var payload map[string]any
	if !decodeJSON(w, r, &payload) {
		return
	}
	fields := stringFields(payload, "date", "time", "category", "location", "status")

	if err := h.appointments.Update(r.Context(), id, fields); err != nil {
		if storage.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Appointment not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update appointment")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Appointment updated successfully"})
}

// Complete marks an appointment completed. It makes no prior-state check,
// so completing twice is an idempotent success.
func (h *AppointmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	if err := h.appointments.Complete(r.Context(), id); err != nil {
		if storage.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Appointment not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to complete appointment")
		return
	}

	h.events.Publish(r.Context(), events.AppointmentCompleted, id, map[string]any{
		"appointment_id": id,
		"status":         model.StatusCompleted,
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": "Appointment completed successfully"})
}

func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	if err := h.appointments.Delete(r.Context(), id); err != nil {
		if storage.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Appointment not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete appointment")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Appointment deleted successfully"})
}
