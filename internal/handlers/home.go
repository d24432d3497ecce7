package handlers

import "net/http"

func Home(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the Booking System API!",
	})
}
