// Package response implements the uniform JSON envelope returned by every
// endpoint: the payload itself on success, {"error": msg} on failure.
package response

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}

func Message(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusOK, map[string]string{"message": msg})
}

func Error(w http.ResponseWriter, msg string, status int) {
	JSON(w, status, map[string]string{"error": msg})
}
