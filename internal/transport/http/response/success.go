package response

import (
	"encoding/json"
	"net/http"
)

// Meta is embedded by every success payload so each body carries the
// success flag and a human-readable message.
type Meta struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func OKMeta(message string) Meta {
	return Meta{Success: true, Message: message}
}

// WriteJSON writes v as JSON with the given status code.
// It sets Content-Type to application/json; charset=utf-8 if not already set.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a 200 response.
func OK(w http.ResponseWriter, v any) {
	WriteJSON(w, http.StatusOK, v)
}

// Created writes a 201 response.
func Created(w http.ResponseWriter, v any) {
	WriteJSON(w, http.StatusCreated, v)
}
