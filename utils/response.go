package utils

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// ErrorDetails exposes the underlying error only in development; production
// responses keep internals out of the payload.
func ErrorDetails(err error) interface{} {
	if err == nil {
		return nil
	}
	if strings.ToLower(os.Getenv("ENV")) == "development" {
		return err.Error()
	}
	return nil
}
