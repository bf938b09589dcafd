package httpapi

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every API error. Fields carries per-field
// detail when the error is a validation failure: DTO `Ok()` tag maps and the
// import controller's detected-mimetype hint both travel here.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, code, message string, fields map[string]string) error {
	return WriteJSON(w, status, &ErrorResponse{
		Code:    code,
		Message: message,
		Fields:  fields,
	})
}
