package api

import (
	"encoding/json"
	"net/http"
)

const (
	ErrCodeInvalidRequest     = "INVALID_REQUEST"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeMissingToken       = "MISSING_TOKEN"
	ErrCodeMalformedHeader    = "MALFORMED_AUTH_HEADER"
	ErrCodeInvalidToken       = "INVALID_TOKEN"
	ErrCodeNotOwner           = "NOT_OWNER"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeDuplicate          = "DUPLICATE"
	ErrCodeSearchUnavailable  = "SEARCH_UNAVAILABLE"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// ErrorResponse keeps the msg shape the mobile client reads while carrying a
// machine-distinguishable code alongside it.
type ErrorResponse struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

type MessageResponse struct {
	Msg string `json:"msg"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Code: code,
		Msg:  msg,
	})
}

func badRequest(w http.ResponseWriter, code, msg string) {
	writeError(w, http.StatusBadRequest, code, msg)
}

func unauthorized(w http.ResponseWriter, code, msg string) {
	writeError(w, http.StatusUnauthorized, code, msg)
}

func notFound(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusNotFound, ErrCodeNotFound, msg)
}

func internalError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, ErrCodeInternal, "An internal error occurred")
}
