// Package http contains utility functions for request and response handling.
package http

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
)

type ErrorCode int

const (
	ErrorCodeInvalidRequestBody ErrorCode = 1
	ErrorCodeMissingParameter             = 2
	ErrorCodeUnauthorized                 = 3
	ErrorCodeUnknownEvent                 = 4
	ErrorCodeSensitiveProperty            = 5
	ErrorCodeNotFound                     = 6
	ErrorCodeNotAllowed                   = 7
	ErrorCodeFailedToQuery                = 8
)

// JsonError writes an Error to the ResponseWriter with the provided information.
func JsonError(w http.ResponseWriter, responseCode int, code ErrorCode, msg string) {
	type ErrorResponse struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(responseCode)

	err := json.NewEncoder(w).Encode(ErrorResponse{Code: code, Message: msg})
	if err != nil {
		log.Printf("failed to encode response: %s", err.Error())
	}
}

// JsonSuccess writes a success response to the ResponseWriter.
func JsonSuccess(w http.ResponseWriter) {
	type SuccessResponse struct {
		Success bool `json:"success"`
	}

	err := JsonEncode(w, SuccessResponse{Success: true})
	if err != nil {
		log.Printf("failed to encode response: %s", err.Error())
	}
}

// JsonEncode marshals an interface and writes it to the response.
func JsonEncode(w http.ResponseWriter, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(v)
}

// GetInt returns an int from url values, with a default if absent or invalid.
func GetInt(values url.Values, key string, defaultValue int) int {
	str := values.Get(key)
	if str == "" {
		return defaultValue
	}

	val, err := strconv.Atoi(str)
	if err != nil {
		return defaultValue
	}

	return val
}

// NotFoundHandler handles requests for unknown routes.
func NotFoundHandler(w http.ResponseWriter, _ *http.Request) {
	JsonError(w, http.StatusNotFound, ErrorCodeNotFound, "not found")
}

// NotAllowedHandler handles requests with unsupported methods.
func NotAllowedHandler(w http.ResponseWriter, _ *http.Request) {
	JsonError(w, http.StatusMethodNotAllowed, ErrorCodeNotAllowed, "method not allowed")
}
