package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

func DecodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidationErrorResponse lists the violating field paths and the rule each
// one broke.
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func WriteValidationError(w http.ResponseWriter, err error) error {
	res := ValidationErrorResponse{
		Message: "validation failed",
		Fields:  make(map[string]string),
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			res.Fields[fieldPath(fe.Namespace())] = ruleName(fe.Tag())
		}
	}

	return WriteJSON(w, res, http.StatusBadRequest)
}

// WriteDecodeError maps a JSON decoding failure to 400. A number that does
// not fit the unsigned field it targets is reported as an out_of_range
// violation on that field; anything else is a malformed request.
func WriteDecodeError(w http.ResponseWriter, err error) error {
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" && isUnsigned(ute.Type.Kind()) {
		return WriteJSON(w, ValidationErrorResponse{
			Message: "validation failed",
			Fields:  map[string]string{ute.Field: "out_of_range"},
		}, http.StatusBadRequest)
	}
	return WriteError(w, "malformed request body", http.StatusBadRequest)
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, message string, code int) error {
	return WriteJSON(w, ErrorResponse{Message: message}, code)
}

// fieldPath strips the root struct segment from a validator namespace, so
// "Order.delivery.email" becomes "delivery.email".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func ruleName(tag string) string {
	switch tag {
	case "required":
		return "missing_field"
	case "min":
		return "too_short"
	case "email":
		return "invalid_email"
	case "gte", "lte":
		return "out_of_range"
	default:
		return tag
	}
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}
