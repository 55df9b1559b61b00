package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-chi/render"
	"io"
	"net/http"
	"schooldekho/internal/lib/apperr"
	"strconv"
	"strings"
)

// DecodeJSON decodes the request body into v, reporting shape problems as
// validation errors that name the offending field.
func DecodeJSON(r *http.Request, v any) error {
	err := render.DecodeJSON(r.Body, v)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return apperr.Validation(field, fmt.Sprintf("must be of type %s", typeErr.Type))
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return apperr.Validation("body", "malformed JSON")
	case errors.Is(err, io.EOF):
		return apperr.Validation("body", "field required")
	default:
		return apperr.Validation("body", err.Error())
	}
}

// QueryInt parses an integer query parameter, returning def when it is absent.
func QueryInt(r *http.Request, key string, def int64) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.Validation(key, "value is not a valid integer")
	}
	return n, nil
}

// OptionalInt returns nil when the parameter is absent or blank.
func OptionalInt(r *http.Request, key string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperr.Validation(key, "value is not a valid integer")
	}
	return &n, nil
}

// OptionalString returns nil when the parameter is absent or blank. A
// non-blank value is returned as sent.
func OptionalString(r *http.Request, key string) *string {
	raw := r.URL.Query().Get(key)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return &raw
}
