package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/labstack/echo/v4"
)

// decodeJSONBody decodes a single JSON value from body into dst.
// An *echo.HTTPError raised by the body reader, such as the body limit, is returned unchanged.
// Any other returned error is safe to show to the client as a "field: message" detail.
func decodeJSONBody(body io.Reader, dst interface{}) error {
	dec := json.NewDecoder(body)

	if err := dec.Decode(dst); err != nil {
		var httpErr *echo.HTTPError
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError

		switch {
		case errors.As(err, &httpErr):
			return httpErr
		case errors.Is(err, io.EOF):
			return errors.New("body: request body is required")
		case errors.As(err, &syntaxErr):
			return fmt.Errorf("body: malformed JSON at position %d", syntaxErr.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body: malformed JSON")
		case errors.As(err, &typeErr):
			field := typeErr.Field
			if field == "" {
				field = "body"
			}
			return fmt.Errorf("%s: must be %s", field, jsonTypeName(typeErr.Type))
		default:
			return errors.New("body: malformed JSON")
		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return errors.New("body: must contain a single JSON object")
	}

	return nil
}

func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "an object"
	}
}
