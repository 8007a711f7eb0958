package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/devflix-admin/internal/adapters/http/dto"
	"github.com/jsamuelsen11/devflix-admin/internal/domain"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/logging"
)

// maxBodyBytes bounds category request bodies; a valid one is well under 1 KiB.
const maxBodyBytes = 64 << 10

// parseID reads the UUID path parameter param.
func parseID(r *http.Request, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(param, param+" must be a valid UUID")
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}

// decodeJSONBody decodes a single JSON object from the request body into
// dst. On failure it writes the problem response and returns false: 413 for
// an oversized body, otherwise 400 naming the offending field when the JSON
// was well formed but a value had the wrong type.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	err := dec.Decode(dst)
	if err == nil {
		err = requireEOF(dec)
	}
	if err == nil {
		return true
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		dto.WriteProblem(w, r, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit))
		return false
	}

	field, msg := "body", "invalid JSON"
	var (
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)
	switch {
	case errors.Is(err, io.EOF):
		msg = "request body is required"
	case errors.Is(err, io.ErrUnexpectedEOF):
		msg = "malformed JSON: unexpected end of input"
	case errors.As(err, &syntaxErr):
		msg = fmt.Sprintf("malformed JSON at byte %d", syntaxErr.Offset)
	case errors.As(err, &typeErr) && typeErr.Field != "":
		field, msg = typeErr.Field, "must be a "+jsonKind(typeErr.Type)
	case errors.Is(err, errTrailingData):
		msg = "request body must hold a single JSON object"
	}

	dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{field: msg}})
	return false
}

var errTrailingData = errors.New("trailing data after JSON object")

// requireEOF reports errTrailingData unless dec has nothing left but
// whitespace. Stray closing delimiters count as trailing data.
func requireEOF(dec *json.Decoder) error {
	var extra json.RawMessage
	err := dec.Decode(&extra)
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case errors.As(err, &maxErr):
		return err
	default:
		return errTrailingData
	}
}

// jsonKind names the JSON type a Go field expects.
func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}
