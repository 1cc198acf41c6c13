package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/mail"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/infocomm/inventory-backend/internal/repo"
	"github.com/infocomm/inventory-backend/internal/validation"
)

// validEmail accepts a bare RFC 5322 address, without display name.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) {
	out, err := json.Marshal(data)
	if err != nil {
		appLogger.Errorf(err, "failed to encode JSON response")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		appLogger.Errorf(err, "failed to write JSON response")
	}
}

// writeError maps service and repository errors to HTTP responses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var productInvalid *validation.ProductInformationInvalidError
	var alertInvalid *validation.AlertInformationInvalidError

	switch {
	case errors.As(err, &productInvalid):
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: productInvalid.Message})
	case errors.As(err, &alertInvalid):
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: alertInvalid.Message})
	case errors.Is(err, repo.ErrProductNotFound),
		errors.Is(err, repo.ErrAlertNotFound),
		errors.Is(err, repo.ErrUserNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, repo.ErrDuplicatedValueUnique):
		http.Error(w, "duplicated value", http.StatusConflict)
	default:
		appLogger.Errorf(err, "%s %s failed", r.Method, r.URL.Path)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// idParam parses the {id} URL parameter.
func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
