package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"roadservice/internal/apperror"
	"roadservice/internal/services/resource"
)

// Error codes carried in ErrorResponse.Code.
const (
	CodeNotFound            = 1000
	CodeBadRequest          = 1001
	CodeInternalServerError = 1002
	CodeTooManyRequests     = 1003
)

// ErrorResponse is the body of every failed API call. Details is always
// present, empty when there is nothing to add.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Details string `json:"details"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

// writeError maps err onto a status and error body. Internal errors are
// logged with their cause and reported without details.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Message: "Resource not found",
			Code:    CodeNotFound,
			Details: apperror.Details(err),
		})
	case errors.Is(err, apperror.ErrBadRequest):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Message: "Bad Request",
			Code:    CodeBadRequest,
			Details: apperror.Details(err),
		})
	default:
		log.Error().
			Err(err).
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Message: "Internal Server Error",
			Code:    CodeInternalServerError,
		})
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.BadRequest("malformed JSON body: %v", err)
	}
	return nil
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("invalid id %q", raw)
	}
	return id, nil
}

// queryID parses an optional id filter; a missing parameter yields nil.
func queryID(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperror.BadRequest("%s must be an integer, got %q", name, raw)
	}
	return &id, nil
}

// parseListRequest reads sort, page and size. Absent parameters keep
// their defaults; range checks happen in the service.
func parseListRequest(r *http.Request) (resource.ListRequest, error) {
	req := resource.DefaultListRequest()
	q := r.URL.Query()

	if v := q.Get("sort"); v != "" {
		req.Sort = v
	}
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, apperror.BadRequest("page must be an integer, got %q", v)
		}
		req.Page = n
	}
	if v := q.Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, apperror.BadRequest("size must be an integer, got %q", v)
		}
		req.Size = n
	}
	return req, nil
}

// The CRUD handlers below are shared by every resource; only listing
// differs per entity.

func getResource[T any](svc *resource.Service[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		out, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func createResource[T any](svc *resource.Service[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in T
		if err := decodeJSON(r, &in); err != nil {
			writeError(w, r, err)
			return
		}
		out, err := svc.Create(r.Context(), &in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, out)
	}
}

// updateResource answers 201 on success, matching create.
func updateResource[T any](svc *resource.Service[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		var in T
		if err := decodeJSON(r, &in); err != nil {
			writeError(w, r, err)
			return
		}
		out, err := svc.Update(r.Context(), id, &in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, out)
	}
}

func deleteResource[T any](svc *resource.Service[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
