package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/adisurya/fintrack/internal/finance"
	"github.com/adisurya/fintrack/internal/middleware"
	"github.com/adisurya/fintrack/internal/models"
)

// writeFinanceError maps engine errors onto transport status codes.
// Everything outside the known taxonomy surfaces as a generic 500.
func writeFinanceError(w http.ResponseWriter, err error) {
	var ve *finance.ValidationError
	switch {
	case errors.As(err, &ve):
		middleware.WriteError(w, http.StatusBadRequest, ve.Reason)
	case errors.Is(err, finance.ErrNotFound):
		middleware.WriteError(w, http.StatusNotFound, "Record not found")
	default:
		middleware.WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// handleList handles GET /api/finances
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	owner := middleware.GetUserID(r.Context())

	records, err := s.finances.List(r.Context(), owner)
	if err != nil {
		writeFinanceError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, records)
}

// handleCreate handles POST /api/finances
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	owner := middleware.GetUserID(r.Context())

	var in finance.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := s.finances.Create(r.Context(), owner, in)
	if err != nil {
		writeFinanceError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, rec)
}

// handleUpdate handles PUT /api/finances/{id}
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	owner := middleware.GetUserID(r.Context())
	id := r.PathValue("id")

	var patch finance.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := s.finances.Update(r.Context(), owner, id, patch)
	if err != nil {
		writeFinanceError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, rec)
}

// handleDelete handles DELETE /api/finances/{id}
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	owner := middleware.GetUserID(r.Context())
	id := r.PathValue("id")

	if err := s.finances.Delete(r.Context(), owner, id); err != nil {
		writeFinanceError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]string{"message": "Record deleted"})
}

// handleSummary handles GET /api/finances/summary
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	owner := middleware.GetUserID(r.Context())

	summary, err := s.finances.Summary(r.Context(), owner)
	if err != nil {
		writeFinanceError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, summary)
}

// handleFilter handles GET /api/finances/filter?type&month&year
func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	owner := middleware.GetUserID(r.Context())

	var f finance.Filter
	q := r.URL.Query()
	f.Type = models.RecordType(q.Get("type"))

	var err error
	if f.Month, err = intParam(q.Get("month")); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "month must be a number")
		return
	}
	if f.Year, err = intParam(q.Get("year")); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "year must be a number")
		return
	}

	records, err := s.finances.Filter(r.Context(), owner, f)
	if err != nil {
		writeFinanceError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, records)
}

// handleCategoryStats handles GET /api/finances/category-stats
func (s *Server) handleCategoryStats(w http.ResponseWriter, r *http.Request) {
	owner := middleware.GetUserID(r.Context())

	stats, err := s.finances.CategoryStats(r.Context(), owner)
	if err != nil {
		writeFinanceError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, stats)
}

// handleMonthlyStats handles GET /api/finances/monthly-stats?year
func (s *Server) handleMonthlyStats(w http.ResponseWriter, r *http.Request) {
	owner := middleware.GetUserID(r.Context())

	year, err := intParam(r.URL.Query().Get("year"))
	if err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "year must be a number")
		return
	}

	stats, err := s.finances.MonthlyStats(r.Context(), owner, year)
	if err != nil {
		writeFinanceError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, stats)
}

// intParam parses an optional numeric query parameter; empty means zero.
func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
