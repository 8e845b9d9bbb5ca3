package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/campusassist/collegebot/internal/dataset"
	"github.com/campusassist/collegebot/internal/observability"
)

// CollegesHandler serves the college catalog.
type CollegesHandler struct {
	logger *observability.Logger
	index  *dataset.Index
}

// NewCollegesHandler creates a new catalog handler.
func NewCollegesHandler(logger *observability.Logger, ix *dataset.Index) *CollegesHandler {
	return &CollegesHandler{logger: logger, index: ix}
}

// CollegeDTO is one catalog entry.
type CollegeDTO struct {
	Name           string `json:"name"`
	City           string `json:"city"`
	State          string `json:"state"`
	CoursesOffered string `json:"coursesOffered"`
	CourseFee      string `json:"courseFee"`
	Website        string `json:"website"`
}

// CollegesResponseDTO is the catalog listing response.
type CollegesResponseDTO struct {
	Count    int          `json:"count"`
	Colleges []CollegeDTO `json:"colleges"`
}

// List handles GET /colleges. The optional "location" query parameter
// restricts the listing to one city or state.
func (h *CollegesHandler) List(w http.ResponseWriter, r *http.Request) {
	recs := h.index.Records()
	if loc := r.URL.Query().Get("location"); loc != "" {
		recs = h.index.FilterByLocation(loc)
	}

	respDTO := CollegesResponseDTO{
		Count:    len(recs),
		Colleges: make([]CollegeDTO, 0, len(recs)),
	}
	for _, rec := range recs {
		respDTO.Colleges = append(respDTO.Colleges, CollegeDTO{
			Name:           rec.Name,
			City:           rec.City,
			State:          rec.State,
			CoursesOffered: rec.CoursesOffered,
			CourseFee:      rec.CourseFee,
			Website:        rec.Website,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(respDTO); err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode response")
	}
}
