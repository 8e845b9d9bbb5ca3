// Package handlers provides HTTP handlers for the college bot API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/campusassist/collegebot/internal/dataset"
	"github.com/campusassist/collegebot/internal/nlp"
	"github.com/campusassist/collegebot/internal/observability"
	"github.com/campusassist/collegebot/internal/query"
)

// QueryHandler handles chat query requests.
type QueryHandler struct {
	logger *observability.Logger
	router *query.Router
	index  *dataset.Index
}

// NewQueryHandler creates a new query handler.
func NewQueryHandler(logger *observability.Logger, router *query.Router, ix *dataset.Index) *QueryHandler {
	return &QueryHandler{
		logger: logger,
		router: router,
		index:  ix,
	}
}

// QueryRequestDTO represents the API request for a chat query.
type QueryRequestDTO struct {
	Question string `json:"question"`
}

// EntitiesDTO represents the entities extracted from the question.
type EntitiesDTO struct {
	Colleges  []string `json:"colleges,omitempty"`
	Locations []string `json:"locations,omitempty"`
	Course    string   `json:"course,omitempty"`
	FeeMin    int      `json:"feeMin,omitempty"`
	FeeMax    int      `json:"feeMax,omitempty"`
}

// QueryResponseDTO represents the API response.
type QueryResponseDTO struct {
	ID          string      `json:"id"`
	Question    string      `json:"question"`
	Intent      string      `json:"intent"`
	Answer      string      `json:"answer"`
	Entities    EntitiesDTO `json:"entities"`
	Suggestions []string    `json:"suggestions,omitempty"`
	CacheHit    bool        `json:"cacheHit"`
	LatencyMs   int64       `json:"latencyMs"`
}

// Query handles POST /chat/query.
func (h *QueryHandler) Query(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var reqDTO QueryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if reqDTO.Question == "" {
		h.writeError(w, http.StatusBadRequest, "question is required", "")
		return
	}

	resp, err := h.router.Answer(ctx, reqDTO.Question)
	if err != nil {
		h.logger.Error().Err(err).Msg("Query failed")
		h.writeError(w, http.StatusInternalServerError, "query failed", err.Error())
		return
	}

	respDTO := QueryResponseDTO{
		ID:       resp.ID.String(),
		Question: resp.Question,
		Intent:   string(resp.Intent),
		Answer:   resp.Text,
		Entities: EntitiesDTO{
			Colleges:  resp.Entities.Colleges,
			Locations: resp.Entities.Locations,
			Course:    resp.Entities.Course,
			FeeMin:    resp.Entities.FeeMin,
			FeeMax:    resp.Entities.FeeMax,
		},
		CacheHit:  resp.CacheHit,
		LatencyMs: resp.LatencyMs,
	}

	// When nothing matched, offer close college names so the client can
	// prompt the user toward a rephrasing.
	if resp.Text == query.Fallback {
		respDTO.Suggestions = nlp.Suggest(reqDTO.Question, h.index.CollegeNames(), 3)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(respDTO); err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func (h *QueryHandler) writeError(w http.ResponseWriter, status int, message, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := map[string]string{
		"error":   message,
		"message": message,
	}
	if detail != "" {
		resp["detail"] = detail
	}
	json.NewEncoder(w).Encode(resp)
}
