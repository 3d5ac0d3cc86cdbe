// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/civiclab/townsquare/internal/metrics"
	"github.com/civiclab/townsquare/internal/models"
)

// createReportRequest is the POST /reports body.
type createReportRequest struct {
	Location       string `json:"location" validate:"required,min=3,max=200"`
	Category       string `json:"category" validate:"required,min=2,max=50"`
	Description    string `json:"description" validate:"required,min=5,max=2000"`
	AttachmentPath string `json:"attachment_path" validate:"max=500"`
}

// CreateReport stores a resident-submitted issue report.
//
// Method: POST
// Path: /api/v1/reports
func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	if !h.requireReports(w) {
		return
	}
	start := time.Now()

	var req createReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errCodeInvalidParameter, "Invalid JSON body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondJSON(w, http.StatusBadRequest, &models.APIResponse{
			Status:   "error",
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error:    apiErr,
		})
		return
	}

	report, err := h.reports.Add(models.IssueReport{
		Location:       req.Location,
		Category:       req.Category,
		Description:    req.Description,
		AttachmentPath: req.AttachmentPath,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, errCodeStorage, "Failed to store report", err)
		return
	}

	metrics.ReportsSubmitted.WithLabelValues(report.Category).Inc()

	respondJSON(w, http.StatusCreated, successResponse(report, start))
}

// ListReports returns all stored issue reports in submission order.
//
// Method: GET
// Path: /api/v1/reports
func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	if !h.requireReports(w) {
		return
	}
	start := time.Now()

	all, err := h.reports.List()
	if err != nil {
		respondError(w, http.StatusInternalServerError, errCodeStorage, "Failed to list reports", err)
		return
	}

	respondJSON(w, http.StatusOK, successResponse(models.ReportsResponse{
		Total:   len(all),
		Reports: all,
	}, start))
}
