package discovery

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/fabric-migration-atlas/pkg/models/api"
	"github.com/de-tools/fabric-migration-atlas/pkg/models/domain"
	"github.com/de-tools/fabric-migration-atlas/pkg/services/discovery"
	"github.com/de-tools/fabric-migration-atlas/pkg/services/readiness"
	"github.com/rs/zerolog"
)

type Handler struct {
	explorer discovery.Explorer
}

func NewHandler(explorer discovery.Explorer) *Handler {
	return &Handler{explorer: explorer}
}

func (h *Handler) GetReadiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	snapshot, err := h.explorer.Discover(ctx)
	if err != nil {
		var fatal *discovery.FatalError
		if errors.As(err, &fatal) {
			logger.Error().Err(err).Str("stage", fatal.Stage).Msg("discovery aborted")
		} else {
			logger.Error().Err(err).Msg("discovery failed")
		}
		http.Error(w, "discovery failed", http.StatusBadGateway)
		return
	}

	assessment := readiness.Classify(snapshot)
	writeJSON(w, logger, mapAssessment(snapshot, assessment))
}

func (h *Handler) ListCapacities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	snapshot, err := h.explorer.Discover(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("capacity listing failed")
		http.Error(w, "capacity listing failed", http.StatusBadGateway)
		return
	}

	response := make([]api.CapacityResponse, 0, len(snapshot.Capacities))
	for _, c := range snapshot.Capacities {
		response = append(response, api.CapacityResponse{
			ID:     c.ID,
			Name:   c.Name,
			SKU:    c.SKU,
			State:  c.State,
			Region: c.Region,
			Shared: c.IsShared(),
		})
	}
	writeJSON(w, logger, response)
}

func (h *Handler) ListWorkspaces(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	snapshot, err := h.explorer.Discover(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("workspace listing failed")
		http.Error(w, "workspace listing failed", http.StatusBadGateway)
		return
	}

	response := make([]api.WorkspaceResponse, 0, len(snapshot.Workspaces))
	for _, ws := range snapshot.Workspaces {
		response = append(response, api.WorkspaceResponse{
			ID:         ws.ID,
			Name:       ws.Name,
			State:      ws.State,
			CapacityID: ws.CapacityID,
		})
	}
	writeJSON(w, logger, response)
}

func mapAssessment(snapshot *domain.Snapshot, assessment domain.Assessment) api.AssessmentResponse {
	response := api.AssessmentResponse{
		Blockers:      mapFindings(assessment.Blockers),
		Warnings:      mapFindings(assessment.Warnings),
		Informational: mapFindings(assessment.Informational),
		Summary: api.SummaryResponse{
			Capacities:        assessment.Summary.Capacities,
			Workspaces:        assessment.Summary.Workspaces,
			Items:             assessment.Summary.Items,
			ResolvedModels:    assessment.Summary.ResolvedModels,
			SkippedDatasets:   assessment.Summary.SkippedDatasets,
			SkippedWorkspaces: assessment.Summary.SkippedWorkspaces,
			Blockers:          assessment.Summary.Blockers,
			Warnings:          assessment.Summary.Warnings,
			Informational:     assessment.Summary.Informational,
		},
	}
	for _, skip := range snapshot.SkippedDatasets {
		response.SkippedDatasets = append(response.SkippedDatasets, api.SkippedDatasetResponse{
			DatasetID:   skip.DatasetID,
			Name:        skip.Name,
			WorkspaceID: skip.WorkspaceID,
			Reason:      skip.Reason,
		})
	}
	return response
}

func mapFindings(findings []domain.Finding) []api.FindingResponse {
	mapped := make([]api.FindingResponse, 0, len(findings))
	for _, f := range findings {
		mapped = append(mapped, api.FindingResponse{
			Rule:           f.Rule,
			Severity:       f.Severity.String(),
			Description:    f.Description,
			Recommendation: f.Recommendation,
			Count:          f.Count,
			AffectedIDs:    f.AffectedIDs,
		})
	}
	return mapped
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
