package handlers

import (
	"net/http"

	"pipeline-backend/application/services"
	"pipeline-backend/domain/graph"
	"pipeline-backend/pkg/common"
	apperrors "pipeline-backend/pkg/errors"
	"pipeline-backend/pkg/utils"

	"go.uber.org/zap"
)

// PipelineHandler handles pipeline analysis HTTP requests
type PipelineHandler struct {
	service      *services.PipelineService
	logger       *zap.Logger
	maxBodyBytes int64
}

// NewPipelineHandler creates a new pipeline handler
func NewPipelineHandler(service *services.PipelineService, logger *zap.Logger, maxBodyBytes int64) *PipelineHandler {
	return &PipelineHandler{
		service:      service,
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
	}
}

// NodePayload is one node of a submitted pipeline. Position and Data are
// presentation metadata: the boundary checks they are present and shaped
// correctly, then ignores them.
type NodePayload struct {
	ID       string                 `json:"id" validate:"required"`
	Type     string                 `json:"type" validate:"required"`
	Position map[string]float64     `json:"position" validate:"required"`
	Data     map[string]interface{} `json:"data" validate:"required"`
}

// EdgePayload is one directed connection of a submitted pipeline. The
// handles are optional sub-identifiers; whether they are present or not has
// no effect on graph construction, hence the pointers.
type EdgePayload struct {
	ID           string  `json:"id" validate:"required"`
	Source       string  `json:"source" validate:"required"`
	Target       string  `json:"target" validate:"required"`
	SourceHandle *string `json:"sourceHandle,omitempty"`
	TargetHandle *string `json:"targetHandle,omitempty"`
}

// ParsePipelineRequest is the request body for POST /pipelines/parse. Both
// collections must be present but may be empty.
type ParsePipelineRequest struct {
	Nodes []NodePayload `json:"nodes" validate:"required,dive"`
	Edges []EdgePayload `json:"edges" validate:"required,dive"`
}

// ParsePipeline handles POST /pipelines/parse
func (h *PipelineHandler) ParsePipeline(w http.ResponseWriter, r *http.Request) {
	var req ParsePipelineRequest
	if err := common.ParseJSONBody(w, r, &req, h.maxBodyBytes); err != nil {
		common.RespondAppError(w, apperrors.NewValidationError("Invalid request body: "+err.Error()).WithCause(err))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, apperrors.NewValidationError("Validation error: "+err.Error()).WithCause(err))
		return
	}

	h.logger.Debug("Received pipeline",
		zap.Int("nodes", len(req.Nodes)),
		zap.Int("edges", len(req.Edges)),
		zap.String("requestID", common.ExtractRequestID(r)),
	)

	nodeIDs := make([]string, 0, len(req.Nodes))
	for _, n := range req.Nodes {
		nodeIDs = append(nodeIDs, n.ID)
	}

	edges := make([]graph.Edge, 0, len(req.Edges))
	for _, e := range req.Edges {
		edges = append(edges, graph.Edge{Source: e.Source, Target: e.Target})
	}

	result := h.service.Analyze(r.Context(), nodeIDs, edges)

	// The analysis triple is the response body, verbatim.
	common.RespondJSON(w, http.StatusOK, result)
}
