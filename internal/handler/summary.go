package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/logger"
	"github.com/osse101/FactoryPlanner_Go/internal/productionline"
)

// SummaryInstanceRequest is one recipe instance of an ad-hoc summary.
// Omitted parameters default to 100% and one machine.
type SummaryInstanceRequest struct {
	RecipeID     string   `json:"recipe_id" validate:"required,recipe_id"`
	ClockSpeed   *float64 `json:"clock_speed,omitempty" validate:"omitempty,gt=0,lte=250"`
	MachineCount *int     `json:"machine_count,omitempty" validate:"omitempty,min=0"`
}

// SummaryRequest is the body of POST /summary
type SummaryRequest struct {
	Recipes []SummaryInstanceRequest `json:"recipes" validate:"required,min=1,max=500,dive"`
}

// HandleSummarize summarizes recipe instances that are not stored in a line
// @Summary Ad-hoc summary
// @Description Summarizes the given instances without storing them
// @Tags summary
// @Accept json
// @Produce json
// @Param request body SummaryRequest true "Instances to summarize"
// @Success 200 {object} production.LineSummary
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/summary [post]
func HandleSummarize(svc productionline.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SummaryRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Summarize"); err != nil {
			return
		}

		specs := make([]productionline.InstanceSpec, len(req.Recipes))
		for i, in := range req.Recipes {
			specs[i] = productionline.InstanceSpec{
				RecipeID:     in.RecipeID,
				ClockSpeed:   in.ClockSpeed,
				MachineCount: in.MachineCount,
			}
		}

		summary, err := svc.SummarizeInstances(r.Context(), specs)
		if err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgServiceCallFailed, "error", err, "instances", len(specs))
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, summary)
	}
}

// HandleExport returns every stored line in the persistence format
// @Summary Export production lines
// @Tags lines
// @Produce json
// @Success 200 {array} domain.ProductionLine
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/export [get]
func HandleExport(svc productionline.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lines, err := svc.ExportLines(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgServiceCallFailed, "error", err)
			respondServiceError(w, err)
			return
		}
		if lines == nil {
			lines = []domain.ProductionLine{}
		}
		respondJSON(w, http.StatusOK, lines)
	}
}

// HandleImport replaces every stored line
// @Summary Import production lines
// @Description Replaces all stored lines. Nothing is written if any record is invalid.
// @Tags lines
// @Accept json
// @Produce json
// @Param request body []domain.ProductionLine true "Lines in the persistence format"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/import [put]
func HandleImport(svc productionline.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var lines []domain.ProductionLine
		if err := decodeJSONBody(r, w, &lines, "Import"); err != nil {
			return
		}

		if err := svc.ImportLines(r.Context(), lines); err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgServiceCallFailed, "error", err, "lines", len(lines))
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: fmt.Sprintf(MsgLinesImportedFormat, len(lines))})
	}
}
