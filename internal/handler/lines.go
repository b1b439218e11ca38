package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/logger"
	"github.com/osse101/FactoryPlanner_Go/internal/productionline"
)

// CreateLineRequest is the body of POST /lines
type CreateLineRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// RenameLineRequest is the body of PATCH /lines/{slug}
type RenameLineRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// AddRecipeRequest is the body of POST /lines/{slug}/recipes
type AddRecipeRequest struct {
	RecipeID string `json:"recipe_id" validate:"required,recipe_id"`
}

// UpdateRecipeRequest is the body of PATCH /lines/{slug}/recipes/{index}.
// Omitted fields keep their value.
type UpdateRecipeRequest struct {
	ClockSpeed   *float64 `json:"clock_speed,omitempty" validate:"omitempty,gt=0,lte=250"`
	MachineCount *int     `json:"machine_count,omitempty" validate:"omitempty,min=0"`
}

// MoveRecipeRequest is the body of POST /lines/{slug}/recipes/{index}/move
type MoveRecipeRequest struct {
	To *int `json:"to" validate:"required,min=0"`
}

// LineHandler handles production line HTTP requests
type LineHandler struct {
	svc productionline.Service
}

// NewLineHandler creates a new production line handler
func NewLineHandler(svc productionline.Service) *LineHandler {
	return &LineHandler{svc: svc}
}

func (h *LineHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context()).Warn(LogMsgServiceCallFailed,
		"error", err, "method", r.Method, "path", r.URL.Path)
	respondServiceError(w, err)
}

// List returns every production line
// @Summary List production lines
// @Tags lines
// @Produce json
// @Success 200 {array} domain.LineInfo
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/lines [get]
func (h *LineHandler) List(w http.ResponseWriter, r *http.Request) {
	infos, err := h.svc.ListLines(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if infos == nil {
		infos = []domain.LineInfo{}
	}
	respondJSON(w, http.StatusOK, infos)
}

// Create stores a new empty production line
// @Summary Create production line
// @Description The slug is derived from the name; taken slugs get a numeric suffix
// @Tags lines
// @Accept json
// @Produce json
// @Param request body CreateLineRequest true "Line name"
// @Success 201 {object} domain.ProductionLine
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/lines [post]
func (h *LineHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateLineRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create line"); err != nil {
		return
	}

	line, err := h.svc.CreateLine(r.Context(), req.Name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, line)
}

// Get returns a production line with its recipe instances
// @Summary Get production line
// @Tags lines
// @Produce json
// @Param slug path string true "Line slug"
// @Success 200 {object} domain.ProductionLine
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/lines/{slug} [get]
func (h *LineHandler) Get(w http.ResponseWriter, r *http.Request) {
	line, err := h.svc.GetLine(r.Context(), chi.URLParam(r, ParamSlug))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, line)
}

// Rename changes the display name of a line; its slug is unchanged
// @Summary Rename production line
// @Tags lines
// @Accept json
// @Produce json
// @Param slug path string true "Line slug"
// @Param request body RenameLineRequest true "New name"
// @Success 200 {object} domain.ProductionLine
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/lines/{slug} [patch]
func (h *LineHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req RenameLineRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Rename line"); err != nil {
		return
	}

	line, err := h.svc.RenameLine(r.Context(), chi.URLParam(r, ParamSlug), req.Name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, line)
}

// Delete removes a production line
// @Summary Delete production line
// @Tags lines
// @Produce json
// @Param slug path string true "Line slug"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/lines/{slug} [delete]
func (h *LineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteLine(r.Context(), chi.URLParam(r, ParamSlug)); err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLineDeletedSuccess})
}

// AddRecipe appends a recipe instance at 100% clock speed with one machine
// @Summary Add recipe to line
// @Tags lines
// @Accept json
// @Produce json
// @Param slug path string true "Line slug"
// @Param request body AddRecipeRequest true "Recipe to add"
// @Success 201 {object} domain.ProductionLine
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/lines/{slug}/recipes [post]
func (h *LineHandler) AddRecipe(w http.ResponseWriter, r *http.Request) {
	var req AddRecipeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add recipe"); err != nil {
		return
	}

	line, err := h.svc.AddRecipe(r.Context(), chi.URLParam(r, ParamSlug), req.RecipeID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, line)
}

// UpdateRecipe changes the clock speed and/or machine count of an instance
// @Summary Update recipe instance
// @Tags lines
// @Accept json
// @Produce json
// @Param slug path string true "Line slug"
// @Param index path int true "Instance index"
// @Param request body UpdateRecipeRequest true "Fields to change"
// @Success 200 {object} domain.ProductionLine
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/lines/{slug}/recipes/{index} [patch]
func (h *LineHandler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(r, w)
	if !ok {
		return
	}

	var req UpdateRecipeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update recipe"); err != nil {
		return
	}

	line, err := h.svc.UpdateRecipe(r.Context(), chi.URLParam(r, ParamSlug), index, req.ClockSpeed, req.MachineCount)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, line)
}

// RemoveRecipe deletes a recipe instance
// @Summary Remove recipe instance
// @Tags lines
// @Produce json
// @Param slug path string true "Line slug"
// @Param index path int true "Instance index"
// @Success 200 {object} domain.ProductionLine
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/lines/{slug}/recipes/{index} [delete]
func (h *LineHandler) RemoveRecipe(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(r, w)
	if !ok {
		return
	}

	line, err := h.svc.RemoveRecipe(r.Context(), chi.URLParam(r, ParamSlug), index)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, line)
}

// MoveRecipe reorders a recipe instance
// @Summary Move recipe instance
// @Tags lines
// @Accept json
// @Produce json
// @Param slug path string true "Line slug"
// @Param index path int true "Current instance index"
// @Param request body MoveRecipeRequest true "Target index"
// @Success 200 {object} domain.ProductionLine
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/lines/{slug}/recipes/{index}/move [post]
func (h *LineHandler) MoveRecipe(w http.ResponseWriter, r *http.Request) {
	from, ok := pathIndex(r, w)
	if !ok {
		return
	}

	var req MoveRecipeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Move recipe"); err != nil {
		return
	}

	line, err := h.svc.MoveRecipe(r.Context(), chi.URLParam(r, ParamSlug), from, *req.To)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, line)
}

// Summary returns item flows and power figures of a line
// @Summary Summarize production line
// @Tags summary
// @Produce json
// @Param slug path string true "Line slug"
// @Success 200 {object} production.LineSummary
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/lines/{slug}/summary [get]
func (h *LineHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summarize(r.Context(), chi.URLParam(r, ParamSlug))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
