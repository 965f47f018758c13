package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	request "presupuesto_svc/internal/adapter/http/dto/request"
	response "presupuesto_svc/internal/adapter/http/dto/response"
	"presupuesto_svc/internal/usecase"
	"presupuesto_svc/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidMaterializePayload = pkg.NewDomainErrorSimple("INVALID_MATERIALIZE_INPUT", "Invalid materialization payload", http.StatusBadRequest)

// MaterializeHandler exposes the materialization engine over HTTP. It is one
// of three equivalent triggers (HTTP, queue consumer, backfill CLI); the
// engine's idempotency is what keeps them from stepping on each other.

type MaterializeHandler struct {
	usecase usecase.IMaterializerUseCase
}

func NewMaterializeHandler(uc usecase.IMaterializerUseCase) *MaterializeHandler {
	return &MaterializeHandler{usecase: uc}
}

// Materialize runs the full pipeline (rubros then allocations) for one baseline.
//
// @Summary      Materialize a baseline into rubros and monthly allocations
// @Tags         materializer
// @Param        baseline_id          path   string true  "Baseline id"
// @Param        dry_run              query  bool   false "Compute without writing"
// @Param        force_rewrite_zeros  query  bool   false "Overwrite still-zero allocations"
// @Success      200 {object} response.MaterializationRunResponse
// @Router       /baselines/{baseline_id}/materialize [post]
func (h *MaterializeHandler) Materialize(c *gin.Context) {
	payload, ok := h.bindRequest(c)
	if !ok {
		return
	}

	result, err := h.usecase.MaterializeByID(c.Request.Context(), c.Param("baseline_id"), payload.ResolveProjectID(), usecase.MaterializeOptions{
		DryRun:            payload.DryRun,
		ForceRewriteZeros: payload.ForceRewriteZeros,
	})
	if err != nil {
		appErr := mapMaterializeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRunResult(result))
}

// MaterializeRubros runs only the rubro half of the pipeline.
//
// @Summary      Materialize only the canonical rubros of a baseline
// @Tags         materializer
// @Param        baseline_id path  string true  "Baseline id"
// @Param        dry_run     query bool   false "Compute without writing"
// @Success      200 {object} response.MaterializationRunResponse
// @Router       /baselines/{baseline_id}/materialize/rubros [post]
func (h *MaterializeHandler) MaterializeRubros(c *gin.Context) {
	payload, ok := h.bindRequest(c)
	if !ok {
		return
	}

	result, err := h.usecase.MaterializeByID(c.Request.Context(), c.Param("baseline_id"), payload.ResolveProjectID(), usecase.MaterializeOptions{
		DryRun: payload.DryRun,
	})
	if err != nil {
		appErr := mapMaterializeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRunResult(result))
}

func (h *MaterializeHandler) bindRequest(c *gin.Context) (request.MaterializeRequest, bool) {
	var payload request.MaterializeRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidMaterializePayload.HTTPStatus, errInvalidMaterializePayload.ToHTTPError())
		return payload, false
	}
	dryRun, _ := strconv.ParseBool(c.Query("dry_run"))
	force, _ := strconv.ParseBool(c.Query("force_rewrite_zeros"))
	return payload.MergeQueryFlags(dryRun, force), true
}

func mapMaterializeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBaselineID),
		errors.Is(err, usecase.ErrMissingProjectID),
		errors.Is(err, usecase.ErrBaselineIDAsProjectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBaselineNotFound):
		return pkg.NewDomainErrorSimple("BASELINE_NOT_FOUND", "Baseline not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBaselineWithoutEstimates):
		return pkg.NewDomainErrorSimple("BASELINE_WITHOUT_ESTIMATES", "Baseline has no estimates to materialize", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
