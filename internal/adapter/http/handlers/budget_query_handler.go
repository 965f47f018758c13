package handlers

import (
	"net/http"
	"strings"

	response "presupuesto_svc/internal/adapter/http/dto/response"
	"presupuesto_svc/internal/usecase/interfaces"
	"presupuesto_svc/pkg"

	"github.com/gin-gonic/gin"
)

// BudgetQueryHandler serves the read side: materialized rubros and monthly
// allocations per project, as reporting consumes them.

type BudgetQueryHandler struct {
	rubros      interfaces.IRubroRepository
	allocations interfaces.IAllocationRepository
}

func NewBudgetQueryHandler(rubros interfaces.IRubroRepository, allocations interfaces.IAllocationRepository) *BudgetQueryHandler {
	return &BudgetQueryHandler{rubros: rubros, allocations: allocations}
}

// ListRubros lists the materialized rubros of a project.
//
// @Summary      List materialized rubros of a project
// @Tags         budget
// @Param        project_id  path  string true  "Project id"
// @Param        baseline_id query string false "Filter to one baseline"
// @Success      200 {array} response.RubroResponse
// @Router       /projects/{project_id}/rubros [get]
func (h *BudgetQueryHandler) ListRubros(c *gin.Context) {
	projectID := strings.TrimSpace(c.Param("project_id"))
	if projectID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	items, err := h.rubros.QueryByProject(c.Request.Context(), projectID)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if baselineID := strings.TrimSpace(c.Query("baseline_id")); baselineID != "" {
		filtered := items[:0]
		for _, r := range items {
			if r.BaselineID == baselineID {
				filtered = append(filtered, r)
			}
		}
		items = filtered
	}

	c.JSON(http.StatusOK, response.FromRubros(items))
}

// ListAllocations lists the monthly allocations of a project.
//
// @Summary      List monthly allocations of a project
// @Tags         budget
// @Param        project_id  path  string true  "Project id"
// @Param        baseline_id query string false "Filter to one baseline"
// @Success      200 {array} response.AllocationResponse
// @Router       /projects/{project_id}/allocations [get]
func (h *BudgetQueryHandler) ListAllocations(c *gin.Context) {
	projectID := strings.TrimSpace(c.Param("project_id"))
	if projectID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	items, err := h.allocations.QueryByProject(c.Request.Context(), projectID, strings.TrimSpace(c.Query("baseline_id")))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAllocations(items))
}
