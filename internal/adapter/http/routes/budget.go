package routes

import (
	"presupuesto_svc/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBaselines = "/baselines"
	PathProjects  = "/projects"
)

func addBudgetRoutes(rg *gin.RouterGroup, materializeHandler *handlers.MaterializeHandler, queryHandler *handlers.BudgetQueryHandler) {
	baselines := rg.Group(PathBaselines)
	{
		// Materialization triggers; same engine as the queue consumer and the
		// backfill CLI.
		baselines.POST("/:baseline_id/materialize", materializeHandler.Materialize)
		baselines.POST("/:baseline_id/materialize/rubros", materializeHandler.MaterializeRubros)
	}

	projects := rg.Group(PathProjects)
	{
		// Read side consumed by forecasting/reporting.
		projects.GET("/:project_id/rubros", queryHandler.ListRubros)
		projects.GET("/:project_id/allocations", queryHandler.ListAllocations)
	}
}
