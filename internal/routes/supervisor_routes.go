package routes

import (
	"github.com/gin-gonic/gin"

	"campuscast/internal/controllers"
	"campuscast/internal/middleware"
	"campuscast/internal/models"
)

func SupervisorRoutes(r *gin.Engine, deps controllers.Deps, gate *middleware.Gate) {
	ctrl := &controllers.SupervisorController{Deps: deps}

	supervisor := r.Group("/supervisor")
	supervisor.Use(gate.RequireRole(models.RoleSupervisor))
	{
		supervisor.GET("/metrics", ctrl.Metrics)
		supervisor.GET("/applications", ctrl.Applications)
		supervisor.PATCH("/applications/:id", ctrl.DecideApplication)
		supervisor.POST("/elections", ctrl.CreateElection)
		supervisor.GET("/elections", ctrl.Elections)
		supervisor.GET("/voters", ctrl.Voters)
	}
}
