package routes

import (
	"github.com/gin-gonic/gin"

	"campuscast/internal/controllers"
	"campuscast/internal/middleware"
	"campuscast/internal/models"
)

func CandidateRoutes(r *gin.Engine, deps controllers.Deps, gate *middleware.Gate) {
	ctrl := &controllers.CandidateController{Deps: deps}

	candidate := r.Group("/candidate")
	candidate.Use(gate.RequireRole(models.RoleCandidate))
	{
		candidate.GET("/application", ctrl.Application)
		candidate.POST("/application", ctrl.Submit)
		candidate.GET("/elections", ctrl.Elections)
	}
}
