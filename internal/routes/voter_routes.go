package routes

import (
	"github.com/gin-gonic/gin"

	"campuscast/internal/controllers"
	"campuscast/internal/middleware"
	"campuscast/internal/models"
)

func VoterRoutes(r *gin.Engine, deps controllers.Deps, gate *middleware.Gate) {
	ctrl := &controllers.VoterController{Deps: deps}

	voter := r.Group("/voter")
	voter.Use(gate.RequireRole(models.RoleVoter))
	{
		voter.GET("/dashboard", ctrl.Dashboard)
		voter.GET("/elections/:id/results", ctrl.Results)
		voter.POST("/elections/:id/vote", ctrl.CastVote)
		voter.GET("/history", ctrl.History)
		voter.GET("/profile", ctrl.Profile)
	}
}
