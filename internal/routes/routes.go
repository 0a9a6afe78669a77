package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"campuscast/internal/controllers"
	"campuscast/internal/middleware"
)

// SetupRouter wires every surface onto one engine.
func SetupRouter(deps controllers.Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	gate := middleware.NewGate(deps.Sessions)

	AuthRoutes(r, deps)
	VoterRoutes(r, deps, gate)
	CandidateRoutes(r, deps, gate)
	SupervisorRoutes(r, deps, gate)
	PublicRoutes(r, deps, gate)

	return r
}
