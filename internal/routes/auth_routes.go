package routes

import (
	"github.com/gin-gonic/gin"

	"campuscast/internal/controllers"
)

func AuthRoutes(r *gin.Engine, deps controllers.Deps) {
	ctrl := &controllers.AuthController{Deps: deps}

	auth := r.Group("/auth")
	{
		auth.POST("/signup", ctrl.Signup)
		auth.POST("/login", ctrl.Login)
		auth.POST("/logout", ctrl.Logout)
	}
}
