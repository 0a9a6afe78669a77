package routes

import (
	"github.com/gin-gonic/gin"

	"campuscast/internal/controllers"
	"campuscast/internal/middleware"
)

func PublicRoutes(r *gin.Engine, deps controllers.Deps, gate *middleware.Gate) {
	ctrl := &controllers.PublicController{Deps: deps}
	i18nCtrl := &controllers.I18nController{Deps: deps}

	public := r.Group("/public")
	{
		public.GET("/elections", ctrl.Elections)
		public.GET("/elections/:id/results", ctrl.Results)
	}

	r.GET("/i18n/:lang", i18nCtrl.Table)
	// Any logged-in role may store a language preference.
	r.PUT("/i18n/preference", gate.RequireRole(), i18nCtrl.SavePreference)
}
