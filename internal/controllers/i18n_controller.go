package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campuscast/internal/middleware"
)

type I18nController struct {
	Deps
}

// Table serves the full string table for one language so pages can
// apply it to tagged elements in a single pass.
func (i *I18nController) Table(c *gin.Context) {
	lang := i.Tr.Normalize(c.Param("lang"))
	c.JSON(http.StatusOK, gin.H{
		"lang":  lang,
		"table": i.Tr.Table(lang),
	})
}

type preferenceInput struct {
	Lang string `json:"lang" binding:"required"`
}

// SavePreference persists the caller's language choice.
func (i *I18nController) SavePreference(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var input preferenceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lang := i.Tr.Normalize(input.Lang)
	if err := i.Sessions.SaveLanguage(c.Request.Context(), userKey(user.UserID), lang); err != nil {
		storeError(c, i.t(c), "saving language preference", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lang": lang})
}
