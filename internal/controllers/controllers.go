// Package controllers holds the gin handlers. Each page surface gets
// one controller struct; shared state (data client, session store,
// translator) is injected once here instead of being re-declared per
// handler file.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campuscast/internal/i18n"
	"campuscast/internal/logger"
	"campuscast/internal/middleware"
	"campuscast/internal/session"
	"campuscast/internal/store"
	"campuscast/internal/view"
)

// Deps is everything a controller needs.
type Deps struct {
	Store    *store.Store
	Sessions *session.Store
	Tr       *i18n.Translator
}

// lang resolves the viewer's language: explicit ?lang= beats the
// stored preference, which beats the default.
func (d Deps) lang(c *gin.Context) string {
	if l := c.Query("lang"); l != "" {
		return d.Tr.Normalize(l)
	}
	if user, ok := middleware.CurrentUser(c); ok {
		stored := d.Sessions.Language(c.Request.Context(), userKey(user.UserID), i18n.DefaultLanguage)
		return d.Tr.Normalize(stored)
	}
	return i18n.DefaultLanguage
}

// t returns a key resolver bound to the viewer's language.
func (d Deps) t(c *gin.Context) view.T {
	lang := d.lang(c)
	return func(key string) string {
		return d.Tr.T(lang, key)
	}
}

// storeError logs a failed store call and answers with the localized
// failure string. No retry; the user re-triggers the action.
func storeError(c *gin.Context, t view.T, op string, err error) {
	logger.L().WithError(err).Error(op)
	c.JSON(http.StatusBadGateway, gin.H{"error": t("error.storeFailed")})
}

func userKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func paramID(c *gin.Context, t view.T, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": t("error.invalidId")})
		return 0, false
	}
	return uint(id), true
}
