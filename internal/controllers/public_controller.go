package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campuscast/internal/view"
)

type PublicController struct {
	Deps
}

// Elections lists every election with status badges. No gate; this
// backs the public landing pages.
func (p *PublicController) Elections(c *gin.Context) {
	t := p.t(c)

	elections, err := p.Store.Elections.List(nil, "start_at asc")
	if err != nil {
		storeError(c, t, "listing elections", err)
		return
	}

	resp := gin.H{
		"elections": view.ElectionCards(elections, nil, t),
		"total":     len(elections),
	}
	if len(elections) == 0 {
		resp["message"] = t("voter.noElections")
	}
	c.JSON(http.StatusOK, resp)
}

// Results shows an election's tally without any viewer highlight.
func (p *PublicController) Results(c *gin.Context) {
	t := p.t(c)

	id, ok := paramID(c, t, "id")
	if !ok {
		return
	}

	page, ok := p.resultPage(c, t, id, 0)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, page)
}
