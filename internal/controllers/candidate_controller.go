package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campuscast/internal/middleware"
	"campuscast/internal/models"
	"campuscast/internal/store"
	"campuscast/internal/view"
)

type CandidateController struct {
	Deps
}

// Application returns the caller's own application, if any.
func (cc *CandidateController) Application(c *gin.Context) {
	t := cc.t(c)
	user, _ := middleware.CurrentUser(c)

	app, err := cc.Store.Candidates.GetByUser(user.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"application": nil})
			return
		}
		storeError(c, t, "loading application", err)
		return
	}

	cards := view.ApplicationCards([]models.Candidate{*app}, t)
	c.JSON(http.StatusOK, gin.H{"application": cards[0]})
}

// An application always targets one election; without that the unique
// index on (user_id, election_id) cannot stop duplicate filings, since
// the database treats NULLs as distinct.
type applicationInput struct {
	ElectionID      uint   `json:"election_id" binding:"required"`
	RequestedSymbol string `json:"requested_symbol" binding:"required"`
	Manifesto       string `json:"manifesto"`
}

// Submit files or refiles the caller's application. A decided
// application is final; anything earlier can be resubmitted.
func (cc *CandidateController) Submit(c *gin.Context) {
	t := cc.t(c)
	user, _ := middleware.CurrentUser(c)

	var input applicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := cc.Store.Candidates.GetByUser(user.UserID)
	switch {
	case err == nil:
		if view.Decided(*existing) {
			c.JSON(http.StatusConflict, gin.H{"error": t("candidate.decided")})
			return
		}
		patch := map[string]any{
			"election_id":      input.ElectionID,
			"requested_symbol": input.RequestedSymbol,
			"manifesto":        input.Manifesto,
			"status":           models.CandidateSubmitted,
		}
		if err := cc.Store.Candidates.Update(existing.ID, patch); err != nil {
			storeError(c, t, "updating application", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": t("candidate.submitOk"), "id": existing.ID})

	case errors.Is(err, store.ErrNotFound):
		app := models.Candidate{
			UserID:          user.UserID,
			ElectionID:      &input.ElectionID,
			RequestedSymbol: input.RequestedSymbol,
			Manifesto:       input.Manifesto,
			Status:          models.CandidateSubmitted,
		}
		if err := cc.Store.Candidates.Insert(&app); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				c.JSON(http.StatusConflict, gin.H{"error": t("candidate.submitFailed")})
				return
			}
			storeError(c, t, "creating application", err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": t("candidate.submitOk"), "id": app.ID})

	default:
		storeError(c, t, "loading application", err)
	}
}

// Elections lists elections a candidate can apply into: anything not
// yet closed.
func (cc *CandidateController) Elections(c *gin.Context) {
	t := cc.t(c)

	elections, err := cc.Store.Elections.List(nil, "start_at asc")
	if err != nil {
		storeError(c, t, "listing elections", err)
		return
	}

	open := make([]models.Election, 0, len(elections))
	for _, e := range elections {
		if e.Status != models.ElectionClosed {
			open = append(open, e)
		}
	}
	c.JSON(http.StatusOK, gin.H{"elections": open, "total": len(open)})
}
