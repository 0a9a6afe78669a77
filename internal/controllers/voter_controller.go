package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campuscast/internal/logger"
	"campuscast/internal/middleware"
	"campuscast/internal/models"
	"campuscast/internal/session"
	"campuscast/internal/store"
	"campuscast/internal/tally"
	"campuscast/internal/view"
)

type VoterController struct {
	Deps
}

// Dashboard lists every election, earliest start first, with the
// voter's already-voted set folded in.
func (v *VoterController) Dashboard(c *gin.Context) {
	t := v.t(c)
	user, _ := middleware.CurrentUser(c)

	elections, err := v.Store.Elections.List(nil, "start_at asc")
	if err != nil {
		storeError(c, t, "listing elections", err)
		return
	}

	voted, err := v.Store.Votes.VotedElections(user.UserID)
	if err != nil {
		storeError(c, t, "listing votes", err)
		return
	}

	resp := gin.H{
		"voter":     gin.H{"name": user.Name},
		"elections": view.ElectionCards(elections, voted, t),
		"total":     len(elections),
	}
	if len(elections) == 0 {
		resp["message"] = t("voter.noElections")
	}
	c.JSON(http.StatusOK, resp)
}

// Results tallies one election and highlights the viewer's own pick.
func (v *VoterController) Results(c *gin.Context) {
	t := v.t(c)
	user, _ := middleware.CurrentUser(c)

	id, ok := paramID(c, t, "id")
	if !ok {
		return
	}

	page, ok := v.resultPage(c, t, id, user.UserID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, page)
}

type voteInput struct {
	CandidateID uint `json:"candidate_id" binding:"required"`
}

// CastVote writes one ballot. The store's unique index is the only
// double-vote check; a violation comes back as a conflict.
func (v *VoterController) CastVote(c *gin.Context) {
	t := v.t(c)
	user, _ := middleware.CurrentUser(c)

	electionID, ok := paramID(c, t, "id")
	if !ok {
		return
	}

	var input voteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	election, err := v.Store.Elections.GetByID(electionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": t("results.electionNotFound")})
			return
		}
		storeError(c, t, "loading election", err)
		return
	}
	if election.Status != models.ElectionActive {
		c.JSON(http.StatusConflict, gin.H{"error": t("voter.notActive")})
		return
	}

	candidate, err := v.Store.Candidates.GetByID(input.CandidateID)
	if err != nil || candidate.ElectionID == nil || *candidate.ElectionID != electionID {
		c.JSON(http.StatusBadRequest, gin.H{"error": t("voter.voteFailed")})
		return
	}

	vote := models.Vote{
		ElectionID:  electionID,
		VoterID:     user.UserID,
		CandidateID: candidate.ID,
		Receipt:     uuid.NewString(),
		CastAt:      time.Now().UTC(),
	}
	if err := v.Store.Votes.Insert(&vote); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": t("voter.alreadyVoted")})
			return
		}
		storeError(c, t, "saving vote", err)
		return
	}

	entry := session.HistoryEntry{
		UserID:        user.UserID,
		ElectionID:    electionID,
		CandidateID:   candidate.ID,
		Timestamp:     vote.CastAt,
		ElectionTitle: election.Title,
		CandidateName: candidate.User.Name,
	}
	if err := v.Sessions.AppendHistory(c.Request.Context(), userKey(user.UserID), entry); err != nil {
		// The ballot is safe; only the convenience log failed.
		logger.L().WithError(err).Warn("appending vote history")
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": t("voter.voteSaved"),
		"receipt": vote.Receipt,
	})
}

// History shows this voter's device-side vote log, newest first.
func (v *VoterController) History(c *gin.Context) {
	t := v.t(c)
	user, _ := middleware.CurrentUser(c)

	entries := v.Sessions.History(c.Request.Context(), userKey(user.UserID))
	resp := gin.H{
		"rows":  view.HistoryRows(entries),
		"total": len(entries),
	}
	if len(entries) == 0 {
		resp["message"] = t("voter.noHistory")
	}
	c.JSON(http.StatusOK, resp)
}

// Profile returns the user row behind the session.
func (v *VoterController) Profile(c *gin.Context) {
	t := v.t(c)
	user, _ := middleware.CurrentUser(c)

	row, err := v.Store.Users.GetByID(user.UserID)
	if err != nil {
		storeError(c, t, "loading profile", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": row})
}

// resultPage is shared between the voter results view and the public
// one (which passes viewerID zero, so nothing highlights).
func (d Deps) resultPage(c *gin.Context, t view.T, electionID, viewerID uint) (view.ResultPage, bool) {
	election, err := d.Store.Elections.GetByID(electionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": t("results.electionNotFound")})
		} else {
			storeError(c, t, "loading election", err)
		}
		return view.ResultPage{}, false
	}

	candidates, err := d.Store.Candidates.List(store.Filter{"election_id": electionID}, "id asc")
	if err != nil {
		storeError(c, t, "listing candidates", err)
		return view.ResultPage{}, false
	}

	votes, err := d.Store.Votes.ListByElection(electionID)
	if err != nil {
		storeError(c, t, "listing votes", err)
		return view.ResultPage{}, false
	}

	res := tally.Compute(candidates, votes, viewerID)
	return view.Results(*election, res, t), true
}
