package controllers

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"campuscast/internal/logger"
	"campuscast/internal/middleware"
	"campuscast/internal/models"
	"campuscast/internal/store"
	"campuscast/internal/view"
)

type SupervisorController struct {
	Deps
}

// Metrics returns the four dashboard counters. Each count is fetched
// concurrently and fails independently; a broken counter reads -1 and
// the rest still render.
func (s *SupervisorController) Metrics(c *gin.Context) {
	type metric struct {
		name  string
		fetch func() (int64, error)
	}

	metrics := []metric{
		{"total_elections", func() (int64, error) { return s.Store.Elections.Count(nil) }},
		{"active_elections", func() (int64, error) {
			return s.Store.Elections.Count(store.Filter{"status": models.ElectionActive})
		}},
		{"registered_candidates", func() (int64, error) { return s.Store.Candidates.Count(nil) }},
		{"registered_voters", func() (int64, error) { return s.Store.Users.CountByRole(models.RoleVoter) }},
	}

	results := make([]int64, len(metrics))
	failures := make([]error, len(metrics))

	var wg sync.WaitGroup
	for i, m := range metrics {
		wg.Add(1)
		go func(i int, m metric) {
			defer wg.Done()
			results[i], failures[i] = m.fetch()
		}(i, m)
	}
	wg.Wait()

	resp := gin.H{}
	for i, m := range metrics {
		if failures[i] != nil {
			logger.L().WithError(failures[i]).Errorf("counting %s", m.name)
			resp[m.name] = -1
			continue
		}
		resp[m.name] = results[i]
	}
	c.JSON(http.StatusOK, resp)
}

// Applications lists candidate applications, newest first, filtered
// by status and free-text search.
func (s *SupervisorController) Applications(c *gin.Context) {
	t := s.t(c)

	apps, err := s.Store.Candidates.List(nil, "created_at desc")
	if err != nil {
		storeError(c, t, "listing applications", err)
		return
	}

	filtered := view.FilterApplications(apps, c.Query("status"), c.Query("q"))

	resp := gin.H{
		"applications": view.ApplicationCards(filtered, t),
		"total":        len(filtered),
	}
	switch {
	case len(apps) == 0:
		resp["message"] = t("supervisor.noApplications")
	case len(filtered) == 0:
		resp["message"] = t("supervisor.noFilteredApplications")
	}
	c.JSON(http.StatusOK, resp)
}

type decisionInput struct {
	Action string `json:"action" binding:"required"` // "approved" or "rejected"
}

// DecideApplication approves or rejects one application. Approved and
// rejected are final states.
func (s *SupervisorController) DecideApplication(c *gin.Context) {
	t := s.t(c)

	id, ok := paramID(c, t, "id")
	if !ok {
		return
	}

	var input decisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Action != models.CandidateApproved && input.Action != models.CandidateRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "action must be approved or rejected"})
		return
	}

	app, err := s.Store.Candidates.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": t("supervisor.noApplications")})
			return
		}
		storeError(c, t, "loading application", err)
		return
	}
	if view.Decided(*app) {
		c.JSON(http.StatusConflict, gin.H{"error": t("candidate.decided")})
		return
	}

	now := time.Now().UTC()
	patch := map[string]any{
		"status":      input.Action,
		"is_approved": input.Action == models.CandidateApproved,
		"approved_at": now,
	}
	if input.Action == models.CandidateApproved && app.ApprovedSymbol == "" {
		// The requested symbol becomes the ballot symbol on approval.
		patch["approved_symbol"] = app.RequestedSymbol
	}

	if err := s.Store.Candidates.Update(id, patch); err != nil {
		storeError(c, t, "updating application", err)
		return
	}

	logger.L().WithField("candidate_id", id).WithField("action", input.Action).Info("application decided")
	c.JSON(http.StatusOK, gin.H{"id": id, "status": input.Action})
}

type createElectionInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartAt     *time.Time `json:"start_at"`
	EndAt       *time.Time `json:"end_at"`
}

// CreateElection opens a new election in the scheduled state.
// Activation and closing happen outside this service.
func (s *SupervisorController) CreateElection(c *gin.Context) {
	t := s.t(c)
	user, _ := middleware.CurrentUser(c)

	var input createElectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": t("supervisor.titleRequired")})
		return
	}

	election := models.Election{
		Title:       input.Title,
		Description: input.Description,
		StartAt:     input.StartAt,
		EndAt:       input.EndAt,
		Status:      models.ElectionScheduled,
		CreatedBy:   user.UserID,
	}
	if err := s.Store.Elections.Insert(&election); err != nil {
		storeError(c, t, "creating election", err)
		return
	}

	logger.L().WithField("election_id", election.ID).Info("election created")
	c.JSON(http.StatusCreated, gin.H{"election": election})
}

// Elections lists all elections for the supervisor panels.
func (s *SupervisorController) Elections(c *gin.Context) {
	t := s.t(c)

	elections, err := s.Store.Elections.List(nil, "created_at desc")
	if err != nil {
		storeError(c, t, "listing elections", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"elections": elections, "total": len(elections)})
}

// Voters lists registered voter accounts.
func (s *SupervisorController) Voters(c *gin.Context) {
	t := s.t(c)

	voters, err := s.Store.Users.List(store.Filter{"role": models.RoleVoter}, "created_at desc")
	if err != nil {
		storeError(c, t, "listing voters", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"voters": voters, "total": len(voters)})
}
