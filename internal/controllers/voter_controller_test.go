package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// A non-numeric election id fails before any data access, so these
// handlers can run without a database behind them.
func TestResultsRejectsMalformedElectionID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	deps := testDeps(t)
	voterCtrl := &VoterController{Deps: deps}
	publicCtrl := &PublicController{Deps: deps}

	r := gin.New()
	r.GET("/voter/elections/:id/results", voterCtrl.Results)
	r.GET("/public/elections/:id/results", publicCtrl.Results)

	for _, path := range []string{
		"/voter/elections/abc/results?lang=en",
		"/public/elections/abc/results?lang=en",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("GET %s: status = %d, want 400", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), "not valid") {
			t.Errorf("GET %s: body %q missing localized id error", path, w.Body.String())
		}
	}
}
