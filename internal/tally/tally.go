// Package tally computes per-candidate vote counts and percentage
// shares for a single election. All functions are pure; the handlers
// fetch the rows and render whatever comes back.
package tally

import (
	"math"
	"sort"

	"campuscast/internal/models"
)

// Row is one candidate's line in the results, in ranked order.
type Row struct {
	CandidateID uint    `json:"candidate_id"`
	Name        string  `json:"name"`
	Symbol      string  `json:"symbol"`
	Votes       int     `json:"votes"`
	Share       float64 `json:"share"` // percentage, one decimal place
	ViewerPick  bool    `json:"viewer_pick"`
}

// Result is the full tally for one election.
type Result struct {
	TotalVotes int   `json:"total_votes"`
	Rows       []Row `json:"rows"`
}

// Symbol picks the display symbol for a candidate: the approved one
// wins, then the requested one.
func Symbol(c models.Candidate) string {
	if c.ApprovedSymbol != "" {
		return c.ApprovedSymbol
	}
	return c.RequestedSymbol
}

// Compute counts votes per candidate, derives each candidate's share
// of the total as a one-decimal percentage, and ranks candidates by
// count descending. Candidates with equal counts keep their input
// order. viewerID marks the row the viewer voted for, if any.
func Compute(candidates []models.Candidate, votes []models.Vote, viewerID uint) Result {
	counts := make(map[uint]int, len(candidates))
	var viewerPick uint
	for _, v := range votes {
		counts[v.CandidateID]++
		if v.VoterID == viewerID {
			viewerPick = v.CandidateID
		}
	}

	total := len(votes)
	rows := make([]Row, 0, len(candidates))
	for _, c := range candidates {
		n := counts[c.ID]
		share := 0.0
		if total > 0 {
			share = math.Round(float64(n)/float64(total)*1000) / 10
		}
		rows = append(rows, Row{
			CandidateID: c.ID,
			Name:        c.User.Name,
			Symbol:      Symbol(c),
			Votes:       n,
			Share:       share,
			ViewerPick:  viewerID != 0 && c.ID == viewerPick,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Votes > rows[j].Votes
	})

	return Result{TotalVotes: total, Rows: rows}
}
