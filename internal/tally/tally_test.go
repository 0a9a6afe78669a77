package tally

import (
	"math"
	"testing"

	"gorm.io/gorm"

	"campuscast/internal/models"
)

func candidate(id uint, name string) models.Candidate {
	return models.Candidate{
		Model: gorm.Model{ID: id},
		User:  models.User{Name: name},
	}
}

func vote(candidateID, voterID uint) models.Vote {
	return models.Vote{CandidateID: candidateID, VoterID: voterID}
}

func TestComputeEndToEnd(t *testing.T) {
	candidates := []models.Candidate{
		candidate(1, "A"),
		candidate(2, "B"),
		candidate(3, "C"),
	}
	votes := []models.Vote{
		vote(1, 10),
		vote(1, 11),
		vote(2, 12),
	}

	res := Compute(candidates, votes, 12)

	if res.TotalVotes != 3 {
		t.Fatalf("TotalVotes = %d, want 3", res.TotalVotes)
	}

	wantOrder := []uint{1, 2, 3}
	wantVotes := []int{2, 1, 0}
	wantShare := []float64{66.7, 33.3, 0.0}
	for i, row := range res.Rows {
		if row.CandidateID != wantOrder[i] {
			t.Errorf("rank %d: candidate %d, want %d", i, row.CandidateID, wantOrder[i])
		}
		if row.Votes != wantVotes[i] {
			t.Errorf("candidate %d: votes %d, want %d", row.CandidateID, row.Votes, wantVotes[i])
		}
		if row.Share != wantShare[i] {
			t.Errorf("candidate %d: share %v, want %v", row.CandidateID, row.Share, wantShare[i])
		}
	}

	// Viewer voted for B; only that row is highlighted.
	for _, row := range res.Rows {
		if row.ViewerPick != (row.CandidateID == 2) {
			t.Errorf("candidate %d: viewer_pick = %v", row.CandidateID, row.ViewerPick)
		}
	}
}

func TestComputeCountsSumToVoteTotal(t *testing.T) {
	candidates := []models.Candidate{
		candidate(1, "A"), candidate(2, "B"), candidate(3, "C"), candidate(4, "D"),
	}
	votes := []models.Vote{
		vote(1, 1), vote(1, 2), vote(2, 3), vote(3, 4), vote(3, 5), vote(3, 6), vote(2, 7),
	}

	res := Compute(candidates, votes, 0)

	sum := 0
	for _, row := range res.Rows {
		sum += row.Votes
	}
	if sum != len(votes) {
		t.Errorf("counts sum to %d, want %d", sum, len(votes))
	}

	shareSum := 0.0
	for _, row := range res.Rows {
		shareSum += row.Share
	}
	if math.Abs(shareSum-100.0) > 0.1*float64(len(candidates)) {
		t.Errorf("shares sum to %v, want ~100", shareSum)
	}
}

func TestComputeStableOnTies(t *testing.T) {
	candidates := []models.Candidate{
		candidate(5, "E"), candidate(6, "F"), candidate(7, "G"),
	}
	// E and G tie on one vote each; F has two.
	votes := []models.Vote{
		vote(5, 1), vote(7, 2), vote(6, 3), vote(6, 4),
	}

	res := Compute(candidates, votes, 0)

	wantOrder := []uint{6, 5, 7} // E before G, input order preserved
	for i, row := range res.Rows {
		if row.CandidateID != wantOrder[i] {
			t.Errorf("rank %d: candidate %d, want %d", i, row.CandidateID, wantOrder[i])
		}
	}
}

func TestComputeNoVotes(t *testing.T) {
	candidates := []models.Candidate{candidate(1, "A"), candidate(2, "B")}

	res := Compute(candidates, nil, 9)

	if res.TotalVotes != 0 {
		t.Fatalf("TotalVotes = %d, want 0", res.TotalVotes)
	}
	for _, row := range res.Rows {
		if row.Share != 0 || row.Votes != 0 || row.ViewerPick {
			t.Errorf("candidate %d: expected zeroed row, got %+v", row.CandidateID, row)
		}
	}
	// Input order preserved when everything ties at zero.
	if res.Rows[0].CandidateID != 1 || res.Rows[1].CandidateID != 2 {
		t.Error("zero-vote ranking did not preserve input order")
	}
}

func TestComputeNoCandidates(t *testing.T) {
	res := Compute(nil, []models.Vote{vote(1, 1)}, 1)
	if len(res.Rows) != 0 {
		t.Errorf("expected no rows, got %d", len(res.Rows))
	}
	if res.TotalVotes != 1 {
		t.Errorf("TotalVotes = %d, want 1", res.TotalVotes)
	}
}

func TestSymbolPrefersApproved(t *testing.T) {
	c := models.Candidate{RequestedSymbol: "boat", ApprovedSymbol: "kite"}
	if got := Symbol(c); got != "kite" {
		t.Errorf("Symbol = %q, want approved symbol", got)
	}
	c.ApprovedSymbol = ""
	if got := Symbol(c); got != "boat" {
		t.Errorf("Symbol = %q, want requested symbol", got)
	}
}
