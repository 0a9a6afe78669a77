package status

import "testing"

func TestElectionKnownCodes(t *testing.T) {
	tests := []struct {
		code string
		key  string
	}{
		{"scheduled", "status.election.scheduled"},
		{"active", "status.election.active"},
		{"closed", "status.election.closed"},
	}
	for _, tt := range tests {
		if got := Election(tt.code); got.Key != tt.key {
			t.Errorf("Election(%q).Key = %q, want %q", tt.code, got.Key, tt.key)
		}
	}
}

func TestCandidateKnownCodes(t *testing.T) {
	tests := []struct {
		code string
		key  string
	}{
		{"draft", "status.candidate.draft"},
		{"submitted", "status.candidate.submitted"},
		{"under_review", "status.candidate.underReview"},
		{"approved", "status.candidate.approved"},
		{"rejected", "status.candidate.rejected"},
	}
	for _, tt := range tests {
		if got := Candidate(tt.code); got.Key != tt.key {
			t.Errorf("Candidate(%q).Key = %q, want %q", tt.code, got.Key, tt.key)
		}
	}
}

func TestUnknownFallback(t *testing.T) {
	for _, code := range []string{"", "bogus", "ACTIVE", "archived"} {
		if got := Election(code); got != Unknown {
			t.Errorf("Election(%q) = %+v, want the unknown label", code, got)
		}
		if got := Candidate(code); got != Unknown {
			t.Errorf("Candidate(%q) = %+v, want the unknown label", code, got)
		}
		if Election(code).Key == "" || Candidate(code).Key == "" {
			t.Errorf("fallback label for %q must never be empty", code)
		}
	}
}
