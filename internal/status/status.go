// Package status maps raw election and candidate status codes to
// display label keys and badge colors. Lookups never fail: anything
// outside the known tables comes back as the fixed unknown label.
package status

// Label is what a badge needs to render: an i18n key plus the badge
// background and text colors.
type Label struct {
	Key string `json:"key"`
	BG  string `json:"bg"`
	FG  string `json:"fg"`
}

// Unknown is returned for empty or unrecognized status codes.
var Unknown = Label{Key: "status.unknown", BG: "#e5e7eb", FG: "#4b5563"}

var electionLabels = map[string]Label{
	"scheduled": {Key: "status.election.scheduled", BG: "#e0e7ff", FG: "#3730a3"},
	"active":    {Key: "status.election.active", BG: "#dcfce7", FG: "#166534"},
	"closed":    {Key: "status.election.closed", BG: "#fee2e2", FG: "#b91c1c"},
}

var candidateLabels = map[string]Label{
	"draft":        {Key: "status.candidate.draft", BG: "#e5e7eb", FG: "#4b5563"},
	"submitted":    {Key: "status.candidate.submitted", BG: "#fef3c7", FG: "#92400e"},
	"under_review": {Key: "status.candidate.underReview", BG: "#fef3c7", FG: "#92400e"},
	"approved":     {Key: "status.candidate.approved", BG: "#dcfce7", FG: "#166534"},
	"rejected":     {Key: "status.candidate.rejected", BG: "#fee2e2", FG: "#b91c1c"},
}

// Election returns the badge label for an election status code.
func Election(code string) Label {
	if l, ok := electionLabels[code]; ok {
		return l
	}
	return Unknown
}

// Candidate returns the badge label for a candidate application status code.
func Candidate(code string) Label {
	if l, ok := candidateLabels[code]; ok {
		return l
	}
	return Unknown
}
