// Package view shapes store rows into the plain structures the JSON
// layer returns: election cards, result rows, application cards and
// history rows. Everything here is a pure function so the shaping is
// testable without a server.
package view

import (
	"strconv"
	"strings"
	"time"

	"campuscast/internal/models"
	"campuscast/internal/session"
	"campuscast/internal/status"
	"campuscast/internal/tally"
)

// T resolves an i18n key to a display string for the viewer's
// language.
type T func(key string) string

// Badge is a status label with its key already resolved to text.
type Badge struct {
	Text string `json:"text"`
	BG   string `json:"bg"`
	FG   string `json:"fg"`
}

func badge(l status.Label, t T) Badge {
	return Badge{Text: t(l.Key), BG: l.BG, FG: l.FG}
}

// ElectionCard is one dashboard entry.
type ElectionCard struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartAt     *time.Time `json:"start_at"`
	EndAt       *time.Time `json:"end_at"`
	Status      Badge      `json:"status"`
	HasVoted    bool       `json:"has_voted"`
	CanVote     bool       `json:"can_vote"`
}

// ElectionCards builds dashboard cards. A card is votable only while
// the election is active and the voter has not voted in it yet.
func ElectionCards(elections []models.Election, voted map[uint]bool, t T) []ElectionCard {
	cards := make([]ElectionCard, 0, len(elections))
	for _, e := range elections {
		hasVoted := voted[e.ID]
		cards = append(cards, ElectionCard{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			StartAt:     e.StartAt,
			EndAt:       e.EndAt,
			Status:      badge(status.Election(e.Status), t),
			HasVoted:    hasVoted,
			CanVote:     e.Status == models.ElectionActive && !hasVoted,
		})
	}
	return cards
}

// ResultPage is the full results payload for one election.
type ResultPage struct {
	ElectionID uint        `json:"election_id"`
	Title      string      `json:"title"`
	Status     Badge       `json:"status"`
	TotalVotes int         `json:"total_votes"`
	Message    string      `json:"message,omitempty"`
	Rows       []tally.Row `json:"rows"`
}

// Results pairs the tally with the election header and the empty-state
// message the page shows instead of rows.
func Results(e models.Election, res tally.Result, t T) ResultPage {
	page := ResultPage{
		ElectionID: e.ID,
		Title:      e.Title,
		Status:     badge(status.Election(e.Status), t),
		TotalVotes: res.TotalVotes,
		Rows:       res.Rows,
	}
	switch {
	case len(res.Rows) == 0:
		page.Message = t("results.noCandidates")
	case res.TotalVotes == 0:
		page.Message = t("results.noVotes")
	}
	return page
}

// ApplicationCard is one candidate application in the supervisor list.
type ApplicationCard struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Dept            string `json:"dept"`
	ElectionTitle   string `json:"election_title"`
	RequestedSymbol string `json:"requested_symbol"`
	Manifesto       string `json:"manifesto"`
	Status          Badge  `json:"status"`
	Decided         bool   `json:"decided"`
}

// Decided reports whether an application can no longer be approved or
// rejected.
func Decided(c models.Candidate) bool {
	return c.Status == models.CandidateApproved || c.Status == models.CandidateRejected
}

// FilterApplications keeps applications matching a status filter and a
// free-text search. "all" keeps everything; "pending" keeps submitted
// and under-review; any other value matches the status exactly. The
// search matches name or email, case-insensitively.
func FilterApplications(apps []models.Candidate, statusFilter, search string) []models.Candidate {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]models.Candidate, 0, len(apps))
	for _, app := range apps {
		switch statusFilter {
		case "", "all":
		case "pending":
			if app.Status != models.CandidateSubmitted && app.Status != models.CandidateUnderReview {
				continue
			}
		default:
			if app.Status != statusFilter {
				continue
			}
		}
		if search != "" {
			name := strings.ToLower(app.User.Name)
			email := strings.ToLower(app.User.Email)
			if !strings.Contains(name, search) && !strings.Contains(email, search) {
				continue
			}
		}
		out = append(out, app)
	}
	return out
}

// ApplicationCards builds supervisor list entries.
func ApplicationCards(apps []models.Candidate, t T) []ApplicationCard {
	cards := make([]ApplicationCard, 0, len(apps))
	for _, app := range apps {
		card := ApplicationCard{
			ID:              app.ID,
			Name:            app.User.Name,
			Email:           app.User.Email,
			Dept:            app.User.Dept,
			RequestedSymbol: app.RequestedSymbol,
			Manifesto:       app.Manifesto,
			Status:          badge(status.Candidate(app.Status), t),
			Decided:         Decided(app),
		}
		if app.Election != nil {
			card.ElectionTitle = app.Election.Title
		}
		cards = append(cards, card)
	}
	return cards
}

// HistoryRow is one line of the voter's history table.
type HistoryRow struct {
	ElectionTitle string    `json:"election_title"`
	CandidateName string    `json:"candidate_name"`
	CastAt        time.Time `json:"cast_at"`
}

// HistoryRows converts log entries into table rows, falling back to
// ids when the denormalized names were never recorded.
func HistoryRows(entries []session.HistoryEntry) []HistoryRow {
	rows := make([]HistoryRow, 0, len(entries))
	for _, e := range entries {
		row := HistoryRow{
			ElectionTitle: e.ElectionTitle,
			CandidateName: e.CandidateName,
			CastAt:        e.Timestamp,
		}
		if row.ElectionTitle == "" {
			row.ElectionTitle = strconv.FormatUint(uint64(e.ElectionID), 10)
		}
		if row.CandidateName == "" {
			row.CandidateName = strconv.FormatUint(uint64(e.CandidateID), 10)
		}
		rows = append(rows, row)
	}
	return rows
}
