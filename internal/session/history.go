package session

import (
	"context"
	"encoding/json"
	"sort"
	"time"
)

// HistoryEntry is one line of the vote-history log. The log is a
// convenience record for the voter, not the ballot of record; the
// votes table is authoritative.
type HistoryEntry struct {
	UserID        uint      `json:"userId"`
	ElectionID    uint      `json:"electionId"`
	CandidateID   uint      `json:"candidateId"`
	Timestamp     time.Time `json:"timestamp"`
	ElectionTitle string    `json:"electionTitle"`
	CandidateName string    `json:"candidateName"`
}

// AppendHistory adds an entry to a user's vote-history log. A log that
// fails to parse is replaced rather than propagated as an error, the
// same way a corrupted session record reads as absent. Appends are
// serialized per process; across processes the last writer wins, which
// is acceptable for a convenience log.
func (s *Store) AppendHistory(ctx context.Context, userID string, entry HistoryEntry) error {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()

	entries := s.History(ctx, userID)
	entries = append(entries, entry)
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, voteHistoryKey+userID, string(raw))
}

// History returns a user's vote-history entries, newest first.
// Missing or malformed logs come back empty.
func (s *Store) History(ctx context.Context, userID string) []HistoryEntry {
	raw, err := s.kv.Get(ctx, voteHistoryKey+userID)
	if err != nil || raw == "" {
		return nil
	}
	var entries []HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries
}
