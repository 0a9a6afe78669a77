// Package session keeps the device-scoped "current user" record plus
// the two small pieces of per-user state that live next to it: the
// language preference and the local vote-history log. The record is
// advisory display state, not identity; nothing here signs or expires
// anything.
package session

import (
	"context"
	"encoding/json"
	"sync"
)

// Storage keys, one concern each.
const (
	currentUserKey = "cc:currentUser:"
	langKey        = "cc:lang:"
	voteHistoryKey = "cc:voteHistory:"
)

// Record is the minimal user snapshot other layers read to know who
// is logged in and what their role is.
type Record struct {
	UserID uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// KV is the persistent key-value store the adapter writes through.
// Get returns ("", nil) when the key is absent.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}

// Store saves, loads and clears session records keyed by an opaque
// session key handed to the client at login.
type Store struct {
	kv KV

	// historyMu serializes the read-modify-write of history logs
	// within this process.
	historyMu sync.Mutex
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Save serializes the record and persists it, overwriting any prior
// value under the same key.
func (s *Store) Save(ctx context.Context, key string, rec Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, currentUserKey+key, string(raw))
}

// Load returns the record stored under key, or nil if the key is
// absent or holds something that does not parse. A malformed value is
// "no session", never an error.
func (s *Store) Load(ctx context.Context, key string) *Record {
	raw, err := s.kv.Get(ctx, currentUserKey+key)
	if err != nil || raw == "" {
		return nil
	}
	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil
	}
	return &rec
}

// Clear removes the record under key.
func (s *Store) Clear(ctx context.Context, key string) error {
	return s.kv.Del(ctx, currentUserKey+key)
}

// SaveLanguage persists a user's language preference ("bn" or "en").
func (s *Store) SaveLanguage(ctx context.Context, userID string, lang string) error {
	return s.kv.Set(ctx, langKey+userID, lang)
}

// Language returns the stored preference, or fallback when absent.
func (s *Store) Language(ctx context.Context, userID string, fallback string) string {
	lang, err := s.kv.Get(ctx, langKey+userID)
	if err != nil || lang == "" {
		return fallback
	}
	return lang
}
