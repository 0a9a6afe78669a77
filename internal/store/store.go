// Package store is the data client for the four collections the
// application reads and writes: users, elections, candidates and
// votes. Every call returns (data, error); callers branch on the
// sentinel errors and surface anything else as a localized status
// string. There is no retry.
package store

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	// ErrNotFound means the id or filter matched no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means a unique constraint rejected the write,
	// e.g. a second registration with the same email or a second
	// vote in the same election.
	ErrDuplicate = errors.New("duplicate record")
)

// Filter is an equality filter, column name to required value.
type Filter map[string]any

// Store bundles the collection clients around one gorm handle.
type Store struct {
	Users      *Users
	Elections  *Elections
	Candidates *Candidates
	Votes      *Votes
}

func New(db *gorm.DB) *Store {
	return &Store{
		Users:      &Users{db: db},
		Elections:  &Elections{db: db},
		Candidates: &Candidates{db: db},
		Votes:      &Votes{db: db},
	}
}

// translate maps driver errors onto the package sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func apply(db *gorm.DB, filter Filter, orderBy string) *gorm.DB {
	q := db
	if len(filter) > 0 {
		q = q.Where(map[string]any(filter))
	}
	if orderBy != "" {
		q = q.Order(orderBy)
	}
	return q
}
