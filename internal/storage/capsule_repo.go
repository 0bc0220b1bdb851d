package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_capsule_store.go -package=mocks github.com/Fid-Wiz/timecapsule/internal/storage CapsuleStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// CapsuleStore defines the interface for capsule storage operations.
type CapsuleStore interface {
	// Create inserts a new capsule, deriving its initial state from the
	// unlock time. The record's ID and State are filled in.
	Create(ctx context.Context, capsule *CapsuleRecord) error
	// GetByID gets a capsule by ID. Returns nil and ErrNotFound if not found.
	GetByID(ctx context.Context, id string) (*CapsuleRecord, error)
	// AdvanceIfDue transitions a single locked capsule to unlocked if its
	// unlock time has arrived. Returns whether this call made the change.
	AdvanceIfDue(ctx context.Context, id string, now time.Time) (bool, error)
	// UnlockDue transitions every due locked capsule to unlocked and returns
	// the number of rows actually changed.
	UnlockDue(ctx context.Context, now time.Time) (int64, error)
}

// CapsuleRepo provides methods for capsule operations.
// It implements the CapsuleStore interface.
type CapsuleRepo struct {
	db *sql.DB
}

// NewCapsuleRepo creates a new CapsuleRepo.
func NewCapsuleRepo(db *sql.DB) *CapsuleRepo {
	return &CapsuleRepo{db: db}
}

// Create inserts a new capsule row. The initial state is derived from the
// unlock time: a future unlock_at locks the capsule, anything else leaves it
// unlocked immediately.
func (r *CapsuleRepo) Create(ctx context.Context, capsule *CapsuleRecord) error {
	if capsule.ID == "" {
		capsule.ID = uuid.New().String()
	}
	if capsule.Visibility == "" {
		capsule.Visibility = VisibilityGroup
	}

	now := time.Now().UTC()
	capsule.State = InitialState(capsule.UnlockAt, now)

	var unlockAt any
	if capsule.UnlockAt != nil {
		unlockAt = formatTime(*capsule.UnlockAt)
	}

	var description any
	if capsule.Description != "" {
		description = capsule.Description
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO capsules (id, title, description, visibility, state, unlock_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		capsule.ID, capsule.Title, description, capsule.Visibility, capsule.State, unlockAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert capsule: %w", err)
	}

	return nil
}

// GetByID gets a capsule by ID.
// Returns nil and ErrNotFound if not found.
func (r *CapsuleRepo) GetByID(ctx context.Context, id string) (*CapsuleRecord, error) {
	var capsule CapsuleRecord
	var description, unlockAtStr sql.NullString
	var createdAtStr string

	err := r.db.QueryRowContext(ctx,
		"SELECT id, title, description, visibility, state, unlock_at, created_at FROM capsules WHERE id = ?",
		id,
	).Scan(&capsule.ID, &capsule.Title, &description, &capsule.Visibility, &capsule.State, &unlockAtStr, &createdAtStr)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query capsule: %w", err)
	}

	capsule.Description = description.String

	if unlockAtStr.Valid {
		unlockAt, err := parseTime(unlockAtStr.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse unlock_at timestamp: %w", err)
		}
		capsule.UnlockAt = &unlockAt
	}

	capsule.CreatedAt, err = parseTime(createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}

	return &capsule, nil
}

// AdvanceIfDue applies the locked->unlocked transition to one capsule. The
// guard on the current state makes concurrent calls safe: at most one of them
// changes the row, the others observe zero affected rows. No lock is held.
func (r *CapsuleRepo) AdvanceIfDue(ctx context.Context, id string, now time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE capsules
		    SET state = ?
		  WHERE id = ?
		    AND state = ?
		    AND unlock_at IS NOT NULL
		    AND unlock_at <= ?`,
		StateUnlocked, id, StateLocked, formatTime(now),
	)
	if err != nil {
		return false, fmt.Errorf("failed to advance capsule: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

// UnlockDue is the batch form of AdvanceIfDue used by the sweep. It is
// idempotent: a second call with no newly due capsules in between reports 0.
func (r *CapsuleRepo) UnlockDue(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE capsules
		    SET state = ?
		  WHERE state = ?
		    AND unlock_at IS NOT NULL
		    AND unlock_at <= ?`,
		StateUnlocked, StateLocked, formatTime(now),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to unlock due capsules: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected, nil
}
