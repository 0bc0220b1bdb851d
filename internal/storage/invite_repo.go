package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_invite_store.go -package=mocks github.com/Fid-Wiz/timecapsule/internal/storage InviteStore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Invitee identifies a person invited to a capsule by email, username or both.
type Invitee struct {
	Email    string
	Username string
}

// InviteStore defines the interface for capsule invitation operations.
type InviteStore interface {
	// CreateBatch inserts one invite row per invitee carrying at least an
	// email or a username, and returns how many rows were created.
	CreateBatch(ctx context.Context, capsuleID string, invitees []Invitee) (int, error)
	// ListByCapsule returns a capsule's invites, newest first.
	ListByCapsule(ctx context.Context, capsuleID string) ([]InviteRecord, error)
}

// InviteRepo provides methods for invite operations.
// It implements the InviteStore interface.
type InviteRepo struct {
	db *sql.DB
}

// NewInviteRepo creates a new InviteRepo.
func NewInviteRepo(db *sql.DB) *InviteRepo {
	return &InviteRepo{db: db}
}

// CreateBatch inserts invite rows. Invitees without an email or username are
// skipped; the caller validates that at least one usable invitee remains.
func (r *InviteRepo) CreateBatch(ctx context.Context, capsuleID string, invitees []Invitee) (int, error) {
	var placeholders []string
	var args []any
	for _, inv := range invitees {
		email := strings.TrimSpace(inv.Email)
		username := strings.TrimSpace(inv.Username)
		if email == "" && username == "" {
			continue
		}
		placeholders = append(placeholders, "(?, ?, ?)")
		args = append(args, capsuleID, nullString(email), nullString(username))
	}
	if len(placeholders) == 0 {
		return 0, nil
	}

	query := "INSERT INTO invites (capsule_id, invitee_email, invitee_username) VALUES " +
		strings.Join(placeholders, ", ")
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("failed to insert invites: %w", err)
	}

	return len(placeholders), nil
}

// ListByCapsule returns a capsule's invites, newest first.
func (r *InviteRepo) ListByCapsule(ctx context.Context, capsuleID string) ([]InviteRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, capsule_id, invitee_email, invitee_username, status, created_at
		   FROM invites
		  WHERE capsule_id = ?
		  ORDER BY id DESC`,
		capsuleID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query invites: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var invites []InviteRecord
	for rows.Next() {
		var invite InviteRecord
		var email, username sql.NullString
		var createdAtStr string
		if err := rows.Scan(&invite.ID, &invite.CapsuleID, &email, &username, &invite.Status, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		invite.InviteeEmail = email.String
		invite.InviteeUsername = username.String
		invite.CreatedAt, err = parseTime(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
		}
		invites = append(invites, invite)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invites: %w", err)
	}

	return invites, nil
}
