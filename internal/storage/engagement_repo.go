package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_engagement_store.go -package=mocks github.com/Fid-Wiz/timecapsule/internal/storage EngagementStore

import (
	"context"
	"database/sql"
	"fmt"
)

// EngagementStore defines the interface for like and comment bookkeeping.
type EngagementStore interface {
	// Like records a like; liking twice is a no-op. Returns the new count.
	Like(ctx context.Context, itemID, userHandle string) (int, error)
	// Unlike removes a like if present. Returns the new count.
	Unlike(ctx context.Context, itemID, userHandle string) (int, error)
	// LikeCount returns the number of likes on an item.
	LikeCount(ctx context.Context, itemID string) (int, error)
	// AddComment appends a comment to an item.
	AddComment(ctx context.Context, itemID, userHandle, text string) error
	// ListComments returns a page of an item's comments, oldest first, with
	// the total count for pagination.
	ListComments(ctx context.Context, itemID string, page, pageSize int) ([]CommentRecord, int, error)
}

// EngagementRepo provides methods for like and comment operations.
// It implements the EngagementStore interface.
type EngagementRepo struct {
	db *sql.DB
}

// NewEngagementRepo creates a new EngagementRepo.
func NewEngagementRepo(db *sql.DB) *EngagementRepo {
	return &EngagementRepo{db: db}
}

// Like records a like. The unique (item_id, user_handle) key makes repeated
// likes by the same user a no-op.
func (r *EngagementRepo) Like(ctx context.Context, itemID, userHandle string) (int, error) {
	_, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO likes (item_id, user_handle) VALUES (?, ?)",
		itemID, userHandle,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert like: %w", err)
	}
	return r.LikeCount(ctx, itemID)
}

// Unlike removes a like if present.
func (r *EngagementRepo) Unlike(ctx context.Context, itemID, userHandle string) (int, error) {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM likes WHERE item_id = ? AND user_handle = ?",
		itemID, userHandle,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete like: %w", err)
	}
	return r.LikeCount(ctx, itemID)
}

// LikeCount returns the number of likes on an item.
func (r *EngagementRepo) LikeCount(ctx context.Context, itemID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM likes WHERE item_id = ?", itemID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

// AddComment appends a comment to an item.
func (r *EngagementRepo) AddComment(ctx context.Context, itemID, userHandle, text string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO comments (item_id, user_handle, text) VALUES (?, ?, ?)",
		itemID, userHandle, text,
	)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

// ListComments returns a page of an item's comments, oldest first.
func (r *EngagementRepo) ListComments(ctx context.Context, itemID string, page, pageSize int) ([]CommentRecord, int, error) {
	offset := (page - 1) * pageSize

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, item_id, user_handle, text, created_at
		   FROM comments
		  WHERE item_id = ?
		  ORDER BY id ASC
		  LIMIT ? OFFSET ?`,
		itemID, pageSize, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query comments: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	comments := make([]CommentRecord, 0, pageSize)
	for rows.Next() {
		var comment CommentRecord
		var createdAtStr string
		if err := rows.Scan(&comment.ID, &comment.ItemID, &comment.UserHandle, &comment.Text, &createdAtStr); err != nil {
			return nil, 0, fmt.Errorf("failed to scan comment: %w", err)
		}
		comment.CreatedAt, err = parseTime(createdAtStr)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to parse created_at timestamp: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate comments: %w", err)
	}

	var total int
	err = r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM comments WHERE item_id = ?", itemID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	return comments, total, nil
}
