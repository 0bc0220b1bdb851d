package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_item_store.go -package=mocks github.com/Fid-Wiz/timecapsule/internal/storage ItemStore

import (
	"context"
	"database/sql"
	"fmt"
)

// ItemStore defines the interface for item storage operations.
type ItemStore interface {
	// Insert persists a new item row. The record's ID must already be set
	// (it doubles as the vector store point ID).
	Insert(ctx context.Context, item *ItemRecord) error
	// GetByID gets an item by ID. Returns nil and ErrNotFound if not found.
	GetByID(ctx context.Context, id string) (*ItemRecord, error)
	// Delete removes an item row. Used to compensate a failed vector write.
	Delete(ctx context.Context, id string) error
	// ListByCapsule returns a page of a capsule's items, newest first, with
	// the total count for pagination.
	ListByCapsule(ctx context.Context, capsuleID string, page, pageSize int) ([]ItemRecord, int, error)
	// Feed returns a page of items whose owning capsule is unlocked and not
	// private, newest first, with the total count for pagination.
	Feed(ctx context.Context, page, pageSize int) ([]FeedItem, int, error)
}

// ItemRepo provides methods for item operations.
// It implements the ItemStore interface.
type ItemRepo struct {
	db *sql.DB
}

// NewItemRepo creates a new ItemRepo.
func NewItemRepo(db *sql.DB) *ItemRepo {
	return &ItemRepo{db: db}
}

// Insert persists a new item row.
func (r *ItemRepo) Insert(ctx context.Context, item *ItemRecord) error {
	if item.Author == "" {
		item.Author = "you"
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO items (id, capsule_id, author, kind, text_content, media_url, mime_type, size_bytes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.CapsuleID, item.Author, item.Kind,
		nullString(item.TextContent), nullString(item.MediaURL), nullString(item.MimeType),
		nullInt64(item.SizeBytes),
	)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	return nil
}

// GetByID gets an item by ID.
// Returns nil and ErrNotFound if not found.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*ItemRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, capsule_id, author, kind, text_content, media_url, mime_type, size_bytes, created_at
		   FROM items WHERE id = ?`,
		id,
	)

	item, err := scanItem(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query item: %w", err)
	}
	return item, nil
}

// Delete removes an item row.
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

// ListByCapsule returns a page of a capsule's items, newest first.
func (r *ItemRepo) ListByCapsule(ctx context.Context, capsuleID string, page, pageSize int) ([]ItemRecord, int, error) {
	offset := (page - 1) * pageSize

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, capsule_id, author, kind, text_content, media_url, mime_type, size_bytes, created_at
		   FROM items
		  WHERE capsule_id = ?
		  ORDER BY created_at DESC, rowid DESC
		  LIMIT ? OFFSET ?`,
		capsuleID, pageSize, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query items: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	items := make([]ItemRecord, 0, pageSize)
	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate items: %w", err)
	}

	var total int
	err = r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM items WHERE capsule_id = ?", capsuleID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count items: %w", err)
	}

	return items, total, nil
}

// Feed returns a page of publicly visible items: only items whose owning
// capsule has reached the unlocked state and is not private.
func (r *ItemRepo) Feed(ctx context.Context, page, pageSize int) ([]FeedItem, int, error) {
	offset := (page - 1) * pageSize

	rows, err := r.db.QueryContext(ctx,
		`SELECT i.id, i.capsule_id, i.author, i.kind, i.text_content, i.media_url, i.mime_type, i.size_bytes, i.created_at,
		        c.title, c.visibility
		   FROM items i
		   JOIN capsules c ON c.id = i.capsule_id
		  WHERE c.state = ?
		    AND c.visibility IN (?, ?)
		  ORDER BY i.created_at DESC, i.rowid DESC
		  LIMIT ? OFFSET ?`,
		StateUnlocked, VisibilityGroup, VisibilityPublic, pageSize, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query feed: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	items := make([]FeedItem, 0, pageSize)
	for rows.Next() {
		var feedItem FeedItem
		item, err := scanItem(func(dest ...any) error {
			dest = append(dest, &feedItem.CapsuleTitle, &feedItem.CapsuleVisibility)
			return rows.Scan(dest...)
		})
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan feed item: %w", err)
		}
		feedItem.ItemRecord = *item
		items = append(items, feedItem)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate feed: %w", err)
	}

	var total int
	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*)
		   FROM items i
		   JOIN capsules c ON c.id = i.capsule_id
		  WHERE c.state = ?
		    AND c.visibility IN (?, ?)`,
		StateUnlocked, VisibilityGroup, VisibilityPublic,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count feed: %w", err)
	}

	return items, total, nil
}

// scanItem scans the common item column set via the given scan function.
func scanItem(scan func(dest ...any) error) (*ItemRecord, error) {
	var item ItemRecord
	var textContent, mediaURL, mimeType sql.NullString
	var sizeBytes sql.NullInt64
	var createdAtStr string

	err := scan(&item.ID, &item.CapsuleID, &item.Author, &item.Kind,
		&textContent, &mediaURL, &mimeType, &sizeBytes, &createdAtStr)
	if err != nil {
		return nil, err
	}

	item.TextContent = textContent.String
	item.MediaURL = mediaURL.String
	item.MimeType = mimeType.String
	item.SizeBytes = sizeBytes.Int64

	item.CreatedAt, err = parseTime(createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}

	return &item, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullInt64(n int64) any {
	if n == 0 {
		return nil
	}
	return n
}
